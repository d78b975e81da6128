// SPDX-License-Identifier: MIT
// Package matrix - operators that need IntegralLike elements.

package matrix

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/matrices/numeric"
)

// Lsh returns element-wise a << b.
func Lsh[T numeric.IntegralLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opLsh, func(x, y T) T { return x.Lsh(y) }, a, b)
}

// Rsh returns element-wise a >> b.
func Rsh[T numeric.IntegralLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opRsh, func(x, y T) T { return x.Rsh(y) }, a, b)
}

// BitAnd returns element-wise a & b.
func BitAnd[T numeric.IntegralLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opBitAnd, func(x, y T) T { return x.And(y) }, a, b)
}

// BitOr returns element-wise a | b.
func BitOr[T numeric.IntegralLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opBitOr, func(x, y T) T { return x.Or(y) }, a, b)
}

// BitXor returns element-wise a ^ b.
func BitXor[T numeric.IntegralLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opBitXor, func(x, y T) T { return x.Xor(y) }, a, b)
}

// Invert returns element-wise ^m (bitwise complement).
func Invert[T numeric.IntegralLike[T]](m *Matrix[T]) (*Matrix[T], error) {
	return unary(opInvert, func(x T) T { return x.Not() }, m)
}

// ToBigInt converts every element to its exact *big.Int value.
func ToBigInt[T numeric.IntegralLike[T]](m *Matrix[T]) (*Matrix[*big.Int], error) {
	return unary(opToBigInt, func(x T) *big.Int { return x.BigInt() }, m)
}

// Indices converts every element to int, failing on the first element that
// does not fit.
//
// Errors:
//   - ErrNilMatrix, ErrLossyConversion (with the offending flat index).
func Indices[T numeric.IntegralLike[T]](m *Matrix[T]) (*Matrix[int], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opIndices, err)
	}
	out := Zeros[int](m.shape)
	for k, v := range m.data {
		i, err := v.Index()
		if err != nil {
			return nil, matrixErrorf(opIndices, fmt.Errorf("element %d: %w", k, err))
		}
		out.data[k] = i
	}

	return out, nil
}

// Int demotes a size-1 matrix to its exact integer value.
func Int[T numeric.IntegralLike[T]](m *Matrix[T]) (*big.Int, error) {
	v, err := demote(opInt, m)
	if err != nil {
		return nil, err
	}

	return v.BigInt(), nil
}

// Index demotes a size-1 matrix to an int, losslessly.
//
// Errors:
//   - ErrNilMatrix, ErrNotScalar, ErrLossyConversion.
func Index[T numeric.IntegralLike[T]](m *Matrix[T]) (int, error) {
	v, err := demote(opIndex, m)
	if err != nil {
		return 0, err
	}
	i, err := v.Index()
	if err != nil {
		return 0, matrixErrorf(opIndex, err)
	}

	return i, nil
}
