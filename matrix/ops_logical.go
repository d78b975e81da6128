// SPDX-License-Identifier: MIT
// Package matrix - logical operators over boolean matrices.
//
// Numeric matrices take part through Truth, which maps every element to
// "is non-zero". Comparison facades (Eq, Lt, ...) already return
// *Matrix[bool], so results chain directly:
//
//	lo, _ := matrix.Ge(m, matrix.Scalar(numeric.Int(0)))
//	hi, _ := matrix.Lt(m, matrix.Scalar(numeric.Int(10)))
//	in, _ := matrix.And(lo, hi)

package matrix

import (
	"github.com/katalvlaran/matrices/numeric"
	"github.com/samber/lo"
)

// Truth returns element-wise numeric.Truth(m): true where m is non-zero.
func Truth[T numeric.ComplexLike[T]](m *Matrix[T]) (*Matrix[bool], error) {
	return unary(opTruth, numeric.Truth[T], m)
}

// And returns element-wise a && b.
func And(a, b Operand[bool]) (*Matrix[bool], error) {
	return binary(opAnd, func(x, y bool) bool { return x && y }, a, b)
}

// Or returns element-wise a || b.
func Or(a, b Operand[bool]) (*Matrix[bool], error) {
	return binary(opOr, func(x, y bool) bool { return x || y }, a, b)
}

// Xor returns element-wise a != b.
func Xor(a, b Operand[bool]) (*Matrix[bool], error) {
	return binary(opXor, func(x, y bool) bool { return x != y }, a, b)
}

// Not returns element-wise !m.
func Not(m *Matrix[bool]) (*Matrix[bool], error) {
	return unary(opNot, func(x bool) bool { return !x }, m)
}

// All reports whether every element of m is true. An empty matrix yields
// true; a nil matrix yields false.
func All(m *Matrix[bool]) bool {
	if m == nil {
		return false
	}

	return lo.EveryBy(m.data, func(x bool) bool { return x })
}

// Any reports whether at least one element of m is true.
func Any(m *Matrix[bool]) bool {
	if m == nil {
		return false
	}

	return lo.SomeBy(m.data, func(x bool) bool { return x })
}
