// SPDX-License-Identifier: MIT
// Package matrix - operators that need ordered (RealLike) elements.
//
// There are two comparison families:
//   - Lt/Le/Gt/Ge return a *Matrix[bool] with one result per element pair.
//   - Less/LessEqual/Greater/GreaterEqual return a single bool from the
//     lexicographic Compare.

package matrix

import "github.com/katalvlaran/matrices/numeric"

// Lt returns element-wise a < b.
func Lt[T numeric.RealLike[T]](a, b Operand[T]) (*Matrix[bool], error) {
	return binary(opLt, func(x, y T) bool { return x.Less(y) }, a, b)
}

// Le returns element-wise a <= b.
func Le[T numeric.RealLike[T]](a, b Operand[T]) (*Matrix[bool], error) {
	return binary(opLe, func(x, y T) bool { return x.LessEqual(y) }, a, b)
}

// Gt returns element-wise a > b.
func Gt[T numeric.RealLike[T]](a, b Operand[T]) (*Matrix[bool], error) {
	return binary(opGt, numeric.Greater[T], a, b)
}

// Ge returns element-wise a >= b.
func Ge[T numeric.RealLike[T]](a, b Operand[T]) (*Matrix[bool], error) {
	return binary(opGe, numeric.GreaterEqual[T], a, b)
}

// compareTagged runs Compare and tags its error.
func compareTagged[T numeric.RealLike[T]](a, b Operand[T]) (int, error) {
	c, err := Compare(a, b)
	if err != nil {
		return 0, matrixErrorf(opCompare, err)
	}

	return c, nil
}

// Less reports lexicographic a < b.
func Less[T numeric.RealLike[T]](a, b Operand[T]) (bool, error) {
	c, err := compareTagged(a, b)
	return c < 0, err
}

// LessEqual reports lexicographic a <= b.
func LessEqual[T numeric.RealLike[T]](a, b Operand[T]) (bool, error) {
	c, err := compareTagged(a, b)
	return err == nil && c <= 0, err
}

// Greater reports lexicographic a > b.
func Greater[T numeric.RealLike[T]](a, b Operand[T]) (bool, error) {
	c, err := compareTagged(a, b)
	return c > 0, err
}

// GreaterEqual reports lexicographic a >= b.
func GreaterEqual[T numeric.RealLike[T]](a, b Operand[T]) (bool, error) {
	c, err := compareTagged(a, b)
	return err == nil && c >= 0, err
}

// FloorDiv returns element-wise floor(a / b).
func FloorDiv[T numeric.RealLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opFloorDiv, func(x, y T) T { return x.FloorDiv(y) }, a, b)
}

// Mod returns the element-wise remainder, carrying the sign of b.
func Mod[T numeric.RealLike[T]](a, b Operand[T]) (*Matrix[T], error) {
	return binary(opMod, func(x, y T) T { return x.Mod(y) }, a, b)
}

// DivMod returns FloorDiv(a, b) and Mod(a, b) from a single validation.
func DivMod[T numeric.RealLike[T]](a, b Operand[T]) (q, r *Matrix[T], err error) {
	shape, seq, err := MapSeq(func(x, y T) [2]T { return [2]T{x.FloorDiv(y), x.Mod(y)} }, a, b)
	if err != nil {
		return nil, nil, matrixErrorf(opDivMod, err)
	}
	q, r = Zeros[T](shape), Zeros[T](shape)
	k := 0
	for p := range seq {
		q.data[k], r.data[k] = p[0], p[1]
		k++
	}

	return q, r, nil
}

// TrueDiv returns element-wise a / b computed in float64, whatever the
// rounding rule of T's own Div (numeric.Int floors).
func TrueDiv[T numeric.RealLike[T]](a, b Operand[T]) (*Matrix[numeric.Real], error) {
	return binary(opTrueDiv, func(x, y T) numeric.Real {
		return numeric.Real(x.Float64() / y.Float64())
	}, a, b)
}

// ToReal converts every element to numeric.Real.
func ToReal[T numeric.RealLike[T]](m *Matrix[T]) (*Matrix[numeric.Real], error) {
	return unary(opToReal, func(x T) numeric.Real { return numeric.Real(x.Float64()) }, m)
}

// Float64 demotes a size-1 matrix to its float64 value.
func Float64[T numeric.RealLike[T]](m *Matrix[T]) (float64, error) {
	v, err := demote(opFloat64, m)
	if err != nil {
		return 0, err
	}

	return v.Float64(), nil
}
