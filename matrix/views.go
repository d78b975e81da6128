// SPDX-License-Identifier: MIT
// Package matrix - typed views.
//
// A view embeds *Matrix[T] and adds the operator methods of its capability
// level as thin calls to the generic facades. Views are values; copying one
// shares the (immutable) underlying matrix.

package matrix

import (
	"cmp"
	"math/big"

	"github.com/katalvlaran/matrices/numeric"
)

// ComplexMatrix is a matrix whose elements are at least ComplexLike. It must
// wrap a non-nil matrix: operator methods report ErrNilMatrix and Contains
// reports false otherwise, but promoted accessors such as Shape and Values
// panic.
type ComplexMatrix[T numeric.ComplexLike[T]] struct {
	*Matrix[T]
}

// AsComplex views m as a ComplexMatrix.
func AsComplex[T numeric.ComplexLike[T]](m *Matrix[T]) ComplexMatrix[T] {
	return ComplexMatrix[T]{Matrix: m}
}

// Contains reports whether an element equal to v occurs in the matrix.
func (m ComplexMatrix[T]) Contains(v T) bool {
	if m.Matrix == nil {
		return false
	}

	return m.ContainsFunc(v.Equal)
}

func (m ComplexMatrix[T]) Add(o Operand[T]) (*Matrix[T], error) { return Add[T](m, o) }
func (m ComplexMatrix[T]) Sub(o Operand[T]) (*Matrix[T], error) { return Sub[T](m, o) }
func (m ComplexMatrix[T]) Mul(o Operand[T]) (*Matrix[T], error) { return Mul[T](m, o) }
func (m ComplexMatrix[T]) Div(o Operand[T]) (*Matrix[T], error) { return Div[T](m, o) }
func (m ComplexMatrix[T]) Pow(o Operand[T]) (*Matrix[T], error) { return Pow[T](m, o) }

func (m ComplexMatrix[T]) MatMul(o Operand[T]) (*Matrix[T], error) { return MatMul[T](m, o) }

func (m ComplexMatrix[T]) Neg() (*Matrix[T], error)  { return Neg(m.Matrix) }
func (m ComplexMatrix[T]) Pos() (*Matrix[T], error)  { return Pos(m.Matrix) }
func (m ComplexMatrix[T]) Abs() (*Matrix[T], error)  { return Abs(m.Matrix) }
func (m ComplexMatrix[T]) Conj() (*Matrix[T], error) { return Conj(m.Matrix) }

func (m ComplexMatrix[T]) Equal(o Operand[T]) (bool, error)       { return Equal[T](m.Matrix, o) }
func (m ComplexMatrix[T]) Eq(o Operand[T]) (*Matrix[bool], error) { return Eq[T](m, o) }
func (m ComplexMatrix[T]) Ne(o Operand[T]) (*Matrix[bool], error) { return Ne[T](m, o) }
func (m ComplexMatrix[T]) Truth() (*Matrix[bool], error)          { return Truth(m.Matrix) }

// AllClose reports whether m and o agree within |m-o| ≤ atol + rtol*|o|.
func (m ComplexMatrix[T]) AllClose(o Operand[T], opts ...Option) (bool, error) {
	return AllClose[T](m, o, opts...)
}

func (m ComplexMatrix[T]) ToComplex() (*Matrix[numeric.Complex], error) { return ToComplex(m.Matrix) }
func (m ComplexMatrix[T]) Complex128() (complex128, error)              { return Complex128(m.Matrix) }

// RealMatrix is a matrix whose elements are at least RealLike.
type RealMatrix[T numeric.RealLike[T]] struct {
	ComplexMatrix[T]
}

// AsReal views m as a RealMatrix.
func AsReal[T numeric.RealLike[T]](m *Matrix[T]) RealMatrix[T] {
	return RealMatrix[T]{ComplexMatrix: AsComplex(m)}
}

func (m RealMatrix[T]) Compare(o Operand[T]) (int, error)         { return compareTagged[T](m, o) }
func (m RealMatrix[T]) Less(o Operand[T]) (bool, error)           { return Less[T](m, o) }
func (m RealMatrix[T]) LessEqual(o Operand[T]) (bool, error)      { return LessEqual[T](m, o) }
func (m RealMatrix[T]) Greater(o Operand[T]) (bool, error)        { return Greater[T](m, o) }
func (m RealMatrix[T]) GreaterEqual(o Operand[T]) (bool, error)   { return GreaterEqual[T](m, o) }
func (m RealMatrix[T]) Lt(o Operand[T]) (*Matrix[bool], error)    { return Lt[T](m, o) }
func (m RealMatrix[T]) Le(o Operand[T]) (*Matrix[bool], error)    { return Le[T](m, o) }
func (m RealMatrix[T]) Gt(o Operand[T]) (*Matrix[bool], error)    { return Gt[T](m, o) }
func (m RealMatrix[T]) Ge(o Operand[T]) (*Matrix[bool], error)    { return Ge[T](m, o) }
func (m RealMatrix[T]) FloorDiv(o Operand[T]) (*Matrix[T], error) { return FloorDiv[T](m, o) }
func (m RealMatrix[T]) Mod(o Operand[T]) (*Matrix[T], error)      { return Mod[T](m, o) }

func (m RealMatrix[T]) DivMod(o Operand[T]) (q, r *Matrix[T], err error) { return DivMod[T](m, o) }

func (m RealMatrix[T]) TrueDiv(o Operand[T]) (*Matrix[numeric.Real], error) { return TrueDiv[T](m, o) }

func (m RealMatrix[T]) ToReal() (*Matrix[numeric.Real], error) { return ToReal(m.Matrix) }
func (m RealMatrix[T]) Float64() (float64, error)              { return Float64(m.Matrix) }

// IntegralMatrix is a matrix whose elements are IntegralLike.
type IntegralMatrix[T numeric.IntegralLike[T]] struct {
	RealMatrix[T]
}

// AsIntegral views m as an IntegralMatrix.
func AsIntegral[T numeric.IntegralLike[T]](m *Matrix[T]) IntegralMatrix[T] {
	return IntegralMatrix[T]{RealMatrix: AsReal(m)}
}

func (m IntegralMatrix[T]) Lsh(o Operand[T]) (*Matrix[T], error)    { return Lsh[T](m, o) }
func (m IntegralMatrix[T]) Rsh(o Operand[T]) (*Matrix[T], error)    { return Rsh[T](m, o) }
func (m IntegralMatrix[T]) BitAnd(o Operand[T]) (*Matrix[T], error) { return BitAnd[T](m, o) }
func (m IntegralMatrix[T]) BitOr(o Operand[T]) (*Matrix[T], error)  { return BitOr[T](m, o) }
func (m IntegralMatrix[T]) BitXor(o Operand[T]) (*Matrix[T], error) { return BitXor[T](m, o) }
func (m IntegralMatrix[T]) Invert() (*Matrix[T], error)             { return Invert(m.Matrix) }

func (m IntegralMatrix[T]) ToBigInt() (*Matrix[*big.Int], error) { return ToBigInt(m.Matrix) }
func (m IntegralMatrix[T]) Indices() (*Matrix[int], error)       { return Indices(m.Matrix) }
func (m IntegralMatrix[T]) Int() (*big.Int, error)               { return Int(m.Matrix) }
func (m IntegralMatrix[T]) Index() (int, error)                  { return Index(m.Matrix) }

// OrderingMatrix is a matrix of built-in ordered values (numbers or
// strings) that supports equality and ordering only: no arithmetic. Like
// ComplexMatrix it must wrap a non-nil matrix.
type OrderingMatrix[T cmp.Ordered] struct {
	*Matrix[T]
}

// AsOrdering views m as an OrderingMatrix.
func AsOrdering[T cmp.Ordered](m *Matrix[T]) OrderingMatrix[T] {
	return OrderingMatrix[T]{Matrix: m}
}

// Contains reports whether v occurs in the matrix.
func (m OrderingMatrix[T]) Contains(v T) bool {
	if m.Matrix == nil {
		return false
	}

	return m.ContainsFunc(func(x T) bool { return x == v })
}

// Compare orders m and o lexicographically.
func (m OrderingMatrix[T]) Compare(o Operand[T]) (int, error) {
	c, err := CompareOrdered[T](m, o)
	if err != nil {
		return 0, matrixErrorf(opCompareOrder, err)
	}

	return c, nil
}

func (m OrderingMatrix[T]) Less(o Operand[T]) (bool, error) {
	c, err := m.Compare(o)
	return c < 0, err
}

func (m OrderingMatrix[T]) LessEqual(o Operand[T]) (bool, error) {
	c, err := m.Compare(o)
	return err == nil && c <= 0, err
}

func (m OrderingMatrix[T]) Greater(o Operand[T]) (bool, error) {
	c, err := m.Compare(o)
	return c > 0, err
}

func (m OrderingMatrix[T]) GreaterEqual(o Operand[T]) (bool, error) {
	c, err := m.Compare(o)
	return err == nil && c >= 0, err
}

// Equal reports whether all element pairs are equal. o must be a matrix.
func (m OrderingMatrix[T]) Equal(o Operand[T]) (bool, error) {
	if _, err := resolveMatrix(o); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	eq, err := binary[T, T, bool](opEqual, func(x, y T) bool { return x == y }, m, o)
	if err != nil {
		return false, err
	}

	return All(eq), nil
}

func (m OrderingMatrix[T]) Eq(o Operand[T]) (*Matrix[bool], error) {
	return binary[T, T, bool](opEq, func(x, y T) bool { return x == y }, m, o)
}

func (m OrderingMatrix[T]) Ne(o Operand[T]) (*Matrix[bool], error) {
	return binary[T, T, bool](opNe, func(x, y T) bool { return x != y }, m, o)
}

func (m OrderingMatrix[T]) Lt(o Operand[T]) (*Matrix[bool], error) {
	return binary[T, T, bool](opLt, func(x, y T) bool { return x < y }, m, o)
}

func (m OrderingMatrix[T]) Le(o Operand[T]) (*Matrix[bool], error) {
	return binary[T, T, bool](opLe, func(x, y T) bool { return x <= y }, m, o)
}

func (m OrderingMatrix[T]) Gt(o Operand[T]) (*Matrix[bool], error) {
	return binary[T, T, bool](opGt, func(x, y T) bool { return x > y }, m, o)
}

func (m OrderingMatrix[T]) Ge(o Operand[T]) (*Matrix[bool], error) {
	return binary[T, T, bool](opGe, func(x, y T) bool { return x >= y }, m, o)
}
