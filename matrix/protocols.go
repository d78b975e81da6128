// SPDX-License-Identifier: MIT
// Package matrix - the matrix-level capability tower.
//
// MatrixLike ⊂ ComplexMatrixLike ⊂ RealMatrixLike ⊂ IntegralMatrixLike
// mirrors numeric.ComplexLike ⊂ RealLike ⊂ IntegralLike one level up: every
// vectorised method corresponds to the scalar operation applied element-wise.
// The typed views in views.go (ComplexMatrix, RealMatrix, IntegralMatrix) can
// only be instantiated for element types of the matching level, so asking
// "may I floor-divide this matrix?" is answered by the compiler.
//
// Results of arithmetic are plain *Matrix[T]; re-wrap with AsComplex/AsReal/
// AsIntegral to keep chaining method calls.

package matrix

import (
	"iter"
	"math/big"

	"github.com/katalvlaran/matrices/numeric"
)

// MatrixLike is the element-type-agnostic surface of a matrix.
type MatrixLike[T any] interface {
	Operand[T]

	Shape() Shape
	Rows() int
	Cols() int
	Size() int
	At(k int) (T, error)
	Get(i, j int) (T, error)
	Slice(rows, cols Key) (*Matrix[T], error)
	Values() iter.Seq[T]
	Backward() iter.Seq[T]
	ContainsFunc(pred func(T) bool) bool
	Slices(by Rule) iter.Seq[*Matrix[T]]
	Transpose() *Matrix[T]
	Copy() *Matrix[T]
}

// ComplexMatrixLike is a matrix of ComplexLike elements.
type ComplexMatrixLike[T any] interface {
	MatrixLike[T]

	Contains(v T) bool
	Add(o Operand[T]) (*Matrix[T], error)
	Sub(o Operand[T]) (*Matrix[T], error)
	Mul(o Operand[T]) (*Matrix[T], error)
	Div(o Operand[T]) (*Matrix[T], error)
	Pow(o Operand[T]) (*Matrix[T], error)
	MatMul(o Operand[T]) (*Matrix[T], error)
	Neg() (*Matrix[T], error)
	Pos() (*Matrix[T], error)
	Abs() (*Matrix[T], error)
	Conj() (*Matrix[T], error)

	// Equal reports whether all element pairs are equal; Eq and Ne return
	// the per-element results.
	Equal(o Operand[T]) (bool, error)
	Eq(o Operand[T]) (*Matrix[bool], error)
	Ne(o Operand[T]) (*Matrix[bool], error)
	Truth() (*Matrix[bool], error)
	AllClose(o Operand[T], opts ...Option) (bool, error)

	ToComplex() (*Matrix[numeric.Complex], error)
	Complex128() (complex128, error)
}

// RealMatrixLike is a matrix of RealLike elements.
type RealMatrixLike[T any] interface {
	ComplexMatrixLike[T]

	// Compare and the whole-matrix orderings are lexicographic; Lt, Le, Gt
	// and Ge return per-element results.
	Compare(o Operand[T]) (int, error)
	Less(o Operand[T]) (bool, error)
	LessEqual(o Operand[T]) (bool, error)
	Greater(o Operand[T]) (bool, error)
	GreaterEqual(o Operand[T]) (bool, error)
	Lt(o Operand[T]) (*Matrix[bool], error)
	Le(o Operand[T]) (*Matrix[bool], error)
	Gt(o Operand[T]) (*Matrix[bool], error)
	Ge(o Operand[T]) (*Matrix[bool], error)

	FloorDiv(o Operand[T]) (*Matrix[T], error)
	Mod(o Operand[T]) (*Matrix[T], error)
	DivMod(o Operand[T]) (q, r *Matrix[T], err error)
	TrueDiv(o Operand[T]) (*Matrix[numeric.Real], error)

	ToReal() (*Matrix[numeric.Real], error)
	Float64() (float64, error)
}

// IntegralMatrixLike is a matrix of IntegralLike elements.
type IntegralMatrixLike[T any] interface {
	RealMatrixLike[T]

	Lsh(o Operand[T]) (*Matrix[T], error)
	Rsh(o Operand[T]) (*Matrix[T], error)
	BitAnd(o Operand[T]) (*Matrix[T], error)
	BitOr(o Operand[T]) (*Matrix[T], error)
	BitXor(o Operand[T]) (*Matrix[T], error)
	Invert() (*Matrix[T], error)

	ToBigInt() (*Matrix[*big.Int], error)
	Indices() (*Matrix[int], error)
	Int() (*big.Int, error)
	Index() (int, error)
}

// Compile-time capability checks.
var (
	_ MatrixLike[bool]                   = (*Matrix[bool])(nil)
	_ ComplexMatrixLike[numeric.Complex] = ComplexMatrix[numeric.Complex]{}
	_ RealMatrixLike[numeric.Real]       = RealMatrix[numeric.Real]{}
	_ RealMatrixLike[numeric.Rational]   = RealMatrix[numeric.Rational]{}
	_ IntegralMatrixLike[numeric.Int]    = IntegralMatrix[numeric.Int]{}
	_ ComplexMatrixLike[numeric.Int]     = IntegralMatrix[numeric.Int]{}
	_ MatrixLike[string]                 = OrderingMatrix[string]{}
)
