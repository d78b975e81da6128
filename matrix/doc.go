// Package matrix offers generic, immutable two-dimensional matrices whose
// element type is chosen from the numeric capability tower.
//
// The matrix package provides:
//
//   - Matrix[T]: a Shape plus a flat row-major buffer, with safe indexing
//     (At, Get, Slice with Single/Span/Full keys) and lazy iteration
//     (Values, Backward, Slices by Row or Column).
//   - Three kernels every operator is built on: MapSeq (shape-checked
//     element-wise combinator with scalar broadcasting), MatMulSeq (matrix
//     product) and Compare (lexicographic three-way comparison).
//   - Operator functions gated by element capability: Add, MatMul, Conj for
//     numeric.ComplexLike; FloorDiv, Lt, Less for numeric.RealLike; Lsh,
//     BitAnd, Invert for numeric.IntegralLike; And, Or, Not for bool masks.
//   - Typed views (ComplexMatrix, RealMatrix, IntegralMatrix, OrderingMatrix)
//     exposing the same operators as methods.
//
// Every operator returns a new matrix; nothing mutates a matrix after
// construction, so matrices may be shared freely between goroutines.
//
// Element-wise operands are *Matrix[T] values or bare scalars wrapped with
// Scalar, which behave like a matrix of the other operand's shape. MatMul and
// the whole-matrix comparisons (Compare, Less, Equal, ...) take matrices only:
//
//	m, _ := matrix.FromRows([][]numeric.Int{{1, 2}, {3, 4}})
//	d, _ := matrix.Sub(matrix.Scalar(numeric.Int(10)), matrix.Operand[numeric.Int](m))
//	// d == [[9, 8], [7, 6]]
//
// Failures are reported as errors wrapping the sentinels in errors.go
// (ErrShapeMismatch, ErrDegenerateDimension, ...); match them with errors.Is.
//
// See the examples in this package for usage patterns.
package matrix
