// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - The three algorithmic kernels every operator is built on:
//     MapSeq (shape-checked element-wise combinator), MatMulSeq (matrix
//     product) and Compare (lexicographic three-way comparison).
//   - Kernels validate first, then return lazy sequences; facades in ops_*.go
//     materialise them with collect.
//
// Determinism:
//   - Fixed row-major traversal (flat 0..n-1) everywhere.
//   - MatMulSeq accumulates each dot product as a left fold starting from
//     the first product term, so non-associative float sums are reproducible.

package matrix

import (
	"cmp"
	"iter"

	"github.com/katalvlaran/matrices/numeric"
)

// MapSeq pairs the elements of a and b in row-major order and yields
// f(a[k], b[k]) for k in [0, size). A Scalar operand is broadcast to the
// other operand's shape.
//
// Implementation:
//   - Stage 1: resolve both operands (nil → ErrNilMatrix).
//   - Stage 2: compute the common shape (ErrShapeMismatch, ErrNoMatrixOperand).
//   - Stage 3: return the lazy sequence; f runs only on consumption.
//
// Returns:
//   - Shape of the result, the lazy element sequence, or an error.
//
// Complexity:
//   - Time O(r*c) on full consumption, Space O(1).
func MapSeq[T, U, R any](f func(T, U) R, a Operand[T], b Operand[U]) (Shape, iter.Seq[R], error) {
	av, err := resolve(a)
	if err != nil {
		return Shape{}, nil, err
	}
	bv, err := resolve(b)
	if err != nil {
		return Shape{}, nil, err
	}
	shape, err := broadcastShape(av, bv)
	if err != nil {
		return Shape{}, nil, err
	}
	n := shape.Size()

	return shape, func(yield func(R) bool) {
		for k := 0; k < n; k++ {
			if !yield(f(av.elem(k), bv.elem(k))) {
				return
			}
		}
	}, nil
}

// ApplySeq yields f(m[k]) in row-major order.
func ApplySeq[T, R any](f func(T) R, m *Matrix[T]) (Shape, iter.Seq[R], error) {
	if err := ValidateNotNil(m); err != nil {
		return Shape{}, nil, err
	}

	return m.shape, func(yield func(R) bool) {
		for _, v := range m.data {
			if !yield(f(v)) {
				return
			}
		}
	}, nil
}

// MatMulSeq yields the elements of the product a × b in row-major order over
// the result shape (m, q). Each element is
//
//	a[i,0]*b[0,j] + a[i,1]*b[1,j] + ... + a[i,n-1]*b[n-1,j]
//
// folded left to right from the first product term; no additive identity
// is assumed.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (a.Cols != b.Rows),
//     ErrDegenerateDimension (a.Cols == 0).
//
// Complexity:
//   - Time O(m*n*q) on full consumption, Space O(1).
func MatMulSeq[T numeric.ComplexLike[T]](a, b *Matrix[T]) (Shape, iter.Seq[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return Shape{}, nil, err
	}
	m, n, q := a.shape.rows, a.shape.cols, b.shape.cols
	shape := Shape{rows: m, cols: q}

	return shape, func(yield func(T) bool) {
		var i, j, k int
		var acc T
		for i = 0; i < m; i++ {
			row := i * n
			for j = 0; j < q; j++ {
				acc = a.data[row].Mul(b.data[j])
				for k = 1; k < n; k++ {
					acc = acc.Add(a.data[row+k].Mul(b.data[k*q+j]))
				}
				if !yield(acc) {
					return
				}
			}
		}
	}, nil
}

// compareBy walks a and b in row-major order and reports -1 at the first
// pair with less(x, y), +1 at the first pair with less(y, x), 0 otherwise.
// Both operands must be matrices.
func compareBy[T any](less func(x, y T) bool, a, b Operand[T]) (int, error) {
	am, err := resolveMatrix(a)
	if err != nil {
		return 0, err
	}
	bm, err := resolveMatrix(b)
	if err != nil {
		return 0, err
	}
	_, seq, err := MapSeq[T, T, int](func(x, y T) int {
		switch {
		case less(x, y):
			return -1
		case less(y, x):
			return 1
		default:
			return 0
		}
	}, am, bm)
	if err != nil {
		return 0, err
	}
	for c := range seq {
		if c != 0 {
			return c, nil
		}
	}

	return 0, nil
}

// Compare orders a and b lexicographically: -1 if a < b, +1 if a > b and 0
// if no element pair differs. Both operands must be matrices of the same
// shape; a Scalar on either side is rejected.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch, ErrNoMatrixOperand.
//
// Complexity:
//   - Time O(k) where k is the position of the first differing pair.
func Compare[T numeric.RealLike[T]](a, b Operand[T]) (int, error) {
	return compareBy(func(x, y T) bool { return x.Less(y) }, a, b)
}

// CompareOrdered is Compare for built-in ordered element types (see
// OrderingMatrix). Pairs involving NaN are treated as equal.
func CompareOrdered[T cmp.Ordered](a, b Operand[T]) (int, error) {
	return compareBy(func(x, y T) bool { return x < y }, a, b)
}
