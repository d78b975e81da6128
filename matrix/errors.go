// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped
// with an operation tag) and tests MUST check them via errors.Is. No
// operation panics on a user-triggered validation failure.

package matrix

import (
	"errors"

	"github.com/katalvlaran/matrices/numeric"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Facades wrap
// with matrixErrorf("<Op>", err) so the final text reads
// "Add: matrix: shape mismatch"; errors.Is still matches the sentinel.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> operand kinds -> shape -> degenerate dimension -> index.

var (
	// ErrShapeMismatch is returned when two matrices taking part in an
	// element-wise operation, a lexicographic comparison or the outer check of
	// MatMul have incompatible shapes. Sizes being equal is not enough.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrDegenerateDimension is returned by MatMul when the shared inner
	// dimension is 0.
	ErrDegenerateDimension = errors.New("matrix: inner dimension must be positive")

	// ErrIndexOutOfRange indicates a flat index outside [0, size) or a row or
	// column key outside its dimension.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch is returned at construction when the storage length
	// disagrees with the declared shape, including ragged rows.
	ErrSizeMismatch = errors.New("matrix: storage length does not match shape")

	// ErrBadShape is returned for negative dimensions.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNotScalar is returned when a matrix of size != 1 is demoted to a
	// scalar (Complex128, Float64, Int, Index).
	ErrNotScalar = errors.New("matrix: matrix is not of size 1")

	// ErrNoMatrixOperand is returned when a binary operation receives two
	// bare scalars, or a scalar where only a matrix makes sense (MatMul).
	ErrNoMatrixOperand = errors.New("matrix: operation requires a matrix operand")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrLossyConversion is numeric.ErrLossyConversion, re-exported so callers
// of Indices/Index need not import package numeric to match it.
var ErrLossyConversion = numeric.ErrLossyConversion
