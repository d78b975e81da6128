// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"iter"
)

// Shape is an immutable (rows, cols) pair. Both dimensions are >= 0; a shape
// with a zero dimension has size 0. Shapes compare with ==.
type Shape struct {
	rows, cols int
}

// NewShape returns the shape (rows, cols), or ErrBadShape when either
// dimension is negative.
func NewShape(rows, cols int) (Shape, error) {
	if rows < 0 || cols < 0 {
		return Shape{}, fmt.Errorf("NewShape(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return Shape{rows: rows, cols: cols}, nil
}

// Rows returns the first dimension.
func (s Shape) Rows() int { return s.rows }

// Cols returns the second dimension.
func (s Shape) Cols() int { return s.cols }

// Size returns rows * cols.
func (s Shape) Size() int { return s.rows * s.cols }

// Dim returns rows for k == 0 and cols for k == 1.
func (s Shape) Dim(k int) (int, error) {
	switch k {
	case 0:
		return s.rows, nil
	case 1:
		return s.cols, nil
	default:
		return 0, fmt.Errorf("Shape.Dim(%d): %w", k, ErrIndexOutOfRange)
	}
}

// All yields rows, then cols.
func (s Shape) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		_ = yield(s.rows) && yield(s.cols)
	}
}

// Backward yields cols, then rows.
func (s Shape) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		_ = yield(s.cols) && yield(s.rows)
	}
}

// Contains reports whether v equals either dimension.
func (s Shape) Contains(v int) bool { return s.rows == v || s.cols == v }

// Equal reports pairwise equality; it is the same as ==.
func (s Shape) Equal(o Shape) bool { return s == o }

// T returns the transposed shape (cols, rows).
func (s Shape) T() Shape { return Shape{rows: s.cols, cols: s.rows} }

// String renders the shape as "(rows, cols)".
func (s Shape) String() string { return fmt.Sprintf("(%d, %d)", s.rows, s.cols) }
