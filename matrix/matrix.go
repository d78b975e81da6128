// SPDX-License-Identifier: MIT

// Package matrix - row-major storage, indexing and iteration.
//
// Purpose:
//   - Hold a Shape and a flat buffer of length shape.Size() in row-major
//     order (element (i, j) lives at i*cols + j).
//   - Keep every public access safe: At/Get/Slice return errors instead of
//     panicking.
//   - Treat a Matrix as a value: nothing in this package mutates a matrix
//     after construction, so matrices can be shared by concurrent readers.
//
// Complexity quicksheet:
//   - New/Copy/Transpose: O(r*c); At/Get: O(1); Slice: O(r'*c').

package matrix

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/multierr"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxGet      = "Get"
	ctxSlice    = "Slice"
	ctxNew      = "New"
	ctxFromRows = "FromRows"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a two-dimensional, row-major container of T. The zero value is
// not usable; build matrices with New, FromRows, Fill or Zeros.
type Matrix[T any] struct {
	shape Shape // immutable after construction
	data  []T   // len == shape.Size(), row-major
}

// New returns a matrix of the given shape holding a copy of data.
//
// Errors:
//   - ErrSizeMismatch when len(data) != shape.Size().
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](shape Shape, data []T) (*Matrix[T], error) {
	if err := validateSize(shape, len(data)); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	buf := make([]T, len(data))
	copy(buf, data)

	return &Matrix[T]{shape: shape, data: buf}, nil
}

// FromRows builds a matrix from nested rows. Every row must have the same
// length as the first; all offending rows are reported in one error that
// matches ErrSizeMismatch. No rows yields a 0×0 matrix.
func FromRows[T any](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return &Matrix[T]{}, nil
	}
	cols := len(rows[0])
	var merr error
	for i, row := range rows {
		if len(row) != cols {
			merr = multierr.Append(merr, fmt.Errorf("row %d has %d elements, want %d", i, len(row), cols))
		}
	}
	if merr != nil {
		return nil, matrixErrorf(ctxFromRows, fmt.Errorf("%w: %w", ErrSizeMismatch, merr))
	}

	return &Matrix[T]{
		shape: Shape{rows: len(rows), cols: cols},
		data:  lo.Flatten(rows),
	}, nil
}

// Fill returns a matrix of the given shape with every position holding v.
// This is the explicit form of scalar broadcasting.
func Fill[T any](shape Shape, v T) *Matrix[T] {
	buf := make([]T, shape.Size())
	for k := range buf {
		buf[k] = v
	}

	return &Matrix[T]{shape: shape, data: buf}
}

// Zeros returns a matrix of the given shape filled with T's zero value.
func Zeros[T any](shape Shape) *Matrix[T] {
	return &Matrix[T]{shape: shape, data: make([]T, shape.Size())}
}

// collect materialises seq into a fresh matrix of the given shape. The
// sequence must yield exactly shape.Size() elements (kernels guarantee it).
func collect[T any](shape Shape, seq iter.Seq[T]) *Matrix[T] {
	buf := make([]T, 0, shape.Size())
	for v := range seq {
		buf = append(buf, v)
	}

	return &Matrix[T]{shape: shape, data: buf}
}

// Shape returns the matrix's dimensions.
func (m *Matrix[T]) Shape() Shape { return m.shape }

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.shape.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.shape.cols }

// Size returns Rows() * Cols(), which is also the storage length.
func (m *Matrix[T]) Size() int { return len(m.data) }

// At returns the element at flat row-major index k.
//
// Errors:
//   - ErrIndexOutOfRange when k is outside [0, Size()).
func (m *Matrix[T]) At(k int) (T, error) {
	if k < 0 || k >= len(m.data) {
		var zero T
		return zero, fmt.Errorf("Matrix.%s(%d): %w", ctxAt, k, ErrIndexOutOfRange)
	}

	return m.data[k], nil
}

// Get returns the element at row i, column j.
//
// Errors:
//   - ErrIndexOutOfRange when i or j is outside its dimension.
func (m *Matrix[T]) Get(i, j int) (T, error) {
	if i < 0 || i >= m.shape.rows || j < 0 || j >= m.shape.cols {
		var zero T
		return zero, fmt.Errorf("Matrix.%s(%d,%d): %w", ctxGet, i, j, ErrIndexOutOfRange)
	}

	return m.data[i*m.shape.cols+j], nil
}

// Slice copies the rectangular region selected by a row key and a column key
// into a new matrix. The result's shape is the product of the two extents;
// elements keep their row-major order.
//
// Errors:
//   - ErrIndexOutOfRange when either key falls outside its dimension.
//
// Complexity:
//   - Time O(r'*c'), Space O(r'*c').
func (m *Matrix[T]) Slice(rows, cols Key) (*Matrix[T], error) {
	r0, r1, err := rows.resolve(m.shape.rows)
	if err != nil {
		return nil, fmt.Errorf("Matrix.%s(%v, %v): %w", ctxSlice, rows, cols, err)
	}
	c0, c1, err := cols.resolve(m.shape.cols)
	if err != nil {
		return nil, fmt.Errorf("Matrix.%s(%v, %v): %w", ctxSlice, rows, cols, err)
	}

	return m.region(r0, r1, c0, c1), nil
}

// region copies [r0,r1)×[c0,c1); bounds are already validated.
func (m *Matrix[T]) region(r0, r1, c0, c1 int) *Matrix[T] {
	shape := Shape{rows: r1 - r0, cols: c1 - c0}
	buf := make([]T, 0, shape.Size())
	for i := r0; i < r1; i++ {
		base := i * m.shape.cols
		buf = append(buf, m.data[base+c0:base+c1]...)
	}

	return &Matrix[T]{shape: shape, data: buf}
}

// Values yields the elements in row-major order.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward yields the elements in reverse row-major order.
func (m *Matrix[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := len(m.data) - 1; k >= 0; k-- {
			if !yield(m.data[k]) {
				return
			}
		}
	}
}

// ContainsFunc reports whether any element satisfies pred. A nil matrix
// contains nothing.
func (m *Matrix[T]) ContainsFunc(pred func(T) bool) bool {
	if m == nil {
		return false
	}

	return lo.SomeBy(m.data, pred)
}

// Slices yields an independent copy of each row (Row) or each column
// (Column) in index order. The sequence is lazy and can be ranged over
// any number of times.
func (m *Matrix[T]) Slices(by Rule) iter.Seq[*Matrix[T]] {
	return func(yield func(*Matrix[T]) bool) {
		if by == Row {
			for i := 0; i < m.shape.rows; i++ {
				if !yield(m.region(i, i+1, 0, m.shape.cols)) {
					return
				}
			}
			return
		}
		for j := 0; j < m.shape.cols; j++ {
			if !yield(m.region(0, m.shape.rows, j, j+1)) {
				return
			}
		}
	}
}

// Transpose returns a new matrix of shape (cols, rows) with
// result[j, i] == m[i, j]. m is not modified.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	r, c := m.shape.rows, m.shape.cols
	buf := make([]T, len(m.data))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			buf[j*r+i] = m.data[i*c+j]
		}
	}

	return &Matrix[T]{shape: m.shape.T(), data: buf}
}

// Copy returns a shallow copy: a new buffer holding the same element values.
func (m *Matrix[T]) Copy() *Matrix[T] {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return &Matrix[T]{shape: m.shape, data: buf}
}

// Data returns a copy of the row-major storage.
func (m *Matrix[T]) Data() []T {
	buf := make([]T, len(m.data))
	copy(buf, m.data)

	return buf
}

// String renders one bracketed line per row, for diagnostics.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.shape.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.shape.cols
		for j := 0; j < m.shape.cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprint(&b, m.data[base+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
