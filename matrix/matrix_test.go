// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for shapes, construction, indexing
// and iteration.

package matrix_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/katalvlaran/matrices/matrix"
	"github.com/katalvlaran/matrices/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape(t *testing.T) {
	t.Parallel()

	s := mustShape(t, 2, 3)
	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, []int{2, 3}, slices.Collect(s.All()))
	assert.Equal(t, []int{3, 2}, slices.Collect(s.Backward()))
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(6))
	assert.Equal(t, mustShape(t, 3, 2), s.T())
	assert.False(t, s.Equal(s.T()), "equal size is not equal shape")
	assert.Equal(t, "(2, 3)", s.String())

	d, err := s.Dim(1)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	_, err = s.Dim(2)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	_, err = matrix.NewShape(-1, 2)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestNew_SizeMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r, c, n int
		wantErr error
	}{
		{"exact", 2, 2, 4, nil},
		{"too few", 2, 2, 3, matrix.ErrSizeMismatch},
		{"too many", 2, 2, 5, matrix.ErrSizeMismatch},
		{"empty", 0, 3, 0, nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.New(mustShape(t, tc.r, tc.c), make([]numeric.Int, tc.n))
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.r*tc.c, m.Size())
				return
			}
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.wantErr),
				"expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	data := numeric.Ints(1, 2, 3, 4)
	m, err := matrix.New(mustShape(t, 2, 2), data)
	require.NoError(t, err)
	data[0] = 100
	assert.Equal(t, []int{1, 2, 3, 4}, ints(m))

	out := m.Data()
	out[1] = 200
	assert.Equal(t, []int{1, 2, 3, 4}, ints(m))
}

func TestFromRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromRows([][]numeric.Int{numeric.Ints(1, 2, 3), numeric.Ints(4, 5, 6)})
	require.NoError(t, err)
	assert.Equal(t, mustShape(t, 2, 3), m.Shape())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ints(m))

	empty, err := matrix.FromRows[numeric.Int](nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())

	_, err = matrix.FromRows([][]numeric.Int{numeric.Ints(1, 2), numeric.Ints(3), numeric.Ints(4, 5, 6)})
	require.ErrorIs(t, err, matrix.ErrSizeMismatch)
	assert.Contains(t, err.Error(), "row 1")
	assert.Contains(t, err.Error(), "row 2")
}

func TestFillAndZeros(t *testing.T) {
	t.Parallel()

	s := mustShape(t, 2, 2)
	assert.Equal(t, []int{7, 7, 7, 7}, ints(matrix.Fill(s, numeric.Int(7))))
	assert.Equal(t, []int{0, 0, 0, 0}, ints(matrix.Zeros[numeric.Int](s)))
}

func TestAtGet(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 2, 3, 1, 2, 3, 4, 5, 6)

	v, err := m.At(4)
	require.NoError(t, err)
	assert.Equal(t, numeric.Int(5), v)

	v, err = m.Get(1, 0)
	require.NoError(t, err)
	assert.Equal(t, numeric.Int(4), v)

	for _, k := range []int{-1, 6} {
		_, err = m.At(k)
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "At(%d)", k)
	}
	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, 3}} {
		_, err = m.Get(ij[0], ij[1])
		assert.ErrorIs(t, err, matrix.ErrIndexOutOfRange, "Get%v", ij)
	}
}

func TestSlice(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	tests := []struct {
		name       string
		rows, cols matrix.Key
		wantShape  [2]int
		want       []int
		wantErr    error
	}{
		{"single row", matrix.Single(1), matrix.Full(), [2]int{1, 3}, []int{4, 5, 6}, nil},
		{"single col", matrix.Full(), matrix.Single(2), [2]int{3, 1}, []int{3, 6, 9}, nil},
		{"block", matrix.Span(1, 3), matrix.Span(0, 2), [2]int{2, 2}, []int{4, 5, 7, 8}, nil},
		{"element", matrix.Single(2), matrix.Single(2), [2]int{1, 1}, []int{9}, nil},
		{"empty span", matrix.Span(1, 1), matrix.Full(), [2]int{0, 3}, []int{}, nil},
		{"row out of range", matrix.Single(3), matrix.Full(), [2]int{}, nil, matrix.ErrIndexOutOfRange},
		{"span past end", matrix.Full(), matrix.Span(1, 4), [2]int{}, nil, matrix.ErrIndexOutOfRange},
		{"reversed span", matrix.Span(2, 1), matrix.Full(), [2]int{}, nil, matrix.ErrIndexOutOfRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := m.Slice(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, mustShape(t, tc.wantShape[0], tc.wantShape[1]), got.Shape())
			assert.Equal(t, tc.want, ints(got))
		})
	}
}

func TestKey_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1", matrix.Single(1).String())
	assert.Equal(t, "1:2", matrix.Span(1, 2).String())
	assert.Equal(t, "2:2", matrix.Span(2, 2).String())
	assert.Equal(t, ":", matrix.Full().String())

	m := mustInts(t, 2, 2, 1, 2, 3, 4)
	_, err := m.Slice(matrix.Span(2, 3), matrix.Full())
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "(2:3, :)")
	_, err = m.Slice(matrix.Full(), matrix.Single(2))
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "(:, 2)")
}

func TestSlices_RowsAndColumns(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	var rows [][]int
	for r := range m.Slices(matrix.Row) {
		assert.Equal(t, mustShape(t, 1, 3), r.Shape())
		rows = append(rows, ints(r))
	}
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, rows)

	var cols [][]int
	for c := range m.Slices(matrix.Row.Inverse()) {
		assert.Equal(t, mustShape(t, 3, 1), c.Shape())
		cols = append(cols, ints(c))
	}
	assert.Equal(t, [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, cols)

	// restartable and stoppable
	n := 0
	for range m.Slices(matrix.Row) {
		n++
		break
	}
	assert.Equal(t, 1, n)
	assert.Len(t, slices.Collect(m.Slices(matrix.Column)), 3)
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr := m.Transpose()
	assert.Equal(t, mustShape(t, 3, 2), tr.Shape())
	assert.Equal(t, []int{1, 4, 2, 5, 3, 6}, ints(tr))

	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			a, err := m.Get(i, j)
			require.NoError(t, err)
			b, err := tr.Get(j, i)
			require.NoError(t, err)
			assert.Equal(t, a, b)
		}
	}

	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	assert.Equal(t, m.Shape(), back.Shape())
	assert.Equal(t, ints(m), ints(back))

	_, err = matrix.Transpose[numeric.Int](nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValuesBackwardContains(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 2, 2, 1, 2, 3, 4)
	assert.Equal(t, numeric.Ints(1, 2, 3, 4), slices.Collect(m.Values()))
	assert.Equal(t, numeric.Ints(4, 3, 2, 1), slices.Collect(m.Backward()))
	assert.True(t, m.ContainsFunc(func(x numeric.Int) bool { return x == 3 }))
	assert.False(t, m.ContainsFunc(func(x numeric.Int) bool { return x > 4 }))

	cp := m.Copy()
	assert.NotSame(t, m, cp)
	assert.Equal(t, ints(m), ints(cp))
}

func TestString(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 2, 2, 1, 2, 3, 4)
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

// TestConcurrentReaders shares one matrix across goroutines that only read.
// Run with -race.
func TestConcurrentReaders(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 3, 3, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	want := []int{30, 36, 42, 66, 81, 96, 102, 126, 150}

	var wg sync.WaitGroup
	results := make([][]int, 8)
	for g := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := matrix.AsComplex(m).MatMul(m)
			if err != nil {
				return
			}
			_ = m.Transpose()
			results[g] = ints(p)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, ints(m))
}
