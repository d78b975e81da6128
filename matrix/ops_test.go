// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the element-wise operator
// facades and scalar broadcasting.

package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/matrices/matrix"
	"github.com/katalvlaran/matrices/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intOp func(a, b matrix.Operand[numeric.Int]) (*matrix.Matrix[numeric.Int], error)

func TestElementwise_ShapeLaw(t *testing.T) {
	t.Parallel()

	a := mustInts(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustInts(t, 2, 3, 6, 5, 4, 3, 2, 1)

	tests := []struct {
		name string
		op   intOp
		want []int
	}{
		{"Add", matrix.Add[numeric.Int], []int{7, 7, 7, 7, 7, 7}},
		{"Sub", matrix.Sub[numeric.Int], []int{-5, -3, -1, 1, 3, 5}},
		{"Mul", matrix.Mul[numeric.Int], []int{6, 10, 12, 12, 10, 6}},
		{"Div", matrix.Div[numeric.Int], []int{0, 0, 0, 1, 2, 6}},
		{"Pow", matrix.Pow[numeric.Int], []int{1, 32, 81, 64, 25, 6}},
		{"FloorDiv", matrix.FloorDiv[numeric.Int], []int{0, 0, 0, 1, 2, 6}},
		{"Mod", matrix.Mod[numeric.Int], []int{1, 2, 3, 1, 1, 0}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := tc.op(a, b)
			require.NoError(t, err)
			assert.Equal(t, a.Shape(), got.Shape())
			assert.Equal(t, tc.want, ints(got))
		})
	}
}

func TestElementwise_ShapeMismatch(t *testing.T) {
	t.Parallel()

	a := mustInts(t, 2, 3, 1, 2, 3, 4, 5, 6)
	b := mustInts(t, 3, 2, 1, 2, 3, 4, 5, 6)

	_, err := matrix.Add[numeric.Int](a, b)
	require.Error(t, err)
	require.Truef(t, errors.Is(err, matrix.ErrShapeMismatch),
		"expected errors.Is(%v, %v)", err, matrix.ErrShapeMismatch)
	assert.Contains(t, err.Error(), "Add: ")

	_, err = matrix.Eq[numeric.Int](a, b)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.Lt[numeric.Int](a, b)
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)
}

func TestElementwise_OperandErrors(t *testing.T) {
	t.Parallel()

	a := mustInts(t, 1, 2, 1, 2)
	var nilM *matrix.Matrix[numeric.Int]

	_, err := matrix.Add[numeric.Int](a, nilM)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add[numeric.Int](nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Add(matrix.Scalar(numeric.Int(1)), matrix.Scalar(numeric.Int(2)))
	assert.ErrorIs(t, err, matrix.ErrNoMatrixOperand)
	_, err = matrix.Neg(nilM)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestBroadcast_ScalarEitherSide(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 2, 2, 1, 2, 3, 4)
	two := matrix.Scalar(numeric.Int(2))
	ten := matrix.Scalar(numeric.Int(10))

	got, err := matrix.Mul[numeric.Int](m, two)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8}, ints(got))

	got, err = matrix.Sub[numeric.Int](m, ten)
	require.NoError(t, err)
	assert.Equal(t, []int{-9, -8, -7, -6}, ints(got))

	// reflected: scalar on the left
	got, err = matrix.Sub[numeric.Int](ten, m)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 6}, ints(got))

	got, err = matrix.Pow[numeric.Int](two, m)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 8, 16}, ints(got))

	// broadcasting equals an explicit Fill
	filled, err := matrix.Sub[numeric.Int](matrix.Fill(m.Shape(), numeric.Int(10)), m)
	require.NoError(t, err)
	assert.Equal(t, []int{9, 8, 7, 6}, ints(filled))
}

func TestUnary(t *testing.T) {
	t.Parallel()

	m := mustInts(t, 1, 3, -2, 0, 5)

	neg, err := matrix.Neg(m)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, -5}, ints(neg))

	pos, err := matrix.Pos(m)
	require.NoError(t, err)
	assert.Equal(t, ints(m), ints(pos))

	abs, err := matrix.Abs(m)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 5}, ints(abs))

	c, err := matrix.Conj(matrix.Fill(mustShape(t, 1, 1), numeric.NewComplex(1, 2)))
	require.NoError(t, err)
	v, err := matrix.Complex128(c)
	require.NoError(t, err)
	assert.Equal(t, complex(1, -2), v)
}

func TestEqualityAndComparison_Elementwise(t *testing.T) {
	t.Parallel()

	a := mustInts(t, 1, 3, 1, 5, 3)
	b := mustInts(t, 1, 3, 1, 2, 4)

	eq, err := matrix.Eq[numeric.Int](a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, eq.Data())

	ne, err := matrix.Ne[numeric.Int](a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true}, ne.Data())

	lt, err := matrix.Lt[numeric.Int](a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, lt.Data())

	le, err := matrix.Le[numeric.Int](a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, le.Data())

	gt, err := matrix.Gt[numeric.Int](a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, gt.Data())

	ge, err := matrix.Ge[numeric.Int](a, b)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, ge.Data())

	same, err := matrix.Equal[numeric.Int](a, a)
	require.NoError(t, err)
	assert.True(t, same)

	same, err = matrix.Equal[numeric.Int](a, b)
	require.NoError(t, err)
	assert.False(t, same)

	same, err = matrix.Equal[numeric.Int](a, a.Copy())
	require.NoError(t, err)
	assert.True(t, same)
}

func TestRealDivision(t *testing.T) {
	t.Parallel()

	a := mustReals(t, 1, 4, 7, -7, 7, -7)
	b := mustReals(t, 1, 4, 2, 2, -2, -2)

	q, r, err := matrix.DivMod[numeric.Real](a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, -4, -4, 3}, reals(q))
	assert.Equal(t, []float64{1, 1, -1, -1}, reals(r))

	d, err := matrix.Div[numeric.Real](a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, -3.5, -3.5, 3.5}, reals(d))

	_, _, err = matrix.DivMod[numeric.Real](a, mustReals(t, 2, 2, 1, 1, 1, 1))
	assert.ErrorIs(t, err, matrix.ErrShapeMismatch)

	inf, err := matrix.Div[numeric.Real](a, matrix.Scalar(numeric.Real(0)))
	require.NoError(t, err)
	assert.True(t, math.IsInf(reals(inf)[0], 1))
}

func TestTrueDiv_Integral(t *testing.T) {
	t.Parallel()

	a := mustInts(t, 1, 3, 7, -7, 1)
	got, err := matrix.TrueDiv[numeric.Int](a, matrix.Scalar(numeric.Int(2)))
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, -3.5, 0.5}, reals(got))

	fd, err := matrix.FloorDiv[numeric.Int](a, matrix.Scalar(numeric.Int(2)))
	require.NoError(t, err)
	assert.Equal(t, []int{3, -4, 0}, ints(fd))
}

func TestRational_Exact(t *testing.T) {
	t.Parallel()

	third := numeric.NewRational(1, 3)
	m, err := matrix.New(mustShape(t, 1, 3), []numeric.Rational{third, third, third})
	require.NoError(t, err)

	sum, err := matrix.Add[numeric.Rational](m, m)
	require.NoError(t, err)
	sum, err = matrix.Add[numeric.Rational](sum, m)
	require.NoError(t, err)

	one := matrix.Fill(m.Shape(), numeric.NewRational(1, 1))
	eq, err := matrix.Equal[numeric.Rational](sum, one)
	require.NoError(t, err)
	assert.True(t, eq)

	f, err := matrix.ToReal(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, reals(f)[0], 1e-15)
}

func TestConversionsAndDemotion(t *testing.T) {
	t.Parallel()

	one := mustInts(t, 1, 1, 42)
	many := mustInts(t, 1, 2, 1, 2)

	f, err := matrix.Float64(one)
	require.NoError(t, err)
	assert.Equal(t, 42.0, f)

	c, err := matrix.Complex128(one)
	require.NoError(t, err)
	assert.Equal(t, complex(42, 0), c)

	_, err = matrix.Float64(many)
	assert.ErrorIs(t, err, matrix.ErrNotScalar)
	_, err = matrix.Complex128(many)
	assert.ErrorIs(t, err, matrix.ErrNotScalar)
	_, err = matrix.Float64[numeric.Int](nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	cm, err := matrix.ToComplex(many)
	require.NoError(t, err)
	assert.Equal(t, numeric.Complexes(1+0i, 2+0i), cm.Data())
}
