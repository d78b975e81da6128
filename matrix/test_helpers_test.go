// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures over numeric.Int and numeric.Real.
//   • Keep conversions between native slices and matrices out of test bodies.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matrices/matrix"
	"github.com/katalvlaran/matrices/numeric"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// mustShape builds a valid shape or fails the test.
func mustShape(t testing.TB, r, c int) matrix.Shape {
	t.Helper()
	s, err := matrix.NewShape(r, c)
	require.NoError(t, err)

	return s
}

// mustInts builds an r×c Int matrix from row-major native values.
func mustInts(t testing.TB, r, c int, xs ...int) *matrix.Matrix[numeric.Int] {
	t.Helper()
	m, err := matrix.New(mustShape(t, r, c), numeric.Ints(xs...))
	require.NoError(t, err)

	return m
}

// mustReals builds an r×c Real matrix from row-major native values.
func mustReals(t testing.TB, r, c int, xs ...float64) *matrix.Matrix[numeric.Real] {
	t.Helper()
	m, err := matrix.New(mustShape(t, r, c), numeric.Reals(xs...))
	require.NoError(t, err)

	return m
}

// ints flattens an Int matrix back to native ints.
func ints(m *matrix.Matrix[numeric.Int]) []int {
	return lo.Map(m.Data(), func(x numeric.Int, _ int) int { return int(x) })
}

// reals flattens a Real matrix back to native floats.
func reals(m *matrix.Matrix[numeric.Real]) []float64 {
	return lo.Map(m.Data(), func(x numeric.Real, _ int) float64 { return float64(x) })
}

// randReals fills an n×n Real matrix from a fixed seed.
func randReals(t testing.TB, n int, seed int64) *matrix.Matrix[numeric.Real] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	xs := make([]float64, n*n)
	for i := range xs {
		xs[i] = rng.Float64()*2 - 1
	}

	return mustReals(t, n, n, xs...)
}
