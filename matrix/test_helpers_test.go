// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Offer an independent oracle (gonum/mat) for products and inverses.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
)

// tolProduct bounds the drift between two summation orders of the same product.
const tolProduct = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Embed matrix.Matrix to forward all methods.
//   - Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense
//     to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// NewFilledDense builds an r×c *Dense from row-major data or fails the test.
func NewFilledDense(tb testing.TB, r, c int, data []float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromData(r, c, data)
	require.NoError(tb, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// IdentityDense returns I_n or fails the test.
func IdentityDense(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(tb, err)

	return m
}

// RandDense returns an r×c matrix with entries uniform in [-1, 1),
// reproducible for a given seed.
func RandDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return NewFilledDense(tb, r, c, data)
}

// DiagDominant returns a random n×n matrix made strictly diagonally dominant,
// hence invertible and well-conditioned.
func DiagDominant(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	m := RandDense(tb, n, n, seed)
	for i := 0; i < n; i++ {
		require.NoError(tb, m.Set(i, i, MustAt(tb, m, i, i)+float64(n)+1))
	}

	return m
}

// toGonum copies m into a gonum *mat.Dense (the test oracle).
// gonum rejects zero extents, so callers must pass non-empty matrices.
func toGonum(tb testing.TB, m *matrix.Dense) *mat.Dense {
	tb.Helper()
	r, c := m.Shape()

	return mat.NewDense(r, c, m.RawData())
}

// requireMatchesGonum asserts got equals the gonum matrix want within tol.
func requireMatchesGonum(tb testing.TB, want mat.Matrix, got *matrix.Dense, tol float64) {
	tb.Helper()
	r, c := want.Dims()
	require.Equal(tb, r, got.Rows())
	require.Equal(tb, c, got.Cols())
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(tb, want.At(i, j), MustAt(tb, got, i, j), tol, "(%d,%d)", i, j)
		}
	}
}
