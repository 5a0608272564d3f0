// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and a dense reference for the kernels.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spmat/sparse"
	"github.com/stretchr/testify/require"
)

// MustSparse builds a matrix from entries or fails the test.
func MustSparse(tb testing.TB, rows, cols int, entries ...sparse.Entry) *sparse.Sparse {
	tb.Helper()
	m, err := sparse.FromEntries(rows, cols, entries)
	require.NoError(tb, err)

	return m
}

// MustDense builds a matrix from a dense grid or fails the test.
func MustDense(tb testing.TB, grid [][]int64) *sparse.Sparse {
	tb.Helper()
	m, err := sparse.FromDense(grid)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m *sparse.Sparse, i, j int) int64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// e is a terse Entry literal for table fixtures.
func e(r, c int, v int64) sparse.Entry {
	return sparse.Entry{Row: r, Col: c, Value: v}
}

// randomSparse fills an r×c matrix with roughly density*r*c non-zeros in
// [-5, 5] \ {0}, drawn from a seeded source.
func randomSparse(tb testing.TB, rng *rand.Rand, r, c int, density float64) *sparse.Sparse {
	tb.Helper()
	m, err := sparse.NewSparse(r, c)
	require.NoError(tb, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				v := int64(rng.Intn(11) - 5)
				require.NoError(tb, m.Set(i, j, v))
			}
		}
	}

	return m
}

// denseMul is the brute-force O(r*n*c) reference product.
func denseMul(a, b [][]int64) [][]int64 {
	r, n, c := len(a), len(b), len(b[0])
	out := make([][]int64, r)
	for i := 0; i < r; i++ {
		out[i] = make([]int64, c)
		for j := 0; j < c; j++ {
			var sum int64
			for k := 0; k < n; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}

// requireClean asserts invariants Z and B on m.
func requireClean(tb testing.TB, m *sparse.Sparse) {
	tb.Helper()
	require.False(tb, sparse.HasExplicitZero_TestOnly(m), "explicit zero stored")
	require.False(tb, sparse.OutOfShape_TestOnly(m), "entry outside shape")
}
