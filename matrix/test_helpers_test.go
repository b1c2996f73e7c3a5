// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for kernels and the reader.
//   • Keep fixtures exact (integers, fractions, single-radicand surds).

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/eigenkit/matrix"
	"github.com/katalvlaran/eigenkit/number"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// mustInts builds a *Dense from integer rows or fails the test.
func mustInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) number.Quad {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// sqrtN returns √n as a Quad (n may be negative for imaginary values).
func sqrtN(n int64) number.Quad {
	return number.NewQuad(nil, big.NewRat(1, 1), big.NewInt(n))
}

// requireEigenpair asserts (A − λI)v = 0 exactly.
func requireEigenpair(t *testing.T, a matrix.Matrix, lambda number.Quad, v *matrix.Dense) {
	t.Helper()
	shifted, err := matrix.Shift(a, lambda)
	require.NoError(t, err)
	prod, err := matrix.Mul(shifted, v)
	require.NoError(t, err)
	require.True(t, matrix.IsZero(prod), "(A - %s I)v = %s", lambda, prod)
	require.False(t, matrix.IsZero(v), "eigenvector must be non-zero")
}
