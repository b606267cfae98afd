// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed unless a test targets the numeric policy.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/agroplan/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the At-based materialization path.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from row literals or fails the test.
func MustRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		tb.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	if err != nil {
		tb.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandomDense returns an r×c matrix filled from a seeded source in [-1,1).
func RandomDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	if err != nil {
		tb.Fatalf("NewDenseFromData: %v", err)
	}

	return m
}

// CompareClose asserts every entry of got is within tol of want.
func CompareClose(tb testing.TB, want [][]float64, got matrix.Matrix, tol float64) {
	tb.Helper()
	if got.Rows() != len(want) || got.Cols() != len(want[0]) {
		tb.Fatalf("shape %dx%d, want %dx%d", got.Rows(), got.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = range want {
		for j = range want[i] {
			if g := MustAt(tb, got, i, j); math.Abs(g-want[i][j]) > tol {
				tb.Fatalf("[%d,%d] = %g, want %g (tol %g)", i, j, g, want[i][j], tol)
			}
		}
	}
}
