// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the numerical packages.
// This file intentionally contains ONLY the public read-only Matrix interface.
// Errors and kernels live in dedicated files (errors.go, impl_*.go).
package matrix

// Matrix is a read-only two-dimensional array of float64 values.
//
// The engine never mutates its inputs: every kernel reads through this
// interface (or the *Dense fast-path) and allocates a fresh result.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
