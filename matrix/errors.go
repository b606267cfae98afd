// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the engine.
// All algorithms MUST return these sentinels (or sentinels that wrap them) and
// tests MUST check them via errors.Is. No algorithm should panic on
// user-triggered error conditions. Panics are reserved for programmer errors
// in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON CATEGORIES
// ------------------
// Three category sentinels classify every failure the engine can report:
//
//	ErrInvalidInput      - non-finite entries, negative λ or magnitude, bad shapes.
//	ErrDimensionMismatch - operand shapes do not line up (A vs b, Mul, ...).
//	ErrDegenerateInput   - zero-norm targets or solutions that make a ratio undefined.
//
// Specific sentinels (here and in sibling packages) wrap their category with
// %w, so errors.Is matches both the specific and the category sentinel.
// Every message is prefixed with "<package>: ..." for easy grepping.

var (
	// ErrInvalidInput is the category of inputs that violate the numeric contract.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. len(b) != A.Rows(), or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDegenerateInput is the category of inputs for which a relative quantity
	// is undefined (zero-norm target, zero-norm solution, ...).
	ErrDegenerateInput = errors.New("matrix: degenerate input")
)

var (
	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = fmt.Errorf("matrix: NaN or Inf encountered: %w", ErrInvalidInput)

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive
	// or that row slices of a literal have unequal lengths.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0 and rectangular: %w", ErrInvalidInput)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("matrix: nil matrix: %w", ErrInvalidInput)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("matrix: matrix is not square: %w", ErrDimensionMismatch)

	// ErrNotPositiveDefinite is returned when a Cholesky factorization meets a
	// non-positive pivot.
	ErrNotPositiveDefinite = fmt.Errorf("matrix: matrix is not positive definite: %w", ErrDegenerateInput)
)
