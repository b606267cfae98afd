// SPDX-License-Identifier: MIT

package lstsq

import (
	"fmt"

	"github.com/katalvlaran/agroplan/matrix"
)

// Solve returns the minimum-norm least-squares solution of a·x ≈ b.
//
// Implementation:
//   - Stage 1: ValidateSystem (NotNil → Finite(A) → len(b) → Finite(b)).
//   - Stage 2: factorize a, then apply the truncated pseudo-inverse to b.
//
// Errors:
//   - matrix.ErrDimensionMismatch, matrix.ErrNaNInf, matrix.ErrNilMatrix.
//
// Complexity:
//   - O(SVD) + O(m·k + n·k).
func Solve(a matrix.Matrix, b matrix.Vector, opts ...Option) (matrix.Vector, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	s, err := NewSolver(a, opts...)
	if err != nil {
		return matrix.Vector{}, err
	}

	return s.Solve(b)
}

// Residual returns r = a·x − b.
// Errors: matrix.ErrDimensionMismatch when x or b do not fit a.
func Residual(a matrix.Matrix, x, b matrix.Vector) (matrix.Vector, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opResidual, err)
	}
	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opResidual, err)
	}
	r, err := ax.Sub(b)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opResidual, err)
	}

	return r, nil
}

// PseudoInverse returns the truncated Moore–Penrose inverse of a (n×m).
func PseudoInverse(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	s, err := NewSolver(a, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPinv, err)
	}

	return s.PseudoInverse()
}
