// SPDX-License-Identifier: MIT

package lstsq

import (
	"fmt"

	"github.com/katalvlaran/agroplan/matrix"
	"github.com/katalvlaran/agroplan/svd"
)

// Operation tags for error wrapping.
const (
	opNewSolver = "lstsq.NewSolver"
	opSolve     = "lstsq.Solve"
	opResidual  = "lstsq.Residual"
	opPinv      = "lstsq.PseudoInverse"
)

// Solver holds the factorization of one matrix A and solves A·x ≈ b for
// arbitrary right-hand sides of length Rows(A).
type Solver struct {
	dec    *svd.Decomposition
	cutoff float64
	rank   int
}

// NewSolver validates and factorizes a.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - O(SVD) once; every Solve is then O(m·k + n·k).
func NewSolver(a matrix.Matrix, opts ...Option) (*Solver, error) {
	o := gatherOptions(opts...)
	dec, err := svd.Decompose(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewSolver, err)
	}
	cutoff := dec.Cutoff()
	if o.hasRCond {
		cutoff = o.rcond * dec.Max()
	}

	return &Solver{dec: dec, cutoff: cutoff, rank: dec.Rank(cutoff)}, nil
}

// Decomposition returns the underlying SVD.
func (s *Solver) Decomposition() *svd.Decomposition { return s.dec }

// Cutoff returns the singular-value threshold in effect.
func (s *Solver) Cutoff() float64 { return s.cutoff }

// Rank returns the number of singular values above the cutoff.
func (s *Solver) Rank() int { return s.rank }

// Solve returns the minimum-norm least-squares solution for b.
//
// Errors:
//   - matrix.ErrDimensionMismatch when b.Len() != Rows(A).
//   - matrix.ErrNaNInf for non-finite b.
func (s *Solver) Solve(b matrix.Vector) (matrix.Vector, error) {
	return s.SolveWith(b, reciprocal)
}

// SolveWith weights every retained direction by f(σ_i) instead of 1/σ_i.
// It backs spectral-filter solvers such as ridge regression.
func (s *Solver) SolveWith(b matrix.Vector, f func(sigma float64) float64) (matrix.Vector, error) {
	rows, _ := s.dec.Shape()
	if err := matrix.ValidateVecLen(b, rows); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err := matrix.ValidateFiniteVector(b); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	utb, err := matrix.MatTVec(s.dec.U(), b)
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	x, err := matrix.MatVec(s.dec.V(), s.filter(utb, f))
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return x, nil
}

// filter returns c_i = f(σ_i)·(Uᵀb)_i for σ_i above the cutoff, 0 otherwise.
func (s *Solver) filter(utb matrix.Vector, f func(float64) float64) matrix.Vector {
	values := s.dec.Values()
	coef := utb.Values()
	for i, sigma := range values {
		if sigma > s.cutoff {
			coef[i] *= f(sigma)
			continue
		}
		coef[i] = 0
	}

	return matrix.NewVector(coef...)
}

func reciprocal(sigma float64) float64 { return 1 / sigma }

// PseudoInverse returns the truncated A⁺ = V·Σ⁺·Uᵀ (n×m).
func (s *Solver) PseudoInverse() (*matrix.Dense, error) {
	values := s.dec.Values()
	inv := make([]float64, len(values))
	for i, sigma := range values {
		if sigma > s.cutoff {
			inv[i] = 1 / sigma
		}
	}
	vs, err := matrix.ScaleColumns(s.dec.V(), matrix.NewVector(inv...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPinv, err)
	}
	ut, err := matrix.Transpose(s.dec.U())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPinv, err)
	}
	out, err := matrix.Mul(vs, ut)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPinv, err)
	}

	return out, nil
}
