// SPDX-License-Identifier: MIT

package ridge

import (
	"fmt"
	"math"

	"github.com/katalvlaran/agroplan/lstsq"
	"github.com/katalvlaran/agroplan/matrix"
)

const (
	opSolve   = "ridge.Solve"
	opCompare = "ridge.Compare"
)

// Solve returns the ridge solution x of (AᵀA + λI)·x = Aᵀb.
//
// Implementation:
//   - Stage 1: validate λ, then ValidateSystem(a, b).
//   - Stage 2: λ = 0 → lstsq.Solve; otherwise the selected method.
//
// Errors:
//   - ErrNegativeLambda, matrix.ErrNaNInf, matrix.ErrDimensionMismatch.
//   - ErrNotPositiveDefinite (MethodNormalEquations only).
//
// Complexity:
//   - MethodSVD O(SVD); MethodNormalEquations O(m·n² + n³).
func Solve(a matrix.Matrix, b matrix.Vector, lambda float64, opts ...Option) (matrix.Vector, error) {
	o := gatherOptions(opts...)
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		return matrix.Vector{}, fmt.Errorf("%s: λ=%g: %w", opSolve, lambda, ErrNegativeLambda)
	}
	if err := matrix.ValidateSystem(a, b); err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	var (
		x   matrix.Vector
		err error
	)
	switch {
	case lambda == 0:
		x, err = lstsq.Solve(a, b)
	case o.method == MethodNormalEquations:
		x, err = solveNormal(a, b, lambda)
	default:
		x, err = solveSVD(a, b, lambda)
	}
	if err != nil {
		return matrix.Vector{}, fmt.Errorf("%s: %w", opSolve, err)
	}

	return x, nil
}

// solveSVD applies x = Σ σ_i/(σ_i²+λ)·(u_iᵀb)·v_i over the retained directions.
func solveSVD(a matrix.Matrix, b matrix.Vector, lambda float64) (matrix.Vector, error) {
	s, err := lstsq.NewSolver(a)
	if err != nil {
		return matrix.Vector{}, err
	}

	return s.SolveWith(b, func(sigma float64) float64 {
		return sigma / (sigma*sigma + lambda)
	})
}

// solveNormal forms AᵀA + λI and solves by Cholesky.
func solveNormal(a matrix.Matrix, b matrix.Vector, lambda float64) (matrix.Vector, error) {
	g, err := matrix.Gram(a)
	if err != nil {
		return matrix.Vector{}, err
	}
	if g, err = matrix.AddScaledIdentity(g, lambda); err != nil {
		return matrix.Vector{}, err
	}
	l, err := matrix.Cholesky(g)
	if err != nil {
		return matrix.Vector{}, err
	}
	atb, err := matrix.MatTVec(a, b)
	if err != nil {
		return matrix.Vector{}, err
	}

	return matrix.CholeskySolve(l, atb)
}

// Comparison holds the unregularized and ridge solutions of one system.
type Comparison struct {
	Lambda          float64       `json:"lambda" yaml:"lambda"`
	Method          Method        `json:"method" yaml:"method"`
	Normal          matrix.Vector `json:"normal" yaml:"normal"`
	Regularized     matrix.Vector `json:"regularized" yaml:"regularized"`
	NormalNorm      float64       `json:"normal_norm" yaml:"normal_norm"`
	RegularizedNorm float64       `json:"regularized_norm" yaml:"regularized_norm"`
	// ShrinkRatio is RegularizedNorm / NormalNorm (0 when NormalNorm is 0).
	ShrinkRatio float64 `json:"shrink_ratio" yaml:"shrink_ratio"`
}

// Compare solves a·x ≈ b without and with regularization λ.
// Errors mirror Solve.
func Compare(a matrix.Matrix, b matrix.Vector, lambda float64, opts ...Option) (*Comparison, error) {
	o := gatherOptions(opts...)
	normal, err := lstsq.Solve(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompare, err)
	}
	reg, err := Solve(a, b, lambda, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompare, err)
	}

	c := &Comparison{
		Lambda:          lambda,
		Method:          o.method,
		Normal:          normal,
		Regularized:     reg,
		NormalNorm:      normal.Norm2(),
		RegularizedNorm: reg.Norm2(),
	}
	if c.NormalNorm > 0 {
		c.ShrinkRatio = c.RegularizedNorm / c.NormalNorm
	}

	return c, nil
}
