// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"
	"math"

	"github.com/katalvlaran/agroplan/cond"
	"github.com/katalvlaran/agroplan/lstsq"
	"github.com/katalvlaran/agroplan/matrix"
	"github.com/katalvlaran/agroplan/perturb"
)

const (
	opAnalyze = "sensitivity.Analyze"
	opLocal   = "sensitivity.LocalMatrix"
)

// Report is the outcome of one perturbation experiment.
type Report struct {
	XBase      matrix.Vector `json:"x_base" yaml:"x_base"`
	XPerturbed matrix.Vector `json:"x_perturbed" yaml:"x_perturbed"`
	PerturbedB matrix.Vector `json:"perturbed_b" yaml:"perturbed_b"`
	DeltaB     matrix.Vector `json:"delta_b" yaml:"delta_b"`

	// RelDx is ‖x_pert − x_base‖₂ / ‖x_base‖₂.
	RelDx float64 `json:"rel_dx" yaml:"rel_dx"`
	// RelDb is ‖Δb‖₂ / ‖b‖₂.
	RelDb float64 `json:"rel_db" yaml:"rel_db"`

	Kappa cond.Result `json:"kappa" yaml:"kappa"`
	// Bound is κ·RelDb, math.MaxFloat64 when A is singular.
	Bound         float64 `json:"bound" yaml:"bound"`
	BoundExceeded bool    `json:"bound_exceeded" yaml:"bound_exceeded"`

	Seed       int64   `json:"seed" yaml:"seed"`
	RelPerturb float64 `json:"rel_perturb" yaml:"rel_perturb"`
}

// Analyze perturbs b by the relative magnitude r and reports how the
// least-squares solution of a·x ≈ b responds.
//
// Implementation:
//   - Stage 1: ValidateSystem; factorize a once (lstsq.NewSolver).
//   - Stage 2: x_base; reject ‖x_base‖ = 0.
//   - Stage 3: perturb.Vector(b, r, seed); x_pert against the same factorization.
//   - Stage 4: relative changes, κ from the same singular values, bound.
//
// Errors:
//   - matrix.ErrInvalidInput family (NaN/Inf, negative r), matrix.ErrDimensionMismatch.
//   - ErrZeroSolution (matrix.ErrDegenerateInput).
//
// Determinism:
//   - Identical inputs and seed give a bit-for-bit identical Report.
func Analyze(a matrix.Matrix, b matrix.Vector, r float64, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}
	solver, err := lstsq.NewSolver(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}
	rep, err := analyze(solver, b, r, o.seed, o.boundTol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAnalyze, err)
	}

	return rep, nil
}

// analyze runs one experiment against an existing factorization.
func analyze(solver *lstsq.Solver, b matrix.Vector, r float64, seed int64, boundTol float64) (*Report, error) {
	xBase, err := solver.Solve(b)
	if err != nil {
		return nil, err
	}
	baseNorm := xBase.Norm2()
	if baseNorm == 0 {
		return nil, ErrZeroSolution
	}

	p, err := perturb.Vector(b, r, seed)
	if err != nil {
		return nil, err
	}
	xPert, err := solver.Solve(p.Perturbed)
	if err != nil {
		return nil, err
	}
	dx, err := xPert.Sub(xBase)
	if err != nil {
		return nil, err
	}

	dec := solver.Decomposition()
	rep := &Report{
		XBase:      xBase,
		XPerturbed: xPert,
		PerturbedB: p.Perturbed,
		DeltaB:     p.Delta,
		RelDx:      dx.Norm2() / baseNorm,
		RelDb:      p.Delta.Norm2() / b.Norm2(),
		Kappa:      cond.FromValues(dec.Values(), dec.Cutoff()),
		Seed:       seed,
		RelPerturb: r,
	}
	rep.Bound = bound(rep.Kappa, rep.RelDb)
	rep.BoundExceeded = !rep.Kappa.Singular && rep.RelDx > rep.Bound*(1+boundTol)

	return rep, nil
}

// bound returns κ·relDb, saturated at math.MaxFloat64.
func bound(kappa cond.Result, relDb float64) float64 {
	if kappa.Singular {
		return math.MaxFloat64
	}
	v := kappa.Value * relDb
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}

	return v
}

// LocalMatrix returns S with S_ij = |A_ij·x_j| / ‖A·x‖₂, the share of each
// coefficient in the resource usage of plan x. When A·x = 0 the zero matrix
// is returned.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf, matrix.ErrDimensionMismatch
//     (x.Len() != Cols(A)).
//
// Complexity: O(m·n).
func LocalMatrix(a matrix.Matrix, x matrix.Vector) (*matrix.Dense, error) {
	if err := matrix.ValidateMatrixInput(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opLocal, err)
	}
	if err := matrix.ValidateVecLen(x, a.Cols()); err != nil {
		return nil, fmt.Errorf("%s: %w", opLocal, err)
	}
	if err := matrix.ValidateFiniteVector(x); err != nil {
		return nil, fmt.Errorf("%s: %w", opLocal, err)
	}

	ax, err := matrix.MatVec(a, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLocal, err)
	}
	norm := ax.Norm2()
	if norm == 0 {
		zero, err := matrix.NewDense(a.Rows(), a.Cols())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opLocal, err)
		}

		return zero, nil
	}

	contrib, err := matrix.ScaleColumns(a, x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLocal, err)
	}
	out, err := matrix.AbsDiv(contrib, norm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLocal, err)
	}

	return out, nil
}
