// SPDX-License-Identifier: MIT

package planning

import (
	"fmt"

	"github.com/katalvlaran/agroplan/cond"
	"github.com/katalvlaran/agroplan/lstsq"
	"github.com/katalvlaran/agroplan/matrix"
	"github.com/katalvlaran/agroplan/ridge"
	"github.com/katalvlaran/agroplan/sensitivity"
)

const (
	opAssess = "planning.Assess"
	opSweep  = "planning.Sweep"
)

// Scenario is the plan obtained for one resource level.
type Scenario struct {
	// Scale multiplies the binding resources: 1−r, 1 or 1+r.
	Scale  float64       `json:"scale" yaml:"scale"`
	X      matrix.Vector `json:"x" yaml:"x"`
	Profit float64       `json:"profit" yaml:"profit"`
}

// Heatmap is the local sensitivity matrix with its axis labels.
type Heatmap struct {
	Resources []string    `json:"resources" yaml:"resources"`
	Crops     []string    `json:"crops" yaml:"crops"`
	Values    [][]float64 `json:"values" yaml:"values"`
}

// Assessment is the full robustness report of a plan.
type Assessment struct {
	Model        string   `json:"model,omitempty" yaml:"model,omitempty"`
	Resources    []string `json:"resources" yaml:"resources"`
	Crops        []string `json:"crops" yaml:"crops"`
	EqualityRows int      `json:"equality_rows" yaml:"equality_rows"`

	XBase  matrix.Vector `json:"x_base" yaml:"x_base"`
	Profit float64       `json:"profit" yaml:"profit"`
	Rank   int           `json:"rank" yaml:"rank"`
	Kappa  cond.Result   `json:"kappa" yaml:"kappa"`
	Class  cond.Class    `json:"class" yaml:"class"`

	Pessimistic Scenario `json:"pessimistic" yaml:"pessimistic"`
	Optimistic  Scenario `json:"optimistic" yaml:"optimistic"`

	Sensitivity    *sensitivity.Report     `json:"sensitivity" yaml:"sensitivity"`
	Diagnostics    *sensitivity.Comparison `json:"diagnostics" yaml:"diagnostics"`
	Regularization *ridge.Comparison       `json:"regularization" yaml:"regularization"`
	Heatmap        Heatmap                 `json:"heatmap" yaml:"heatmap"`
}

// Assess evaluates m.
//
// Implementation:
//   - Stage 1: Validate; factorize the binding subsystem once.
//   - Stage 2: nominal, pessimistic and optimistic plans with their profit.
//   - Stage 3: seeded sensitivity experiment on the binding subsystem.
//   - Stage 4: well-vs-ill comparison (binding subsystem against the
//     reference) and ridge comparison on the reference.
//   - Stage 5: local sensitivity matrix of the full A at the nominal plan.
//
// Errors:
//   - ErrInvalidModel, matrix.ErrNaNInf (matrix.ErrInvalidInput).
//   - sensitivity.ErrZeroSolution when the nominal plan is zero.
//   - Anything returned by the numerical packages, wrapped.
func Assess(m Model, opts ...Option) (*Assessment, error) {
	o := gatherOptions(opts...)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opAssess, err)
	}
	ref := o.reference()
	if err := ref.Validate(); err != nil {
		return nil, fmt.Errorf("%s: reference: %w", opAssess, err)
	}

	a, err := m.Matrix()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssess, err)
	}
	aEq, bEq, err := m.Equality()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssess, err)
	}
	solver, err := lstsq.NewSolver(aEq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssess, err)
	}
	profit := matrix.NewVector(m.Profit...)

	nominal, err := scenario(solver, bEq, profit, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: nominal: %w", opAssess, err)
	}
	pess, err := scenario(solver, bEq, profit, 1-m.RelPerturb)
	if err != nil {
		return nil, fmt.Errorf("%s: pessimistic: %w", opAssess, err)
	}
	opt, err := scenario(solver, bEq, profit, 1+m.RelPerturb)
	if err != nil {
		return nil, fmt.Errorf("%s: optimistic: %w", opAssess, err)
	}

	rep, err := sensitivity.Analyze(aEq, bEq, m.RelPerturb, o.sensitivityOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAssess, err)
	}

	refA, refB, err := ref.Equality()
	if err != nil {
		return nil, fmt.Errorf("%s: reference: %w", opAssess, err)
	}
	diag, err := sensitivity.Compare(aEq, bEq, refA, refB, m.RelPerturb, o.sensitivityOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: diagnostics: %w", opAssess, err)
	}
	reg, err := ridge.Compare(refA, refB, o.lambda, ridge.WithMethod(o.method))
	if err != nil {
		return nil, fmt.Errorf("%s: regularization: %w", opAssess, err)
	}

	local, err := sensitivity.LocalMatrix(a, nominal.X)
	if err != nil {
		return nil, fmt.Errorf("%s: heatmap: %w", opAssess, err)
	}

	dec := solver.Decomposition()
	kappa := cond.FromValues(dec.Values(), dec.Cutoff())

	return &Assessment{
		Model:          m.Name,
		Resources:      m.Resources,
		Crops:          m.Crops,
		EqualityRows:   m.EqualityRows,
		XBase:          nominal.X,
		Profit:         nominal.Profit,
		Rank:           solver.Rank(),
		Kappa:          kappa,
		Class:          kappa.Class(),
		Pessimistic:    pess,
		Optimistic:     opt,
		Sensitivity:    rep,
		Diagnostics:    diag,
		Regularization: reg,
		Heatmap: Heatmap{
			Resources: m.Resources,
			Crops:     m.Crops,
			Values:    local.ToRows(),
		},
	}, nil
}

// scenario solves for b·scale and prices the resulting plan.
func scenario(solver *lstsq.Solver, b, profit matrix.Vector, scale float64) (Scenario, error) {
	x, err := solver.Solve(b.Scale(scale))
	if err != nil {
		return Scenario{}, err
	}
	p, err := profit.Dot(x)
	if err != nil {
		return Scenario{}, err
	}

	return Scenario{Scale: scale, X: x, Profit: p}, nil
}

// Sweep repeats the sensitivity experiment of m's binding subsystem over
// WithSweepSeeds seeds derived from the WithSeed value.
func Sweep(m Model, opts ...Option) (*sensitivity.SweepSummary, error) {
	o := gatherOptions(opts...)
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSweep, err)
	}
	aEq, bEq, err := m.Equality()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSweep, err)
	}
	sum, err := sensitivity.Sweep(aEq, bEq, m.RelPerturb, o.sweepSeeds, o.sensitivityOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSweep, err)
	}

	return sum, nil
}
