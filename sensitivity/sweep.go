// SPDX-License-Identifier: MIT

package sensitivity

import (
	"fmt"

	"github.com/katalvlaran/agroplan/cond"
	"github.com/katalvlaran/agroplan/lstsq"
	"github.com/katalvlaran/agroplan/matrix"
	"github.com/katalvlaran/agroplan/perturb"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	opSweep   = "sensitivity.Sweep"
	opCompare = "sensitivity.Compare"
)

// SweepSummary aggregates Analyze over several perturbation seeds.
type SweepSummary struct {
	Runs  int     `json:"runs" yaml:"runs"`
	Seeds []int64 `json:"seeds" yaml:"seeds"`

	RelDx     []float64 `json:"rel_dx" yaml:"rel_dx"`
	MeanRelDx float64   `json:"mean_rel_dx" yaml:"mean_rel_dx"`
	StdRelDx  float64   `json:"std_rel_dx" yaml:"std_rel_dx"`
	MinRelDx  float64   `json:"min_rel_dx" yaml:"min_rel_dx"`
	MaxRelDx  float64   `json:"max_rel_dx" yaml:"max_rel_dx"`

	RelDb      float64     `json:"rel_db" yaml:"rel_db"`
	Kappa      cond.Result `json:"kappa" yaml:"kappa"`
	Bound      float64     `json:"bound" yaml:"bound"`
	Violations int         `json:"violations" yaml:"violations"`
}

// Sweep runs seeds experiments with seeds DeriveSeed(base, 0..seeds-1),
// base being the WithSeed value, all against one factorization of a.
//
// Errors: those of Analyze, plus ErrNoSeeds for seeds < 1.
//
// Complexity: O(SVD) + seeds·O(m·k + n·k).
func Sweep(a matrix.Matrix, b matrix.Vector, r float64, seeds int, opts ...Option) (*SweepSummary, error) {
	if seeds < 1 {
		return nil, fmt.Errorf("%s: %w", opSweep, ErrNoSeeds)
	}
	o := gatherOptions(opts...)
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opSweep, err)
	}
	solver, err := lstsq.NewSolver(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSweep, err)
	}

	sum := &SweepSummary{
		Runs:  seeds,
		Seeds: make([]int64, seeds),
		RelDx: make([]float64, seeds),
	}
	var (
		i   int
		rep *Report
	)
	for i = 0; i < seeds; i++ {
		sum.Seeds[i] = perturb.DeriveSeed(o.seed, uint64(i))
		if rep, err = analyze(solver, b, r, sum.Seeds[i], o.boundTol); err != nil {
			return nil, fmt.Errorf("%s: seed %d: %w", opSweep, sum.Seeds[i], err)
		}
		sum.RelDx[i] = rep.RelDx
		if rep.BoundExceeded {
			sum.Violations++
		}
		// Identical for every run: ‖Δb‖ = r·‖b‖ and A is fixed.
		sum.RelDb, sum.Kappa, sum.Bound = rep.RelDb, rep.Kappa, rep.Bound
	}

	sum.MeanRelDx, sum.StdRelDx = stat.MeanStdDev(sum.RelDx, nil)
	if seeds == 1 {
		sum.StdRelDx = 0
	}
	sum.MinRelDx = floats.Min(sum.RelDx)
	sum.MaxRelDx = floats.Max(sum.RelDx)

	return sum, nil
}

// Comparison pairs the reports of a well- and an ill-conditioned system
// analyzed with the same magnitude and seed.
type Comparison struct {
	Well *Report `json:"well" yaml:"well"`
	Ill  *Report `json:"ill" yaml:"ill"`
	// Amplification is Ill.RelDx / Well.RelDx (0 when Well.RelDx is 0).
	Amplification float64 `json:"amplification" yaml:"amplification"`
}

// Compare analyzes both systems with identical r and options.
func Compare(wellA matrix.Matrix, wellB matrix.Vector, illA matrix.Matrix, illB matrix.Vector, r float64, opts ...Option) (*Comparison, error) {
	well, err := Analyze(wellA, wellB, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: well: %w", opCompare, err)
	}
	ill, err := Analyze(illA, illB, r, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: ill: %w", opCompare, err)
	}
	c := &Comparison{Well: well, Ill: ill}
	if well.RelDx > 0 {
		c.Amplification = ill.RelDx / well.RelDx
	}

	return c, nil
}
