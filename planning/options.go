// SPDX-License-Identifier: MIT

package planning

import (
	"math"

	"github.com/katalvlaran/agroplan/ridge"
	"github.com/katalvlaran/agroplan/sensitivity"
)

const (
	panicLambdaInvalid = "planning: WithLambda: lambda must be finite and ≥ 0"
	panicSeedsInvalid  = "planning: WithSweepSeeds: seeds must be ≥ 1"
)

// DefaultSweepSeeds is the number of seeds Sweep runs when unset.
const DefaultSweepSeeds = 32

// Option configures Assess and Sweep.
type Option func(*Options)

// Options stores the effective assessment configuration.
type Options struct {
	seed        int64
	lambda      float64
	method      ridge.Method
	sweepSeeds  int
	illSystem   *Model
	boundTol    float64
	hasBoundTol bool
}

// WithSeed sets the perturbation seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithLambda sets the ridge strength applied to the ill-conditioned reference.
func WithLambda(lambda float64) Option {
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		panic(panicLambdaInvalid)
	}

	return func(o *Options) { o.lambda = lambda }
}

// WithRidgeMethod selects the ridge solution method.
func WithRidgeMethod(m ridge.Method) Option {
	ridge.WithMethod(m) // panics on unknown methods

	return func(o *Options) { o.method = m }
}

// WithSweepSeeds sets how many seeds Sweep runs.
func WithSweepSeeds(n int) Option {
	if n < 1 {
		panic(panicSeedsInvalid)
	}

	return func(o *Options) { o.sweepSeeds = n }
}

// WithReference replaces IllConditioned as the diagnostic and ridge system.
func WithReference(m Model) Option {
	return func(o *Options) { o.illSystem = &m }
}

// WithBoundTolerance forwards to sensitivity.WithBoundTolerance.
func WithBoundTolerance(tol float64) Option {
	sensitivity.WithBoundTolerance(tol) // validates

	return func(o *Options) { o.boundTol, o.hasBoundTol = tol, true }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		seed:       sensitivity.DefaultSeed,
		lambda:     ridge.DefaultLambda,
		method:     ridge.MethodSVD,
		sweepSeeds: DefaultSweepSeeds,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func (o Options) sensitivityOptions() []sensitivity.Option {
	out := []sensitivity.Option{sensitivity.WithSeed(o.seed)}
	if o.hasBoundTol {
		out = append(out, sensitivity.WithBoundTolerance(o.boundTol))
	}

	return out
}

func (o Options) reference() Model {
	if o.illSystem != nil {
		return *o.illSystem
	}

	return IllConditioned()
}
