// SPDX-License-Identifier: MIT

package sensitivity

import (
	"math"

	"github.com/katalvlaran/agroplan/perturb"
)

const (
	// DefaultSeed seeds the right-hand-side perturbation.
	DefaultSeed = perturb.DefaultVectorSeed

	// DefaultBoundTolerance is the slack allowed above the first-order bound
	// before BoundExceeded is raised: RelDx > Bound·(1 + tol).
	DefaultBoundTolerance = 0.1
)

const panicBoundToleranceInvalid = "sensitivity: WithBoundTolerance: tol must be finite and ≥ 0"

// Option configures an analysis. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective analysis configuration.
type Options struct {
	seed     int64
	boundTol float64
}

// WithSeed sets the perturbation seed (used verbatim).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithBoundTolerance sets the relative slack of the bound diagnostic.
func WithBoundTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicBoundToleranceInvalid)
	}

	return func(o *Options) { o.boundTol = tol }
}

func gatherOptions(opts ...Option) Options {
	o := Options{seed: DefaultSeed, boundTol: DefaultBoundTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
