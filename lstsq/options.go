// SPDX-License-Identifier: MIT

package lstsq

import "math"

const panicRCondInvalid = "lstsq: WithRCond: rcond must be finite and ≥ 0"

// Option configures a Solver. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective solver configuration.
type Options struct {
	rcond    float64 // relative cutoff factor; valid only when hasRCond
	hasRCond bool
}

// WithRCond replaces the default cutoff max(m,n)·ε·σ_max by rcond·σ_max.
// Singular values at or below the cutoff are treated as zero.
func WithRCond(rcond float64) Option {
	if math.IsNaN(rcond) || math.IsInf(rcond, 0) || rcond < 0 {
		panic(panicRCondInvalid)
	}

	return func(o *Options) {
		o.rcond = rcond
		o.hasRCond = true
	}
}

func gatherOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
