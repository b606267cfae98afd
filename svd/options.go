// SPDX-License-Identifier: MIT

package svd

import "math"

// Defaults (single source of truth).
const (
	// DefaultTolerance is the relative orthogonality threshold for skipping a
	// column pair: |γ| ≤ tol·√(α·β). Equal to the float64 machine epsilon.
	DefaultTolerance = 0x1p-52

	// DefaultMaxSweeps caps the number of full p<q sweeps.
	DefaultMaxSweeps = 64
)

const (
	panicToleranceInvalid = "svd: WithTolerance: tol must be finite and in (0, 1)"
	panicMaxSweepsInvalid = "svd: WithMaxSweeps: n must be ≥ 1"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol       float64
	maxSweeps int
}

// WithTolerance sets the relative orthogonality threshold of the Jacobi sweep.
// Panics unless 0 < tol < 1 and tol is finite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithMaxSweeps caps the number of Jacobi sweeps. Panics when n < 1.
func WithMaxSweeps(n int) Option {
	if n < 1 {
		panic(panicMaxSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = n }
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance, maxSweeps: DefaultMaxSweeps}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
