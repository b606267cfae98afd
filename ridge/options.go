// SPDX-License-Identifier: MIT

package ridge

import (
	"fmt"
	"strings"
)

// DefaultLambda is the regularization strength used when none is configured.
const DefaultLambda = 10.0

// Method selects how the regularized system is solved.
type Method int

const (
	// MethodSVD applies the filter factors σ/(σ²+λ) over the SVD of A.
	MethodSVD Method = iota
	// MethodNormalEquations solves (AᵀA + λI)·x = Aᵀb by Cholesky.
	MethodNormalEquations
)

var methodNames = [...]string{
	MethodSVD:             "svd",
	MethodNormalEquations: "normal-equations",
}

// String returns the canonical method name.
func (m Method) String() string {
	if m < MethodSVD || m > MethodNormalEquations {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// MarshalText encodes the method by name.
func (m Method) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// ParseMethod maps a canonical name (case-insensitive) onto a Method.
func ParseMethod(name string) (Method, error) {
	for m, n := range methodNames {
		if strings.EqualFold(name, n) {
			return Method(m), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
}

const panicMethodInvalid = "ridge: WithMethod: unknown method"

// Option configures a ridge solve. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	method Method
}

// WithMethod selects the solution method.
func WithMethod(m Method) Option {
	if m < MethodSVD || m > MethodNormalEquations {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

func gatherOptions(opts ...Option) Options {
	o := Options{method: MethodSVD}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
