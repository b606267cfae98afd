// SPDX-License-Identifier: MIT

package cond

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/katalvlaran/agroplan/matrix"
	"github.com/katalvlaran/agroplan/svd"
)

const opNumber = "cond.Number"

// Classification thresholds.
const (
	WellThreshold     = 1e2
	ModerateThreshold = 1e4
)

// Result is a condition number estimate.
type Result struct {
	// Value is σ_max/σ_min, or math.MaxFloat64 when Singular.
	Value float64 `json:"value" yaml:"value"`
	// Singular reports σ_min ≤ cutoff.
	Singular bool `json:"singular" yaml:"singular"`
}

// Class returns the classification of r.
func (r Result) Class() Class {
	if r.Singular {
		return Ill
	}

	return Classify(r.Value)
}

// String renders κ in scientific notation, or "inf" when singular.
func (r Result) String() string {
	if r.Singular {
		return "inf"
	}

	return fmt.Sprintf("%.3e", r.Value)
}

// Number returns κ₂(a).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf.
//
// Complexity:
//   - O(SVD).
func Number(a matrix.Matrix) (Result, error) {
	dec, err := svd.Decompose(a)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opNumber, err)
	}

	return FromValues(dec.Values(), dec.Cutoff()), nil
}

// FromValues computes κ from singular values sorted in non-increasing order
// and the rank cutoff that goes with them.
func FromValues(sigma []float64, cutoff float64) Result {
	if len(sigma) == 0 {
		return Result{Value: math.MaxFloat64, Singular: true}
	}
	sMax, sMin := sigma[0], sigma[len(sigma)-1]
	if sMin == 0 || sMin <= cutoff {
		return Result{Value: math.MaxFloat64, Singular: true}
	}

	return Result{Value: sMax / sMin}
}

// Class is a coarse conditioning category.
type Class int

// Class values, best first.
const (
	Well Class = iota
	Moderate
	Ill
)

var classNames = [...]string{
	Well:     "well-conditioned",
	Moderate: "moderately-conditioned",
	Ill:      "ill-conditioned",
}

// Classify maps κ onto a Class.
func Classify(kappa float64) Class {
	switch {
	case math.IsNaN(kappa):
		return Ill
	case kappa < WellThreshold:
		return Well
	case kappa < ModerateThreshold:
		return Moderate
	default:
		return Ill
	}
}

// String returns the human-readable name.
func (c Class) String() string {
	if c < Well || c > Ill {
		return fmt.Sprintf("Class(%d)", int(c))
	}

	return classNames[c]
}

// MarshalText encodes the class by name, for JSON and YAML output.
func (c Class) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// MarshalJSON keeps Value finite in JSON; a singular result encodes as
// {"value": null, "singular": true}.
func (r Result) MarshalJSON() ([]byte, error) {
	type wire struct {
		Value    *float64 `json:"value"`
		Singular bool     `json:"singular"`
	}
	w := wire{Singular: r.Singular}
	if !r.Singular {
		v := r.Value
		w.Value = &v
	}

	return json.Marshal(w)
}
