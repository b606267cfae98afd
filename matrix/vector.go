// SPDX-License-Identifier: MIT

// Package matrix - Vector: immutable ordered sequence of float64.
//
// Purpose:
//   - Right-hand sides, solutions and perturbations all travel as Vector.
//   - Constructors copy, accessors return copies; nothing exported mutates.
//   - Arithmetic delegates to gonum/floats kernels (scaled L2 norm, axpy, dot).
//
// Complexity quicksheet:
//   - NewVector/Values: O(n); Norm2/Dot/Sub/Add/AddScaled/Scale: O(n).

package matrix

import (
	"encoding/json"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Operation tags for Vector error wrapping.
const (
	opVecAt        = "Vector.At"
	opVecSub       = "Vector.Sub"
	opVecAdd       = "Vector.Add"
	opVecAddScaled = "Vector.AddScaled"
	opVecDot       = "Vector.Dot"
)

// Vector is an immutable dense vector. The zero value is an empty vector.
type Vector struct {
	data []float64
}

// NewVector returns a Vector holding a copy of values.
func NewVector(values ...float64) Vector {
	buf := make([]float64, len(values))
	copy(buf, values)

	return Vector{data: buf}
}

// ZeroVector returns the zero vector of length n (n ≥ 0).
func ZeroVector(n int) Vector {
	if n < 0 {
		n = 0
	}

	return Vector{data: make([]float64, n)}
}

// wrapVector adopts buf without copying. Callers must not retain buf.
func wrapVector(buf []float64) Vector { return Vector{data: buf} }

// Len returns the number of entries.
func (v Vector) Len() int { return len(v.data) }

// At returns entry i or ErrOutOfRange.
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d): %w", opVecAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// Values returns a copy of the entries.
func (v Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Norm2 returns the Euclidean norm ‖v‖₂ (overflow-safe scaled accumulation).
func (v Vector) Norm2() float64 {
	if len(v.data) == 0 {
		return NormZero
	}

	return floats.Norm(v.data, 2)
}

// IsFinite reports whether every entry is finite.
func (v Vector) IsFinite() bool {
	if floats.HasNaN(v.data) {
		return false
	}
	for _, x := range v.data {
		if math.IsInf(x, 0) {
			return false
		}
	}

	return true
}

// Equal reports bitwise equality of lengths and entries.
func (v Vector) Equal(w Vector) bool {
	return floats.Equal(v.data, w.data)
}

// EqualApprox reports |v_i - w_i| ≤ tol for all i (absolute or relative, per gonum).
func (v Vector) EqualApprox(w Vector, tol float64) bool {
	return floats.EqualApprox(v.data, w.data, tol)
}

// Sub returns v - w.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Sub(w Vector) (Vector, error) {
	if len(v.data) != len(w.data) {
		return Vector{}, matrixErrorf(opVecSub, ErrDimensionMismatch)
	}
	dst := make([]float64, len(v.data))
	floats.SubTo(dst, v.data, w.data)

	return wrapVector(dst), nil
}

// Add returns v + w.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Add(w Vector) (Vector, error) {
	if len(v.data) != len(w.data) {
		return Vector{}, matrixErrorf(opVecAdd, ErrDimensionMismatch)
	}
	dst := make([]float64, len(v.data))
	floats.AddTo(dst, v.data, w.data)

	return wrapVector(dst), nil
}

// AddScaled returns v + alpha*w.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) AddScaled(alpha float64, w Vector) (Vector, error) {
	if len(v.data) != len(w.data) {
		return Vector{}, matrixErrorf(opVecAddScaled, ErrDimensionMismatch)
	}
	dst := make([]float64, len(v.data))
	floats.AddScaledTo(dst, v.data, alpha, w.data)

	return wrapVector(dst), nil
}

// Scale returns alpha*v.
func (v Vector) Scale(alpha float64) Vector {
	dst := make([]float64, len(v.data))
	floats.ScaleTo(dst, alpha, v.data)

	return wrapVector(dst)
}

// Dot returns vᵀw.
// Errors: ErrDimensionMismatch when lengths differ.
func (v Vector) Dot(w Vector) (float64, error) {
	if len(v.data) != len(w.data) {
		return 0, matrixErrorf(opVecDot, ErrDimensionMismatch)
	}

	return floats.Dot(v.data, w.data), nil
}

// String renders the vector as "[a, b, c]".
func (v Vector) String() string {
	return fmt.Sprintf("%v", v.data)
}

// MarshalJSON encodes the vector as a JSON array of numbers.
func (v Vector) MarshalJSON() ([]byte, error) {
	if v.data == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(v.data)
}

// UnmarshalJSON decodes a JSON array of numbers into a fresh buffer.
func (v *Vector) UnmarshalJSON(b []byte) error {
	var buf []float64
	if err := json.Unmarshal(b, &buf); err != nil {
		return err
	}
	v.data = buf

	return nil
}

// MarshalYAML encodes the vector as a YAML sequence.
func (v Vector) MarshalYAML() (interface{}, error) {
	return v.Values(), nil
}
