// SPDX-License-Identifier: MIT

package perturb

import (
	"fmt"
	"math"

	"github.com/katalvlaran/agroplan/matrix"
	"gonum.org/v1/gonum/floats"
)

// Defaults of the perturbation experiments.
const (
	// DefaultVectorFraction is the relative magnitude applied to right-hand sides.
	DefaultVectorFraction = 0.05
	// DefaultVectorSeed is the seed of the right-hand-side perturbation.
	DefaultVectorSeed int64 = 0

	// DefaultMatrixFraction is the relative magnitude applied to coefficient matrices.
	DefaultMatrixFraction = 0.02
	// DefaultMatrixSeed is the seed of the coefficient-matrix perturbation.
	DefaultMatrixSeed int64 = 1
)

const (
	opVector = "perturb.Vector"
	opMatrix = "perturb.Matrix"
)

// Result is a perturbed vector with the delta that produced it.
type Result struct {
	Perturbed matrix.Vector `json:"perturbed" yaml:"perturbed"`
	Delta     matrix.Vector `json:"delta" yaml:"delta"`
}

// MatrixResult is a perturbed matrix with the delta that produced it.
type MatrixResult struct {
	Perturbed *matrix.Dense
	Delta     *matrix.Dense
}

// Vector returns target + Δ with ‖Δ‖₂ = r·‖target‖₂ and Δ drawn from seed.
//
// Errors:
//   - matrix.ErrNaNInf for non-finite r or target.
//   - ErrNegativeMagnitude for r < 0 (both are matrix.ErrInvalidInput).
//   - ErrZeroNormTarget for r > 0 and ‖target‖₂ == 0.
//
// Complexity: O(n).
func Vector(target matrix.Vector, r float64, seed int64) (Result, error) {
	if err := validateMagnitude(r); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opVector, err)
	}
	if err := matrix.ValidateFiniteVector(target); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opVector, err)
	}
	if r == 0 {
		return Result{Perturbed: target, Delta: matrix.ZeroVector(target.Len())}, nil
	}
	norm := target.Norm2()
	if norm == 0 {
		return Result{}, fmt.Errorf("%s: %w", opVector, ErrZeroNormTarget)
	}

	delta := matrix.NewVector(unitNoise(target.Len(), rngFromSeed(seed))...).Scale(r * norm)
	perturbed, err := target.Add(delta)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opVector, err)
	}

	return Result{Perturbed: perturbed, Delta: delta}, nil
}

// Matrix returns target + Δ with ‖Δ‖_F = r·‖target‖_F and Δ drawn from seed.
// Noise is drawn in row-major order. Errors mirror Vector, plus
// matrix.ErrNilMatrix.
//
// Complexity: O(r·c).
func Matrix(target matrix.Matrix, r float64, seed int64) (MatrixResult, error) {
	if err := validateMagnitude(r); err != nil {
		return MatrixResult{}, fmt.Errorf("%s: %w", opMatrix, err)
	}
	if err := matrix.ValidateMatrixInput(target); err != nil {
		return MatrixResult{}, fmt.Errorf("%s: %w", opMatrix, err)
	}
	d, err := matrix.DenseCopyOf(target)
	if err != nil {
		return MatrixResult{}, fmt.Errorf("%s: %w", opMatrix, err)
	}
	rows, cols := d.Shape()
	if r == 0 {
		zero, err := matrix.NewDense(rows, cols)
		if err != nil {
			return MatrixResult{}, fmt.Errorf("%s: %w", opMatrix, err)
		}

		return MatrixResult{Perturbed: d, Delta: zero}, nil
	}
	norm, err := matrix.FrobeniusNorm(d)
	if err != nil {
		return MatrixResult{}, fmt.Errorf("%s: %w", opMatrix, err)
	}
	if norm == 0 {
		return MatrixResult{}, fmt.Errorf("%s: %w", opMatrix, ErrZeroNormTarget)
	}

	noise := unitNoise(rows*cols, rngFromSeed(seed))
	floats.Scale(r*norm, noise)
	delta, err := matrix.NewDenseFromData(rows, cols, noise)
	if err != nil {
		return MatrixResult{}, fmt.Errorf("%s: %w", opMatrix, err)
	}
	perturbed, err := matrix.Add(d, delta)
	if err != nil {
		return MatrixResult{}, fmt.Errorf("%s: %w", opMatrix, err)
	}

	return MatrixResult{Perturbed: perturbed, Delta: delta}, nil
}

// validateMagnitude rejects non-finite and negative relative magnitudes.
func validateMagnitude(r float64) error {
	if err := matrix.ValidateScalar("r", r); err != nil {
		return err
	}
	if r < 0 {
		return ErrNegativeMagnitude
	}

	return nil
}

// euclidean is the overflow-safe ‖s‖₂.
func euclidean(s []float64) float64 {
	n := floats.Norm(s, 2)
	if math.IsNaN(n) {
		return 0
	}

	return n
}
