// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"

	"github.com/katalvlaran/agroplan/matrix"
)

// Decomposition holds the thin SVD of an m×n matrix: k = min(m, n) singular
// values in non-increasing order, U (m×k) and V (n×k). It is immutable and
// safe for concurrent reads.
type Decomposition struct {
	rows, cols int
	values     []float64
	u, v       *matrix.Dense
	cutoff     float64
	sweeps     int
}

// Shape returns the dimensions of the decomposed matrix.
func (d *Decomposition) Shape() (rows, cols int) { return d.rows, d.cols }

// Values returns a copy of the singular values, largest first.
func (d *Decomposition) Values() []float64 {
	out := make([]float64, len(d.values))
	copy(out, d.values)

	return out
}

// Max returns σ_max.
func (d *Decomposition) Max() float64 { return d.values[0] }

// Min returns σ_min, the k-th singular value.
func (d *Decomposition) Min() float64 { return d.values[len(d.values)-1] }

// U returns the m×k left singular vectors.
func (d *Decomposition) U() *matrix.Dense { return d.u }

// V returns the n×k right singular vectors.
func (d *Decomposition) V() *matrix.Dense { return d.v }

// Cutoff returns the default rank cutoff max(m,n)·ε·σ_max.
func (d *Decomposition) Cutoff() float64 { return d.cutoff }

// Sweeps reports how many Jacobi sweeps were performed.
func (d *Decomposition) Sweeps() int { return d.sweeps }

// Rank counts the singular values strictly above cutoff.
func (d *Decomposition) Rank(cutoff float64) int {
	var r int
	for _, s := range d.values {
		if s > cutoff {
			r++
		}
	}

	return r
}

// Reconstruct returns U·Σ·Vᵀ.
func (d *Decomposition) Reconstruct() (*matrix.Dense, error) {
	us, err := matrix.ScaleColumns(d.u, matrix.NewVector(d.values...))
	if err != nil {
		return nil, fmt.Errorf("svd.Reconstruct: %w", err)
	}
	vt, err := matrix.Transpose(d.v)
	if err != nil {
		return nil, fmt.Errorf("svd.Reconstruct: %w", err)
	}
	out, err := matrix.Mul(us, vt)
	if err != nil {
		return nil, fmt.Errorf("svd.Reconstruct: %w", err)
	}

	return out, nil
}
