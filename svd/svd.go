// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/agroplan/matrix"
	"gonum.org/v1/gonum/floats"
)

const opDecompose = "svd.Decompose"

// completionFloor is the residual norm below which a Gram–Schmidt candidate
// is considered to lie in the span of the accepted columns.
const completionFloor = 1e-8

// Decompose computes the thin SVD of a.
//
// Implementation:
//   - Stage 1: validate (NotNil → Finite); work on Aᵀ when rows < cols;
//     divide the working copy by max|a_ij| so dot products neither
//     overflow nor underflow.
//   - Stage 2: one-sided Jacobi sweeps over column pairs p<q in fixed order,
//     accumulating the rotations into V, until a sweep rotates nothing or
//     the sweep cap is reached.
//   - Stage 3: σ_j = ‖w_j‖₂, sort descending (stable), U_j = w_j/σ_j for
//     σ_j above the rank cutoff, Gram–Schmidt completion for the rest.
//   - Stage 4: multiply singular values and cutoff back by the scale; swap
//     U and V back when the transpose was decomposed.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNaNInf (both matrix.ErrInvalidInput).
//
// Complexity:
//   - Time O(sweeps·m·n²), Space O(m·n + n²).
func Decompose(a matrix.Matrix, opts ...Option) (*Decomposition, error) {
	if err := matrix.ValidateMatrixInput(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	o := gatherOptions(opts...)

	d, err := matrix.DenseCopyOf(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	rows, cols := d.Shape()
	transposed := rows < cols
	if transposed {
		if d, err = matrix.Transpose(d); err != nil {
			return nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
	}

	w, v := columnsOf(d), identityColumns(d.Cols())
	scale := normalize(w)
	sweeps := jacobiSweeps(w, v, o)

	res := finalize(w, v, d.Rows())
	res.sweeps = sweeps
	if scale != 1 {
		for j := range res.values {
			res.values[j] *= scale
		}
		res.cutoff *= scale
	}
	if transposed {
		res.u, res.v = res.v, res.u
	}
	res.rows, res.cols = rows, cols

	return res, nil
}

// jacobiSweeps orthogonalizes the columns of w in place, applying the same
// rotations to v. Returns the number of sweeps performed.
func jacobiSweeps(w, v [][]float64, o Options) int {
	n := len(w)
	var (
		sweep, p, q, i     int
		alpha, beta, gamma float64
		zeta, t, c, s      float64
		wp, wq, vp, vq     []float64
		x, y               float64
		rotated            bool
	)
	for sweep = 0; sweep < o.maxSweeps; sweep++ {
		rotated = false
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				wp, wq = w[p], w[q]
				alpha = floats.Dot(wp, wp)
				beta = floats.Dot(wq, wq)
				if alpha == 0 || beta == 0 {
					continue
				}
				gamma = floats.Dot(wp, wq)
				if math.Abs(gamma) <= o.tol*math.Sqrt(alpha*beta) {
					continue
				}

				// Rotation zeroing the (p,q) entry of WᵀW.
				zeta = (beta - alpha) / (2 * gamma)
				t = math.Copysign(1, zeta) / (math.Abs(zeta) + math.Hypot(1, zeta))
				c = 1 / math.Sqrt(1+t*t)
				s = c * t

				for i = range wp {
					x, y = wp[i], wq[i]
					wp[i] = c*x - s*y
					wq[i] = s*x + c*y
				}
				vp, vq = v[p], v[q]
				for i = range vp {
					x, y = vp[i], vq[i]
					vp[i] = c*x - s*y
					vq[i] = s*x + c*y
				}
				rotated = true
			}
		}
		if !rotated {
			return sweep + 1
		}
	}

	return o.maxSweeps
}

// finalize turns converged columns into sorted singular triplets.
func finalize(w, v [][]float64, rows int) *Decomposition {
	k := len(w)
	sigma := make([]float64, k)
	order := make([]int, k)
	var j int
	for j = 0; j < k; j++ {
		sigma[j] = floats.Norm(w[j], 2)
		order[j] = j
	}
	sort.SliceStable(order, func(x, y int) bool { return sigma[order[x]] > sigma[order[y]] })

	values := make([]float64, k)
	uCols := make([][]float64, k)
	vCols := make([][]float64, k)
	for j = 0; j < k; j++ {
		values[j] = sigma[order[j]]
		vCols[j] = v[order[j]]
	}

	cutoff := RelativeCutoff(rows, k, values[0])
	var (
		pending []int
		col     []float64
	)
	for j = 0; j < k; j++ {
		if values[j] > cutoff && values[j] > 0 {
			col = make([]float64, rows)
			floats.ScaleTo(col, 1/values[j], w[order[j]])
			uCols[j] = col
			continue
		}
		pending = append(pending, j)
	}
	completeBasis(uCols, pending, w, order, rows)

	return &Decomposition{
		values: values,
		u:      fromColumns(rows, uCols),
		v:      fromColumns(k, vCols),
		cutoff: cutoff,
	}
}

// completeBasis fills uCols[j] for every j in pending with a unit vector
// orthogonal to all columns already present. Candidates are tried in order:
// the normalized working column, then e_0, e_1, ... The accepted set never
// exceeds rows vectors, so a candidate always exists.
func completeBasis(uCols [][]float64, pending []int, w [][]float64, order []int, rows int) {
	var (
		j, e  int
		cand  []float64
		norm  float64
		found bool
	)
	for _, j = range pending {
		found = false
		if norm = floats.Norm(w[order[j]], 2); norm > 0 {
			cand = make([]float64, rows)
			floats.ScaleTo(cand, 1/norm, w[order[j]])
			found = orthonormalize(cand, uCols)
		}
		for e = 0; !found && e < rows; e++ {
			cand = make([]float64, rows)
			cand[e] = 1
			found = orthonormalize(cand, uCols)
		}
		uCols[j] = cand
	}
}

// orthonormalize removes from cand its projections onto every non-nil column
// of basis (two passes of modified Gram–Schmidt) and normalizes it.
// Reports false when the residual falls below completionFloor.
func orthonormalize(cand []float64, basis [][]float64) bool {
	var pass int
	for pass = 0; pass < 2; pass++ {
		for _, b := range basis {
			if b == nil {
				continue
			}
			floats.AddScaled(cand, -floats.Dot(cand, b), b)
		}
	}
	norm := floats.Norm(cand, 2)
	if norm < completionFloor {
		return false
	}
	floats.Scale(1/norm, cand)

	return true
}

// RelativeCutoff returns the default rank cutoff max(rows, cols)·ε·σmax used
// by the least-squares solver and the condition estimator.
func RelativeCutoff(rows, cols int, sigmaMax float64) float64 {
	n := rows
	if cols > n {
		n = cols
	}

	return float64(n) * epsilon * sigmaMax
}

// epsilon is the float64 machine epsilon (2⁻⁵²).
const epsilon = 0x1p-52

// normalize divides every column of w by the largest absolute entry and
// returns that entry. A zero matrix is left as is and reports 1.
func normalize(w [][]float64) float64 {
	var maxAbs float64
	for _, col := range w {
		for _, x := range col {
			if x = math.Abs(x); x > maxAbs {
				maxAbs = x
			}
		}
	}
	if maxAbs == 0 || maxAbs == 1 {
		return 1
	}
	for _, col := range w {
		for i := range col {
			col[i] /= maxAbs
		}
	}

	return maxAbs
}

// columnsOf copies d into column slices.
func columnsOf(d *matrix.Dense) [][]float64 {
	rows, cols := d.Shape()
	data := d.Data()
	out := make([][]float64, cols)
	var i, j int
	for j = 0; j < cols; j++ {
		out[j] = make([]float64, rows)
		for i = 0; i < rows; i++ {
			out[j][i] = data[i*cols+j]
		}
	}

	return out
}

// identityColumns returns the n×n identity as column slices.
func identityColumns(n int) [][]float64 {
	out := make([][]float64, n)
	for j := range out {
		out[j] = make([]float64, n)
		out[j][j] = 1
	}

	return out
}

// fromColumns packs column slices of equal length rows into a *Dense.
func fromColumns(rows int, cols [][]float64) *matrix.Dense {
	data := make([]float64, rows*len(cols))
	var i, j int
	for j = range cols {
		for i = 0; i < rows; i++ {
			data[i*len(cols)+j] = cols[j][i]
		}
	}
	// Shape is consistent by construction.
	out, _ := matrix.NewDenseFromData(rows, len(cols), data)

	return out
}
