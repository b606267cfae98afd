// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels the numerical packages build on:
// transpose, products, matrix-vector products, Gram matrices, ridge shifts,
// norms, column scaling and a Cholesky solve. All functions perform strict
// fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Declare canonical linear-algebra kernels used across the engine.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Inputs are read through DenseCopyOf: *Dense operands are used in place
//     (immutable, so no copy), other Matrix implementations are materialized once.
//   - Every kernel allocates a fresh result; operands are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for substitutions and dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose    = "Transpose"
	opMul          = "Mul"
	opMatVec       = "MatVec"
	opMatTVec      = "MatTVec"
	opGram         = "Gram"
	opAddIdentity  = "AddScaledIdentity"
	opFrobenius    = "FrobeniusNorm"
	opScaleCols    = "ScaleColumns"
	opAbsDiv       = "AbsDiv"
	opAddDense     = "Add"
	opSubDense     = "Sub"
	opCholesky     = "Cholesky"
	opCholeskySolv = "CholeskySolve"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: materialize m as *Dense; allocate Dense(cols, rows).
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i] in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	dm, err := DenseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := dm.r, dm.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = dm.data[baseSrc+j]
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: validate inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides, skipping zero A[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := DenseCopyOf(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := DenseCopyOf(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := &Dense{r: aRows, c: bCols, data: make([]float64, aRows*bCols)}
	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x.
//
// Contract: m non-nil; x.Len() == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x Vector) (Vector, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return Vector{}, matrixErrorf(opMatVec, err)
	}
	if err = ValidateVecLen(x, d.c); err != nil {
		return Vector{}, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var (
		i, j, base int
		acc        float64
	)
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x.data[j]
		}
		y[i] = acc
	}

	return wrapVector(y), nil
}

// MatTVec computes y = mᵀ * x without materializing mᵀ.
//
// Contract: m non-nil; x.Len() == m.Rows().
// Determinism: fixed i→j accumulation order (row sweeps).
// Complexity: Time O(r*c), Space O(c).
func MatTVec(m Matrix, x Vector) (Vector, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return Vector{}, matrixErrorf(opMatTVec, err)
	}
	if err = ValidateVecLen(x, d.r); err != nil {
		return Vector{}, matrixErrorf(opMatTVec, err)
	}

	y := make([]float64, d.c)
	var (
		i, j, base int
		xv         float64
	)
	for i = 0; i < d.r; i++ {
		xv = x.data[i]
		if xv == 0 {
			continue
		}
		base = i * d.c
		for j = 0; j < d.c; j++ {
			y[j] += d.data[base+j] * xv
		}
	}

	return wrapVector(y), nil
}

// Gram returns mᵀm (n×n, symmetric).
// Only the upper triangle is accumulated; the lower one is mirrored so the
// result is exactly symmetric.
// Complexity: Time O(r*c²), Space O(c²).
func Gram(m Matrix) (*Dense, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	n := d.c
	res := &Dense{r: n, c: n, data: make([]float64, n*n)}

	var (
		i, p, q, base int
		sum           float64
	)
	for p = 0; p < n; p++ {
		for q = p; q < n; q++ {
			sum = ZeroSum
			for i = 0; i < d.r; i++ {
				base = i * n
				sum += d.data[base+p] * d.data[base+q]
			}
			res.data[p*n+q] = sum
			res.data[q*n+p] = sum
		}
	}

	return res, nil
}

// AddScaledIdentity returns m + alpha·I for a square m.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n²).
func AddScaledIdentity(m Matrix, alpha float64) (*Dense, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opAddIdentity, err)
	}
	if err = ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opAddIdentity, err)
	}
	n := d.r
	res := &Dense{r: n, c: n, data: make([]float64, n*n)}
	copy(res.data, d.data)
	var i int
	for i = 0; i < n; i++ {
		res.data[i*n+i] += alpha
	}

	return res, nil
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²), accumulated with scaling to avoid
// overflow and underflow (same recurrence as LAPACK dnrm2).
// Complexity: O(r*c).
func FrobeniusNorm(m Matrix) (float64, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}

	return scaledNorm(d.data), nil
}

// scaledNorm computes the Euclidean norm of s with the scale/sumsq recurrence.
func scaledNorm(s []float64) float64 {
	var (
		scale = NormZero
		sumSq = 1.0
		absV  float64
	)
	for _, v := range s {
		if v == 0 {
			continue
		}
		absV = math.Abs(v)
		if scale < absV {
			sumSq = 1 + sumSq*(scale/absV)*(scale/absV)
			scale = absV
		} else {
			sumSq += (absV / scale) * (absV / scale)
		}
	}
	if scale == NormZero {
		return NormZero
	}

	return scale * math.Sqrt(sumSq)
}

// ScaleColumns returns out[i,j] = m[i,j] * x[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch when x.Len() != m.Cols().
// Complexity: O(r*c).
func ScaleColumns(m Matrix, x Vector) (*Dense, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if err = ValidateVecLen(x, d.c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	res := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			res.data[base+j] = d.data[base+j] * x.data[j]
		}
	}

	return res, nil
}

// AbsDiv returns out[i,j] = |m[i,j]| / divisor.
// The caller guarantees divisor != 0.
// Complexity: O(r*c).
func AbsDiv(m Matrix, divisor float64) (*Dense, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opAbsDiv, err)
	}
	res := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data))}
	for idx, v := range d.data {
		res.data[idx] = math.Abs(v) / divisor
	}

	return res, nil
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := DenseCopyOf(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := DenseCopyOf(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for idx := range da.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAddDense) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSubDense) }

// Cholesky computes the lower-triangular L with m = L·Lᵀ for a symmetric
// positive definite m. Only the lower triangle of m is read.
//
// Implementation:
//   - Stage 1: validate square input.
//   - Stage 2: column-by-column Cholesky–Banachiewicz in fixed order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotPositiveDefinite (pivot ≤ 0).
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(m Matrix) (*Dense, error) {
	d, err := DenseCopyOf(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if err = ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	n := d.r
	l := &Dense{r: n, c: n, data: make([]float64, n*n)}

	var (
		i, j, k int
		sum     float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			sum = d.data[i*n+j]
			for k = 0; k < j; k++ {
				sum -= l.data[i*n+k] * l.data[j*n+k]
			}
			if i == j {
				if sum <= 0 || math.IsNaN(sum) {
					return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d = %g: %w", i, sum, ErrNotPositiveDefinite))
				}
				l.data[i*n+i] = math.Sqrt(sum)
				continue
			}
			l.data[i*n+j] = sum / l.data[j*n+j]
		}
	}

	return l, nil
}

// CholeskySolve solves (L·Lᵀ) x = b given the factor L from Cholesky.
// Forward substitution L y = b (top-down), then backward Lᵀ x = y (bottom-up).
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
// Complexity: O(n²).
func CholeskySolve(l Matrix, b Vector) (Vector, error) {
	d, err := DenseCopyOf(l)
	if err != nil {
		return Vector{}, matrixErrorf(opCholeskySolv, err)
	}
	if err = ValidateSquare(d); err != nil {
		return Vector{}, matrixErrorf(opCholeskySolv, err)
	}
	if err = ValidateVecLen(b, d.r); err != nil {
		return Vector{}, matrixErrorf(opCholeskySolv, err)
	}
	n := d.r
	y := make([]float64, n)
	x := make([]float64, n)

	var (
		i, k int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = b.data[i]
		for k = 0; k < i; k++ {
			sum -= d.data[i*n+k] * y[k]
		}
		y[i] = sum / d.data[i*n+i]
	}
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= d.data[k*n+i] * x[k]
		}
		x[i] = sum / d.data[i*n+i]
	}

	return wrapVector(x), nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Negative tolerances are normalized to their absolute value.
//
// Errors: ErrNaNInf for non-finite tolerances, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := DenseCopyOf(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := DenseCopyOf(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil
		}
	}

	return true, nil
}
