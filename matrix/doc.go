// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear-algebra primitives of agroplan.
//
// The matrix package provides:
//
//   - Dense, an immutable row-major matrix read through the Matrix interface.
//   - Vector, an immutable float64 sequence with gonum/floats backed arithmetic.
//   - Kernels (Transpose, Mul, MatVec, MatTVec, Gram, AddScaledIdentity,
//     FrobeniusNorm, ScaleColumns, AbsDiv, Cholesky, CholeskySolve, AllClose).
//   - Validators shared by every solver entry point (ValidateSystem, ...).
//   - The error taxonomy: ErrInvalidInput, ErrDimensionMismatch and
//     ErrDegenerateInput, wrapped by every specific sentinel of the module.
//
// Nothing in this package mutates an operand; every kernel returns a freshly
// allocated result, so values can be shared across goroutines freely.
//
// See the examples in this package and in svd / lstsq for usage patterns.
package matrix
