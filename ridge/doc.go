// SPDX-License-Identifier: MIT

// Package ridge solves Tikhonov-regularized least squares:
//
//	minimize ‖A·x − b‖₂² + λ‖x‖₂²  ⇔  (AᵀA + λI)·x = Aᵀb
//
// Two methods are available. MethodSVD (default) weights every singular
// direction by the filter factor σ/(σ² + λ), truncating at the same rank
// cutoff as package lstsq. MethodNormalEquations forms AᵀA + λI and solves it
// by Cholesky. For λ > 0 both give the same x up to rounding; λ = 0 reduces
// to the unregularized truncated pseudo-inverse solution of lstsq.
//
// Compare reports the unregularized and regularized solutions side by side
// with their norms, the quantity a ridge penalty is meant to shrink.
package ridge
