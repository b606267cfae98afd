// SPDX-License-Identifier: MIT

// Package lstsq solves dense least-squares problems A·x ≈ b through a
// truncated SVD pseudo-inverse.
//
// The returned x is the minimum-Euclidean-norm minimizer of ‖A·x − b‖₂:
//
//	x = Σ_{σ_i > cutoff} (u_iᵀ·b / σ_i) · v_i,   cutoff = max(m, n)·ε·σ_max
//
// Directions whose singular value is at or below the cutoff contribute
// nothing, so rank-deficient and zero matrices are handled without error.
//
// Solve is the one-shot entry point. A Solver factorizes A once and serves
// any number of right-hand sides; it is immutable and safe for concurrent use.
package lstsq
