// SPDX-License-Identifier: MIT

// Package cond estimates the 2-norm condition number κ₂(A) = σ_max / σ_min.
//
// A matrix whose smallest singular value is zero, or at or below the rank
// cutoff max(m, n)·ε·σ_max, is reported as singular: Result.Value is then the
// finite sentinel math.MaxFloat64 and Result.Singular is true. Callers treat
// that value as κ → ∞.
//
// Classification thresholds: κ < 1e2 well-conditioned, κ < 1e4 moderately
// conditioned, anything else (including singular) ill-conditioned.
package cond
