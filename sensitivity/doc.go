// SPDX-License-Identifier: MIT

// Package sensitivity measures how far a least-squares solution moves when
// the right-hand side is perturbed, and relates that motion to the
// first-order bound κ₂(A)·‖Δb‖/‖b‖.
//
// Analyze runs one controlled experiment: base solve, seeded perturbation of
// b, perturbed solve against the same factorization of A, relative changes,
// condition number and bound. Sweep repeats it over derived seeds and
// summarizes the spread. Compare runs the well/ill pair with identical
// magnitude and seed. LocalMatrix produces the |A_ij·x_j| / ‖A·x‖ heatmap
// data of the per-entry contributions.
//
// A relative change above the bound is reported through Report.BoundExceeded;
// it is a diagnostic, never an error.
package sensitivity
