// SPDX-License-Identifier: MIT

// Package perturb generates reproducible, norm-controlled perturbations of
// vectors and matrices.
//
// A perturbation of relative magnitude r draws i.i.d. standard-normal noise
// from a math/rand source seeded with the caller's seed, normalizes it to
// unit norm and scales it to r·‖target‖ (Euclidean for vectors, Frobenius for
// matrices):
//
//	‖Delta‖ = r·‖target‖,  Perturbed = target + Delta
//
// Determinism: the same (shape, r, seed) always yields the same bits. Every
// call builds its own generator, so concurrent callers never share state.
//
// r == 0 returns the target unchanged with an exactly zero delta.
package perturb
