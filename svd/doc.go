// SPDX-License-Identifier: MIT

// Package svd computes the thin singular value decomposition A = U·Σ·Vᵀ of a
// dense real matrix with the one-sided (Hestenes) Jacobi method.
//
// Guarantees:
//   - Singular values are non-negative and sorted in non-increasing order;
//     there are exactly k = min(m, n) of them.
//   - U (m×k) and V (n×k) have orthonormal columns, including the directions
//     of zero singular values (completed by Gram–Schmidt).
//   - The sweep order is fixed, so identical inputs give bitwise identical
//     factors.
//
// Rectangular inputs with m < n are decomposed through Aᵀ and the factors
// are swapped on return. Reaching the sweep cap is not an error: the factors
// reached so far are returned.
//
// Complexity: O(sweeps · m · n²) time, O(m·n + n²) memory.
package svd
