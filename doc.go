// SPDX-License-Identifier: MIT

// Package agroplan is a numerical robustness engine for resource-allocation
// plans. It solves A·x ≈ b by least squares through a truncated SVD
// pseudo-inverse, measures how sensitive the solution is to perturbed
// resources and shows how ridge regularization stabilizes collinear systems.
//
// Packages, bottom up:
//
//	matrix/       immutable Dense and Vector, validators, sentinel errors, kernels
//	svd/          one-sided Jacobi singular value decomposition
//	lstsq/        minimum-norm least squares, pseudo-inverse, reusable Solver
//	cond/         spectral condition number and its classification
//	perturb/      seeded relative perturbation of vectors and matrices
//	sensitivity/  perturbation experiments, sweeps, local sensitivity matrix
//	ridge/        Tikhonov regularization by SVD filter factors or Cholesky
//	planning/     plan models (YAML), scenarios and the full assessment
//	cmd/agroplan  command-line driver
//
// Everything is deterministic: identical inputs and seeds give bit-identical
// results, and no package keeps shared mutable state.
//
// Quick start:
//
//	a, _ := planning.Assess(planning.BaseModel())
//	fmt.Println(a.XBase, a.Kappa, a.Profit)
package agroplan
