// SPDX-License-Identifier: MIT

// Package planning assembles a robustness assessment of a crop-allocation
// plan from the numerical packages.
//
// A Model describes resources (rows of A), crops (columns of A), the
// per-hectare resource use A, the available resources b and the profit per
// hectare of each crop. The first EqualityRows resources are treated as
// binding: the plan x solves that subsystem in the least-squares sense.
//
// Assess reports the plan, its profit under nominal, pessimistic b·(1−r)
// and optimistic b·(1+r) resources, the conditioning of the binding
// subsystem, a seeded sensitivity experiment, the well-vs-ill diagnostic
// against a collinear reference system, the ridge comparison on that system
// and the local sensitivity matrix of the full model. Models are read from
// YAML with Load / LoadFile.
package planning
