// SPDX-License-Identifier: MIT

// Package builder generates *matrix.Dense instances for tests, benchmarks,
// examples and the `hamcycle generate` command.
//
// Constructors:
//   - Complete(n, fn)    every pair connected, weight from a WeightFn.
//   - Star(n, w)         hub 0 connected to every leaf; no leaf-leaf edges.
//   - Cycle(n, w)        ring 0-1-…-(n-1)-0 and nothing else.
//   - Euclidean(points)  ceil of the Euclidean distance, at least 1.
//   - RandomMetric(n)    Euclidean over seeded random grid points.
//   - RandomSparse(n, p) symmetric random graph, each pair present with
//     probability p.
//
// Weight policy:
//   - WeightFn receives the configured RNG and the endpoints.
//   - ConstantWeightFn, UniformWeightFn cover the common cases.
//
// Determinism: every stochastic constructor draws only from the RNG set by
// WithSeed (default seed DefaultSeed), so the same seed yields the same matrix.
//
// Euclidean rounding uses ceil, which keeps the triangle inequality:
// ⌈d(x,z)⌉ ≤ ⌈d(x,y) + d(y,z)⌉ ≤ ⌈d(x,y)⌉ + ⌈d(y,z)⌉. Clamping to 1 keeps
// coincident points connected without breaking it.
package builder
