// SPDX-License-Identifier: MIT

// Package matrix provides the immutable weight matrix every hamcycle solver reads.
//
// A Dense is an n×n row-major matrix of non-negative integer weights:
//
//   - Dense.Weight(i, j) > 0 means an edge i→j with that weight.
//   - A zero off-diagonal entry means "no edge".
//   - The diagonal is always zero.
//
// Symmetry is assumed by the solvers but never enforced: asymmetric input is
// accepted as-is and produces asymmetric results. Use IsSymmetric to check.
//
// Construction is the only place where input is validated. A Dense is built
// either from caller rows (New) or cell by cell (Builder); both reject
// malformed input before any algorithm sees it:
//
//   - ErrEmpty           nil or zero-row input
//   - ErrNonSquare       ragged or non-square rows
//   - ErrNegativeWeight  any weight < 0
//   - ErrNonZeroDiagonal any diagonal entry != 0
//
// Once built, a Dense never changes. Every accessor that hands out rows returns
// a copy, so a Dense can be shared freely between solvers.
//
// Complexity quicksheet:
//   - New: O(n²) copy + validation; Builder.Build: O(n²) copy.
//   - At / Weight / HasEdge: O(1); Degree: O(n); EdgeCount / IsSymmetric: O(n²).
package matrix
