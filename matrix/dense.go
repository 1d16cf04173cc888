// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Keep weights in one flat buffer addressed as i*n + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Offer an unchecked Weight accessor for solver hot loops whose indices are
//     already proven to be in range.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "New" // constructor tag used in error wrappers
	ctxAt  = "At"  // method tag used in error wrappers
	ctxRow = "Row" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps err with the method tag and the offending coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable n×n row-major matrix of integer weights.
//   - n is the order (rows == cols).
//   - data has length n*n; offset of (i,j) is i*n + j.
type Dense struct {
	n    int
	data []int
}

// New deep-copies rows into a Dense after validating it.
//
// Validation order (first failure wins):
//  1. len(rows) == 0          → ErrEmpty
//  2. len(rows[i]) != n       → ErrNonSquare
//  3. rows[i][j] < 0          → ErrNegativeWeight
//  4. rows[i][i] != 0         → ErrNonZeroDiagonal
//
// Complexity: O(n²) time and memory.
func New(rows [][]int) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("matrix.%s: %w", ctxNew, ErrEmpty)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("matrix.%s: row %d has %d entries, want %d: %w",
				ctxNew, i, len(rows[i]), n, ErrNonSquare)
		}
	}

	d := &Dense{n: n, data: make([]int, n*n)}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w := rows[i][j]
			if w < 0 {
				return nil, denseErrorf(ctxNew, i, j, ErrNegativeWeight)
			}
			if i == j && w != 0 {
				return nil, denseErrorf(ctxNew, i, j, ErrNonZeroDiagonal)
			}
			d.data[i*n+j] = w
		}
	}

	return d, nil
}

// Size returns the order n of the matrix (0 for a nil receiver).
func (d *Dense) Size() int {
	if d == nil {
		return 0
	}

	return d.n
}

// At returns the weight of i→j with bounds checks.
// Complexity: O(1).
func (d *Dense) At(i, j int) (int, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Weight returns the weight of i→j without bounds checks.
// The caller guarantees 0 ≤ i, j < Size(); violating that panics like a slice index.
func (d *Dense) Weight(i, j int) int { return d.data[i*d.n+j] }

// HasEdge reports whether an edge i→j exists: i != j, both in range, weight > 0.
func (d *Dense) HasEdge(i, j int) bool {
	if d == nil || i == j || i < 0 || i >= d.n || j < 0 || j >= d.n {
		return false
	}

	return d.data[i*d.n+j] != 0
}

// Row returns a copy of row i.
func (d *Dense) Row(i int) ([]int, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	if i < 0 || i >= d.n {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out, nil
}

// Rows returns a deep copy of the matrix as [][]int.
// Complexity: O(n²).
func (d *Dense) Rows() [][]int {
	if d == nil {
		return nil
	}
	out := make([][]int, d.n)
	for i := 0; i < d.n; i++ {
		out[i] = make([]int, d.n)
		copy(out[i], d.data[i*d.n:(i+1)*d.n])
	}

	return out
}

// EdgeCount returns the number of non-zero off-diagonal entries.
// For a symmetric matrix every undirected edge is counted twice.
// Complexity: O(n²).
func (d *Dense) EdgeCount() int {
	if d == nil {
		return 0
	}
	var cnt int
	for _, w := range d.data {
		if w != 0 {
			cnt++
		}
	}

	return cnt
}

// Degree returns the number of non-zero entries in row v plus column v.
// In a multigraph stored as directed pairs this is the undirected degree of v.
// Returns 0 when v is out of range.
// Complexity: O(n).
func (d *Dense) Degree(v int) int {
	if d == nil || v < 0 || v >= d.n {
		return 0
	}
	var deg, k int
	for k = 0; k < d.n; k++ {
		if d.data[v*d.n+k] != 0 {
			deg++
		}
		if d.data[k*d.n+v] != 0 {
			deg++
		}
	}

	return deg
}

// IsSymmetric reports whether Weight(i,j) == Weight(j,i) for all pairs.
// Complexity: O(n²) over the upper triangle.
func (d *Dense) IsSymmetric() bool {
	if d == nil {
		return true
	}
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			if d.data[i*d.n+j] != d.data[j*d.n+i] {
				return false
			}
		}
	}

	return true
}

// String renders the matrix one bracketed row per line.
func (d *Dense) String() string {
	if d == nil {
		return "<nil>"
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < d.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < d.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", d.data[i*d.n+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
