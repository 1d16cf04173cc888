// SPDX-License-Identifier: MIT

// Package matrix - incremental construction of a Dense.
//
// Builder is the mutable staging area used by solvers and generators that
// derive a new matrix cell by cell (spanning trees, doubled multigraphs,
// synthetic instances). Build snapshots the staged cells into an immutable
// Dense; the Builder may keep being used afterwards without affecting it.

package matrix

import "fmt"

const ctxSet = "Set" // method tag used in error wrappers

// Builder stages weights for a Dense of fixed order n. The zero value is not
// usable; obtain one from NewBuilder or FromDense.
type Builder struct {
	n    int
	data []int
}

// NewBuilder returns a Builder for an all-zero n×n matrix.
// Returns ErrEmpty when n < 1.
func NewBuilder(n int) (*Builder, error) {
	if n < 1 {
		return nil, fmt.Errorf("matrix.NewBuilder(%d): %w", n, ErrEmpty)
	}

	return &Builder{n: n, data: make([]int, n*n)}, nil
}

// FromDense returns a Builder pre-loaded with a copy of d.
func FromDense(d *Dense) (*Builder, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	b := &Builder{n: d.n, data: make([]int, len(d.data))}
	copy(b.data, d.data)

	return b, nil
}

// Size returns the order of the staged matrix.
func (b *Builder) Size() int { return b.n }

// Get returns the staged weight of i→j, or 0 when out of range.
func (b *Builder) Get(i, j int) int {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return 0
	}

	return b.data[i*b.n+j]
}

// Set stages weight w for i→j.
//
// Errors:
//   - ErrOutOfRange      i or j outside [0, n)
//   - ErrNegativeWeight  w < 0
//   - ErrNonZeroDiagonal i == j and w != 0
func (b *Builder) Set(i, j, w int) error {
	if i < 0 || i >= b.n || j < 0 || j >= b.n {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if w < 0 {
		return denseErrorf(ctxSet, i, j, ErrNegativeWeight)
	}
	if i == j && w != 0 {
		return denseErrorf(ctxSet, i, j, ErrNonZeroDiagonal)
	}
	b.data[i*b.n+j] = w

	return nil
}

// SetSymmetric stages w for both i→j and j→i.
func (b *Builder) SetSymmetric(i, j, w int) error {
	if err := b.Set(i, j, w); err != nil {
		return err
	}

	return b.Set(j, i, w)
}

// Build returns an immutable snapshot of the staged cells.
// Every invariant of Dense already holds because Set enforces it.
// Complexity: O(n²).
func (b *Builder) Build() *Dense {
	d := &Dense{n: b.n, data: make([]int, len(b.data))}
	copy(d.data, b.data)

	return d
}
