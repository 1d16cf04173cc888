// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// All constructors and checked accessors return these sentinels, usually
// wrapped with call-site context via fmt.Errorf("...: %w", ErrX). Callers
// match them with errors.Is. Nothing in this package panics on user input.

package matrix

import "errors"

var (
	// ErrEmpty is returned when the input has no rows (nil or zero length).
	ErrEmpty = errors.New("matrix: empty matrix")

	// ErrNonSquare signals a ragged or non-square row set.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativeWeight signals a weight below zero.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNonZeroDiagonal signals a self-loop weight on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrOutOfRange indicates that an index (row or column) is outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
