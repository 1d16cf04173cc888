// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidWeight indicates a generated or requested weight below 1.
// Zero is reserved for "no edge", so generated edges must be positive.
var ErrInvalidWeight = errors.New("builder: edge weight must be positive")

// ErrUnknownKind is returned by ByName for an unknown constructor name.
var ErrUnknownKind = errors.New("builder: unknown kind")

// builderErrorf prefixes err with the method name and a formatted detail,
// keeping err matchable with errors.Is.
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
