package loader

import "errors"

var (
	// ErrOpen wraps failures to open or read the source.
	ErrOpen = errors.New("loader: cannot open input")

	// ErrMalformedRow indicates a token that is not a valid int.
	ErrMalformedRow = errors.New("loader: malformed row")

	// ErrNoRows indicates an input without any non-blank line.
	ErrNoRows = errors.New("loader: no rows")
)
