package geo

import "errors"

// Sentinel errors returned by the geo package.
var (
	// ErrEmptyRegistry indicates that zero cities were supplied to NewRegistry.
	// A tour over an empty city set has no defined length, so the condition is
	// rejected at construction time rather than surfacing later as NaN fitness.
	ErrEmptyRegistry = errors.New("geo: registry must contain at least one city")

	// ErrIndexOutOfRange indicates an out-of-bounds read of a Registry slot.
	// It signals a broken caller invariant and is never retried.
	ErrIndexOutOfRange = errors.New("geo: index out of range")

	// ErrMalformedLine indicates that a coordinate line did not parse into
	// exactly two real numbers. Parsing aborts at the first such line.
	ErrMalformedLine = errors.New("geo: malformed coordinate line")
)
