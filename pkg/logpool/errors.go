package logpool

import "errors"

var (
	// ErrPoisoned is returned by every operation once a panic has escaped
	// while the pool's lock was held. The pool's state may be inconsistent
	// at that point and is no longer served.
	ErrPoisoned = errors.New("pool lock poisoned")
	// ErrIndexOutOfBounds is returned by GetEntry for an index with no
	// corresponding entry.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidRange is returned by GetEntries when the requested range
	// is malformed or exceeds the pool's current size.
	ErrInvalidRange = errors.New("invalid range")
)
