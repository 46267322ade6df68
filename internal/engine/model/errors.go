package model

import "errors"

// Failure classes for geometry operations. All of them are local,
// synchronous and non-retryable; callers get them immediately from the
// mutating or querying call, wrapped with positional context.
var (
	// ErrShapeMismatch reports input arrays whose lengths disagree
	// (positions vs UVs, or a per-vertex color/alpha sequence that runs
	// short of the emission count).
	ErrShapeMismatch = errors.New("model: input shape mismatch")

	// ErrCapacityExceeded reports an append past the buffer capacity
	// fixed at construction time.
	ErrCapacityExceeded = errors.New("model: vertex buffer capacity exceeded")

	// ErrOutOfRange reports a vertex or face query outside the written
	// region of the buffer.
	ErrOutOfRange = errors.New("model: index out of range")

	// ErrDestroyed reports any operation on a model after Destroy.
	ErrDestroyed = errors.New("model: operation on destroyed model")
)
