// Package quilt provides an in-memory piece-table text engine: an immutable
// original store, an append-only addition store, and an ordered piece
// sequence that together reconstruct the document, with staging buffers that
// batch contiguous insertions and deletions before committing them.
//
// A Quilt is single-writer and synchronous: one operation runs to completion
// before the next is accepted. It is not safe for concurrent use.
package quilt

import "errors"

// Staging errors
var (
	// ErrDiscontinuity indicates an insertion was staged at a position that
	// is not the trailing edge of the pending insertion run. The caller must
	// flush and retry the same insertion as a fresh stage.
	ErrDiscontinuity = errors.New("insertion not contiguous with pending run")
)

// Position errors
var (
	// ErrOutOfRange indicates an edit or cursor target past the document
	// bounds. The operation is rejected and the document is untouched.
	ErrOutOfRange = errors.New("position out of document bounds")
)

// Configuration errors
var (
	// ErrInvalidCapacity indicates a negative staging capacity in Options.
	ErrInvalidCapacity = errors.New("staging capacity must not be negative")
)
