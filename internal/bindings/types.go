package bindings

import "errors"

// Handle is an opaque identifier for a native AqKanji2Koe instance. The zero
// value never refers to a live instance.
type Handle uintptr

// DefaultBufferSlack is the fixed number of bytes added to twice the input
// length when sizing the conversion output buffer.
const DefaultBufferSlack = 256

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary. CI and downstream callers can use this to fall back to
	// safer defaults.
	ErrNotBuilt = errors.New("aqkanji2koe/internal/bindings: native bindings not built")
)
