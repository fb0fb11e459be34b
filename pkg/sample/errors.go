package sample

import "errors"

// ErrUnknownGenerator is returned when a generator name does not resolve to
// any known variant. This is a caller programming error: it is always
// surfaced and never silently ignored.
var ErrUnknownGenerator = errors.New("unknown generator")
