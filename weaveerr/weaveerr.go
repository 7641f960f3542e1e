// Package weaveerr is the small, closed error taxonomy the spec allows
// (see spec.md §7): most illegal states are made unrepresentable by the
// affine handle protocol, so there is little left to report as a value
// rather than a panic.
//
// Shaped after the teacher's own strconv.NumError
// (xstrconv/atoi_err.go): a sentinel wrapped with enough context to say
// which operation failed and why.
package weaveerr

import "errors"

// ErrAllocation is the sentinel Err field of an Error reporting a
// failed allocation (spec.md §7.1). In practice Go reports allocation
// failure as a runtime panic rather than a returned error, so this
// sentinel exists mainly for documentation and for any future host
// that can intercept it; weave.Run/RunBytes do not attempt to recover
// from it, matching spec.md's "fatal to the in-flight operation."
var ErrAllocation = errors.New("weave: allocation failed")

// ErrHandleReused is the sentinel Err field reporting that a Buf value
// was presented to a second operation after already being consumed by
// an earlier one (spec.md §7.5). Production code panics on this
// condition; the error value exists for the debug-only accessor weave
// tests use to assert the check fires in the first place.
var ErrHandleReused = errors.New("weave: buffer handle already consumed")

// ErrInvalidUTF8 is returned by the *Checked append/prepend variants
// (weave.AppendStringChecked, weave.PrependStringChecked), which are a
// supplement to the spec's own unchecked raw-input operations for
// callers who would rather get an error than undefined behaviour.
var ErrInvalidUTF8 = errors.New("weave: invalid UTF-8")

// Error records a failed operation: which one (Op), what value it was
// working on when it failed (Detail, informational only), and why
// (Err).
type Error struct {
	Op     string
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return "weave: " + e.Op + ": " + e.Err.Error()
	}
	return "weave: " + e.Op + ": " + e.Detail + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }
