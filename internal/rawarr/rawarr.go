// Package rawarr implements the lowest-level array primitives behind
// the buffer engine: allocation, growth-free copying, and the pinned
// flag that governs whether an array's address may be handed out to
// foreign code.
package rawarr

// Array is a mutable byte array with a pin bit. The pin bit is advisory
// at this layer — rawarr never relocates an array on its own — but the
// engine package must preserve it across every reallocation it does
// perform, since it is the only thing that makes RunBytes sound.
type Array struct {
	buf    []byte
	pinned bool
}

// New allocates an unpinned array of the given capacity. Contents are
// indeterminate (zeroed, as Go guarantees, but callers must not rely
// on that).
func New(cap int) *Array {
	return &Array{buf: make([]byte, cap)}
}

// NewPinned allocates an array whose backing store is never swapped out
// from under it implicitly — see (*Array).Pin. Required before a buffer
// chain can end in RunBytes.
func NewPinned(cap int) *Array {
	return &Array{buf: make([]byte, cap), pinned: true}
}

// IsPinned reports whether arr's address is required to stay stable for
// the lifetime of the logical buffer it backs.
func (a *Array) IsPinned() bool {
	return a.pinned
}

// Pin marks arr as pinned. Used when a reallocation replaces an array
// that was already pinned — the new array inherits the flag.
func (a *Array) Pin() {
	a.pinned = true
}

// Size reports the current capacity in bytes.
func (a *Array) Size() int {
	return len(a.buf)
}

// Bytes exposes the raw backing slice. Callers outside this package use
// it only through the engine, which is responsible for keeping off/len
// inside bounds.
func (a *Array) Bytes() []byte {
	return a.buf
}

// CopyWithin moves n bytes from src[srcOff:srcOff+n] to dst[dstOff:dstOff+n].
// The two ranges may overlap; semantics match a memmove.
func CopyWithin(dst *Array, dstOff int, src *Array, srcOff int, n int) {
	copy(dst.buf[dstOff:dstOff+n], src.buf[srcOff:srcOff+n])
}

// CopyFromRaw copies n bytes from an externally owned slice into dst at
// dstOff. Named for symmetry with the raw-pointer entry points spec'd
// for C-string ingestion; in Go the "raw" source is just a []byte.
func CopyFromRaw(dst *Array, dstOff int, src []byte, n int) {
	copy(dst.buf[dstOff:dstOff+n], src[:n])
}

// Shrink reduces the array's logical capacity to newLen, releasing the
// tail. newLen must not exceed the current size.
func Shrink(a *Array, newLen int) {
	a.buf = a.buf[:newLen]
}

// Freeze converts a mutable array into an immutable text view. Go has
// no exclusivity discipline to bit-cast under, so this allocates only
// in the sense that it aliases the same backing slice into a new value;
// callers must guarantee (as the engine does, via the affine protocol)
// that no mutable handle to arr survives the freeze.
func Freeze(a *Array) []byte {
	return a.buf
}

// Thaw is Freeze's inverse: wraps an existing byte slice back into a
// mutable Array, inheriting the pinned flag the caller supplies. Used
// by engine.Duplicate, which copies into a plain slice first and hands
// the result straight to Thaw rather than allocating an Array and
// copying into it through CopyWithin.
func Thaw(buf []byte, pinned bool) *Array {
	return &Array{buf: buf, pinned: pinned}
}
