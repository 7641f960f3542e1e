package weave

import "weave/internal/engine"

// NewEmpty consumes existing only to read its pin state, returning it
// unchanged alongside a fresh empty buffer sharing that pinning.
func NewEmpty(existing Buf) (Buf, Buf) {
	eb := existing.consume()
	a, c := engine.NewEmpty(eb)
	return wrap(a), wrap(c)
}

// Consume discards b.
func Consume(b Buf) {
	b.consume()
}

// Erase logically empties b; the underlying array is retained, so a
// later append can reuse whatever reserve erase left behind.
// Erase(Erase(b)) and Erase(b) are equal as texts, since both are
// simply empty.
func (b Buf) Erase() Buf {
	return wrap(engine.Erase(b.consume()))
}

// Duplicate returns two buffers with identical content and disjoint
// arrays. Operations on one afterward never affect the other's
// eventual text.
func Duplicate(b Buf) (Buf, Buf) {
	a, c := engine.Duplicate(b.consume())
	return wrap(a), wrap(c)
}

// Size returns b's content length in bytes, alongside a fresh handle to
// keep using b.
func (b Buf) Size() (int, Buf) {
	eb := b.consume()
	return engine.SizeBytes(eb), wrap(eb)
}

// Length returns b's content length in Unicode scalars, alongside a
// fresh handle to keep using b.
func (b Buf) Length() (int, Buf) {
	eb := b.consume()
	return engine.LengthChars(eb), wrap(eb)
}

// Take returns the prefix of b consisting of its first n scalars,
// saturating to the whole buffer if n exceeds the scalar count.
func (b Buf) Take(n int) Buf {
	return wrap(engine.Take(b.consume(), n))
}

// Drop returns the suffix of b after its first n scalars, saturating to
// an empty buffer if n exceeds the scalar count.
func (b Buf) Drop(n int) Buf {
	return wrap(engine.Drop(b.consume(), n))
}

// Cat concatenates a followed by b into one buffer, consuming both.
// This is the spec's `><` operator, spelled as a function since Go has
// no custom infix operators.
func Cat(a, b Buf) Buf {
	ea := a.consume()
	eb := b.consume()
	return wrap(engine.Concat(ea, eb))
}

// FoldInto left-folds items into b by repeatedly applying f to the
// running buffer and the next item.
func FoldInto[T any](f func(Buf, T) Buf, b Buf, items []T) Buf {
	for _, item := range items {
		b = f(b, item)
	}
	return b
}
