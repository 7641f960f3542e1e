// Package weave is a mutable builder for UTF-8 text whose public
// interface is affine: every operation takes a Buf by value, consumes
// it, and returns a new one. Presenting an already-consumed Buf to a
// second operation panics rather than silently aliasing the array
// backing it — Go has no linear types, so that check is this package's
// entire safety net, not a defensive extra.
//
// Composition reads left to right through a pipeline of these calls:
//
//	text := weave.Run(func(b weave.Buf) weave.Buf {
//		return b.AppendString("foo").AppendString("bar")
//	})
//	text.String() // "foobar"
package weave

import (
	"sync/atomic"
	"unsafe"

	"weave/internal/engine"
	"weave/internal/rawarr"
	"weave/weaveerr"
)

// Buf is the affine builder handle. The zero value is not usable; every
// live Buf descends from the one Run or RunBytes hands to its closure.
type Buf struct {
	core *handleCore
}

// handleCore is the mutable state a Buf points at. spent is flipped
// exactly once, by whichever call consumes the Buf first; this is the
// same guard-flag shape as the teacher's xsync.Once.Do, applied to a
// value's identity instead of a closure's.
type handleCore struct {
	buf   engine.Buffer
	spent atomic.Bool
}

func wrap(eb engine.Buffer) Buf {
	return Buf{core: &handleCore{buf: eb}}
}

// consume returns b's underlying engine.Buffer and marks b spent. Any
// later call to consume on the same handleCore — whether through b
// again or through a copy of b the caller kept around — panics.
func (b Buf) consume() engine.Buffer {
	if b.core == nil || !b.core.spent.CompareAndSwap(false, true) {
		panic(weaveerr.ErrHandleReused)
	}
	return b.core.buf
}

// Text is the immutable result of Run: a frozen view over a byte array
// that no mutable handle reaches anymore.
type Text struct {
	data []byte
}

// String returns t's contents. It aliases t's backing array through a
// single unsafe conversion rather than copying, the same trick the
// teacher's xstrings.Builder.String uses — safe here for the same
// reason it's safe there: nothing can mutate the array again.
func (t Text) String() string {
	if len(t.data) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&t.data))
}

// Bytes returns t's contents as a slice aliasing the frozen array. The
// slice must not be mutated.
func (t Text) Bytes() []byte {
	return t.data
}

// freeze shrinks eb's array to its valid range and converts it into the
// immutable view a Text wraps, via rawarr.Freeze — the one place a
// mutable *rawarr.Array is turned into a plain []byte for good.
func freeze(eb engine.Buffer) []byte {
	arr, off, length := engine.Freeze(eb)
	return rawarr.Freeze(arr)[off : off+length]
}

// Run starts from an empty, unpinned buffer, applies f, and freezes the
// result into a Text. f is expected to thread the Buf it is given
// through to the handle it returns (directly or through however many
// intermediate calls); Run's own consume call on that returned handle
// is what finally enforces the affine discipline for the whole chain.
//
// Unlike a language where the compiler might fold two textually
// identical Run calls into one, Go always executes a function call for
// real: there is no cross-call CSE to guard against here, so Run needs
// no opacity barrier beyond being an ordinary function.
func Run(f func(Buf) Buf) Text {
	result := f(wrap(engine.Empty(false)))
	return Text{data: freeze(result.consume())}
}

// RunBytes is Run, except the starting buffer is pinned (see
// spec.md §4.1, §4.2) so that the final array's address is stable and
// the returned []byte can be safely handed to code outside this
// package without risking it outliving a relocation.
func RunBytes(f func(Buf) Buf) []byte {
	result := f(wrap(engine.Empty(true)))
	return freeze(result.consume())
}

// Check reports whether b has already been consumed, without consuming
// it itself. It exists for tests that want to assert the affine
// protocol actually fires rather than for use in ordinary pipelines —
// calling it on a live Buf tells you nothing you didn't already know,
// and calling it on a spent one is the only way to observe
// ErrHandleReused as a value instead of a panic.
func Check(b Buf) error {
	if b.core == nil || b.core.spent.Load() {
		return weaveerr.ErrHandleReused
	}
	return nil
}
