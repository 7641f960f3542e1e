// Package engine implements the buffer growth policy: the decision of
// when an array can be reused in place versus reallocated, with
// capacity reserved on both sides of the valid content so that append
// and prepend both run in amortised O(1).
//
// Nothing in this package is safe to call concurrently on the same
// Buffer value, and nothing needs to be: the affine handle protocol in
// the weave package guarantees a Buffer is reachable from exactly one
// call at a time.
package engine

import (
	"unicode/utf8"

	"weave/internal/rawarr"
)

// Buffer is the mutable triple (arr, off, len) described by the spec's
// data model. Valid content lives in arr.Bytes()[off : off+len]; bytes
// outside that range are scratch space reserved for future prepends
// ([0, off)) or appends ([off+len, cap)).
type Buffer struct {
	Arr *rawarr.Array
	Off int
	Len int
}

// Empty returns a zero-length buffer backed by a freshly allocated
// array, pinned according to the caller's request. Used by Run,
// RunBytes, and NewEmpty.
func Empty(pinned bool) Buffer {
	if pinned {
		return Buffer{Arr: rawarr.NewPinned(0)}
	}
	return Buffer{Arr: rawarr.New(0)}
}

func grown(old *rawarr.Array, newCap int) *rawarr.Array {
	na := rawarr.New(newCap)
	if old.IsPinned() {
		na.Pin()
	}
	return na
}

// AppendBounded reserves room for at most maxSrcLen more bytes at the
// back of b, then calls writer with the array and the offset
// immediately after b's current content. writer must write k <=
// maxSrcLen bytes starting there and return k. The buffer grows by k.
func (b Buffer) AppendBounded(maxSrcLen int, writer func(dst []byte, startOff int) int) Buffer {
	arr := b.Arr
	if b.Off+b.Len+maxSrcLen > arr.Size() {
		newCap := b.Off + 2*(b.Len+maxSrcLen)
		na := grown(arr, newCap)
		if b.Len > 0 {
			rawarr.CopyWithin(na, b.Off, arr, b.Off, b.Len)
		}
		arr = na
	}
	k := writer(arr.Bytes(), b.Off+b.Len)
	return Buffer{Arr: arr, Off: b.Off, Len: b.Len + k}
}

// AppendExact is AppendBounded specialised to a writer that always
// writes exactly srcLen bytes; the buffer grows by exactly srcLen.
func (b Buffer) AppendExact(srcLen int, writer func(dst []byte, startOff int)) Buffer {
	return b.AppendBounded(srcLen, func(dst []byte, startOff int) int {
		writer(dst, startOff)
		return srcLen
	})
}

// PrependBounded reserves room for at most maxSrcLen more bytes before
// b's current content.
//
// Two writer closures are required because the target offset differs
// between the reuse path and the reallocating path: prepender is asked
// to write k <= maxSrcLen bytes ending exactly at the offset it is
// given (i.e. into dst[end-k:end]), which is the shape a right-to-left
// digit emitter naturally produces; appender is asked to write k bytes
// starting at the offset it is given, for the case where the content
// has to move anyway and a forward write is just as cheap.
func (b Buffer) PrependBounded(maxSrcLen int, prepender func(dst []byte, endOff int) int, appender func(dst []byte, startOff int) int) Buffer {
	if maxSrcLen <= b.Off {
		k := prepender(b.Arr.Bytes(), b.Off)
		return Buffer{Arr: b.Arr, Off: b.Off - k, Len: b.Len + k}
	}
	backReserve := b.Arr.Size() - b.Off - b.Len
	newCap := 2*(b.Len+maxSrcLen) + backReserve
	na := grown(b.Arr, newCap)
	newOff := b.Len + maxSrcLen
	k := appender(na.Bytes(), newOff)
	if b.Len > 0 {
		rawarr.CopyWithin(na, newOff+k, b.Arr, b.Off, b.Len)
	}
	return Buffer{Arr: na, Off: newOff, Len: b.Len + k}
}

// PrependExact is PrependBounded specialised to a writer that always
// writes exactly srcLen bytes forward from a start offset the engine
// computes for whichever path is taken.
func (b Buffer) PrependExact(srcLen int, writer func(dst []byte, startOff int)) Buffer {
	if srcLen <= b.Off {
		startOff := b.Off - srcLen
		writer(b.Arr.Bytes(), startOff)
		return Buffer{Arr: b.Arr, Off: startOff, Len: b.Len + srcLen}
	}
	backReserve := b.Arr.Size() - b.Off - b.Len
	newCap := 2*(b.Len+srcLen) + backReserve
	na := grown(b.Arr, newCap)
	newOff := b.Len + srcLen
	writer(na.Bytes(), newOff)
	if b.Len > 0 {
		rawarr.CopyWithin(na, newOff+srcLen, b.Arr, b.Off, b.Len)
	}
	return Buffer{Arr: na, Off: newOff, Len: b.Len + srcLen}
}

// AppendRaw appends the bytes of src, an externally owned slice, to the
// back of b. This is the entry point spec.md §4.1 calls out for raw
// byte-source ingestion (C-strings, foreign buffers) as distinct from
// the generic bounded-writer contract: there is no formatting to do,
// so it goes straight through rawarr.CopyFromRaw instead of threading
// a writer closure through AppendExact.
func (b Buffer) AppendRaw(src []byte) Buffer {
	arr := b.Arr
	n := len(src)
	if b.Off+b.Len+n > arr.Size() {
		newCap := b.Off + 2*(b.Len+n)
		na := grown(arr, newCap)
		if b.Len > 0 {
			rawarr.CopyWithin(na, b.Off, arr, b.Off, b.Len)
		}
		arr = na
	}
	if n > 0 {
		rawarr.CopyFromRaw(arr, b.Off+b.Len, src, n)
	}
	return Buffer{Arr: arr, Off: b.Off, Len: b.Len + n}
}

// PrependRaw is AppendRaw's prepend counterpart.
func (b Buffer) PrependRaw(src []byte) Buffer {
	n := len(src)
	if n <= b.Off {
		startOff := b.Off - n
		if n > 0 {
			rawarr.CopyFromRaw(b.Arr, startOff, src, n)
		}
		return Buffer{Arr: b.Arr, Off: startOff, Len: b.Len + n}
	}
	backReserve := b.Arr.Size() - b.Off - b.Len
	newCap := 2*(b.Len+n) + backReserve
	na := grown(b.Arr, newCap)
	newOff := b.Len + n
	if n > 0 {
		rawarr.CopyFromRaw(na, newOff, src, n)
	}
	if b.Len > 0 {
		rawarr.CopyWithin(na, newOff+n, b.Arr, b.Off, b.Len)
	}
	return Buffer{Arr: na, Off: newOff, Len: b.Len + n}
}

// AppendBoundedChoice serves writers whose natural direction is
// right-to-left (the decimal and hex formatters) but whose logical
// operation is an append. It reserves back-reserve space exactly like
// AppendBounded, then picks between two layouts:
//
//   - if b is empty, appendWriter and prependWriter target the same
//     address range (since off+len == off), so prependWriter is used:
//     it writes backward from off+maxSrcLen and the engine simply
//     advances off past whatever scratch space is left unused. No copy.
//   - otherwise appendWriter runs forward from the current content's
//     end, same as AppendBounded.
func (b Buffer) AppendBoundedChoice(maxSrcLen int, appendWriter func(dst []byte, startOff int) int, prependWriter func(dst []byte, endOff int) int) Buffer {
	arr := b.Arr
	if b.Off+b.Len+maxSrcLen > arr.Size() {
		newCap := b.Off + 2*(b.Len+maxSrcLen)
		na := grown(arr, newCap)
		if b.Len > 0 {
			rawarr.CopyWithin(na, b.Off, arr, b.Off, b.Len)
		}
		arr = na
	}
	if b.Len == 0 {
		endOff := b.Off + maxSrcLen
		k := prependWriter(arr.Bytes(), endOff)
		return Buffer{Arr: arr, Off: endOff - k, Len: k}
	}
	k := appendWriter(arr.Bytes(), b.Off+b.Len)
	return Buffer{Arr: arr, Off: b.Off, Len: b.Len + k}
}

// Concat consumes a and b and returns one buffer holding a's content
// followed by b's, trying the three cases of the spec in order: reuse
// a's back reserve, reuse b's front reserve, or allocate fresh.
func Concat(a, b Buffer) Buffer {
	if a.Off+a.Len+b.Len <= a.Arr.Size() && a.Len >= b.Len {
		if b.Len > 0 {
			rawarr.CopyWithin(a.Arr, a.Off+a.Len, b.Arr, b.Off, b.Len)
		}
		return Buffer{Arr: a.Arr, Off: a.Off, Len: a.Len + b.Len}
	}
	if a.Len <= b.Off {
		if a.Len > 0 {
			rawarr.CopyWithin(b.Arr, b.Off-a.Len, a.Arr, a.Off, a.Len)
		}
		return Buffer{Arr: b.Arr, Off: b.Off - a.Len, Len: a.Len + b.Len}
	}
	bBackReserve := b.Arr.Size() - b.Off - b.Len
	newCap := a.Off + a.Len + b.Len + bBackReserve
	na := rawarr.New(newCap)
	if a.Arr.IsPinned() || b.Arr.IsPinned() {
		na.Pin()
	}
	if a.Len > 0 {
		rawarr.CopyWithin(na, a.Off, a.Arr, a.Off, a.Len)
	}
	if b.Len > 0 {
		rawarr.CopyWithin(na, a.Off+a.Len, b.Arr, b.Off, b.Len)
	}
	return Buffer{Arr: na, Off: a.Off, Len: a.Len + b.Len}
}

// Duplicate consumes b and returns two buffers with identical content
// and disjoint arrays: the first keeps b's array (b was the sole owner,
// so this is free), the second is a fresh allocation holding a copy,
// built by copying into a plain slice and handing it to rawarr.Thaw
// rather than allocating an Array up front and copying into it.
func Duplicate(b Buffer) (Buffer, Buffer) {
	data := make([]byte, b.Len)
	copy(data, b.Arr.Bytes()[b.Off:b.Off+b.Len])
	na := rawarr.Thaw(data, b.Arr.IsPinned())
	return b, Buffer{Arr: na, Off: 0, Len: b.Len}
}

// NewEmpty consumes existing only to read its pin state: it returns
// existing unchanged alongside a fresh empty buffer with the same
// pinning.
func NewEmpty(existing Buffer) (Buffer, Buffer) {
	return existing, Empty(existing.Arr.IsPinned())
}

// Consume discards b. It exists as a named operation (rather than
// callers simply dropping the value) so the affine protocol has a
// single terminal case to route "I'm done with this" through.
func Consume(b Buffer) {}

// Erase logically empties b; the array is retained, so a subsequent
// append can reuse whatever reserve is left.
func Erase(b Buffer) Buffer {
	return Buffer{Arr: b.Arr, Off: b.Off, Len: 0}
}

// SizeBytes returns the UTF-8 byte count of b's valid content.
func SizeBytes(b Buffer) int {
	return b.Len
}

// LengthChars decodes b's valid content as UTF-8 and returns the
// number of scalar values.
func LengthChars(b Buffer) int {
	return utf8.RuneCount(b.Arr.Bytes()[b.Off : b.Off+b.Len])
}

// scalarByteOffset returns the byte offset of the start of the nth
// scalar in data, saturating at len(data) if data holds fewer than n
// scalars.
func scalarByteOffset(data []byte, n int) int {
	off := 0
	for i := 0; i < n; i++ {
		if off >= len(data) {
			return len(data)
		}
		_, size := utf8.DecodeRune(data[off:])
		off += size
	}
	return off
}

// Take returns the prefix of b consisting of its first n scalars,
// saturating to the whole buffer if n exceeds the scalar count.
func Take(b Buffer, n int) Buffer {
	bytePos := scalarByteOffset(b.Arr.Bytes()[b.Off:b.Off+b.Len], n)
	return Buffer{Arr: b.Arr, Off: b.Off, Len: bytePos}
}

// Drop returns the suffix of b after its first n scalars, saturating to
// an empty buffer if n exceeds the scalar count.
func Drop(b Buffer, n int) Buffer {
	bytePos := scalarByteOffset(b.Arr.Bytes()[b.Off:b.Off+b.Len], n)
	return Buffer{Arr: b.Arr, Off: b.Off + bytePos, Len: b.Len - bytePos}
}

// Freeze shrinks b's array to end exactly at its valid range (off+len
// bytes; the front reserve is kept) and returns the final (off, len) to
// slice by. The caller (weave.Run/RunBytes) is
// responsible for not handing out any further mutable handle to arr
// afterward — that is the affine protocol's job, not this package's.
func Freeze(b Buffer) (arr *rawarr.Array, off, length int) {
	rawarr.Shrink(b.Arr, b.Off+b.Len)
	return b.Arr, b.Off, b.Len
}
