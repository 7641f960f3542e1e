package weave

import (
	"unicode/utf8"

	"weave/internal/runeenc"
	"weave/weaveerr"
)

// AppendString appends s, an external UTF-8 text slice, to b's content.
func (b Buf) AppendString(s string) Buf {
	eb := b.consume()
	eb = eb.AppendExact(len(s), func(dst []byte, off int) {
		copy(dst[off:], s)
	})
	return wrap(eb)
}

// PrependString prepends s, an external UTF-8 text slice, to b's
// content.
func (b Buf) PrependString(s string) Buf {
	eb := b.consume()
	eb = eb.PrependExact(len(s), func(dst []byte, off int) {
		copy(dst[off:], s)
	})
	return wrap(eb)
}

// cStrLen finds the length of a null-terminated byte sequence. p is
// assumed (not checked) to contain a zero byte within valid UTF-8, per
// the raw C-string precondition — if it doesn't, the whole slice is
// taken, which is as good a definition of "unspecified" as any.
func cStrLen(p []byte) int {
	for i, c := range p {
		if c == 0 {
			return i
		}
	}
	return len(p)
}

// AppendCString appends the bytes of p up to its first NUL. p must be
// valid UTF-8 with no embedded NUL before the terminator; this is a
// documented, unchecked precondition, not validated here. Goes through
// engine.AppendRaw rather than AppendExact, since p is already the
// externally owned slice the raw-ingestion primitive wants, not a
// value some writer closure still has to format.
func (b Buf) AppendCString(p []byte) Buf {
	n := cStrLen(p)
	eb := b.consume()
	eb = eb.AppendRaw(p[:n])
	return wrap(eb)
}

// PrependCString is AppendCString's prepend counterpart.
func (b Buf) PrependCString(p []byte) Buf {
	n := cStrLen(p)
	eb := b.consume()
	eb = eb.PrependRaw(p[:n])
	return wrap(eb)
}

// AppendStringChecked is AppendString with a precondition check instead
// of a precondition: it validates s as UTF-8 before writing anything,
// returning ErrInvalidUTF8 (wrapped) rather than producing a buffer
// with invalid content. A supplement to the spec's own unchecked
// operation set, for callers who would rather pay the validation cost.
func (b Buf) AppendStringChecked(s string) (Buf, error) {
	if !utf8.ValidString(s) {
		b.consume()
		return Buf{}, &weaveerr.Error{Op: "AppendStringChecked", Err: weaveerr.ErrInvalidUTF8}
	}
	return b.AppendString(s), nil
}

// PrependStringChecked is PrependString's checked counterpart.
func (b Buf) PrependStringChecked(s string) (Buf, error) {
	if !utf8.ValidString(s) {
		b.consume()
		return Buf{}, &weaveerr.Error{Op: "PrependStringChecked", Err: weaveerr.ErrInvalidUTF8}
	}
	return b.PrependString(s), nil
}

// Must panics if err is non-nil, otherwise returns b. For pairing with
// the *Checked operations when a caller wants to assert a precondition
// it already knows holds rather than thread the error through.
func Must(b Buf, err error) Buf {
	if err != nil {
		panic(err)
	}
	return b
}

// AppendChar appends one Unicode scalar. r must not be a surrogate;
// behaviour otherwise is unspecified, per the character writer's
// caller contract.
func (b Buf) AppendChar(r rune) Buf {
	eb := b.consume()
	eb = eb.AppendExact(runeenc.Len(r), func(dst []byte, off int) {
		runeenc.Encode(dst, off, r)
	})
	return wrap(eb)
}

// PrependChar prepends one Unicode scalar.
func (b Buf) PrependChar(r rune) Buf {
	eb := b.consume()
	eb = eb.PrependExact(runeenc.Len(r), func(dst []byte, off int) {
		runeenc.Encode(dst, off, r)
	})
	return wrap(eb)
}

// replicate writes count copies of r's UTF-8 encoding into dst starting
// at off: encodes once, then copies that encoding forward count-1 more
// times.
func replicate(dst []byte, off int, r rune, count int) {
	if count == 0 {
		return
	}
	n := runeenc.Encode(dst, off, r)
	for i := 1; i < count; i++ {
		copy(dst[off+i*n:off+(i+1)*n], dst[off:off+n])
	}
}

// AppendChars appends count copies of r.
func (b Buf) AppendChars(count int, r rune) Buf {
	if r == ' ' {
		return b.AppendSpaces(count)
	}
	n := runeenc.Len(r)
	eb := b.consume()
	eb = eb.AppendExact(n*count, func(dst []byte, off int) {
		replicate(dst, off, r, count)
	})
	return wrap(eb)
}

// PrependChars prepends count copies of r.
func (b Buf) PrependChars(count int, r rune) Buf {
	if r == ' ' {
		return b.PrependSpaces(count)
	}
	n := runeenc.Len(r)
	eb := b.consume()
	eb = eb.PrependExact(n*count, func(dst []byte, off int) {
		replicate(dst, off, r, count)
	})
	return wrap(eb)
}

func fillSpaces(dst []byte) {
	for i := range dst {
		dst[i] = ' '
	}
}

// AppendSpaces appends n ASCII spaces via a raw byte fill — the fast
// path spec.md §4.4 calls out for the single-byte, no-encoding-needed
// case.
func (b Buf) AppendSpaces(n int) Buf {
	eb := b.consume()
	eb = eb.AppendExact(n, func(dst []byte, off int) {
		fillSpaces(dst[off : off+n])
	})
	return wrap(eb)
}

// PrependSpaces prepends n ASCII spaces via a raw byte fill.
func (b Buf) PrependSpaces(n int) Buf {
	eb := b.consume()
	eb = eb.PrependExact(n, func(dst []byte, off int) {
		fillSpaces(dst[off : off+n])
	})
	return wrap(eb)
}

// JustifyLeft pads b on the right with fill until it is width scalars
// long. b is left untouched if it is already that long or longer.
func (b Buf) JustifyLeft(width int, fill rune) Buf {
	n, b2 := b.Length()
	if n >= width {
		return b2
	}
	return b2.AppendChars(width-n, fill)
}

// JustifyRight pads b on the left with fill until it is width scalars
// long.
func (b Buf) JustifyRight(width int, fill rune) Buf {
	n, b2 := b.Length()
	if n >= width {
		return b2
	}
	return b2.PrependChars(width-n, fill)
}

// Center pads b with fill on both sides until it is width scalars long,
// splitting the padding as evenly as possible with any odd leftover
// byte going to the right side.
func (b Buf) Center(width int, fill rune) Buf {
	n, b2 := b.Length()
	if n >= width {
		return b2
	}
	total := width - n
	left := total / 2
	right := total - left
	return b2.PrependChars(left, fill).AppendChars(right, fill)
}
