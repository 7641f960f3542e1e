package weave

import (
	"math/big"

	"weave/internal/decimalfmt"
	"weave/internal/floatfmt"
	"weave/internal/hexfmt"
)

// AppendInt appends v's decimal spelling. T may be any of Go's signed
// integer kinds. When b is empty, the digits are written directly into
// the reserved back space right-to-left and off is simply advanced
// past whatever's unused (AppendBoundedChoice); otherwise they're
// written forward from the current content's end.
func AppendInt[T decimalfmt.Signed](b Buf, v T) Buf {
	maxLen := decimalfmt.BoundedLenSigned(v)
	eb := b.consume()
	eb = eb.AppendBoundedChoice(maxLen,
		func(dst []byte, start int) int { return decimalfmt.WriteSignedForward(dst, start, maxLen, v) },
		func(dst []byte, end int) int { return decimalfmt.WriteSignedBackward(dst, end, v) },
	)
	return wrap(eb)
}

// PrependInt prepends v's decimal spelling.
func PrependInt[T decimalfmt.Signed](b Buf, v T) Buf {
	maxLen := decimalfmt.BoundedLenSigned(v)
	eb := b.consume()
	eb = eb.PrependBounded(maxLen,
		func(dst []byte, end int) int { return decimalfmt.WriteSignedBackward(dst, end, v) },
		func(dst []byte, start int) int { return decimalfmt.WriteSignedForward(dst, start, maxLen, v) },
	)
	return wrap(eb)
}

// AppendUint appends v's decimal spelling. T may be any of Go's
// unsigned integer kinds.
func AppendUint[T decimalfmt.Unsigned](b Buf, v T) Buf {
	maxLen := decimalfmt.BoundedLenUnsigned(v)
	eb := b.consume()
	eb = eb.AppendBoundedChoice(maxLen,
		func(dst []byte, start int) int { return decimalfmt.WriteUnsignedForward(dst, start, maxLen, v) },
		func(dst []byte, end int) int { return decimalfmt.WriteUnsignedBackward(dst, end, v) },
	)
	return wrap(eb)
}

// PrependUint prepends v's decimal spelling.
func PrependUint[T decimalfmt.Unsigned](b Buf, v T) Buf {
	maxLen := decimalfmt.BoundedLenUnsigned(v)
	eb := b.consume()
	eb = eb.PrependBounded(maxLen,
		func(dst []byte, end int) int { return decimalfmt.WriteUnsignedBackward(dst, end, v) },
		func(dst []byte, start int) int { return decimalfmt.WriteUnsignedForward(dst, start, maxLen, v) },
	)
	return wrap(eb)
}

// AppendBigInt appends v's decimal spelling without any width limit,
// peeling nine-digit chunks (see internal/decimalfmt.WriteBigBackward).
func AppendBigInt(b Buf, v *big.Int) Buf {
	maxLen := decimalfmt.BoundedLenBig(v)
	eb := b.consume()
	eb = eb.AppendBoundedChoice(maxLen,
		func(dst []byte, start int) int { return decimalfmt.WriteBigForward(dst, start, maxLen, v) },
		func(dst []byte, end int) int { return decimalfmt.WriteBigBackward(dst, end, v) },
	)
	return wrap(eb)
}

// PrependBigInt prepends v's decimal spelling.
func PrependBigInt(b Buf, v *big.Int) Buf {
	maxLen := decimalfmt.BoundedLenBig(v)
	eb := b.consume()
	eb = eb.PrependBounded(maxLen,
		func(dst []byte, end int) int { return decimalfmt.WriteBigBackward(dst, end, v) },
		func(dst []byte, start int) int { return decimalfmt.WriteBigForward(dst, start, maxLen, v) },
	)
	return wrap(eb)
}

// AppendHex appends v's lower-case hexadecimal spelling, no prefix. T
// may be any of Go's signed integer kinds.
func AppendHex[T hexfmt.Signed](b Buf, v T) Buf {
	maxLen := hexfmt.BoundedLenSigned(v)
	eb := b.consume()
	eb = eb.AppendBoundedChoice(maxLen,
		func(dst []byte, start int) int { return hexfmt.WriteSignedForward(dst, start, maxLen, v) },
		func(dst []byte, end int) int { return hexfmt.WriteSignedBackward(dst, end, v) },
	)
	return wrap(eb)
}

// PrependHex prepends v's lower-case hexadecimal spelling.
func PrependHex[T hexfmt.Signed](b Buf, v T) Buf {
	maxLen := hexfmt.BoundedLenSigned(v)
	eb := b.consume()
	eb = eb.PrependBounded(maxLen,
		func(dst []byte, end int) int { return hexfmt.WriteSignedBackward(dst, end, v) },
		func(dst []byte, start int) int { return hexfmt.WriteSignedForward(dst, start, maxLen, v) },
	)
	return wrap(eb)
}

// AppendHexUint appends v's lower-case hexadecimal spelling. T may be
// any of Go's unsigned integer kinds.
func AppendHexUint[T hexfmt.Unsigned](b Buf, v T) Buf {
	maxLen := hexfmt.BoundedLenUnsigned(v)
	eb := b.consume()
	eb = eb.AppendBoundedChoice(maxLen,
		func(dst []byte, start int) int { return hexfmt.WriteUnsignedForward(dst, start, maxLen, v) },
		func(dst []byte, end int) int { return hexfmt.WriteUnsignedBackward(dst, end, v) },
	)
	return wrap(eb)
}

// PrependHexUint prepends v's lower-case hexadecimal spelling.
func PrependHexUint[T hexfmt.Unsigned](b Buf, v T) Buf {
	maxLen := hexfmt.BoundedLenUnsigned(v)
	eb := b.consume()
	eb = eb.PrependBounded(maxLen,
		func(dst []byte, end int) int { return hexfmt.WriteUnsignedBackward(dst, end, v) },
		func(dst []byte, start int) int { return hexfmt.WriteUnsignedForward(dst, start, maxLen, v) },
	)
	return wrap(eb)
}

// AppendFloat appends f, formatted as the shortest decimal that
// round-trips to the same bits (see internal/floatfmt).
func (b Buf) AppendFloat(f float64) Buf {
	eb := b.consume()
	eb = eb.AppendBounded(floatfmt.MaxLen, func(dst []byte, off int) int {
		return floatfmt.WriteForward(dst, off, f)
	})
	return wrap(eb)
}

// PrependFloat prepends f, formatted the same way.
func (b Buf) PrependFloat(f float64) Buf {
	eb := b.consume()
	eb = eb.PrependBounded(floatfmt.MaxLen,
		func(dst []byte, end int) int { return floatfmt.WriteBackward(dst, end, f) },
		func(dst []byte, start int) int { return floatfmt.WriteForward(dst, start, f) },
	)
	return wrap(eb)
}
