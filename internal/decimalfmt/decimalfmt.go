// Package decimalfmt writes decimal digits right-to-left directly into
// caller-owned byte slices, for both bounded machine integers and
// arbitrary-precision integers.
//
// The bounded path is adapted from the two-digits-at-a-time lookup
// table trick in strconv's formatBits, which the teacher repo this
// module is grounded on reimplements in xstrconv/itoa.go.
package decimalfmt

import (
	"math/big"
	"unsafe"
)

// smallsString holds the two-ASCII-digit spelling of every value in
// [0, 100), laid out so smallsString[2*n:2*n+2] is n's spelling. Lets
// the writer peel two decimal digits per division instead of one.
const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// Signed is the set of Go integer kinds decimalfmt's bounded signed
// writer accepts.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of Go integer kinds decimalfmt's bounded
// unsigned writer accepts.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// BoundedLenSigned returns the upper bound, in bytes, on the decimal
// spelling of any value of T: 2 + floor(bits*5/16), the extra 1 over
// the unsigned bound accounting for a leading '-'.
func BoundedLenSigned[T Signed](v T) int {
	bits := int(unsafe.Sizeof(v)) * 8
	return 2 + bits*5/16
}

// BoundedLenUnsigned returns the upper bound, in bytes, on the decimal
// spelling of any value of T: 1 + floor(bits*5/16).
func BoundedLenUnsigned[T Unsigned](v T) int {
	bits := int(unsafe.Sizeof(v)) * 8
	return 1 + bits*5/16
}

// writeUintBackward writes u's decimal digits into dst, ending exactly
// at dst[end] (i.e. into dst[end-k:end]), and returns k.
func writeUintBackward(dst []byte, end int, u uint64) int {
	i := end
	for u >= 100 {
		is := (u % 100) * 2
		u /= 100
		i -= 2
		dst[i+1] = smallsString[is+1]
		dst[i] = smallsString[is]
	}
	is := u * 2
	i--
	dst[i] = smallsString[is+1]
	if u >= 10 {
		i--
		dst[i] = smallsString[is]
	}
	return end - i
}

// writeIntBackward writes v's decimal spelling (with a leading '-' for
// negative values) into dst, ending at dst[end]. The minimum signed
// value is handled by negating in unsigned (wrapping) arithmetic after
// the bit-reinterpreting cast, never by negating the signed value
// itself, which would overflow for, e.g., int64's minimum.
func writeIntBackward(dst []byte, end int, v int64) int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	n := writeUintBackward(dst, end, u)
	if neg {
		dst[end-n-1] = '-'
		n++
	}
	return n
}

// WriteSignedBackward writes v's decimal spelling into dst ending at
// offset end, and returns the number of bytes written.
func WriteSignedBackward[T Signed](dst []byte, end int, v T) int {
	return writeIntBackward(dst, end, int64(v))
}

// WriteUnsignedBackward writes v's decimal spelling into dst ending at
// offset end, and returns the number of bytes written.
func WriteUnsignedBackward[T Unsigned](dst []byte, end int, v T) int {
	return writeUintBackward(dst, end, uint64(v))
}

// WriteBoundedForward writes n's decimal spelling (n fits T) starting
// at dst[start], for the PrependBounded/AppendBounded realloc paths
// where the window is known in advance but the writer's natural
// direction is backward: it writes backward into a scratch window of
// width maxLen ending at start+maxLen, then shifts the actual digits
// down to start if they didn't already fill the window.
func writeBoundedForward(dst []byte, start, maxLen int, writeBackward func(dst []byte, end int) int) int {
	end := start + maxLen
	k := writeBackward(dst, end)
	if k < maxLen {
		copy(dst[start:start+k], dst[end-k:end])
	}
	return k
}

// WriteSignedForward is WriteSignedBackward's forward-placing sibling,
// used where the engine needs the result to land at a known starting
// offset with no gap (see internal/engine's PrependBounded appender and
// AppendBounded's writer contract).
func WriteSignedForward[T Signed](dst []byte, start, maxLen int, v T) int {
	return writeBoundedForward(dst, start, maxLen, func(dst []byte, end int) int {
		return writeIntBackward(dst, end, int64(v))
	})
}

// WriteUnsignedForward is WriteUnsignedBackward's forward-placing
// sibling.
func WriteUnsignedForward[T Unsigned](dst []byte, start, maxLen int, v T) int {
	return writeBoundedForward(dst, start, maxLen, func(dst []byte, end int) int {
		return writeUintBackward(dst, end, uint64(v))
	})
}

var bigChunk = big.NewInt(1_000_000_000)

// BoundedLenBig returns the upper bound, in bytes, on v's decimal
// spelling: ceil(bits*5/16) + 2, where bits is v's own magnitude's bit
// length (not a fixed type width, since v is arbitrary precision).
func BoundedLenBig(v *big.Int) int {
	bits := v.BitLen()
	return (bits*5+15)/16 + 2
}

// WriteBigBackward writes v's decimal spelling into dst ending at
// offset end, peeling nine-digit chunks at a time (so each chunk fits
// comfortably in a uint64 and can go through writeUintBackward): the
// least-significant chunk is peeled first, the most-significant chunk
// is written without zero-padding, every other chunk is padded out to
// nine digits.
func WriteBigBackward(dst []byte, end int, v *big.Int) int {
	i := end
	neg := v.Sign() < 0
	if v.Sign() == 0 {
		i--
		dst[i] = '0'
		return end - i
	}
	q := new(big.Int).Abs(v)
	r := new(big.Int)
	for q.Sign() != 0 {
		q.DivMod(q, bigChunk, r)
		chunk := r.Uint64()
		n := writeUintBackward(dst, i, chunk)
		i -= n
		if q.Sign() != 0 {
			for pad := 9 - n; pad > 0; pad-- {
				i--
				dst[i] = '0'
			}
		}
	}
	if neg {
		i--
		dst[i] = '-'
	}
	return end - i
}

// WriteBigForward is WriteBigBackward's forward-placing sibling, used
// where the engine needs the result to land at a known starting offset
// with no gap.
func WriteBigForward(dst []byte, start, maxLen int, v *big.Int) int {
	end := start + maxLen
	k := WriteBigBackward(dst, end, v)
	if k < maxLen {
		copy(dst[start:start+k], dst[end-k:end])
	}
	return k
}
