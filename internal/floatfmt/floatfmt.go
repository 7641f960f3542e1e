// Package floatfmt formats float64 values as the shortest decimal that
// round-trips to the same IEEE-754 bit pattern.
//
// Go's strconv already carries a complete, well-tested
// shortest-round-trip implementation (the Ryu-derived algorithm behind
// AppendFloat's prec=-1 mode); the spec explicitly permits picking any
// correct variant here rather than requiring a bespoke one, so this
// package is a thin adapter from that algorithm's natural forward
// output into the buffer engine's bounded-writer contract.
package floatfmt

import "strconv"

// MaxLen is the widest a formatted float64 can be: sign, 17 significant
// digits, decimal point, 'e', exponent sign, and a three-digit
// exponent — e.g. "-1.7976931348623157e+308", which is 24 bytes.
const MaxLen = 24

// WriteForward formats f into a small scratch array and copies it into
// dst starting at off, returning the number of bytes actually copied.
func WriteForward(dst []byte, off int, f float64) int {
	var scratch [MaxLen]byte
	out := strconv.AppendFloat(scratch[:0], f, 'g', -1, 64)
	return copy(dst[off:], out)
}

// WriteBackward formats f the same way but places it ending exactly at
// dst[end] (i.e. into dst[end-k:end]), for the prepend path.
func WriteBackward(dst []byte, end int, f float64) int {
	var scratch [MaxLen]byte
	out := strconv.AppendFloat(scratch[:0], f, 'g', -1, 64)
	return copy(dst[end-len(out):end], out)
}
