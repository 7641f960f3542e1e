package floatfmt

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteForwardIsShortestRoundTrip(t *testing.T) {
	cases := []float64{0, 1, -1, 0.1, 100, -100, 3.14159, 1e300, -1e-300, 1.0 / 3.0}
	for _, f := range cases {
		dst := make([]byte, 4+MaxLen)
		k := WriteForward(dst, 4, f)
		got := string(dst[4 : 4+k])

		parsed, err := strconv.ParseFloat(got, 64)
		assert.NoError(t, err)
		assert.Equal(t, f, parsed, "round trip for %v", f)
	}
}

func TestWriteForwardZeroPointOneIsShort(t *testing.T) {
	dst := make([]byte, MaxLen)
	k := WriteForward(dst, 0, 0.1)
	assert.Equal(t, "0.1", string(dst[:k]))
}

func TestWriteBackwardPlacesEndingAtOffset(t *testing.T) {
	dst := make([]byte, 4+MaxLen+4)
	for i := range dst {
		dst[i] = '.'
	}
	end := 4 + MaxLen
	k := WriteBackward(dst, end, 0.1)
	assert.Equal(t, "0.1", string(dst[end-k:end]))
	assert.Equal(t, byte('.'), dst[end])
}

func TestWriteForwardAndBackwardAgree(t *testing.T) {
	cases := []float64{0, 1, -1, 0.1, 123.456, -9.999e10}
	for _, f := range cases {
		fwd := make([]byte, MaxLen)
		kf := WriteForward(fwd, 0, f)

		bwd := make([]byte, MaxLen)
		kb := WriteBackward(bwd, MaxLen, f)

		assert.Equal(t, string(fwd[:kf]), string(bwd[MaxLen-kb:MaxLen]), "value %v", f)
	}
}

func TestWriteForwardNeverExceedsMaxLen(t *testing.T) {
	cases := []float64{1.7976931348623157e+308, -1.7976931348623157e+308, 5e-324}
	for _, f := range cases {
		dst := make([]byte, MaxLen)
		k := WriteForward(dst, 0, f)
		assert.LessOrEqual(t, k, MaxLen, "value %v", f)
	}
}
