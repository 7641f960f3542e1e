package hexfmt

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func spellSigned(v int64) string {
	maxLen := BoundedLenSigned(v)
	dst := make([]byte, maxLen+8)
	end := maxLen + 4
	k := WriteSignedBackward(dst, end, v)
	return string(dst[end-k : end])
}

func spellUnsigned(v uint64) string {
	maxLen := BoundedLenUnsigned(v)
	dst := make([]byte, maxLen+8)
	end := maxLen + 4
	k := WriteUnsignedBackward(dst, end, v)
	return string(dst[end-k : end])
}

func TestWriteSignedBackwardMatchesFmtLowerHex(t *testing.T) {
	values := []int64{0, 1, -1, 15, 16, 255, -255, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		got := spellSigned(v)
		var want string
		if v < 0 {
			want = fmt.Sprintf("-%x", uint64(-v))
		} else {
			want = fmt.Sprintf("%x", v)
		}
		assert.Equal(t, want, got, "value %d", v)
	}
}

func TestWriteUnsignedBackwardMatchesFmtLowerHex(t *testing.T) {
	values := []uint64{0, 1, 15, 16, 255, 256, math.MaxUint64}
	for _, v := range values {
		got := spellUnsigned(v)
		want := fmt.Sprintf("%x", v)
		assert.Equal(t, want, got, "value %d", v)
	}
}

func TestWriteSignedForwardPlacesAtStart(t *testing.T) {
	maxLen := BoundedLenSigned(int64(0))
	dst := make([]byte, 2+maxLen+4)
	for i := range dst {
		dst[i] = '.'
	}
	k := WriteSignedForward(dst, 2, maxLen, int64(-255))
	assert.Equal(t, "-ff", string(dst[2:2+k]))
	assert.Equal(t, byte('.'), dst[1])
	assert.Equal(t, byte('.'), dst[2+k])
}

func TestWriteUnsignedForwardPlacesAtStart(t *testing.T) {
	maxLen := BoundedLenUnsigned(uint64(0))
	dst := make([]byte, 1+maxLen+4)
	for i := range dst {
		dst[i] = '.'
	}
	k := WriteUnsignedForward(dst, 1, maxLen, uint32(255))
	assert.Equal(t, "ff", string(dst[1:1+k]))
	assert.Equal(t, byte('.'), dst[1+k])
}

func TestNoUpperCaseOrPrefixEverAppears(t *testing.T) {
	got := spellUnsigned(0xDEADBEEF)
	assert.Equal(t, "deadbeef", got)
	assert.NotContains(t, got, "0x")
}

func TestMinInt64HexHandledViaComplementNotNegate(t *testing.T) {
	got := spellSigned(math.MinInt64)
	assert.Equal(t, fmt.Sprintf("-%x", uint64(math.MaxInt64)+1), got)
}
