package runeenc

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestLenMatchesStdlibRuneLen(t *testing.T) {
	runes := []rune{'a', '0', 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF, '世', '🙂'}
	for _, r := range runes {
		assert.Equal(t, utf8.RuneLen(r), Len(r), "rune %U", r)
	}
}

func TestEncodeMatchesStdlibEncodeRune(t *testing.T) {
	runes := []rune{'a', 0x7F, 0x80, 0x7FF, 0x800, 0xFFFF, 0x10000, 0x10FFFF, '世', '🙂'}
	for _, r := range runes {
		want := make([]byte, utf8.UTFMax)
		wantN := utf8.EncodeRune(want, r)

		got := make([]byte, 2+utf8.UTFMax+2)
		for i := range got {
			got[i] = '.'
		}
		gotN := Encode(got, 2, r)

		assert.Equal(t, wantN, gotN, "rune %U", r)
		assert.Equal(t, want[:wantN], got[2:2+gotN], "rune %U", r)
		assert.Equal(t, byte('.'), got[1])
		assert.Equal(t, byte('.'), got[2+gotN])
	}
}

func TestEncodeOneByteRange(t *testing.T) {
	dst := make([]byte, 1)
	n := Encode(dst, 0, 'A')
	assert.Equal(t, 1, n)
	assert.Equal(t, "A", string(dst))
}

func TestEncodeFourByteRange(t *testing.T) {
	r := rune(0x1F642) // 🙂
	dst := make([]byte, 4)
	n := Encode(dst, 0, r)
	assert.Equal(t, 4, n)
	decoded, size := utf8.DecodeRune(dst[:n])
	assert.Equal(t, r, decoded)
	assert.Equal(t, 4, size)
}
