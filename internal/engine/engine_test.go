package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weave/internal/rawarr"
)

func textOf(t *testing.T, b Buffer) string {
	t.Helper()
	return string(b.Arr.Bytes()[b.Off : b.Off+b.Len])
}

func writeString(s string) func(dst []byte, off int) {
	return func(dst []byte, off int) {
		copy(dst[off:], s)
	}
}

func TestAppendExactGrowsInPlaceWhenReserveSuffices(t *testing.T) {
	arr := rawarr.New(32)
	b := Buffer{Arr: arr, Off: 10, Len: 0}
	b = b.AppendExact(5, writeString("hello"))
	assert.Equal(t, "hello", textOf(t, b))
	assert.Same(t, arr, b.Arr, "enough back reserve must reuse the array in place")
}

func TestAppendExactReallocatesWhenReserveInsufficient(t *testing.T) {
	arr := rawarr.New(5)
	b := Buffer{Arr: arr, Off: 0, Len: 5}
	copy(arr.Bytes(), "hello")
	b = b.AppendExact(6, writeString(" world"))
	require.NotSame(t, arr, b.Arr)
	assert.Equal(t, "hello world", textOf(t, b))
	assert.GreaterOrEqual(t, b.Arr.Size(), b.Off+b.Len)
}

func TestPrependExactInPlace(t *testing.T) {
	arr := rawarr.New(32)
	copy(arr.Bytes()[10:], "bar")
	b := Buffer{Arr: arr, Off: 10, Len: 3}
	b = b.PrependExact(3, writeString("foo"))
	assert.Equal(t, "foobar", textOf(t, b))
	assert.Same(t, arr, b.Arr)
}

func TestPrependExactReallocates(t *testing.T) {
	arr := rawarr.New(3)
	copy(arr.Bytes(), "bar")
	b := Buffer{Arr: arr, Off: 0, Len: 3}
	b = b.PrependExact(3, writeString("foo"))
	require.NotSame(t, arr, b.Arr)
	assert.Equal(t, "foobar", textOf(t, b))
}

func TestAppendBoundedChoiceOnEmptyBufferAvoidsCopy(t *testing.T) {
	b := Buffer{Arr: rawarr.New(0)}
	b = b.AppendBoundedChoice(4,
		func(dst []byte, start int) int {
			t.Fatal("forward writer should not run on an empty buffer")
			return 0
		},
		func(dst []byte, end int) int {
			dst[end-1] = 'z'
			dst[end-2] = 'y'
			return 2
		},
	)
	assert.Equal(t, "yz", textOf(t, b))
}

func TestAppendBoundedChoiceOnNonEmptyBufferUsesForwardWriter(t *testing.T) {
	arr := rawarr.New(32)
	copy(arr.Bytes(), "pre-")
	b := Buffer{Arr: arr, Off: 0, Len: 4}
	b = b.AppendBoundedChoice(4,
		func(dst []byte, start int) int {
			copy(dst[start:], "fix")
			return 3
		},
		func(dst []byte, end int) int {
			t.Fatal("backward writer should not run on a non-empty buffer")
			return 0
		},
	)
	assert.Equal(t, "pre-fix", textOf(t, b))
}

func TestConcatCaseOneReusesLeftBackReserve(t *testing.T) {
	arr := rawarr.New(32)
	copy(arr.Bytes(), "foo")
	a := Buffer{Arr: arr, Off: 0, Len: 3}
	bArr := rawarr.New(3)
	copy(bArr.Bytes(), "bar")
	b := Buffer{Arr: bArr, Off: 0, Len: 3}
	result := Concat(a, b)
	assert.Same(t, arr, result.Arr)
	assert.Equal(t, "foobar", textOf(t, result))
}

func TestConcatCaseTwoReusesRightFrontReserve(t *testing.T) {
	aArr := rawarr.New(3)
	copy(aArr.Bytes(), "foo")
	a := Buffer{Arr: aArr, Off: 0, Len: 3}
	bArr := rawarr.New(32)
	copy(bArr.Bytes()[3:], "bar")
	b := Buffer{Arr: bArr, Off: 3, Len: 3}
	result := Concat(a, b)
	assert.Same(t, bArr, result.Arr)
	assert.Equal(t, "foobar", textOf(t, result))
}

func TestConcatCaseThreeAllocatesFresh(t *testing.T) {
	aArr := rawarr.New(3)
	copy(aArr.Bytes(), "foo")
	a := Buffer{Arr: aArr, Off: 0, Len: 3}
	bArr := rawarr.New(3)
	copy(bArr.Bytes(), "bar")
	b := Buffer{Arr: bArr, Off: 0, Len: 3}
	result := Concat(a, b)
	assert.NotSame(t, aArr, result.Arr)
	assert.NotSame(t, bArr, result.Arr)
	assert.Equal(t, "foobar", textOf(t, result))
}

func TestConcatTieBreakPrefersLeftOnEqualLength(t *testing.T) {
	arr := rawarr.New(32)
	copy(arr.Bytes(), "abc")
	a := Buffer{Arr: arr, Off: 0, Len: 3}
	bArr := rawarr.New(32)
	copy(bArr.Bytes()[3:], "xyz")
	b := Buffer{Arr: bArr, Off: 3, Len: 3}
	result := Concat(a, b)
	assert.Same(t, arr, result.Arr, "equal-length reserves on both sides must still prefer reusing a's array")
}

func TestDuplicateYieldsDisjointArrays(t *testing.T) {
	arr := rawarr.New(8)
	copy(arr.Bytes(), "hi")
	b := Buffer{Arr: arr, Off: 0, Len: 2}
	b1, b2 := Duplicate(b)
	assert.Same(t, arr, b1.Arr)
	assert.NotSame(t, arr, b2.Arr)
	assert.Equal(t, textOf(t, b1), textOf(t, b2))

	b1 = b1.AppendExact(1, writeString("!"))
	assert.Equal(t, "hi!", textOf(t, b1))
	assert.Equal(t, "hi", textOf(t, b2), "mutating b1 must not affect b2")
}

func TestNewEmptyInheritsPinning(t *testing.T) {
	b := Buffer{Arr: rawarr.NewPinned(4)}
	same, fresh := NewEmpty(b)
	assert.Same(t, b.Arr, same.Arr)
	assert.True(t, fresh.Arr.IsPinned())
	assert.Equal(t, 0, fresh.Len)
}

func TestEraseIsIdempotent(t *testing.T) {
	arr := rawarr.New(8)
	copy(arr.Bytes(), "text")
	b := Buffer{Arr: arr, Off: 0, Len: 4}
	once := Erase(b)
	twice := Erase(once)
	assert.Equal(t, textOf(t, once), textOf(t, twice))
	assert.Equal(t, 0, twice.Len)
}

func TestSizeAndLength(t *testing.T) {
	arr := rawarr.New(8)
	copy(arr.Bytes(), "héllo")
	b := Buffer{Arr: arr, Off: 0, Len: len("héllo")}
	assert.Equal(t, len("héllo"), SizeBytes(b))
	assert.Equal(t, 5, LengthChars(b))
}

func TestTakeDropSaturateAndPartition(t *testing.T) {
	arr := rawarr.New(16)
	copy(arr.Bytes(), "héllo")
	b := Buffer{Arr: arr, Off: 0, Len: len("héllo")}

	taken := Take(b, 2)
	assert.Equal(t, "hé", textOf(t, taken))

	dropped := Drop(b, 2)
	assert.Equal(t, "llo", textOf(t, dropped))

	assert.Equal(t, textOf(t, taken)+textOf(t, dropped), textOf(t, b))

	assert.Equal(t, "", textOf(t, Take(b, 0)))
	assert.Equal(t, textOf(t, b), textOf(t, Drop(b, 0)))

	saturatedTake := Take(b, 1000)
	assert.Equal(t, textOf(t, b), textOf(t, saturatedTake))

	saturatedDrop := Drop(b, 1000)
	assert.Equal(t, "", textOf(t, saturatedDrop))
}

func TestFreezeShrinksToEndOfValidRange(t *testing.T) {
	arr := rawarr.New(64)
	copy(arr.Bytes()[4:], "hi")
	b := Buffer{Arr: arr, Off: 4, Len: 2}
	frozenArr, off, length := Freeze(b)
	assert.Equal(t, 6, frozenArr.Size())
	assert.Equal(t, 4, off)
	assert.Equal(t, 2, length)
}
