package bit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_setEmptyBitStringPadding(t *testing.T) {
	b := SetEmptyBitString(10)
	assert.Equal(t, 10, b.NumBits())
	assert.Equal(t, 1+2, b.ByteLen())
	data := b.Bytes()
	assert.Equal(t, byte(6), data[0])
}

func Test_setAndGetBit(t *testing.T) {
	b := SetEmptyBitString(17)
	for _, pos := range []int{0, 1, 8, 16} {
		SetBit(b, pos, 1)
	}
	for pos := 0; pos < b.NumBits(); pos++ {
		want := byte(0)
		switch pos {
		case 0, 1, 8, 16:
			want = 1
		}
		assert.Equal(t, want, GetBit(b, pos), "pos=%d", pos)
	}
}

func Test_bitwiseAndOrXor(t *testing.T) {
	a := SetEmptyBitString(8)
	bb := SetEmptyBitString(8)
	SetBit(a, 0, 1)
	SetBit(a, 1, 1)
	SetBit(bb, 1, 1)
	SetBit(bb, 2, 1)

	and := SetEmptyBitString(8)
	BitwiseAnd(a, bb, and)
	assert.Equal(t, byte(1), GetBit(and, 1))
	assert.Equal(t, byte(0), GetBit(and, 0))
	assert.Equal(t, byte(0), GetBit(and, 2))

	or := SetEmptyBitString(8)
	BitwiseOr(a, bb, or)
	assert.Equal(t, byte(1), GetBit(or, 0))
	assert.Equal(t, byte(1), GetBit(or, 1))
	assert.Equal(t, byte(1), GetBit(or, 2))

	xor := SetEmptyBitString(8)
	BitwiseXor(a, bb, xor)
	assert.Equal(t, byte(1), GetBit(xor, 0))
	assert.Equal(t, byte(0), GetBit(xor, 1))
	assert.Equal(t, byte(1), GetBit(xor, 2))
}

func Test_bitwiseXorPreservesHeaderOnUnalignedLength(t *testing.T) {
	// 10 bits needs 2 data bytes with 6 bits of padding in the last
	// one; XORing the header byte of two equal-length operands would
	// zero it and corrupt NumBits/GetBit/SetBit downstream.
	a := SetEmptyBitString(10)
	bb := SetEmptyBitString(10)
	SetBit(a, 0, 1)
	SetBit(a, 9, 1)
	SetBit(bb, 9, 1)

	xor := SetEmptyBitString(10)
	BitwiseXor(a, bb, xor)

	assert.Equal(t, a.Bytes()[0], xor.Bytes()[0])
	assert.Equal(t, 10, xor.NumBits())
	assert.Equal(t, byte(1), GetBit(xor, 0))
	assert.Equal(t, byte(0), GetBit(xor, 9))
}

func Test_inPlaceBitwiseOr(t *testing.T) {
	acc := SetEmptyBitString(8)
	SetBit(acc, 0, 1)
	incoming := SetEmptyBitString(8)
	SetBit(incoming, 3, 1)
	BitwiseOr(incoming, acc, acc)
	assert.Equal(t, byte(1), GetBit(acc, 0))
	assert.Equal(t, byte(1), GetBit(acc, 3))
}

func Test_assignCopiesValue(t *testing.T) {
	src := SetEmptyBitString(8)
	SetBit(src, 2, 1)
	dst := Assign(src)
	SetBit(dst, 5, 1)
	assert.Equal(t, byte(0), GetBit(src, 5))
	assert.Equal(t, byte(1), GetBit(dst, 5))
	assert.Equal(t, byte(1), GetBit(dst, 2))
}

func Test_largeBitstringIsOwnedAndFreed(t *testing.T) {
	b := SetEmptyBitString(1024)
	assert.False(t, b.IsInlined())
	SetBit(b, 1000, 1)
	assert.Equal(t, byte(1), GetBit(b, 1000))
	Destroy(b)
}

func Test_smallBitstringIsInlined(t *testing.T) {
	b := SetEmptyBitString(8)
	assert.True(t, b.IsInlined())
}
