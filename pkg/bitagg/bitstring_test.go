package bitagg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daviszhen/hllbit/pkg/bit"
)

func Test_bitstringOrAccumulates(t *testing.T) {
	var s BitstringState
	s.Initialize()
	op := BitstringOrOp{}

	a := bit.SetEmptyBitString(8)
	bit.SetBit(a, 0, 1)
	b := bit.SetEmptyBitString(8)
	bit.SetBit(b, 1, 1)

	BitstringUpdate(&s, op, a)
	BitstringUpdate(&s, op, b)

	v, ok := BitstringFinalize(&s)
	assert.True(t, ok)
	assert.Equal(t, byte(1), bit.GetBit(v, 0))
	assert.Equal(t, byte(1), bit.GetBit(v, 1))
	BitstringDestroy(&s)
}

func Test_bitstringXorConstantUpdateIsParitySensitive(t *testing.T) {
	var s BitstringState
	s.Initialize()
	op := BitstringXorOp{}

	in := bit.SetEmptyBitString(8)
	bit.SetBit(in, 3, 1)

	BitstringConstantUpdate(&s, op, in, 2)
	v, ok := BitstringFinalize(&s)
	assert.True(t, ok)
	assert.Equal(t, byte(0), bit.GetBit(v, 3), "even repeat cancels")
	BitstringDestroy(&s)
}

func Test_bitstringXorConstantUpdateOnUnalignedLength(t *testing.T) {
	var s BitstringState
	s.Initialize()
	op := BitstringXorOp{}

	// 10 bits leaves 6 padding bits in the header byte; an XOR that
	// clobbers the header would corrupt NumBits for the accumulated
	// state even though every value read back individually looks fine.
	in := bit.SetEmptyBitString(10)
	bit.SetBit(in, 0, 1)
	bit.SetBit(in, 9, 1)

	// count=3 is odd: the first update assigns, the remaining two
	// route through BitstringXorOp.Execute (bit.BitwiseXor), which is
	// where the header-byte bug lived.
	BitstringConstantUpdate(&s, op, in, 3)
	v, ok := BitstringFinalize(&s)
	assert.True(t, ok)
	assert.Equal(t, 10, v.NumBits())
	assert.Equal(t, byte(1), bit.GetBit(v, 0))
	assert.Equal(t, byte(1), bit.GetBit(v, 9))
	BitstringDestroy(&s)
}

func Test_bitstringAssignCopiesRatherThanAliases(t *testing.T) {
	var s BitstringState
	s.Initialize()
	op := BitstringOrOp{}

	in := bit.SetEmptyBitString(8)
	bit.SetBit(in, 0, 1)
	BitstringUpdate(&s, op, in)

	bit.SetBit(in, 5, 1)
	v, _ := BitstringFinalize(&s)
	assert.Equal(t, byte(0), bit.GetBit(v, 5), "state must hold its own copy")
	BitstringDestroy(&s)
}

func Test_bitstringCombine(t *testing.T) {
	var a, b BitstringState
	a.Initialize()
	b.Initialize()
	op := BitstringOrOp{}

	x := bit.SetEmptyBitString(8)
	bit.SetBit(x, 0, 1)
	y := bit.SetEmptyBitString(8)
	bit.SetBit(y, 1, 1)

	BitstringUpdate(&a, op, x)
	BitstringUpdate(&b, op, y)
	BitstringCombine(&b, &a, op)

	v, ok := BitstringFinalize(&a)
	assert.True(t, ok)
	assert.Equal(t, byte(1), bit.GetBit(v, 0))
	assert.Equal(t, byte(1), bit.GetBit(v, 1))
	BitstringDestroy(&a)
	BitstringDestroy(&b)
}

func Test_bitstringCombineUnsetSourceIsNoop(t *testing.T) {
	var a, b BitstringState
	a.Initialize()
	b.Initialize()
	op := BitstringAndOp{}

	x := bit.SetEmptyBitString(8)
	bit.SetBit(x, 0, 1)
	BitstringUpdate(&a, op, x)

	BitstringCombine(&b, &a, op)
	v, ok := BitstringFinalize(&a)
	assert.True(t, ok)
	assert.Equal(t, byte(1), bit.GetBit(v, 0))
	BitstringDestroy(&a)
}

func Test_bitstringFinalizeUnsetReturnsFalse(t *testing.T) {
	var s BitstringState
	s.Initialize()
	_, ok := BitstringFinalize(&s)
	assert.False(t, ok)
}
