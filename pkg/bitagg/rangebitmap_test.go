package bitagg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daviszhen/hllbit/pkg/bit"
	"github.com/daviszhen/hllbit/pkg/common"
)

type fakeStats struct {
	min, max int64
	ok       bool
}

func (f fakeStats) MinMax(int) (int64, int64, bool) { return f.min, f.max, f.ok }

func Test_resolveBoundsPrefersExplicitLiterals(t *testing.T) {
	min, max := int64(1), int64(10)
	bounds, err := ResolveBounds(&min, &max, 0, fakeStats{min: 100, max: 200, ok: true})
	require.NoError(t, err)
	assert.Equal(t, RangeBitmapBindData{Min: 1, Max: 10}, bounds)
}

func Test_resolveBoundsFallsBackToStats(t *testing.T) {
	bounds, err := ResolveBounds(nil, nil, 0, fakeStats{min: 5, max: 15, ok: true})
	require.NoError(t, err)
	assert.Equal(t, RangeBitmapBindData{Min: 5, Max: 15}, bounds)
}

func Test_resolveBoundsErrorsWithoutStatsOrLiterals(t *testing.T) {
	_, err := ResolveBounds(nil, nil, 0, nil)
	assert.Error(t, err)
}

func Test_resolveBoundsErrorsOnUnavailableStats(t *testing.T) {
	_, err := ResolveBounds(nil, nil, 0, fakeStats{ok: false})
	assert.Error(t, err)
}

func Test_rangeBitmapOperationSetsBitAtOffset(t *testing.T) {
	var s RangeBitmapState
	s.Initialize()
	bounds := RangeBitmapBindData{Min: 10, Max: 20}

	require.NoError(t, RangeBitmapOperation(&s, bounds, 12))
	require.NoError(t, RangeBitmapOperation(&s, bounds, 10))

	v, ok := RangeBitmapFinalize(&s)
	assert.True(t, ok)
	assert.Equal(t, byte(1), bit.GetBit(v, 0))
	assert.Equal(t, byte(1), bit.GetBit(v, 2))
	assert.Equal(t, byte(0), bit.GetBit(v, 5))
	RangeBitmapDestroy(&s)
}

func Test_rangeBitmapOperationRejectsOutOfRangeValue(t *testing.T) {
	var s RangeBitmapState
	s.Initialize()
	bounds := RangeBitmapBindData{Min: 10, Max: 20}
	err := RangeBitmapOperation(&s, bounds, 99)
	assert.Error(t, err)
}

func Test_rangeBitmapRejectsOverlargeRange(t *testing.T) {
	var s RangeBitmapState
	s.Initialize()
	bounds := RangeBitmapBindData{Min: 0, Max: maxRangeBits + 10}
	err := RangeBitmapOperation(&s, bounds, 0)
	assert.Error(t, err)
}

func Test_rangeBitmapConstantOperationFoldsOnce(t *testing.T) {
	var s RangeBitmapState
	s.Initialize()
	bounds := RangeBitmapBindData{Min: 0, Max: 7}
	require.NoError(t, RangeBitmapConstantOperation(&s, bounds, 3, 50))
	v, ok := RangeBitmapFinalize(&s)
	assert.True(t, ok)
	assert.Equal(t, byte(1), bit.GetBit(v, 3))
	RangeBitmapDestroy(&s)
}

func Test_rangeBitmapCombineOrsBitmaps(t *testing.T) {
	var a, b RangeBitmapState
	a.Initialize()
	b.Initialize()
	bounds := RangeBitmapBindData{Min: 0, Max: 7}
	require.NoError(t, RangeBitmapOperation(&a, bounds, 1))
	require.NoError(t, RangeBitmapOperation(&b, bounds, 6))

	RangeBitmapCombine(&b, &a)
	v, ok := RangeBitmapFinalize(&a)
	assert.True(t, ok)
	assert.Equal(t, byte(1), bit.GetBit(v, 1))
	assert.Equal(t, byte(1), bit.GetBit(v, 6))
	RangeBitmapDestroy(&a)
	RangeBitmapDestroy(&b)
}

func Test_rangeBitmapCombineUnsetSourceIsNoop(t *testing.T) {
	var a, b RangeBitmapState
	a.Initialize()
	b.Initialize()
	bounds := RangeBitmapBindData{Min: 0, Max: 7}
	require.NoError(t, RangeBitmapOperation(&a, bounds, 2))

	RangeBitmapCombine(&b, &a)
	v, ok := RangeBitmapFinalize(&a)
	assert.True(t, ok)
	assert.Equal(t, byte(1), bit.GetBit(v, 2))
	RangeBitmapDestroy(&a)
}

func Test_rangeBitmapHugeintOperation(t *testing.T) {
	var s RangeBitmapState
	min := common.Hugeint{Lower: 1000, Upper: 0}
	max := common.Hugeint{Lower: 1010, Upper: 0}
	input := common.Hugeint{Lower: 1005, Upper: 0}

	require.NoError(t, RangeBitmapOperationHugeint(&s, min, max, input))
	v, ok := RangeBitmapFinalize(&s)
	assert.True(t, ok)
	assert.Equal(t, byte(1), bit.GetBit(v, 5))
	RangeBitmapDestroy(&s)
}

func Test_rangeBitmapHugeintOperationRejectsOutOfRange(t *testing.T) {
	var s RangeBitmapState
	min := common.Hugeint{Lower: 1000, Upper: 0}
	max := common.Hugeint{Lower: 1010, Upper: 0}
	input := common.Hugeint{Lower: 2000, Upper: 0}

	err := RangeBitmapOperationHugeint(&s, min, max, input)
	assert.Error(t, err)
}
