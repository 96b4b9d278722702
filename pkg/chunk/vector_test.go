package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daviszhen/hllbit/pkg/common"
	"github.com/daviszhen/hllbit/pkg/util"
)

func Test_flatVectorIntegerGetSetValue(t *testing.T) {
	vec := NewFlatVector(common.IntegerType(), util.DefaultVectorSize)
	for i := 0; i < 10; i++ {
		vec.SetValue(i, &Value{Typ: common.IntegerType(), I64: int64(i * 3)})
	}
	for i := 0; i < 10; i++ {
		val := vec.GetValue(i)
		assert.False(t, val.IsNull)
		assert.Equal(t, int64(i*3), val.I64)
	}
}

func Test_flatVectorNullMask(t *testing.T) {
	vec := NewFlatVector(common.BigintType(), util.DefaultVectorSize)
	vec.SetValue(0, &Value{Typ: common.BigintType(), I64: 42})
	vec.SetValue(1, &Value{Typ: common.BigintType(), IsNull: true})
	assert.False(t, vec.GetValue(0).IsNull)
	assert.Equal(t, int64(42), vec.GetValue(0).I64)
	assert.True(t, vec.GetValue(1).IsNull)
}

func Test_constVectorBroadcast(t *testing.T) {
	vec := NewConstVector(common.BooleanType())
	vec.SetValue(0, &Value{Typ: common.BooleanType(), Bool: true})
	assert.True(t, vec.PhyFormat().IsConst())
	assert.True(t, vec.GetValue(5).Bool)
}

func Test_varcharVectorGetSetValue(t *testing.T) {
	vec := NewFlatVector(common.VarcharType(), util.DefaultVectorSize)
	vec.SetValue(0, &Value{Typ: common.VarcharType(), Str: "hello"})
	vec.SetValue(1, &Value{Typ: common.VarcharType(), Str: "world"})
	assert.Equal(t, "hello", vec.GetValue(0).Str)
	assert.Equal(t, "world", vec.GetValue(1).Str)
}

func Test_hugeintVectorGetSetValue(t *testing.T) {
	vec := NewFlatVector(common.HugeintType(), util.DefaultVectorSize)
	vec.SetValue(0, &Value{Typ: common.HugeintType(), I64: 7, I64_1: 11})
	val := vec.GetValue(0)
	assert.Equal(t, int64(7), val.I64)
	assert.Equal(t, int64(11), val.I64_1)
}

func Test_vectorFlattenFromConst(t *testing.T) {
	vec := NewConstVector(common.IntegerType())
	vec.SetValue(0, &Value{Typ: common.IntegerType(), I64: 9})
	vec.Flatten(4)
	assert.True(t, vec.PhyFormat().IsFlat())
	data := GetSliceInPhyFormatFlat[int32](vec)
	for i := 0; i < 4; i++ {
		assert.Equal(t, int32(9), data[i])
	}
}
