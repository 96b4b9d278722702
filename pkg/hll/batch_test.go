// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hll

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daviszhen/hllbit/pkg/chunk"
	"github.com/daviszhen/hllbit/pkg/common"
	"github.com/daviszhen/hllbit/pkg/util"
)

func TestUpdateVectorFlat(t *testing.T) {
	const n = 100
	payload := chunk.NewFlatVector(common.IntegerType(), util.DefaultVectorSize)
	hashVec := chunk.NewFlatVector(common.HashType(), util.DefaultVectorSize)
	for i := 0; i < n; i++ {
		payload.SetValue(i, &chunk.Value{Typ: common.IntegerType(), I64: int64(i)})
		hashVec.SetValue(i, &chunk.Value{Typ: common.HashType(), I64: int64(hashUint64(uint64(i)))})
	}

	viaVector := New()
	viaVector.UpdateVector(payload, hashVec, n)

	direct := New()
	for i := uint64(0); i < n; i++ {
		direct.InsertElement(hashUint64(i))
	}
	assert.Equal(t, direct.k, viaVector.k)
}

func TestUpdateVectorConstantInsertsOnce(t *testing.T) {
	payload := chunk.NewConstVector(common.IntegerType())
	payload.SetValue(0, &chunk.Value{Typ: common.IntegerType(), I64: 7})
	hashVec := chunk.NewConstVector(common.HashType())
	h := hashUint64(7)
	hashVec.SetValue(0, &chunk.Value{Typ: common.HashType(), I64: int64(h)})

	got := New()
	got.UpdateVector(payload, hashVec, 5)

	want := New()
	want.InsertElement(h)
	assert.Equal(t, want.k, got.k)
}

func TestUpdateVectorSkipsInvalidRows(t *testing.T) {
	const n = 10
	payload := chunk.NewFlatVector(common.IntegerType(), util.DefaultVectorSize)
	hashVec := chunk.NewFlatVector(common.HashType(), util.DefaultVectorSize)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			payload.SetValue(i, &chunk.Value{Typ: common.IntegerType(), IsNull: true})
		} else {
			payload.SetValue(i, &chunk.Value{Typ: common.IntegerType(), I64: int64(i)})
		}
		hashVec.SetValue(i, &chunk.Value{Typ: common.HashType(), I64: int64(hashUint64(uint64(i)))})
	}

	got := New()
	got.UpdateVector(payload, hashVec, n)

	want := New()
	for i := uint64(1); i < n; i += 2 {
		want.InsertElement(hashUint64(i))
	}
	assert.Equal(t, want.k, got.k)
}
