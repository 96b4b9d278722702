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
	"github.com/stretchr/testify/require"
)

func hashUint64(v uint64) uint64 {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	return Hash(buf[:])
}

func TestEmptySketchCountsZero(t *testing.T) {
	h := New()
	require.EqualValues(t, 0, h.Count())
}

func TestTinyInsertYieldsSmallPositiveCount(t *testing.T) {
	h := New()
	h.InsertElement(1)
	h.InsertElement(2)
	h.InsertElement(1)
	count := h.Count()
	assert.Greater(t, count, int64(0))
	assert.Less(t, count, int64(10))
}

func TestMonotonicity(t *testing.T) {
	small := New()
	for i := uint64(0); i < 200; i++ {
		small.InsertElement(hashUint64(i))
	}
	big := New()
	for i := uint64(0); i < 400; i++ {
		big.InsertElement(hashUint64(i))
	}
	// Estimator error is bounded but nonzero; monotonicity holds up to
	// a small epsilon rather than being exact.
	assert.GreaterOrEqual(t, float64(big.Count()), float64(small.Count())*0.9)
}

func TestMergeApproximatesUnion(t *testing.T) {
	a := New()
	for i := uint64(1); i <= 500; i++ {
		a.InsertElement(hashUint64(i))
	}
	b := New()
	for i := uint64(250); i <= 1000; i++ {
		b.InsertElement(hashUint64(i))
	}
	a.Merge(b)
	got := float64(a.Count())
	assert.InEpsilon(t, 1000.0, got, 0.02)
}

func TestMergeEqualsFreshUnionBitForBit(t *testing.T) {
	a := New()
	b := New()
	union := New()
	for i := uint64(0); i < 300; i++ {
		h := hashUint64(i)
		a.InsertElement(h)
		union.InsertElement(h)
	}
	for i := uint64(150); i < 450; i++ {
		h := hashUint64(i)
		b.InsertElement(h)
		union.InsertElement(h)
	}
	a.Merge(b)
	assert.Equal(t, union.k, a.k)
}

func TestCopyIsExact(t *testing.T) {
	h := New()
	for i := uint64(0); i < 1000; i++ {
		h.InsertElement(hashUint64(i))
	}
	cp := h.Copy()
	assert.Equal(t, h.k, cp.k)
	assert.EqualValues(t, h.Count(), cp.Count())
}

func TestCopySharesNoStorage(t *testing.T) {
	// The sketch owns its register array inline, so a Copy holds its
	// own registers: raising one in the copy must leave the original
	// unchanged.
	h := New()
	h.InsertElement(42)
	cp := h.Copy()
	cp.Update(0, 255)
	require.NotEqual(t, h.k, cp.k)
}
