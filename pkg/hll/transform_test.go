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

func TestWithinAcceptableRange(t *testing.T) {
	assert.True(t, withinAcceptableRange(100, 150))
	assert.False(t, withinAcceptableRange(100, 250))
	assert.True(t, withinAcceptableRange(0, 0))
	assert.False(t, withinAcceptableRange(0, 5))
}

func TestV1RoundTripBound(t *testing.T) {
	h := New()
	for i := uint64(0); i < 10000; i++ {
		h.InsertElement(hashUint64(i))
	}
	origCount := h.Count()
	require.Greater(t, origCount, int64(0))

	v1 := ToV1(h)
	require.Len(t, v1, GetV1Size())

	back := FromV1(v1)
	ratio := float64(back.Count()) / float64(origCount)
	assert.GreaterOrEqual(t, ratio, 0.5)
	assert.LessOrEqual(t, ratio, 2.0)
}

func TestV1UpscaleOfEmptySketchStaysEmpty(t *testing.T) {
	h := New()
	v1 := ToV1(h)
	for _, b := range v1 {
		assert.Zero(t, b)
	}
}

func TestV1AnchorPreservation(t *testing.T) {
	h := New()
	for i := uint64(0); i < 5000; i++ {
		h.InsertElement(hashUint64(i))
	}
	img := newV1Image()
	img.fromV2(h)
	// Anchor slots (index*mult) are set losslessly to min(register,
	// maximum_zeros) in step 2 of the upscale search and never
	// touched again by later epsilon passes.
	for i := 0; i < M; i++ {
		want := h.GetRegister(i)
		if want > v1MaxRegisterValue {
			want = v1MaxRegisterValue
		}
		assert.Equal(t, want, img.getRegister(i*v1Mult))
	}
	// A V1->V2->V1 round trip on this anchor-preserving image is
	// identity on the anchor slots.
	back := img.toV2()
	img2 := newV1Image()
	img2.fromV2(back)
	for i := 0; i < M; i++ {
		assert.Equal(t, img.getRegister(i*v1Mult), img2.getRegister(i*v1Mult))
	}
}
