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

// v1Mult is N_old / M: the legacy dense image used this many more
// registers per new-format register than the current sketch does.
// The original ports a real redis-style dense encoding (16384
// registers of 6 bits each); this reimplementation keeps the
// register *count* ratio the transform math cares about but stores
// each legacy register as a whole byte rather than bit-packing six
// bits at a time, since byte-for-byte compatibility with redis's own
// on-disk blob is outside this module's scope (see DESIGN.md).
const v1Mult = 4

// v1Registers is N_old, the register count of the legacy image.
const v1Registers = M * v1Mult

// v1MaxRegisterValue is maximum_zeros(): the largest zero-count a V1
// register field can hold, i.e. 2^6 - 1 for the six-bit dense
// encoding the legacy format packs.
const v1MaxRegisterValue = 63

// v1Q is the legacy image's own residual width bound: its histogram
// runs from 0 to v1MaxRegisterValue, so the fold's top bucket sits one
// below that ceiling the same way Q sits one below Q+1 for the current
// sketch.
const v1Q = v1MaxRegisterValue - 1

// v1Alpha is the bias-correction constant for v1Registers registers,
// derived the same way Alpha is for the current sketch's M.
var v1Alpha = 0.7213 / (1 + 1.079/float64(v1Registers))

// v1Image is the transiently-materialized legacy dense layout: a
// fixed-size register buffer with the two directional conversions
// (downscale to the compact layout, upscale back out of it) that
// serialization needs when it has to cross format versions.
type v1Image struct {
	registers [v1Registers]uint8
}

func newV1Image() *v1Image {
	return &v1Image{}
}

// GetV1Size returns the fixed byte length of the V1 wire payload.
func GetV1Size() int {
	return v1Registers
}

func (v *v1Image) getRegister(i int) uint8 {
	return v.registers[i]
}

func (v *v1Image) setRegister(i int, val uint8) {
	v.registers[i] = val
}

// bytes exposes the image as its raw wire payload.
func (v *v1Image) bytes() []byte {
	return v.registers[:]
}

// fromBytes loads a wire payload into the image, panicking on a
// length mismatch the way a fixed-size ReadProperty would.
func (v *v1Image) fromBytes(data []byte) {
	if len(data) != v1Registers {
		panic("hll: corrupt V1 image size")
	}
	copy(v.registers[:], data)
}

// toV2 is HLLV1::ToNew: compress v1Mult old registers into each new
// register by taking their max, losing accuracy the way the source
// comment describes ("Old implementation used more registers").
func (v *v1Image) toV2() *Sketch {
	newHLL := New()
	for i := 0; i < M; i++ {
		var maxOld uint8
		for j := 0; j < v1Mult; j++ {
			if r := v.getRegister(i*v1Mult + j); r > maxOld {
				maxOld = r
			}
		}
		newHLL.Update(i, maxOld)
	}
	return newHLL
}

// fromV2 upscales a compact sketch back into the legacy dense layout.
// Each new register's max becomes its group's anchor register; the
// remaining v1Mult-1 registers in the group are filler, set to a
// shared defaultVal that fromV2 searches for iteratively (stepping
// epsilon down from 4 to 1, one pass each) until the legacy image's own cardinality
// estimate lands close enough to the compact sketch's count.
func (v *v1Image) fromV2(newHLL *Sketch) {
	newCount := newHLL.Count()
	if newCount == 0 {
		return
	}

	sum := 0
	for i := 0; i < M; i++ {
		maxNew := newHLL.GetRegister(i)
		if maxNew > v1MaxRegisterValue {
			maxNew = v1MaxRegisterValue
		}
		v.setRegister(i*v1Mult, maxNew)
		sum += int(maxNew)
	}
	avg := uint8(sum / M)

	defaultVal := avg
	for epsilon := uint8(4); epsilon >= 1; epsilon-- {
		for i := 0; i < M; i++ {
			maxNew := newHLL.GetRegister(i)
			if maxNew > v1MaxRegisterValue {
				maxNew = v1MaxRegisterValue
			}
			fill := maxNew
			if defaultVal < fill {
				fill = defaultVal
			}
			for j := 1; j < v1Mult; j++ {
				v.setRegister(i*v1Mult+j, fill)
			}
		}
		if withinAcceptableRange(uint64(newCount), uint64(v.count())) {
			break
		}
		if v.count() > newCount {
			defaultVal -= epsilon
		} else {
			defaultVal += epsilon
		}
	}
}

// count estimates cardinality directly from the legacy image's own
// register distribution, the way HLLV1::Count works from N_old
// registers rather than routing through the compressed V2 layout.
// Downscaling through toV2() first would lose the filler registers'
// value: toV2 takes a max over each v1Mult-register group, and the
// group's anchor register already holds the group max, so it always
// reconstructs the same value regardless of what the fillers are set
// to. That would make fromV2's upscale search unable to tell whether a
// candidate defaultVal is any good.
func (v *v1Image) count() int64 {
	var c [v1Q + 2]uint32
	for i := 0; i < v1Registers; i++ {
		c[v.registers[i]]++
	}
	return estimateCardinality(float64(v1Registers), v1Alpha, v1Q, c[:])
}
