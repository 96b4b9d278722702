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

// acceptableQError is the V1/V2 quotient bound the source calls
// IsWithinAcceptableRange: the larger of two counts must be within
// this factor of the smaller for the transform to be accepted.
const acceptableQError = 2.0

// withinAcceptableRange is IsWithinAcceptableRange: true iff
// max(a,b)/min(a,b) < acceptableQError. Used as the acceptance test of
// the V1 upscale search in fromV2.
func withinAcceptableRange(a, b uint64) bool {
	if a == 0 || b == 0 {
		return a == b
	}
	newD, oldD := float64(a), float64(b)
	hi, lo := newD, oldD
	if lo > hi {
		hi, lo = lo, hi
	}
	return hi/lo < acceptableQError
}

// ToV1 upscales a V2 sketch into a fresh legacy dense image
// (HLLV1::FromNew's driver): allocate the image, run the epsilon
// search, and hand back its wire bytes.
func ToV1(h *Sketch) []byte {
	img := newV1Image()
	img.fromV2(h)
	return img.bytes()
}

// FromV1 downscales a legacy dense image into a fresh V2 sketch
// (HLLV1::ToNew's driver).
func FromV1(data []byte) *Sketch {
	img := newV1Image()
	img.fromBytes(data)
	return img.toV2()
}
