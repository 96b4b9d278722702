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

import "github.com/daviszhen/hllbit/pkg/chunk"

// unifiedInputAdapter and unifiedHashAdapter satisfy Sketch.UpdateBatch's
// UnifiedInput/UnifiedHashes over a real chunk.UnifiedFormat, resolving
// each logical row through its own selection vector the way
// UnifiedVectorFormat::validity.RowIsValid does in the source.
type unifiedInputAdapter struct {
	uni *chunk.UnifiedFormat
}

func (a unifiedInputAdapter) RowIsValid(i int) bool {
	return a.uni.Mask.RowIsValid(uint64(a.uni.Sel.GetIndex(i)))
}

type unifiedHashAdapter struct {
	uni    *chunk.UnifiedFormat
	hashes []uint64
}

func (a unifiedHashAdapter) Hash(i int) uint64 {
	return a.hashes[a.uni.Sel.GetIndex(i)]
}

// UpdateVector is HyperLogLog::Update(Vector&, Vector&, idx_t): fold
// count rows of input/hashVec into h, treating a CONSTANT hashVec as
// a single broadcast row.
func (h *Sketch) UpdateVector(input, hashVec *chunk.Vector, count int) {
	var idata, hdata chunk.UnifiedFormat
	input.ToUnifiedFormat(count, &idata)
	hashVec.ToUnifiedFormat(count, &hdata)
	hashes := chunk.GetSliceInPhyFormatUnifiedFormat[uint64](&hdata)

	h.UpdateBatch(
		unifiedInputAdapter{&idata},
		unifiedHashAdapter{&hdata, hashes},
		count,
		hashVec.PhyFormat().IsConst(),
	)
}
