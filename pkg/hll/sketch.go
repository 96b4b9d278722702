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

// Package hll implements the HyperLogLog cardinality sketch: register
// insertion, merge, the redis-derived cardinality estimator, and
// bit-exact V1/V2 serialization compatible with the legacy dense image.
package hll

import (
	"math/bits"

	"github.com/daviszhen/hllbit/pkg/util"
)

// Bits is log2(M): the number of low hash bits that select a register.
// M is the register count and Q the maximum residual bit-width, i.e.
// the widest leading-zero-count InsertElement can ever observe. These
// three, plus Alpha, must stay identical across every peer that
// exchanges V2-serialized blobs, since a mismatch silently shifts
// which bucket a given hash lands in.
const (
	Bits = 14
	M    = 1 << Bits
	Q    = 64 - Bits
)

// Alpha is the bias-correction constant for M registers, the standard
// HyperLogLog correction redis's own sigma/tau-based estimator uses.
var Alpha = 0.7213 / (1 + 1.079/float64(M))

// Sketch is a fixed-size HyperLogLog register array. It owns its
// storage inline; there is nothing for Destroy to free.
type Sketch struct {
	k [M]uint8
}

// New returns an empty sketch, all registers at zero.
func New() *Sketch {
	return &Sketch{}
}

// GetRegister returns register i's current value.
func (h *Sketch) GetRegister(i int) uint8 {
	return h.k[i]
}

// InsertElement folds one already-hashed 64-bit value into the
// sketch: the low Bits bits pick the register, the leading-zero-count
// of the remaining Q bits (plus one) is the candidate register value.
func (h *Sketch) InsertElement(hash uint64) {
	idx := hash & (M - 1)
	residual := hash >> Bits
	// residual only occupies the low Q bits of a 64-bit word, so
	// bits.LeadingZeros64 overcounts by exactly Bits zero bits.
	zeros := uint8(bits.LeadingZeros64(residual)-Bits) + 1
	if zeros > Q+1 {
		zeros = Q + 1
	}
	h.Update(int(idx), zeros)
}

// Update applies k[i] = max(k[i], v), the single mutation both
// InsertElement and Merge are built from (Algorithm 2 in the source).
func (h *Sketch) Update(i int, v uint8) {
	if v > h.k[i] {
		h.k[i] = v
	}
}

// Merge folds other's registers into h in place.
func (h *Sketch) Merge(other *Sketch) {
	for i := 0; i < M; i++ {
		h.Update(i, other.k[i])
	}
}

// ExtractCounts histograms register values into c[0..Q+1] (Algorithm 4).
func (h *Sketch) ExtractCounts(c *[Q + 2]uint32) {
	for i := 0; i < M; i++ {
		c[h.k[i]]++
	}
}

// Count runs ExtractCounts followed by EstimateCardinality.
func (h *Sketch) Count() int64 {
	var c [Q + 2]uint32
	h.ExtractCounts(&c)
	return EstimateCardinality(&c)
}

// Copy duplicates the register array and asserts the copy estimates
// the same cardinality as the original, catching a torn or partial
// copy immediately rather than downstream at query time.
func (h *Sketch) Copy() *Sketch {
	result := &Sketch{}
	result.k = h.k
	util.AssertFunc(result.Count() == h.Count())
	return result
}

// UpdateBatch folds the payload/hash pair for count rows from a chunk
// batch: input carries the validity mask, hashVec carries the
// precomputed 64-bit hashes, both possibly under a selection vector.
// A CONSTANT hashVec inserts once, iff row 0 of input is valid.
func (h *Sketch) UpdateBatch(input UnifiedInput, hashes UnifiedHashes, count int, hashIsConstant bool) {
	if hashIsConstant {
		if input.RowIsValid(0) {
			h.InsertElement(hashes.Hash(0))
		}
		return
	}
	for i := 0; i < count; i++ {
		if input.RowIsValid(i) {
			h.InsertElement(hashes.Hash(i))
		}
	}
}

// UnifiedInput is the validity-mask half of the column batch
// interface: RowIsValid resolves row i through its own selection
// vector, the way a unified vector format's validity mask is expected
// to be indexed once the caller has already resolved the selection.
type UnifiedInput interface {
	RowIsValid(i int) bool
}

// UnifiedHashes is the hash-column half of the column batch
// interface: Hash resolves row i through the hash vector's own
// selection vector before returning the 64-bit value.
type UnifiedHashes interface {
	Hash(i int) uint64
}
