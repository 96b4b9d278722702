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

// Package bit implements the BIT value type: a packed, MSB-first bit
// buffer whose first byte records how many trailing bits of the last
// data byte are padding. bitagg's range-bitmap and bitstring bit_and/
// bit_or/bit_xor aggregates are built on top of it.
package bit

import (
	"unsafe"

	"github.com/daviszhen/hllbit/pkg/util"
)

// inlineCap is the small-buffer threshold between owned and inlined
// storage (a short-string optimization): bitstrings of at most
// inlineCap bytes, header included, live in the struct itself and
// avoid a heap allocation entirely.
const inlineCap = 12

type Bitstring struct {
	length int
	inline [inlineCap]byte
	ptr    unsafe.Pointer
	owned  bool
}

func (b *Bitstring) IsInlined() bool {
	return b.length <= inlineCap
}

func (b *Bitstring) Bytes() []byte {
	if b.length == 0 {
		return nil
	}
	if b.IsInlined() {
		return b.inline[:b.length]
	}
	return util.PointerToSlice[byte](b.ptr, b.length)
}

func (b *Bitstring) ByteLen() int {
	return b.length
}

// NumBits returns the number of logical bits stored, i.e. the byte
// length minus the header byte and minus the recorded padding.
func (b *Bitstring) NumBits() int {
	if b.length == 0 {
		return 0
	}
	data := b.Bytes()
	padding := int(data[0])
	return (b.length-1)*8 - padding
}

func byteLenForBits(bitLen int) int {
	dataBytes := bitLen / 8
	if bitLen%8 != 0 {
		dataBytes++
	}
	return 1 + dataBytes
}

func allocBitstring(byteLen int) *Bitstring {
	b := &Bitstring{length: byteLen}
	if byteLen <= inlineCap {
		return b
	}
	b.ptr = util.CMalloc(byteLen)
	b.owned = true
	util.CMemset(b.ptr, 0, byteLen)
	return b
}

// SetEmptyBitString allocates a bitLen-bit string with every bit unset,
// matching Bit::SetEmptyBitString: the header byte records how many
// bits of the final data byte are unused padding.
func SetEmptyBitString(bitLen int) *Bitstring {
	util.AssertFunc(bitLen >= 0)
	byteLen := byteLenForBits(bitLen)
	b := allocBitstring(byteLen)
	data := b.Bytes()
	for i := range data {
		data[i] = 0
	}
	padding := byte(0)
	if bitLen%8 != 0 {
		padding = byte(8 - bitLen%8)
	}
	data[0] = padding
	return b
}

// GetBit reads logical bit pos (0-indexed from the front of the
// bitstring, MSB-first within each data byte).
func GetBit(b *Bitstring, pos int) byte {
	util.AssertFunc(pos >= 0 && pos < b.NumBits())
	data := b.Bytes()
	byteIdx := 1 + pos/8
	bitOffset := 7 - uint(pos%8)
	return (data[byteIdx] >> bitOffset) & 1
}

// SetBit sets or clears logical bit pos to val (0 or 1).
func SetBit(b *Bitstring, pos int, val byte) {
	util.AssertFunc(pos >= 0 && pos < b.NumBits())
	data := b.Bytes()
	byteIdx := 1 + pos/8
	bitOffset := 7 - uint(pos%8)
	if val != 0 {
		data[byteIdx] |= 1 << bitOffset
	} else {
		data[byteIdx] &^= 1 << bitOffset
	}
}

// FromBytes wraps an existing MSB-first, header-prefixed byte buffer
// (e.g. one read off a Vector) as a Bitstring, copying it into inline
// or owned storage.
func FromBytes(raw []byte) *Bitstring {
	b := allocBitstring(len(raw))
	copy(b.Bytes(), raw)
	return b
}

// Assign copies src's value into a freshly owned Bitstring, the way
// BitStringBitwiseOperation::Assign allocates a private copy for
// non-inlined input before accumulating into it.
func Assign(src *Bitstring) *Bitstring {
	dst := allocBitstring(src.length)
	copy(dst.Bytes(), src.Bytes())
	return dst
}

// Destroy releases any heap buffer owned by b. Inlined bitstrings own
// nothing and Destroy is a no-op for them.
func Destroy(b *Bitstring) {
	if b == nil || !b.owned {
		return
	}
	util.CFree(b.ptr)
	b.ptr = nil
	b.owned = false
}
