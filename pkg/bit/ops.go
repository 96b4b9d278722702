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

package bit

import "github.com/daviszhen/hllbit/pkg/util"

// BitwiseAnd and BitwiseOr write lhs OP rhs into result, byte for byte
// including the header byte: AND/OR are idempotent on equal operands,
// and both operands carry the same padding count for a given bit
// length, so the header byte survives untouched. result may alias lhs
// or rhs.

func BitwiseAnd(lhs, rhs, result *Bitstring) {
	l, r := lhs.Bytes(), rhs.Bytes()
	util.AssertFunc(len(l) == len(r))
	out := result.Bytes()
	util.AssertFunc(len(out) == len(l))
	for i := range l {
		out[i] = l[i] & r[i]
	}
}

func BitwiseOr(lhs, rhs, result *Bitstring) {
	l, r := lhs.Bytes(), rhs.Bytes()
	util.AssertFunc(len(l) == len(r))
	out := result.Bytes()
	util.AssertFunc(len(out) == len(l))
	for i := range l {
		out[i] = l[i] | r[i]
	}
}

// BitwiseXor writes lhs ^ rhs into result. Unlike AND/OR, XOR is not
// idempotent on equal operands: XORing the header byte would zero it
// (both operands share the same padding count), corrupting NumBits.
// The header is copied through unchanged instead of XORed.
func BitwiseXor(lhs, rhs, result *Bitstring) {
	l, r := lhs.Bytes(), rhs.Bytes()
	util.AssertFunc(len(l) == len(r))
	out := result.Bytes()
	util.AssertFunc(len(out) == len(l))
	if len(l) == 0 {
		return
	}
	out[0] = l[0]
	for i := 1; i < len(l); i++ {
		out[i] = l[i] ^ r[i]
	}
}
