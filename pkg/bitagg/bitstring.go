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

package bitagg

import "github.com/daviszhen/hllbit/pkg/bit"

// BitstringState accumulates bit_and/bit_or/bit_xor over BIT columns.
// It owns Value once IsSet: Destroy must run once per state to release
// it, mirroring BitStringBitwiseOperation::Destroy.
type BitstringState struct {
	IsSet bool
	Value *bit.Bitstring
}

func (s *BitstringState) Initialize() {
	s.IsSet = false
	s.Value = nil
}

// BitstringOp is the bit.Bitstring analogue of ScalarOp: Execute must
// write its result into state.Value, and may alias its rhs operand
// with it (bit.BitwiseAnd/Or/Xor all tolerate that aliasing).
type BitstringOp interface {
	Execute(state *BitstringState, input *bit.Bitstring)
	RepeatsForConstant() bool
}

// assign takes ownership of a private copy of input, the way
// BitStringBitwiseOperation::Assign does: inlined inputs are copied by
// value for free, owned inputs get a fresh malloc'd buffer so the
// state never aliases caller-owned memory.
func assign(state *BitstringState, input *bit.Bitstring) {
	state.Value = bit.Assign(input)
}

func BitstringUpdate(state *BitstringState, op BitstringOp, input *bit.Bitstring) {
	if !state.IsSet {
		assign(state, input)
		state.IsSet = true
	} else {
		op.Execute(state, input)
	}
}

func BitstringConstantUpdate(state *BitstringState, op BitstringOp, input *bit.Bitstring, count int) {
	if op.RepeatsForConstant() {
		for i := 0; i < count; i++ {
			BitstringUpdate(state, op, input)
		}
	} else {
		BitstringUpdate(state, op, input)
	}
}

func BitstringCombine(source, target *BitstringState, op BitstringOp) {
	if !source.IsSet {
		return
	}
	if !target.IsSet {
		assign(target, source.Value)
		target.IsSet = true
	} else {
		op.Execute(target, source.Value)
	}
}

func BitstringFinalize(state *BitstringState) (*bit.Bitstring, bool) {
	if !state.IsSet {
		return nil, false
	}
	return state.Value, true
}

func BitstringDestroy(state *BitstringState) {
	if state.IsSet {
		bit.Destroy(state.Value)
		state.Value = nil
		state.IsSet = false
	}
}

// BitstringAndOp, BitstringOrOp and BitstringXorOp match
// BitStringAndOperation/OrOperation/XorOperation: each writes the
// combined result back into state.Value, aliasing it as the rhs.
type BitstringAndOp struct{}

func (BitstringAndOp) Execute(state *BitstringState, input *bit.Bitstring) {
	bit.BitwiseAnd(input, state.Value, state.Value)
}
func (BitstringAndOp) RepeatsForConstant() bool { return false }

type BitstringOrOp struct{}

func (BitstringOrOp) Execute(state *BitstringState, input *bit.Bitstring) {
	bit.BitwiseOr(input, state.Value, state.Value)
}
func (BitstringOrOp) RepeatsForConstant() bool { return false }

type BitstringXorOp struct{}

func (BitstringXorOp) Execute(state *BitstringState, input *bit.Bitstring) {
	bit.BitwiseXor(input, state.Value, state.Value)
}
func (BitstringXorOp) RepeatsForConstant() bool { return true }
