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

import "github.com/daviszhen/hllbit/pkg/common"

// AndOp, OrOp and XorOp implement ScalarOp for every signed/unsigned
// native width: int8/16/32/64 and their unsigned counterparts.

type AndOp[T Integer] struct{}

func (AndOp[T]) Assign(state *ScalarState[T], input T)  { state.Value = input }
func (AndOp[T]) Execute(state *ScalarState[T], input T) { state.Value &= input }
func (AndOp[T]) RepeatsForConstant() bool               { return false }

type OrOp[T Integer] struct{}

func (OrOp[T]) Assign(state *ScalarState[T], input T)  { state.Value = input }
func (OrOp[T]) Execute(state *ScalarState[T], input T) { state.Value |= input }
func (OrOp[T]) RepeatsForConstant() bool               { return false }

type XorOp[T Integer] struct{}

func (XorOp[T]) Assign(state *ScalarState[T], input T)  { state.Value = input }
func (XorOp[T]) Execute(state *ScalarState[T], input T) { state.Value ^= input }
func (XorOp[T]) RepeatsForConstant() bool               { return true }

// HugeintState mirrors ScalarState for the 128-bit width, which can't
// satisfy the Integer constraint because common.Hugeint is a struct.
type HugeintState struct {
	IsSet bool
	Value common.Hugeint
}

func (s *HugeintState) Initialize() {
	s.IsSet = false
}

type HugeintOp interface {
	Assign(state *HugeintState, input common.Hugeint)
	Execute(state *HugeintState, input common.Hugeint)
	RepeatsForConstant() bool
}

func hugeintAnd(a, b common.Hugeint) common.Hugeint {
	return common.Hugeint{Lower: a.Lower & b.Lower, Upper: a.Upper & b.Upper}
}

func hugeintOr(a, b common.Hugeint) common.Hugeint {
	return common.Hugeint{Lower: a.Lower | b.Lower, Upper: a.Upper | b.Upper}
}

func hugeintXor(a, b common.Hugeint) common.Hugeint {
	return common.Hugeint{Lower: a.Lower ^ b.Lower, Upper: a.Upper ^ b.Upper}
}

type HugeintAndOp struct{}

func (HugeintAndOp) Assign(state *HugeintState, input common.Hugeint) { state.Value = input }
func (HugeintAndOp) Execute(state *HugeintState, input common.Hugeint) {
	state.Value = hugeintAnd(state.Value, input)
}
func (HugeintAndOp) RepeatsForConstant() bool { return false }

type HugeintOrOp struct{}

func (HugeintOrOp) Assign(state *HugeintState, input common.Hugeint) { state.Value = input }
func (HugeintOrOp) Execute(state *HugeintState, input common.Hugeint) {
	state.Value = hugeintOr(state.Value, input)
}
func (HugeintOrOp) RepeatsForConstant() bool { return false }

type HugeintXorOp struct{}

func (HugeintXorOp) Assign(state *HugeintState, input common.Hugeint) { state.Value = input }
func (HugeintXorOp) Execute(state *HugeintState, input common.Hugeint) {
	state.Value = hugeintXor(state.Value, input)
}
func (HugeintXorOp) RepeatsForConstant() bool { return true }

func HugeintUpdate(state *HugeintState, op HugeintOp, input common.Hugeint) {
	if !state.IsSet {
		op.Assign(state, input)
		state.IsSet = true
	} else {
		op.Execute(state, input)
	}
}

func HugeintConstantUpdate(state *HugeintState, op HugeintOp, input common.Hugeint, count int) {
	if op.RepeatsForConstant() {
		for i := 0; i < count; i++ {
			HugeintUpdate(state, op, input)
		}
	} else {
		HugeintUpdate(state, op, input)
	}
}

func HugeintCombine(source, target *HugeintState, op HugeintOp) {
	if !source.IsSet {
		return
	}
	if !target.IsSet {
		op.Assign(target, source.Value)
		target.IsSet = true
	} else {
		op.Execute(target, source.Value)
	}
}

func HugeintFinalize(state *HugeintState) (common.Hugeint, bool) {
	if !state.IsSet {
		return common.Hugeint{}, false
	}
	return state.Value, true
}
