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

// Package bitagg implements the bit_and/bit_or/bit_xor scalar aggregate
// family and the bitstring_agg range-bitmap aggregate.
package bitagg

import "golang.org/x/exp/constraints"

// Integer is the set of native integer widths the scalar bitwise
// aggregates run over. The 128-bit width is not a member since Hugeint
// is a struct, not a machine integer; it gets its own state and ops.
type Integer = constraints.Integer

// ScalarState is the running aggregate for one group. A group that
// never sees a row stays IsSet == false and finalizes to NULL.
type ScalarState[T Integer] struct {
	IsSet bool
	Value T
}

func (s *ScalarState[T]) Initialize() {
	s.IsSet = false
}

// ScalarOp picks AND/OR/XOR semantics for Update/Combine. RepeatsForConstant
// reports whether a run of identical constant-vector input must still be
// folded in one row at a time: AND/OR are idempotent so a single fold
// suffices, XOR toggles with parity so it must run count times.
type ScalarOp[T Integer] interface {
	Assign(state *ScalarState[T], input T)
	Execute(state *ScalarState[T], input T)
	RepeatsForConstant() bool
}

func Update[T Integer](state *ScalarState[T], op ScalarOp[T], input T) {
	if !state.IsSet {
		op.Assign(state, input)
		state.IsSet = true
	} else {
		op.Execute(state, input)
	}
}

func ConstantUpdate[T Integer](state *ScalarState[T], op ScalarOp[T], input T, count int) {
	if op.RepeatsForConstant() {
		for i := 0; i < count; i++ {
			Update(state, op, input)
		}
	} else {
		Update(state, op, input)
	}
}

func Combine[T Integer](source *ScalarState[T], target *ScalarState[T], op ScalarOp[T]) {
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

func Finalize[T Integer](state *ScalarState[T]) (T, bool) {
	if !state.IsSet {
		var zero T
		return zero, false
	}
	return state.Value, true
}

func Destroy[T Integer](_ *ScalarState[T]) {
	// native-width states own no external memory.
}
