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

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/daviszhen/hllbit/pkg/bit"
	"github.com/daviszhen/hllbit/pkg/common"
	"github.com/daviszhen/hllbit/pkg/util"
)

// maxRangeBits caps the bitmap bitstring_agg will ever allocate,
// mirroring BitStringAggOperation::Operation's OutOfRangeException
// guard against pathological (min, max) pairs.
const maxRangeBits = 1_000_000_000

// StatsLookup resolves a column's (min, max) bounds for the 1-arg form
// of bitstring_agg, standing in for the column statistics
// BitstringAggBindData pulls from during binding when no literal
// bounds are given.
type StatsLookup interface {
	MinMax(columnIndex int) (min, max int64, ok bool)
}

// RangeBitmapBindData is the resolved (min, max) bound pair, the Go
// analogue of BitstringAggBindData once binding has completed.
type RangeBitmapBindData struct {
	Min, Max int64
}

// ResolveBounds implements bitstring_agg's dual registration: the
// 3-arg overload supplies explicit literal bounds directly, the 1-arg
// overload falls back to a StatsLookup the way the planner propagates
// column statistics into the bind call.
func ResolveBounds(explicitMin, explicitMax *int64, columnIndex int, stats StatsLookup) (RangeBitmapBindData, error) {
	if explicitMin != nil && explicitMax != nil {
		return RangeBitmapBindData{Min: *explicitMin, Max: *explicitMax}, nil
	}
	if stats == nil {
		util.Error("bitstring_agg: no column statistics to infer bounds", zap.Int("columnIndex", columnIndex))
		return RangeBitmapBindData{}, fmt.Errorf("bitstring_agg: min/max not given and no column statistics available")
	}
	min, max, ok := stats.MinMax(columnIndex)
	if !ok {
		util.Error("bitstring_agg: column statistics unavailable", zap.Int("columnIndex", columnIndex))
		return RangeBitmapBindData{}, fmt.Errorf("bitstring_agg: column statistics unavailable to infer bounds")
	}
	return RangeBitmapBindData{Min: min, Max: max}, nil
}

func rangeFor(min, max int64) (int64, error) {
	if max < min {
		return 0, fmt.Errorf("bitstring_agg: invalid range, max (%d) < min (%d)", max, min)
	}
	r := max - min + 1
	if r > maxRangeBits {
		return 0, fmt.Errorf("bitstring_agg: range %d too large for bitstring aggregation (max %d bits)", r, maxRangeBits)
	}
	return r, nil
}

// RangeBitmapState holds the lazily-allocated bitmap; allocation is
// deferred to the first Operation call because the bitmap's size
// depends on bounds resolved at bind time, not at state construction.
type RangeBitmapState struct {
	IsSet bool
	Value *bit.Bitstring
}

func (s *RangeBitmapState) Initialize() {
	s.IsSet = false
	s.Value = nil
}

func (s *RangeBitmapState) ensure(bounds RangeBitmapBindData) error {
	if s.IsSet {
		return nil
	}
	bitRange, err := rangeFor(bounds.Min, bounds.Max)
	if err != nil {
		return err
	}
	s.Value = bit.SetEmptyBitString(int(bitRange))
	s.IsSet = true
	return nil
}

// RangeBitmapOperation sets the bit at input-min, allocating the
// bitmap on the first call for this group, matching
// BitStringAggOperation::Operation/Execute.
func RangeBitmapOperation(s *RangeBitmapState, bounds RangeBitmapBindData, input int64) error {
	if err := s.ensure(bounds); err != nil {
		return err
	}
	if input < bounds.Min || input > bounds.Max {
		return fmt.Errorf("bitstring_agg: value %d outside range [%d, %d]", input, bounds.Min, bounds.Max)
	}
	bit.SetBit(s.Value, int(input-bounds.Min), 1)
	return nil
}

// RangeBitmapOperationHugeint is the hugeint_t specialization of
// Operation/Execute: range and offset are computed with overflow
// checks before ever narrowing to a bit position.
func RangeBitmapOperationHugeint(s *RangeBitmapState, min, max, input common.Hugeint) error {
	if !s.IsSet {
		bitRange, ok := hugeintRange(min, max)
		if !ok {
			return fmt.Errorf("bitstring_agg: range too large for bitstring aggregation")
		}
		if bitRange > maxRangeBits {
			return fmt.Errorf("bitstring_agg: range %d too large for bitstring aggregation (max %d bits)", bitRange, maxRangeBits)
		}
		s.Value = bit.SetEmptyBitString(int(bitRange))
		s.IsSet = true
	}
	offset, ok := hugeintOffset(input, min)
	if !ok || offset < 0 || offset >= int64(s.Value.NumBits()) {
		return fmt.Errorf("bitstring_agg: value out of range")
	}
	bit.SetBit(s.Value, int(offset), 1)
	return nil
}

// RangeBitmapConstantOperation folds a constant vector's single value
// in once, the way BitwiseOperation::ConstantOperation (inherited
// since bitstring_agg never overrides it) does for non-XOR-like ops.
func RangeBitmapConstantOperation(s *RangeBitmapState, bounds RangeBitmapBindData, input int64, count int) error {
	if count == 0 {
		return nil
	}
	return RangeBitmapOperation(s, bounds, input)
}

// RangeBitmapCombine ORs source's bitmap into target, matching
// BitStringAggOperation::Combine.
func RangeBitmapCombine(source, target *RangeBitmapState) {
	if !source.IsSet {
		return
	}
	if !target.IsSet {
		target.Value = bit.Assign(source.Value)
		target.IsSet = true
	} else {
		bit.BitwiseOr(source.Value, target.Value, target.Value)
	}
}

func RangeBitmapFinalize(s *RangeBitmapState) (*bit.Bitstring, bool) {
	if !s.IsSet {
		return nil, false
	}
	return s.Value, true
}

func RangeBitmapDestroy(s *RangeBitmapState) {
	if s.IsSet {
		bit.Destroy(s.Value)
		s.Value = nil
		s.IsSet = false
	}
}
