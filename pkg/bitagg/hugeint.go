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
	"math"

	"github.com/daviszhen/hllbit/pkg/common"
)

// hugeintSub returns lhs - rhs using Negate+AddInplace, since Hugeint
// only exposes addition directly.
func hugeintSub(lhs, rhs common.Hugeint) (common.Hugeint, bool) {
	neg := common.Hugeint{}
	common.NegateHugeint(&rhs, &neg)
	result := lhs
	if !common.AddInplace(&result, &neg) {
		return common.Hugeint{}, false
	}
	return result, true
}

// tryCastHugeintToInt64 mirrors Hugeint::TryCast<idx_t>: it succeeds
// only when the value fits in a non-negative int64, which is all the
// range/offset arithmetic bitstring_agg ever needs.
func tryCastHugeintToInt64(h common.Hugeint) (int64, bool) {
	if h.Upper != 0 {
		return 0, false
	}
	if h.Lower > math.MaxInt64 {
		return 0, false
	}
	return int64(h.Lower), true
}

// hugeintRange computes max - min + 1 for a hugeint (min, max) pair,
// the way BitStringAggOperation::GetRange's hugeint_t specialization
// does, failing when the span doesn't fit an idx_t.
func hugeintRange(min, max common.Hugeint) (int64, bool) {
	span, ok := hugeintSub(max, min)
	if !ok {
		return 0, false
	}
	one := common.Hugeint{Lower: 1, Upper: 0}
	if !common.AddInplace(&span, &one) {
		return 0, false
	}
	return tryCastHugeintToInt64(span)
}

// hugeintOffset computes input - min for a hugeint input, matching the
// hugeint_t overload of BitStringAggOperation::Execute that sets the
// bit at that offset only if the subtraction fits an idx_t.
func hugeintOffset(input, min common.Hugeint) (int64, bool) {
	diff, ok := hugeintSub(input, min)
	if !ok {
		return 0, false
	}
	return tryCastHugeintToInt64(diff)
}
