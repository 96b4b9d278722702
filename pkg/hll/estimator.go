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

import "math"

// sigma is taken from redis code, per the source comment. Its loop
// terminates on floating-point equality of successive iterates, not a
// tolerance or fixed bound: substituting either changes which fixed
// point the estimator lands on for existing sketches.
func sigma(x float64) float64 {
	if x == 1. {
		return math.Inf(1)
	}
	var zPrime float64
	y := 1.0
	z := x
	for {
		x *= x
		zPrime = z
		z += x * y
		y += y
		if zPrime == z {
			break
		}
	}
	return z
}

// tau is taken from redis code, per the source comment. Same
// termination discipline as sigma.
func tau(x float64) float64 {
	if x == 0. || x == 1. {
		return 0.
	}
	var zPrime float64
	y := 1.0
	z := 1 - x
	for {
		x = math.Sqrt(x)
		zPrime = z
		y *= 0.5
		z -= math.Pow(1-x, 2) * y
		if zPrime == z {
			break
		}
	}
	return z / 3
}

// EstimateCardinality is Algorithm 6: fold the register histogram
// c[0..Q+1] down through sigma/tau into a single estimate.
func EstimateCardinality(c *[Q + 2]uint32) int64 {
	return estimateCardinality(M, Alpha, Q, c[:])
}

// estimateCardinality is Algorithm 6 generalized over the register
// count and max residual width: the sketch's own M/Alpha/Q describe
// one register layout, but the legacy V1 image histograms a different
// register count and per-register ceiling, so both call through here
// with their own parameters rather than duplicating the fold.
func estimateCardinality(m float64, alpha float64, qMax int, c []uint32) int64 {
	z := m * tau((m-float64(c[qMax]))/m)

	for k := qMax; k >= 1; k-- {
		z += float64(c[k])
		z *= 0.5
	}

	z += m * sigma(float64(c[0])/m)

	return int64(math.Round(alpha * m * m / z))
}
