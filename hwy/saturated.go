// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

import "math"

// This file provides saturated int16 lane arithmetic.
// Saturated operations clamp results to [-32768, 32767] instead of wrapping.

// AddSaturated performs lane-wise addition with saturation.
// For example, 32760 + 10 = 32767 (not -32766).
func (v Int16x8) AddSaturated(o Int16x8) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = saturateInt16(int64(v[i]) + int64(o[i]))
	}
	return r
}

// SubSaturated performs lane-wise subtraction v - o with saturation.
func (v Int16x8) SubSaturated(o Int16x8) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = saturateInt16(int64(v[i]) - int64(o[i]))
	}
	return r
}

// ShiftAllLeftSaturated multiplies every lane by 2^n, clamping to the int16 range.
// Shifts of 16 or more saturate every non-zero lane.
func (v Int16x8) ShiftAllLeftSaturated(n uint) Int16x8 {
	var r Int16x8
	for i := range r {
		switch {
		case v[i] == 0:
			r[i] = 0
		case n >= 16:
			r[i] = saturateInt16(int64(v[i]) << 16)
		default:
			r[i] = saturateInt16(int64(v[i]) << n)
		}
	}
	return r
}

func saturateInt16(x int64) int16 {
	if x > math.MaxInt16 {
		return math.MaxInt16
	}
	if x < math.MinInt16 {
		return math.MinInt16
	}
	return int16(x)
}
