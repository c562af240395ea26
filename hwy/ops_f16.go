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

// This file provides Float16x8 arithmetic using the promote-compute-demote pattern:
// 1. Promote each Float16 lane to float64
// 2. Perform the operation in float64
// 3. Demote the result back to Float16 with a single rounding
//
// Sums and products of two binary16 values are exact in float64, and fused
// multiply-add uses math.FMA, so each operation rounds exactly once, the same
// as a native FP16 unit.

// Add performs lane-wise addition.
func (v Float16x8) Add(o Float16x8) Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = Float64ToFloat16(v[i].Float64() + o[i].Float64())
	}
	return r
}

// Sub performs lane-wise subtraction v - o.
func (v Float16x8) Sub(o Float16x8) Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = Float64ToFloat16(v[i].Float64() - o[i].Float64())
	}
	return r
}

// Mul performs lane-wise multiplication.
func (v Float16x8) Mul(o Float16x8) Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = Float64ToFloat16(v[i].Float64() * o[i].Float64())
	}
	return r
}

// MulAdd computes v*b + c with a single rounding per lane.
func (v Float16x8) MulAdd(b, c Float16x8) Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = Float64ToFloat16(math.FMA(v[i].Float64(), b[i].Float64(), c[i].Float64()))
	}
	return r
}

// MulSubFrom computes c - v*b with a single rounding per lane.
func (v Float16x8) MulSubFrom(b, c Float16x8) Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = Float64ToFloat16(math.FMA(-v[i].Float64(), b[i].Float64(), c[i].Float64()))
	}
	return r
}

// Neg flips the sign bit of every lane, including zeros and NaN.
func (v Float16x8) Neg() Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = v[i] ^ Float16SignMask
	}
	return r
}

// Abs clears the sign bit of every lane.
func (v Float16x8) Abs() Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = v[i] &^ Float16SignMask
	}
	return r
}

// NegMasked negates the lanes selected by mask and passes the rest through.
func (v Float16x8) NegMasked(mask Mask16x8) Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = v[i]
		if mask.Lane(i) {
			r[i] ^= Float16SignMask
		}
	}
	return r
}

// Min returns the lane-wise minimum. If either lane is NaN the result is NaN.
func (v Float16x8) Min(o Float16x8) Float16x8 {
	var r Float16x8
	for i := range r {
		a, b := v[i].Float64(), o[i].Float64()
		r[i] = Float64ToFloat16(math.Min(a, b))
	}
	return r
}

// Max returns the lane-wise maximum. If either lane is NaN the result is NaN.
func (v Float16x8) Max(o Float16x8) Float16x8 {
	var r Float16x8
	for i := range r {
		a, b := v[i].Float64(), o[i].Float64()
		r[i] = Float64ToFloat16(math.Max(a, b))
	}
	return r
}

// Merge returns v in lanes where mask is set and base elsewhere.
func (v Float16x8) Merge(base Float16x8, mask Mask16x8) Float16x8 {
	r := base
	for i := range r {
		if mask.Lane(i) {
			r[i] = v[i]
		}
	}
	return r
}

// Equal returns a mask of lanes where v == o. +0 and -0 compare equal; NaN never does.
func (v Float16x8) Equal(o Float16x8) Mask16x8 {
	return compareF16(v, o, func(a, b float64) bool { return a == b })
}

// Less returns a mask of lanes where v < o.
func (v Float16x8) Less(o Float16x8) Mask16x8 {
	return compareF16(v, o, func(a, b float64) bool { return a < b })
}

// LessEqual returns a mask of lanes where v <= o.
func (v Float16x8) LessEqual(o Float16x8) Mask16x8 {
	return compareF16(v, o, func(a, b float64) bool { return a <= b })
}

// Greater returns a mask of lanes where v > o.
func (v Float16x8) Greater(o Float16x8) Mask16x8 {
	return compareF16(v, o, func(a, b float64) bool { return a > b })
}

// IsNaN returns a mask of NaN lanes.
func (v Float16x8) IsNaN() Mask16x8 {
	var m Mask16x8
	for i := range v {
		if v[i].IsNaN() {
			m |= 1 << uint(i)
		}
	}
	return m
}

func compareF16(v, o Float16x8, pred func(a, b float64) bool) Mask16x8 {
	var m Mask16x8
	for i := range v {
		if pred(v[i].Float64(), o[i].Float64()) {
			m |= 1 << uint(i)
		}
	}
	return m
}

// ReduceSum sums all lanes and returns the result as float32.
// Accumulation is done in float32 to avoid precision loss.
func (v Float16x8) ReduceSum() float32 {
	var sum float32
	for _, h := range v {
		sum += h.Float32()
	}
	return sum
}

// ReduceMax returns the maximum value across all lanes. NaN lanes are skipped
// unless every lane is NaN.
func (v Float16x8) ReduceMax() Float16 {
	best := Float16NegInf
	bestF := math.Inf(-1)
	seen := false
	for _, h := range v {
		if h.IsNaN() {
			continue
		}
		if f := h.Float64(); !seen || f > bestF {
			best, bestF, seen = h, f, true
		}
	}
	if !seen {
		return Float16NaN
	}
	return best
}
