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

// Integer lane arithmetic wraps modulo 2^16 unless the name says Saturated.

// Add performs lane-wise wrapping addition.
func (v Int16x8) Add(o Int16x8) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = v[i] + o[i]
	}
	return r
}

// Sub performs lane-wise wrapping subtraction v - o.
func (v Int16x8) Sub(o Int16x8) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = v[i] - o[i]
	}
	return r
}

// And performs lane-wise bitwise AND.
func (v Int16x8) And(o Int16x8) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = v[i] & o[i]
	}
	return r
}

// Or performs lane-wise bitwise OR.
func (v Int16x8) Or(o Int16x8) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = v[i] | o[i]
	}
	return r
}

// ShiftAllLeft shifts every lane left by n bits, discarding bits shifted out.
func (v Int16x8) ShiftAllLeft(n uint) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = int16(uint16(v[i]) << n)
	}
	return r
}

// ShiftAllRight shifts every lane right by n bits, replicating the sign bit.
func (v Int16x8) ShiftAllRight(n uint) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = v[i] >> n
	}
	return r
}

// Merge returns v in lanes where mask is set and base elsewhere.
func (v Int16x8) Merge(base Int16x8, mask Mask16x8) Int16x8 {
	r := base
	for i := range r {
		if mask.Lane(i) {
			r[i] = v[i]
		}
	}
	return r
}

// Equal returns a mask of lanes where v == o.
func (v Int16x8) Equal(o Int16x8) Mask16x8 {
	return compareI16(v, o, func(a, b int16) bool { return a == b })
}

// Less returns a mask of lanes where v < o.
func (v Int16x8) Less(o Int16x8) Mask16x8 {
	return compareI16(v, o, func(a, b int16) bool { return a < b })
}

// LessEqual returns a mask of lanes where v <= o.
func (v Int16x8) LessEqual(o Int16x8) Mask16x8 {
	return compareI16(v, o, func(a, b int16) bool { return a <= b })
}

// Greater returns a mask of lanes where v > o.
func (v Int16x8) Greater(o Int16x8) Mask16x8 {
	return compareI16(v, o, func(a, b int16) bool { return a > b })
}

func compareI16(v, o Int16x8, pred func(a, b int16) bool) Mask16x8 {
	var m Mask16x8
	for i := range v {
		if pred(v[i], o[i]) {
			m |= 1 << uint(i)
		}
	}
	return m
}
