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

// Float16 represents an IEEE 754 half-precision (binary16) floating-point number.
// It wraps uint16 for storage; arithmetic is performed by the lane vector types.
//
// Format: Sign (1 bit) | Exponent (5 bits) | Mantissa (10 bits)
//
//	S | EEEEE | MMMMMMMMMM
//
// Properties:
//   - Exponent bias: 15
//   - Max value: 65504
//   - Min positive normal: 2^-14 (~6.10e-5)
//   - Precision: ~3.3 decimal digits
type Float16 uint16

// Float16 constants for special values.
const (
	Float16Zero      Float16 = 0x0000 // Positive zero
	Float16NegZero   Float16 = 0x8000 // Negative zero
	Float16One       Float16 = 0x3C00 // 1.0
	Float16NegOne    Float16 = 0xBC00 // -1.0
	Float16Two       Float16 = 0x4000 // 2.0
	Float16MaxValue  Float16 = 0x7BFF // 65504 (max finite value)
	Float16MinNormal Float16 = 0x0400 // 2^-14 (~6.10e-5, smallest normal)
	Float16MinValue  Float16 = 0x0001 // Smallest denormal (~5.96e-8)
	Float16Inf       Float16 = 0x7C00 // Positive infinity
	Float16NegInf    Float16 = 0xFC00 // Negative infinity
	Float16NaN       Float16 = 0x7E00 // Quiet NaN (canonical)
)

// Bit layout of binary16. The approximation kernels in contrib/math derive
// every magic number from these; porting them to another width means
// re-deriving all of them.
const (
	Float16SignMask     = 0x8000
	Float16ExpMask      = 0x7C00
	Float16MantissaMask = 0x03FF
	Float16ExpShift     = 10
	Float16ExpBias      = 15

	// Float16MinNormalExp is the smallest unbiased exponent of a normal value.
	Float16MinNormalExp = 1 - Float16ExpBias
)

// float64 layout helpers used by the rounding conversion.
const (
	f64MantBits = 52
	f64ExpBias  = 1023
	f64MantMask = 1<<f64MantBits - 1

	// Mantissa bits dropped when narrowing a float64 mantissa to binary16.
	f64ToF16Drop = f64MantBits - Float16ExpShift
)

// Float16ToFloat32 converts a single Float16 to float32. The conversion is
// exact for every binary16 value, including subnormals, infinities and NaN.
func Float16ToFloat32(h Float16) float32 {
	sign := uint32(h&Float16SignMask) << 16
	exp := uint32(h&Float16ExpMask) >> Float16ExpShift
	mant := uint32(h & Float16MantissaMask)

	switch {
	case exp == 0x1F:
		// Inf keeps a zero mantissa; NaN keeps its payload in the top bits.
		return math.Float32frombits(sign | 0x7F800000 | mant<<13)
	case exp != 0:
		return math.Float32frombits(sign | (exp+127-Float16ExpBias)<<23 | mant<<13)
	case mant == 0:
		return math.Float32frombits(sign)
	}

	// Subnormal: value is mant * 2^-24, exactly representable as float32.
	f := float32(mant) * (1.0 / (1 << 24))
	if sign != 0 {
		f = -f
	}
	return f
}

// Float32ToFloat16 converts a float32 to Float16 with round-to-nearest-even.
// Overflow goes to infinity, tiny values underflow through the subnormal range to zero.
func Float32ToFloat16(f float32) Float16 {
	// float32 -> float64 is exact, so this still rounds only once.
	return Float64ToFloat16(float64(f))
}

// Float64ToFloat16 converts a float64 to Float16 with a single
// round-to-nearest-even step. The lane arithmetic relies on this to emulate
// hardware binary16 operations that round exactly once.
func Float64ToFloat16(f float64) Float16 {
	bits := math.Float64bits(f)
	sign := uint16(bits>>48) & Float16SignMask
	exp := int(bits>>f64MantBits) & 0x7FF
	mant := bits & f64MantMask

	if exp == 0x7FF {
		if mant != 0 {
			return Float16(sign | uint16(Float16NaN) | uint16(mant>>f64ToF16Drop))
		}
		return Float16(sign | uint16(Float16Inf))
	}

	e := exp - f64ExpBias + Float16ExpBias
	if e >= 0x1F {
		return Float16(sign | uint16(Float16Inf))
	}

	var out uint64
	var shift uint
	if e > 0 {
		out = uint64(e)<<Float16ExpShift | mant>>f64ToF16Drop
		shift = f64ToF16Drop
	} else {
		// Result is subnormal (or rounds up to the smallest normal).
		shift = uint(f64ToF16Drop + 1 - e)
		if shift > f64MantBits+1 {
			return Float16(sign)
		}
		full := mant | 1<<f64MantBits
		out = full >> shift
		mant = full
	}

	rem := mant & (1<<shift - 1)
	half := uint64(1) << (shift - 1)
	if rem > half || (rem == half && out&1 == 1) {
		// A carry out of the mantissa bumps the exponent, and out of the
		// largest finite exponent it lands exactly on the Inf pattern.
		out++
	}
	return Float16(sign | uint16(out))
}

// IsNaN returns true if h is a NaN value.
func (h Float16) IsNaN() bool {
	return h&Float16ExpMask == Float16ExpMask && h&Float16MantissaMask != 0
}

// IsInf returns true if h is positive or negative infinity.
func (h Float16) IsInf() bool {
	return h&0x7FFF == Float16Inf
}

// IsZero returns true if h is positive or negative zero.
func (h Float16) IsZero() bool {
	return h&0x7FFF == 0
}

// IsNegative returns true if the sign bit is set.
func (h Float16) IsNegative() bool {
	return h&Float16SignMask != 0
}

// IsDenormal returns true if h is a denormalized number.
func (h Float16) IsDenormal() bool {
	return h&Float16ExpMask == 0 && h&Float16MantissaMask != 0
}

// IsNormal returns true if h is finite, non-zero and not denormal.
func (h Float16) IsNormal() bool {
	exp := h & Float16ExpMask
	return exp != 0 && exp != Float16ExpMask
}

// Float32 converts this Float16 to float32.
func (h Float16) Float32() float32 {
	return Float16ToFloat32(h)
}

// Float64 converts this Float16 to float64.
func (h Float16) Float64() float64 {
	return float64(Float16ToFloat32(h))
}

// NewFloat16 creates a Float16 from a float32 value.
func NewFloat16(f float32) Float16 {
	return Float32ToFloat16(f)
}

// NewFloat16FromFloat64 creates a Float16 from a float64 value.
func NewFloat16FromFloat64(f float64) Float16 {
	return Float64ToFloat16(f)
}

// Bits returns the raw uint16 representation.
func (h Float16) Bits() uint16 {
	return uint16(h)
}

// Float16FromBits creates a Float16 from raw bits.
func Float16FromBits(bits uint16) Float16 {
	return Float16(bits)
}
