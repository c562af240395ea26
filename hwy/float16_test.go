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

import (
	"math"
	"testing"
)

// TestFloat16Constants verifies the predefined Float16 constants.
func TestFloat16Constants(t *testing.T) {
	tests := []struct {
		name     string
		value    Float16
		expected float32
	}{
		{"Zero", Float16Zero, 0.0},
		{"One", Float16One, 1.0},
		{"NegOne", Float16NegOne, -1.0},
		{"Two", Float16Two, 2.0},
		{"MaxValue", Float16MaxValue, 65504.0},
		{"MinNormal", Float16MinNormal, 1.0 / (1 << 14)},
		{"MinValue", Float16MinValue, 1.0 / (1 << 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float16ToFloat32(tt.value)
			if got != tt.expected {
				t.Errorf("Float16%s: got %v, want %v", tt.name, got, tt.expected)
			}
		})
	}

	t.Run("Infinity", func(t *testing.T) {
		if !Float16Inf.IsInf() || Float16Inf.IsNegative() {
			t.Error("Float16Inf should be positive infinity")
		}
		if !Float16NegInf.IsInf() || !Float16NegInf.IsNegative() {
			t.Error("Float16NegInf should be negative infinity")
		}
	})

	t.Run("NaN", func(t *testing.T) {
		if !Float16NaN.IsNaN() || Float16NaN.IsInf() {
			t.Error("Float16NaN should be NaN and not Inf")
		}
	})

	t.Run("Layout", func(t *testing.T) {
		if Float16ExpMask>>Float16ExpShift != 0x1F {
			t.Errorf("exponent field should be 5 bits wide, got mask 0x%04X", Float16ExpMask)
		}
		if Float16SignMask|Float16ExpMask|Float16MantissaMask != 0xFFFF {
			t.Error("sign, exponent and mantissa masks should cover all 16 bits")
		}
		if Float16MinNormalExp != -14 {
			t.Errorf("Float16MinNormalExp: got %d, want -14", Float16MinNormalExp)
		}
	})
}

// TestFloat16ToFloat32 tests conversion from Float16 to float32.
func TestFloat16ToFloat32(t *testing.T) {
	tests := []struct {
		name     string
		input    Float16
		expected float32
	}{
		{"Zero", 0x0000, 0.0},
		{"One", 0x3C00, 1.0},
		{"Two", 0x4000, 2.0},
		{"Half", 0x3800, 0.5},
		{"NegOne", 0xBC00, -1.0},
		{"Pi", 0x4248, 3.140625}, // Closest representable to pi
		{"OneUlp", 0x3C01, 1.0 + 1.0/1024},
		{"LargestSubnormal", 0x03FF, 1023.0 / (1 << 24)},
		{"NegSubnormal", 0x8001, -1.0 / (1 << 24)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float16ToFloat32(tt.input)
			if got != tt.expected {
				t.Errorf("Float16ToFloat32(0x%04X): got %v, want %v", uint16(tt.input), got, tt.expected)
			}
		})
	}

	t.Run("NegZero", func(t *testing.T) {
		got := Float16ToFloat32(Float16NegZero)
		if got != 0 || !math.Signbit(float64(got)) {
			t.Errorf("Float16ToFloat32(-0): got %v, want -0", got)
		}
	})
}

// TestFloat32ToFloat16 tests conversion from float32 to Float16.
func TestFloat32ToFloat16(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected Float16
	}{
		{"Zero", 0.0, 0x0000},
		{"One", 1.0, 0x3C00},
		{"Two", 2.0, 0x4000},
		{"Half", 0.5, 0x3800},
		{"NegOne", -1.0, 0xBC00},
		{"TieToEvenDown", 1.0 + 1.0/2048, 0x3C00},
		{"TieToEvenUp", 1.0 + 3.0/2048, 0x3C02},
		{"AboveTie", 1.0 + 1.0/2048 + 1.0/(1<<20), 0x3C01},
		{"MaxFinite", 65519, 0x7BFF},
		{"TieToInf", 65520, 0x7C00},
		{"SmallestSubnormal", 1.0 / (1 << 24), 0x0001},
		{"SubnormalTieToZero", 1.0 / (1 << 25), 0x0000},
		{"SubnormalAboveTie", 1.5 / (1 << 25), 0x0001},
		{"SubnormalTieToEven", 3.0 / (1 << 25), 0x0002},
		{"SubnormalCarryToNormal", 1023.5 / (1 << 24), 0x0400},
		{"NegSubnormal", -1.0 / (1 << 24), 0x8001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float32ToFloat16(tt.input)
			if got != tt.expected {
				t.Errorf("Float32ToFloat16(%v): got 0x%04X, want 0x%04X", tt.input, uint16(got), uint16(tt.expected))
			}
		})
	}
}

// TestFloat64ToFloat16SingleRounding checks that narrowing from float64 does
// not round twice through float32.
func TestFloat64ToFloat16SingleRounding(t *testing.T) {
	// Just above the tie between 0x3C00 and 0x3C01, but the excess is below
	// float32 precision, so a float32 detour lands exactly on the tie.
	x := 1.0 + 1.0/2048 + 1.0/(1<<30)

	if got := Float64ToFloat16(x); got != 0x3C01 {
		t.Errorf("Float64ToFloat16(%v): got 0x%04X, want 0x3C01", x, uint16(got))
	}
	if got := Float32ToFloat16(float32(x)); got != 0x3C00 {
		t.Errorf("Float32ToFloat16(float32(%v)): got 0x%04X, want 0x3C00", x, uint16(got))
	}
}

// TestFloat16RoundTrip checks every bit pattern survives widening and narrowing.
func TestFloat16RoundTrip(t *testing.T) {
	for bits := 0; bits <= 0xFFFF; bits++ {
		h := Float16(bits)
		back32 := Float32ToFloat16(h.Float32())
		back64 := Float64ToFloat16(h.Float64())
		if h.IsNaN() {
			if !back32.IsNaN() || !back64.IsNaN() {
				t.Fatalf("NaN 0x%04X did not stay NaN: 0x%04X 0x%04X", bits, uint16(back32), uint16(back64))
			}
			continue
		}
		if back32 != h || back64 != h {
			t.Fatalf("round-trip 0x%04X: via float32 0x%04X, via float64 0x%04X", bits, uint16(back32), uint16(back64))
		}
	}
}

// TestFloat16Infinity tests infinity handling.
func TestFloat16Infinity(t *testing.T) {
	posInf := Float32ToFloat16(float32(math.Inf(1)))
	if posInf != Float16Inf {
		t.Errorf("Float32ToFloat16(+Inf): got 0x%04X", uint16(posInf))
	}
	if Float16ToFloat32(posInf) != float32(math.Inf(1)) {
		t.Error("Float16ToFloat32(Float16Inf) should return +Inf")
	}

	negInf := Float64ToFloat16(math.Inf(-1))
	if negInf != Float16NegInf {
		t.Errorf("Float64ToFloat16(-Inf): got 0x%04X", uint16(negInf))
	}

	if overflow := Float32ToFloat16(100000.0); overflow != Float16Inf {
		t.Errorf("100000 should overflow to +Inf, got 0x%04X", uint16(overflow))
	}
	if overflow := Float64ToFloat16(-1e300); overflow != Float16NegInf {
		t.Errorf("-1e300 should overflow to -Inf, got 0x%04X", uint16(overflow))
	}
}

// TestFloat16NaN tests NaN handling.
func TestFloat16NaN(t *testing.T) {
	nan := Float32ToFloat16(float32(math.NaN()))
	if !nan.IsNaN() {
		t.Error("Float32ToFloat16(NaN) should be NaN")
	}

	back := Float16ToFloat32(nan)
	if !math.IsNaN(float64(back)) {
		t.Error("Float16ToFloat32(NaN) should return NaN")
	}

	payload := Float16(0x7E01)
	if got := Float64ToFloat16(payload.Float64()); got != payload {
		t.Errorf("NaN payload lost: got 0x%04X, want 0x%04X", uint16(got), uint16(payload))
	}
}

// TestFloat16Denormals tests denormalized number handling.
func TestFloat16Denormals(t *testing.T) {
	if !Float16MinValue.IsDenormal() {
		t.Error("Float16MinValue should be denormal")
	}
	if Float16MinNormal.IsDenormal() || !Float16MinNormal.IsNormal() {
		t.Error("Float16MinNormal should be normal")
	}
	if Float16Zero.IsDenormal() || Float16Zero.IsNormal() {
		t.Error("zero is neither denormal nor normal")
	}
	if Float16Inf.IsNormal() || Float16NaN.IsNormal() {
		t.Error("Inf and NaN are not normal")
	}
}

// TestFloat16Underflow tests underflow to zero.
func TestFloat16Underflow(t *testing.T) {
	for _, f := range []float64{1e-20, 1e-300, math.SmallestNonzeroFloat64} {
		if h := Float64ToFloat16(f); h != Float16Zero {
			t.Errorf("%v should underflow to +0, got 0x%04X", f, uint16(h))
		}
		if h := Float64ToFloat16(-f); h != Float16NegZero {
			t.Errorf("%v should underflow to -0, got 0x%04X", -f, uint16(h))
		}
	}
}

// TestFloat16Methods tests the helper methods on Float16.
func TestFloat16Methods(t *testing.T) {
	t.Run("IsZero", func(t *testing.T) {
		if !Float16Zero.IsZero() || !Float16NegZero.IsZero() {
			t.Error("both zeros should report IsZero")
		}
		if Float16One.IsZero() || Float16MinValue.IsZero() {
			t.Error("non-zero values should not report IsZero")
		}
	})

	t.Run("IsNegative", func(t *testing.T) {
		if Float16Zero.IsNegative() || Float16One.IsNegative() {
			t.Error("positive values should not be negative")
		}
		if !Float16NegZero.IsNegative() || !Float16NegOne.IsNegative() {
			t.Error("sign bit set should report negative")
		}
	})

	t.Run("Float64Method", func(t *testing.T) {
		if Float16One.Float64() != 1.0 {
			t.Error("Float16One.Float64() should be 1.0")
		}
	})

	t.Run("Bits", func(t *testing.T) {
		if Float16One.Bits() != 0x3C00 {
			t.Errorf("Float16One.Bits() should be 0x3C00, got 0x%04X", Float16One.Bits())
		}
		if Float16FromBits(0x3C00) != Float16One {
			t.Error("Float16FromBits(0x3C00) should be Float16One")
		}
	})

	t.Run("Constructors", func(t *testing.T) {
		if NewFloat16(1.0) != Float16One {
			t.Error("NewFloat16(1.0) should be Float16One")
		}
		if NewFloat16FromFloat64(-1.0) != Float16NegOne {
			t.Error("NewFloat16FromFloat64(-1.0) should be Float16NegOne")
		}
	})
}
