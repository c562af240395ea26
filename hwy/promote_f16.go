package hwy

// This file provides bulk Float16 promotion and demotion over slices.
//
// Float16 (IEEE 754 half-precision) uses 16 bits: Sign(1) | Exp(5) | Mantissa(10)
// Float32 (IEEE 754 single-precision) uses 32 bits: Sign(1) | Exp(8) | Mantissa(23)
//
// Promotion: Float16 -> Float32/Float64 (widens, no precision loss)
// Demotion: Float32/Float64 -> Float16 (narrows, may lose precision or overflow)
//
// Every function converts min(len(dst), len(src)) elements and returns that count.

// PromoteF16ToF32 widens Float16 to float32.
func PromoteF16ToF32(dst []float32, src []Float16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float16ToFloat32(src[i])
	}
	return n
}

// PromoteF16ToF64 widens Float16 to float64.
func PromoteF16ToF64(dst []float64, src []Float16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = src[i].Float64()
	}
	return n
}

// DemoteF32ToF16 narrows float32 to Float16 with round-to-nearest-even.
// Values outside Float16 range overflow to infinity.
func DemoteF32ToF16(dst []Float16, src []float32) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float32ToFloat16(src[i])
	}
	return n
}

// DemoteF64ToF16 narrows float64 to Float16 with a single round-to-nearest-even.
func DemoteF64ToF16(dst []Float16, src []float64) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = Float64ToFloat16(src[i])
	}
	return n
}
