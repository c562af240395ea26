// Package hwy provides fixed-width half-precision SIMD lane types.
//
// It follows the Highway C++ library's design philosophy: kernels are written
// once against a small vocabulary of lane-wise operations and run the same way
// everywhere. The vocabulary here is modelled on a 128-bit vector register
// holding eight binary16 lanes (Float16x8) or eight int16 lanes (Int16x8),
// plus a per-lane predicate (Mask16x8).
//
// Go has no native binary16 arithmetic, so every float lane operation is
// computed in float64 and rounded to binary16 exactly once, which is what a
// hardware FP16 unit does. Results are therefore bit-identical on every
// GOARCH, independent of the detected dispatch level.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-halfvec/hwy"
//
//	// Load eight lanes
//	a := hwy.LoadFloat16x8Slice(data1)
//	b := hwy.LoadFloat16x8Slice(data2)
//
//	// Lane-wise fused multiply-add: a*b + 1
//	r := a.MulAdd(b, hwy.BroadcastFloat16x8(1))
//
//	// Store results
//	r.StoreSlice(output)
package hwy

// Lanes16x8 is the number of lanes in Float16x8, Int16x8 and Mask16x8.
const Lanes16x8 = 8

// Float16x8 is a vector of eight binary16 lanes.
//
// It is a value type: every operation returns a new vector and never mutates
// its receiver.
type Float16x8 [Lanes16x8]Float16

// Int16x8 is a vector of eight signed 16-bit lanes. It shares lane indexing
// with Float16x8 and is used both for integer data (exponents) and for
// bit-level views of float lanes.
type Int16x8 [Lanes16x8]int16

// Mask16x8 is a per-lane predicate. Bit i is set when lane i is active.
//
// Masks are only ever used to choose between two already-computed vectors
// (see Float16x8.Merge); unselected lanes keep their value, they are never zeroed.
type Mask16x8 uint8

// Lane reports whether lane i is active. Out-of-range lanes are inactive.
func (m Mask16x8) Lane(i int) bool {
	if i < 0 || i >= Lanes16x8 {
		return false
	}
	return m&(1<<uint(i)) != 0
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask16x8) AllTrue() bool {
	return m == 0xFF
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask16x8) AnyTrue() bool {
	return m != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask16x8) CountTrue() int {
	count := 0
	for v := m; v != 0; v &= v - 1 {
		count++
	}
	return count
}

// And returns the lanes active in both masks.
func (m Mask16x8) And(o Mask16x8) Mask16x8 { return m & o }

// Or returns the lanes active in either mask.
func (m Mask16x8) Or(o Mask16x8) Mask16x8 { return m | o }

// Not inverts every lane.
func (m Mask16x8) Not() Mask16x8 { return ^m }

// TailMask16x8 creates a mask with the first count lanes active.
// count is clamped to [0, Lanes16x8].
func TailMask16x8(count int) Mask16x8 {
	count = max(0, min(count, Lanes16x8))
	return Mask16x8(uint16(1)<<uint(count) - 1)
}

// BroadcastFloat16x8 returns a vector with every lane set to the binary16
// rounding of v.
func BroadcastFloat16x8(v float32) Float16x8 {
	return BroadcastF16x8(Float32ToFloat16(v))
}

// BroadcastF16x8 returns a vector with every lane set to h.
func BroadcastF16x8(h Float16) Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = h
	}
	return r
}

// LoadFloat16x8Slice loads the first eight elements of src.
// It panics if src has fewer than eight elements.
func LoadFloat16x8Slice(src []Float16) Float16x8 {
	return Float16x8(src[:Lanes16x8])
}

// LoadFloat16x8SlicePart loads up to eight elements of src. Missing lanes are zero.
func LoadFloat16x8SlicePart(src []Float16) Float16x8 {
	var r Float16x8
	copy(r[:], src)
	return r
}

// Float16x8FromFloat32s rounds each float32 to binary16. Missing lanes are zero.
func Float16x8FromFloat32s(vals ...float32) Float16x8 {
	var r Float16x8
	for i := 0; i < len(vals) && i < Lanes16x8; i++ {
		r[i] = Float32ToFloat16(vals[i])
	}
	return r
}

// StoreSlice writes all eight lanes to dst.
// It panics if dst has fewer than eight elements.
func (v Float16x8) StoreSlice(dst []Float16) {
	copy(dst[:Lanes16x8], v[:])
}

// StoreSlicePart writes min(len(dst), 8) lanes to dst.
func (v Float16x8) StoreSlicePart(dst []Float16) {
	copy(dst, v[:])
}

// Float32s returns the lanes widened to float32.
func (v Float16x8) Float32s() [Lanes16x8]float32 {
	var r [Lanes16x8]float32
	for i, h := range v {
		r[i] = h.Float32()
	}
	return r
}

// BroadcastInt16x8 returns a vector with every lane set to v.
func BroadcastInt16x8(v int16) Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = v
	}
	return r
}

// LoadInt16x8Slice loads the first eight elements of src.
// It panics if src has fewer than eight elements.
func LoadInt16x8Slice(src []int16) Int16x8 {
	return Int16x8(src[:Lanes16x8])
}

// StoreSlice writes all eight lanes to dst.
func (v Int16x8) StoreSlice(dst []int16) {
	copy(dst[:Lanes16x8], v[:])
}
