package hwy

import "math"

// This file provides conversions and bit reinterpretation between the
// Float16x8 and Int16x8 lane types.

// ConvertToInt16 rounds each lane to the nearest integer (ties to even) and
// converts it to int16. Out-of-range values and infinities saturate to
// [-32768, 32767]; NaN converts to 0.
func (v Float16x8) ConvertToInt16() Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = convertInt16(math.RoundToEven(v[i].Float64()), v[i])
	}
	return r
}

// ConvertToInt16Trunc is ConvertToInt16 with truncation toward zero.
func (v Float16x8) ConvertToInt16Trunc() Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = convertInt16(math.Trunc(v[i].Float64()), v[i])
	}
	return r
}

func convertInt16(f float64, h Float16) int16 {
	if h.IsNaN() {
		return 0
	}
	switch {
	case f >= math.MaxInt16:
		return math.MaxInt16
	case f <= math.MinInt16:
		return math.MinInt16
	}
	return int16(f)
}

// ConvertToFloat16 converts each lane to the nearest Float16.
// Magnitudes above 2048 lose low bits; none overflow.
func (v Int16x8) ConvertToFloat16() Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = Float64ToFloat16(float64(v[i]))
	}
	return r
}

// AsInt16x8 reinterprets the lane bit patterns as int16 without numeric conversion.
func (v Float16x8) AsInt16x8() Int16x8 {
	var r Int16x8
	for i := range r {
		r[i] = int16(v[i])
	}
	return r
}

// AsFloat16x8 reinterprets the lane bit patterns as Float16 without numeric conversion.
func (v Int16x8) AsFloat16x8() Float16x8 {
	var r Float16x8
	for i := range r {
		r[i] = Float16(uint16(v[i]))
	}
	return r
}
