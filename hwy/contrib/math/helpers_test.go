package math

import (
	stdmath "math"

	"github.com/ajroetker/go-halfvec/hwy"
)

// lanes widens every lane of v to float64.
func lanes(v hwy.Float16x8) []float64 {
	out := make([]float64, hwy.Lanes16x8)
	for i, h := range v {
		out[i] = h.Float64()
	}
	return out
}

func vec(vals ...float64) hwy.Float16x8 {
	var v hwy.Float16x8
	for i := range v {
		v[i] = hwy.Float64ToFloat16(vals[i%len(vals)])
	}
	return v
}

// sweepBits runs fn over every bit pattern in [from, to) eight lanes at a
// time and hands each (input, output) lane pair to check. The last vector is
// padded by repeating its final in-range pattern.
func sweepBits(from, to uint16, fn func(hwy.Float16x8) hwy.Float16x8, check func(x, y hwy.Float16)) {
	for base := uint32(from); base < uint32(to); base += hwy.Lanes16x8 {
		var x hwy.Float16x8
		for i := range x {
			b := min(base+uint32(i), uint32(to)-1)
			x[i] = hwy.Float16(b)
		}
		y := fn(x)
		for i := range x {
			check(x[i], y[i])
		}
	}
}

func relErr(got, want float64) float64 {
	return stdmath.Abs(got-want) / stdmath.Abs(want)
}
