package math

import "github.com/ajroetker/go-halfvec/hwy"

// MantExp_F16x8 splits every lane of x into a mantissa r and an unbiased
// exponent n such that x = r * 2^n with r in [1, 2).
//
// The split works on the bit pattern only: n is the exponent field minus the
// bias, and r is x with its exponent field replaced by the bias. It is exact
// for positive normal inputs. Zero and subnormal lanes give n = -15 and an r
// that is not in [1, 2); negative lanes have a garbage n.
func MantExp_F16x8(x hwy.Float16x8) (r hwy.Float16x8, n hwy.Int16x8) {
	bits := x.AsInt16x8()
	n = bits.ShiftAllRight(hwy.Float16ExpShift).Sub(vExpBias)
	r = bits.Sub(n.ShiftAllLeft(hwy.Float16ExpShift)).AsFloat16x8()
	return r, n
}

// Log_F16x8 computes the natural logarithm ln(x).
//
// Algorithm:
//  1. Split x = r * 2^n with r in [1, 2)
//  2. Evaluate the LogCoeffs minimax polynomial p(r) ≈ ln(r)
//  3. ln(x) = p(r) + n*ln(2)
//
// Special cases:
//   - x == ±0: -Inf
//
// Results for negative, subnormal and non-finite lanes are unspecified.
func Log_F16x8(x hwy.Float16x8) hwy.Float16x8 {
	r, n := MantExp_F16x8(x)
	// Same pairing as the explicit four-pair log evaluation.
	p := PolyEstrin_F16x8(r, &LogCoeffs)
	res := n.ConvertToFloat16().MulAdd(vLn2, p)
	return vNegInf.Merge(res, x.Equal(vZero))
}
