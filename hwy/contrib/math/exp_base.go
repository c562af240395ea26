package math

import "github.com/ajroetker/go-halfvec/hwy"

// Exp_F16x8 computes e^x.
//
// Algorithm:
//  1. Range reduction: m = round(x / ln(2)), val = x - m*ln(2)
//  2. Evaluate the ExpCoeffs Taylor polynomial p(val) ≈ e^val
//  3. Reconstruct 2^m * p(val) by adding m to the exponent field of p
//
// Special cases:
//   - m < -14 (x below about -10.05): +0
//
// For m == -14 with p(val) < 1 (x in about (-10.05, -9.7]) the exponent
// addition yields a subnormal bit pattern that lacks the implicit leading
// bit, so those lanes come out low by up to about 40%: exp(-10) gives
// 3.0e-05 rather than 4.54e-05. Inputs above -9.7 are unaffected.
//
// Lanes whose result overflows binary16 (x above about 11) are unspecified.
// The exponent addition saturates instead of wrapping, so no lane ever turns
// negative.
func Exp_F16x8(x hwy.Float16x8) hwy.Float16x8 {
	return expReduced(x, x.Mul(vInvLn2).ConvertToInt16())
}

// ExpTrunc_F16x8 is Exp_F16x8 with the reduction multiple truncated toward
// zero instead of rounded, so val spans (-ln2, ln2) rather than
// [-ln2/2, ln2/2]. The underflow cut-off moves to x below about -10.4, and
// the low band described on Exp_F16x8 widens to about (-10.4, -9.7].
func ExpTrunc_F16x8(x hwy.Float16x8) hwy.Float16x8 {
	return expReduced(x, x.Mul(vInvLn2).ConvertToInt16Trunc())
}

func expReduced(x hwy.Float16x8, m hwy.Int16x8) hwy.Float16x8 {
	val := m.ConvertToFloat16().MulSubFrom(vLn2, x)

	poly := PolyEstrin_F16x8(val, &ExpCoeffs)

	res := poly.AsInt16x8().AddSaturated(m.ShiftAllLeftSaturated(hwy.Float16ExpShift)).AsFloat16x8()
	return vZero.Merge(res, m.Less(vMinExp))
}
