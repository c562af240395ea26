package math

import "github.com/ajroetker/go-halfvec/hwy"

// Pow_F16x8 computes val^n as e^(n * ln(val)).
//
// Accuracy follows from Log_F16x8 and Exp_F16x8: roughly 2% relative for
// results that stay in the normal range. val == 0 gives 0 for n > 0.
// Lanes with negative val, or where n*ln(val) is non-finite (0^0, 0^-n),
// are unspecified.
func Pow_F16x8(val, n hwy.Float16x8) hwy.Float16x8 {
	return Exp_F16x8(n.Mul(Log_F16x8(val)))
}

// PowInt_F16x8 computes x^nb for a positive integer exponent by repeated
// multiplication (nb-1 lane-wise products, each rounded to binary16).
// nb <= 1 returns x unchanged.
func PowInt_F16x8(x hwy.Float16x8, nb int) hwy.Float16x8 {
	r := x
	for ; nb > 1; nb-- {
		r = r.Mul(x)
	}
	return r
}
