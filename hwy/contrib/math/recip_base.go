package math

import "github.com/ajroetker/go-halfvec/hwy"

// ReciprocalMedPrec_F16x8 computes an approximation of 1/x with three
// Newton-Raphson refinements of a linear seed.
//
// Special cases:
//   - x == ±0: +Inf (unsigned)
//   - x < 0: -(1/|x|)
//
// Inputs with |x| >= 2^14 have no usable seed and produce meaningless lanes.
func ReciprocalMedPrec_F16x8(x hwy.Float16x8) hwy.Float16x8 {
	return reciprocal(x, 3)
}

// ReciprocalHiPrec_F16x8 is ReciprocalMedPrec_F16x8 with a fourth refinement.
// Its worst-case relative error over the normal range is no larger than the
// three-step variant's, though individual lanes may differ by an ulp either way.
func ReciprocalHiPrec_F16x8(x hwy.Float16x8) hwy.Float16x8 {
	return reciprocal(x, 4)
}

// Div_F16x8 computes num/den as num * ReciprocalHiPrec_F16x8(den).
// A zero denominator gives ±Inf for finite non-zero num and NaN for num == 0.
func Div_F16x8(num, den hwy.Float16x8) hwy.Float16x8 {
	return num.Mul(ReciprocalHiPrec_F16x8(den))
}

func reciprocal(x hwy.Float16x8, passes int) hwy.Float16x8 {
	ax := x.Abs()

	// Move |x| to the binade [1, 2) by subtracting its exponent, seed 1/m with
	// a line, then apply the negated exponent to the seed. Integer lanes wrap.
	m := vOneBits.Sub(ax.AsInt16x8().And(vExpField))
	y := ax.AsInt16x8().Add(m).AsFloat16x8()
	y = y.MulSubFrom(vSeedC1, vSeedC0)
	y = y.AsInt16x8().Add(m).AsFloat16x8()

	// Newton-Raphson: y = y * (2 - y*ax)
	for range passes {
		b := y.MulSubFrom(ax, vTwo)
		y = y.Mul(b)
	}

	y = vInf.Merge(y, x.Equal(vZero))
	return y.NegMasked(x.Less(vZero))
}
