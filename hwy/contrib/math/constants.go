package math

import (
	stdmath "math"

	"github.com/ajroetker/go-halfvec/hwy"
)

// CoeffTable holds eight binary16 polynomial coefficients in the order
// expected by PolyEstrin_F16x8.
//
// The slots are paired, not sorted by degree: {0,4} and {2,6} form the low
// group, {1,5} and {3,7} the high group. Each pair (lo, hi) is evaluated as
// hi*x + lo before the pairs are combined with x^2 and x^4. Reordering a table
// changes the polynomial.
type CoeffTable [8]hwy.Float16

// NewCoeffTable rounds eight float64 coefficients to binary16.
func NewCoeffTable(c [8]float64) CoeffTable {
	var t CoeffTable
	for i, v := range c {
		t[i] = hwy.Float64ToFloat16(v)
	}
	return t
}

// Pair04 returns coefficients 0 and 4 (constant and linear term of the first pair).
func (t *CoeffTable) Pair04() (lo, hi hwy.Float16) { return t[0], t[4] }

// Pair26 returns coefficients 2 and 6.
func (t *CoeffTable) Pair26() (lo, hi hwy.Float16) { return t[2], t[6] }

// Pair15 returns coefficients 1 and 5.
func (t *CoeffTable) Pair15() (lo, hi hwy.Float16) { return t[1], t[5] }

// Pair37 returns coefficients 3 and 7.
func (t *CoeffTable) Pair37() (lo, hi hwy.Float16) { return t[3], t[7] }

// Float64s returns the rounded coefficients widened to float64.
func (t *CoeffTable) Float64s() [8]float64 {
	var r [8]float64
	for i, h := range t {
		r[i] = h.Float64()
	}
	return r
}

// =============================================================================
// Coefficient tables
// =============================================================================

var (
	// ExpCoeffs is the degree-7 Taylor series of e^x, laid out for
	// PolyEstrin_F16x8: slot k holds the coefficient of x^d with
	// d = 0, 4, 2, 6, 1, 5, 3, 7 for k = 0..7.
	ExpCoeffs = NewCoeffTable([8]float64{
		1.0,
		0.0416598916054,
		0.500000596046,
		0.0014122662833,
		1.00000011921,
		0.00833693705499,
		0.166665703058,
		0.000195780929062,
	})

	// LogCoeffs is a minimax fit of ln(r) for r in [1, 2), same slot layout as ExpCoeffs.
	LogCoeffs = NewCoeffTable([8]float64{
		-2.295614848256274,
		-2.470711633419806,
		-5.686926051100417,
		-0.165253547131978,
		5.175912446351073,
		0.844006986174912,
		4.584458825456749,
		0.014127821926000,
	})
)

var (
	// Ln2F16 is ln(2) rounded to binary16 (0.693359375).
	Ln2F16 = hwy.Float64ToFloat16(stdmath.Ln2)

	// InvLn2F16 is 1/ln(2) rounded to binary16 (1.4423828125).
	InvLn2F16 = hwy.Float64ToFloat16(1 / stdmath.Ln2)
)

// Reciprocal seed: after the exponent is folded to 0, the mantissa m in [1, 2)
// is mapped to 24/17 - 8/17*m, the minimax line for 1/m on that interval.
const (
	recipSeedC0 = 1.41176471 // 24/17
	recipSeedC1 = 0.47058824 // 8/17

	// expUnderflowExp is the smallest reduced exponent exp keeps; below it the result is 0.
	expUnderflowExp = hwy.Float16MinNormalExp
)

// Broadcast forms of the constants used by the kernels.
var (
	vTwo      = hwy.BroadcastF16x8(hwy.Float16Two)
	vZero     = hwy.BroadcastF16x8(hwy.Float16Zero)
	vInf      = hwy.BroadcastF16x8(hwy.Float16Inf)
	vNegInf   = hwy.BroadcastF16x8(hwy.Float16NegInf)
	vLn2      = hwy.BroadcastF16x8(Ln2F16)
	vInvLn2   = hwy.BroadcastF16x8(InvLn2F16)
	vSeedC0   = hwy.BroadcastFloat16x8(recipSeedC0)
	vSeedC1   = hwy.BroadcastFloat16x8(recipSeedC1)
	vExpField = hwy.BroadcastInt16x8(hwy.Float16ExpMask)
	vOneBits  = hwy.BroadcastInt16x8(int16(hwy.Float16One))
	vExpBias  = hwy.BroadcastInt16x8(hwy.Float16ExpBias)
	vMinExp   = hwy.BroadcastInt16x8(expUnderflowExp)
)
