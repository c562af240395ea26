package math_test

import (
	"testing"

	"github.com/ajroetker/go-halfvec/hwy"
	hwymath "github.com/ajroetker/go-halfvec/hwy/contrib/math"
)

// ============================================================================
// Kernel Benchmarks (one call processes eight lanes)
// ============================================================================

var sink hwy.Float16x8

func benchInput() hwy.Float16x8 {
	return hwy.Float16x8FromFloat32s(0.1, 0.5, 1, 1.5, 2, 3.5, 5, 7.25)
}

func BenchmarkReciprocal(b *testing.B) {
	x := benchInput()

	b.Run("MedPrec", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink = hwymath.ReciprocalMedPrec_F16x8(x)
		}
	})

	b.Run("HiPrec", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink = hwymath.ReciprocalHiPrec_F16x8(x)
		}
	})
}

func BenchmarkPoly(b *testing.B) {
	x := benchInput().Mul(hwy.BroadcastFloat16x8(0.05))

	b.Run("Estrin", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink = hwymath.PolyEstrin_F16x8(x, &hwymath.ExpCoeffs)
		}
	})

	b.Run("Horner", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink = hwymath.PolyHorner_F16x8(x, &hwymath.ExpCoeffs)
		}
	})
}

func BenchmarkExp(b *testing.B) {
	x := benchInput()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = hwymath.Exp_F16x8(x)
	}
}

func BenchmarkLog(b *testing.B) {
	x := benchInput()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sink = hwymath.Log_F16x8(x)
	}
}

func BenchmarkPow(b *testing.B) {
	x := benchInput()
	n := hwy.BroadcastFloat16x8(2.5)

	b.Run("Pow", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink = hwymath.Pow_F16x8(x, n)
		}
	})

	b.Run("PowInt5", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sink = hwymath.PowInt_F16x8(x, 5)
		}
	})
}
