// Package level converts between linear signal levels and decibels on
// binary16 buffers, and evaluates a static compressor curve.
//
// All conversions run on the approximate binary16 log and exp kernels, so
// results carry their error: about 0.4 dB for AmplitudeToDB and under 1% for
// DBToAmplitude. Magnitudes below the smallest normal binary16 value
// (about -84 dBFS) are treated as silence and map to -Inf.
package level

import (
	stdmath "math"

	"github.com/ajroetker/go-halfvec/hwy"
	"github.com/ajroetker/go-halfvec/hwy/contrib/algo"
	"github.com/ajroetker/go-halfvec/hwy/contrib/math"
	"github.com/cwbudde/algo-vecmath"
)

const (
	ampDBPerNeper   = 20 / stdmath.Ln10
	powerDBPerNeper = 10 / stdmath.Ln10
	nepersPerAmpDB  = stdmath.Ln10 / 20
)

var (
	vZero          = hwy.BroadcastF16x8(hwy.Float16Zero)
	vOne           = hwy.BroadcastF16x8(hwy.Float16One)
	vMinNormal     = hwy.BroadcastF16x8(hwy.Float16MinNormal)
	vAmpDBPerNeper = hwy.BroadcastF16x8(hwy.Float64ToFloat16(ampDBPerNeper))
	vPowDBPerNeper = hwy.BroadcastF16x8(hwy.Float64ToFloat16(powerDBPerNeper))
	vNepersPerDB   = hwy.BroadcastF16x8(hwy.Float64ToFloat16(nepersPerAmpDB))
)

// logMagnitude returns ln|x|, with subnormal and zero lanes at -Inf.
func logMagnitude(x hwy.Float16x8) hwy.Float16x8 {
	ax := x.Abs()
	ax = vZero.Merge(ax, ax.Less(vMinNormal))
	return math.Log_F16x8(ax)
}

func amplitudeToDB(x hwy.Float16x8) hwy.Float16x8 {
	return logMagnitude(x).Mul(vAmpDBPerNeper)
}

func powerToDB(x hwy.Float16x8) hwy.Float16x8 {
	return logMagnitude(x).Mul(vPowDBPerNeper)
}

func dbToAmplitude(x hwy.Float16x8) hwy.Float16x8 {
	return math.Exp_F16x8(x.Mul(vNepersPerDB))
}

// AmplitudeToDB computes dst[i] = 20·log10(|src[i]|).
//
// dst and src must have the same non-zero length and may alias.
func AmplitudeToDB(dst, src []hwy.Float16) error {
	if err := checkLengths(len(src), len(dst)); err != nil {
		return err
	}
	algo.TransformF16(src, dst, amplitudeToDB)
	return nil
}

// DBToAmplitude computes dst[i] = 10^(src[i]/20).
//
// Levels below about -87 dB underflow to exactly 0.
func DBToAmplitude(dst, src []hwy.Float16) error {
	if err := checkLengths(len(src), len(dst)); err != nil {
		return err
	}
	algo.TransformF16(src, dst, dbToAmplitude)
	return nil
}

// PowerDB computes dst[i] = 10·log10(re[i]² + im[i]²) for a complex spectrum
// held as separate real and imaginary parts.
//
// The power is formed in float64 and narrowed to binary16 before the log, so
// bins above 65504 clamp to about 48.2 dB.
func PowerDB(dst []hwy.Float16, re, im []float64) error {
	if err := checkLengths(len(re), len(im), len(dst)); err != nil {
		return err
	}

	power := make([]float64, len(re))
	vecmath.Power(power, re, im)
	maxPower := hwy.Float16MaxValue.Float64()
	for i, p := range power {
		power[i] = min(p, maxPower)
	}

	hwy.DemoteF64ToF16(dst, power)
	algo.TransformF16(dst, dst, powerToDB)
	return nil
}

// CompressorGain evaluates a hard-knee downward compressor.
//
// For each level above thresholdDB the gain is
// 10^((thresholdDB - level)·(1 - 1/ratio)/20); levels at or below the
// threshold get unity gain. ratio must be at least 1; +Inf gives a limiter.
func CompressorGain(dst, levelDB []hwy.Float16, thresholdDB, ratio float32) error {
	if err := checkLengths(len(levelDB), len(dst)); err != nil {
		return err
	}
	if !(ratio >= 1) {
		return ErrInvalidRatio
	}

	slope := (1 - 1/float64(ratio)) * nepersPerAmpDB
	vThreshold := hwy.BroadcastFloat16x8(thresholdDB)
	vSlope := hwy.BroadcastF16x8(hwy.Float64ToFloat16(slope))

	algo.TransformF16(levelDB, dst, func(lvl hwy.Float16x8) hwy.Float16x8 {
		over := lvl.Greater(vThreshold)
		gain := math.Exp_F16x8(vThreshold.Sub(lvl).Mul(vSlope))
		return gain.Merge(vOne, over)
	})
	return nil
}

// ApplyGain computes dst[i] = src[i]·gain[i], widening gain to float64.
//
// dst and src may alias.
func ApplyGain(dst, src []float64, gain []hwy.Float16) error {
	if err := checkLengths(len(src), len(dst), len(gain)); err != nil {
		return err
	}

	g := make([]float64, len(gain))
	hwy.PromoteF16ToF64(g, gain)
	vecmath.MulBlock(dst, src, g)
	return nil
}
