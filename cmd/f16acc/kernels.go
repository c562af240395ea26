package main

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/ajroetker/go-halfvec/hwy"
	hwymath "github.com/ajroetker/go-halfvec/hwy/contrib/math"
	approx "github.com/meko-christian/algo-approx"
	"github.com/samber/lo"
)

// errorMode selects how a kernel's deviation from the reference is scored.
type errorMode int

const (
	relativeError errorMode = iota
	absoluteError
)

func (m errorMode) String() string {
	if m == absoluteError {
		return "abs"
	}
	return "rel"
}

// kernel describes one binary16 vector kernel and its float64 references.
type kernel struct {
	name string
	fn   func(hwy.Float16x8) hwy.Float16x8

	// ref is the exact result. fast is a scalar float64 approximation shown
	// for context; nil when none is available.
	ref  func(float64) float64
	fast func(float64) float64

	from, to  float64
	logSpaced bool
	mode      errorMode
}

var vTwo = hwy.BroadcastF16x8(hwy.Float16Two)

var kernels = []kernel{
	{
		name: "exp",
		fn:   hwymath.Exp_F16x8,
		ref:  math.Exp,
		fast: approx.FastExp64,
		from: -9, to: 10.5,
	},
	{
		name: "exp-trunc",
		fn:   hwymath.ExpTrunc_F16x8,
		ref:  math.Exp,
		fast: approx.FastExp64,
		from: -9, to: 10.5,
	},
	{
		name: "log",
		fn:   hwymath.Log_F16x8,
		ref:  math.Log,
		fast: approx.FastLog64,
		from: math.Ldexp(1, -14), to: 65504,
		logSpaced: true,
		mode:      absoluteError,
	},
	{
		name: "recip",
		fn:   hwymath.ReciprocalHiPrec_F16x8,
		ref:  func(x float64) float64 { return 1 / x },
		from: math.Ldexp(1, -14), to: 8192,
		logSpaced: true,
	},
	{
		name: "recip-med",
		fn:   hwymath.ReciprocalMedPrec_F16x8,
		ref:  func(x float64) float64 { return 1 / x },
		from: math.Ldexp(1, -14), to: 8192,
		logSpaced: true,
	},
	{
		name: "pow2",
		fn: func(x hwy.Float16x8) hwy.Float16x8 {
			return hwymath.Pow_F16x8(x, vTwo)
		},
		ref: func(x float64) float64 { return x * x },
		fast: func(x float64) float64 {
			return approx.FastExp64(2 * approx.FastLog64(x))
		},
		from: 1.0 / 64, to: 200,
		logSpaced: true,
	},
}

func kernelNames() []string {
	return lo.Map(kernels, func(k kernel, _ int) string { return k.name })
}

func lookupKernel(name string) (kernel, error) {
	k, ok := lo.Find(kernels, func(k kernel) bool { return k.name == name })
	if !ok {
		names := kernelNames()
		slices.Sort(names)
		return kernel{}, fmt.Errorf("unknown kernel %q (want one of %s)", name, strings.Join(names, ", "))
	}
	return k, nil
}

// score returns the error of got against want under the kernel's mode, and
// false when the sample cannot be scored.
func (k kernel) score(got, want float64) (float64, bool) {
	if math.IsNaN(want) || math.IsInf(want, 0) || math.IsNaN(got) {
		return 0, false
	}
	diff := math.Abs(got - want)
	if k.mode == absoluteError {
		return diff, true
	}
	if want == 0 {
		return 0, false
	}
	return diff / math.Abs(want), true
}
