// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package math provides approximate transcendental functions on eight-lane
// binary16 vectors (hwy.Float16x8).
//
// Every kernel is a branch-free sequence of fused multiply-adds, bit-field
// manipulation and masked selects. Edge cases are handled by computing all
// lanes and substituting the special value in the affected lanes, so one lane
// never influences another.
//
// # Functions
//
// Reciprocal and division:
//   - ReciprocalMedPrec_F16x8(x) - 1/x, three Newton steps
//   - ReciprocalHiPrec_F16x8(x) - 1/x, four Newton steps
//   - Div_F16x8(num, den) - num/den
//
// Polynomial and decomposition:
//   - PolyEstrin_F16x8(x, table) - degree-7 polynomial, Estrin's scheme
//   - PolyHorner_F16x8(x, table) - same polynomial, Horner's method
//   - MantExp_F16x8(x) - x = r * 2^n with r in [1, 2)
//
// Exponential and logarithmic:
//   - Exp_F16x8(x) - e^x
//   - ExpTrunc_F16x8(x) - e^x with truncating range reduction
//   - Log_F16x8(x) - ln(x)
//   - Pow_F16x8(val, n) - val^n
//   - PowInt_F16x8(x, nb) - x^nb by repeated multiplication
//
// # Accuracy
//
// These are approximations tuned for signal processing, not IEEE-compliant
// functions. Over the normal binary16 range:
//   - reciprocal: relative error below 1e-3 for |x| < 2^14
//   - exp: relative error below 0.4% for x in [-9, 10.5]
//   - log: absolute error below 0.05
//   - pow: relative error around 2%
//
// Subnormal inputs are not handled specially and give unspecified results.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-halfvec/hwy"
//	    "github.com/ajroetker/go-halfvec/hwy/contrib/math"
//	)
//
//	x := hwy.Float16x8FromFloat32s(0, 0.5, 1, 2, 3, 4, 5, 6)
//	y := math.Exp_F16x8(x).Mul(x) // x * exp(x)
package math
