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

// Package contrib groups the binary16 kernels and the utilities built on them.
//
// # Subpackages
//
//   - math: Eight-lane approximation kernels (reciprocal, division, Estrin
//     polynomial, mantissa/exponent split, log, exp, pow, integer power)
//   - algo: Transform utilities for applying kernels to whole slices
//   - workerpool: Range splitting across goroutines for bulk transforms
//   - level: Decibel conversions and a compressor gain curve on binary16 buffers
//
// # Math Functions (hwy/contrib/math)
//
// The math package provides the vector kernels themselves:
//
//	import "github.com/ajroetker/go-halfvec/hwy/contrib/math"
//
//	expX := math.Exp_F16x8(x)
//	logX := math.Log_F16x8(x)
//	inv := math.ReciprocalHiPrec_F16x8(x)
//
// # Algorithm Utilities (hwy/contrib/algo)
//
// The algo package provides transform functions for applying kernels to slices:
//
//	import "github.com/ajroetker/go-halfvec/hwy/contrib/algo"
//
//	algo.ExpTransformF16(input, output)    // Apply exp(x) to all elements
//	algo.LogTransformF16(input, output)    // Apply ln(x) to all elements
//
//	// Generic transform with custom operation
//	algo.TransformF16(input, output, func(x hwy.Float16x8) hwy.Float16x8 {
//	    return x.MulAdd(x, x) // x² + x
//	})
//
// See subpackage documentation for detailed API information.
package contrib
