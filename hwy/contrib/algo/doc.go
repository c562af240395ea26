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

// Package algo applies the binary16 vector kernels to whole slices.
//
// # Transform API
//
// The Transform functions walk a slice eight lanes at a time in a
// zero-allocation, batched manner similar to C++ Highway's std::transform.
// A final partial chunk is padded with 1.0; padded lanes are computed but never
// written back.
//
// Generic transform functions:
//   - TransformF16(input, output []hwy.Float16, fn VecFunc16)
//   - Transform2F16(a, b, output []hwy.Float16, fn VecFunc16Binary)
//   - ParallelTransformF16(ctx, pool, input, output, fn)
//
// Named transforms:
//   - ExpTransformF16, LogTransformF16, ReciprocalTransformF16
//   - DivTransformF16, PowTransformF16, PowIntTransformF16
//
// # Example Usage
//
//	import "github.com/ajroetker/go-halfvec/hwy/contrib/algo"
//
//	func ProcessData(input []hwy.Float16) []hwy.Float16 {
//	    output := make([]hwy.Float16, len(input))
//	    algo.ExpTransformF16(input, output)
//	    return output
//	}
package algo
