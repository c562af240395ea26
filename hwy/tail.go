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

package hwy

// ProcessWithTail16x8 is a helper for processing slices eight lanes at a time
// that handles both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of 8
//
// Example:
//
//	hwy.ProcessWithTail16x8(len(data),
//	    func(offset int) {
//	        v := hwy.LoadFloat16x8Slice(data[offset:])
//	        v.Add(v).StoreSlice(output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.LoadFloat16x8SlicePart(data[offset : offset+count])
//	        v.Add(v).StoreSlicePart(output[offset : offset+count])
//	    },
//	)
func ProcessWithTail16x8(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	// Process full vectors
	fullVectors := size / Lanes16x8
	for i := range fullVectors {
		fullFn(i * Lanes16x8)
	}

	// Process tail if any
	remaining := size % Lanes16x8
	if remaining > 0 {
		tailFn(fullVectors*Lanes16x8, remaining)
	}
}

// AlignedSize16x8 rounds up size to the next multiple of the vector width.
// This is useful for allocating buffers that will be processed eight lanes at a time.
func AlignedSize16x8(size int) int {
	return ((size + Lanes16x8 - 1) / Lanes16x8) * Lanes16x8
}

// IsAligned16x8 returns true if size is a multiple of the vector width.
func IsAligned16x8(size int) bool {
	return size%Lanes16x8 == 0
}
