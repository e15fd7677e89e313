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

// SumChunkLen is the number of bytes a vectorized sum accumulates into
// 16-bit lanes before folding them into the 64-bit total. Each 16-bit lane
// takes two bytes per vector step, so a chunk adds at most
// 2*255*SumChunkLen/8 to a lane, well below 65535 for both widths.
const SumChunkLen = 256

// AlignedLength returns the largest multiple of width that is <= length.
// The elements in [AlignedLength(length, width), length) are the remainder
// handled by scalar code.
func AlignedLength(length, width int) int {
	if width <= 1 || length <= 0 {
		return max(length, 0)
	}
	return length - length%width
}

// ProcessWithTail is a helper for processing byte slices with vectors that
// handles both full vectors and the remainder.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset) once if size is not a multiple of width, where
//     [offset, size) is the remainder
//
// Example:
//
//	var d hwy.FixedTag128
//	hwy.ProcessWithTail(len(src), d.Width(),
//	    func(offset int) {
//	        d.Load(src[offset:]).Not().Store(dst[offset:])
//	    },
//	    func(offset int) {
//	        for i := offset; i < len(src); i++ {
//	            dst[i] = ^src[i]
//	        }
//	    },
//	)
func ProcessWithTail(size, width int, fullFn func(offset int), tailFn func(offset int)) {
	aligned := AlignedLength(size, width)
	for i := 0; i < aligned; i += width {
		fullFn(i)
	}
	if aligned < size {
		tailFn(aligned)
	}
}
