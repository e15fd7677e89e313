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

package reduce

import "math/bits"

// BaseMin returns the smallest byte in data.
//
// Panics if data is empty.
func BaseMin(data []byte) byte {
	if len(data) == 0 {
		panic("reduce: Min called on empty slice")
	}
	m := data[0]
	for _, x := range data[1:] {
		m = min(m, x)
	}
	return m
}

// BaseMax returns the largest byte in data.
//
// Panics if data is empty.
func BaseMax(data []byte) byte {
	if len(data) == 0 {
		panic("reduce: Max called on empty slice")
	}
	m := data[0]
	for _, x := range data[1:] {
		m = max(m, x)
	}
	return m
}

// BaseSumFrom adds every byte of data to acc. With checked set it stops at the
// first byte that would carry out of 64 bits and reports overflow; the
// returned total is then the partial sum before that byte. Without checked
// the sum wraps.
func BaseSumFrom(acc uint64, data []byte, checked bool) (uint64, bool) {
	if !checked || uint64(len(data)) <= SafeCount(acc) {
		for _, x := range data {
			acc += uint64(x)
		}
		return acc, false
	}

	for _, x := range data {
		sum, carry := bits.Add64(acc, uint64(x), 0)
		if carry != 0 {
			return acc, true
		}
		acc = sum
	}
	return acc, false
}
