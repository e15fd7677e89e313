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

import (
	"math/bits"

	"github.com/go-bytesfunc/bytesfunc/hwy"
)

// Min returns the smallest byte in data using kernel variant t.
//
// Panics if data is empty.
func Min(t hwy.Target, data []byte) byte {
	switch t {
	case hwy.TargetU8x16:
		return minOf[hwy.Uint8x16, hwy.FixedTag128](data)
	case hwy.TargetU8x8:
		return minOf[hwy.Uint8x8, hwy.FixedTag64](data)
	default:
		return BaseMin(data)
	}
}

// Max returns the largest byte in data using kernel variant t.
//
// Panics if data is empty.
func Max(t hwy.Target, data []byte) byte {
	switch t {
	case hwy.TargetU8x16:
		return maxOf[hwy.Uint8x16, hwy.FixedTag128](data)
	case hwy.TargetU8x8:
		return maxOf[hwy.Uint8x8, hwy.FixedTag64](data)
	default:
		return BaseMax(data)
	}
}

// Sum returns the sum of data and whether a checked sum overflowed.
func Sum(t hwy.Target, data []byte, checked bool) (uint64, bool) {
	return SumFrom(t, 0, data, checked)
}

// SumFrom adds data to acc using kernel variant t. It lets a long input be
// summed piecewise, for example one segment per goroutine, while still
// detecting overflow exactly.
func SumFrom(t hwy.Target, acc uint64, data []byte, checked bool) (uint64, bool) {
	switch t {
	case hwy.TargetU8x16:
		return sumFrom[hwy.Uint8x16, hwy.FixedTag128](acc, data, checked)
	case hwy.TargetU8x8:
		return sumFrom[hwy.Uint8x8, hwy.FixedTag64](acc, data, checked)
	default:
		return BaseSumFrom(acc, data, checked)
	}
}

func minOf[V hwy.Vec[V], D hwy.Tag[V]](data []byte) byte {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(data), w)
	if n == 0 {
		return BaseMin(data)
	}

	m := d.Load(data)
	for i := w; i < n; i += w {
		m = m.Min(d.Load(data[i:]))
	}
	r := m.ReduceMin()
	for _, x := range data[n:] {
		r = min(r, x)
	}
	return r
}

func maxOf[V hwy.Vec[V], D hwy.Tag[V]](data []byte) byte {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(data), w)
	if n == 0 {
		return BaseMax(data)
	}

	m := d.Load(data)
	for i := w; i < n; i += w {
		m = m.Max(d.Load(data[i:]))
	}
	r := m.ReduceMax()
	for _, x := range data[n:] {
		r = max(r, x)
	}
	return r
}

func sumFrom[V hwy.Vec[V], D hwy.Tag[V]](acc uint64, data []byte, checked bool) (uint64, bool) {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(data), w)

	if checked && uint64(len(data)) <= SafeCount(acc) {
		checked = false
	}

	for start := 0; start < n; start += hwy.SumChunkLen {
		end := min(start+hwy.SumChunkLen, n)
		wide := d.Zero()
		for i := start; i < end; i += w {
			wide = d.Load(data[i:]).AddPairwiseWiden(wide)
		}
		chunk := wide.ReduceSum16()

		if !checked {
			acc += chunk
			continue
		}
		sum, carry := bits.Add64(acc, chunk, 0)
		if carry != 0 {
			// Locate the exact partial sum within the chunk.
			partial, _ := BaseSumFrom(acc, data[start:end], true)
			return partial, true
		}
		acc = sum
	}

	return BaseSumFrom(acc, data[n:], checked)
}
