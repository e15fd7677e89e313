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

import (
	"encoding/binary"
	"math/bits"
)

// Uint8x8 is a 64-bit vector of 8 uint8 lanes.
type Uint8x8 uint64

// And performs bitwise AND.
func (v Uint8x8) And(o Uint8x8) Uint8x8 { return v & o }

// Or performs bitwise OR.
func (v Uint8x8) Or(o Uint8x8) Uint8x8 { return v | o }

// Xor performs bitwise XOR.
func (v Uint8x8) Xor(o Uint8x8) Uint8x8 { return v ^ o }

// AndNot computes v &^ o.
func (v Uint8x8) AndNot(o Uint8x8) Uint8x8 { return v &^ o }

// Not performs bitwise NOT.
func (v Uint8x8) Not() Uint8x8 { return ^v }

// Min performs element-wise unsigned minimum.
func (v Uint8x8) Min(o Uint8x8) Uint8x8 {
	return Uint8x8(minWord(uint64(v), uint64(o)))
}

// Max performs element-wise unsigned maximum.
func (v Uint8x8) Max(o Uint8x8) Uint8x8 {
	return Uint8x8(maxWord(uint64(v), uint64(o)))
}

// Eq returns a mask where v == o.
func (v Uint8x8) Eq(o Uint8x8) Uint8x8 {
	return Uint8x8(eqWord(uint64(v), uint64(o)))
}

// GreaterEqual returns a mask where v >= o (unsigned comparison).
func (v Uint8x8) GreaterEqual(o Uint8x8) Uint8x8 {
	return Uint8x8(geWord(uint64(v), uint64(o)))
}

// ShiftLeft shifts every lane left by n bits.
func (v Uint8x8) ShiftLeft(n uint8) Uint8x8 {
	return Uint8x8(shlWord(uint64(v), n))
}

// ShiftRight shifts every lane right by n bits.
func (v Uint8x8) ShiftRight(n uint8) Uint8x8 {
	return Uint8x8(shrWord(uint64(v), n))
}

// AllTrue returns true if every lane of the mask is set.
func (v Uint8x8) AllTrue() bool { return uint64(v) == allOnes }

// AnyTrue returns true if at least one lane of the mask is set.
func (v Uint8x8) AnyTrue() bool { return v != 0 }

// FirstTrue returns the index of the first set lane, or -1.
func (v Uint8x8) FirstTrue() int {
	if v == 0 {
		return -1
	}
	return firstLane(uint64(v))
}

// CountTrue returns the number of set lanes in the mask.
func (v Uint8x8) CountTrue() int {
	return bits.OnesCount64(uint64(v)) >> 3
}

// ReduceMin returns the smallest lane.
func (v Uint8x8) ReduceMin() uint8 { return reduceMinWord(uint64(v)) }

// ReduceMax returns the largest lane.
func (v Uint8x8) ReduceMax() uint8 { return reduceMaxWord(uint64(v)) }

// AddPairwiseWiden adds adjacent byte pairs of v into the 4 16-bit lanes of acc.
func (v Uint8x8) AddPairwiseWiden(acc Uint8x8) Uint8x8 {
	return acc + Uint8x8(pairsWord(uint64(v)))
}

// ReduceSum16 sums the 4 16-bit lanes.
func (v Uint8x8) ReduceSum16() uint64 { return sum16Word(uint64(v)) }

// Store writes the 8 lanes to dst.
func (v Uint8x8) Store(dst []byte) {
	binary.LittleEndian.PutUint64(dst, uint64(v))
}

// Get returns the lane at index i.
func (v Uint8x8) Get(i int) uint8 {
	return uint8(v >> (8 * uint(i&7)))
}

// Data returns the lanes as a new slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Uint8x8) Data() []uint8 {
	out := make([]uint8, 8)
	v.Store(out)
	return out
}
