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

// Uint8x16 is a 128-bit vector of 16 uint8 lanes, held as two words.
// Lanes 0-7 live in lo and lanes 8-15 in hi.
type Uint8x16 struct {
	lo, hi uint64
}

// And performs bitwise AND.
func (v Uint8x16) And(o Uint8x16) Uint8x16 {
	return Uint8x16{v.lo & o.lo, v.hi & o.hi}
}

// Or performs bitwise OR.
func (v Uint8x16) Or(o Uint8x16) Uint8x16 {
	return Uint8x16{v.lo | o.lo, v.hi | o.hi}
}

// Xor performs bitwise XOR.
func (v Uint8x16) Xor(o Uint8x16) Uint8x16 {
	return Uint8x16{v.lo ^ o.lo, v.hi ^ o.hi}
}

// AndNot computes v &^ o.
func (v Uint8x16) AndNot(o Uint8x16) Uint8x16 {
	return Uint8x16{v.lo &^ o.lo, v.hi &^ o.hi}
}

// Not performs bitwise NOT.
func (v Uint8x16) Not() Uint8x16 {
	return Uint8x16{^v.lo, ^v.hi}
}

// Min performs element-wise unsigned minimum.
func (v Uint8x16) Min(o Uint8x16) Uint8x16 {
	return Uint8x16{minWord(v.lo, o.lo), minWord(v.hi, o.hi)}
}

// Max performs element-wise unsigned maximum.
func (v Uint8x16) Max(o Uint8x16) Uint8x16 {
	return Uint8x16{maxWord(v.lo, o.lo), maxWord(v.hi, o.hi)}
}

// Eq returns a mask where v == o.
func (v Uint8x16) Eq(o Uint8x16) Uint8x16 {
	return Uint8x16{eqWord(v.lo, o.lo), eqWord(v.hi, o.hi)}
}

// GreaterEqual returns a mask where v >= o (unsigned comparison).
func (v Uint8x16) GreaterEqual(o Uint8x16) Uint8x16 {
	return Uint8x16{geWord(v.lo, o.lo), geWord(v.hi, o.hi)}
}

// ShiftLeft shifts every lane left by n bits.
func (v Uint8x16) ShiftLeft(n uint8) Uint8x16 {
	return Uint8x16{shlWord(v.lo, n), shlWord(v.hi, n)}
}

// ShiftRight shifts every lane right by n bits.
func (v Uint8x16) ShiftRight(n uint8) Uint8x16 {
	return Uint8x16{shrWord(v.lo, n), shrWord(v.hi, n)}
}

// AllTrue returns true if every lane of the mask is set.
func (v Uint8x16) AllTrue() bool {
	return v.lo&v.hi == allOnes
}

// AnyTrue returns true if at least one lane of the mask is set.
func (v Uint8x16) AnyTrue() bool {
	return v.lo|v.hi != 0
}

// FirstTrue returns the index of the first set lane, or -1.
func (v Uint8x16) FirstTrue() int {
	if v.lo != 0 {
		return firstLane(v.lo)
	}
	if v.hi != 0 {
		return 8 + firstLane(v.hi)
	}
	return -1
}

// CountTrue returns the number of set lanes in the mask.
func (v Uint8x16) CountTrue() int {
	return (bits.OnesCount64(v.lo) + bits.OnesCount64(v.hi)) >> 3
}

// ReduceMin returns the smallest lane.
func (v Uint8x16) ReduceMin() uint8 {
	return reduceMinWord(minWord(v.lo, v.hi))
}

// ReduceMax returns the largest lane.
func (v Uint8x16) ReduceMax() uint8 {
	return reduceMaxWord(maxWord(v.lo, v.hi))
}

// AddPairwiseWiden adds adjacent byte pairs of v into the 8 16-bit lanes of acc.
func (v Uint8x16) AddPairwiseWiden(acc Uint8x16) Uint8x16 {
	return Uint8x16{acc.lo + pairsWord(v.lo), acc.hi + pairsWord(v.hi)}
}

// ReduceSum16 sums the 8 16-bit lanes.
func (v Uint8x16) ReduceSum16() uint64 {
	return sum16Word(v.lo) + sum16Word(v.hi)
}

// Store writes the 16 lanes to dst.
func (v Uint8x16) Store(dst []byte) {
	_ = dst[15]
	binary.LittleEndian.PutUint64(dst, v.lo)
	binary.LittleEndian.PutUint64(dst[8:], v.hi)
}

// Get returns the lane at index i.
func (v Uint8x16) Get(i int) uint8 {
	i &= 15
	if i < 8 {
		return uint8(v.lo >> (8 * uint(i)))
	}
	return uint8(v.hi >> (8 * uint(i-8)))
}

// Data returns the lanes as a new slice.
// This is primarily for testing and should not be used in performance-critical code.
func (v Uint8x16) Data() []uint8 {
	out := make([]uint8, 16)
	v.Store(out)
	return out
}
