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

import "math/bits"

// Word-parallel helpers shared by Uint8x8 and Uint8x16. Each uint64 holds 8
// byte lanes; lane i is bits [8i, 8i+8) which matches little-endian loads.

const (
	lsbs     = 0x0101010101010101
	msbs     = 0x8080808080808080
	low7     = 0x7F7F7F7F7F7F7F7F
	evenOnes = 0x00FF00FF00FF00FF
	allOnes  = ^uint64(0)
)

// shlMasks[n] keeps the bits of every byte that survive a left shift by n.
var shlMasks = [8]uint64{
	0xFFFFFFFFFFFFFFFF,
	0xFEFEFEFEFEFEFEFE,
	0xFCFCFCFCFCFCFCFC,
	0xF8F8F8F8F8F8F8F8,
	0xF0F0F0F0F0F0F0F0,
	0xE0E0E0E0E0E0E0E0,
	0xC0C0C0C0C0C0C0C0,
	0x8080808080808080,
}

// shrMasks[n] keeps the bits of every byte that survive a right shift by n.
var shrMasks = [8]uint64{
	0xFFFFFFFFFFFFFFFF,
	0x7F7F7F7F7F7F7F7F,
	0x3F3F3F3F3F3F3F3F,
	0x1F1F1F1F1F1F1F1F,
	0x0F0F0F0F0F0F0F0F,
	0x0707070707070707,
	0x0303030303030303,
	0x0101010101010101,
}

func broadcast(v uint8) uint64 {
	return lsbs * uint64(v)
}

// expandMSB turns a word with only lane high bits set into 0x00/0xFF lanes.
func expandMSB(h uint64) uint64 {
	return (h >> 7) * 0xFF
}

// eqWord returns 0xFF in lanes where a == b.
func eqWord(a, b uint64) uint64 {
	x := a ^ b
	// High bit of t is set in every lane where x is non-zero. The add cannot
	// carry out of a lane since both terms are at most 0x7F.
	t := ((x & low7) + low7) | x
	return expandMSB(^t & msbs)
}

// geWord returns 0xFF in lanes where a >= b, unsigned.
func geWord(a, b uint64) uint64 {
	// Compare the low 7 bits with a borrow that stays inside each lane:
	// (a|0x80) - (b&0x7F) is at least 1, and its high bit is set iff
	// a&0x7F >= b&0x7F.
	d := (a | msbs) - (b &^ msbs)
	// Where the high bits differ, a >= b iff a has it. Otherwise use d.
	return expandMSB(((a &^ b) | (^(a ^ b) & d)) & msbs)
}

func minWord(a, b uint64) uint64 {
	m := geWord(a, b)
	return (b & m) | (a &^ m)
}

func maxWord(a, b uint64) uint64 {
	m := geWord(a, b)
	return (a & m) | (b &^ m)
}

func shlWord(w uint64, n uint8) uint64 {
	if n >= 8 {
		return 0
	}
	return (w << n) & shlMasks[n]
}

func shrWord(w uint64, n uint8) uint64 {
	if n >= 8 {
		return 0
	}
	return (w >> n) & shrMasks[n]
}

// reduceMinWord folds the 8 lanes of w. Lanes shifted in from the top are
// zero, they only ever land in lanes that are discarded.
func reduceMinWord(w uint64) uint8 {
	w = minWord(w, w>>32)
	w = minWord(w, w>>16)
	w = minWord(w, w>>8)
	return uint8(w)
}

func reduceMaxWord(w uint64) uint8 {
	w = maxWord(w, w>>32)
	w = maxWord(w, w>>16)
	w = maxWord(w, w>>8)
	return uint8(w)
}

// pairsWord adds each pair of adjacent bytes into a 16-bit lane.
func pairsWord(w uint64) uint64 {
	return (w & evenOnes) + ((w >> 8) & evenOnes)
}

func sum16Word(w uint64) uint64 {
	return (w & 0xFFFF) + ((w >> 16) & 0xFFFF) + ((w >> 32) & 0xFFFF) + (w >> 48)
}

// firstLane returns the lowest lane index with any bit set in a mask word.
func firstLane(m uint64) int {
	return bits.TrailingZeros64(m) >> 3
}
