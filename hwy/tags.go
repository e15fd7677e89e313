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

import "encoding/binary"

// Tag describes one vector width: how many lanes it has and how to load,
// broadcast and zero a vector of type V. Kernels take the tag as a type
// parameter and use its zero value.
type Tag[V any] interface {
	// Width returns the width in bytes (8 for 64-bit, 16 for 128-bit).
	Width() int

	// Name returns a human-readable name for this tag ("64bit", "128bit").
	Name() string

	// Load reads Width bytes from src. src must hold at least Width bytes.
	Load(src []byte) V

	// Set creates a vector with all lanes set to the same value.
	Set(value uint8) V

	// Zero returns a vector with all lanes zero.
	Zero() V
}

// FixedTag64 selects 64-bit vectors (ARMv7 NEON D registers).
type FixedTag64 struct{}

// Width returns 8 bytes (64 bits).
func (FixedTag64) Width() int {
	return 8
}

// Name returns "64bit".
func (FixedTag64) Name() string {
	return "64bit"
}

// Load reads 8 bytes from src.
func (FixedTag64) Load(src []byte) Uint8x8 {
	return Uint8x8(binary.LittleEndian.Uint64(src))
}

// Set broadcasts value to all 8 lanes.
func (FixedTag64) Set(value uint8) Uint8x8 {
	return Uint8x8(broadcast(value))
}

// Zero returns an all-zero vector.
func (FixedTag64) Zero() Uint8x8 {
	return 0
}

// FixedTag128 selects 128-bit vectors (SSE2, NEON Q registers).
type FixedTag128 struct{}

// Width returns 16 bytes (128 bits).
func (FixedTag128) Width() int {
	return 16
}

// Name returns "128bit".
func (FixedTag128) Name() string {
	return "128bit"
}

// Load reads 16 bytes from src.
func (FixedTag128) Load(src []byte) Uint8x16 {
	_ = src[15]
	return Uint8x16{
		lo: binary.LittleEndian.Uint64(src),
		hi: binary.LittleEndian.Uint64(src[8:]),
	}
}

// Set broadcasts value to all 16 lanes.
func (FixedTag128) Set(value uint8) Uint8x16 {
	w := broadcast(value)
	return Uint8x16{lo: w, hi: w}
}

// Zero returns an all-zero vector.
func (FixedTag128) Zero() Uint8x16 {
	return Uint8x16{}
}
