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

// Target names the kernel variant an operation runs.
type Target int

const (
	// TargetScalar runs the portable byte-at-a-time loop.
	TargetScalar Target = iota

	// TargetU8x8 runs the vector body on Uint8x8 (8 lanes).
	TargetU8x8

	// TargetU8x16 runs the vector body on Uint8x16 (16 lanes).
	TargetU8x16
)

var (
	_ Vec[Uint8x8]  = Uint8x8(0)
	_ Vec[Uint8x16] = Uint8x16{}
	_ Tag[Uint8x8]  = FixedTag64{}
	_ Tag[Uint8x16] = FixedTag128{}
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetScalar:
		return "scalar"
	case TargetU8x8:
		return "u8x8"
	case TargetU8x16:
		return "u8x16"
	default:
		return "unknown"
	}
}

// Width returns the number of lanes processed per vector step, 1 for scalar.
func (t Target) Width() int {
	switch t {
	case TargetU8x8:
		return 8
	case TargetU8x16:
		return 16
	default:
		return 1
	}
}

// Targets lists every kernel variant, scalar first. Every variant runs on
// every machine, which is what equivalence tests rely on.
func Targets() []Target {
	return []Target{TargetScalar, TargetU8x8, TargetU8x16}
}

// TargetFor returns the vector target matching a dispatch level.
func TargetFor(level DispatchLevel) Target {
	switch level.Width() {
	case 16:
		return TargetU8x16
	case 8:
		return TargetU8x8
	default:
		return TargetScalar
	}
}

// SelectTargetFor picks the kernel variant for a call over length elements.
// Acceleration is skipped when noSIMD is set, when the level has no vector
// unit, or when length is below two vector widths, where setting up the
// vector loop costs more than it saves.
func SelectTargetFor(length int, noSIMD bool, level DispatchLevel) Target {
	width := level.Width()
	if noSIMD || width == 0 || length < 2*width {
		return TargetScalar
	}
	return TargetFor(level)
}

// SelectTarget is SelectTargetFor at the current dispatch level.
func SelectTarget(length int, noSIMD bool) Target {
	return SelectTargetFor(length, noSIMD, currentLevel)
}
