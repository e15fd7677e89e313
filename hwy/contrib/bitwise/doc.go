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

// Package bitwise provides byte-wise transforms: and, or, xor, left and right
// shift, and invert.
//
// Every operation writes dst[i] for i in [0, len(a)). dst may be the same
// slice as the array operand, which gives an in-place transform. dst must be
// at least as long as a.
//
// Shapes:
//   - ArrayValue: dst[i] = a[i] op v
//   - ValueArray: dst[i] = v op a[i]
//   - Arrays:     dst[i] = a[i] op b[i]
//
// Shifts follow Go's semantics for uint8: shifting by 8 or more gives 0.
// Shifting by a uniform amount (ArrayValue) runs on vectors; per-element
// amounts (ValueArray, Arrays) always run the scalar loop.
//
// Entry points take the hwy.Target to run, usually hwy.SelectTarget(len(a), false):
//
//	bitwise.ArrayValue(hwy.SelectTarget(len(buf), false), bitwise.And, buf, buf, 0x0F)
package bitwise
