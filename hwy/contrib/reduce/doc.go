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

// Package reduce provides horizontal reductions over byte slices: minimum,
// maximum, and a 64-bit sum with optional overflow checking.
//
// Vector sums accumulate pairs of bytes into 16-bit lanes for one
// hwy.SumChunkLen chunk at a time, then fold the chunk into the 64-bit total.
// A checked sum tests the total for overflow between chunks only, and skips
// the test entirely when SafeCount shows the remaining bytes cannot overflow.
package reduce

import "math"

// SafeCount returns how many more bytes can be added to acc before it could
// overflow: every byte adds at most 255.
func SafeCount(acc uint64) uint64 {
	return (math.MaxUint64 - acc) / math.MaxUint8
}
