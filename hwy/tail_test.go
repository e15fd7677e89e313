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

import "testing"

func TestAlignedLength(t *testing.T) {
	tests := []struct{ length, width, want int }{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 16},
		{47, 16, 32},
		{47, 8, 40},
		{5, 1, 5},
		{-3, 16, 0},
	}
	for _, tt := range tests {
		if got := AlignedLength(tt.length, tt.width); got != tt.want {
			t.Errorf("AlignedLength(%d, %d) = %d, want %d", tt.length, tt.width, got, tt.want)
		}
	}
}

func TestProcessWithTail(t *testing.T) {
	for size := 0; size < 40; size++ {
		var full []int
		tail := -1
		ProcessWithTail(size, 16, func(off int) { full = append(full, off) }, func(off int) { tail = off })

		if len(full) != size/16 {
			t.Errorf("size %d: %d full vectors, want %d", size, len(full), size/16)
		}
		for i, off := range full {
			if off != i*16 {
				t.Errorf("size %d: full[%d] = %d", size, i, off)
			}
		}
		wantTail := -1
		if size%16 != 0 {
			wantTail = size - size%16
		}
		if tail != wantTail {
			t.Errorf("size %d: tail offset %d, want %d", size, tail, wantTail)
		}
	}
}
