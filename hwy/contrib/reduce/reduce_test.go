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
	"bytes"
	"math"
	"math/big"
	"math/rand"
	"testing"

	"github.com/go-bytesfunc/bytesfunc/hwy"
)

const maxTestLen = 3*16 + 7

func TestMinMaxMatchScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, tg := range hwy.Targets() {
		t.Run(tg.String(), func(t *testing.T) {
			for n := 1; n <= maxTestLen; n++ {
				for rep := 0; rep < 10; rep++ {
					data := make([]byte, n)
					rng.Read(data)
					if got, want := Min(tg, data), BaseMin(data); got != want {
						t.Fatalf("Min(%v) = %d, want %d", data, got, want)
					}
					if got, want := Max(tg, data), BaseMax(data); got != want {
						t.Fatalf("Max(%v) = %d, want %d", data, got, want)
					}
				}
			}
		})
	}
}

func TestMinMaxBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := make([]byte, 1001)
	for i := range data {
		data[i] = byte(50 + rng.Intn(100))
	}
	data[999] = 3   // in the remainder for both widths
	data[640] = 251 // in a full vector

	for _, tg := range hwy.Targets() {
		lo, hi := Min(tg, data), Max(tg, data)
		if lo != 3 || hi != 251 {
			t.Errorf("%s: Min=%d Max=%d, want 3 and 251", tg, lo, hi)
		}
		if bytes.IndexByte(data, lo) < 0 || bytes.IndexByte(data, hi) < 0 {
			t.Errorf("%s: extremum is not an element", tg)
		}
	}
}

func TestMinMaxEmptyPanics(t *testing.T) {
	for _, tg := range hwy.Targets() {
		for name, fn := range map[string]func(hwy.Target, []byte) byte{"Min": Min, "Max": Max} {
			func() {
				defer func() {
					if recover() == nil {
						t.Errorf("%s/%s on empty slice should panic", name, tg)
					}
				}()
				fn(tg, nil)
			}()
		}
	}
}

func TestSumMatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, tg := range hwy.Targets() {
		for _, n := range []int{0, 1, 7, 8, 15, 16, 17, 31, 32, 55, 255, 256, 257, 511, 513, 1000} {
			data := make([]byte, n)
			rng.Read(data)

			want := new(big.Int)
			for _, x := range data {
				want.Add(want, big.NewInt(int64(x)))
			}
			for _, checked := range []bool{false, true} {
				got, overflow := Sum(tg, data, checked)
				if overflow || got != want.Uint64() {
					t.Errorf("%s n=%d checked=%v: Sum = %d, %v; want %s", tg, n, checked, got, overflow, want)
				}
			}
		}
	}
}

func TestSumAllOnes(t *testing.T) {
	// Every 16-bit lane is at its fullest at 0xFF.
	data := bytes.Repeat([]byte{0xFF}, 10*hwy.SumChunkLen+9)
	want := uint64(255 * len(data))
	for _, tg := range hwy.Targets() {
		if got, _ := Sum(tg, data, false); got != want {
			t.Errorf("%s: Sum = %d, want %d", tg, got, want)
		}
	}
	if got, _ := Sum(hwy.TargetScalar, []byte{255, 255, 255}, false); got != 765 {
		t.Errorf("Sum([255 255 255]) = %d, want 765", got)
	}
}

func TestSumOverflow(t *testing.T) {
	data := bytes.Repeat([]byte{0xFF}, 64)
	total := uint64(255 * len(data))

	for _, tg := range hwy.Targets() {
		// Lands exactly on MaxUint64.
		got, overflow := SumFrom(tg, math.MaxUint64-total, data, true)
		if overflow || got != math.MaxUint64 {
			t.Errorf("%s: exact fit = %d, %v; want MaxUint64, false", tg, got, overflow)
		}

		// One more than fits.
		_, overflow = SumFrom(tg, math.MaxUint64-total+1, data, true)
		if !overflow {
			t.Errorf("%s: overflow not detected", tg)
		}

		// Unchecked wraps.
		got, overflow = SumFrom(tg, math.MaxUint64-total+1, data, false)
		if overflow || got != 0 {
			t.Errorf("%s: unchecked = %d, %v; want 0, false", tg, got, overflow)
		}
	}
}

func TestSumOverflowPartialAgrees(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	data := make([]byte, 3*hwy.SumChunkLen+5)
	rng.Read(data)
	acc := uint64(math.MaxUint64 - 40000)

	wantSum, wantOverflow := BaseSumFrom(acc, data, true)
	if !wantOverflow {
		t.Fatal("test input should overflow")
	}
	for _, tg := range hwy.Targets() {
		got, overflow := SumFrom(tg, acc, data, true)
		if !overflow || got != wantSum {
			t.Errorf("%s: SumFrom = %d, %v; want %d, true", tg, got, overflow, wantSum)
		}
	}
}

func TestSafeCount(t *testing.T) {
	tests := []struct {
		acc  uint64
		want uint64
	}{
		{0, math.MaxUint64 / 255},
		{math.MaxUint64, 0},
		{math.MaxUint64 - 254, 0},
		{math.MaxUint64 - 255, 1},
	}
	for _, tt := range tests {
		if got := SafeCount(tt.acc); got != tt.want {
			t.Errorf("SafeCount(%d) = %d, want %d", tt.acc, got, tt.want)
		}
	}
}

func BenchmarkSum(b *testing.B) {
	data := make([]byte, 1<<16)
	for _, tg := range hwy.Targets() {
		b.Run(tg.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				Sum(tg, data, true)
			}
		})
	}
}

func BenchmarkMax(b *testing.B) {
	data := make([]byte, 1<<16)
	for _, tg := range hwy.Targets() {
		b.Run(tg.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				Max(tg, data)
			}
		})
	}
}
