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
	"math/rand"
	"testing"
)

// checkLanes runs the lane algebra of one vector type against byte
// arithmetic. All 65536 operand pairs are covered, packed width at a time.
func checkLanes[V Vec[V], D Tag[V]](t *testing.T) {
	t.Helper()
	var d D
	w := d.Width()
	a := make([]byte, w)
	b := make([]byte, w)
	got := make([]byte, w)

	for x := 0; x < 256; x++ {
		for y0 := 0; y0 < 256; y0 += w {
			for i := range w {
				a[i] = byte(x)
				b[i] = byte(y0 + i)
			}
			va, vb := d.Load(a), d.Load(b)

			va.Eq(vb).Store(got)
			for i := range w {
				if want := mask(a[i] == b[i]); got[i] != want {
					t.Fatalf("%s Eq(%d, %d) = %#x, want %#x", d.Name(), a[i], b[i], got[i], want)
				}
			}
			va.GreaterEqual(vb).Store(got)
			for i := range w {
				if want := mask(a[i] >= b[i]); got[i] != want {
					t.Fatalf("%s GreaterEqual(%d, %d) = %#x, want %#x", d.Name(), a[i], b[i], got[i], want)
				}
			}
			va.Min(vb).Store(got)
			for i := range w {
				if want := min(a[i], b[i]); got[i] != want {
					t.Fatalf("%s Min(%d, %d) = %d, want %d", d.Name(), a[i], b[i], got[i], want)
				}
			}
			va.Max(vb).Store(got)
			for i := range w {
				if want := max(a[i], b[i]); got[i] != want {
					t.Fatalf("%s Max(%d, %d) = %d, want %d", d.Name(), a[i], b[i], got[i], want)
				}
			}
		}
	}
}

func mask(b bool) byte {
	if b {
		return 0xFF
	}
	return 0
}

func TestLaneCompare(t *testing.T) {
	t.Run("u8x8", checkLanes[Uint8x8, FixedTag64])
	t.Run("u8x16", checkLanes[Uint8x16, FixedTag128])
}

func checkBitwise[V Vec[V], D Tag[V]](t *testing.T) {
	var d D
	w := d.Width()
	rng := rand.New(rand.NewSource(1))
	a := make([]byte, w)
	b := make([]byte, w)
	got := make([]byte, w)

	for iter := 0; iter < 200; iter++ {
		rng.Read(a)
		rng.Read(b)
		va, vb := d.Load(a), d.Load(b)

		cases := []struct {
			name string
			v    V
			f    func(x, y byte) byte
		}{
			{"And", va.And(vb), func(x, y byte) byte { return x & y }},
			{"Or", va.Or(vb), func(x, y byte) byte { return x | y }},
			{"Xor", va.Xor(vb), func(x, y byte) byte { return x ^ y }},
			{"AndNot", va.AndNot(vb), func(x, y byte) byte { return x &^ y }},
			{"Not", va.Not(), func(x, _ byte) byte { return ^x }},
		}
		for _, c := range cases {
			c.v.Store(got)
			for i := range w {
				if want := c.f(a[i], b[i]); got[i] != want {
					t.Fatalf("%s %s lane %d: got %#x, want %#x", d.Name(), c.name, i, got[i], want)
				}
			}
		}

		for n := uint8(0); n < 10; n++ {
			va.ShiftLeft(n).Store(got)
			for i := range w {
				if want := a[i] << n; got[i] != want {
					t.Fatalf("%s ShiftLeft(%#x, %d) = %#x, want %#x", d.Name(), a[i], n, got[i], want)
				}
			}
			va.ShiftRight(n).Store(got)
			for i := range w {
				if want := a[i] >> n; got[i] != want {
					t.Fatalf("%s ShiftRight(%#x, %d) = %#x, want %#x", d.Name(), a[i], n, got[i], want)
				}
			}
		}
	}
}

func TestLaneBitwise(t *testing.T) {
	t.Run("u8x8", checkBitwise[Uint8x8, FixedTag64])
	t.Run("u8x16", checkBitwise[Uint8x16, FixedTag128])
}

func checkReduce[V Vec[V], D Tag[V]](t *testing.T) {
	var d D
	w := d.Width()
	rng := rand.New(rand.NewSource(2))
	a := make([]byte, w)

	for iter := 0; iter < 500; iter++ {
		rng.Read(a)
		if iter%7 == 0 {
			a[rng.Intn(w)] = 0
		}
		if iter%11 == 0 {
			a[rng.Intn(w)] = 255
		}
		v := d.Load(a)

		lo, hi, sum := a[0], a[0], uint64(0)
		for _, x := range a {
			lo = min(lo, x)
			hi = max(hi, x)
			sum += uint64(x)
		}
		if got := v.ReduceMin(); got != lo {
			t.Fatalf("%s ReduceMin(%v) = %d, want %d", d.Name(), a, got, lo)
		}
		if got := v.ReduceMax(); got != hi {
			t.Fatalf("%s ReduceMax(%v) = %d, want %d", d.Name(), a, got, hi)
		}
		if got := v.AddPairwiseWiden(d.Zero()).ReduceSum16(); got != sum {
			t.Fatalf("%s pairwise sum(%v) = %d, want %d", d.Name(), a, got, sum)
		}
	}
}

func TestLaneReduce(t *testing.T) {
	t.Run("u8x8", checkReduce[Uint8x8, FixedTag64])
	t.Run("u8x16", checkReduce[Uint8x16, FixedTag128])
}

func TestPairwiseWidenChunk(t *testing.T) {
	// A full SumChunkLen of 0xFF must fit the 16-bit lanes for both widths.
	data := make([]byte, SumChunkLen)
	for i := range data {
		data[i] = 0xFF
	}
	want := uint64(255 * SumChunkLen)

	var d8 FixedTag64
	acc8 := d8.Zero()
	for i := 0; i < len(data); i += d8.Width() {
		acc8 = d8.Load(data[i:]).AddPairwiseWiden(acc8)
	}
	if got := acc8.ReduceSum16(); got != want {
		t.Errorf("u8x8 chunk sum = %d, want %d", got, want)
	}

	var d16 FixedTag128
	acc16 := d16.Zero()
	for i := 0; i < len(data); i += d16.Width() {
		acc16 = d16.Load(data[i:]).AddPairwiseWiden(acc16)
	}
	if got := acc16.ReduceSum16(); got != want {
		t.Errorf("u8x16 chunk sum = %d, want %d", got, want)
	}
}

func TestMaskQueries(t *testing.T) {
	var d FixedTag128
	zero := d.Zero()
	ones := d.Set(0xFF)

	if zero.AnyTrue() || zero.AllTrue() || zero.FirstTrue() != -1 {
		t.Errorf("zero mask: AnyTrue=%v AllTrue=%v FirstTrue=%d", zero.AnyTrue(), zero.AllTrue(), zero.FirstTrue())
	}
	if !ones.AllTrue() || ones.FirstTrue() != 0 || ones.CountTrue() != 16 {
		t.Errorf("ones mask: AllTrue=%v FirstTrue=%d CountTrue=%d", ones.AllTrue(), ones.FirstTrue(), ones.CountTrue())
	}

	for lane := 0; lane < 16; lane++ {
		buf := make([]byte, 16)
		buf[lane] = 0xFF
		if lane+1 < 16 {
			buf[15] = 0xFF
		}
		m := d.Load(buf)
		if got := m.FirstTrue(); got != lane {
			t.Errorf("FirstTrue with lane %d set = %d", lane, got)
		}
		if m.AllTrue() {
			t.Errorf("AllTrue with lane %d set = true", lane)
		}
		if got := m.Get(lane); got != 0xFF {
			t.Errorf("Get(%d) = %#x, want 0xff", lane, got)
		}
	}

	var d8 FixedTag64
	m8 := d8.Load([]byte{0, 0, 0, 0xFF, 0, 0, 0xFF, 0})
	if got := m8.FirstTrue(); got != 3 {
		t.Errorf("u8x8 FirstTrue = %d, want 3", got)
	}
	if got := m8.CountTrue(); got != 2 {
		t.Errorf("u8x8 CountTrue = %d, want 2", got)
	}
}

func TestLoadStoreOrder(t *testing.T) {
	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(i + 1)
	}
	var d FixedTag128
	v := d.Load(src)
	for i := range src {
		if v.Get(i) != src[i] {
			t.Errorf("lane %d: got %d, want %d", i, v.Get(i), src[i])
		}
	}
	if got := v.Data(); string(got) != string(src) {
		t.Errorf("Data() = %v, want %v", got, src)
	}

	var d8 FixedTag64
	v8 := d8.Load(src[3:])
	for i := range 8 {
		if v8.Get(i) != src[3+i] {
			t.Errorf("u8x8 lane %d: got %d, want %d", i, v8.Get(i), src[3+i])
		}
	}
}
