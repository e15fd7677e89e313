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

package compare

import "github.com/go-bytesfunc/bytesfunc/hwy"

// AllArrayValue reports whether a[i] op v for every i, using kernel variant t.
func AllArrayValue(t hwy.Target, op Op, a []byte, v byte) bool {
	switch t {
	case hwy.TargetU8x16:
		return allArrayValue[hwy.Uint8x16, hwy.FixedTag128](op, a, v)
	case hwy.TargetU8x8:
		return allArrayValue[hwy.Uint8x8, hwy.FixedTag64](op, a, v)
	default:
		return BaseAllArrayValue(op, a, v)
	}
}

// AllValueArray reports whether v op a[i] for every i.
func AllValueArray(t hwy.Target, op Op, v byte, a []byte) bool {
	return AllArrayValue(t, op.Swap(), a, v)
}

// AllArrays reports whether a[i] op b[i] for every i in [0, len(a)).
// b must be at least as long as a.
func AllArrays(t hwy.Target, op Op, a, b []byte) bool {
	switch t {
	case hwy.TargetU8x16:
		return allArrays[hwy.Uint8x16, hwy.FixedTag128](op, a, b)
	case hwy.TargetU8x8:
		return allArrays[hwy.Uint8x8, hwy.FixedTag64](op, a, b)
	default:
		return BaseAllArrays(op, a, b)
	}
}

// Any reports whether a[i] op v for some i.
func Any(t hwy.Target, op Op, a []byte, v byte) bool {
	switch t {
	case hwy.TargetU8x16:
		return anyArrayValue[hwy.Uint8x16, hwy.FixedTag128](op, a, v)
	case hwy.TargetU8x8:
		return anyArrayValue[hwy.Uint8x8, hwy.FixedTag64](op, a, v)
	default:
		return BaseAny(op, a, v)
	}
}

// FindIndex returns the first i with a[i] op v, or NotFound.
func FindIndex(t hwy.Target, op Op, a []byte, v byte) int {
	switch t {
	case hwy.TargetU8x16:
		return findIndex[hwy.Uint8x16, hwy.FixedTag128](op, a, v)
	case hwy.TargetU8x8:
		return findIndex[hwy.Uint8x8, hwy.FixedTag64](op, a, v)
	default:
		return BaseFindIndex(op, a, v)
	}
}

// relation returns the lane mask of x op y.
func relation[V hwy.Vec[V]](op Op, x, y V) V {
	switch op {
	case Eq:
		return x.Eq(y)
	case Ne:
		return x.Eq(y).Not()
	case Gt:
		return x.GreaterEqual(y).AndNot(x.Eq(y))
	case Ge:
		return x.GreaterEqual(y)
	case Lt:
		return y.GreaterEqual(x).AndNot(x.Eq(y))
	case Le:
		return y.GreaterEqual(x)
	default:
		panic("compare: invalid op " + op.String())
	}
}

func allArrayValue[V hwy.Vec[V], D hwy.Tag[V]](op Op, a []byte, v byte) bool {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(a), w)
	vv := d.Set(v)

	for i := 0; i < n; i += w {
		if !relation(op, d.Load(a[i:]), vv).AllTrue() {
			return false
		}
	}
	return BaseAllArrayValue(op, a[n:], v)
}

func allArrays[V hwy.Vec[V], D hwy.Tag[V]](op Op, a, b []byte) bool {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(a), w)
	b = b[:len(a)]

	for i := 0; i < n; i += w {
		if !relation(op, d.Load(a[i:]), d.Load(b[i:])).AllTrue() {
			return false
		}
	}
	return BaseAllArrays(op, a[n:], b[n:])
}

func anyArrayValue[V hwy.Vec[V], D hwy.Tag[V]](op Op, a []byte, v byte) bool {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(a), w)
	vv := d.Set(v)

	for i := 0; i < n; i += w {
		if relation(op, d.Load(a[i:]), vv).AnyTrue() {
			return true
		}
	}
	return BaseAny(op, a[n:], v)
}

func findIndex[V hwy.Vec[V], D hwy.Tag[V]](op Op, a []byte, v byte) int {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(a), w)
	vv := d.Set(v)

	for i := 0; i < n; i += w {
		if lane := relation(op, d.Load(a[i:]), vv).FirstTrue(); lane >= 0 {
			return i + lane
		}
	}
	if idx := BaseFindIndex(op, a[n:], v); idx != NotFound {
		return n + idx
	}
	return NotFound
}
