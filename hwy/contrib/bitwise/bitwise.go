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

package bitwise

import "github.com/go-bytesfunc/bytesfunc/hwy"

// ArrayValue sets dst[i] = a[i] op v using the kernel variant t.
func ArrayValue(t hwy.Target, op Op, dst, a []byte, v byte) {
	switch t {
	case hwy.TargetU8x16:
		arrayValue[hwy.Uint8x16, hwy.FixedTag128](op, dst, a, v)
	case hwy.TargetU8x8:
		arrayValue[hwy.Uint8x8, hwy.FixedTag64](op, dst, a, v)
	default:
		BaseArrayValue(op, dst, a, v)
	}
}

// ValueArray sets dst[i] = v op a[i] using the kernel variant t. Only the
// commutative operations have a vector body.
func ValueArray(t hwy.Target, op Op, dst []byte, v byte, a []byte) {
	if op.Commutative() {
		ArrayValue(t, op, dst, a, v)
		return
	}
	BaseValueArray(op, dst, v, a)
}

// Arrays sets dst[i] = a[i] op b[i] using the kernel variant t. Shifts run
// the scalar loop since the amount differs per lane.
func Arrays(t hwy.Target, op Op, dst, a, b []byte) {
	if !op.Commutative() {
		BaseArrays(op, dst, a, b)
		return
	}
	switch t {
	case hwy.TargetU8x16:
		arrays[hwy.Uint8x16, hwy.FixedTag128](op, dst, a, b)
	case hwy.TargetU8x8:
		arrays[hwy.Uint8x8, hwy.FixedTag64](op, dst, a, b)
	default:
		BaseArrays(op, dst, a, b)
	}
}

// Invert sets dst[i] = ^src[i] using the kernel variant t.
func Invert(t hwy.Target, dst, src []byte) {
	switch t {
	case hwy.TargetU8x16:
		invert[hwy.Uint8x16, hwy.FixedTag128](dst, src)
	case hwy.TargetU8x8:
		invert[hwy.Uint8x8, hwy.FixedTag64](dst, src)
	default:
		BaseInvert(dst, src)
	}
}

func arrayValue[V hwy.Vec[V], D hwy.Tag[V]](op Op, dst, a []byte, v byte) {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(a), w)
	dst = dst[:len(a)]

	switch op {
	case And:
		vv := d.Set(v)
		for i := 0; i < n; i += w {
			d.Load(a[i:]).And(vv).Store(dst[i:])
		}
	case Or:
		vv := d.Set(v)
		for i := 0; i < n; i += w {
			d.Load(a[i:]).Or(vv).Store(dst[i:])
		}
	case Xor:
		vv := d.Set(v)
		for i := 0; i < n; i += w {
			d.Load(a[i:]).Xor(vv).Store(dst[i:])
		}
	case LShift:
		for i := 0; i < n; i += w {
			d.Load(a[i:]).ShiftLeft(v).Store(dst[i:])
		}
	case RShift:
		for i := 0; i < n; i += w {
			d.Load(a[i:]).ShiftRight(v).Store(dst[i:])
		}
	default:
		panic("bitwise: invalid op " + op.String())
	}

	BaseArrayValue(op, dst[n:], a[n:], v)
}

func arrays[V hwy.Vec[V], D hwy.Tag[V]](op Op, dst, a, b []byte) {
	var d D
	w := d.Width()
	n := hwy.AlignedLength(len(a), w)
	dst = dst[:len(a)]
	b = b[:len(a)]

	switch op {
	case And:
		for i := 0; i < n; i += w {
			d.Load(a[i:]).And(d.Load(b[i:])).Store(dst[i:])
		}
	case Or:
		for i := 0; i < n; i += w {
			d.Load(a[i:]).Or(d.Load(b[i:])).Store(dst[i:])
		}
	case Xor:
		for i := 0; i < n; i += w {
			d.Load(a[i:]).Xor(d.Load(b[i:])).Store(dst[i:])
		}
	}

	BaseArrays(op, dst[n:], a[n:], b[n:])
}

func invert[V hwy.Vec[V], D hwy.Tag[V]](dst, src []byte) {
	var d D
	dst = dst[:len(src)]
	hwy.ProcessWithTail(len(src), d.Width(),
		func(offset int) {
			d.Load(src[offset:]).Not().Store(dst[offset:])
		},
		func(offset int) {
			BaseInvert(dst[offset:], src[offset:])
		},
	)
}
