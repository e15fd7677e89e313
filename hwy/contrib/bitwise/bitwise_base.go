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

// BaseArrayValue sets dst[i] = a[i] op v.
func BaseArrayValue(op Op, dst, a []byte, v byte) {
	dst = dst[:len(a)]
	switch op {
	case And:
		for i, x := range a {
			dst[i] = x & v
		}
	case Or:
		for i, x := range a {
			dst[i] = x | v
		}
	case Xor:
		for i, x := range a {
			dst[i] = x ^ v
		}
	case LShift:
		for i, x := range a {
			dst[i] = x << v
		}
	case RShift:
		for i, x := range a {
			dst[i] = x >> v
		}
	default:
		panic("bitwise: invalid op " + op.String())
	}
}

// BaseValueArray sets dst[i] = v op a[i].
func BaseValueArray(op Op, dst []byte, v byte, a []byte) {
	if op.Commutative() {
		BaseArrayValue(op, dst, a, v)
		return
	}
	dst = dst[:len(a)]
	for i, x := range a {
		dst[i] = op.Apply(v, x)
	}
}

// BaseArrays sets dst[i] = a[i] op b[i]. b must be at least as long as a.
func BaseArrays(op Op, dst, a, b []byte) {
	dst = dst[:len(a)]
	b = b[:len(a)]
	switch op {
	case And:
		for i, x := range a {
			dst[i] = x & b[i]
		}
	case Or:
		for i, x := range a {
			dst[i] = x | b[i]
		}
	case Xor:
		for i, x := range a {
			dst[i] = x ^ b[i]
		}
	default:
		for i, x := range a {
			dst[i] = op.Apply(x, b[i])
		}
	}
}

// BaseInvert sets dst[i] = ^src[i].
func BaseInvert(dst, src []byte) {
	dst = dst[:len(src)]
	for i, x := range src {
		dst[i] = ^x
	}
}
