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

// Op selects a binary byte transform.
type Op int

const (
	And Op = iota + 1
	Or
	Xor
	LShift
	RShift
)

// String returns the operation name.
func (op Op) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	case LShift:
		return "lshift"
	case RShift:
		return "rshift"
	default:
		return "unknown"
	}
}

// Valid reports whether op is one of the defined operations.
func (op Op) Valid() bool {
	return op >= And && op <= RShift
}

// Commutative reports whether x op y == y op x for all bytes.
func (op Op) Commutative() bool {
	return op == And || op == Or || op == Xor
}

// Apply returns x op y.
func (op Op) Apply(x, y byte) byte {
	switch op {
	case And:
		return x & y
	case Or:
		return x | y
	case Xor:
		return x ^ y
	case LShift:
		return x << y
	case RShift:
		return x >> y
	default:
		panic("bitwise: invalid op " + op.String())
	}
}
