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

// Package compare provides byte-wise relations over byte slices.
//
// AllArrayValue, AllValueArray and AllArrays report whether a relation holds
// at every index; Any reports whether it holds at some index; FindIndex
// returns the first such index. All of them scan whole vectors first and
// only touch individual bytes in the remainder.
//
// Relations are unsigned. Empty input is vacuously true for the All forms
// and false for Any.
package compare

// Op selects a relation between two bytes.
type Op int

const (
	Eq Op = iota + 1
	Ne
	Gt
	Ge
	Lt
	Le
)

// NotFound is returned by FindIndex when no element satisfies the relation.
// It is distinct from every valid index.
const NotFound = -5

var opNames = [...]string{
	Eq: "eq",
	Ne: "ne",
	Gt: "gt",
	Ge: "ge",
	Lt: "lt",
	Le: "le",
}

// String returns the short relation name, e.g. "ge".
func (op Op) String() string {
	if !op.Valid() {
		return "unknown"
	}
	return opNames[op]
}

// ParseOp parses the names produced by Op.String.
func ParseOp(s string) (Op, bool) {
	for op := Eq; op <= Le; op++ {
		if opNames[op] == s {
			return op, true
		}
	}
	return 0, false
}

// Valid reports whether op is one of the defined relations.
func (op Op) Valid() bool {
	return op >= Eq && op <= Le
}

// Swap returns the relation that holds for (y, x) whenever op holds for (x, y).
func (op Op) Swap() Op {
	switch op {
	case Gt:
		return Lt
	case Ge:
		return Le
	case Lt:
		return Gt
	case Le:
		return Ge
	default:
		return op
	}
}

// Test reports whether x op y.
func (op Op) Test(x, y byte) bool {
	switch op {
	case Eq:
		return x == y
	case Ne:
		return x != y
	case Gt:
		return x > y
	case Ge:
		return x >= y
	case Lt:
		return x < y
	case Le:
		return x <= y
	default:
		panic("compare: invalid op " + op.String())
	}
}
