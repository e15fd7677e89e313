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

package bytesfunc

import (
	"fmt"

	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/compare"
)

// Op is a relation between a byte of data and a value.
type Op = compare.Op

// Relations accepted by All, Any and FindIndex.
const (
	Eq = compare.Eq
	Ne = compare.Ne
	Gt = compare.Gt
	Ge = compare.Ge
	Lt = compare.Lt
	Le = compare.Le
)

// ParseOp parses a relation name such as "ge".
func ParseOp(s string) (Op, error) {
	op, ok := compare.ParseOp(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidOp, s)
	}
	return op, nil
}

// All reports whether data[i] op v holds for every i. It is true for empty
// input.
func All(op Op, data []byte, v byte, opts ...Option) (bool, error) {
	if !op.Valid() {
		return false, fmt.Errorf("all: %w: %d", ErrInvalidOp, int(op))
	}
	return allArrayValue(op, data, v, opts)
}

// Any reports whether data[i] op v holds for some i. It is false for empty
// input.
func Any(op Op, data []byte, v byte, opts ...Option) (bool, error) {
	if !op.Valid() {
		return false, fmt.Errorf("any: %w: %d", ErrInvalidOp, int(op))
	}
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	return compare.Any(c.target(n), op, data[:n], v), nil
}

// FindIndex returns the first i for which data[i] op v holds, or -1.
func FindIndex(op Op, data []byte, v byte, opts ...Option) (int, error) {
	if !op.Valid() {
		return -1, fmt.Errorf("findindex: %w: %d", ErrInvalidOp, int(op))
	}
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	idx := compare.FindIndex(c.target(n), op, data[:n], v)
	if idx == compare.NotFound {
		return -1, nil
	}
	return idx, nil
}
