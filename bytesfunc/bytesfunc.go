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

	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/bitwise"
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/compare"
)

// Invert sets data[i] = ^data[i], or out[i] = ^data[i] with Out.
func Invert(data []byte, opts ...Option) error {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	dst, err := c.dest(data, n)
	if err != nil {
		return fmt.Errorf("invert: %w", err)
	}
	bitwise.Invert(c.target(n), dst, data[:n])
	return nil
}

func transformArrayValue(op bitwise.Op, data []byte, v byte, opts []Option) error {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	dst, err := c.dest(data, n)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	bitwise.ArrayValue(c.target(n), op, dst, data[:n], v)
	return nil
}

func transformValueArray(op bitwise.Op, v byte, data []byte, opts []Option) error {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	dst, err := c.dest(data, n)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	bitwise.ValueArray(c.target(n), op, dst, v, data[:n])
	return nil
}

func transformArrays(op bitwise.Op, a, b []byte, opts []Option) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s: %w: %d and %d", op, ErrLengthMismatch, len(a), len(b))
	}
	c := newConfig(opts)
	n := c.effectiveLen(len(a))
	dst, err := c.dest(a, n)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	bitwise.Arrays(c.target(n), op, dst, a[:n], b[:n])
	return nil
}

func allArrayValue(op compare.Op, data []byte, v byte, opts []Option) (bool, error) {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	return compare.AllArrayValue(c.target(n), op, data[:n], v), nil
}

func allValueArray(op compare.Op, v byte, data []byte, opts []Option) (bool, error) {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	return compare.AllValueArray(c.target(n), op, v, data[:n]), nil
}

func allArrays(op compare.Op, a, b []byte, opts []Option) (bool, error) {
	if len(a) != len(b) {
		return false, fmt.Errorf("%s: %w: %d and %d", op, ErrLengthMismatch, len(a), len(b))
	}
	c := newConfig(opts)
	n := c.effectiveLen(len(a))
	return compare.AllArrays(c.target(n), op, a[:n], b[:n]), nil
}
