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

	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/reduce"
)

// Max returns the largest byte in data.
func Max(data []byte, opts ...Option) (byte, error) {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	if n == 0 {
		return 0, fmt.Errorf("max: %w", ErrLength)
	}
	return reduce.Max(c.target(n), data[:n]), nil
}

// Min returns the smallest byte in data.
func Min(data []byte, opts ...Option) (byte, error) {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	if n == 0 {
		return 0, fmt.Errorf("min: %w", ErrLength)
	}
	return reduce.Min(c.target(n), data[:n]), nil
}

// Sum returns the sum of data. It fails with ErrOverflow when the total does
// not fit in a uint64, unless IgnoreOverflow is given.
func Sum(data []byte, opts ...Option) (uint64, error) {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	if n == 0 {
		return 0, fmt.Errorf("sum: %w", ErrLength)
	}
	checked := !c.ignoreOverflow
	total, overflow := reduce.Sum(c.target(n), data[:n], checked)
	return combineSums([]uint64{total}, []bool{overflow}, checked)
}
