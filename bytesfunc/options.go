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

	"github.com/go-bytesfunc/bytesfunc/hwy"
)

// Option configures a single call.
type Option func(*config)

type config struct {
	maxLen         int
	noSIMD         bool
	out            []byte
	hasOut         bool
	ignoreOverflow bool
}

// MaxLen limits processing to the first n elements. Values of n that are
// not positive, or not below the input length, have no effect.
func MaxLen(n int) Option {
	return func(c *config) {
		c.maxLen = n
	}
}

// NoSIMD forces the scalar kernel for this call.
func NoSIMD() Option {
	return func(c *config) {
		c.noSIMD = true
	}
}

// Out writes the result of a transform to dst instead of the first array
// operand. dst must hold at least as many elements as are processed. It
// may alias an input. Operations that do not write ignore it.
func Out(dst []byte) Option {
	return func(c *config) {
		c.out = dst
		c.hasOut = true
	}
}

// IgnoreOverflow makes Sum skip its overflow check; a total above 64 bits
// wraps instead of failing.
func IgnoreOverflow() Option {
	return func(c *config) {
		c.ignoreOverflow = true
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// effectiveLen clamps length to the MaxLen option.
func (c *config) effectiveLen(length int) int {
	if c.maxLen > 0 && c.maxLen < length {
		return c.maxLen
	}
	return length
}

// target picks the kernel variant for n elements.
func (c *config) target(n int) hwy.Target {
	return hwy.SelectTarget(n, c.noSIMD)
}

// dest returns the n-element destination of a transform whose first array
// operand is src.
func (c *config) dest(src []byte, n int) ([]byte, error) {
	if !c.hasOut {
		return src[:n], nil
	}
	if len(c.out) < n {
		return nil, fmt.Errorf("%w: %d elements, need %d", ErrOutputLength, len(c.out), n)
	}
	return c.out[:n], nil
}
