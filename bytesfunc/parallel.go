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
	"math/bits"

	"github.com/go-bytesfunc/bytesfunc/hwy"
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/bitwise"
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/reduce"
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/workerpool"
)

// MinParallelLen is the shortest input the Parallel functions split across
// the pool. Shorter inputs run on the calling goroutine.
const MinParallelLen = 1 << 16

// invertBatchLen is the work-stealing batch size of ParallelInvert.
const invertBatchLen = MinParallelLen / 4

// ParallelInvert is Invert with the work split over pool. A nil pool runs
// inline.
func ParallelInvert(pool *workerpool.Pool, data []byte, opts ...Option) error {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	dst, err := c.dest(data, n)
	if err != nil {
		return fmt.Errorf("invert: %w", err)
	}
	src := data[:n]
	if pool == nil || n < MinParallelLen {
		bitwise.Invert(c.target(n), dst, src)
		return nil
	}

	pool.ParallelForBatched(n, invertBatchLen, hwy.SumChunkLen, func(start, end int) {
		bitwise.Invert(c.target(end-start), dst[start:end], src[start:end])
	})
	return nil
}

// ParallelSum is Sum with the work split over pool. Segment totals are
// combined with the same overflow rule as Sum. A nil pool runs inline.
func ParallelSum(pool *workerpool.Pool, data []byte, opts ...Option) (uint64, error) {
	c := newConfig(opts)
	n := c.effectiveLen(len(data))
	if n == 0 {
		return 0, fmt.Errorf("sum: %w", ErrLength)
	}
	if pool == nil || n < MinParallelLen {
		return Sum(data, opts...)
	}

	checked := !c.ignoreOverflow
	totals := make([]uint64, pool.NumWorkers())
	overflows := make([]bool, pool.NumWorkers())
	segs := pool.ParallelFor(n, hwy.SumChunkLen, func(seg, start, end int) {
		totals[seg], overflows[seg] = reduce.Sum(c.target(end-start), data[start:end], checked)
	})

	return combineSums(totals[:segs], overflows[:segs], checked)
}

// combineSums adds per-segment sums. It fails if any segment overflowed or,
// when checked, if the running total carries out of 64 bits.
func combineSums(totals []uint64, overflows []bool, checked bool) (uint64, error) {
	var total uint64
	for i, t := range totals {
		if overflows[i] {
			return 0, fmt.Errorf("sum: %w", ErrOverflow)
		}
		var carry uint64
		total, carry = bits.Add64(total, t, 0)
		if checked && carry != 0 {
			return 0, fmt.Errorf("sum: %w", ErrOverflow)
		}
	}
	return total, nil
}
