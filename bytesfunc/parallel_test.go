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
	"bytes"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/workerpool"
)

func TestParallelInvert(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rng := rand.New(rand.NewSource(3))
	data := make([]byte, 3*MinParallelLen+13)
	rng.Read(data)
	want := bytes.Clone(data)
	require.NoError(t, Invert(want))

	got := bytes.Clone(data)
	require.NoError(t, ParallelInvert(pool, got))
	require.Equal(t, want, got)

	out := make([]byte, len(data))
	require.NoError(t, ParallelInvert(pool, data, Out(out)))
	require.Equal(t, want, out)

	require.NoError(t, ParallelInvert(nil, got))
	require.Equal(t, data, got)
}

func TestParallelSum(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	data := bytes.Repeat([]byte{0xFF, 0x01, 0x80}, MinParallelLen)
	want, err := Sum(data)
	require.NoError(t, err)

	got, err := ParallelSum(pool, data)
	require.NoError(t, err)
	require.Equal(t, want, got)

	got, err = ParallelSum(pool, data, MaxLen(MinParallelLen+5))
	require.NoError(t, err)
	want, _ = Sum(data[:MinParallelLen+5])
	require.Equal(t, want, got)

	small, err := ParallelSum(pool, []byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, uint64(6), small)

	_, err = ParallelSum(pool, nil)
	require.ErrorIs(t, err, ErrLength)
}

func TestParallelInvertBatches(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()

	// Not a multiple of the batch length, so the last batch is short.
	n := 5*invertBatchLen + 3*16 + 1
	data := make([]byte, n+100)
	rand.New(rand.NewSource(4)).Read(data)

	got := bytes.Clone(data)
	require.NoError(t, ParallelInvert(pool, got, MaxLen(n)))
	want := bytes.Clone(data)
	require.NoError(t, Invert(want[:n]))
	require.Equal(t, want, got)
	require.Equal(t, data[n:], got[n:], "bytes past MaxLen must not change")
}

func TestCombineSums(t *testing.T) {
	testCases := []struct {
		name      string
		totals    []uint64
		overflows []bool
		checked   bool
		want      uint64
		wantErr   bool
	}{
		{"empty", nil, nil, true, 0, false},
		{"small", []uint64{1, 2, 3}, []bool{false, false, false}, true, 6, false},
		{"exact fit", []uint64{math.MaxUint64 - 10, 10}, []bool{false, false}, true, math.MaxUint64, false},
		{"carry", []uint64{math.MaxUint64 - 10, 11}, []bool{false, false}, true, 0, true},
		{"carry unchecked wraps", []uint64{math.MaxUint64 - 10, 11}, []bool{false, false}, false, 0, false},
		{"carry in last segment", []uint64{1 << 62, 1 << 62, 1 << 62, 1 << 62}, []bool{false, false, false, false}, true, 0, true},
		{"segment overflow", []uint64{5, 7}, []bool{false, true}, true, 0, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := combineSums(tc.totals, tc.overflows, tc.checked)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrOverflow)
				require.Zero(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
