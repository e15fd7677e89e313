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

package main

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/go-bytesfunc/bytesfunc/hwy"
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/bitwise"
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/compare"
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/reduce"
)

// verifyMaxLen covers empty, sub-vector, aligned and misaligned inputs for
// the widest lane type.
const verifyMaxLen = 3*16 + 7

// A check compares one operation family on target t against the scalar
// kernel for a single random input of length n.
type check struct {
	name string
	run  func(rng *rand.Rand, t hwy.Target, n int) error
}

var checks = []check{
	{"bitwise", checkBitwise},
	{"compare", checkCompare},
	{"reduce", checkReduce},
}

type verifyOptions struct {
	seed     int64
	rounds   int
	parallel int
}

func newVerifyCmd(root *rootOptions) *cobra.Command {
	opts := verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every vector kernel against the scalar kernel on random input",
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := runVerify(cmd.Context(), root, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d checks passed\n", n)
			return nil
		},
	}
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "Random seed")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 20, "Random inputs per length")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "Concurrent checks (0 = unlimited)")
	return cmd
}

// runVerify runs every check on every vector target concurrently and returns
// the number of individual comparisons made.
func runVerify(ctx context.Context, root *rootOptions, opts verifyOptions) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	if opts.parallel > 0 {
		g.SetLimit(opts.parallel)
	}

	var jobs int
	for _, t := range hwy.Targets() {
		if t == hwy.TargetScalar {
			continue
		}
		for i, c := range checks {
			jobs++
			seed := opts.seed + int64(t)*100 + int64(i)
			g.Go(func() error {
				rng := rand.New(rand.NewSource(seed))
				for n := 0; n <= verifyMaxLen; n++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					for range opts.rounds {
						if err := c.run(rng, t, n); err != nil {
							return fmt.Errorf("%s/%s n=%d: %w", c.name, t, n, err)
						}
					}
				}
				root.logger.Debug("check passed", "check", c.name, "target", t.String())
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return jobs * (verifyMaxLen + 1) * opts.rounds, nil
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func checkBitwise(rng *rand.Rand, t hwy.Target, n int) error {
	a, b := randomBytes(rng, n), randomBytes(rng, n)
	want, got := make([]byte, n), make([]byte, n)

	for op := bitwise.And; op <= bitwise.RShift; op++ {
		v := byte(rng.Intn(256))
		if !op.Commutative() {
			v %= 10
		}
		bitwise.BaseArrayValue(op, want, a, v)
		bitwise.ArrayValue(t, op, got, a, v)
		if !bytes.Equal(got, want) {
			return fmt.Errorf("%s array-value: got %x, want %x", op, got, want)
		}
		bitwise.BaseArrays(op, want, a, b)
		bitwise.Arrays(t, op, got, a, b)
		if !bytes.Equal(got, want) {
			return fmt.Errorf("%s arrays: got %x, want %x", op, got, want)
		}
	}

	bitwise.BaseInvert(want, a)
	bitwise.Invert(t, got, a)
	if !bytes.Equal(got, want) {
		return fmt.Errorf("invert: got %x, want %x", got, want)
	}
	return nil
}

func checkCompare(rng *rand.Rand, t hwy.Target, n int) error {
	v := byte(rng.Intn(256))
	a := make([]byte, n)
	for i := range a {
		a[i] = v + byte(rng.Intn(3)) - 1
	}
	b := randomBytes(rng, n)

	for op := compare.Eq; op <= compare.Le; op++ {
		if got, want := compare.AllArrayValue(t, op, a, v), compare.BaseAllArrayValue(op, a, v); got != want {
			return fmt.Errorf("all %s: got %v, want %v", op, got, want)
		}
		if got, want := compare.AllArrays(t, op, a, b), compare.BaseAllArrays(op, a, b); got != want {
			return fmt.Errorf("all %s arrays: got %v, want %v", op, got, want)
		}
		if got, want := compare.Any(t, op, a, v), compare.BaseAny(op, a, v); got != want {
			return fmt.Errorf("any %s: got %v, want %v", op, got, want)
		}
		if got, want := compare.FindIndex(t, op, a, v), compare.BaseFindIndex(op, a, v); got != want {
			return fmt.Errorf("findindex %s: got %d, want %d", op, got, want)
		}
	}
	return nil
}

func checkReduce(rng *rand.Rand, t hwy.Target, n int) error {
	a := randomBytes(rng, n)
	if n > 0 {
		if got, want := reduce.Min(t, a), reduce.BaseMin(a); got != want {
			return fmt.Errorf("min: got %d, want %d", got, want)
		}
		if got, want := reduce.Max(t, a), reduce.BaseMax(a); got != want {
			return fmt.Errorf("max: got %d, want %d", got, want)
		}
	}

	acc := rng.Uint64()
	for _, checked := range []bool{false, true} {
		gotSum, gotOver := reduce.SumFrom(t, acc, a, checked)
		wantSum, wantOver := reduce.BaseSumFrom(acc, a, checked)
		if gotSum != wantSum || gotOver != wantOver {
			return fmt.Errorf("sum from %d (checked=%v): got %d, %v; want %d, %v",
				acc, checked, gotSum, gotOver, wantSum, wantOver)
		}
	}
	return nil
}
