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
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/go-bytesfunc/bytesfunc/bytesfunc"
	"github.com/go-bytesfunc/bytesfunc/hwy"
)

// benchFill is the value every input byte holds. The relation cases are
// chosen so that none of them can stop before the end of the input.
const benchFill = 100

type benchCase struct {
	Name string
	Run  func(data, out []byte, opts ...bytesfunc.Option) error
}

func transformCase(name string, fn func([]byte, byte, ...bytesfunc.Option) error, v byte) benchCase {
	return benchCase{name, func(data, out []byte, opts ...bytesfunc.Option) error {
		return fn(data, v, append(opts, bytesfunc.Out(out))...)
	}}
}

func relationCase(name string, fn func([]byte, byte, ...bytesfunc.Option) (bool, error), v byte) benchCase {
	return benchCase{name, func(data, _ []byte, opts ...bytesfunc.Option) error {
		_, err := fn(data, v, opts...)
		return err
	}}
}

var benchCases = []benchCase{
	transformCase("and", bytesfunc.AndArrayValue, 0x0F),
	transformCase("or", bytesfunc.OrArrayValue, 0x0F),
	transformCase("xor", bytesfunc.XorArrayValue, 0x0F),
	transformCase("lshift", bytesfunc.LShiftArrayValue, 3),
	transformCase("rshift", bytesfunc.RShiftArrayValue, 3),
	{"invert", func(data, out []byte, opts ...bytesfunc.Option) error {
		return bytesfunc.Invert(data, append(opts, bytesfunc.Out(out))...)
	}},
	relationCase("eq", bytesfunc.EqArrayValue, benchFill),
	relationCase("ne", bytesfunc.NeArrayValue, benchFill+1),
	relationCase("gt", bytesfunc.GtArrayValue, benchFill-1),
	relationCase("ge", bytesfunc.GeArrayValue, benchFill),
	relationCase("lt", bytesfunc.LtArrayValue, benchFill+1),
	relationCase("le", bytesfunc.LeArrayValue, benchFill),
	{"any", func(data, _ []byte, opts ...bytesfunc.Option) error {
		_, err := bytesfunc.Any(bytesfunc.Gt, data, benchFill, opts...)
		return err
	}},
	{"findindex", func(data, _ []byte, opts ...bytesfunc.Option) error {
		_, err := bytesfunc.FindIndex(bytesfunc.Lt, data, benchFill, opts...)
		return err
	}},
	{"max", func(data, _ []byte, opts ...bytesfunc.Option) error {
		_, err := bytesfunc.Max(data, opts...)
		return err
	}},
	{"min", func(data, _ []byte, opts ...bytesfunc.Option) error {
		_, err := bytesfunc.Min(data, opts...)
		return err
	}},
	{"sum", func(data, _ []byte, opts ...bytesfunc.Option) error {
		_, err := bytesfunc.Sum(data, opts...)
		return err
	}},
}

type benchResult struct {
	Op         string  `yaml:"op" json:"op"`
	Size       int     `yaml:"size" json:"size"`
	Iterations int     `yaml:"iterations" json:"iterations"`
	ScalarNs   int64   `yaml:"scalar_ns" json:"scalar_ns"`
	SIMDNs     int64   `yaml:"simd_ns" json:"simd_ns"`
	Speedup    float64 `yaml:"speedup" json:"speedup"`
}

type benchReport struct {
	Level   string        `yaml:"level" json:"level"`
	Results []benchResult `yaml:"results" json:"results"`
}

type benchOptions struct {
	size       int
	iterations int
	ops        []string
	format     string
}

func newBenchCmd(root *rootOptions) *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every operation with SIMD forced off and on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cases, err := selectCases(opts.ops)
			if err != nil {
				return err
			}
			if opts.size <= 0 || opts.iterations <= 0 {
				return fmt.Errorf("size and iterations must be positive")
			}

			report := benchReport{Level: hwy.CurrentName()}
			data := make([]byte, opts.size)
			for i := range data {
				data[i] = benchFill
			}
			out := make([]byte, opts.size)

			for _, c := range cases {
				res, err := runCase(c, data, out, opts.iterations)
				if err != nil {
					return fmt.Errorf("%s: %w", c.Name, err)
				}
				root.logger.Debug("benchmark done", "op", c.Name, "scalar_ns", res.ScalarNs, "simd_ns", res.SIMDNs)
				report.Results = append(report.Results, res)
			}

			w := cmd.OutOrStdout()
			if done, err := writeStructured(w, opts.format, report); done {
				return err
			}
			return writeBenchTable(w, report)
		},
	}
	cmd.Flags().IntVarP(&opts.size, "size", "n", 100000, "Input length in bytes")
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "i", 1000, "Calls per measurement")
	cmd.Flags().StringSliceVar(&opts.ops, "ops", nil, "Operations to run (default all): "+strings.Join(caseNames(benchCases), ","))
	cmd.Flags().StringVarP(&opts.format, "format", "o", "table", "Output format: table, yaml or json")
	return cmd
}

func caseNames(cases []benchCase) []string {
	return lo.Map(cases, func(c benchCase, _ int) string { return c.Name })
}

// selectCases returns the cases named in ops, in catalogue order, or all of
// them when ops is empty.
func selectCases(ops []string) ([]benchCase, error) {
	if len(ops) == 0 {
		return benchCases, nil
	}
	ops = lo.Uniq(lo.Map(ops, func(s string, _ int) string { return strings.ToLower(strings.TrimSpace(s)) }))
	if unknown := lo.Without(ops, caseNames(benchCases)...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown operations: %s", strings.Join(unknown, ", "))
	}
	return lo.Filter(benchCases, func(c benchCase, _ int) bool {
		return lo.Contains(ops, c.Name)
	}), nil
}

func runCase(c benchCase, data, out []byte, iterations int) (benchResult, error) {
	scalar, err := timeCase(c, data, out, iterations, bytesfunc.NoSIMD())
	if err != nil {
		return benchResult{}, err
	}
	simd, err := timeCase(c, data, out, iterations)
	if err != nil {
		return benchResult{}, err
	}

	res := benchResult{
		Op:         c.Name,
		Size:       len(data),
		Iterations: iterations,
		ScalarNs:   scalar.Nanoseconds() / int64(iterations),
		SIMDNs:     simd.Nanoseconds() / int64(iterations),
	}
	if simd > 0 {
		res.Speedup = float64(scalar) / float64(simd)
	}
	return res, nil
}

func timeCase(c benchCase, data, out []byte, iterations int, opts ...bytesfunc.Option) (time.Duration, error) {
	start := time.Now()
	for range iterations {
		if err := c.Run(data, out, opts...); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

func writeBenchTable(w io.Writer, report benchReport) error {
	p := message.NewPrinter(language.English)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)

	p.Fprintf(tw, "op\tsize\tscalar ns/op\t%s ns/op\tspeedup\t\n", report.Level)
	for _, r := range report.Results {
		p.Fprintf(tw, "%s\t%d\t%d\t%d\t%.2fx\t\n", r.Op, r.Size, r.ScalarNs, r.SIMDNs, r.Speedup)
	}
	return tw.Flush()
}
