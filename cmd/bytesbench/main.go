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

// Command bytesbench inspects and exercises the bytesfunc kernels.
//
// Usage:
//
//	bytesbench info                      # dispatch level and CPU features
//	bytesbench bench --size 1000000      # scalar vs SIMD timings
//	bytesbench verify --rounds 50        # randomized scalar/SIMD equivalence
//
// BYTESFUNC_SIMD and BYTESFUNC_NO_SIMD are honored as in the library.
package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	logFormat string
	verbose   bool
	logger    *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "bytesbench",
		Short:         "Inspect, benchmark and verify the bytesfunc kernels",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logFormat, opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", getEnvStr("BYTESBENCH_LOG_FORMAT", "text"), "Log format: text or json")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", getEnvBool("BYTESBENCH_VERBOSE", false), "Enable debug logging")

	rootCmd.AddCommand(newInfoCmd(opts))
	rootCmd.AddCommand(newBenchCmd(opts))
	rootCmd.AddCommand(newVerifyCmd(opts))
	return rootCmd
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		slog.Error("bytesbench failed", "err", err)
		os.Exit(1)
	}
}

func getEnvStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return def
}
