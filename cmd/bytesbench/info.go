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
	"os"
	"runtime"
	"sort"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"

	"github.com/go-bytesfunc/bytesfunc/hwy"
)

type infoReport struct {
	GOOS          string          `yaml:"goos" json:"goos"`
	GOARCH        string          `yaml:"goarch" json:"goarch"`
	Detected      string          `yaml:"detected_level" json:"detected_level"`
	Current       string          `yaml:"current_level" json:"current_level"`
	Width         int             `yaml:"width" json:"width"`
	Overridden    bool            `yaml:"overridden" json:"overridden"`
	NoSIMD        bool            `yaml:"no_simd" json:"no_simd"`
	SIMDEnv       string          `yaml:"simd_env,omitempty" json:"simd_env,omitempty"`
	Available     []string        `yaml:"available_levels" json:"available_levels"`
	DispatchFlags map[string]bool `yaml:"dispatch_features" json:"dispatch_features"`
	CPU           cpuReport       `yaml:"cpu" json:"cpu"`
}

type cpuReport struct {
	Brand         string   `yaml:"brand" json:"brand"`
	Vendor        string   `yaml:"vendor" json:"vendor"`
	PhysicalCores int      `yaml:"physical_cores" json:"physical_cores"`
	LogicalCores  int      `yaml:"logical_cores" json:"logical_cores"`
	CacheLine     int      `yaml:"cache_line" json:"cache_line"`
	Features      []string `yaml:"features" json:"features"`
}

func newInfoCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and CPU features",
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := collectInfo()
			root.logger.Debug("collected cpu info", "brand", report.CPU.Brand, "level", report.Current)

			w := cmd.OutOrStdout()
			if done, err := writeStructured(w, format, report); done {
				return err
			}
			fmt.Fprintf(w, "Platform:   %s/%s\n", report.GOOS, report.GOARCH)
			fmt.Fprintf(w, "CPU:        %s (%s, %d cores, %d threads)\n",
				report.CPU.Brand, report.CPU.Vendor, report.CPU.PhysicalCores, report.CPU.LogicalCores)
			fmt.Fprintf(w, "Detected:   %s\n", report.Detected)
			fmt.Fprintf(w, "Current:    %s (%d byte lanes)\n", report.Current, report.Width)
			fmt.Fprintf(w, "Overridden: %v\n", report.Overridden)
			fmt.Fprintf(w, "No SIMD:    %v\n", report.NoSIMD)
			fmt.Fprintf(w, "Available:  %v\n", report.Available)
			fmt.Fprintf(w, "Features:   %v\n", report.CPU.Features)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format: text, yaml or json")
	return cmd
}

func collectInfo() infoReport {
	available := hwy.AvailableLevels(hwy.DetectedLevel())
	levels := make([]string, len(available))
	for i, l := range available {
		levels[i] = l.String()
	}
	features := cpuid.CPU.FeatureSet()
	sort.Strings(features)

	return infoReport{
		GOOS:          runtime.GOOS,
		GOARCH:        runtime.GOARCH,
		Detected:      hwy.DetectedLevel().String(),
		Current:       hwy.CurrentName(),
		Width:         hwy.CurrentWidth(),
		Overridden:    hwy.IsOverridden(),
		NoSIMD:        hwy.NoSimdEnv(),
		SIMDEnv:       os.Getenv("BYTESFUNC_SIMD"),
		Available:     levels,
		DispatchFlags: hwy.CPUFeatures(),
		CPU: cpuReport{
			Brand:         cpuid.CPU.BrandName,
			Vendor:        cpuid.CPU.VendorString,
			PhysicalCores: cpuid.CPU.PhysicalCores,
			LogicalCores:  cpuid.CPU.LogicalCores,
			CacheLine:     cpuid.CPU.CacheLine,
			Features:      features,
		},
	}
}
