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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfoJSON(t *testing.T) {
	out, err := execute(t, "info", "--format", "json")
	require.NoError(t, err)

	var report infoReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotEmpty(t, report.Current)
	require.Contains(t, report.Available, "scalar")
	require.Contains(t, report.Available, report.Current)
}

func TestInfoText(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	require.Contains(t, out, "Current:")
}

func TestBenchYAML(t *testing.T) {
	out, err := execute(t, "bench", "--size", "300", "--iterations", "2", "--ops", "sum,invert,FindIndex", "--format", "yaml")
	require.NoError(t, err)

	var report benchReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	require.Len(t, report.Results, 3)
	// Catalogue order, not flag order.
	require.Equal(t, "invert", report.Results[0].Op)
	require.Equal(t, "findindex", report.Results[1].Op)
	require.Equal(t, "sum", report.Results[2].Op)
	for _, r := range report.Results {
		require.Equal(t, 300, r.Size)
	}
}

func TestBenchTable(t *testing.T) {
	out, err := execute(t, "bench", "--size", "12345", "--iterations", "1", "--ops", "max")
	require.NoError(t, err)
	require.Contains(t, out, "12,345")
	require.Contains(t, out, "max")
}

func TestBenchUnknownOp(t *testing.T) {
	_, err := execute(t, "bench", "--ops", "and,nope")
	require.ErrorContains(t, err, "nope")
}

func TestBenchCasesRun(t *testing.T) {
	data := bytes.Repeat([]byte{benchFill}, 100)
	out := make([]byte, len(data))
	for _, c := range benchCases {
		require.NoError(t, c.Run(data, out), c.Name)
		require.Equal(t, bytes.Repeat([]byte{benchFill}, 100), data, "%s must not modify its input", c.Name)
	}
}

func TestVerify(t *testing.T) {
	out, err := execute(t, "verify", "--rounds", "2", "--parallel", "2")
	require.NoError(t, err)
	require.Contains(t, out, "ok:")
}

func TestLogFormat(t *testing.T) {
	_, err := execute(t, "--log-format", "xml", "info")
	require.ErrorContains(t, err, "unknown log format")

	_, err = execute(t, "--log-format", "json", "-v", "info")
	require.NoError(t, err)
}
