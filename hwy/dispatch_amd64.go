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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

// CPU feature flags reported alongside the dispatch level.
var (
	// hasSSE2 is the amd64 baseline; the probe still checks it.
	hasSSE2 bool

	// hasSSE41 indicates SSE4.1 (Penryn+).
	hasSSE41 bool

	// hasAVX2 indicates AVX2 (Haswell+).
	hasAVX2 bool
)

func init() {
	hasSSE2 = cpu.X86.HasSSE2
	hasSSE41 = cpu.X86.HasSSE41
	hasAVX2 = cpu.X86.HasAVX2

	if hasSSE2 {
		setLevel(DispatchSSE2)
	} else {
		setLevel(DispatchScalar)
	}
}

// CPUFeatures returns the vector features the probe looked at, keyed by name.
func CPUFeatures() map[string]bool {
	return map[string]bool{
		"sse2":   hasSSE2,
		"sse4.1": hasSSE41,
		"avx2":   hasAVX2,
	}
}
