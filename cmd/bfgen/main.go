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

// Command bfgen generates the shape-specific wrappers of package bytesfunc.
//
// Every transform (and, or, xor, lshift, rshift) and every relation (eq, ne,
// gt, ge, lt, le) gets an ArrayValue, a ValueArray and an Arrays function
// that forwards to the shared implementation for its shape.
//
// Usage:
//
//	bfgen -output ops_gen.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/bfgen -output ops_gen.go
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "ops_gen.go", "Output Go file")
	packageOut = flag.String("pkg", "bytesfunc", "Output package name")
)

func main() {
	flag.Parse()

	src, err := Render(*outputFile, *packageOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d transforms and %d relations in %s\n",
		len(Transforms), len(Relations), *outputFile)
}
