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

// Package bytesfunc applies element-wise operations to byte slices: bitwise
// transforms and shifts, relations tested over a whole slice, first-match
// search, minimum, maximum and a checked sum.
//
// Each call validates its operands, clamps the work to an optional maximum
// length, and then runs either the scalar kernel or the vector kernel for
// the dispatch level found at start-up (see package hwy). Inputs shorter than
// two vectors always run the scalar kernel.
//
// Transforms write in place unless Out supplies a separate destination:
//
//	buf := []byte{0xFF, 0x0F, 0x00}
//	_ = bytesfunc.AndArrayValue(buf, 0x0F) // buf is now [0x0F 0x0F 0x00]
//
//	ok, _ := bytesfunc.GeArrayValue([]byte{5, 5, 5}, 5) // true
//	i, _ := bytesfunc.FindIndex(bytesfunc.Gt, []byte{1, 2, 3, 4}, 2) // 2
//	s, _ := bytesfunc.Sum([]byte{255, 255, 255}) // 765
//
// The shape-specific functions in ops_gen.go are generated by cmd/bfgen.
package bytesfunc

//go:generate go run ../cmd/bfgen -output ops_gen.go
