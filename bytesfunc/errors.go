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

import "errors"

var (
	// ErrLength is returned by Min, Max and Sum when there is nothing to reduce.
	ErrLength = errors.New("bytesfunc: empty input")

	// ErrLengthMismatch is returned when two array operands differ in length.
	ErrLengthMismatch = errors.New("bytesfunc: array lengths differ")

	// ErrOutputLength is returned when the Out destination is shorter than the
	// number of elements processed.
	ErrOutputLength = errors.New("bytesfunc: output array too short")

	// ErrOverflow is returned by a checked Sum whose total exceeds 64 bits.
	ErrOverflow = errors.New("bytesfunc: sum overflows uint64")

	// ErrInvalidOp is returned for a relation that is not one of Eq, Ne, Gt,
	// Ge, Lt or Le.
	ErrInvalidOp = errors.New("bytesfunc: invalid operator")
)
