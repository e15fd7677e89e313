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

package compare

// BaseAllArrayValue reports whether a[i] op v for every i.
func BaseAllArrayValue(op Op, a []byte, v byte) bool {
	for _, x := range a {
		if !op.Test(x, v) {
			return false
		}
	}
	return true
}

// BaseAllArrays reports whether a[i] op b[i] for every i in [0, len(a)).
func BaseAllArrays(op Op, a, b []byte) bool {
	b = b[:len(a)]
	for i, x := range a {
		if !op.Test(x, b[i]) {
			return false
		}
	}
	return true
}

// BaseFindIndex returns the first i with a[i] op v, or NotFound.
func BaseFindIndex(op Op, a []byte, v byte) int {
	for i, x := range a {
		if op.Test(x, v) {
			return i
		}
	}
	return NotFound
}

// BaseAny reports whether a[i] op v for some i.
func BaseAny(op Op, a []byte, v byte) bool {
	return BaseFindIndex(op, a, v) != NotFound
}
