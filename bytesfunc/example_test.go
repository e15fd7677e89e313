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

package bytesfunc_test

import (
	"errors"
	"fmt"

	"github.com/go-bytesfunc/bytesfunc/bytesfunc"
)

func ExampleAndArrayValue() {
	buf := []byte{0xFF, 0x0F, 0x00}
	if err := bytesfunc.AndArrayValue(buf, 0x0F); err != nil {
		panic(err)
	}
	fmt.Printf("% x\n", buf)
	// Output: 0f 0f 00
}

func ExampleFindIndex() {
	idx, _ := bytesfunc.FindIndex(bytesfunc.Gt, []byte{1, 2, 3, 4}, 2)
	fmt.Println(idx)
	idx, _ = bytesfunc.FindIndex(bytesfunc.Gt, []byte{1, 2}, 2)
	fmt.Println(idx)
	// Output:
	// 2
	// -1
}

func ExampleSum() {
	total, _ := bytesfunc.Sum([]byte{255, 255, 255})
	fmt.Println(total)

	_, err := bytesfunc.Min(nil)
	fmt.Println(errors.Is(err, bytesfunc.ErrLength))
	// Output:
	// 765
	// true
}
