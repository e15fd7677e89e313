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
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

// Transform is one bitwise.Op.
type Transform struct {
	Name   string // Go identifier shared by bitwise and bytesfunc, e.g. "LShift"
	Symbol string // Go operator used in the doc comments
}

// Relation is one compare.Op.
type Relation struct {
	Name   string
	Symbol string
}

// Transforms lists the generated transform families.
var Transforms = []Transform{
	{"And", "&"},
	{"Or", "|"},
	{"Xor", "^"},
	{"LShift", "<<"},
	{"RShift", ">>"},
}

// Relations lists the generated relation families.
var Relations = []Relation{
	{"Eq", "=="},
	{"Ne", "!="},
	{"Gt", ">"},
	{"Ge", ">="},
	{"Lt", "<"},
	{"Le", "<="},
}

var opsTemplate = template.Must(template.New("ops").Parse(`// Code generated by bfgen. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/bitwise"
	"github.com/go-bytesfunc/bytesfunc/hwy/contrib/compare"
)
{{range .Transforms}}
// {{.Name}}ArrayValue sets data[i] = data[i] {{.Symbol}} v, or writes the result to Out.
func {{.Name}}ArrayValue(data []byte, v byte, opts ...Option) error {
	return transformArrayValue(bitwise.{{.Name}}, data, v, opts)
}

// {{.Name}}ValueArray sets data[i] = v {{.Symbol}} data[i], or writes the result to Out.
func {{.Name}}ValueArray(v byte, data []byte, opts ...Option) error {
	return transformValueArray(bitwise.{{.Name}}, v, data, opts)
}

// {{.Name}}Arrays sets a[i] = a[i] {{.Symbol}} b[i], or writes the result to Out.
// a and b must have the same length.
func {{.Name}}Arrays(a, b []byte, opts ...Option) error {
	return transformArrays(bitwise.{{.Name}}, a, b, opts)
}
{{end}}{{range .Relations}}
// {{.Name}}ArrayValue reports whether data[i] {{.Symbol}} v for every i.
func {{.Name}}ArrayValue(data []byte, v byte, opts ...Option) (bool, error) {
	return allArrayValue(compare.{{.Name}}, data, v, opts)
}

// {{.Name}}ValueArray reports whether v {{.Symbol}} data[i] for every i.
func {{.Name}}ValueArray(v byte, data []byte, opts ...Option) (bool, error) {
	return allValueArray(compare.{{.Name}}, v, data, opts)
}

// {{.Name}}Arrays reports whether a[i] {{.Symbol}} b[i] for every i.
// a and b must have the same length.
func {{.Name}}Arrays(a, b []byte, opts ...Option) (bool, error) {
	return allArrays(compare.{{.Name}}, a, b, opts)
}
{{end}}`))

// Render returns the formatted wrapper file for package pkg. filename is
// only used to resolve imports.
func Render(filename, pkg string) ([]byte, error) {
	var buf bytes.Buffer
	err := opsTemplate.Execute(&buf, struct {
		Package    string
		Transforms []Transform
		Relations  []Relation
	}{pkg, Transforms, Relations})
	if err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return src, nil
}
