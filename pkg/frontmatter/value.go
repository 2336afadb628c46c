// Copyright 2025 walteh LLC
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

/*
Package frontmatter models a note's YAML metadata block.

	+-----------------+       +-----------+       +----------------+
	|  note text      | ----> | Document  | ----> | Map of Values  |
	|  (--- yaml ---) |       | yaml.Node |       | (tagged union) |
	+-----------------+       +-----------+       +-------+--------+
	                                                      |
	                                        +-------------+-------------+
	                                        |                           |
	                                 RemovePluginProps            RenderTable
	                                 RemoveEmptyProps             (markdown)

🎯 Purpose:
- Splits a note into frontmatter and body
- Exposes frontmatter values as a small tagged union instead of arbitrary YAML
- Applies targeted mutations back onto the YAML tree, leaving unrelated keys intact
- Renders the publishable frontmatter table
*/
package frontmatter

import (
	"strconv"
	"strings"
)

// 🏷️ Kind tags a frontmatter Value
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindStringArray
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindStringArray:
		return "array"
	default:
		return "unknown"
	}
}

// 🧩 Value is one frontmatter property value
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	arr  []string
}

// Null returns the null value
func Null() Value { return Value{kind: KindNull} }

// String returns a string value
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric value
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean value
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// StringArray returns an array value; elements are already stringified
func StringArray(items ...string) Value {
	arr := make([]string, len(items))
	copy(arr, items)
	return Value{kind: KindStringArray, arr: arr}
}

// Kind returns the value's tag
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload and whether the value is a string
func (v Value) Str() (string, bool) { return v.str, v.kind == KindString }

// Items returns the array payload
func (v Value) Items() []string {
	if v.kind != KindStringArray {
		return nil
	}
	out := make([]string, len(v.arr))
	copy(out, v.arr)
	return out
}

// IsEmpty reports null, empty string and empty array values
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == ""
	case KindStringArray:
		return len(v.arr) == 0
	default:
		return false
	}
}

// Text stringifies scalars directly; null is the empty string and arrays
// join with commas.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindStringArray:
		return strings.Join(v.arr, ",")
	default:
		return ""
	}
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// Equal compares kind and payload
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindNumber:
		return v.num == o.num
	case KindBool:
		return v.b == o.b
	case KindStringArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if v.arr[i] != o.arr[i] {
				return false
			}
		}
	}
	return true
}

// 🗺️ Map is an insertion ordered set of frontmatter properties
type Map struct {
	keys   []string
	values map[string]Value
}

// NewMap creates an empty map
func NewMap() *Map {
	return &Map{values: map[string]Value{}}
}

// Len returns the number of properties
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns property names in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Get returns the value for key
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

// GetString returns the key's text when it holds a non-empty scalar
func (m *Map) GetString(key string) string {
	v, ok := m.Get(key)
	if !ok || v.kind == KindStringArray {
		return ""
	}
	return v.Text()
}

// Set adds or replaces key, keeping its original position
func (m *Map) Set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Delete removes key
func (m *Map) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Clone returns a copy safe to mutate
func (m *Map) Clone() *Map {
	out := NewMap()
	if m == nil {
		return out
	}
	for _, k := range m.keys {
		out.Set(k, m.values[k])
	}
	return out
}
