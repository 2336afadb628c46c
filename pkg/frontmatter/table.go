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

package frontmatter

import (
	"regexp"
	"strings"

	"github.com/walteh/notepaste/pkg/text"
)

const (
	propertyLabel = "Property"
	valueLabel    = "Value"

	// cellBreak is the paste renderer's in-cell line break: a literal
	// backslash-n, not a newline.
	cellBreak = ` \n `
)

type escapeRule struct {
	re   *regexp.Regexp
	repl string
}

// markdown escapes in the order turndown applies them; ^ anchors to the start
// of the whole string
var escapeRules = []escapeRule{
	{regexp.MustCompile(`\\`), `\\`},
	{regexp.MustCompile(`\*`), `\*`},
	{regexp.MustCompile(`^-`), `\-`},
	{regexp.MustCompile(`^\+ `), `\+ `},
	{regexp.MustCompile(`^(=+)`), `\$1`},
	{regexp.MustCompile(`^(#{1,6}) `), `\$1 `},
	{regexp.MustCompile("`"), "\\`"},
	{regexp.MustCompile(`^~~~`), `\~~~`},
	{regexp.MustCompile(`\[`), `\[`},
	{regexp.MustCompile(`\]`), `\]`},
	{regexp.MustCompile(`^>`), `\>`},
	{regexp.MustCompile(`_`), `\_`},
	{regexp.MustCompile(`^(\d+)\. `), `$1\. `},
	{regexp.MustCompile(`\|`), `\|`},
}

// 🛡️ Escape backslash-escapes markdown-sensitive characters in s.
func Escape(s string) string {
	for _, r := range escapeRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

func cellText(v Value) string {
	switch v.kind {
	case KindNull:
		return ""
	case KindStringArray:
		items := make([]string, len(v.arr))
		for i, item := range v.arr {
			if len(v.arr) > 1 {
				items[i] = "- " + Escape(item)
			} else {
				items[i] = Escape(item)
			}
		}
		return strings.Join(items, cellBreak)
	default:
		return Escape(v.Text())
	}
}

// 📊 RenderTable renders m as a two column markdown table. Widths are
// measured in graphemes so emoji do not skew the padding. An empty map
// renders as the empty string.
func RenderTable(m *Map) string {
	if m.Len() == 0 {
		return ""
	}

	rows := make([][2]string, 0, m.Len())
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		rows = append(rows, [2]string{Escape(k), cellText(v)})
	}

	widths := [2]int{text.GraphemeCount(propertyLabel), text.GraphemeCount(valueLabel)}
	for _, row := range rows {
		for col := range row {
			if n := text.GraphemeCount(row[col]); n > widths[col] {
				widths[col] = n
			}
		}
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines,
		formatRow(widths, propertyLabel, valueLabel),
		formatRow(widths, strings.Repeat("-", widths[0]), strings.Repeat("-", widths[1])),
	)
	for _, row := range rows {
		lines = append(lines, formatRow(widths, row[0], row[1]))
	}

	return strings.Join(lines, "\n")
}

func formatRow(widths [2]int, property, value string) string {
	return "| " + pad(property, widths[0]) + " | " + pad(value, widths[1]) + " |"
}

func pad(s string, width int) string {
	n := width - text.GraphemeCount(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
