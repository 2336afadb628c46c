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
	"bytes"
	"math"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// 📄 Document is a parsed note: its frontmatter tree and the raw text.
type Document struct {
	text string
	root *yaml.Node
	// end is the byte offset just past the closing delimiter, 0 when absent
	end     int
	present bool
}

// 🔍 Split locates the frontmatter block. It returns the YAML between the
// delimiters and the byte offset just past the closing delimiter.
func Split(text string) (yamlText string, end int, ok bool) {
	first, rest, found := cutLine(text)
	if !found || strings.TrimRight(first, " \t\r") != delimiter {
		return "", 0, false
	}
	offset := len(text) - len(rest)
	start := offset
	for {
		line, next, more := cutLine(rest)
		if strings.TrimRight(line, " \t\r") == delimiter {
			return text[start:offset], offset + len(strings.TrimRight(line, " \t\r")), true
		}
		if !more {
			return "", 0, false
		}
		offset += len(line) + 1
		rest = next
	}
}

func cutLine(s string) (line, rest string, found bool) {
	i := strings.IndexByte(s, '\n')
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// 🏭 Parse reads a note's frontmatter into a Document.
func Parse(text string) (*Document, error) {
	doc := &Document{text: text}

	yamlText, end, ok := Split(text)
	if !ok {
		return doc, nil
	}
	doc.end = end
	doc.present = true

	var node yaml.Node
	if err := yaml.Unmarshal([]byte(yamlText), &node); err != nil {
		return nil, errors.Errorf("parsing frontmatter yaml: %w", err)
	}

	switch {
	case node.Kind == 0:
		// empty block
	case node.Kind == yaml.DocumentNode && len(node.Content) == 1 && node.Content[0].Kind == yaml.MappingNode:
		doc.root = node.Content[0]
	case node.Kind == yaml.DocumentNode && len(node.Content) == 1 && node.Content[0].ShortTag() == "!!null":
		// "---\n~\n---" and friends
	default:
		return nil, errors.Errorf("frontmatter is not a mapping")
	}

	return doc, nil
}

// EndOffset is the byte offset where the frontmatter block ends.
func (d *Document) EndOffset() int { return d.end }

// 🗺️ Values converts the properties into a Map. A property whose YAML shape
// is none of the supported kinds becomes a String of its YAML text; Apply
// leaves such a property untouched unless its value changes.
func (d *Document) Values() *Map {
	m := NewMap()
	if d.root == nil {
		return m
	}
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		key := d.root.Content[i].Value
		node := d.root.Content[i+1]
		v, ok := valueFromNode(node)
		if !ok {
			v = String(yamlText(node))
		}
		m.Set(key, v)
	}
	return m
}

// Set writes key into the YAML tree.
func (d *Document) Set(key string, v Value) {
	if d.root == nil {
		d.root = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	}
	node := nodeFromValue(v)
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		if d.root.Content[i].Value == key {
			d.root.Content[i+1] = node
			return
		}
	}
	d.root.Content = append(d.root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		node,
	)
}

// Delete removes key from the YAML tree.
func (d *Document) Delete(key string) {
	if d.root == nil {
		return
	}
	for i := 0; i+1 < len(d.root.Content); i += 2 {
		if d.root.Content[i].Value == key {
			d.root.Content = append(d.root.Content[:i], d.root.Content[i+2:]...)
			return
		}
	}
}

// Apply makes the YAML tree match m for every key of before that changed.
// Keys missing from m are deleted, new or modified keys are set.
func (d *Document) Apply(before, after *Map) {
	for _, k := range before.Keys() {
		if _, ok := after.Get(k); !ok {
			d.Delete(k)
		}
	}
	for _, k := range after.Keys() {
		v, _ := after.Get(k)
		if old, ok := before.Get(k); ok && old.Equal(v) {
			continue
		}
		d.Set(k, v)
	}
}

// 📝 Render serializes the document back to note text.
func (d *Document) Render() (string, error) {
	body := Strip(d.text, d.end)

	if d.root == nil || len(d.root.Content) == 0 {
		if d.present {
			return strings.TrimPrefix(strings.TrimPrefix(body, "\r"), "\n"), nil
		}
		return body, nil
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(d.root); err != nil {
		return "", errors.Errorf("encoding frontmatter yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", errors.Errorf("closing frontmatter encoder: %w", err)
	}

	var out strings.Builder
	out.WriteString(delimiter + "\n")
	out.Write(buf.Bytes())
	out.WriteString(delimiter)
	if !d.present {
		out.WriteString("\n")
	}
	out.WriteString(body)
	return out.String(), nil
}

// ✂️ Strip returns text from the frontmatter end offset onward.
func Strip(text string, end int) string {
	if end <= 0 || end > len(text) {
		return text
	}
	return text[end:]
}

func valueFromNode(n *yaml.Node) (Value, bool) {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.ScalarNode:
		return scalarValue(n), true
	case yaml.SequenceNode:
		items := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			if c.Kind != yaml.ScalarNode {
				return Value{}, false
			}
			v := scalarValue(c)
			if v.kind == KindNull {
				items = append(items, "null")
				continue
			}
			items = append(items, v.Text())
		}
		return StringArray(items...), true
	default:
		return Value{}, false
	}
}

// yamlText renders n in flow style on one line, as it would read in a table
// cell.
func yamlText(n *yaml.Node) string {
	c := *n
	c.Style |= yaml.FlowStyle
	out, err := yaml.Marshal(&c)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

func scalarValue(n *yaml.Node) Value {
	switch n.ShortTag() {
	case "!!null":
		return Null()
	case "!!bool":
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			return String(n.Value)
		}
		return Bool(b)
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return String(n.Value)
		}
		return Number(f)
	default:
		return String(n.Value)
	}
}

func nodeFromValue(v Value) *yaml.Node {
	switch v.kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case KindNumber:
		tag := "!!float"
		if v.num == math.Trunc(v.num) && math.Abs(v.num) < 1<<63 {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: formatNumber(v.num)}
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case KindStringArray:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.arr {
			seq.Content = append(seq.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: item})
		}
		return seq
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.str}
	}
}
