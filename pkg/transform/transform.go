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

// Package transform renders the text published for a note: an optional
// frontmatter table followed by the body with mirrored embeds rewritten.
package transform

import (
	"sort"
	"strings"

	"github.com/walteh/notepaste/pkg/embed"
	"github.com/walteh/notepaste/pkg/frontmatter"
	"github.com/walteh/notepaste/pkg/state"
	"github.com/walteh/notepaste/pkg/vault"
)

// 🔧 Options select the transforms applied by Document.
type Options struct {
	IncludeFrontmatter         bool
	SkipEmptyFrontmatterValues bool
	ReplaceEmbeds              bool
}

// 🔁 ReplaceEmbeds rewrites every embed whose path is cached into a markdown
// image pointing at the mirrored url. Offsets refer to text; embeds are
// applied in ascending order in one pass and overlapping spans are dropped.
func ReplaceEmbeds(embeds []embed.ResolvedEmbed, cache *state.EmbedCache, text string) string {
	ordered := make([]embed.ResolvedEmbed, len(embeds))
	copy(ordered, embeds)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })

	var b strings.Builder
	b.Grow(len(text))

	cursor := 0
	for _, e := range ordered {
		if e.Start < cursor || e.End > len(text) || e.Start > e.End {
			continue
		}
		b.WriteString(text[cursor:e.Start])

		rec, ok := cache.Get(e.FullPath)
		if e.FullPath != "" && ok {
			b.WriteString("![")
			b.WriteString(e.DisplayText)
			b.WriteString("](")
			b.WriteString(rec.URL)
			b.WriteString(")")
		} else {
			b.WriteString(e.Original)
		}
		cursor = e.End
	}
	b.WriteString(text[cursor:])

	return b.String()
}

// 📄 Assemble joins the frontmatter table and the body with a blank line and
// trims the result. An empty table leaves just the trimmed body.
func Assemble(table, body string) string {
	return strings.TrimSpace(table + "\n\n" + body)
}

// FrontmatterTable renders the note's frontmatter without notepaste
// bookkeeping, optionally dropping empty values.
func FrontmatterTable(note *vault.Note, skipEmpty bool) string {
	fm := note.Frontmatter.Values()
	frontmatter.RemovePluginProps(fm, false)
	if skipEmpty {
		frontmatter.RemoveEmptyProps(fm)
	}
	return frontmatter.RenderTable(fm)
}

// 📰 Document produces the text published for note. Embeds are substituted
// on the raw text before the frontmatter is stripped, since their offsets
// are relative to it.
func Document(opts Options, note *vault.Note, embeds []embed.ResolvedEmbed, cache *state.EmbedCache) string {
	table := ""
	if opts.IncludeFrontmatter {
		table = FrontmatterTable(note, opts.SkipEmptyFrontmatterValues)
	}

	text := note.Text
	if opts.ReplaceEmbeds && embeds != nil && cache != nil {
		text = ReplaceEmbeds(embeds, cache, text)
	}
	body := frontmatter.Strip(text, note.Frontmatter.EndOffset())

	return Assemble(table, body)
}
