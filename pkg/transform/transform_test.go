package transform

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/notepaste/pkg/embed"
	"github.com/walteh/notepaste/pkg/frontmatter"
	"github.com/walteh/notepaste/pkg/state"
	"github.com/walteh/notepaste/pkg/vault"
)

func cacheWith(entries map[string]string) *state.EmbedCache {
	c := state.NewEmbedCache("f")
	for p, url := range entries {
		c.Put(p, state.AssetRecord{ID: p, URL: url, Type: "image"})
	}
	return c
}

func TestReplaceEmbeds(t *testing.T) {
	text := "see ![[img.png]] here"
	imgEmbed := embed.ResolvedEmbed{
		Start:       4,
		End:         16,
		DisplayText: "img.png",
		Link:        "img.png",
		FullPath:    "img.png",
		Original:    "![[img.png]]",
	}

	tests := []struct {
		name   string
		text   string
		embeds []embed.ResolvedEmbed
		cache  *state.EmbedCache
		want   string
	}{
		{
			name:   "cached_embed_is_rewritten",
			text:   text,
			embeds: []embed.ResolvedEmbed{imgEmbed},
			cache:  cacheWith(map[string]string{"img.png": "https://cdn/x.png"}),
			want:   "see ![img.png](https://cdn/x.png) here",
		},
		{
			name:   "uncached_embed_is_unchanged",
			text:   text,
			embeds: []embed.ResolvedEmbed{imgEmbed},
			cache:  cacheWith(nil),
			want:   text,
		},
		{
			name:   "nil_cache_is_unchanged",
			text:   text,
			embeds: []embed.ResolvedEmbed{imgEmbed},
			cache:  nil,
			want:   text,
		},
		{
			name: "several_embeds_out_of_order",
			text: "![[a.png]] mid ![[b.png|B]] end",
			embeds: []embed.ResolvedEmbed{
				{Start: 15, End: 27, DisplayText: "B", FullPath: "b.png", Original: "![[b.png|B]]"},
				{Start: 0, End: 10, DisplayText: "a.png", FullPath: "a.png", Original: "![[a.png]]"},
			},
			cache: cacheWith(map[string]string{"a.png": "https://cdn/a", "b.png": "https://cdn/b"}),
			want:  "![a.png](https://cdn/a) mid ![B](https://cdn/b) end",
		},
		{
			name:   "no_embeds",
			text:   "plain",
			embeds: nil,
			cache:  cacheWith(nil),
			want:   "plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplaceEmbeds(tt.embeds, tt.cache, tt.text), "replaced text should match")
		})
	}
}

func TestAssemble(t *testing.T) {
	assert.Equal(t, "| t |\n\nbody", Assemble("| t |", "\nbody\n"), "table and body should be separated by a blank line")
	assert.Equal(t, "body", Assemble("", "\n\nbody  \n"), "empty table should leave the trimmed body")
	assert.Equal(t, "", Assemble("", ""), "empty inputs should give an empty document")
}

func TestDocument(t *testing.T) {
	raw := strings.Join([]string{
		"---",
		"title: Hello",
		"empty:",
		"rentryId: abc",
		"rentryEditCode: code",
		"rentryEmbedCache: '{\"pathMap\":{}}'",
		"---",
		"see ![[img.png]] here",
	}, "\n")
	doc, err := frontmatter.Parse(raw)
	require.NoError(t, err, "parse should succeed")
	note := &vault.Note{Path: "note.md", Text: raw, Frontmatter: doc, Links: vault.ParseLinks(raw)}

	embedStart := strings.Index(raw, "![[img.png]]")
	embeds := []embed.ResolvedEmbed{{
		Start:       embedStart,
		End:         embedStart + len("![[img.png]]"),
		DisplayText: "img.png",
		Link:        "img.png",
		FullPath:    "img.png",
		Original:    "![[img.png]]",
	}}
	cache := cacheWith(map[string]string{"img.png": "https://cdn/x.png"})

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "body_only",
			opts: Options{},
			want: "see ![[img.png]] here",
		},
		{
			name: "embeds_replaced",
			opts: Options{ReplaceEmbeds: true},
			want: "see ![img.png](https://cdn/x.png) here",
		},
		{
			name: "with_frontmatter_table",
			opts: Options{IncludeFrontmatter: true, ReplaceEmbeds: true},
			want: strings.Join([]string{
				"| Property | Value |",
				"| -------- | ----- |",
				"| title    | Hello |",
				"| empty    |       |",
				"",
				"see ![img.png](https://cdn/x.png) here",
			}, "\n"),
		},
		{
			name: "skip_empty_values",
			opts: Options{IncludeFrontmatter: true, SkipEmptyFrontmatterValues: true},
			want: strings.Join([]string{
				"| Property | Value |",
				"| -------- | ----- |",
				"| title    | Hello |",
				"",
				"see ![[img.png]] here",
			}, "\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Document(tt.opts, note, embeds, cache), "document should match")
		})
	}
}
