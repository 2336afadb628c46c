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

package status

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/notepaste/pkg/vault"
)

func testNote(t *testing.T, files map[string]string, path string) (*vault.Vault, *vault.Note) {
	t.Helper()
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	root := t.TempDir()
	for p, content := range files {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755), "creating dir should succeed")
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644), "writing file should succeed")
	}
	v, err := vault.Open(ctx, root)
	require.NoError(t, err, "opening vault should succeed")
	n, err := v.Note(ctx, path)
	require.NoError(t, err, "reading note should succeed")
	return v, n
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		note  string
		check func(t *testing.T, r *Report)
	}{
		{
			name: "unpublished_without_cache",
			note: "![[a.png]] and ![[b.mp4]]",
			check: func(t *testing.T, r *Report) {
				assert.False(t, r.Published(), "note should not be published")
				assert.Equal(t, []Entry{
					{Path: "a.png", Kind: KindPending},
					{Path: "b.mp4", Kind: KindPending},
				}, r.Entries, "every embed should be pending")
				assert.False(t, r.InSync(), "pending embeds should not be in sync")
			},
		},
		{
			name: "published_with_cache",
			note: strings.Join([]string{
				"---",
				"rentryId: abc",
				"rentryEditCode: code",
				"rentryUrl: https://rentry.co/abc",
				`rentryEmbedCache: '{"pathMap":{"a.png":{"id":"1","url":"https://cdn/a","type":"image"},"gone.png":{"id":"2","url":"https://cdn/g","type":"image"}},"folder":"f1"}'`,
				"---",
				"![[a.png]] ![[b.mp4]]",
			}, "\n"),
			check: func(t *testing.T, r *Report) {
				assert.True(t, r.Published(), "note should be published")
				assert.Equal(t, "https://rentry.co/abc", r.PasteURL, "url should be read")
				assert.Equal(t, "f1", r.Folder, "folder should come from the cache")
				assert.Equal(t, []Entry{
					{Path: "a.png", Kind: KindCached, AssetID: "1", URL: "https://cdn/a"},
					{Path: "b.mp4", Kind: KindPending},
					{Path: "gone.png", Kind: KindStale, AssetID: "2", URL: "https://cdn/g"},
				}, r.Entries, "entries should be classified")
				assert.Equal(t, "⏳ 1 cached, 1 pending, 1 stale", r.Summary(), "summary should count kinds")
			},
		},
		{
			name: "invalid_cache",
			note: "---\nrentryEmbedCache: not json\n---\ntext",
			check: func(t *testing.T, r *Report) {
				assert.True(t, r.CacheInvalid, "unparsable cache should be flagged")
				assert.Empty(t, r.Entries, "no embeds should be listed")
				assert.Equal(t, "✅ No mirrored embeds", r.Summary(), "summary should say nothing is mirrored")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, n := testNote(t, map[string]string{
				"note.md": tt.note,
				"a.png":   "png",
				"b.mp4":   "mp4",
			}, "note.md")
			tt.check(t, Build(n, v, nil))
		})
	}
}

func TestFormatEntry(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "cached",
			entry: Entry{Path: "a.png", Kind: KindCached, URL: "https://cdn/a"},
			want:  "    ✓ a.png                               cached   https://cdn/a",
		},
		{
			name:  "pending",
			entry: Entry{Path: "b.mp4", Kind: KindPending},
			want:  "    ⟳ b.mp4                               pending",
		},
		{
			name:  "stale",
			entry: Entry{Path: "gone.png", Kind: KindStale},
			want:  "    ✗ gone.png                            stale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatEntry(tt.entry), "formatted entry should match")
		})
	}
}

func TestReportLines(t *testing.T) {
	color.NoColor = true

	r := &Report{Note: "note.md", PasteID: "abc"}
	lines := r.Lines()
	assert.Equal(t, "📄 note.md", lines[0], "header should name the note")
	assert.Equal(t, "⚠️  Paste abc has no edit code", lines[1], "missing edit code should be flagged")
	assert.Equal(t, "✅ No mirrored embeds", lines[len(lines)-1], "summary should come last")
}
