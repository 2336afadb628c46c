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
Package embed decides which of a note's embedded files are mirrored to an
asset store, and reconciles the note's embed cache with the store.

	  note embeds ──► Discover ──► unique paths
	                                   │
	  previous cache ──────────────► Diff ──► stale ──► RemoveStale (batched)
	                                   │
	                                   └────► upload ──► Upload (queued)
	                                                        │
	                        merge(uploaded, kept, failed removals) ──► new cache

A failed removal stays in the cache and a failed upload is absent from it,
so the next sync retries both.
*/
package embed

import (
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/walteh/notepaste/pkg/vault"
)

// SupportedExtensions are the media types mirrored to the asset store.
var SupportedExtensions = map[string]struct{}{
	"jpeg": {}, "jpg": {}, "png": {}, "gif": {}, "apng": {}, "tiff": {}, "webp": {}, "avif": {}, "heic": {},
	"mp4": {}, "mpeg": {}, "avi": {}, "webm": {}, "mov": {}, "mkv": {},
}

var extRe = regexp.MustCompile(`\.([a-zA-Z]+)$`)

// 🖼️ ResolvedEmbed is an embed link whose target is a mirrorable vault file.
type ResolvedEmbed struct {
	Start       int
	End         int
	DisplayText string
	Link        string
	FullPath    string
	Original    string
}

// LinkIndex resolves a note's links against the vault.
type LinkIndex interface {
	Resolve(link, sourcePath string) (string, bool)
	ResolvedLinks(n *vault.Note) map[string]int
}

// Supported reports whether a link's extension is mirrorable. The match is
// case sensitive: "IMG.PNG" is not mirrored.
func Supported(link string) bool {
	m := extRe.FindStringSubmatch(link)
	if m == nil {
		return false
	}
	_, ok := SupportedExtensions[m[1]]
	return ok
}

// 🔍 Discover returns the note's embeds that resolve to an existing file
// with a supported extension, in text order, plus their distinct paths in
// first-seen order. Paths matching an ignore glob are left out, and so are
// embeds written inside the frontmatter block.
func Discover(note *vault.Note, idx LinkIndex, ignore []string) ([]ResolvedEmbed, []string) {
	resolved := idx.ResolvedLinks(note)

	var embeds []ResolvedEmbed
	var unique []string
	seen := map[string]struct{}{}

	for _, l := range note.Embeds() {
		if note.Frontmatter != nil && l.Start < note.Frontmatter.EndOffset() {
			continue
		}
		full, ok := idx.Resolve(l.Link, note.Path)
		if !ok {
			continue
		}
		if _, ok := resolved[full]; !ok {
			continue
		}
		if !Supported(l.Link) || ignored(full, ignore) {
			continue
		}

		embeds = append(embeds, ResolvedEmbed{
			Start:       l.Start,
			End:         l.End,
			DisplayText: l.DisplayText,
			Link:        l.Link,
			FullPath:    full,
			Original:    l.Original,
		})
		if _, dup := seen[full]; !dup {
			seen[full] = struct{}{}
			unique = append(unique, full)
		}
	}

	return embeds, unique
}

func ignored(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}
