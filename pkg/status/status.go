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
	"github.com/walteh/notepaste/pkg/embed"
	"github.com/walteh/notepaste/pkg/frontmatter"
	"github.com/walteh/notepaste/pkg/state"
	"github.com/walteh/notepaste/pkg/vault"
)

// 📊 EntryKind is where one embed stands against the cache
type EntryKind int

const (
	KindCached  EntryKind = iota // mirrored and still embedded
	KindPending                  // embedded, not mirrored yet
	KindStale                    // mirrored, no longer embedded
)

// String returns a string representation of EntryKind
func (k EntryKind) String() string {
	switch k {
	case KindCached:
		return "cached"
	case KindPending:
		return "pending"
	case KindStale:
		return "stale"
	default:
		return "unknown"
	}
}

// 📄 Entry is one embed in a Report
type Entry struct {
	Path    string    // Vault path of the embedded file
	Kind    EntryKind // Where it stands
	AssetID string    // Remote asset id, cached and stale only
	URL     string    // Mirrored url, cached and stale only
}

// 📋 Report is the local view of one note
type Report struct {
	Note        string
	PasteID     string
	PasteURL    string
	HasEditCode bool
	Folder      string
	// CacheInvalid is set when the cache property exists but does not parse
	CacheInvalid bool
	Entries      []Entry
}

// Published reports whether the note has a paste that can be updated.
func (r *Report) Published() bool {
	return r.PasteID != "" && r.HasEditCode
}

// Count returns the number of entries of kind.
func (r *Report) Count(kind EntryKind) int {
	n := 0
	for _, e := range r.Entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// InSync reports whether a sync would neither upload nor remove anything.
func (r *Report) InSync() bool {
	return r.Count(KindPending) == 0 && r.Count(KindStale) == 0
}

// 🔍 Build compares the note's current embeds with its embed cache.
// Cached and pending entries follow discovery order; stale entries are
// sorted by path.
func Build(note *vault.Note, idx embed.LinkIndex, ignore []string) *Report {
	fm := note.Frontmatter.Values()
	raw := fm.GetString(frontmatter.PropEmbedCache)
	cache := state.ParseEmbedCache(raw)

	r := &Report{
		Note:         note.Path,
		PasteID:      fm.GetString(frontmatter.PropPasteID),
		PasteURL:     fm.GetString(frontmatter.PropPasteURL),
		HasEditCode:  fm.GetString(frontmatter.PropEditCode) != "",
		CacheInvalid: raw != "" && cache == nil,
	}
	if cache != nil {
		r.Folder = cache.Folder
	}

	_, unique := embed.Discover(note, idx, ignore)
	for _, p := range unique {
		if rec, ok := cache.Get(p); ok {
			r.Entries = append(r.Entries, Entry{Path: p, Kind: KindCached, AssetID: rec.ID, URL: rec.URL})
			continue
		}
		r.Entries = append(r.Entries, Entry{Path: p, Kind: KindPending})
	}

	stale, _ := embed.Diff(unique, cache)
	for _, s := range stale {
		r.Entries = append(r.Entries, Entry{Path: s.Path, Kind: KindStale, AssetID: s.Record.ID, URL: s.Record.URL})
	}

	return r
}
