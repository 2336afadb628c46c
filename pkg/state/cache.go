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

// Package state holds the embed cache persisted alongside each note.
//
// The cache maps a vault path to the remote asset mirroring it. It lives as a
// JSON string in the note's frontmatter and is read once at the start of a
// sync and written once at the end.
package state

import (
	"encoding/json"
	"sort"

	"github.com/walteh/notepaste/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// AssetRecord describes one uploaded asset.
type AssetRecord struct {
	// ID is the remote asset identifier, required for deletion
	ID string `json:"id"`
	// URL is substituted into rendered output
	URL string `json:"url"`
	// Type is the remote resource category (image, video, ...)
	Type string `json:"type"`
}

// EmbedCache is the per-note mirror state.
type EmbedCache struct {
	PathMap map[string]AssetRecord
	// Folder is the remote namespace new uploads are grouped under
	Folder string
	// HasFolder records that a folder was stored, even an empty one
	HasFolder bool
}

type wireCache struct {
	PathMap map[string]AssetRecord `json:"pathMap"`
	Folder  *string                `json:"folder,omitempty"`
}

// 🏭 NewEmbedCache creates an empty cache for folder.
func NewEmbedCache(folder string) *EmbedCache {
	return &EmbedCache{
		PathMap:   map[string]AssetRecord{},
		Folder:    folder,
		HasFolder: true,
	}
}

// FolderPresent reports whether the cache carries a folder, so that an
// empty stored folder is reused rather than replaced.
func (c *EmbedCache) FolderPresent() bool {
	return c != nil && (c.HasFolder || c.Folder != "")
}

// Len returns the number of cached paths; a nil cache is empty.
func (c *EmbedCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.PathMap)
}

// Get returns the record cached for path.
func (c *EmbedCache) Get(path string) (AssetRecord, bool) {
	if c == nil {
		return AssetRecord{}, false
	}
	rec, ok := c.PathMap[path]
	return rec, ok
}

// Put sets the record for path.
func (c *EmbedCache) Put(path string, rec AssetRecord) {
	if c.PathMap == nil {
		c.PathMap = map[string]AssetRecord{}
	}
	c.PathMap[path] = rec
}

// Paths returns the cached paths in lexical order.
func (c *EmbedCache) Paths() []string {
	if c == nil {
		return nil
	}
	paths := make([]string, 0, len(c.PathMap))
	for p := range c.PathMap {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// 📝 Marshal serializes the cache for storage in a frontmatter property.
func (c *EmbedCache) Marshal() (string, error) {
	if c == nil {
		return "", errors.New("nil embed cache")
	}
	out := wireCache{PathMap: c.PathMap}
	if out.PathMap == nil {
		out.PathMap = map[string]AssetRecord{}
	}
	if c.FolderPresent() {
		folder := c.Folder
		out.Folder = &folder
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", errors.Errorf("marshaling embed cache: %w", err)
	}
	return string(data), nil
}

// 🔍 ParseEmbedCache decodes a persisted cache. Any malformed input yields
// nil, which callers treat exactly like an empty cache.
//
// pathMap must be an object whose values carry string id, url and type;
// unknown keys are dropped. folder, when present, must be a string.
func ParseEmbedCache(raw string) *EmbedCache {
	parsed, ok := text.TryParseJSON(raw)
	if !ok || !text.IsRecord(parsed) {
		return nil
	}
	obj := parsed.(map[string]any)

	rawPathMap, ok := obj["pathMap"].(map[string]any)
	if !ok {
		return nil
	}

	cache := &EmbedCache{PathMap: make(map[string]AssetRecord, len(rawPathMap))}
	for path, v := range rawPathMap {
		rec, ok := parseAssetRecord(v)
		if !ok {
			return nil
		}
		cache.PathMap[path] = rec
	}

	if f, present := obj["folder"]; present {
		folder, ok := f.(string)
		if !ok {
			return nil
		}
		cache.Folder = folder
		cache.HasFolder = true
	}

	return cache
}

func parseAssetRecord(v any) (AssetRecord, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return AssetRecord{}, false
	}
	id, ok1 := m["id"].(string)
	url, ok2 := m["url"].(string)
	typ, ok3 := m["type"].(string)
	if !ok1 || !ok2 || !ok3 {
		return AssetRecord{}, false
	}
	return AssetRecord{ID: id, URL: url, Type: typ}, true
}
