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

// Package remote holds the contracts notepaste has with outside services: a
// paste service that publishes the rendered note and an asset store that
// mirrors embedded media. Implementations register themselves by name.
package remote

import (
	"context"
	"sort"
	"strings"

	"github.com/walteh/notepaste/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// MaxDeleteBatch is the ceiling on ids per DeleteByAssetID call, whatever a
// store reports.
const MaxDeleteBatch = 100

// 📝 Paste identifies a published paste.
type Paste struct {
	ID       string
	URL      string
	EditCode string
}

// 📤 PasteService publishes note text.
type PasteService interface {
	// Create publishes text as a new paste
	Create(ctx context.Context, text string) (Paste, error)
	// Update replaces the text of an existing paste
	Update(ctx context.Context, id, editCode, text string) error
	// Remove deletes a paste
	Remove(ctx context.Context, id, editCode string) error
}

// 📦 UploadInput is one file to mirror.
type UploadInput struct {
	// Name is the vault path, used for the extension, object keys and logging
	Name    string
	Content []byte
	// Folder groups every asset of one note
	Folder string
}

// 🖼️ Asset is a mirrored file as the store reports it.
type Asset struct {
	ID   string
	URL  string
	Type string
}

// 🗑️ DeleteResult reports per-id outcomes of a batch delete. An id counts as
// deleted when its status is non-empty.
type DeleteResult struct {
	Deleted map[string]string
	Partial bool
}

// IsDeleted reports whether the store confirmed the deletion of id.
func (r DeleteResult) IsDeleted(id string) bool {
	return r.Deleted[id] != ""
}

// ☁️ AssetStore mirrors embedded media.
type AssetStore interface {
	// Upload stores one file and returns its public descriptor
	Upload(ctx context.Context, in UploadInput) (Asset, error)
	// DeleteByAssetID removes up to MaxDeleteBatch assets in one request
	DeleteByAssetID(ctx context.Context, ids []string) (DeleteResult, error)
	// MaxDeleteBatch is the largest id list DeleteByAssetID accepts
	MaxDeleteBatch() int
}

// 🏭 PasteFactory builds a paste service from settings
type PasteFactory func(ctx context.Context, s *config.Settings) (PasteService, error)

// 🏭 AssetFactory builds an asset store from settings
type AssetFactory func(ctx context.Context, s *config.Settings) (AssetStore, error)

var (
	pasteRegistry = map[string]PasteFactory{}
	assetRegistry = map[string]AssetFactory{}
)

// 📝 RegisterPasteService registers a paste service factory
func RegisterPasteService(name string, factory PasteFactory) {
	pasteRegistry[name] = factory
}

// 📝 RegisterAssetStore registers an asset store factory
func RegisterAssetStore(name string, factory AssetFactory) {
	assetRegistry[name] = factory
}

// 🎯 NewPasteService builds the paste service named by s.PasteProvider
func NewPasteService(ctx context.Context, s *config.Settings) (PasteService, error) {
	factory, ok := pasteRegistry[s.PasteProvider]
	if !ok {
		return nil, errors.Errorf("paste provider %s not found, options: %s", s.PasteProvider, strings.Join(names(pasteRegistry), ", "))
	}
	return factory(ctx, s)
}

// 🎯 NewAssetStore builds the asset store named by s.AssetProvider
func NewAssetStore(ctx context.Context, s *config.Settings) (AssetStore, error) {
	factory, ok := assetRegistry[s.AssetProvider]
	if !ok {
		return nil, errors.Errorf("asset provider %s not found, options: %s", s.AssetProvider, strings.Join(names(assetRegistry), ", "))
	}
	return factory(ctx, s)
}

func names[T any](m map[string]T) []string {
	options := make([]string, 0, len(m))
	for k := range m {
		options = append(options, k)
	}
	sort.Strings(options)
	return options
}
