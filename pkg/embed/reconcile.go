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

package embed

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/log"
	"github.com/walteh/notepaste/pkg/remote"
	"github.com/walteh/notepaste/pkg/state"
	"github.com/walteh/notepaste/pkg/vault"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// Files is the read side of the vault the engine needs.
type Files interface {
	Exists(path string) bool
	ReadBinary(ctx context.Context, path string) ([]byte, error)
}

// 🔧 Options configures an Engine.
type Options struct {
	Store remote.AssetStore
	Files Files
	Index LinkIndex
	// Ignore holds doublestar globs of vault paths never mirrored
	Ignore []string
	// Concurrency bounds parallel uploads; 0 means 1
	Concurrency int
	// Logger receives one console line per embed; may be nil
	Logger *log.Logger
	// NewFolder names the asset folder of a note seen for the first time
	NewFolder func() string
}

// ⚙️ Engine reconciles embed caches with an asset store.
type Engine struct {
	store       remote.AssetStore
	files       Files
	index       LinkIndex
	ignore      []string
	concurrency int
	logger      *log.Logger
	newFolder   func() string
}

// 🏭 New validates opts and returns an Engine.
func New(opts Options) (*Engine, error) {
	if opts.Store == nil {
		return nil, errors.New("asset store is required")
	}
	if opts.Files == nil {
		return nil, errors.New("vault files are required")
	}
	if opts.Index == nil {
		return nil, errors.New("link index is required")
	}
	if opts.Concurrency < 0 {
		return nil, errors.Errorf("concurrency must be positive: got %d", opts.Concurrency)
	}
	if opts.Concurrency == 0 {
		opts.Concurrency = 1
	}
	if opts.NewFolder == nil {
		opts.NewFolder = uuid.NewString
	}
	return &Engine{
		store:       opts.Store,
		files:       opts.Files,
		index:       opts.Index,
		ignore:      opts.Ignore,
		concurrency: opts.Concurrency,
		logger:      opts.Logger,
		newFolder:   opts.NewFolder,
	}, nil
}

// 🗂️ StaleEmbed is a cached asset no longer embedded.
type StaleEmbed struct {
	Path   string
	Record state.AssetRecord
}

// ✅ Uploaded is a successful upload.
type Uploaded struct {
	Path  string
	Asset remote.Asset
}

// 📦 Result is the outcome of one Sync.
type Result struct {
	Cache         *state.EmbedCache
	Embeds        []ResolvedEmbed
	HasRejections bool
}

// 🔀 Diff splits the previous cache against the current embed paths: stale
// entries (cached, no longer embedded) sorted by path, and paths to upload
// (embedded, not cached) in discovery order.
func Diff(unique []string, prev *state.EmbedCache) ([]StaleEmbed, []string) {
	current := make(map[string]struct{}, len(unique))
	for _, p := range unique {
		current[p] = struct{}{}
	}

	var stale []StaleEmbed
	for _, p := range prev.Paths() {
		if _, ok := current[p]; ok {
			continue
		}
		rec, _ := prev.Get(p)
		stale = append(stale, StaleEmbed{Path: p, Record: rec})
	}

	var upload []string
	for _, p := range unique {
		if p == "" {
			continue
		}
		if _, ok := prev.Get(p); ok {
			continue
		}
		upload = append(upload, p)
	}

	return stale, upload
}

func (e *Engine) batchSize() int {
	n := e.store.MaxDeleteBatch()
	if n <= 0 || n > remote.MaxDeleteBatch {
		n = remote.MaxDeleteBatch
	}
	return n
}

// 🗑️ RemoveStale deletes stale assets in sequential batches. An entry is
// fulfilled only when the store confirms its id; a failed request rejects
// its whole batch.
func (e *Engine) RemoveStale(ctx context.Context, stale []StaleEmbed) (fulfilled, rejected []StaleEmbed) {
	if len(stale) == 0 {
		return nil, nil
	}
	logger := zerolog.Ctx(ctx)
	size := e.batchSize()

	for start := 0; start < len(stale); start += size {
		end := min(start+size, len(stale))
		batch := stale[start:end]

		ids := make([]string, len(batch))
		for i, s := range batch {
			ids[i] = s.Record.ID
		}

		res, err := e.store.DeleteByAssetID(ctx, ids)
		if err != nil {
			logger.Warn().Err(err).Int("batch", len(batch)).Msg("deleting stale embeds failed")
			for _, s := range batch {
				e.logger.LogEmbedOperation(ctx, log.EmbedOperation{Path: s.Path, Status: log.EmbedFailed, AssetID: s.Record.ID, Detail: err.Error()})
			}
			rejected = append(rejected, batch...)
			continue
		}

		for _, s := range batch {
			if res.IsDeleted(s.Record.ID) {
				fulfilled = append(fulfilled, s)
				e.logger.LogEmbedOperation(ctx, log.EmbedOperation{Path: s.Path, Status: log.EmbedRemoved, AssetID: s.Record.ID})
				continue
			}
			rejected = append(rejected, s)
			e.logger.LogEmbedOperation(ctx, log.EmbedOperation{Path: s.Path, Status: log.EmbedFailed, AssetID: s.Record.ID, Detail: "not deleted"})
		}

		logger.Debug().Int("batch", len(batch)).Bool("partial", res.Partial).Msg("deleted stale embeds")
	}

	return fulfilled, rejected
}

// 📤 Upload mirrors paths into folder through a queue bounded by the
// configured concurrency. A path missing from the vault is skipped; a failed
// read or upload rejects that path only. Results keep the order of paths.
func (e *Engine) Upload(ctx context.Context, paths []string, folder string) (fulfilled []Uploaded, rejected []string) {
	logger := zerolog.Ctx(ctx)

	results := make([]uploadOutcome, len(paths))

	// failures are recorded per path, so the group never returns an error
	var g errgroup.Group
	g.SetLimit(e.concurrency)

	for i, p := range paths {
		g.Go(func() error {
			results[i] = e.uploadOne(ctx, p, folder)
			return nil
		})
	}
	_ = g.Wait()

	for i, p := range paths {
		r := results[i]
		switch {
		case r.skipped:
			logger.Debug().Str("embed", p).Msg("embed missing from vault, skipping upload")
			e.logger.LogEmbedOperation(ctx, log.EmbedOperation{Path: p, Status: log.EmbedSkipped})
		case r.err != nil:
			logger.Warn().Err(r.err).Str("embed", p).Msg("uploading embed failed")
			e.logger.LogEmbedOperation(ctx, log.EmbedOperation{Path: p, Status: log.EmbedFailed, Detail: r.err.Error()})
			rejected = append(rejected, p)
		default:
			e.logger.LogEmbedOperation(ctx, log.EmbedOperation{Path: p, Status: log.EmbedUploaded, AssetID: r.asset.ID, Detail: r.asset.URL})
			fulfilled = append(fulfilled, Uploaded{Path: p, Asset: r.asset})
		}
	}

	return fulfilled, rejected
}

type uploadOutcome struct {
	asset   remote.Asset
	skipped bool
	err     error
}

func (e *Engine) uploadOne(ctx context.Context, p, folder string) (out uploadOutcome) {
	if p == "" || !e.files.Exists(p) {
		out.skipped = true
		return out
	}

	content, err := e.files.ReadBinary(ctx, p)
	if err != nil {
		out.err = errors.Errorf("reading %s: %w", p, err)
		return out
	}

	asset, err := e.store.Upload(ctx, remote.UploadInput{Name: p, Content: content, Folder: folder})
	if err != nil {
		out.err = err
		return out
	}
	out.asset = asset
	return out
}

// 🔄 Sync reconciles prev with the note's current embeds: stale assets are
// removed, new ones uploaded, and the merged cache returned. Remote failures
// never surface as an error; they set HasRejections.
func (e *Engine) Sync(ctx context.Context, note *vault.Note, prev *state.EmbedCache) (*Result, error) {
	if note == nil {
		return nil, errors.New("note is required")
	}

	var folder string
	if prev.FolderPresent() {
		folder = prev.Folder
	} else {
		folder = e.newFolder()
	}

	embeds, unique := Discover(note, e.index, e.ignore)
	stale, upload := Diff(unique, prev)

	zerolog.Ctx(ctx).Debug().
		Str("note", note.Path).
		Str("folder", folder).
		Int("embeds", len(embeds)).
		Int("stale", len(stale)).
		Int("upload", len(upload)).
		Msg("syncing embeds")

	// stale removal completes before any upload starts
	_, rejectedRemovals := e.RemoveStale(ctx, stale)
	uploaded, rejectedUploads := e.Upload(ctx, upload, folder)

	next := state.NewEmbedCache(folder)
	for _, u := range uploaded {
		next.Put(u.Path, state.AssetRecord{ID: u.Asset.ID, URL: u.Asset.URL, Type: u.Asset.Type})
	}
	for _, r := range rejectedRemovals {
		next.Put(r.Path, r.Record)
	}
	for _, p := range unique {
		if rec, ok := prev.Get(p); ok {
			next.Put(p, rec)
			e.logger.LogEmbedOperation(ctx, log.EmbedOperation{Path: p, Status: log.EmbedKept, AssetID: rec.ID})
		}
	}

	return &Result{
		Cache:         next,
		Embeds:        embeds,
		HasRejections: len(rejectedUploads) > 0 || len(rejectedRemovals) > 0,
	}, nil
}
