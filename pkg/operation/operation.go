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

package operation

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/config"
	"github.com/walteh/notepaste/pkg/embed"
	"github.com/walteh/notepaste/pkg/frontmatter"
	"github.com/walteh/notepaste/pkg/log"
	"github.com/walteh/notepaste/pkg/notice"
	"github.com/walteh/notepaste/pkg/remote"
	"github.com/walteh/notepaste/pkg/status"
	"github.com/walteh/notepaste/pkg/transform"
	"github.com/walteh/notepaste/pkg/vault"
	"gitlab.com/tozd/go/errors"
)

// Precondition failures. Commands check them before any network call.
var (
	ErrAlreadyPublished = errors.Base("note already has a paste")
	ErrNotPublished     = errors.Base("note has no paste id and edit code")
	ErrNothingToPurge   = errors.Base("note has no leftover embed cache")
)

// 📣 NotifiedError is a command failure already shown to the user.
type NotifiedError struct {
	Err error
}

func (e *NotifiedError) Error() string { return e.Err.Error() }
func (e *NotifiedError) Unwrap() error { return e.Err }

// 🎯 Operator defines the commands notepaste runs against one note
type Operator interface {
	// Create publishes a note that has no paste yet
	Create(ctx context.Context, notePath string) error
	// Update republishes a note over its existing paste
	Update(ctx context.Context, notePath string) error
	// Delete removes the paste and every mirrored embed, after confirmation
	Delete(ctx context.Context, notePath string) error
	// Purge removes embeds left behind by a deleted paste, after confirmation
	Purge(ctx context.Context, notePath string) error
	// Status is a local operation describing the note's paste and embeds
	Status(ctx context.Context, notePath string) (*status.Report, error)
}

// 📚 Vault is the note storage the operator reads and writes
type Vault interface {
	embed.Files
	embed.LinkIndex
	Note(ctx context.Context, path string) (*vault.Note, error)
	ProcessFrontmatter(ctx context.Context, path string, fn func(fm *frontmatter.Map) error) error
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Settings are the loaded notepaste settings
	Settings *config.Settings
	// Vault holds the notes
	Vault Vault
	// Pastes publishes note text
	Pastes remote.PasteService
	// Assets mirrors embeds; nil when no asset store is configured
	Assets remote.AssetStore
	// Notifier shows notices and prompts
	Notifier notice.Notifier
	// Logger prints per-embed lines; may be nil
	Logger *log.Logger
	// NewFolder names new asset folders; defaults to a uuid
	NewFolder func() string
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Settings == nil {
		return nil, errors.Errorf("settings are required")
	}
	if opts.Vault == nil {
		return nil, errors.Errorf("vault is required")
	}
	if opts.Pastes == nil {
		return nil, errors.Errorf("paste service is required")
	}
	if opts.Notifier == nil {
		return nil, errors.Errorf("notifier is required")
	}

	op := &operator{
		settings: opts.Settings,
		vault:    opts.Vault,
		pastes:   opts.Pastes,
		notifier: opts.Notifier,
	}

	if opts.Assets != nil {
		engine, err := embed.New(embed.Options{
			Store:       opts.Assets,
			Files:       opts.Vault,
			Index:       opts.Vault,
			Ignore:      opts.Settings.Embeds.Ignore,
			Concurrency: opts.Settings.Embeds.UploadConcurrency,
			Logger:      opts.Logger,
			NewFolder:   opts.NewFolder,
		})
		if err != nil {
			return nil, errors.Errorf("creating embed engine: %w", err)
		}
		op.engine = engine
	}

	return op, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	settings *config.Settings
	vault    Vault
	pastes   remote.PasteService
	notifier notice.Notifier
	engine   *embed.Engine
}

// 🔑 props are the notepaste properties of a note
type props struct {
	pasteID    string
	editCode   string
	pasteURL   string
	embedCache string
}

func readProps(n *vault.Note) props {
	fm := n.Frontmatter.Values()
	return props{
		pasteID:    fm.GetString(frontmatter.PropPasteID),
		editCode:   fm.GetString(frontmatter.PropEditCode),
		pasteURL:   fm.GetString(frontmatter.PropPasteURL),
		embedCache: fm.GetString(frontmatter.PropEmbedCache),
	}
}

func (p props) published() bool {
	return p.pasteID != "" && p.editCode != ""
}

func (o *operator) load(ctx context.Context, notePath string) (*vault.Note, props, error) {
	n, err := o.vault.Note(ctx, notePath)
	if err != nil {
		return nil, props{}, errors.Errorf("reading note: %w", err)
	}
	return n, readProps(n), nil
}

func (o *operator) transformOptions() transform.Options {
	return transform.Options{
		IncludeFrontmatter:         o.settings.IncludeFrontmatter,
		SkipEmptyFrontmatterValues: o.settings.SkipEmptyFrontmatterValues,
		ReplaceEmbeds:              o.settings.ReplaceEmbeds,
	}
}

// embedsEnabled reports whether embed mirroring can run at all.
func (o *operator) embedsEnabled() bool {
	return o.settings.ReplaceEmbeds && o.settings.HasAssetCredentials() && o.engine != nil
}

// writeFrontmatter applies fn to the note's frontmatter. The remote side
// effects already happened, so the write ignores cancellation and a failed
// write is logged and dropped.
func (o *operator) writeFrontmatter(ctx context.Context, notePath string, fn func(fm *frontmatter.Map) error) {
	if err := o.vault.ProcessFrontmatter(context.WithoutCancel(ctx), notePath, fn); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("note", notePath).Msg("writing frontmatter failed")
	}
}

// fail shows err and marks it as shown.
func (o *operator) fail(ctx context.Context, err error) error {
	o.notifier.Error(ctx, notice.ErrorMessage(err))
	return &NotifiedError{Err: err}
}

// 📊 Status builds the local report for a note.
func (o *operator) Status(ctx context.Context, notePath string) (*status.Report, error) {
	n, err := o.vault.Note(ctx, notePath)
	if err != nil {
		return nil, errors.Errorf("reading note: %w", err)
	}
	r := status.Build(n, o.vault, o.settings.Embeds.Ignore)

	zerolog.Ctx(ctx).Debug().
		Str("note", notePath).
		Bool("published", r.Published()).
		Int("embeds", len(r.Entries)).
		Msg("built status report")

	return r, nil
}
