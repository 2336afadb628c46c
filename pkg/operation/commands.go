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
	"fmt"

	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/frontmatter"
	"github.com/walteh/notepaste/pkg/notice"
	"github.com/walteh/notepaste/pkg/state"
	"github.com/walteh/notepaste/pkg/transform"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📝 Create publishes a note without a paste and records the new paste on it.
func (o *operator) Create(ctx context.Context, notePath string) error {
	n, p, err := o.load(ctx, notePath)
	if err != nil {
		return err
	}
	if p.published() {
		return errors.WithStack(ErrAlreadyPublished)
	}

	stop := o.notifier.Spin(ctx, "Creating paste")

	// a leftover cache belongs to a deleted paste and is not reused
	cache, embeds, rejected := o.syncEmbeds(ctx, n, nil)
	o.notifySync(ctx, cache, rejected)

	text := transform.Document(o.transformOptions(), n, embeds, cache)
	paste, err := o.pastes.Create(ctx, text)
	if err == nil {
		o.writeFrontmatter(ctx, notePath, func(fm *frontmatter.Map) error {
			fm.Set(frontmatter.PropPasteID, frontmatter.String(paste.ID))
			fm.Set(frontmatter.PropPasteURL, frontmatter.String(paste.URL))
			fm.Set(frontmatter.PropEditCode, frontmatter.String(paste.EditCode))
			return nil
		})
	}

	stop()
	o.writeEmbedCache(ctx, notePath, cache)

	if err != nil {
		return o.fail(ctx, err)
	}

	zerolog.Ctx(ctx).Info().Str("note", notePath).Str("id", paste.ID).Msg("paste created")
	o.notifier.Success(ctx, "Paste created", paste.URL)
	return nil
}

// 📤 Update republishes a note over its paste.
func (o *operator) Update(ctx context.Context, notePath string) error {
	n, p, err := o.load(ctx, notePath)
	if err != nil {
		return err
	}
	if !p.published() {
		return errors.WithStack(ErrNotPublished)
	}

	stop := o.notifier.Spin(ctx, "Updating paste")

	cache, embeds, rejected := o.syncEmbeds(ctx, n, state.ParseEmbedCache(p.embedCache))
	o.notifySync(ctx, cache, rejected)

	text := transform.Document(o.transformOptions(), n, embeds, cache)
	err = o.pastes.Update(ctx, p.pasteID, p.editCode, text)

	stop()
	o.writeEmbedCache(ctx, notePath, cache)

	if err != nil {
		return o.fail(ctx, err)
	}

	zerolog.Ctx(ctx).Info().Str("note", notePath).Str("id", p.pasteID).Msg("paste updated")
	o.notifier.Success(ctx, "Paste updated", p.pasteURL)
	return nil
}

// 🗑️ Delete removes the paste and its mirrored embeds once the user confirms.
func (o *operator) Delete(ctx context.Context, notePath string) error {
	n, p, err := o.load(ctx, notePath)
	if err != nil {
		return err
	}
	if !p.published() {
		return errors.WithStack(ErrNotPublished)
	}

	answer, err := o.notifier.Confirm(ctx, fmt.Sprintf("Delete the paste of %s and all of its embeds?", n.Name()))
	if err != nil {
		return errors.Errorf("confirming delete: %w", err)
	}
	if answer != notice.Confirmed {
		zerolog.Ctx(ctx).Debug().Str("note", notePath).Msg("delete cancelled")
		return nil
	}

	stop := o.notifier.Spin(ctx, "Deleting paste")

	var (
		safe      bool
		removeErr error
	)

	// both sides report through their own results, the group never fails
	var g errgroup.Group
	g.Go(func() error {
		safe = o.purgeEmbeds(ctx, notePath, state.ParseEmbedCache(p.embedCache))
		return nil
	})
	g.Go(func() error {
		if removeErr = o.pastes.Remove(ctx, p.pasteID, p.editCode); removeErr != nil {
			return nil
		}
		o.writeFrontmatter(ctx, notePath, func(fm *frontmatter.Map) error {
			frontmatter.RemovePluginProps(fm, true)
			return nil
		})
		return nil
	})
	_ = g.Wait()

	o.notifyPurge(ctx, safe)
	stop()

	if removeErr != nil {
		return o.fail(ctx, removeErr)
	}

	zerolog.Ctx(ctx).Info().Str("note", notePath).Str("id", p.pasteID).Bool("embeds_purged", safe).Msg("paste deleted")
	o.notifier.Success(ctx, "Paste deleted", "")
	return nil
}

// 🧹 Purge removes the embeds a deleted paste left behind once the user
// confirms.
func (o *operator) Purge(ctx context.Context, notePath string) error {
	n, p, err := o.load(ctx, notePath)
	if err != nil {
		return err
	}
	if p.embedCache == "" || p.pasteID != "" {
		return errors.WithStack(ErrNothingToPurge)
	}

	answer, err := o.notifier.Confirm(ctx, fmt.Sprintf("Delete every embed mirrored for %s?", n.Name()))
	if err != nil {
		return errors.Errorf("confirming purge: %w", err)
	}
	if answer != notice.Confirmed {
		zerolog.Ctx(ctx).Debug().Str("note", notePath).Msg("purge cancelled")
		return nil
	}

	stop := o.notifier.Spin(ctx, "Deleting embeds")
	safe := o.purgeEmbeds(ctx, notePath, state.ParseEmbedCache(p.embedCache))
	stop()

	o.notifyPurge(ctx, safe)
	if safe {
		o.notifier.Success(ctx, "Embeds purged", "")
	}
	return nil
}
