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
	"github.com/walteh/notepaste/pkg/embed"
	"github.com/walteh/notepaste/pkg/frontmatter"
	"github.com/walteh/notepaste/pkg/state"
	"github.com/walteh/notepaste/pkg/vault"
)

// 🔄 syncEmbeds mirrors the note's embeds against prev. A nil cache with
// hasRejections set means nothing was synced.
func (o *operator) syncEmbeds(ctx context.Context, n *vault.Note, prev *state.EmbedCache) (*state.EmbedCache, []embed.ResolvedEmbed, bool) {
	if !o.embedsEnabled() {
		return nil, nil, true
	}

	res, err := o.engine.Sync(ctx, n, prev)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("note", n.Path).Msg("embed sync failed")
		return nil, nil, true
	}
	return res.Cache, res.Embeds, res.HasRejections
}

// notifySync reports rejected embeds. Nothing is reported while embed
// mirroring is switched off.
func (o *operator) notifySync(ctx context.Context, cache *state.EmbedCache, hasRejections bool) {
	if !hasRejections || !o.settings.ReplaceEmbeds {
		return
	}
	if cache == nil {
		o.notifier.Error(ctx, "Failed to sync embeds")
		return
	}
	o.notifier.Error(ctx, "Could not sync some embeds")
}

// writeEmbedCache stores cache on the note; nil leaves the property alone.
func (o *operator) writeEmbedCache(ctx context.Context, notePath string, cache *state.EmbedCache) {
	if cache == nil {
		return
	}
	raw, err := cache.Marshal()
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("note", notePath).Msg("encoding embed cache failed")
		return
	}
	o.writeFrontmatter(ctx, notePath, func(fm *frontmatter.Map) error {
		fm.Set(frontmatter.PropEmbedCache, frontmatter.String(raw))
		return nil
	})
}

// 🧹 purgeEmbeds removes every asset in prev and persists the outcome: the
// cache property is dropped when everything went, otherwise the leftovers
// are written back.
func (o *operator) purgeEmbeds(ctx context.Context, notePath string, prev *state.EmbedCache) bool {
	if !o.embedsEnabled() {
		return false
	}

	safe, remaining := o.engine.Purge(ctx, prev)
	if safe {
		o.writeFrontmatter(ctx, notePath, func(fm *frontmatter.Map) error {
			frontmatter.RemoveEmbedCache(fm)
			return nil
		})
		return true
	}

	o.writeEmbedCache(ctx, notePath, remaining)
	return false
}

func (o *operator) notifyPurge(ctx context.Context, safe bool) {
	if safe || !o.settings.ReplaceEmbeds {
		return
	}
	o.notifier.Error(ctx, "Not all embeds were purged successfully")
}
