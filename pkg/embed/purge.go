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

	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/state"
)

// 🧹 Purge removes every asset in prev. The returned cache holds only the
// entries whose removal failed, under prev's folder; safeToRemove reports
// that it is empty and the cache property can be dropped.
func (e *Engine) Purge(ctx context.Context, prev *state.EmbedCache) (safeToRemove bool, remaining *state.EmbedCache) {
	stale, _ := Diff(nil, prev)
	_, rejected := e.RemoveStale(ctx, stale)

	remaining = &state.EmbedCache{PathMap: map[string]state.AssetRecord{}}
	if prev.FolderPresent() {
		remaining.Folder = prev.Folder
		remaining.HasFolder = true
	}
	for _, r := range rejected {
		remaining.Put(r.Path, r.Record)
	}

	zerolog.Ctx(ctx).Debug().
		Int("purged", len(stale)-len(rejected)).
		Int("remaining", remaining.Len()).
		Msg("purged embeds")

	return remaining.Len() == 0, remaining
}
