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

package frontmatter

// Properties owned by notepaste. They are bookkeeping, never published.
const (
	PropPasteID    = "rentryId"
	PropEditCode   = "rentryEditCode"
	PropPasteURL   = "rentryUrl"
	PropEmbedCache = "rentryEmbedCache"
)

// PluginProps lists every notepaste-owned property.
var PluginProps = []string{PropPasteID, PropEditCode, PropPasteURL, PropEmbedCache}

// 🧹 RemovePluginProps deletes notepaste bookkeeping from m. With
// keepEmbedCache the embed cache survives, since purging owns its removal.
func RemovePluginProps(m *Map, keepEmbedCache bool) {
	for _, key := range PluginProps {
		if keepEmbedCache && key == PropEmbedCache {
			continue
		}
		m.Delete(key)
	}
}

// 🧹 RemoveEmbedCache deletes only the embed cache property.
func RemoveEmbedCache(m *Map) {
	m.Delete(PropEmbedCache)
}

// 🧹 RemoveEmptyProps drops null, empty string and empty array values.
func RemoveEmptyProps(m *Map) {
	for _, key := range m.Keys() {
		if v, _ := m.Get(key); v.IsEmpty() {
			m.Delete(key)
		}
	}
}
