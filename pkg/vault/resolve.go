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

package vault

import (
	"path"
	"strings"
)

// 🧭 Resolve maps a link target to a vault path the way the editor does:
// an exact vault path first, then a path relative to the linking note, then
// the shortest indexed path with a matching suffix. Subpaths ("#heading")
// are ignored and a missing extension implies ".md".
func (v *Vault) Resolve(link, sourcePath string) (string, bool) {
	target, _, _ := strings.Cut(link, "#")
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}
	target = strings.TrimPrefix(target, "/")

	names := []string{target}
	if path.Ext(target) == "" {
		names = append(names, target+".md")
	}

	for _, name := range names {
		if p := path.Clean(name); v.Exists(p) {
			return p, true
		}
		if p := path.Join(path.Dir(sourcePath), name); v.Exists(p) {
			return p, true
		}
	}

	for _, name := range names {
		if p, ok := v.shortestSuffixMatch(path.Clean(name)); ok {
			return p, true
		}
	}
	return "", false
}

func (v *Vault) shortestSuffixMatch(name string) (string, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	best := ""
	for _, f := range v.files {
		if f != name && !strings.HasSuffix(f, "/"+name) {
			continue
		}
		// files is sorted, so ties keep the lexically first path
		if best == "" || len(f) < len(best) {
			best = f
		}
	}
	return best, best != ""
}

// 🕸️ ResolvedLinks returns the set of vault paths the note links to
// successfully, counting each occurrence. Broken links are absent.
func (v *Vault) ResolvedLinks(n *Note) map[string]int {
	out := map[string]int{}
	for _, l := range n.Links {
		if p, ok := v.Resolve(l.Link, n.Path); ok {
			out[p]++
		}
	}
	return out
}
