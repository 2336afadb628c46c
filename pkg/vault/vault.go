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

/*
Package vault adapts a directory of markdown notes into the host services
notepaste needs: binary reads, frontmatter mutation, link resolution and the
per-note index of embeds and resolved links.

	+-----------+     +-----------------+     +------------------+
	|  Open()   | --> |  file index     | --> | Resolve(link,src)|
	| (walk fs) |     | (doublestar)    |     | ResolvedLinks()  |
	+-----------+     +-----------------+     +------------------+
	      |
	      v
	+-------------------+     +------------------------+
	| Note(path)        | --> | ProcessFrontmatter()   |
	| text + links + fm |     | (atomic rewrite)       |
	+-------------------+     +------------------------+
*/
package vault

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/frontmatter"
	"gitlab.com/tozd/go/errors"
)

// ErrNotFound is returned for paths outside the file index.
var ErrNotFound = errors.Base("file not found in vault")

// 📦 Vault is a note collection rooted at a directory.
type Vault struct {
	root string

	mu    sync.RWMutex
	files []string
	index map[string]struct{}

	// serializes frontmatter read-modify-write cycles
	writeMu sync.Mutex
}

// 🏭 Open indexes every non-hidden file under root.
func Open(ctx context.Context, root string) (*Vault, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Errorf("resolving vault root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Errorf("opening vault %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("vault %s is not a directory", abs)
	}

	v := &Vault{root: abs}
	if err := v.Refresh(ctx); err != nil {
		return nil, err
	}
	return v, nil
}

// Root returns the absolute vault directory.
func (v *Vault) Root() string { return v.root }

// 🔄 Refresh rebuilds the file index.
func (v *Vault) Refresh(ctx context.Context) error {
	var files []string
	err := doublestar.GlobWalk(os.DirFS(v.root), "**", func(p string, d fs.DirEntry) error {
		if p == "." {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return errors.Errorf("indexing vault: %w", err)
	}
	sort.Strings(files)

	index := make(map[string]struct{}, len(files))
	for _, f := range files {
		index[f] = struct{}{}
	}

	v.mu.Lock()
	v.files = files
	v.index = index
	v.mu.Unlock()

	zerolog.Ctx(ctx).Debug().Str("root", v.root).Int("files", len(files)).Msg("indexed vault")
	return nil
}

// Exists reports whether p is an indexed file.
func (v *Vault) Exists(p string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.index[p]
	return ok
}

// Rel converts a filesystem path (absolute or relative to the working
// directory) into a vault path.
func (v *Vault) Rel(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Errorf("resolving %s: %w", p, err)
	}
	rel, err := filepath.Rel(v.root, abs)
	if err != nil || !filepath.IsLocal(rel) {
		return "", errors.Errorf("%s is outside the vault %s", p, v.root)
	}
	return filepath.ToSlash(rel), nil
}

func (v *Vault) abs(p string) (string, error) {
	if !fs.ValidPath(p) {
		return "", errors.Errorf("invalid vault path %q", p)
	}
	return filepath.Join(v.root, filepath.FromSlash(p)), nil
}

// 📥 ReadBinary returns the full contents of a vault file.
func (v *Vault) ReadBinary(ctx context.Context, p string) ([]byte, error) {
	if !v.Exists(p) {
		return nil, errors.WithDetails(ErrNotFound, "path", p)
	}
	full, err := v.abs(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", p, err)
	}
	return data, nil
}

// 📥 ReadText returns a note's text.
func (v *Vault) ReadText(ctx context.Context, p string) (string, error) {
	data, err := v.ReadBinary(ctx, p)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// 📄 Note is a snapshot of one note: text, parsed frontmatter and links.
type Note struct {
	Path        string
	Text        string
	Frontmatter *frontmatter.Document
	Links       []Link
}

// Embeds returns the note's "!" links in text order.
func (n *Note) Embeds() []Link {
	var out []Link
	for _, l := range n.Links {
		if l.Embed {
			out = append(out, l)
		}
	}
	return out
}

// Name is the note's file name.
func (n *Note) Name() string { return path.Base(n.Path) }

// 📄 Note reads and parses a note.
func (v *Vault) Note(ctx context.Context, p string) (*Note, error) {
	text, err := v.ReadText(ctx, p)
	if err != nil {
		return nil, err
	}
	doc, err := frontmatter.Parse(text)
	if err != nil {
		return nil, errors.Errorf("parsing frontmatter of %s: %w", p, err)
	}
	return &Note{
		Path:        p,
		Text:        text,
		Frontmatter: doc,
		Links:       ParseLinks(text),
	}, nil
}

// ✏️ ProcessFrontmatter reads the note fresh, hands its frontmatter to fn and
// writes back whatever fn changed. Properties fn cannot see (nested YAML)
// are preserved.
func (v *Vault) ProcessFrontmatter(ctx context.Context, p string, fn func(fm *frontmatter.Map) error) error {
	v.writeMu.Lock()
	defer v.writeMu.Unlock()

	n, err := v.Note(ctx, p)
	if err != nil {
		return err
	}

	before := n.Frontmatter.Values()
	after := before.Clone()
	if err := fn(after); err != nil {
		return errors.Errorf("mutating frontmatter: %w", err)
	}
	n.Frontmatter.Apply(before, after)

	out, err := n.Frontmatter.Render()
	if err != nil {
		return err
	}

	full, err := v.abs(p)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(full, []byte(out)); err != nil {
		return errors.Errorf("writing %s: %w", p, err)
	}

	zerolog.Ctx(ctx).Debug().Str("note", p).Msg("frontmatter updated")
	return nil
}

func writeFileAtomic(p string, data []byte) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(p); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(p)
	tmp := filepath.Join(dir, fmt.Sprintf(".tmp.%s.%d", filepath.Base(p), os.Getpid()))

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Errorf("syncing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return errors.Errorf("renaming temp file: %w", err)
	}
	return nil
}
