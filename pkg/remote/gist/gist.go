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

// Package gist publishes notes as secret GitHub gists.
package gist

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v60/github"
	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/config"
	"github.com/walteh/notepaste/pkg/remote"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/oauth2"
)

const (
	// EditCode is stored in place of a paste edit code; the token authorizes
	// edits.
	EditCode = "gist"

	// FileName is the single file of every gist
	FileName = "note.md"

	description = "published with notepaste"
)

func init() {
	remote.RegisterPasteService(config.PasteProviderGist, func(ctx context.Context, s *config.Settings) (remote.PasteService, error) {
		return New(ctx, Options{Token: s.GitHubToken, Timeout: s.RequestTimeout()})
	})
}

// 🔧 Options configures a Client.
type Options struct {
	Token string
	// BaseURL overrides the public GitHub API
	BaseURL string
	// Timeout bounds each API request; zero means no bound
	Timeout time.Duration
}

// 📝 Client is a remote.PasteService backed by gists.
type Client struct {
	gh *github.Client
}

var _ remote.PasteService = (*Client)(nil)

// 🏭 New creates a gist client authenticated with opts.Token.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.Token == "" {
		return nil, errors.New("github token is required for gist pastes")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
	hc := oauth2.NewClient(ctx, ts)
	hc.Timeout = opts.Timeout
	gh := github.NewClient(hc)

	if opts.BaseURL != "" {
		base, err := url.Parse(strings.TrimSuffix(opts.BaseURL, "/") + "/")
		if err != nil {
			return nil, errors.Errorf("parsing base url: %w", err)
		}
		gh.BaseURL = base
	}

	return &Client{gh: gh}, nil
}

func files(text string) map[github.GistFilename]github.GistFile {
	return map[github.GistFilename]github.GistFile{
		FileName: {Filename: github.String(FileName), Content: github.String(text)},
	}
}

// 🆕 Create publishes text as a secret gist.
func (c *Client) Create(ctx context.Context, text string) (remote.Paste, error) {
	g, _, err := c.gh.Gists.Create(ctx, &github.Gist{
		Description: github.String(description),
		Public:      github.Bool(false),
		Files:       files(text),
	})
	if err != nil {
		return remote.Paste{}, errors.Errorf("Failed to create paste: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("gist", g.GetID()).Msg("created gist")
	return remote.Paste{ID: g.GetID(), URL: g.GetHTMLURL(), EditCode: EditCode}, nil
}

// ✏️ Update replaces the gist's note file.
func (c *Client) Update(ctx context.Context, id, _, text string) error {
	if _, _, err := c.gh.Gists.Edit(ctx, id, &github.Gist{Files: files(text)}); err != nil {
		return errors.Errorf("Failed to update paste: %w", err)
	}
	return nil
}

// 🗑️ Remove deletes the gist.
func (c *Client) Remove(ctx context.Context, id, _ string) error {
	if _, err := c.gh.Gists.Delete(ctx, id); err != nil {
		return errors.Errorf("Failed to remove paste: %w", err)
	}
	return nil
}
