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

// Package rentry publishes notes to rentry.co. Every write first fetches a
// CSRF token from the csrftoken cookie of the site root.
package rentry

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/config"
	"github.com/walteh/notepaste/pkg/remote"
	"github.com/walteh/notepaste/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultBaseURL = "https://rentry.co"
	DotOrgBaseURL  = "https://rentry.org"

	// MaxTextLength is the service's limit on the text field
	MaxTextLength = 200_000

	csrfCookie = "csrftoken"

	// created pastes are hidden from search engines and view counters
	createMetadata = "OPTION_DISABLE_SEARCH_ENGINE=true\nOPTION_DISABLE_VIEWS=true"
)

// ErrNoCSRFToken is returned when the site root sets no csrftoken cookie.
var ErrNoCSRFToken = errors.Base("Could not set CSRF token")

func init() {
	remote.RegisterPasteService(config.PasteProviderRentry, func(ctx context.Context, s *config.Settings) (remote.PasteService, error) {
		base := DefaultBaseURL
		if s.UseRentryDotOrg {
			base = DotOrgBaseURL
		}
		return New(Options{BaseURL: base, Client: &http.Client{Timeout: s.RequestTimeout()}}), nil
	})
}

// 🔧 Options configures a Client.
type Options struct {
	// BaseURL defaults to DefaultBaseURL
	BaseURL string
	// Client defaults to http.DefaultClient
	Client *http.Client
}

// 📝 Client is a remote.PasteService for rentry.
type Client struct {
	base   string
	client *http.Client
}

var _ remote.PasteService = (*Client)(nil)

// 🏭 New returns a Client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	return &Client{base: strings.TrimSuffix(opts.BaseURL, "/"), client: opts.Client}
}

// BaseURL is the site the client talks to.
func (c *Client) BaseURL() string { return c.base }

// 📏 LengthError reports text over MaxTextLength.
type LengthError struct {
	Verb   string
	Length int
}

func (e *LengthError) Error() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Unable to %s paste. Text length exceeds current limit of %d characters (%d characters).",
		e.Verb, MaxTextLength, e.Length)
}

// CheckLength rejects text the service would refuse, before any request.
// Length is counted in code points.
func CheckLength(s, verb string) error {
	n := text.CharacterCount(s)
	if n <= MaxTextLength {
		return nil
	}
	return errors.WithStack(&LengthError{Verb: verb, Length: n})
}

type response struct {
	Status   string          `json:"status"`
	Content  string          `json:"content"`
	Errors   json.RawMessage `json:"errors"`
	URL      string          `json:"url"`
	URLShort string          `json:"url_short"`
	EditCode string          `json:"edit_code"`
}

// 🆕 Create publishes text as a new paste with a generated edit code.
func (c *Client) Create(ctx context.Context, s string) (remote.Paste, error) {
	const verb = "create"
	if err := CheckLength(s, verb); err != nil {
		return remote.Paste{}, err
	}

	res, err := c.post(ctx, verb, "api/new", url.Values{
		"text":      {s},
		"edit_code": {""},
		"url":       {""},
		"metadata":  {createMetadata},
	})
	if err != nil {
		return remote.Paste{}, err
	}

	return remote.Paste{ID: res.URLShort, URL: res.URL, EditCode: res.EditCode}, nil
}

// ✏️ Update replaces the text of paste id.
func (c *Client) Update(ctx context.Context, id, editCode, s string) error {
	const verb = "update"
	if err := CheckLength(s, verb); err != nil {
		return err
	}

	_, err := c.post(ctx, verb, "api/edit/"+url.PathEscape(id), url.Values{
		"text":      {s},
		"edit_code": {editCode},
	})
	return err
}

// 🗑️ Remove deletes paste id.
func (c *Client) Remove(ctx context.Context, id, editCode string) error {
	_, err := c.post(ctx, "remove", "api/delete/"+url.PathEscape(id), url.Values{
		"edit_code": {editCode},
	})
	return err
}

func (c *Client) post(ctx context.Context, verb, endpoint string, payload url.Values) (*response, error) {
	res, err := c.execute(ctx, endpoint, payload)
	if err != nil {
		return nil, errors.Errorf("Failed to %s paste: %w", verb, err)
	}
	return res, nil
}

func (c *Client) execute(ctx context.Context, endpoint string, payload url.Values) (*response, error) {
	token, err := c.csrfToken(ctx)
	if err != nil {
		return nil, err
	}
	payload.Set("csrfmiddlewaretoken", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/"+endpoint, strings.NewReader(payload.Encode()))
	if err != nil {
		return nil, errors.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// the api checks the origin of csrf protected posts
	req.Header.Set("Referer", c.base)
	req.AddCookie(&http.Cookie{Name: csrfCookie, Value: token})

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Errorf("executing POST %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Errorf("reading response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var res response
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, errors.Errorf("decoding response: %w", err)
	}
	if len(res.Errors) > 0 || res.Content != "OK" {
		return nil, errors.New(res.Content)
	}

	zerolog.Ctx(ctx).Debug().Str("endpoint", endpoint).Str("status", res.Status).Msg("rentry request succeeded")
	return &res, nil
}

func (c *Client) csrfToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base, nil)
	if err != nil {
		return "", errors.Errorf("Failed to fetch base cookies: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", errors.Errorf("Failed to fetch base cookies: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == csrfCookie && cookie.Value != "" {
			return cookie.Value, nil
		}
	}
	return "", errors.Errorf("Failed to fetch base cookies: %w", ErrNoCSRFToken)
}
