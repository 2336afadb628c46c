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

// Package cloudinary mirrors embeds to Cloudinary using signed uploads and
// the admin API for deletes.
package cloudinary

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/notepaste/pkg/config"
	"github.com/walteh/notepaste/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

const (
	// DefaultBaseURL is the Cloudinary API root
	DefaultBaseURL = "https://api.cloudinary.com/v1_1"

	// uploads are converted server side
	uploadFormat = "webp"

	maxDeleteBatch = 100
)

// ErrInvalidResponse is returned when a delete response does not have the
// documented shape.
var ErrInvalidResponse = errors.Base("invalid response from cloudinary")

func init() {
	remote.RegisterAssetStore(config.AssetProviderCloudinary, func(ctx context.Context, s *config.Settings) (remote.AssetStore, error) {
		return New(Options{
			CloudName: s.Cloudinary.CloudName,
			APIKey:    s.Cloudinary.APIKey,
			APISecret: s.Cloudinary.APISecret,
			Client:    &http.Client{Timeout: s.RequestTimeout()},
		})
	})
}

// 🔧 Options configures a Store.
type Options struct {
	CloudName string
	APIKey    string
	APISecret string
	// BaseURL overrides DefaultBaseURL
	BaseURL string
	// Client defaults to http.DefaultClient
	Client *http.Client
	// Now stamps uploads; defaults to time.Now
	Now func() time.Time
}

// ☁️ Store is a remote.AssetStore backed by Cloudinary.
type Store struct {
	opts Options
}

var _ remote.AssetStore = (*Store)(nil)

// 🏭 New validates opts and returns a Store.
func New(opts Options) (*Store, error) {
	if opts.CloudName == "" || opts.APIKey == "" || opts.APISecret == "" {
		return nil, errors.New("cloudinary credentials are incomplete")
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	opts.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{opts: opts}, nil
}

// 🔏 Signature signs the upload parameters: the sha1 hex digest of the
// alphabetically ordered parameters with the api secret appended.
func Signature(folder, timestamp, secret string) string {
	sum := sha1.Sum([]byte("asset_folder=" + folder + "&format=" + uploadFormat + "&timestamp=" + timestamp + secret))
	return hex.EncodeToString(sum[:])
}

// MaxDeleteBatch is the admin API's limit on asset ids per request.
func (s *Store) MaxDeleteBatch() int { return maxDeleteBatch }

type uploadResponse struct {
	AssetID      string `json:"asset_id"`
	PublicID     string `json:"public_id"`
	SecureURL    string `json:"secure_url"`
	ResourceType string `json:"resource_type"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// 📤 Upload sends one file as a signed multipart upload into in.Folder.
func (s *Store) Upload(ctx context.Context, in remote.UploadInput) (remote.Asset, error) {
	timestamp := strconv.FormatInt(s.opts.Now().UnixMilli(), 10)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fields := [][2]string{
		{"asset_folder", in.Folder},
		{"format", uploadFormat},
		{"timestamp", timestamp},
		{"signature", Signature(in.Folder, timestamp, s.opts.APISecret)},
		{"api_key", s.opts.APIKey},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return remote.Asset{}, errors.Errorf("Failed to upload asset: writing %s: %w", f[0], err)
		}
	}
	part, err := w.CreateFormFile("file", path.Base(in.Name))
	if err != nil {
		return remote.Asset{}, errors.Errorf("Failed to upload asset: creating file part: %w", err)
	}
	if _, err := part.Write(in.Content); err != nil {
		return remote.Asset{}, errors.Errorf("Failed to upload asset: writing file part: %w", err)
	}
	if err := w.Close(); err != nil {
		return remote.Asset{}, errors.Errorf("Failed to upload asset: closing form: %w", err)
	}

	var res uploadResponse
	if err := s.do(ctx, http.MethodPost, s.opts.CloudName+"/image/upload", w.FormDataContentType(), &body, false, &res); err != nil {
		return remote.Asset{}, errors.Errorf("Failed to upload asset: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("embed", in.Name).
		Str("asset_id", res.AssetID).
		Str("public_id", res.PublicID).
		Msg("uploaded to cloudinary")

	return remote.Asset{ID: res.AssetID, URL: res.SecureURL, Type: res.ResourceType}, nil
}

type deleteResponse struct {
	Deleted *map[string]string `json:"deleted"`
	Partial *bool              `json:"partial"`
}

// 🗑️ DeleteByAssetID removes assets by id through the admin API.
func (s *Store) DeleteByAssetID(ctx context.Context, ids []string) (remote.DeleteResult, error) {
	form := url.Values{}
	for _, id := range ids {
		form.Add("asset_ids[]", id)
	}

	var res deleteResponse
	if err := s.do(ctx, http.MethodDelete, s.opts.CloudName+"/resources", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), true, &res); err != nil {
		return remote.DeleteResult{}, errors.Errorf("Failed to delete asset: %w", err)
	}
	if res.Deleted == nil || res.Partial == nil {
		return remote.DeleteResult{}, errors.WithDetails(ErrInvalidResponse, "ids", len(ids))
	}

	return remote.DeleteResult{Deleted: *res.Deleted, Partial: *res.Partial}, nil
}

func (s *Store) do(ctx context.Context, method, endpoint, contentType string, body io.Reader, basicAuth bool, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, s.opts.BaseURL+"/"+endpoint, body)
	if err != nil {
		return errors.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	if basicAuth {
		req.SetBasicAuth(s.opts.APIKey, s.opts.APISecret)
	}

	resp, err := s.opts.Client.Do(req)
	if err != nil {
		return errors.Errorf("executing %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		if json.Unmarshal(data, &e) == nil && e.Error.Message != "" {
			return errors.Errorf("unexpected status code %d: %s", resp.StatusCode, e.Error.Message)
		}
		return errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.WithDetails(ErrInvalidResponse, "cause", err.Error())
	}
	return nil
}
