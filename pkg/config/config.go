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

package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

const (
	PasteProviderRentry = "rentry"
	PasteProviderGist   = "gist"

	AssetProviderCloudinary = "cloudinary"
	AssetProviderS3         = "s3"

	DefaultTimeout = 60 * time.Second
)

// FileNames are the config files looked up in a directory, in order.
var FileNames = []string{".notepaste.yaml", ".notepaste.yml", ".notepaste.json", ".notepaste.hcl"}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the settings from bytes
	Parse(ctx context.Context, data []byte) (*Settings, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// ☁️ CloudinarySettings are the credentials of the Cloudinary asset store
type CloudinarySettings struct {
	APIKey    string `json:"api_key" yaml:"api_key"`
	APISecret string `json:"api_secret" yaml:"api_secret"`
	CloudName string `json:"cloud_name" yaml:"cloud_name"`
}

// 🪣 S3Settings configure an S3 compatible asset store
type S3Settings struct {
	Endpoint      string `json:"endpoint" yaml:"endpoint"`
	Bucket        string `json:"bucket" yaml:"bucket"`
	AccessKey     string `json:"access_key" yaml:"access_key"`
	SecretKey     string `json:"secret_key" yaml:"secret_key"`
	PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
	Secure        bool   `json:"secure" yaml:"secure"`
}

// 🖼️ EmbedSettings tune embed mirroring
type EmbedSettings struct {
	Ignore            []string `json:"ignore" yaml:"ignore"`                         // doublestar globs over vault paths
	UploadConcurrency int      `json:"upload_concurrency" yaml:"upload_concurrency"` // 1 keeps uploads serial
}

// 📚 Settings is the complete notepaste configuration. It is passed
// explicitly to every operation.
type Settings struct {
	Vault                      string             `json:"vault" yaml:"vault"`
	IncludeFrontmatter         bool               `json:"include_frontmatter" yaml:"include_frontmatter"`
	SkipEmptyFrontmatterValues bool               `json:"skip_empty_frontmatter_values" yaml:"skip_empty_frontmatter_values"`
	ReplaceEmbeds              bool               `json:"replace_embeds" yaml:"replace_embeds"`
	UseRentryDotOrg            bool               `json:"use_rentry_dot_org" yaml:"use_rentry_dot_org"`
	PasteProvider              string             `json:"paste_provider" yaml:"paste_provider"`
	AssetProvider              string             `json:"asset_provider" yaml:"asset_provider"`
	GitHubToken                string             `json:"github_token" yaml:"github_token"`
	Cloudinary                 CloudinarySettings `json:"cloudinary" yaml:"cloudinary"`
	S3                         S3Settings         `json:"s3" yaml:"s3"`
	Embeds                     EmbedSettings      `json:"embeds" yaml:"embeds"`
	Timeout                    string             `json:"timeout" yaml:"timeout"`

	location string
	timeout  time.Duration
}

// 🏭 Default returns settings with every default applied
func Default() *Settings {
	s := &Settings{}
	_ = s.Validate()
	return s
}

// Location is the file the settings were loaded from, empty if none.
func (s *Settings) Location() string { return s.location }

// RequestTimeout is the parsed timeout, valid after Validate.
func (s *Settings) RequestTimeout() time.Duration {
	if s.timeout <= 0 {
		return DefaultTimeout
	}
	return s.timeout
}

// 🔑 HasAssetCredentials reports whether the selected asset store has
// everything it needs to be constructed.
func (s *Settings) HasAssetCredentials() bool {
	switch s.AssetProvider {
	case AssetProviderS3:
		return s.S3.Endpoint != "" && s.S3.Bucket != "" && s.S3.AccessKey != "" && s.S3.SecretKey != ""
	default:
		return s.Cloudinary.APIKey != "" && s.Cloudinary.APISecret != "" && s.Cloudinary.CloudName != ""
	}
}

// 🎯 Load loads settings from path, or from the first of FileNames found in
// dir when path is empty, then applies environment overrides and validates.
// No file at all yields the defaults.
func Load(ctx context.Context, path string, dir string) (*Settings, error) {
	logger := zerolog.Ctx(ctx)

	if path == "" {
		path = Find(dir)
	}

	s := &Settings{}
	if path != "" {
		logger.Debug().Str("path", path).Msg("loading configuration")

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Errorf("reading config file: %w", err)
		}

		p := GetParser(path)
		if p == nil {
			return nil, errors.Errorf("no parser found for file: %s", path)
		}

		s, err = p.Parse(ctx, data)
		if err != nil {
			return nil, errors.Errorf("parsing config: %w", err)
		}
		s.location = path
	}

	s.ApplyEnv(os.LookupEnv)

	if err := s.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return s, nil
}

// 🔍 Find returns the first config file present in dir, or "".
func Find(dir string) string {
	for _, name := range FileNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// 🌱 ApplyEnv overrides credentials from the environment.
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(&s.Cloudinary.APIKey, "CLOUDINARY_API_KEY")
	set(&s.Cloudinary.APISecret, "CLOUDINARY_API_SECRET")
	set(&s.Cloudinary.CloudName, "CLOUDINARY_CLOUD_NAME")
	set(&s.GitHubToken, "GITHUB_TOKEN")
	set(&s.S3.AccessKey, "NOTEPASTE_S3_ACCESS_KEY")
	set(&s.S3.SecretKey, "NOTEPASTE_S3_SECRET_KEY")
}

// 🔍 Validate checks the settings and fills in defaults
func (s *Settings) Validate() error {
	// Set defaults
	if s.Vault == "" {
		s.Vault = "."
	}
	s.Vault = filepath.Clean(s.Vault)

	if s.PasteProvider == "" {
		s.PasteProvider = PasteProviderRentry
	}
	if s.AssetProvider == "" {
		s.AssetProvider = AssetProviderCloudinary
	}
	if s.Embeds.UploadConcurrency == 0 {
		s.Embeds.UploadConcurrency = 1
	}

	switch s.PasteProvider {
	case PasteProviderRentry, PasteProviderGist:
	default:
		return errors.Errorf("paste_provider must be one of %s, %s: got %q", PasteProviderRentry, PasteProviderGist, s.PasteProvider)
	}

	switch s.AssetProvider {
	case AssetProviderCloudinary, AssetProviderS3:
	default:
		return errors.Errorf("asset_provider must be one of %s, %s: got %q", AssetProviderCloudinary, AssetProviderS3, s.AssetProvider)
	}

	if s.Embeds.UploadConcurrency < 0 {
		return errors.Errorf("embeds.upload_concurrency must be positive: got %d", s.Embeds.UploadConcurrency)
	}

	for _, pattern := range s.Embeds.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("embeds.ignore: invalid pattern %q", pattern)
		}
	}

	s.timeout = DefaultTimeout
	if s.Timeout != "" {
		d, err := time.ParseDuration(s.Timeout)
		if err != nil {
			return errors.Errorf("timeout: %w", err)
		}
		if d <= 0 {
			return errors.Errorf("timeout must be positive: got %s", s.Timeout)
		}
		s.timeout = d
	}

	return nil
}

// 📝 String returns a string representation of the settings
func (s *Settings) String() string {
	embeds := "off"
	if s.ReplaceEmbeds {
		embeds = s.AssetProvider
	}
	return fmt.Sprintf("%s (paste: %s, embeds: %s)", s.Vault, s.PasteProvider, embeds)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the settings from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Settings, error) {
	var s Settings
	if len(bytes.TrimSpace(data)) == 0 {
		return &s, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &s, nil
}
