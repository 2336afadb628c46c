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
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".hcl")
}

// envFunc exposes env("NAME") to HCL expressions.
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{{Name: "name", Type: cty.String}},
	Type:   function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

// 📝 Parse parses the settings from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte) (*Settings, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, "notepaste.hcl")
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	// Create evaluation context
	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}

	// Define HCL schema
	type hclSettings struct {
		Vault                      string `hcl:"vault,optional"`
		IncludeFrontmatter         bool   `hcl:"include_frontmatter,optional"`
		SkipEmptyFrontmatterValues bool   `hcl:"skip_empty_frontmatter_values,optional"`
		ReplaceEmbeds              bool   `hcl:"replace_embeds,optional"`
		UseRentryDotOrg            bool   `hcl:"use_rentry_dot_org,optional"`
		PasteProvider              string `hcl:"paste_provider,optional"`
		AssetProvider              string `hcl:"asset_provider,optional"`
		GitHubToken                string `hcl:"github_token,optional"`
		Timeout                    string `hcl:"timeout,optional"`
		Cloudinary                 *struct {
			APIKey    string `hcl:"api_key,optional"`
			APISecret string `hcl:"api_secret,optional"`
			CloudName string `hcl:"cloud_name,optional"`
		} `hcl:"cloudinary,block"`
		S3 *struct {
			Endpoint      string `hcl:"endpoint"`
			Bucket        string `hcl:"bucket"`
			AccessKey     string `hcl:"access_key,optional"`
			SecretKey     string `hcl:"secret_key,optional"`
			PublicBaseURL string `hcl:"public_base_url,optional"`
			Secure        bool   `hcl:"secure,optional"`
		} `hcl:"s3,block"`
		Embeds *struct {
			Ignore            []string `hcl:"ignore,optional"`
			UploadConcurrency int      `hcl:"upload_concurrency,optional"`
		} `hcl:"embeds,block"`
	}

	// Decode HCL
	var hclCfg hclSettings
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &hclCfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	// Convert to settings
	s := &Settings{
		Vault:                      hclCfg.Vault,
		IncludeFrontmatter:         hclCfg.IncludeFrontmatter,
		SkipEmptyFrontmatterValues: hclCfg.SkipEmptyFrontmatterValues,
		ReplaceEmbeds:              hclCfg.ReplaceEmbeds,
		UseRentryDotOrg:            hclCfg.UseRentryDotOrg,
		PasteProvider:              hclCfg.PasteProvider,
		AssetProvider:              hclCfg.AssetProvider,
		GitHubToken:                hclCfg.GitHubToken,
		Timeout:                    hclCfg.Timeout,
	}

	if c := hclCfg.Cloudinary; c != nil {
		s.Cloudinary = CloudinarySettings{APIKey: c.APIKey, APISecret: c.APISecret, CloudName: c.CloudName}
	}
	if b := hclCfg.S3; b != nil {
		s.S3 = S3Settings{
			Endpoint:      b.Endpoint,
			Bucket:        b.Bucket,
			AccessKey:     b.AccessKey,
			SecretKey:     b.SecretKey,
			PublicBaseURL: b.PublicBaseURL,
			Secure:        b.Secure,
		}
	}
	if e := hclCfg.Embeds; e != nil {
		s.Embeds = EmbedSettings{Ignore: e.Ignore, UploadConcurrency: e.UploadConcurrency}
	}

	return s, nil
}
