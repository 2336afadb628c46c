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

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/notepaste/cmd/notepaste/opts"
	"github.com/walteh/notepaste/pkg/config"
	"github.com/walteh/notepaste/pkg/log"
	"github.com/walteh/notepaste/pkg/notice"
	"github.com/walteh/notepaste/pkg/operation"
	"github.com/walteh/notepaste/pkg/remote"
	"github.com/walteh/notepaste/pkg/vault"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile  string
	vaultDir    string
	debug       bool
	autoConfirm bool
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: .notepaste.{yaml,yml,json,hcl} in the working directory)")
	cmd.PersistentFlags().StringVar(&vaultDir, "vault", "", "vault root, overrides the config")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&autoConfirm, "yes", "y", false, "answer yes to every confirmation")
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context) context.Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &logger
	return logger.WithContext(ctx)
}

// initRootOpts fills root with the dependencies every note command shares
func initRootOpts(ctx context.Context, root *opts.RootOpts) error {
	wd, err := os.Getwd()
	if err != nil {
		return errors.Errorf("getting working directory: %w", err)
	}

	settings, err := config.Load(ctx, configFile, wd)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}
	if vaultDir != "" {
		settings.Vault = vaultDir
	}

	v, err := vault.Open(ctx, settings.Vault)
	if err != nil {
		return errors.Errorf("opening vault: %w", err)
	}

	pastes, err := remote.NewPasteService(ctx, settings)
	if err != nil {
		return errors.Errorf("creating paste service: %w", err)
	}

	var assets remote.AssetStore
	if settings.HasAssetCredentials() {
		assets, err = remote.NewAssetStore(ctx, settings)
		if err != nil {
			return errors.Errorf("creating asset store: %w", err)
		}
	} else if settings.ReplaceEmbeds {
		zerolog.Ctx(ctx).Debug().Str("provider", settings.AssetProvider).Msg("asset credentials incomplete, embeds will not be mirrored")
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := log.New(os.Stdout, level)

	op, err := operation.New(operation.Options{
		Settings: settings,
		Vault:    v,
		Pastes:   pastes,
		Assets:   assets,
		Notifier: notice.NewConsole(autoConfirm),
		Logger:   logger,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	root.Settings = settings
	root.Vault = v
	root.Logger = logger
	root.Operator = op
	root.Runner = operation.NewRunner()
	return nil
}
