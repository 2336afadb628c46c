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
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/notepaste/cmd/notepaste/commands"
	"github.com/walteh/notepaste/cmd/notepaste/opts"
	"github.com/walteh/notepaste/pkg/log"
	"github.com/walteh/notepaste/pkg/operation"
	"gitlab.com/tozd/go/errors"

	_ "github.com/walteh/notepaste/pkg/remote/cloudinary"
	_ "github.com/walteh/notepaste/pkg/remote/gist"
	_ "github.com/walteh/notepaste/pkg/remote/rentry"
	_ "github.com/walteh/notepaste/pkg/remote/s3"
)

func main() {
	// an interrupt cancels the running command, which still records what it
	// already published before exiting
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	root := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "notepaste",
		Short: "Publish markdown notes as rentry pastes",
		Long: `notepaste publishes a note from a markdown vault as a paste, mirrors its
embedded images and videos to an asset store, and keeps the paste id, edit
code and embed cache in the note's frontmatter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := setupLogging(cmd.Context())
			cmd.SetContext(ctx)

			if cmd.Name() == "version" {
				return nil
			}
			return initRootOpts(ctx, root)
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewCreateCmd(root),
		commands.NewUpdateCmd(root),
		commands.NewDeleteCmd(root),
		commands.NewPurgeCmd(root),
		commands.NewStatusCmd(root),
		newVersionCmd(),
	)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var notified *operation.NotifiedError
		if !errors.As(err, &notified) {
			log.New(os.Stderr, zerolog.InfoLevel).Error(err.Error())
		}
		os.Exit(1)
	}
}
