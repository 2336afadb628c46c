package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/notepaste/cmd/notepaste/opts"
	"github.com/walteh/notepaste/pkg/log"
)

type noteFunc func(ctx context.Context, notePath string) error

// newNoteCmd builds a command running fn against the note named by its
// single argument
func newNoteCmd(root *opts.RootOpts, use, short, long string, fn func() noteFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <note>",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			notePath, err := root.NotePath(args[0])
			if err != nil {
				return err
			}

			root.Logger.StartNoteOperation(cmd.Context(), log.NoteOperation{Note: notePath, Command: use})
			defer root.Logger.EndNoteOperation(cmd.Context())

			run := fn()
			return root.Runner.Run(cmd.Context(), use, func(ctx context.Context) error {
				return run(ctx, notePath)
			})
		},
	}
}

// NewCreateCmd creates a new create command
func NewCreateCmd(root *opts.RootOpts) *cobra.Command {
	return newNoteCmd(root, "create", "Publish a note as a new paste",
		`Create publishes a note that has no paste yet. It will:
1. Mirror the note's embeds to the asset store (when replace_embeds is on)
2. Render the note, with its frontmatter as a table if configured
3. Create the paste
4. Record the paste id, url and edit code in the note's frontmatter`,
		func() noteFunc { return root.Operator.Create })
}

// NewUpdateCmd creates a new update command
func NewUpdateCmd(root *opts.RootOpts) *cobra.Command {
	return newNoteCmd(root, "update", "Republish a note over its paste",
		`Update replaces the text of the note's paste. Embeds that were removed
from the note are deleted from the asset store, new ones are uploaded.`,
		func() noteFunc { return root.Operator.Update })
}

// NewDeleteCmd creates a new delete command
func NewDeleteCmd(root *opts.RootOpts) *cobra.Command {
	return newNoteCmd(root, "delete", "Delete a note's paste and its embeds",
		`Delete asks for confirmation, then removes the paste and every mirrored
embed of the note. The paste properties are dropped from the frontmatter once
the paste is gone; embeds that could not be deleted stay in the embed cache
for a later purge.`,
		func() noteFunc { return root.Operator.Delete })
}

// NewPurgeCmd creates a new purge command
func NewPurgeCmd(root *opts.RootOpts) *cobra.Command {
	return newNoteCmd(root, "purge", "Delete embeds left behind by a deleted paste",
		`Purge asks for confirmation, then deletes every asset still listed in the
embed cache of a note without a paste.`,
		func() noteFunc { return root.Operator.Purge })
}
