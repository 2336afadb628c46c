package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/walteh/notepaste/cmd/notepaste/opts"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(root *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <note>",
		Short: "Show a note's paste and embed state",
		Long: `Status compares the note's embeds with its embed cache without touching
the network. Every embed is reported as:
- cached: mirrored and still embedded
- pending: embedded, not mirrored yet
- stale: mirrored, no longer embedded`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			notePath, err := root.NotePath(args[0])
			if err != nil {
				return err
			}

			report, err := root.Operator.Status(ctx, notePath)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.String())
			return nil
		},
	}

	return cmd
}
