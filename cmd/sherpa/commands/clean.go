package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sherpa/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove build artifacts and internal state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, _ := cmd.Flags().GetBool("state")
			all, _ := cmd.Flags().GetBool("all")

			opts := app.CleanOptions{
				Artifacts: false,
				State:     false,
			}

			switch {
			case all:
				opts.Artifacts = true
				opts.State = true
			case state:
				opts.State = true
			default:
				// Default behavior: remove build artifacts
				opts.Artifacts = true
			}

			return c.app.Clean(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolP("state", "s", false, "Remove the internal state directory")
	cmd.Flags().BoolP("all", "a", false, "Remove build artifacts and internal state")

	return cmd
}
