package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <url>",
		Short: "Explain which cache rule would serve a request URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Explain(cmd.Context(), args[0])
		},
	}
}
