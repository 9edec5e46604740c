package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/press/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove rendered output and build state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, _ := cmd.Flags().GetString("config")
			output, _ := cmd.Flags().GetBool("output")
			state, _ := cmd.Flags().GetBool("state")

			// With neither flag the app removes both.
			return c.app.Clean(cmd.Context(), app.CleanRequest{
				ConfigPath: config,
				Output:     output,
				State:      state,
			})
		},
	}

	cmd.Flags().BoolP("output", "o", false, "Remove only the rendered output directory")
	cmd.Flags().BoolP("state", "s", false, "Remove only the cached build state")

	return cmd
}
