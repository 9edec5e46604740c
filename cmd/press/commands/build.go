package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/press/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [pages...]",
		Short: "Render the site, or just the named pages",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, _ := cmd.Flags().GetString("config")
			force, _ := cmd.Flags().GetBool("force")
			watch, _ := cmd.Flags().GetBool("watch")
			jobs, _ := cmd.Flags().GetInt("jobs")

			return c.app.Build(cmd.Context(), app.BuildRequest{
				ConfigPath: config,
				Targets:    args,
				Force:      force,
				Watch:      watch,
				Jobs:       jobs,
			})
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Bypass the build cache and render every page")
	cmd.Flags().BoolP("watch", "w", false, "Keep watching sources and rebuild on change")
	cmd.Flags().IntP("jobs", "j", 0, "Pages rendered in parallel (default: from settings)")

	return cmd
}
