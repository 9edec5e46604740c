// Package commands wires the press CLI: the cobra command tree, flag
// parsing, and dispatch into the application layer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/press/internal/app"
	"go.trai.ch/press/internal/build"
)

// Application is the slice of the app layer the commands dispatch into.
type Application interface {
	Build(ctx context.Context, req app.BuildRequest) error
	Clean(ctx context.Context, req app.CleanRequest) error
}

// CLI owns the assembled command tree.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// New assembles the command tree around the given application.
func New(a Application) *CLI {
	c := &CLI{app: a, rootCmd: newRootCmd()}
	c.rootCmd.AddCommand(c.newBuildCmd(), c.newCleanCmd(), newVersionCmd())
	return c
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "press",
		Short:         "A fast static page generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	root.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit, build.Date,
	))
	root.InitDefaultVersionFlag()
	root.Flags().Lookup("version").Usage = "Print the application version"

	root.InitDefaultHelpFlag()
	root.Flags().Lookup("help").Usage = "Show help for command"

	root.PersistentFlags().StringP("config", "c", "", "Site manifest to use (default: find press.yaml upward)")

	return root
}

// Execute parses the arguments and runs the selected command.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs overrides os.Args for the command tree. Tests use this.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command tree's output and error streams.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
