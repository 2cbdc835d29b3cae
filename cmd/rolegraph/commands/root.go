// Package commands implements the CLI commands for rolegraph.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rolegraph/internal/app"
	"go.trai.ch/rolegraph/internal/build"
	"go.trai.ch/rolegraph/internal/core/domain"
	"go.trai.ch/rolegraph/internal/engine/collector"
)

// CLI represents the command line interface for rolegraph.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	debug      bool
}

// Application represents the application logic interface.
type Application interface {
	Collect(ctx context.Context, opts app.CollectOptions) (*collector.Result, error)
	Graph(ctx context.Context, opts app.GraphOptions) error
	Backends(ctx context.Context, role string, opts app.CollectOptions) ([]string, error)
	SetDebug(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rolegraph",
		Short:         "Map service dependencies from the service inventory",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.ConfigFileName, "Path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&c.debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		c.app.SetDebug(c.debug)
	}

	rootCmd.AddCommand(c.newCollectCmd())
	rootCmd.AddCommand(c.newGraphCmd())
	rootCmd.AddCommand(c.newBackendsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// collectOptions reads the flags shared by every collecting command.
func (c *CLI) collectOptions(cmd *cobra.Command) app.CollectOptions {
	refresh, _ := cmd.Flags().GetBool("refresh")
	metricsFile, _ := cmd.Flags().GetString("metrics-file")
	return app.CollectOptions{
		ConfigPath:  c.configPath,
		Refresh:     refresh,
		MetricsFile: metricsFile,
	}
}

func addCollectFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("refresh", "r", false, "Ignore cached results and query the inventory API")
	cmd.Flags().String("metrics-file", "", "Write Prometheus metrics of the run to this file")
}
