package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/rolegraph/internal/app"
	"go.trai.ch/rolegraph/internal/core/domain"
)

func (c *CLI) newGraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build, prune and render the dependency graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, _ := cmd.Flags().GetString("services")
			output, _ := cmd.Flags().GetString("output")
			neo4j, _ := cmd.Flags().GetBool("neo4j")

			opts := app.GraphOptions{
				CollectOptions: c.collectOptions(cmd),
				Services:       splitServices(services),
				Neo4j:          neo4j,
			}
			// Unchanged flags leave the configuration file in charge.
			if cmd.Flags().Changed("output") {
				opts.Output = output
			}
			if cmd.Flags().Changed("min-connections") {
				v, _ := cmd.Flags().GetInt("min-connections")
				opts.MinConnections = &v
			}
			if cmd.Flags().Changed("max-connections") {
				v, _ := cmd.Flags().GetInt("max-connections")
				opts.MaxConnections = &v
			}
			return c.app.Graph(cmd.Context(), opts)
		},
	}
	addCollectFlags(cmd)
	cmd.Flags().StringP("services", "s", "", "Comma separated list of services to graph (default: all roles)")
	cmd.Flags().IntP("min-connections", "n", domain.DefaultMinConnections, "Drop nodes with at most this many connections")
	cmd.Flags().IntP("max-connections", "m", domain.DefaultMaxConnections, "Drop nodes with more than this many connections")
	cmd.Flags().StringP("output", "o", domain.DefaultOutputPath, "Output file for the DOT graph")
	cmd.Flags().Bool("neo4j", false, "Also publish the graph to the configured Neo4j database")
	return cmd
}

func splitServices(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
