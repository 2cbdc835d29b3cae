package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCollectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Fetch roles and dependencies into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := c.app.Collect(cmd.Context(), c.collectOptions(cmd))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d roles, %d roles with dependencies, %d edges\n",
				len(res.Roles), res.Adjacency.Len(), res.Adjacency.EdgeCount())
			return nil
		},
	}
	addCollectFlags(cmd)
	cmd.Flags().Lookup("metrics-file").Usage = "Write Prometheus metrics of the collection to this file"
	return cmd
}
