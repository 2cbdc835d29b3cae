package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newBackendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backends <role>",
		Short: "List the roles a role depends on",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backends, err := c.app.Backends(cmd.Context(), args[0], c.collectOptions(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, b := range backends {
				_, _ = fmt.Fprintln(out, b)
			}
			return nil
		},
	}
	addCollectFlags(cmd)
	return cmd
}
