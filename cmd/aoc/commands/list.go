package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List days with a registered solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, day := range a.registry.Days() {
				p, _ := a.registry.Lookup(day)
				fmt.Fprintf(cmd.OutOrStdout(), "%2d  %T\n", day, p)
			}
			return nil
		},
	}
}
