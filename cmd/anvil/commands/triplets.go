package commands

import (
	"github.com/anvil-build/anvil/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newTripletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "triplets",
		Short: "List supported platform combinations and their packaging triplets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verify, _ := cmd.Flags().GetBool("verify")
			return c.app.Triplets(cmd.Context(), app.TripletsOptions{Verify: verify})
		},
	}
	cmd.Flags().Bool("verify", false, "Resolve every combination against this machine")
	return cmd
}
