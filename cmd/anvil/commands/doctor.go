package commands

import "github.com/spf13/cobra"

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Resolve a toolchain for this machine and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Doctor(cmd.Context())
		},
	}
}
