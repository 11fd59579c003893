package main

import (
	"github.com/spf13/cobra"
)

var parameterCmd = &cobra.Command{
	Use:   "parameter <code>",
	Short: "Describe a forecast parameter, e.g. TTT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newServices(cmd.Context())
		return printJSON(cmd.OutOrStdout(), svc.parameters.Describe(cmd.Context(), args[0]))
	},
}

func init() {
	rootCmd.AddCommand(parameterCmd)
}
