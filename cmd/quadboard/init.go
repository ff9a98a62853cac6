package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration directory and default config.yaml",
		Long:  "Create the configuration directory and write a default config.yaml if none exists.\nAn existing config.yaml is left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPreRunE has already written the file if it was missing.
			fmt.Fprintf(cmd.OutOrStdout(), "quadboard initialized: %s\n", a.configPath)
			return nil
		},
	}
}
