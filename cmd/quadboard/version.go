package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quadboard/pkg/quadboard"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quadboard version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "quadboard v%s\nmodule: %s\n", quadboard.Version, quadboard.ModulePath)
			return nil
		},
	}
}
