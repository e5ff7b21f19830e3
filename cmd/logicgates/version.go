package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/logicgates/internal/version"
)

// newVersionCmd implements the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of logicgates",
		Run: func(cmd *cobra.Command, _ []string) {
			info := version.Get()
			fmt.Fprintf(cmd.OutOrStdout(), "logicgates version %s\n", info.Full())
		},
	}
}
