// Package commands contains the CLI command constructors.
package commands

import (
	"github.com/spf13/cobra"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "profeed [command]",
		Short:        "Social profile and feed backend",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		serveCommand(),
		migrateCommand(),
	)

	return cmd
}
