package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand adds a 'version' subcommand, which prints the build's version.
//
// When adding this as a subcommand to another CLI, use:
//
//	cmd.AddCommand(version.NewVersionCommand())
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), GetPackageInfo())
		},
	}
}

// NewPackageInfoCommand adds a subcommand 'info' and prints info about the package.
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show info about the current package",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writePackageInfo(cmd.OutOrStdout())
		},
	}
}
