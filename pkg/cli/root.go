// Package cli implements the refract command tree. Subcommands reflect
// paths, types and constant expressions out of a snapshot model, or out of
// a type-checked Go package.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level refract command.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refract",
		Short: "Reflect semantic model entities back into source syntax",
		Long: "Refract rebuilds syntactically valid source text (paths, type\n" +
			"expressions, constant expressions) from the resolved semantic\n" +
			"representation of a program entity.",
		SilenceUsage: true,
	}

	cmd.Version = version

	cmd.AddCommand(NewPathCmd())
	cmd.AddCommand(NewTypeCmd())
	cmd.AddCommand(NewConstCmd())
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewGoCmd())

	return cmd
}
