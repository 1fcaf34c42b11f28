package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rickymagner/ast-calc/internal/version"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetInfo()
			fmt.Fprintln(cmd.OutOrStdout(), "Version:", info.Version)
			fmt.Fprintln(cmd.OutOrStdout(), "Commit:", info.Commit)
			fmt.Fprintln(cmd.OutOrStdout(), "Built At:", info.Date)
			fmt.Fprintln(cmd.OutOrStdout(), "Go Version:", info.GoVersion)
		},
	}
}
