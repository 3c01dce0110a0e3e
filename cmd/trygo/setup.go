package main

import (
	"github.com/spf13/cobra"

	"trygo/internal/shell"
)

// NewSetupCmd creates the setup command that installs the shell wrapper
// function for the given shell.
func NewSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "setup <shell>",
		Short:     "Install shell integration (bash, zsh, fish, nushell, powershell)",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: shell.Supported,
		RunE: func(cmd *cobra.Command, args []string) error {
			return shell.Setup(args[0])
		},
	}
}
