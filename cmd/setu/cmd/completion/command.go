// Package completion implements the completion command.
package completion

import (
	"github.com/spf13/cobra"

	"github.com/dhartisetu/setu/pkg/errors"
)

// Supported shells.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// NewCommand creates the completion command. Scripts are written to stdout.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "completion <bash|zsh|fish|powershell>",
		GroupID: "utility",
		Short:   "Generate a shell completion script",
		Example: `  source <(setu completion bash)
  setu completion zsh > "${fpath[1]}/_setu"
  setu completion fish > ~/.config/fish/completions/setu.fish`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case ShellBash:
				return root.GenBashCompletionV2(out, true)
			case ShellZsh:
				return root.GenZshCompletion(out)
			case ShellFish:
				return root.GenFishCompletion(out, true)
			case ShellPowerShell:
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return errors.NewValidationError("shell", args[0], "must be one of: bash, zsh, fish, powershell")
			}
		},
	}
}
