package app

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell autocompletion scripts",
		Long: `Generate autocompletion scripts for your shell.

Examples:
  # Bash (add to ~/.bashrc)
  source <(lendctl completion bash)

  # Zsh (add to ~/.zshrc)
  source <(lendctl completion zsh)

  # Fish
  lendctl completion fish > ~/.config/fish/completions/lendctl.fish

  # PowerShell
  lendctl completion powershell | Out-String | Invoke-Expression`,
		Args:                  cobra.ExactArgs(1),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return cmd.Help()
			}
		},
	}

	return cmd
}

// completeBookIDs offers book IDs with titles as descriptions.
func completeBookIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, b := range books.Books() {
		if strings.HasPrefix(b.ID, toComplete) {
			out = append(out, b.ID+"\t"+b.Title)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeAvailableBookIDs offers only books without an active loan.
func completeAvailableBookIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, b := range loans.Available() {
		if strings.HasPrefix(b.ID, toComplete) {
			out = append(out, b.ID+"\t"+b.Title)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeLoanIDs offers loan IDs with borrower and title as descriptions.
func completeLoanIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, l := range loans.Active() {
		if strings.HasPrefix(l.ID, toComplete) {
			out = append(out, l.ID+"\t"+l.Borrower+" — "+l.Title)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
