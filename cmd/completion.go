package cmd

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for 000.

To load completions:

Bash:

  $ source <(000 completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ 000 completion bash > /etc/bash_completion.d/000
  # macOS:
  $ 000 completion bash > $(brew --prefix)/etc/bash_completion.d/000

Zsh:

  # If shell completion is not already enabled in your environment,
  # you will need to enable it.  You can execute the following once:

  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ 000 completion zsh > "${fpath[1]}/_000"

Fish:

  $ 000 completion fish | source

  # To load completions for each session, execute once:
  $ 000 completion fish > ~/.config/fish/completions/000.fish

PowerShell:

  PS> 000 completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(out, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(out)
		case "fish":
			return cmd.Root().GenFishCompletion(out, true)
		default:
			return cmd.Root().GenPowerShellCompletionWithDesc(out)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
	fixCmd.ValidArgsFunction = cobra.NoFileCompletions
}
