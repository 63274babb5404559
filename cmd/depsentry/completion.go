package depsentry

import (
	"io"

	"github.com/spf13/cobra"
)

// completionWriters generate the completion script for each shell.
var completionWriters = map[string]func(w io.Writer) error{
	"bash":       func(w io.Writer) error { return rootCmd.GenBashCompletionV2(w, true) },
	"zsh":        rootCmd.GenZshCompletion,
	"fish":       func(w io.Writer) error { return rootCmd.GenFishCompletion(w, true) },
	"powershell": rootCmd.GenPowerShellCompletionWithDesc,
}

func init() {
	cmd := &cobra.Command{
		Use:       "completion bash|zsh|fish|powershell",
		Short:     "Print a shell completion script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return completionWriters[args[0]](cmd.OutOrStdout())
		},
		Example: `  depsentry completion bash > /etc/bash_completion.d/depsentry
  depsentry completion zsh > "${fpath[1]}/_depsentry"
  depsentry completion fish > ~/.config/fish/completions/depsentry.fish`,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(cmd)
}
