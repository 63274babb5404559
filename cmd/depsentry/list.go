package depsentry

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redactyl/depsentry/internal/log"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the compromised package names that will be checked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(log.New(cmd.ErrOrStderr(), flagVerbose))
			if err != nil {
				return err
			}
			for _, name := range s.engine.Packages.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
