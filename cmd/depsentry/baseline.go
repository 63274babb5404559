package depsentry

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redactyl/depsentry/internal/engine"
	"github.com/redactyl/depsentry/internal/log"
	"github.com/redactyl/depsentry/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage acknowledged findings",
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Acknowledge every finding of the current scan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(log.New(cmd.ErrOrStderr(), flagVerbose))
			if err != nil {
				return err
			}
			results, err := engine.Scan(cmd.Context(), s.engine)
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(s.baseline, results); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated: %d findings in %s\n", len(results), s.baseline)
			return nil
		},
	}

	rootCmd.AddCommand(cmd)
	cmd.AddCommand(update)
}
