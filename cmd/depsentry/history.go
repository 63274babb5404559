package depsentry

import (
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/redactyl/depsentry/internal/audit"
	"github.com/redactyl/depsentry/internal/log"
)

var historyLimit = 10

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans recorded with --audit-log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := resolveSettings(log.New(cmd.ErrOrStderr(), flagVerbose))
			if err != nil {
				return err
			}
			if s.auditLog == "" {
				return errors.New("no audit log configured (use --audit-log or audit_log in config)")
			}
			records, err := audit.NewAuditLog(s.auditLog).LoadHistory()
			if err != nil {
				return err
			}
			if historyLimit > 0 && len(records) > historyLimit {
				records = records[:historyLimit]
			}
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Time", "Root", "Findings", "New", "Baselined", "Ignored", "Duration")
			for _, r := range records {
				if err := table.Append(
					r.Timestamp.Format("2006-01-02 15:04:05"),
					r.Root,
					fmt.Sprint(r.TotalFindings),
					fmt.Sprint(r.NewFindings),
					fmt.Sprint(r.BaselinedCount),
					fmt.Sprint(r.IgnoredCount),
					r.Duration,
				); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
	cmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of records to show (0 = all)")
	rootCmd.AddCommand(cmd)
}
