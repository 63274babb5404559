package depsentry

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/redactyl/depsentry/internal/audit"
	"github.com/redactyl/depsentry/internal/engine"
	"github.com/redactyl/depsentry/internal/log"
	"github.com/redactyl/depsentry/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan package.json, package-lock.json and node_modules (default command)",
		Args:  cobra.NoArgs,
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	logger := log.New(cmd.ErrOrStderr(), flagVerbose)
	s, err := resolveSettings(logger)
	if err != nil {
		return err
	}
	res, err := engine.ScanWithStats(cmd.Context(), s.engine)
	if err != nil {
		return fmt.Errorf("scan error: %w", err)
	}

	findings := res.Findings
	base, err := report.LoadBaseline(s.baseline)
	switch {
	case err == nil:
		var baselined int
		findings, baselined = report.FilterNewFindings(findings, base)
		logger.Debug("baseline applied", "path", s.baseline, "baselined", baselined)
	case errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("load baseline: %w", err)
	}

	logger.Debug("scan finished",
		"findings", len(findings),
		"ignored", res.Ignored,
		"manifest", res.Manifest.String(),
		"lockfile", res.Lockfile.String(),
		"modules", res.Modules,
		"duration", res.Duration,
	)
	if s.auditLog != "" {
		rec := audit.CreateScanRecord(s.engine.Root, res, findings, s.baseline)
		if err := audit.NewAuditLog(s.auditLog).LogScan(rec); err != nil {
			logger.Warn("audit record not written", "err", err)
		}
	}

	out := cmd.OutOrStdout()
	opts := report.Options{
		Format:  s.format,
		NoColor: s.noColor || colorDisabled(out),
		Version: version,
	}
	if err := report.Write(out, findings, opts); err != nil {
		return fmt.Errorf("%s output: %w", s.format, err)
	}
	if code := report.ExitCode(findings); code != report.ExitClean {
		exitFunc(code)
	}
	return nil
}
