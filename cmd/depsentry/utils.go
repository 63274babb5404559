package depsentry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/redactyl/depsentry/internal/compromised"
	"github.com/redactyl/depsentry/internal/config"
	"github.com/redactyl/depsentry/internal/engine"
	"github.com/redactyl/depsentry/internal/report"
)

// settings is the effective configuration after merging CLI flags with the
// local and global config files.
type settings struct {
	engine   engine.Config
	format   string
	noColor  bool
	baseline string
	auditLog string
}

// loadConfigs returns the local and global file configs. An explicit
// --config must load; implicit files that fail to parse are skipped with a
// warning.
func loadConfigs(root string, logger *slog.Logger) (local, global config.FileConfig, err error) {
	if flagConfig != "" {
		local, err = config.LoadFile(flagConfig)
		if err != nil {
			return local, global, fmt.Errorf("load config: %w", err)
		}
	} else if c, err := config.LoadLocal(root); err == nil {
		local = c
	} else if !errors.Is(err, config.ErrNoConfig) {
		logger.Warn("local config skipped", "err", err)
	}
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	} else if !errors.Is(err, config.ErrNoConfig) {
		logger.Warn("global config skipped", "err", err)
	}
	return local, global, nil
}

func resolveSettings(logger *slog.Logger) (settings, error) {
	var s settings
	abs, err := filepath.Abs(flagPath)
	if err != nil {
		return s, fmt.Errorf("resolve path: %w", err)
	}
	lcfg, gcfg, err := loadConfigs(abs, logger)
	if err != nil {
		return s, err
	}
	set, err := buildSet(lcfg, gcfg)
	if err != nil {
		return s, err
	}

	format := pickString(flagFormat, lcfg.Format, gcfg.Format)
	switch {
	case flagSARIF:
		format = report.FormatSARIF
	case flagJSON:
		format = report.FormatJSON
	}
	if s.format, err = report.ParseFormat(format); err != nil {
		return s, err
	}
	s.noColor = pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)
	s.baseline = pickString(flagBaseline, lcfg.Baseline, gcfg.Baseline)
	if s.baseline == "" {
		s.baseline = report.BaselineFile
	}
	if !filepath.IsAbs(s.baseline) {
		s.baseline = filepath.Join(abs, s.baseline)
	}
	s.auditLog = pickString(flagAuditLog, lcfg.AuditLog, gcfg.AuditLog)

	s.engine = engine.Config{
		Root:         abs,
		Manifest:     pickString(flagManifest, lcfg.Manifest, gcfg.Manifest),
		Lockfile:     pickString(flagLockfile, lcfg.Lockfile, gcfg.Lockfile),
		ModulesDir:   pickString(flagModulesDir, lcfg.ModulesDir, gcfg.ModulesDir),
		Packages:     set,
		MaxDepth:     pickInt(flagMaxDepth, lcfg.MaxDepth, gcfg.MaxDepth),
		IgnoreGlobs:  pickStrings(flagIgnore, lcfg.Ignore, gcfg.Ignore),
		NoIgnoreFile: pickBool(flagNoIgnore, lcfg.NoIgnoreFile, gcfg.NoIgnoreFile),
		Logger:       logger,
	}
	return s, nil
}

// buildSet assembles the compromised set: the built-in list unless
// disabled, then extra names, then names from a list file.
func buildSet(lcfg, gcfg config.FileConfig) (compromised.Set, error) {
	var set compromised.Set
	if !pickBool(flagNoDefaultPkgs, lcfg.NoDefaultPackages, gcfg.NoDefaultPackages) {
		set = compromised.Default()
	}
	extra, err := compromised.New(pickStrings(flagPackages, lcfg.Packages, gcfg.Packages)...)
	if err != nil {
		return set, err
	}
	set = set.Union(extra)
	if p := pickString(flagPackagesFile, optStr(lcfg.PackagesFilePath()), optStr(gcfg.PackagesFilePath())); p != "" {
		fromFile, err := compromised.LoadFile(p)
		if err != nil {
			return set, err
		}
		set = set.Union(fromFile)
	}
	if set.Len() == 0 {
		return set, compromised.ErrEmptySet
	}
	return set, nil
}

// colorDisabled reports whether w is a file that is not a terminal.
func colorDisabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && !term.IsTerminal(int(f.Fd()))
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickStrings(cli, local, global []string) []string {
	if len(cli) > 0 {
		return cli
	}
	if len(local) > 0 {
		return local
	}
	return global
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}
