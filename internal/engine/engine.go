package engine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/redactyl/depsentry/internal/compromised"
	"github.com/redactyl/depsentry/internal/ignore"
	"github.com/redactyl/depsentry/internal/log"
	"github.com/redactyl/depsentry/internal/npm"
	"github.com/redactyl/depsentry/internal/types"
)

// Default input locations, relative to Config.Root.
const (
	DefaultManifest   = "package.json"
	DefaultLockfile   = "package-lock.json"
	DefaultModulesDir = "node_modules"
)

// Config controls one audit pass.
type Config struct {
	// Root is the project directory. Relative input paths resolve against it.
	Root string
	// Manifest, Lockfile and ModulesDir override the default input names.
	Manifest   string
	Lockfile   string
	ModulesDir string
	// Packages is the compromised set to look for.
	Packages compromised.Set
	// MaxDepth bounds the nested lock walk (0 = DefaultMaxDepth).
	MaxDepth int
	// IgnoreGlobs drops findings whose location or package name matches
	// any glob; an invalid glob is a configuration error. Patterns from
	// Root/.depsentryignore are added unless NoIgnoreFile is set; that file
	// is skipped with a warning when it cannot be read or parsed.
	IgnoreGlobs  []string
	NoIgnoreFile bool
	// Logger receives diagnostics; nil discards them.
	Logger *slog.Logger
}

// Result contains findings and what was found of each input.
type Result struct {
	Findings  []types.Finding
	Manifest  npm.Status
	Lockfile  npm.Status
	Modules   bool // installation root was listable
	Truncated []string
	Ignored   int
	Duration  time.Duration
}

// Clean reports whether no finding survived filtering.
func (r Result) Clean() bool { return len(r.Findings) == 0 }

// Scan runs the audit and returns only findings (without stats).
func Scan(ctx context.Context, cfg Config) ([]types.Finding, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Findings, nil
}

// ScanWithStats runs the three checks concurrently and assembles their
// findings in fixed order: manifest, nested lock tree, flat lock map,
// installed packages. Input problems never fail the scan; an error is only
// returned for an invalid configuration or a cancelled context.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	if cfg.Packages.Len() == 0 {
		return result, compromised.ErrEmptySet
	}
	if err := validateGlobs(cfg.IgnoreGlobs); err != nil {
		return result, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}
	globs := cfg.IgnoreGlobs
	if !cfg.NoIgnoreFile {
		ignorePath := filepath.Join(cfg.Root, ignore.FileName)
		fromFile, err := ignore.Load(ignorePath)
		if err != nil {
			logger.Warn("ignore file skipped", "path", ignorePath, "err", err)
		}
		globs = append(append([]string(nil), globs...), fromFile...)
	}
	started := time.Now()

	manifestPath := resolve(cfg.Root, cfg.Manifest, DefaultManifest)
	lockPath := resolve(cfg.Root, cfg.Lockfile, DefaultLockfile)
	modulesPath := resolve(cfg.Root, cfg.ModulesDir, DefaultModulesDir)

	// one slot per source; filled concurrently, read in order
	var (
		manifestFindings []types.Finding
		treeFindings     TreeResult
		mapFindings      []types.Finding
		installFindings  []types.Finding
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		m := npm.LoadManifest(manifestPath)
		m.Path = displayPath(cfg.Manifest, DefaultManifest)
		logLoad(logger, "manifest", manifestPath, m.Status, m.Err)
		result.Manifest = m.Status
		manifestFindings = CheckManifest(m, cfg.Packages)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		l := npm.LoadLockfile(lockPath, cfg.MaxDepth)
		logLoad(logger, "lockfile", lockPath, l.Status, l.Err)
		result.Lockfile = l.Status
		if l.Status != npm.Present {
			return nil
		}
		source := displayPath(cfg.Lockfile, DefaultLockfile)
		treeFindings = WalkLockTree(l.Value.Dependencies, cfg.Packages, cfg.MaxDepth, source)
		for _, trail := range treeFindings.Truncated {
			logger.Warn("lock tree truncated at depth limit", "path", lockPath, "trail", trail)
		}
		mapFindings = CheckPackageMap(l.Value.Packages, cfg.Packages, source)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		found, err := CheckInstalled(modulesPath, cfg.Packages, displayPath(cfg.ModulesDir, DefaultModulesDir))
		switch {
		case err == nil:
			result.Modules = true
		case errors.Is(err, fs.ErrNotExist):
			logger.Debug("installation root absent", "path", modulesPath)
		default:
			logger.Warn("installation root unreadable", "path", modulesPath, "err", err)
		}
		installFindings = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return result, fmt.Errorf("scan cancelled: %w", err)
	}

	var out []types.Finding
	out = append(out, manifestFindings...)
	out = append(out, treeFindings.Findings...)
	out = append(out, mapFindings...)
	out = append(out, installFindings...)

	result.Findings, result.Ignored = filterByGlobs(out, globs)
	result.Truncated = treeFindings.Truncated
	result.Duration = time.Since(started)
	return result, nil
}

func logLoad(logger *slog.Logger, what, path string, status npm.Status, err error) {
	switch status {
	case npm.Absent:
		logger.Debug(what+" absent", "path", path)
	case npm.Malformed:
		logger.Warn(what+" malformed, skipped", "path", path, "err", err)
	default:
		logger.Debug(what+" loaded", "path", path)
	}
}

// resolve joins p (or def when p is empty) to root unless it is absolute.
func resolve(root, p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func displayPath(p, def string) string {
	if p == "" {
		return def
	}
	return filepath.ToSlash(p)
}

func sourceName(p, def string) string {
	if p == "" {
		return def
	}
	return p
}
