package core

import (
	"context"
	"log/slog"

	"github.com/redactyl/depsentry/internal/compromised"
	"github.com/redactyl/depsentry/internal/engine"
	"github.com/redactyl/depsentry/internal/types"
)

// Re-exported so callers can depend on a stable import path.
type (
	Finding = types.Finding
	Kind    = types.Kind
	Result  = engine.Result
)

const (
	KindManifest  = types.KindManifest
	KindLockTree  = types.KindLockTree
	KindLockMap   = types.KindLockMap
	KindInstalled = types.KindInstalled
)

// Options selects the project and the package names to look for. Empty
// paths fall back to package.json, package-lock.json and node_modules under
// Root.
type Options struct {
	Root       string
	Manifest   string
	Lockfile   string
	ModulesDir string

	// Packages are checked in addition to the built-in list, or instead of
	// it when NoDefaultPackages is set.
	Packages          []string
	NoDefaultPackages bool

	MaxDepth int
	// Ignore globs are combined with Root/.depsentryignore unless
	// NoIgnoreFile is set.
	Ignore       []string
	NoIgnoreFile bool
	Logger       *slog.Logger
}

// Scan is the stable entrypoint for other programs.
func Scan(ctx context.Context, opts Options) (Result, error) {
	var set compromised.Set
	if !opts.NoDefaultPackages {
		set = compromised.Default()
	}
	extra, err := compromised.New(opts.Packages...)
	if err != nil {
		return Result{}, err
	}
	return engine.ScanWithStats(ctx, engine.Config{
		Root:         opts.Root,
		Manifest:     opts.Manifest,
		Lockfile:     opts.Lockfile,
		ModulesDir:   opts.ModulesDir,
		Packages:     set.Union(extra),
		MaxDepth:     opts.MaxDepth,
		IgnoreGlobs:  opts.Ignore,
		NoIgnoreFile: opts.NoIgnoreFile,
		Logger:       opts.Logger,
	})
}

// DefaultPackages returns the built-in compromised package names.
func DefaultPackages() []string { return compromised.Default().Names() }
