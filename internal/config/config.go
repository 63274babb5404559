package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ErrNoConfig is returned when no config file exists at the searched
// locations.
var ErrNoConfig = errors.New("no config")

// LocalNames are the file names searched in the project directory, in order.
var LocalNames = []string{".depsentry.yml", ".depsentry.yaml", "depsentry.yml", "depsentry.yaml"}

// FileConfig is the on-disk YAML configuration shape. Pointer fields
// distinguish "unset" from the zero value.
type FileConfig struct {
	// Packages are added to the built-in compromised list.
	Packages []string `yaml:"packages,omitempty"`
	// PackagesFile names a list file, one package per line. Relative paths
	// resolve against the directory of the config file.
	PackagesFile *string `yaml:"packages_file,omitempty"`
	// NoDefaultPackages drops the built-in list.
	NoDefaultPackages *bool `yaml:"no_default_packages,omitempty"`
	// Ignore holds doublestar globs matched against finding locations and
	// package names.
	Ignore []string `yaml:"ignore,omitempty"`
	// NoIgnoreFile skips the project's .depsentryignore.
	NoIgnoreFile *bool `yaml:"no_ignore_file,omitempty"`

	Format     *string `yaml:"format,omitempty"`
	MaxDepth   *int    `yaml:"max_depth,omitempty"`
	Manifest   *string `yaml:"manifest,omitempty"`
	Lockfile   *string `yaml:"lockfile,omitempty"`
	ModulesDir *string `yaml:"modules_dir,omitempty"`
	NoColor    *bool   `yaml:"no_color,omitempty"`
	Baseline   *string `yaml:"baseline,omitempty"`
	AuditLog   *string `yaml:"audit_log,omitempty"`

	// dir is the directory the file was loaded from.
	dir string
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// LoadLocal searches for a project-local config file in root.
func LoadLocal(root string) (FileConfig, error) {
	for _, name := range LocalNames {
		p := filepath.Join(root, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNoConfig
}

// GlobalPath returns the global config location under the XDG config home.
// The environment is re-read on each call.
func GlobalPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, "depsentry", "config.yml")
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	p := GlobalPath()
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, ErrNoConfig
	}
	return LoadFile(p)
}

// PackagesFilePath returns the packages file path resolved against the
// directory of the config file, or "" when unset.
func (fc FileConfig) PackagesFilePath() string {
	if fc.PackagesFile == nil || *fc.PackagesFile == "" {
		return ""
	}
	p := *fc.PackagesFile
	if filepath.IsAbs(p) || fc.dir == "" {
		return p
	}
	return filepath.Join(fc.dir, p)
}

// Marshal renders fc as YAML.
func (fc FileConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(&fc)
}
