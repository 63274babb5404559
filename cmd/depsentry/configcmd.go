package depsentry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/redactyl/depsentry/internal/config"
	"github.com/redactyl/depsentry/internal/engine"
	"github.com/redactyl/depsentry/internal/report"
)

var (
	cfgOutput    string
	cfgForce     bool
	cfgFormat    string
	cfgPackages  []string
	cfgNoDefault bool
	cfgMaxDepth  int
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .depsentry.yml with the selected options",
		Args:  cobra.NoArgs,
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", config.LocalNames[0], "output file path")
	initCmd.Flags().BoolVarP(&cfgForce, "force", "f", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&cfgFormat, "format", report.FormatText, "default output format: text|table|json|sarif")
	initCmd.Flags().StringArrayVar(&cfgPackages, "package", nil, "additional compromised package name (repeatable)")
	initCmd.Flags().BoolVar(&cfgNoDefault, "no-default-packages", false, "do not use the built-in compromised list")
	initCmd.Flags().IntVar(&cfgMaxDepth, "max-depth", engine.DefaultMaxDepth, "max nesting depth walked in the lock file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the config files that apply to --path",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	cfgCmd.AddCommand(showCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	format, err := report.ParseFormat(cfgFormat)
	if err != nil {
		return err
	}
	if !cfgForce {
		if _, err := os.Stat(cfgOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	fc := config.FileConfig{
		Packages:          cfgPackages,
		NoDefaultPackages: boolPtr(cfgNoDefault),
		Format:            strPtr(format),
		MaxDepth:          intPtr(cfgMaxDepth),
	}
	b, err := fc.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0o644); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	show := func(label, path string, fc config.FileConfig) error {
		b, err := fc.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# %s: %s\n%s", label, path, b)
		return nil
	}
	if flagConfig != "" {
		fc, err := config.LoadFile(flagConfig)
		if err != nil {
			return err
		}
		if err := show("config", flagConfig, fc); err != nil {
			return err
		}
	} else {
		for _, name := range config.LocalNames {
			p := filepath.Join(flagPath, name)
			if _, err := os.Stat(p); err != nil {
				continue
			}
			fc, err := config.LoadFile(p)
			if err != nil {
				return err
			}
			if err := show("local", p, fc); err != nil {
				return err
			}
			break
		}
	}
	if fc, err := config.LoadGlobal(); err == nil {
		return show("global", config.GlobalPath(), fc)
	}
	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
func boolPtr(v bool) *bool { return &v }
