package depsentry

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagSARIF   bool
	flagFormat  string
	flagNoColor bool
	flagVerbose bool
	flagConfig  string

	// input selection
	flagPath       string
	flagManifest   string
	flagLockfile   string
	flagModulesDir string
	flagMaxDepth   int
	flagIgnore     []string
	flagNoIgnore   bool

	// compromised set
	flagPackages      []string
	flagPackagesFile  string
	flagNoDefaultPkgs bool

	// acknowledged findings and scan history
	flagBaseline string
	flagAuditLog string

	version = "0.1.0"

	// exitFunc terminates the process; tests replace it.
	exitFunc = os.Exit
)

// rootCmd is the base Cobra command. Run without a subcommand it scans the
// current directory.
var rootCmd = &cobra.Command{
	Use:   "depsentry",
	Short: "Detect compromised npm packages in a project",
	Long: "depsentry checks package.json, package-lock.json and node_modules for packages " +
		"known to have been compromised, and exits 2 when any is found.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

// Execute runs the depsentry CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		exitFunc(2)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagJSON, "json", false, "emit JSON")
	pf.BoolVar(&flagSARIF, "sarif", false, "emit SARIF 2.1.0")
	pf.StringVar(&flagFormat, "format", "", "output format: text|table|json|sarif")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "log input diagnostics to stderr")
	pf.StringVar(&flagConfig, "config", "", "config file (default: .depsentry.yml in --path)")

	pf.StringVarP(&flagPath, "path", "p", ".", "project directory")
	pf.StringVar(&flagManifest, "manifest", "", "manifest path relative to --path (default package.json)")
	pf.StringVar(&flagLockfile, "lockfile", "", "lock file path relative to --path (default package-lock.json)")
	pf.StringVar(&flagModulesDir, "modules-dir", "", "installation root relative to --path (default node_modules)")
	pf.IntVar(&flagMaxDepth, "max-depth", 0, "max nesting depth walked in the lock file (0 = 64)")
	pf.StringSliceVar(&flagIgnore, "ignore", nil, "glob of finding locations or package names to ignore (repeatable)")

	pf.BoolVar(&flagNoIgnore, "no-ignore-file", false, "do not read .depsentryignore from --path")
	pf.StringArrayVar(&flagPackages, "package", nil, "additional compromised package name (repeatable)")
	pf.StringVar(&flagPackagesFile, "packages-file", "", "file with additional compromised package names, one per line")
	pf.BoolVar(&flagNoDefaultPkgs, "no-default-packages", false, "do not use the built-in compromised list")
	pf.StringVar(&flagBaseline, "baseline", "", "baseline of acknowledged findings (default depsentry.baseline.json in --path)")
	pf.StringVar(&flagAuditLog, "audit-log", "", "append a JSON record of each scan to this file")
}
