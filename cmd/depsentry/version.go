package depsentry

import (
	"fmt"

	semver "github.com/blang/semver/v4"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the depsentry version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "depsentry", displayVersion(version))
		},
	}
	rootCmd.AddCommand(cmd)
}

// displayVersion normalises a version set at build time ("1.2", "v1.2.3")
// to semver form. Non-semver values such as commit hashes pass through.
func displayVersion(v string) string {
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		return v
	}
	return "v" + ver.String()
}
