package report

import "github.com/redactyl/depsentry/internal/types"

// Process exit codes. No other codes are used.
const (
	ExitClean    = 0
	ExitFindings = 2
)

// ExitCode returns ExitFindings when any finding is present.
func ExitCode(findings []types.Finding) int {
	if len(findings) > 0 {
		return ExitFindings
	}
	return ExitClean
}
