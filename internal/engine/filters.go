package engine

import (
	"fmt"

	doublestar "github.com/bmatcuk/doublestar/v4"

	"github.com/redactyl/depsentry/internal/types"
)

func validateGlobs(globs []string) error {
	for _, g := range globs {
		if !doublestar.ValidatePattern(g) {
			return fmt.Errorf("invalid ignore glob %q", g)
		}
	}
	return nil
}

// filterByGlobs drops findings whose location matches one of globs and
// returns the kept findings with the number dropped.
func filterByGlobs(findings []types.Finding, globs []string) ([]types.Finding, int) {
	if len(globs) == 0 {
		return findings, 0
	}
	kept := findings[:0:0]
	dropped := 0
	for _, f := range findings {
		if matchesAny(globs, f.Location) || matchesAny(globs, f.Package) {
			dropped++
			continue
		}
		kept = append(kept, f)
	}
	return kept, dropped
}

func matchesAny(globs []string, s string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, s); ok {
			return true
		}
	}
	return false
}
