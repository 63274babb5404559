package engine

import (
	"github.com/redactyl/depsentry/internal/compromised"
	"github.com/redactyl/depsentry/internal/npm"
	"github.com/redactyl/depsentry/internal/types"
)

// CheckManifest reports every compromised name declared in one of the
// manifest dependency groups, group by group in npm.Groups order. An absent
// or malformed manifest contributes nothing.
func CheckManifest(m npm.Load[npm.Manifest], set compromised.Set) []types.Finding {
	if m.Status != npm.Present {
		return nil
	}
	var out []types.Finding
	for _, group := range npm.Groups {
		for _, spec := range m.Value.Group(group) {
			if !set.Contains(spec.Name) {
				continue
			}
			out = append(out, types.Finding{
				Kind:     types.KindManifest,
				Package:  spec.Name,
				Location: group,
				Source:   sourceName(m.Path, DefaultManifest),
			})
		}
	}
	return out
}
