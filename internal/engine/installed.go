package engine

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/redactyl/depsentry/internal/compromised"
	"github.com/redactyl/depsentry/internal/types"
)

// CheckInstalled reports each compromised name, in set order, that exists
// as a directory (or a symlink to one) directly under root. Scoped names
// are looked up as root/@scope/name. A missing or unreadable root yields no
// findings and a non-nil error for diagnostics only.
//
// Packages hoisted elsewhere or nested inside other packages are not seen.
func CheckInstalled(root string, set compromised.Set, display string) ([]types.Finding, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Name()] = true
	}
	var out []types.Finding
	for _, name := range set.Names() {
		first, _, _ := strings.Cut(name, "/")
		if !present[first] {
			continue
		}
		st, err := os.Stat(filepath.Join(root, filepath.FromSlash(name)))
		if err != nil || !st.IsDir() {
			continue
		}
		out = append(out, types.Finding{
			Kind:     types.KindInstalled,
			Package:  name,
			Location: path.Join(display, name),
			Source:   display,
		})
	}
	return out, nil
}
