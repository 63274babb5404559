package engine

import (
	"strings"

	"github.com/redactyl/depsentry/internal/compromised"
	"github.com/redactyl/depsentry/internal/npm"
	"github.com/redactyl/depsentry/internal/types"
)

const (
	// PathSeparator joins the ancestry trail of a nested lock finding.
	PathSeparator = " > "
	// DefaultMaxDepth bounds the nested walk and the nested decode.
	DefaultMaxDepth = npm.DefaultMaxDepth
	// ModulesMarker is the path segment that precedes a package name in the
	// keys of the flat lock map.
	ModulesMarker = "node_modules/"
)

// TreeResult holds the nested walk findings and the trails of subtrees that
// were cut off at the depth limit.
type TreeResult struct {
	Findings  []types.Finding
	Truncated []string
}

// WalkLockTree walks the legacy nested dependency tree depth-first in
// document order. Every compromised name is reported with the trail of its
// ancestors, root first. Subtrees deeper than maxDepth levels (0 selects
// DefaultMaxDepth) are not visited; their trail is recorded in Truncated, as
// is the trail of every node the decoder marked Truncated.
func WalkLockTree(deps npm.Deps, set compromised.Set, maxDepth int, source string) TreeResult {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	w := treeWalker{set: set, maxDepth: maxDepth, source: source}
	w.walk(deps, "", 0)
	return w.res
}

type treeWalker struct {
	set      compromised.Set
	maxDepth int
	source   string
	res      TreeResult
}

func (w *treeWalker) walk(deps npm.Deps, prefix string, depth int) {
	if len(deps) == 0 {
		return
	}
	if depth >= w.maxDepth {
		w.res.Truncated = append(w.res.Truncated, strings.TrimSuffix(prefix, PathSeparator))
		return
	}
	for _, d := range deps {
		path := prefix + d.Name
		if w.set.Contains(d.Name) {
			w.res.Findings = append(w.res.Findings, types.Finding{
				Kind:     types.KindLockTree,
				Package:  d.Name,
				Location: path,
				Source:   w.source,
			})
		}
		if d.Truncated {
			w.res.Truncated = append(w.res.Truncated, path)
			continue
		}
		w.walk(d.Dependencies, path+PathSeparator, depth+1)
	}
}

// CheckPackageMap reports every key of the flat lock map whose package name
// is compromised. Keys without the node_modules/ marker are skipped.
func CheckPackageMap(pkgs npm.Packages, set compromised.Set, source string) []types.Finding {
	var out []types.Finding
	for _, p := range pkgs {
		name, ok := PackageName(p.Key)
		if !ok || !set.Contains(name) {
			continue
		}
		out = append(out, types.Finding{
			Kind:     types.KindLockMap,
			Package:  name,
			Location: p.Key,
			Source:   source,
		})
	}
	return out
}

// PackageName derives the package name from a flat lock map key: the text
// after the last "node_modules/" up to the next "/" or the end of the key.
// A segment starting with '@' is a scope and takes the following segment
// with it, so "node_modules/@s/p" yields "@s/p". It returns false when the
// key has no marker or nothing follows the last marker.
func PackageName(key string) (string, bool) {
	i := strings.LastIndex(key, ModulesMarker)
	if i < 0 {
		return "", false
	}
	name, rest, _ := strings.Cut(key[i+len(ModulesMarker):], "/")
	if strings.HasPrefix(name, "@") {
		if sub, _, _ := strings.Cut(rest, "/"); sub != "" {
			name += "/" + sub
		}
	}
	if name == "" {
		return "", false
	}
	return name, true
}
