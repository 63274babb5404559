package npm

import "github.com/tidwall/gjson"

// DefaultMaxDepth bounds how many levels of the nested tree are decoded.
const DefaultMaxDepth = 64

// Dep is a node of the legacy nested "dependencies" tree of a lock file
// (lockfileVersion 1, and kept alongside "packages" in version 2).
type Dep struct {
	Name         string
	Version      string
	Dependencies Deps
	// Truncated is set when the node has children below the depth limit.
	// They are skipped without being decoded.
	Truncated bool
}

// Deps is one level of the nested tree in document order.
type Deps []Dep

// ParseDeps decodes a nested name->node object, decoding at most maxDepth
// levels (0 selects DefaultMaxDepth).
func ParseDeps(b []byte, maxDepth int) (Deps, error) {
	if !gjson.ValidBytes(b) {
		return nil, errInvalidJSON
	}
	return parseDeps(gjson.ParseBytes(b), 0, depthLimit(maxDepth)), nil
}

// parseDeps decodes the level at depth. Nodes that are not objects keep
// their name and have no children; a repeated name keeps its first
// position. Children that would sit at maxDepth are skipped in one linear
// pass and the parent is marked Truncated.
func parseDeps(obj gjson.Result, depth, maxDepth int) Deps {
	var out Deps
	index := map[string]int{}
	eachMember(obj, func(name string, node gjson.Result) {
		dep := Dep{Name: name}
		eachMember(node, func(key string, v gjson.Result) {
			switch key {
			case "version":
				dep.Version = looseString(v)
			case "dependencies":
				dep.Dependencies, dep.Truncated = nil, false
				if depth+1 >= maxDepth {
					dep.Truncated = hasMembers(v)
				} else {
					dep.Dependencies = parseDeps(v, depth+1, maxDepth)
				}
			}
		})
		if i, ok := index[name]; ok {
			out[i] = dep
			return
		}
		index[name] = len(out)
		out = append(out, dep)
	})
	return out
}

// Package is an entry of the flat "packages" map of a lock file
// (lockfileVersion 2 and 3). Key is the install path, e.g.
// "node_modules/a/node_modules/b"; the project itself has the key "".
type Package struct {
	Key     string
	Version string
}

// Packages is the flat map in document order.
type Packages []Package

func parsePackages(obj gjson.Result) Packages {
	var out Packages
	index := map[string]int{}
	eachMember(obj, func(key string, meta gjson.Result) {
		pkg := Package{Key: key}
		eachMember(meta, func(k string, v gjson.Result) {
			if k == "version" {
				pkg.Version = looseString(v)
			}
		})
		if i, ok := index[key]; ok {
			out[i] = pkg
			return
		}
		index[key] = len(out)
		out = append(out, pkg)
	})
	return out
}

// Lockfile is the subset of package-lock.json used for auditing.
type Lockfile struct {
	LockfileVersion int
	Dependencies    Deps
	Packages        Packages
}

// ParseLockfile decodes a package-lock.json document. It requires a
// top-level object; nested members of the wrong shape are treated as
// empty. At most maxDepth levels of the nested tree are decoded (0 selects
// DefaultMaxDepth), so a degenerate branch costs one scan of its bytes and
// never hides the rest of the file.
func ParseLockfile(b []byte, maxDepth int) (Lockfile, error) {
	doc, err := parseDocument(b)
	if err != nil {
		return Lockfile{}, err
	}
	maxDepth = depthLimit(maxDepth)
	var out Lockfile
	eachMember(doc, func(key string, v gjson.Result) {
		switch key {
		case "lockfileVersion":
			out.LockfileVersion = 0
			if v.Type == gjson.Number {
				out.LockfileVersion = int(v.Int())
			}
		case "dependencies":
			out.Dependencies = parseDeps(v, 0, maxDepth)
		case "packages":
			out.Packages = parsePackages(v)
		}
	})
	return out, nil
}

func depthLimit(maxDepth int) int {
	if maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return maxDepth
}
