package npm

import "github.com/tidwall/gjson"

// Dependency group keys of package.json, in the order they are checked.
const (
	GroupDependencies         = "dependencies"
	GroupDevDependencies      = "devDependencies"
	GroupPeerDependencies     = "peerDependencies"
	GroupOptionalDependencies = "optionalDependencies"
)

// Groups lists the manifest dependency groups in check order.
var Groups = []string{
	GroupDependencies,
	GroupDevDependencies,
	GroupPeerDependencies,
	GroupOptionalDependencies,
}

// Spec is one declared dependency: a package name and its version range.
type Spec struct {
	Name    string
	Version string
}

// Specs is a dependency group in declaration order.
type Specs []Spec

// parseSpecs decodes a name->version object keeping document order. A
// repeated name keeps its first position and its last version. An array
// group lists bare names; its non-string elements are skipped. Any other
// value is an empty group.
func parseSpecs(v gjson.Result) Specs {
	var out Specs
	index := map[string]int{}
	add := func(sp Spec) {
		if i, ok := index[sp.Name]; ok {
			out[i] = sp
			return
		}
		index[sp.Name] = len(out)
		out = append(out, sp)
	}
	switch {
	case v.IsObject():
		eachMember(v, func(name string, ver gjson.Result) {
			add(Spec{Name: name, Version: looseString(ver)})
		})
	case v.IsArray():
		v.ForEach(func(_, el gjson.Result) bool {
			if el.Type == gjson.String {
				add(Spec{Name: el.Str})
			}
			return true
		})
	}
	return out
}

// Manifest is the subset of package.json used for auditing. Missing groups
// are empty.
type Manifest struct {
	Name   string
	groups map[string]Specs
}

// NewManifest builds a Manifest from groups keyed by the Group* constants.
func NewManifest(name string, groups map[string]Specs) Manifest {
	m := Manifest{Name: name, groups: map[string]Specs{}}
	for k, v := range groups {
		m.groups[k] = v
	}
	return m
}

// Group returns the dependencies declared under key, or nil.
func (m Manifest) Group(key string) Specs {
	return m.groups[key]
}

// ParseManifest decodes a package.json document. Top-level keys match
// case-sensitively, as npm does; a repeated key takes its last value.
func ParseManifest(b []byte) (Manifest, error) {
	doc, err := parseDocument(b)
	if err != nil {
		return Manifest{}, err
	}
	out := Manifest{groups: map[string]Specs{}}
	eachMember(doc, func(key string, v gjson.Result) {
		switch key {
		case "name":
			out.Name = looseString(v)
		case GroupDependencies, GroupDevDependencies, GroupPeerDependencies, GroupOptionalDependencies:
			out.groups[key] = parseSpecs(v)
		}
	})
	return out, nil
}
