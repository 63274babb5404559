package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redactyl/depsentry/internal/compromised"
	"github.com/redactyl/depsentry/internal/npm"
	"github.com/redactyl/depsentry/internal/types"
)

func decodeDeps(t *testing.T, body string) npm.Deps {
	t.Helper()
	d, err := npm.ParseDeps([]byte(body), 0)
	require.NoError(t, err)
	return d
}

// chain builds a nested tree a0 > a1 > ... > a(depth-1) > leaf.
func chain(depth int, leaf string) npm.Deps {
	deps := npm.Deps{{Name: leaf}}
	for i := depth - 1; i >= 0; i-- {
		deps = npm.Deps{{Name: "a" + string(rune('a'+i%26)), Dependencies: deps}}
	}
	return deps
}

func TestWalkLockTree_PathTrail(t *testing.T) {
	set := compromised.MustNew("chalk", "debug")
	deps := decodeDeps(t, `{
		"express": {"version": "4.0.0", "dependencies": {
			"debug": {"version": "2.6.9"},
			"body-parser": {"dependencies": {"debug": {"version": "2.6.9"}}}
		}},
		"chalk": {"version": "5.0.0"}
	}`)
	res := WalkLockTree(deps, set, 0, "package-lock.json")
	require.Len(t, res.Findings, 3)
	assert.Equal(t, types.Finding{Kind: types.KindLockTree, Package: "debug", Location: "express > debug", Source: "package-lock.json"}, res.Findings[0])
	assert.Equal(t, "express > body-parser > debug", res.Findings[1].Location)
	assert.Equal(t, "chalk", res.Findings[2].Location)
	assert.Empty(t, res.Truncated)
}

func TestWalkLockTree_AncestorCountMatchesDepth(t *testing.T) {
	set := compromised.MustNew("chalk")
	for _, d := range []int{0, 1, 2, 5, 19} {
		res := WalkLockTree(chain(d, "chalk"), set, 0, "")
		require.Len(t, res.Findings, 1, "depth %d", d)
		segs := strings.Split(res.Findings[0].Location, PathSeparator)
		assert.Len(t, segs, d+1, "depth %d", d)
		assert.Equal(t, "chalk", segs[len(segs)-1])
	}
}

func TestWalkLockTree_EmptyRoot(t *testing.T) {
	set := compromised.Default()
	assert.Empty(t, WalkLockTree(nil, set, 0, "").Findings)
	assert.Empty(t, WalkLockTree(npm.Deps{}, set, 0, "").Findings)
}

func TestWalkLockTree_DepthLimitCutsSubtree(t *testing.T) {
	set := compromised.MustNew("chalk")
	res := WalkLockTree(chain(10, "chalk"), set, 5, "")
	assert.Empty(t, res.Findings)
	require.Len(t, res.Truncated, 1)
	assert.Len(t, strings.Split(res.Truncated[0], PathSeparator), 5)

	res = WalkLockTree(chain(4, "chalk"), set, 5, "")
	assert.Len(t, res.Findings, 1)
	assert.Empty(t, res.Truncated)
}

func TestWalkLockTree_SelfReferentialTerminates(t *testing.T) {
	set := compromised.MustNew("chalk")
	loop := make(npm.Deps, 1)
	loop[0] = npm.Dep{Name: "chalk", Dependencies: loop}
	res := WalkLockTree(loop, set, DefaultMaxDepth, "")
	assert.Len(t, res.Findings, DefaultMaxDepth)
	assert.Len(t, res.Truncated, 1)
}

func TestPackageName(t *testing.T) {
	cases := []struct {
		key  string
		name string
		ok   bool
	}{
		{"node_modules/foo/node_modules/bar", "bar", true},
		{"node_modules/bar", "bar", true},
		{"node_modules/bar/lib", "bar", true},
		{"node_modules/@scope/pkg", "@scope/pkg", true},
		{"node_modules/a/node_modules/@scope/pkg", "@scope/pkg", true},
		{"node_modules/@scope", "@scope", true},
		{"packages/web/node_modules/debug", "debug", true},
		{"node_modules/", "", false},
		{"node_modules/foo/node_modules/", "", false},
		{"", "", false},
		{"packages/web", "", false},
		{"node_modules", "", false},
	}
	for _, c := range cases {
		name, ok := PackageName(c.key)
		assert.Equal(t, c.ok, ok, c.key)
		assert.Equal(t, c.name, name, c.key)
	}
}

func TestCheckPackageMap(t *testing.T) {
	set := compromised.MustNew("debug", "@ctrl/tinycolor")
	pkgs := npm.Packages{
		{Key: ""},
		{Key: "node_modules/debug"},
		{Key: "packages/debug"},
		{Key: "node_modules/express/node_modules/debug"},
		{Key: "node_modules/@ctrl/tinycolor"},
		{Key: "node_modules/"},
	}
	got := CheckPackageMap(pkgs, set, "package-lock.json")
	require.Len(t, got, 3)
	assert.Equal(t, types.Finding{Kind: types.KindLockMap, Package: "debug", Location: "node_modules/debug", Source: "package-lock.json"}, got[0])
	assert.Equal(t, "node_modules/express/node_modules/debug", got[1].Location)
	assert.Equal(t, "@ctrl/tinycolor", got[2].Package)
}

func TestWalkLockTree_DecoderTruncatedNode(t *testing.T) {
	set := compromised.MustNew("chalk")
	deps := npm.Deps{
		{Name: "chalk"},
		{Name: "evil", Dependencies: npm.Deps{{Name: "deeper", Truncated: true}}},
	}
	res := WalkLockTree(deps, set, 0, "")
	require.Len(t, res.Findings, 1)
	assert.Equal(t, "chalk", res.Findings[0].Location)
	assert.Equal(t, []string{"evil > deeper"}, res.Truncated)
}
