package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/redactyl/depsentry/internal/compromised"
	"github.com/redactyl/depsentry/internal/npm"
)

// wideTree builds a nested lock tree with fanout children per node.
func wideTree(depth, fanout int) string {
	if depth == 0 {
		return `{}`
	}
	parts := make([]string, fanout)
	for i := range parts {
		parts[i] = fmt.Sprintf(`"pkg-%d-%d": {"version": "1.0.0", "dependencies": %s}`, depth, i, wideTree(depth-1, fanout))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func BenchmarkWalkLockTree(b *testing.B) {
	set := compromised.Default()
	for _, fanout := range []int{2, 4, 8} {
		b.Run(fmt.Sprintf("fanout_%d", fanout), func(b *testing.B) {
			deps, err := npm.ParseDeps([]byte(wideTree(5, fanout)), 0)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = WalkLockTree(deps, set, DefaultMaxDepth, DefaultLockfile)
			}
		})
	}
}

func BenchmarkScanWithStats(b *testing.B) {
	dir := b.TempDir()
	lock := `{"dependencies": ` + wideTree(4, 6) + `}`
	if err := os.WriteFile(filepath.Join(dir, DefaultLockfile), []byte(lock), 0o644); err != nil {
		b.Fatal(err)
	}
	cfg := Config{Root: dir, Packages: compromised.Default()}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ScanWithStats(context.Background(), cfg); err != nil {
			b.Fatal(err)
		}
	}
}
