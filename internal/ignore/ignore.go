// Package ignore reads .depsentryignore files: one doublestar glob per
// line, matched against finding locations and package names.
package ignore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// FileName is looked up in the project root.
const FileName = ".depsentryignore"

// Load returns the patterns in path. Blank lines and lines starting with
// '#' are skipped. A missing file yields no patterns and no error.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []string
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !doublestar.ValidatePattern(line) {
			return nil, fmt.Errorf("%s:%d: invalid glob %q", path, n, line)
		}
		patterns = append(patterns, line)
	}
	return patterns, sc.Err()
}
