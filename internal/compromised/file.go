package compromised

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// LoadFile reads a list of package names, one per line. Blank lines and
// lines starting with '#' are skipped; trailing "# ..." comments are removed.
func LoadFile(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read package list: %w", err)
	}
	return Parse(b)
}

// Parse reads names in the LoadFile format from b.
func Parse(b []byte) (Set, error) {
	var names []string
	sc := bufio.NewScanner(bytes.NewReader(b))
	line := 0
	for sc.Scan() {
		line++
		t := sc.Text()
		if i := strings.Index(t, "#"); i >= 0 {
			t = t[:i]
		}
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if err := ValidateName(t); err != nil {
			return Set{}, fmt.Errorf("line %d: %w", line, err)
		}
		names = append(names, t)
	}
	if err := sc.Err(); err != nil {
		return Set{}, err
	}
	return New(names...)
}
