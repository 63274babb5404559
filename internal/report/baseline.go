package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/redactyl/depsentry/internal/types"
)

// BaselineFile is the default baseline name, relative to the project root.
const BaselineFile = "depsentry.baseline.json"

// Baseline holds fingerprints of findings that have been acknowledged.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

// LoadBaseline reads a baseline written by SaveBaseline. A missing file is
// reported as an fs.ErrNotExist error so callers can treat it as empty.
func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(f, &b); err != nil {
		return b, fmt.Errorf("parse baseline %s: %w", path, err)
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

// SaveBaseline records every finding as acknowledged.
func SaveBaseline(path string, findings []types.Finding) error {
	b := Baseline{Items: map[string]bool{}}
	for _, f := range findings {
		b.Items[f.Fingerprint()] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(buf, '\n'), 0644)
}

// FilterNewFindings drops findings present in base and returns the rest
// along with the number dropped.
func FilterNewFindings(findings []types.Finding, base Baseline) ([]types.Finding, int) {
	var out []types.Finding
	for _, f := range findings {
		if !base.Items[f.Fingerprint()] {
			out = append(out, f)
		}
	}
	return out, len(findings) - len(out)
}
