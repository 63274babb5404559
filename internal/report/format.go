package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/redactyl/depsentry/internal/types"
)

// Output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Formats lists the accepted format names.
var Formats = []string{FormatText, FormatTable, FormatJSON, FormatSARIF}

// ParseFormat normalises a format name; empty selects text.
func ParseFormat(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return FormatText, nil
	}
	for _, f := range Formats {
		if s == f {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want %s)", s, strings.Join(Formats, "|"))
}

// Options configures Write.
type Options struct {
	Format  string
	NoColor bool
	Version string
}

// Write renders findings in the selected format.
func Write(w io.Writer, findings []types.Finding, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return WriteJSON(w, findings)
	case FormatSARIF:
		return WriteSARIF(w, findings, opts.Version)
	case FormatTable:
		return PrintTable(w, findings, PrintOptions{NoColor: opts.NoColor})
	default:
		PrintText(w, findings, PrintOptions{NoColor: opts.NoColor})
		return nil
	}
}
