package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/redactyl/depsentry/internal/types"
)

// Banners of the text report.
const (
	FoundHeader   = "⚠️ Compromised packages FOUND:"
	CleanMessage  = "✅ No compromised packages detected in package.json / package-lock.json / node_modules"
	tableTitleFmt = "Compromised packages: %d"
)

// PrintOptions tunes the human-readable renderers.
type PrintOptions struct {
	NoColor bool
}

// PrintText writes the canonical report: a warning header followed by one
// line per finding in the order given, or the success line when there are
// none.
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, paint(w, opts, CleanMessage, okStyle))
		return
	}
	fmt.Fprintln(w, paint(w, opts, FoundHeader, warnStyle))
	for _, f := range findings {
		fmt.Fprintln(w, f.String())
	}
}

// PrintTable writes findings as a bordered table. Rows keep the order
// given; no sorting is applied so the report mirrors the scan order.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) error {
	if len(findings) == 0 {
		fmt.Fprintln(w, paint(w, opts, CleanMessage, okStyle))
		return nil
	}
	fmt.Fprintln(w, paint(w, opts, fmt.Sprintf(tableTitleFmt, len(findings)), warnStyle))
	table := tablewriter.NewWriter(w)
	table.Header("Kind", "Package", "Location", "Source")
	for _, f := range findings {
		if err := table.Append(string(f.Kind), f.Package, f.Location, f.Source); err != nil {
			return err
		}
	}
	return table.Render()
}

type style int

const (
	okStyle style = iota
	warnStyle
)

func paint(w io.Writer, opts PrintOptions, s string, st style) string {
	if opts.NoColor {
		return s
	}
	r := lipgloss.NewRenderer(w)
	switch st {
	case warnStyle:
		return r.NewStyle().Bold(true).Foreground(lipgloss.Color("#D93025")).Render(s)
	default:
		return r.NewStyle().Foreground(lipgloss.Color("#22A06B")).Render(s)
	}
}
