package report

import (
	"encoding/json"
	"io"

	"github.com/redactyl/depsentry/internal/types"
)

type jsonFinding struct {
	ID string `json:"id"`
	types.Finding
	Message string `json:"message"`
}

type jsonReport struct {
	Clean    bool          `json:"clean"`
	Findings []jsonFinding `json:"findings"`
}

// WriteJSON writes findings as an indented JSON document.
func WriteJSON(w io.Writer, findings []types.Finding) error {
	doc := jsonReport{Clean: len(findings) == 0, Findings: make([]jsonFinding, 0, len(findings))}
	for _, f := range findings {
		doc.Findings = append(doc.Findings, jsonFinding{ID: f.Fingerprint(), Finding: f, Message: f.String()})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
