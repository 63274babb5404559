package core

import (
	"encoding/json"
	"io"

	"github.com/redactyl/depsentry/internal/report"
)

// WriteJSON writes the same document as `depsentry --json`.
func WriteJSON(w io.Writer, findings []Finding) error {
	return report.WriteJSON(w, findings)
}

// ReadJSON decodes a document written by WriteJSON (or the CLI) back into
// findings. The per-finding id and message are derived and dropped.
func ReadJSON(r io.Reader) ([]Finding, error) {
	var doc struct {
		Findings []Finding `json:"findings"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Findings, nil
}
