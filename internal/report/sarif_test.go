package report

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWriteSARIF_Shape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, sample, "1.2.3"); err != nil {
		t.Fatalf("WriteSARIF: %v", err)
	}
	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name    string `json:"name"`
					Version string `json:"version"`
					Rules   []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
				PartialFingerprints map[string]string `json:"partialFingerprints"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v; body=%s", err, buf.String())
	}
	if doc.Version != "2.1.0" || len(doc.Runs) != 1 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	run := doc.Runs[0]
	if run.Tool.Driver.Name != "depsentry" || run.Tool.Driver.Version != "1.2.3" {
		t.Fatalf("unexpected driver: %+v", run.Tool.Driver)
	}
	if len(run.Tool.Driver.Rules) != 4 {
		t.Fatalf("expected one rule per finding kind, got %d", len(run.Tool.Driver.Rules))
	}
	if len(run.Results) != len(sample) {
		t.Fatalf("expected %d results, got %d", len(sample), len(run.Results))
	}
	r := run.Results[0]
	if r.RuleID != "compromised-package/manifest" || r.Level != "error" {
		t.Fatalf("unexpected result: %+v", r)
	}
	if r.Message.Text != "Direct dep found: chalk in dependencies" {
		t.Fatalf("unexpected message: %q", r.Message.Text)
	}
	if r.PartialFingerprints["depsentry/v1"] == "" {
		t.Fatalf("expected fingerprint")
	}
}

func TestWriteSARIF_EmptyResultsArray(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSARIF(&buf, nil, "dev"); err != nil {
		t.Fatalf("WriteSARIF: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"results": []`)) {
		t.Fatalf("expected empty results array; got: %s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sample); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var doc struct {
		Clean    bool `json:"clean"`
		Findings []struct {
			ID       string `json:"id"`
			Kind     string `json:"kind"`
			Package  string `json:"package"`
			Location string `json:"location"`
			Source   string `json:"source"`
			Message  string `json:"message"`
		} `json:"findings"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.Clean || len(doc.Findings) != 4 {
		t.Fatalf("unexpected document: %+v", doc)
	}
	f := doc.Findings[1]
	if f.Kind != "lock-tree" || f.Location != "express > debug" || f.ID == "" {
		t.Fatalf("unexpected finding: %+v", f)
	}
	if doc.Findings[1].ID == doc.Findings[2].ID {
		t.Fatalf("expected distinct ids for distinct findings")
	}
}

func TestWriteJSON_Clean(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"findings": []`)) || !bytes.Contains(buf.Bytes(), []byte(`"clean": true`)) {
		t.Fatalf("unexpected clean document: %s", buf.String())
	}
}
