package report

import (
	"encoding/json"
	"io"

	"github.com/redactyl/depsentry/internal/types"
)

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID              string            `json:"ruleId"`
	Level               string            `json:"level"`
	Message             sarifMessage      `json:"message"`
	Locations           []sarifLoc        `json:"locations"`
	PartialFingerprints map[string]string `json:"partialFingerprints"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys         `json:"physicalLocation"`
	LogicalLocations []sarifLogicalLoc `json:"logicalLocations,omitempty"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt `json:"artifactLocation"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifLogicalLoc struct {
	FullyQualifiedName string `json:"fullyQualifiedName"`
	Kind               string `json:"kind"`
}

var ruleDescriptions = []struct {
	kind types.Kind
	text string
}{
	{types.KindManifest, "Compromised package declared in package.json"},
	{types.KindLockTree, "Compromised package in the nested package-lock.json tree"},
	{types.KindLockMap, "Compromised package in the package-lock.json packages map"},
	{types.KindInstalled, "Compromised package installed in node_modules"},
}

func ruleID(k types.Kind) string { return "compromised-package/" + string(k) }

// WriteSARIF writes findings as SARIF 2.1.0 to the provided writer.
func WriteSARIF(w io.Writer, findings []types.Finding, version string) error {
	driver := sarifDriver{Name: "depsentry", Version: version}
	for _, r := range ruleDescriptions {
		driver.Rules = append(driver.Rules, sarifRule{ID: ruleID(r.kind), ShortDescription: sarifMessage{Text: r.text}})
	}
	run := sarifRun{Tool: sarifTool{Driver: driver}, Results: []sarifResult{}}
	for _, f := range findings {
		run.Results = append(run.Results, sarifResult{
			RuleID:  ruleID(f.Kind),
			Level:   "error",
			Message: sarifMessage{Text: f.String()},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{ArtifactLocation: sarifArt{URI: f.Source}},
				LogicalLocations: []sarifLogicalLoc{{FullyQualifiedName: f.Location, Kind: "package"}},
			}},
			PartialFingerprints: map[string]string{"depsentry/v1": f.Fingerprint()},
		})
	}
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
