// Package audit appends one JSON record per scan to a JSONL file so CI runs
// leave a trail of what was checked and found.
package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redactyl/depsentry/internal/engine"
	"github.com/redactyl/depsentry/internal/types"
)

type ScanRecord struct {
	Timestamp      time.Time       `json:"timestamp"`
	ScanID         string          `json:"scan_id"`
	Root           string          `json:"root"`
	TotalFindings  int             `json:"total_findings"`
	NewFindings    int             `json:"new_findings"`
	BaselinedCount int             `json:"baselined_count"`
	IgnoredCount   int             `json:"ignored_count"`
	KindCounts     map[string]int  `json:"kind_counts"`
	Manifest       string          `json:"manifest"`
	Lockfile       string          `json:"lockfile"`
	Modules        bool            `json:"modules"`
	Duration       string          `json:"duration"`
	BaselineFile   string          `json:"baseline_file,omitempty"`
	Findings       []types.Finding `json:"findings,omitempty"`
}

type AuditLog struct {
	logPath string
}

func NewAuditLog(path string) *AuditLog {
	return &AuditLog{logPath: path}
}

// maxRecordSize bounds one JSONL line; a record carries every reported
// finding.
const maxRecordSize = 16 << 20

// LoadHistory returns the records newest first. Lines that do not decode,
// such as one cut short by an interrupted append, are skipped.
func (a *AuditLog) LoadHistory() ([]ScanRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	for sc.Scan() {
		var record ScanRecord
		if err := json.Unmarshal(sc.Bytes(), &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

func (a *AuditLog) LogScan(record ScanRecord) error {
	if record.ScanID == "" {
		record.ScanID = fmt.Sprintf("scan_%d", record.Timestamp.UnixNano())
	}

	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// CreateScanRecord summarises res. reported is what remained after the
// baseline was applied.
func CreateScanRecord(root string, res engine.Result, reported []types.Finding, baselineFile string) ScanRecord {
	kinds := make(map[string]int)
	for _, f := range res.Findings {
		kinds[string(f.Kind)]++
	}
	return ScanRecord{
		Timestamp:      time.Now().UTC(),
		Root:           root,
		TotalFindings:  len(res.Findings),
		NewFindings:    len(reported),
		BaselinedCount: len(res.Findings) - len(reported),
		IgnoredCount:   res.Ignored,
		KindCounts:     kinds,
		Manifest:       res.Manifest.String(),
		Lockfile:       res.Lockfile.String(),
		Modules:        res.Modules,
		Duration:       res.Duration.String(),
		BaselineFile:   baselineFile,
		Findings:       reported,
	}
}
