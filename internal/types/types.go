package types

import (
	"fmt"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
)

// Kind identifies which source produced a finding.
type Kind string

const (
	KindManifest  Kind = "manifest"
	KindLockTree  Kind = "lock-tree"
	KindLockMap   Kind = "lock-map"
	KindInstalled Kind = "installed"
)

// Finding describes one compromised package name detected in a source.
// Location is the group name for manifest findings, the ancestry trail for
// nested lock findings, the original key for flat-map lock findings and the
// directory path for installed findings.
type Finding struct {
	Kind     Kind   `json:"kind"`
	Package  string `json:"package"`
	Location string `json:"location"`
	Source   string `json:"source"` // file or directory the finding came from
}

// String renders the finding as a single human-readable report line.
func (f Finding) String() string {
	switch f.Kind {
	case KindManifest:
		return fmt.Sprintf("Direct dep found: %s in %s", f.Package, f.Location)
	case KindLockTree:
		return fmt.Sprintf("Transitive dep found: %s at %s", f.Package, f.Location)
	case KindLockMap:
		return fmt.Sprintf("Transitive map found: %s at %s", f.Package, f.Location)
	case KindInstalled:
		return fmt.Sprintf("Installed node_module found: %s", f.Package)
	default:
		return fmt.Sprintf("%s found: %s at %s", f.Kind, f.Package, f.Location)
	}
}

// Fingerprint is a stable identifier for the finding, used by the machine
// readable reports so consumers can track a finding across runs.
func (f Finding) Fingerprint() string {
	sum := xxhash.Sum64String(string(f.Kind) + "|" + f.Package + "|" + f.Location)
	return strconv.FormatUint(sum, 16)
}
