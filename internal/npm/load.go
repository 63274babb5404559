package npm

import (
	"errors"
	"io/fs"
	"os"
)

// Status is the outcome of loading one input file.
type Status int

const (
	// Absent means the file does not exist.
	Absent Status = iota
	// Present means the file was read and decoded.
	Present
	// Malformed means the file exists but could not be read or decoded.
	Malformed
)

func (s Status) String() string {
	switch s {
	case Present:
		return "present"
	case Malformed:
		return "malformed"
	default:
		return "absent"
	}
}

// Load is the result of reading an input. Value is meaningful only when
// Status is Present; Err explains a Malformed status.
type Load[T any] struct {
	Path   string
	Status Status
	Value  T
	Err    error
}

// Loaded wraps an in-memory value as a Present result.
func Loaded[T any](v T) Load[T] {
	return Load[T]{Status: Present, Value: v}
}

// LoadManifest reads and decodes a package.json.
func LoadManifest(path string) Load[Manifest] {
	return load(path, ParseManifest)
}

// LoadLockfile reads and decodes a package-lock.json, decoding at most
// maxDepth levels of its nested tree (0 selects DefaultMaxDepth).
func LoadLockfile(path string, maxDepth int) Load[Lockfile] {
	return load(path, func(b []byte) (Lockfile, error) {
		return ParseLockfile(b, maxDepth)
	})
}

func load[T any](path string, parse func([]byte) (T, error)) Load[T] {
	res := Load[T]{Path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			res.Status = Absent
			return res
		}
		res.Status = Malformed
		res.Err = err
		return res
	}
	v, err := parse(b)
	if err != nil {
		res.Status = Malformed
		res.Err = err
		return res
	}
	res.Status = Present
	res.Value = v
	return res
}
