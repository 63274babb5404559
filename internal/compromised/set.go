package compromised

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrInvalidName is returned for names that cannot be an npm package name
	// or that would escape the installation root when joined to it.
	ErrInvalidName = errors.New("invalid package name")
	// ErrEmptySet is returned when a configuration yields no names at all.
	ErrEmptySet = errors.New("compromised package set is empty")
)

// Set is an immutable, ordered set of package names.
type Set struct {
	names  []string
	lookup map[string]struct{}
}

// New builds a Set from names, keeping the first occurrence of duplicates.
// Every name is validated with ValidateName.
func New(names ...string) (Set, error) {
	s := Set{lookup: make(map[string]struct{}, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if err := ValidateName(n); err != nil {
			return Set{}, err
		}
		if _, dup := s.lookup[n]; dup {
			continue
		}
		s.lookup[n] = struct{}{}
		s.names = append(s.names, n)
	}
	return s, nil
}

// MustNew is like New but panics on an invalid name. Intended for literals.
func MustNew(names ...string) Set {
	s, err := New(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// Contains reports whether name is in the set.
func (s Set) Contains(name string) bool {
	_, ok := s.lookup[name]
	return ok
}

// Names returns a copy of the names in iteration order.
func (s Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of names.
func (s Set) Len() int { return len(s.names) }

// Union returns a new Set with the names of s followed by the names of o
// that s does not already contain.
func (s Set) Union(o Set) Set {
	out := Set{lookup: make(map[string]struct{}, s.Len()+o.Len())}
	for _, n := range append(s.Names(), o.names...) {
		if _, dup := out.lookup[n]; dup {
			continue
		}
		out.lookup[n] = struct{}{}
		out.names = append(out.names, n)
	}
	return out
}

// ValidateName checks that name looks like an npm package name: non-empty,
// no whitespace or backslashes, no ".." segments, and at most one slash,
// only in the "@scope/name" form.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 || strings.Contains(name, `\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	parts := strings.Split(name, "/")
	switch len(parts) {
	case 1:
		if strings.HasPrefix(name, "@") {
			return fmt.Errorf("%w: %q: scope without name", ErrInvalidName, name)
		}
	case 2:
		if !strings.HasPrefix(parts[0], "@") || len(parts[0]) < 2 || parts[1] == "" {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, p := range parts {
		if p == "." || p == ".." || strings.TrimLeft(p, "@") == ".." {
			return fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return nil
}
