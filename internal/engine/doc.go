// Package engine contains the core audit logic of depsentry. It checks the
// project manifest, walks both forms of the lock file and probes the
// installation root, then assembles the findings in a fixed order. This
// package is internal; external consumers should use the facade in pkg/core.
package engine
