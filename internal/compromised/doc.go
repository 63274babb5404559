// Package compromised holds the set of package names known to have been
// subject to a supply-chain compromise. A Set is immutable once built and
// iterates in the order its names were added.
package compromised
