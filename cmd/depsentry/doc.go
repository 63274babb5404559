// Package depsentry provides the command-line interface for the depsentry
// tool. It configures subcommands (scan, list, config, ci, etc.), parses
// flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/depsentry/cmd/depsentry"
//	func main() { depsentry.Execute() }
package depsentry
