// Package core provides a small, stable facade over depsentry's internal
// engine for programs that want to embed the compromised-package scan
// without shelling out to the CLI.
//
// Example:
//
//	res, err := core.Scan(ctx, core.Options{Root: "."})
//	if err != nil { /* handle */ }
//	if !res.Clean() {
//		_ = core.WriteJSON(os.Stdout, res.Findings)
//	}
package core
