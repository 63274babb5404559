package depsentry

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// exitCode runs the binary as a subprocess so os.Exit is observed for real.
func exitCode(t *testing.T, dir string, args ...string) (string, int) {
	t.Helper()
	if testing.Short() {
		t.Skip("subprocess test")
	}
	cmd := exec.Command("go", append([]string{"run", ".", "-p", dir, "--no-color"}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	var ee *exec.ExitError
	switch {
	case err == nil:
		return out.String(), 0
	case errors.As(err, &ee):
		return out.String(), ee.ExitCode()
	default:
		t.Fatalf("execute: %v", err)
		return "", -1
	}
}

func TestCLI_ExitCodes(t *testing.T) {
	clean := t.TempDir()
	out, code := exitCode(t, clean)
	if code != 0 || !strings.Contains(out, "No compromised packages detected") {
		t.Fatalf("clean project: code=%d out=%q", code, out)
	}

	dirty := t.TempDir()
	if err := os.WriteFile(filepath.Join(dirty, "package.json"), []byte(`{"dependencies":{"chalk":"^5.0.0"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	out, code = exitCode(t, dirty)
	if code != 2 || !strings.Contains(out, "Direct dep found: chalk in dependencies") {
		t.Fatalf("compromised project: code=%d out=%q", code, out)
	}
}
