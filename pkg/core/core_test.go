package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestScan_Smoke(t *testing.T) {
	res, err := Scan(context.Background(), Options{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if !res.Clean() {
		t.Fatalf("expected clean result, got %v", res.Findings)
	}
	if len(DefaultPackages()) != 18 {
		t.Fatalf("expected 18 default packages, got %d", len(DefaultPackages()))
	}
}

func TestScan_CustomPackagesOnly(t *testing.T) {
	dir := t.TempDir()
	body := `{"dependencies": {"chalk": "5", "left-pad": "1"}}`
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	res, err := Scan(context.Background(), Options{Root: dir, Packages: []string{"left-pad"}, NoDefaultPackages: true})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}
	if len(res.Findings) != 1 || res.Findings[0].Package != "left-pad" || res.Findings[0].Kind != KindManifest {
		t.Fatalf("unexpected findings: %v", res.Findings)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, res.Findings); err != nil {
		t.Fatal(err)
	}
	back, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 1 || back[0] != res.Findings[0] {
		t.Fatalf("json round trip: %v", back)
	}
}

func TestScan_RejectsInvalidNames(t *testing.T) {
	if _, err := Scan(context.Background(), Options{Root: t.TempDir(), Packages: []string{"a b"}}); err == nil {
		t.Fatal("expected error for invalid package name")
	}
}
