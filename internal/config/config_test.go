package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func TestLoadParsesFixtureColorAndBasisExtension(t *testing.T) {
	path := writeTemp(t, "config.yaml", "fixture: foo.yaml\ncolor: true\nbasis_extension: ext.yaml\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Fixture != "foo.yaml" {
		t.Errorf("Fixture = %q, want foo.yaml", cfg.Fixture)
	}
	if cfg.Color == nil || !*cfg.Color {
		t.Errorf("Color = %v, want true", cfg.Color)
	}
	if cfg.BasisExtension != "ext.yaml" {
		t.Errorf("BasisExtension = %q, want ext.yaml", cfg.BasisExtension)
	}
}

func TestLoadLeavesColorNilWhenOmitted(t *testing.T) {
	path := writeTemp(t, "config.yaml", "fixture: foo.yaml\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Color != nil {
		t.Errorf("Color = %v, want nil", cfg.Color)
	}
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load() error = nil, want an error for a missing file")
	}
}

func TestLoadBasisExtensionParsesOverloadTable(t *testing.T) {
	path := writeTemp(t, "ext.yaml", `
overloads:
  - name: double
    shape: unary
    candidates: [int, real]
  - name: eqish
    shape: binary
    candidates: [int, word]
    result: bool
`)

	ext, err := LoadBasisExtension(path)
	if err != nil {
		t.Fatalf("LoadBasisExtension() error = %v", err)
	}
	if len(ext.Overloads) != 2 {
		t.Fatalf("Overloads = %v, want 2 entries", ext.Overloads)
	}
	if ext.Overloads[0].Name != "double" || ext.Overloads[0].Shape != "unary" {
		t.Errorf("Overloads[0] = %+v, want name=double shape=unary", ext.Overloads[0])
	}
	if ext.Overloads[1].Result != "bool" {
		t.Errorf("Overloads[1].Result = %q, want bool", ext.Overloads[1].Result)
	}
}
