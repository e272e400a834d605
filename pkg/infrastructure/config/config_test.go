package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Sizing.Family != "paper" {
		t.Errorf("Expected default family paper, got %s", c.Sizing.Family)
	}
	if c.Output.Format != "text" {
		t.Errorf("Expected default format text, got %s", c.Output.Format)
	}
	if c.App.Env != "prod" {
		t.Errorf("Expected default env prod, got %s", c.App.Env)
	}
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "sizing.yaml")
	content := `
app:
  env: dev
data:
  materials: testdata/materials.csv
  machines: testdata/machines.csv
sizing:
  target_uom: cm
output:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("SIZING_OUTPUT_FORMAT", "text")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.App.Env != "dev" {
		t.Errorf("Expected env dev, got %s", c.App.Env)
	}
	if c.Data.Materials != "testdata/materials.csv" {
		t.Errorf("Expected materials path from file, got %s", c.Data.Materials)
	}
	if c.Sizing.TargetUOM != "cm" {
		t.Errorf("Expected target uom cm, got %s", c.Sizing.TargetUOM)
	}
	if c.Output.Format != "text" {
		t.Errorf("Expected environment to override format, got %s", c.Output.Format)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("SIZING_SIZING_FAMILY=fabric\n"), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Setenv("SIZING_SIZING_FAMILY", "")
	os.Unsetenv("SIZING_SIZING_FAMILY")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if c.Sizing.Family != "fabric" {
		t.Errorf("Expected family from .env, got %s", c.Sizing.Family)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("Expected error for missing config file")
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
