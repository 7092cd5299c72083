package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "forge.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolve_Defaults(t *testing.T) {
	dir := t.TempDir()
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.AppName != filepath.Base(dir) {
		t.Errorf("AppName = %q, want directory basename %q", got.AppName, filepath.Base(dir))
	}
	if got.Format != "single" {
		t.Errorf("Format = %q, want single", got.Format)
	}
	if !got.Comments {
		t.Error("Comments should default to true")
	}
	if got.ModulePath == "" {
		t.Error("ModulePath not defaulted")
	}
	if got.Width != 1280 || got.Height != 800 {
		t.Errorf("window = %dx%d, want 1280x800", got.Width, got.Height)
	}
}

func TestResolve_ReadsConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
app:
  name: Inventory
  width: 1024
  height: 600
codegen:
  module: github.com/acme/inventory-ui
  format: ui
  comments: false
`)
	got, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.AppName != "Inventory" {
		t.Errorf("AppName = %q", got.AppName)
	}
	if got.Width != 1024 || got.Height != 600 {
		t.Errorf("window = %dx%d, want 1024x600", got.Width, got.Height)
	}
	if got.ModulePath != "github.com/acme/inventory-ui" {
		t.Errorf("ModulePath = %q", got.ModulePath)
	}
	if got.Format != "ui" {
		t.Errorf("Format = %q", got.Format)
	}
	if got.Comments {
		t.Error("Comments = true, want false")
	}
}

func TestResolve_RejectsInvalidModule(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "codegen:\n  module: \"not a path\"\n")
	if _, err := Resolve(dir); err == nil {
		t.Error("Resolve accepted an invalid module path")
	}
}

func TestResolve_RejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "{{{")
	if _, err := Resolve(dir); err == nil {
		t.Error("Resolve accepted malformed forge.yaml")
	}
}

func TestDefaultModulePath_Sanitizes(t *testing.T) {
	got := defaultModulePath("My App")
	if got != "example.com/my-app" {
		t.Errorf("defaultModulePath = %q, want example.com/my-app", got)
	}
}
