package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir string, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, "surge.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// цикличный workspace: app -> util -> app
func cyclicWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	manifest := writeManifest(t, root, `
[package]
name = "app"
kind = "bin"

[workspace]
members = ["tools/gen"]

[dependencies]
util = { path = "util" }
`)
	writeManifest(t, filepath.Join(root, "util"), `
[package]
name = "util"
kind = "module"

[dependencies]
app = { path = ".." }
`)
	writeManifest(t, filepath.Join(root, "tools/gen"), `
[package]
name = "gen"
kind = "bin"
`)
	return manifest
}

func targetNames(targets []Target) []string {
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.Name
	}
	return names
}

func TestResolveRoot(t *testing.T) {
	manifest := cyclicWorkspace(t)
	targets, err := Resolve(Options{ManifestPath: manifest, Mode: ModeRoot})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(targets) != 1 || targets[0].Name != "app" || targets[0].Kind != "bin" {
		t.Fatalf("targets = %+v", targets)
	}
}

func TestResolveWorkspaceCycleSafe(t *testing.T) {
	manifest := cyclicWorkspace(t)
	targets, err := Resolve(Options{ManifestPath: manifest, Mode: ModeWorkspace})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := strings.Join(targetNames(targets), ",")
	if got != "app,gen,util" {
		t.Fatalf("targets = %q, want app,gen,util", got)
	}
}

func TestResolveWorkspaceExclude(t *testing.T) {
	manifest := cyclicWorkspace(t)
	targets, err := Resolve(Options{
		ManifestPath: manifest,
		Mode:         ModeWorkspace,
		Exclude:      []string{"g*"},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	got := strings.Join(targetNames(targets), ",")
	if got != "app,util" {
		t.Fatalf("targets = %q, want app,util", got)
	}
}

func TestResolvePackages(t *testing.T) {
	manifest := cyclicWorkspace(t)
	targets, err := Resolve(Options{
		ManifestPath: manifest,
		Mode:         ModePackages,
		Packages:     []string{"util"},
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(targets) != 1 || targets[0].Name != "util" || targets[0].Kind != "module" {
		t.Fatalf("targets = %+v", targets)
	}
}

func TestResolveUnknownPackage(t *testing.T) {
	manifest := cyclicWorkspace(t)
	_, err := Resolve(Options{
		ManifestPath: manifest,
		Mode:         ModePackages,
		Packages:     []string{"nope"},
	})
	if err == nil || !strings.Contains(err.Error(), `"nope"`) {
		t.Fatalf("err = %v, want error naming the package", err)
	}
}

func TestLoadManifestValidation(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing package section", func(t *testing.T) {
		path := writeManifest(t, filepath.Join(dir, "a"), "[workspace]\nmembers = []\n")
		if _, err := LoadManifest(path); err == nil || !strings.Contains(err.Error(), "[package]") {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		path := writeManifest(t, filepath.Join(dir, "b"), "[package]\nname = \"\"\n")
		if _, err := LoadManifest(path); err == nil || !strings.Contains(err.Error(), "package.name") {
			t.Fatalf("err = %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadManifest(filepath.Join(dir, "nope", "surge.toml")); err == nil {
			t.Fatalf("expected error for missing manifest")
		}
	})
}

func TestFindSurgeToml(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"app\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path, ok, err := FindSurgeToml(nested)
	if err != nil || !ok {
		t.Fatalf("FindSurgeToml: ok=%v err=%v", ok, err)
	}
	if filepath.Dir(path) != root {
		t.Fatalf("found %s, want manifest in %s", path, root)
	}
}
