package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed surge.toml.
type Manifest struct {
	Path   string // полный путь к surge.toml
	Root   string // каталог манифеста
	Config Config
}

type Config struct {
	Package      PackageConfig         `toml:"package"`
	Workspace    WorkspaceConfig       `toml:"workspace"`
	Dependencies map[string]Dependency `toml:"dependencies"`
}

type PackageConfig struct {
	Name string `toml:"name"`
	Kind string `toml:"kind"` // "bin" или "module"; пусто трактуем как "bin"
}

type WorkspaceConfig struct {
	Members []string `toml:"members"`
}

// Dependency is one entry of [dependencies]. Only path dependencies
// participate in workspace discovery; registry and URL deps are opaque.
type Dependency struct {
	Path    string `toml:"path"`
	Version string `toml:"version"`
	URL     string `toml:"url"`
}

// Kind returns the package kind with the default applied.
func (m *Manifest) Kind() string {
	if m.Config.Package.Kind == "" {
		return "bin"
	}
	return m.Config.Package.Kind
}

// FindSurgeToml walks up from startDir to locate surge.toml.
func FindSurgeToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "surge.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest parses the surge.toml at path. The [package] section with a
// non-empty name is mandatory.
func LoadManifest(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	var cfg Config
	meta, err := toml.DecodeFile(abs, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return nil, fmt.Errorf("%s: missing [package] section", path)
	}
	if cfg.Package.Name == "" {
		return nil, fmt.Errorf("%s: package.name is empty", path)
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}
