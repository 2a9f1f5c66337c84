package project

import (
	"fmt"
	"path/filepath"
	"sort"
)

// Mode selects which packages of a project contribute diagnostics.
type Mode uint8

const (
	// ModeRoot honors only the package at the manifest itself.
	ModeRoot Mode = iota
	// ModeWorkspace honors every discoverable member except excluded ones.
	ModeWorkspace
	// ModePackages honors an explicit list; unknown names are an error.
	ModePackages
)

// Target is one build target whose diagnostics the pruner acts on.
type Target struct {
	Name     string
	Kind     string
	Manifest string // путь к surge.toml пакета
	Root     string // каталог пакета
}

// Options configures target resolution. ManifestPath anchors everything:
// resolution is a pure function of the manifest, the mode and the manifest
// files on disk, with no ambient working-directory reads.
type Options struct {
	ManifestPath string
	Mode         Mode
	// Exclude holds glob patterns matched against package names,
	// ModeWorkspace only.
	Exclude []string
	// Packages is the explicit list for ModePackages.
	Packages []string
}

// Resolve loads the root manifest and returns the target set for the mode,
// sorted by name. Workspace discovery walks workspace members and path
// dependencies with an explicit worklist and a visited set keyed by package
// directory, so dependency cycles terminate.
func Resolve(opts Options) ([]Target, error) {
	root, err := LoadManifest(opts.ManifestPath)
	if err != nil {
		return nil, err
	}
	if opts.Mode == ModeRoot {
		return []Target{targetOf(root)}, nil
	}

	all, err := discover(root)
	if err != nil {
		return nil, err
	}

	switch opts.Mode {
	case ModeWorkspace:
		kept := all[:0]
		for _, t := range all {
			skip, err := matchesAny(opts.Exclude, t.Name)
			if err != nil {
				return nil, err
			}
			if !skip {
				kept = append(kept, t)
			}
		}
		return kept, nil
	case ModePackages:
		byName := make(map[string]Target, len(all))
		for _, t := range all {
			byName[t.Name] = t
		}
		out := make([]Target, 0, len(opts.Packages))
		for _, name := range opts.Packages {
			t, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("project: package %q not found in workspace", name)
			}
			out = append(out, t)
		}
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
		return out, nil
	}
	return nil, fmt.Errorf("project: unknown resolution mode %d", opts.Mode)
}

func targetOf(m *Manifest) Target {
	return Target{
		Name:     m.Config.Package.Name,
		Kind:     m.Kind(),
		Manifest: m.Path,
		Root:     m.Root,
	}
}

// discover walks the dependency graph reachable from the root manifest.
func discover(root *Manifest) ([]Target, error) {
	visited := map[string]bool{root.Root: true}
	targets := []Target{targetOf(root)}
	worklist := make([]string, 0, len(root.Config.Workspace.Members))

	push := func(baseDir string, rel string) {
		dir := filepath.Join(baseDir, rel)
		if !visited[dir] {
			visited[dir] = true
			worklist = append(worklist, dir)
		}
	}
	for _, member := range root.Config.Workspace.Members {
		push(root.Root, member)
	}
	for _, dep := range root.Config.Dependencies {
		if dep.Path != "" {
			push(root.Root, dep.Path)
		}
	}

	for len(worklist) > 0 {
		dir := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		m, err := LoadManifest(filepath.Join(dir, "surge.toml"))
		if err != nil {
			return nil, fmt.Errorf("project: workspace member %s: %w", dir, err)
		}
		targets = append(targets, targetOf(m))
		for _, member := range m.Config.Workspace.Members {
			push(m.Root, member)
		}
		for _, dep := range m.Config.Dependencies {
			if dep.Path != "" {
				push(m.Root, dep.Path)
			}
		}
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Name < targets[j].Name })
	return targets, nil
}

func matchesAny(patterns []string, name string) (bool, error) {
	for _, p := range patterns {
		ok, err := filepath.Match(p, name)
		if err != nil {
			return false, fmt.Errorf("project: bad exclude pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// Names returns the target names as a set, the shape diagnostic filtering
// wants.
func Names(targets []Target) map[string]bool {
	set := make(map[string]bool, len(targets))
	for _, t := range targets {
		set[t.Name] = true
	}
	return set
}
