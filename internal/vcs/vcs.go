package vcs

// Package vcs answers one question: is it safe to overwrite files under
// this root? Destructive writes are gated on a clean working copy unless
// the user overrides the check explicitly.

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// State classifies a repository root.
type State uint8

const (
	// StateClean means a repository was found and has no local changes.
	StateClean State = iota
	// StateUnclean means a repository was found with dirty or staged paths.
	StateUnclean
	// StateNoVCS means no repository was found above the root.
	StateNoVCS
)

// Status is the cleanliness answer for one root.
type Status struct {
	State State
	// Dirty lists unstaged modifications, Staged lists index changes.
	// Both are set for StateUnclean only.
	Dirty  []string
	Staged []string
}

// Clean reports whether writing is allowed without any override.
func (s Status) Clean() bool { return s.State == StateClean }

// Check finds the repository containing root and reports its cleanliness.
// git is authoritative; a Mercurial checkout is detected so the caller can
// tell "no VCS at all" apart from "VCS we cannot query", but its state is
// reported as unclean only when the query itself fails.
func Check(ctx context.Context, root string) (Status, error) {
	switch {
	case insideRepo(root, ".git"):
		return gitStatus(ctx, root)
	case insideRepo(root, ".hg"):
		return hgStatus(ctx, root)
	}
	return Status{State: StateNoVCS}, nil
}

// insideRepo walks up from root looking for a marker directory.
func insideRepo(root, marker string) bool {
	dir, err := filepath.Abs(root)
	if err != nil {
		return false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}

func gitStatus(ctx context.Context, root string) (Status, error) {
	out, err := runQuery(ctx, root, "git", "status", "--porcelain=v1")
	if err != nil {
		return Status{}, err
	}
	dirty, staged := parsePorcelain(out)
	if len(dirty) == 0 && len(staged) == 0 {
		return Status{State: StateClean}, nil
	}
	return Status{State: StateUnclean, Dirty: dirty, Staged: staged}, nil
}

func hgStatus(ctx context.Context, root string) (Status, error) {
	out, err := runQuery(ctx, root, "hg", "status")
	if err != nil {
		return Status{}, err
	}
	var dirty []string
	for _, line := range strings.Split(string(out), "\n") {
		if len(line) > 2 {
			dirty = append(dirty, line[2:])
		}
	}
	if len(dirty) == 0 {
		return Status{State: StateClean}, nil
	}
	return Status{State: StateUnclean, Dirty: dirty}, nil
}

func runQuery(ctx context.Context, dir, bin string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("vcs: %s query failed: %w: %s", bin, err, msg)
		}
		return nil, fmt.Errorf("vcs: %s query failed: %w", bin, err)
	}
	return out, nil
}

// parsePorcelain splits `git status --porcelain=v1` output into unstaged
// and staged path lists. Each line is `XY path` where X is the index state
// and Y the worktree state; renames carry `old -> new` and report the new
// path.
func parsePorcelain(out []byte) (dirty, staged []string) {
	for _, line := range strings.Split(string(out), "\n") {
		if len(line) < 4 {
			continue
		}
		x, y := line[0], line[1]
		path := line[3:]
		if i := strings.Index(path, " -> "); i >= 0 {
			path = path[i+len(" -> "):]
		}
		path = strings.Trim(path, `"`)
		if y != ' ' && y != '!' {
			dirty = append(dirty, path)
		}
		if x != ' ' && x != '?' && x != '!' {
			staged = append(staged, path)
		}
	}
	return dirty, staged
}
