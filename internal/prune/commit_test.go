package prune

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCommitWritesProposed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.sg")
	if err := os.WriteFile(path, []byte("fn main() {}\nfn dead() {}\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	err := Commit([]Change{{
		Path:     path,
		Original: []byte("fn main() {}\nfn dead() {}\n"),
		Proposed: []byte("fn main() {}\n"),
	}})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "fn main() {}\n" {
		t.Fatalf("content = %q", data)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestCommitAggregatesFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.sg")
	if err := os.WriteFile(good, []byte("old"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	changes := []Change{
		{Path: filepath.Join(dir, "missing", "a.sg"), Proposed: []byte("x")},
		{Path: good, Proposed: []byte("new")},
		{Path: filepath.Join(dir, "missing", "b.sg"), Proposed: []byte("y")},
	}
	err := Commit(changes)
	if err == nil {
		t.Fatalf("expected aggregate error")
	}
	if !strings.Contains(err.Error(), "a.sg") || !strings.Contains(err.Error(), "b.sg") {
		t.Fatalf("aggregate should name both failures: %v", err)
	}
	// Провал соседних записей не мешает успешной.
	data, _ := os.ReadFile(good)
	if string(data) != "new" {
		t.Fatalf("good file not written: %q", data)
	}
}
