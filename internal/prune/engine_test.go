package prune

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"surgemin/internal/compile"
	"surgemin/internal/unused"
)

func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func fileDiag(t *testing.T, name, content string, kind unused.DefinitionKind, ident string) unused.Diagnostic {
	t.Helper()
	off := strings.Index(content, ident)
	if off < 0 {
		t.Fatalf("%q not in %s", ident, name)
	}
	return unused.Diagnostic{
		Kind:  kind,
		Ident: ident,
		Span: compile.Span{
			FileName:  name,
			ByteStart: uint32(off),
			ByteEnd:   uint32(off + len(ident)),
		},
	}
}

func TestEngineRun(t *testing.T) {
	dir := t.TempDir()
	mainSrc := "fn main() {}\nfn dead() {}\n"
	libSrc := "const UNUSED_LIMIT: i32 = 8;\nfn keep() {}\n"
	writeSource(t, dir, "src/main.sg", mainSrc)
	writeSource(t, dir, "src/lib.sg", libSrc)

	for _, strategy := range []Strategy{StrategyStructural, StrategyLexical} {
		t.Run(strategy.String(), func(t *testing.T) {
			eng := NewEngine(Options{Strategy: strategy, BaseDir: dir, Jobs: 2})
			diags := []unused.Diagnostic{
				fileDiag(t, "src/main.sg", mainSrc, unused.KindFunction, "dead"),
				fileDiag(t, "src/lib.sg", libSrc, unused.KindConstant, "UNUSED_LIMIT"),
			}
			changes, err := eng.Run(context.Background(), diags)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if len(changes) != 2 {
				t.Fatalf("got %d changes, want 2", len(changes))
			}
			// Результаты отсортированы по пути: lib раньше main.
			if !strings.HasSuffix(changes[0].Path, "lib.sg") || !strings.HasSuffix(changes[1].Path, "main.sg") {
				t.Fatalf("changes out of order: %s, %s", changes[0].Path, changes[1].Path)
			}
			if got := string(changes[0].Proposed); got != "fn keep() {}\n" {
				t.Fatalf("lib proposed = %q", got)
			}
			if got := string(changes[1].Proposed); got != "fn main() {}\n" {
				t.Fatalf("main proposed = %q", got)
			}
			if string(changes[0].Original) != libSrc || string(changes[1].Original) != mainSrc {
				t.Fatalf("originals not preserved verbatim")
			}
		})
	}
}

func TestEngineEmptySelectorSet(t *testing.T) {
	eng := NewEngine(Options{Strategy: StrategyStructural})
	changes, err := eng.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(changes) != 0 {
		t.Fatalf("got %d changes, want 0", len(changes))
	}
}

func TestEngineCleanupAfterSoleMemberDeleted(t *testing.T) {
	dir := t.TempDir()
	src := "type Point = struct { x: i32; }\n\nextern<Point> {\n    fn debug(self) {}\n}\n\nextern<Point> is Drawable {\n    fn draw(self) {}\n}\n\nfn main() {}\n"
	writeSource(t, dir, "src/main.sg", src)

	eng := NewEngine(Options{Strategy: StrategyStructural, BaseDir: dir})
	diags := []unused.Diagnostic{
		fileDiag(t, "src/main.sg", src, unused.KindAssocFunction, "debug"),
		fileDiag(t, "src/main.sg", src, unused.KindAssocFunction, "draw"),
	}
	changes, err := eng.Run(context.Background(), diags)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("got %d changes, want 1", len(changes))
	}
	got := string(changes[0].Proposed)
	if strings.Contains(got, "extern<Point> {") {
		t.Fatalf("emptied plain block must be gone:\n%s", got)
	}
	if !strings.Contains(got, "extern<Point> is Drawable {") {
		t.Fatalf("contract impl must stay, emptied:\n%s", got)
	}
	if strings.Contains(got, "debug") || strings.Contains(got, "draw(") {
		t.Fatalf("members not removed:\n%s", got)
	}
}

func TestEngineUnresolvableAborts(t *testing.T) {
	dir := t.TempDir()
	src := "fn main() {}\n"
	writeSource(t, dir, "src/main.sg", src)

	eng := NewEngine(Options{Strategy: StrategyStructural, BaseDir: dir})
	diags := []unused.Diagnostic{fileDiag(t, "src/main.sg", src, unused.KindConstant, "main")}
	if _, err := eng.Run(context.Background(), diags); err == nil {
		t.Fatalf("expected resolution failure")
	}
	// Файл на диске не тронут.
	data, err := os.ReadFile(filepath.Join(dir, "src/main.sg"))
	if err != nil || string(data) != src {
		t.Fatalf("source file disturbed: %q, %v", data, err)
	}
}

func TestEngineMissingFile(t *testing.T) {
	eng := NewEngine(Options{Strategy: StrategyLexical, BaseDir: t.TempDir()})
	d := unused.Diagnostic{Kind: unused.KindFunction, Ident: "x", Span: compile.Span{FileName: "nope.sg"}}
	if _, err := eng.Run(context.Background(), []unused.Diagnostic{d}); err == nil {
		t.Fatalf("expected read error")
	}
}
