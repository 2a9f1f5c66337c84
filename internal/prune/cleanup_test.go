package prune

import (
	"errors"
	"strings"
	"testing"

	"surgemin/internal/source"
)

func TestCleanupRemovesEmptyExtern(t *testing.T) {
	src := "fn main() {}\n\nextern<Point> {\n}\n"
	fs := source.NewFileSet()
	got, err := Cleanup(fs, "test.sg", []byte(src))
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	want := "fn main() {}\n"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCleanupRemovesEmptyDeclarationBlock(t *testing.T) {
	src := "extern {\n}\nfn main() {}\n"
	fs := source.NewFileSet()
	got, err := Cleanup(fs, "test.sg", []byte(src))
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if string(got) != "fn main() {}\n" {
		t.Fatalf("got %q", got)
	}
}

func TestCleanupKeepsContractImpl(t *testing.T) {
	src := "extern<Point> is Drawable {\n}\nfn main() {}\n"
	fs := source.NewFileSet()
	got, err := Cleanup(fs, "test.sg", []byte(src))
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if string(got) != src {
		t.Fatalf("contract impl must survive, got %q", got)
	}
}

func TestCleanupKeepsAttributedBlock(t *testing.T) {
	src := "@backend(\"wasm\")\nextern<Point> {\n}\nfn main() {}\n"
	fs := source.NewFileSet()
	got, err := Cleanup(fs, "test.sg", []byte(src))
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if string(got) != src {
		t.Fatalf("attributed block must survive, got %q", got)
	}
}

func TestCleanupKeepsPopulatedBlock(t *testing.T) {
	src := "extern<Point> {\n    fn render(self) {}\n}\n"
	fs := source.NewFileSet()
	got, err := Cleanup(fs, "test.sg", []byte(src))
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if string(got) != src {
		t.Fatalf("populated block must survive, got %q", got)
	}
}

func TestCleanupReparseFailureIsFatal(t *testing.T) {
	fs := source.NewFileSet()
	_, err := Cleanup(fs, "test.sg", []byte("fn broken( {"))
	if !errors.Is(err, ErrReparse) {
		t.Fatalf("err = %v, want ErrReparse", err)
	}
	if !strings.Contains(err.Error(), "test.sg") {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestCleanupPristineRoundTrip(t *testing.T) {
	src := "fn main() {}\nconst LIMIT: i32 = 8;\n"
	fs := source.NewFileSet()
	got, err := Cleanup(fs, "test.sg", []byte(src))
	if err != nil {
		t.Fatalf("Cleanup: %v", err)
	}
	if string(got) != src {
		t.Fatalf("pristine buffer changed: %q", got)
	}
}
