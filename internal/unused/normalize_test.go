package unused

import (
	"errors"
	"testing"

	"surgemin/internal/compile"
)

func diagWith(msg string) *compile.Diagnostic {
	return &compile.Diagnostic{
		Message: msg,
		Spans: []compile.Span{{
			FileName:  "src/main.sg",
			ByteStart: 4,
			ByteEnd:   20,
			LineStart: 2, ColumnStart: 1,
			LineEnd: 2, ColumnEnd: 17,
		}},
	}
}

func TestNormalizeRecognized(t *testing.T) {
	cases := []struct {
		msg   string
		kind  DefinitionKind
		ident string
	}{
		{"function `helper` is never used", KindFunction, "helper"},
		{"associated function `render` is never used", KindAssocFunction, "render"},
		{"constant `MAX_DEPTH` is never used", KindConstant, "MAX_DEPTH"},
		{"static `POOL` is never used", KindStatic, "POOL"},
		{"struct `Config` is never constructed", KindStruct, "Config"},
		{"enum `Mode` is never constructed", KindEnum, "Mode"},
		{"union `Raw` is never constructed", KindUnion, "Raw"},
		{"type alias `Meters` is never used", KindTypeAlias, "Meters"},
		{"unused macro definition `log_it`", KindMacro, "log_it"},
		// вид может идти с заглавной буквы и пунктуацией
		{"Function: `shout` is never used", KindFunction, "shout"},
		{"unused function `quiet` is never used", KindFunction, "quiet"},
	}
	for _, tc := range cases {
		t.Run(tc.msg, func(t *testing.T) {
			d, err := Normalize(diagWith(tc.msg))
			if err != nil {
				t.Fatalf("Normalize(%q): %v", tc.msg, err)
			}
			if d.Kind != tc.kind {
				t.Errorf("kind = %v, want %v", d.Kind, tc.kind)
			}
			if d.Ident != tc.ident {
				t.Errorf("ident = %q, want %q", d.Ident, tc.ident)
			}
			if d.Span.ByteStart != 4 || d.Span.ByteEnd != 20 {
				t.Errorf("span = (%d,%d), want (4,20)", d.Span.ByteStart, d.Span.ByteEnd)
			}
		})
	}
}

func TestNormalizeRejected(t *testing.T) {
	cases := []string{
		"",
		"variable `x` is never used",
		"function `helper` is never called",
		"function helper is never used",
		"function `` is never used",
		"function `not an ident` is never used",
		"function `9lives` is never used",
		"struct `Config` is never used",
		"function `helper` is never used at all",
		"is never used",
		"unused `thing`",
	}
	for _, msg := range cases {
		t.Run(msg, func(t *testing.T) {
			_, err := Normalize(diagWith(msg))
			if !errors.Is(err, ErrNotRecognized) {
				t.Fatalf("Normalize(%q): err = %v, want ErrNotRecognized", msg, err)
			}
		})
	}
}

func TestNormalizeNoSpans(t *testing.T) {
	d := &compile.Diagnostic{Message: "function `helper` is never used"}
	if _, err := Normalize(d); !errors.Is(err, ErrNotRecognized) {
		t.Fatalf("err = %v, want ErrNotRecognized", err)
	}
}

func TestCollectFilters(t *testing.T) {
	span := compile.Span{FileName: "src/lib.sg", ByteStart: 0, ByteEnd: 8, LineStart: 1, ColumnStart: 1, LineEnd: 1, ColumnEnd: 9}
	expSpan := span
	expSpan.Expansion = &compile.Expansion{MacroName: "derive"}

	msgs := []compile.Message{
		{Reason: compile.ReasonCompilerMessage, Target: compile.Target{Name: "app"},
			Message: &compile.Diagnostic{Message: "function `keep` is never used", Spans: []compile.Span{span}}},
		{Reason: compile.ReasonCompilerMessage, Target: compile.Target{Name: "other"},
			Message: &compile.Diagnostic{Message: "function `wrong_target` is never used", Spans: []compile.Span{span}}},
		{Reason: compile.ReasonCompilerMessage, Target: compile.Target{Name: "app"},
			Message: &compile.Diagnostic{Message: "function `expanded` is never used", Spans: []compile.Span{expSpan}}},
		{Reason: compile.ReasonCompilerMessage, Target: compile.Target{Name: "app"},
			Message: &compile.Diagnostic{Message: "mismatched types", Spans: []compile.Span{span}}},
		{Reason: compile.ReasonBuildFinished},
	}

	got := Collect(msgs, map[string]bool{"app": true})
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(got), got)
	}
	if got[0].Ident != "keep" {
		t.Fatalf("ident = %q, want keep", got[0].Ident)
	}
}

func TestKindNestable(t *testing.T) {
	for _, tpl := range templates {
		want := tpl.kind == KindAssocFunction
		if got := tpl.kind.Nestable(); got != want {
			t.Errorf("%v.Nestable() = %v, want %v", tpl.kind, got, want)
		}
	}
}
