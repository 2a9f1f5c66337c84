package unused

import (
	"errors"
	"strings"

	"surgemin/internal/compile"
)

// ErrNotRecognized means the diagnostic text is not a dead-definition report
// of a known shape. Callers skip such diagnostics instead of guessing.
var ErrNotRecognized = errors.New("unused: diagnostic not recognized")

// Diagnostic is a compiler message reduced to what the pruner acts on.
type Diagnostic struct {
	Kind  DefinitionKind
	Ident string
	Span  compile.Span
}

// Normalize matches the diagnostic text against the known report templates
// and extracts the definition kind and identifier. The primary span is taken
// as-is. Any deviation from a template fails closed with ErrNotRecognized.
func Normalize(d *compile.Diagnostic) (Diagnostic, error) {
	if d == nil || len(d.Spans) == 0 {
		return Diagnostic{}, ErrNotRecognized
	}
	tokens := strings.Fields(d.Message)
	kind, ident, ok := match(tokens, 0)
	if !ok && len(tokens) > 0 && normToken(tokens[0]) == "unused" {
		// Общий маркер "unused" перед видом: пропускаем и пробуем снова.
		kind, ident, ok = match(tokens, 1)
	}
	if !ok {
		return Diagnostic{}, ErrNotRecognized
	}
	return Diagnostic{Kind: kind, Ident: ident, Span: d.Spans[0]}, nil
}

// match tries every template against tokens[at:]. Lead tokens are compared
// case-insensitively with surrounding punctuation stripped; the suffix must
// match the remaining text exactly.
func match(tokens []string, at int) (DefinitionKind, string, bool) {
	for _, tpl := range templates {
		i := at
		matched := true
		for _, want := range tpl.lead {
			if i >= len(tokens) || normToken(tokens[i]) != want {
				matched = false
				break
			}
			i++
		}
		if !matched || i >= len(tokens) {
			continue
		}
		ident, ok := backtickedIdent(tokens[i])
		if !ok {
			continue
		}
		rest := strings.Join(tokens[i+1:], " ")
		if rest != tpl.suffix {
			continue
		}
		return tpl.kind, ident, true
	}
	return 0, "", false
}

// normToken lowercases a token and strips punctuation glued to it.
func normToken(tok string) string {
	tok = strings.Trim(tok, ":,.;")
	return strings.ToLower(tok)
}

// backtickedIdent extracts an identifier written as `name`.
func backtickedIdent(tok string) (string, bool) {
	if len(tok) < 3 || tok[0] != '`' || tok[len(tok)-1] != '`' {
		return "", false
	}
	name := tok[1 : len(tok)-1]
	if !validIdent(name) {
		return "", false
	}
	return name, true
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
