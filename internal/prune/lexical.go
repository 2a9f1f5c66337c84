package prune

import (
	"surgemin/internal/source"
	"surgemin/internal/unused"
)

// Lexical resolves a definition by scanning raw bytes around the diagnostic
// offset: backward to the nearest preceding top-level separator, forward to
// the statement's `;` or through its `{}` body tracking brace depth. Bytes
// inside single- or double-quoted literals are opaque to the forward scan.
//
// Precondition: the seed offset must not come from macro-expanded text;
// expanded text can contain delimiters with no literal counterpart. Callers
// filter expansion-derived spans before resolving.
type Lexical struct{}

func (Lexical) Resolve(file *source.File, d unused.Diagnostic) (source.Span, error) {
	buf := file.Content
	seed := int(d.Span.ByteStart)
	if seed >= len(buf) {
		return source.Span{}, ErrUnresolvable
	}

	start := scanBack(buf, seed)
	// Перевод строки в зазоре принадлежит предыдущему стейтменту, внутри-
	// строчный пробел после разделителя уходит вместе с определением.
	for i := start; i < seed; i++ {
		b := buf[i]
		if b == '\n' {
			start = i + 1
			continue
		}
		if b != '\r' && !isHorizontal(b) {
			break
		}
	}
	end, ok := scanForward(buf, seed)
	if !ok {
		return source.Span{}, ErrUnresolvable
	}
	return source.Span{File: file.ID, Start: uint32(start), End: uint32(end)}, nil
}

// scanBack finds the byte right after the nearest `;`, `{` or `}` before
// seed, or the start of the buffer.
func scanBack(buf []byte, seed int) int {
	for i := seed - 1; i >= 0; i-- {
		switch buf[i] {
		case ';', '{', '}':
			return i + 1
		}
	}
	return 0
}

// scanForward walks from seed to the end of the statement: the first `;` at
// depth zero, or past the matching `}` once a body opens. Quoted literals
// are skipped wholesale so braces and semicolons inside them do not count.
func scanForward(buf []byte, seed int) (int, bool) {
	depth := 0
	opened := false
	for i := seed; i < len(buf); i++ {
		switch b := buf[i]; b {
		case '"', '\'':
			j, ok := skipQuoted(buf, i)
			if !ok {
				return 0, false
			}
			i = j
		case ';':
			if !opened {
				return i + 1, true
			}
		case '{':
			opened = true
			depth++
		case '}':
			if !opened {
				// Стейтмент кончился раньше, чем начался: сид стоит не там.
				return 0, false
			}
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// skipQuoted returns the index of the closing quote for the literal opening
// at i, honoring backslash escapes.
func skipQuoted(buf []byte, i int) (int, bool) {
	quote := buf[i]
	for j := i + 1; j < len(buf); j++ {
		switch buf[j] {
		case '\\':
			j++
		case quote:
			return j, true
		}
	}
	return 0, false
}
