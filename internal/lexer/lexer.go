package lexer

import (
	"surgemin/internal/diag"
	"surgemin/internal/source"
	"surgemin/internal/token"
)

// Lexer tokenizes one file for item-level parsing. Comments and whitespace
// are skipped, not attached as trivia: the pruner reads token spans only.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token // 1 элементный буфер для токена
}

func New(file *source.File, reporter diag.Reporter) *Lexer {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: reporter,
	}
}

// Peek возвращает следующий токен, не съедая его.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.scan()
		lx.look = &tok
	}
	return *lx.look
}

// Next возвращает следующий значимый токен. После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.scan()
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		// f-строка: f"..." — префикс немедленно перед кавычкой
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == 'f' && b1 == '"' {
			return lx.scanFString()
		}
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanChar()
	default:
		return lx.scanPunct()
	}
}

// skipTrivia съедает пробелы и комментарии (// и /* */, без вложенности).
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			lx.cursor.Bump()
		case b == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				start := lx.cursor.Mark()
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed := false
				for !lx.cursor.EOF() {
					if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						closed = true
						break
					}
					lx.cursor.Bump()
				}
				if !closed {
					lx.errLex(diag.LexUnterminatedBlockComment, lx.cursor.SpanFrom(start), "unterminated block comment")
					return
				}
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if kind, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kind, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanNumber жадно съедает цифры, точки и буквенные суффиксы; пруеру важны
// только границы, не значение.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isDec(b) || isHex(b) || b == '_' || b == '.' || b == 'x' || b == 'o' || b == 'b' {
			lx.cursor.Bump()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	return lx.scanQuoted(start, '"', token.StringLit, diag.LexUnterminatedString, "unterminated string literal")
}

func (lx *Lexer) scanFString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // 'f'
	lx.cursor.Bump() // opening '"'
	return lx.scanQuoted(start, '"', token.FStringLit, diag.LexUnterminatedString, "unterminated f-string literal")
}

func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	return lx.scanQuoted(start, '\'', token.CharLit, diag.LexUnterminatedChar, "unterminated character literal")
}

// scanQuoted дочитывает литерал до закрывающей кавычки. Экранированные байты
// съедаются парой, поэтому скобки и кавычки внутри литерала не влияют на
// структуру токенов.
func (lx *Lexer) scanQuoted(start Mark, quote byte, kind token.Kind, code diag.Code, msg string) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	kind := token.Op
	switch b {
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case ':':
		kind = token.Colon
	case '@':
		kind = token.At
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '=':
		kind = token.Assign
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.Op
		}
	case '-':
		if lx.cursor.Eat('>') {
			kind = token.Arrow
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.reporter.Report(code, diag.SevError, sp, msg, nil)
}

// ASCII классификаторы; идентификаторы в Surge — ASCII.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return isDec(b) ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}
