package parser

import (
	"surgemin/internal/ast"
	"surgemin/internal/diag"
	"surgemin/internal/lexer"
	"surgemin/internal/source"
	"surgemin/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

type Result struct {
	File *ast.File
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл. Разбор идёт только до уровня
// item: тела функций, типовые выражения и инициализаторы пропускаются по
// балансу скобок.
type Parser struct {
	lx       *lexer.Lexer
	file     *ast.File
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
}

// ParseFile — входная точка для разбора одного файла.
func ParseFile(f *source.File, opts Options) Result {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	lx := lexer.New(f, opts.Reporter)
	p := Parser{
		lx:       lx,
		file:     &ast.File{ID: f.ID},
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseItems()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

// parseItems — основной цикл верхнего уровня: пока не EOF — parseItem.
func (p *Parser) parseItems() {
	for !p.at(token.EOF) {
		item, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			continue
		}
		p.file.Items = append(p.file.Items, item)
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.report(code, p.lx.Peek().Span, msg)
	return token.Token{}, false
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
}

// resyncTop — восстановление после ошибки на верхнем уровне: прокручиваем до
// ';' ИЛИ до стартового токена следующего item ИЛИ EOF. Первый токен съедаем
// безусловно, иначе цикл не двигается.
func (p *Parser) resyncTop() {
	if !p.at(token.EOF) {
		p.advance()
	}
	for !p.at(token.EOF) {
		k := p.lx.Peek().Kind
		if k == token.Semicolon {
			p.advance()
			return
		}
		if token.IsItemStarter(k) {
			return
		}
		p.advance()
	}
}

// skipBalanced съедает открывающий токен и всё до парного закрывающего,
// учитывая вложенность того же вида скобок. Литералы прозрачны для баланса,
// потому что лексер отдаёт их одним токеном.
func (p *Parser) skipBalanced(open, close token.Kind, code diag.Code, msg string) bool {
	openTok, ok := p.expect(open, code, msg)
	if !ok {
		return false
	}
	depth := 1
	for depth > 0 {
		tok := p.advance()
		switch tok.Kind {
		case open:
			depth++
		case close:
			depth--
		case token.EOF:
			p.report(code, openTok.Span, msg)
			return false
		}
	}
	return true
}

// skipToSemicolon съедает токены до ';' включительно, пропуская вложенные
// группы скобок целиком (инициализатор или тип может содержать ';' только
// внутри них).
func (p *Parser) skipToSemicolon() bool {
	for {
		switch p.lx.Peek().Kind {
		case token.Semicolon:
			p.advance()
			return true
		case token.EOF:
			p.report(diag.SynExpectSemicolon, p.lastSpan, "expected ';' to end item")
			return false
		case token.LBrace:
			if !p.skipBalanced(token.LBrace, token.RBrace, diag.SynUnclosedBrace, "unclosed '{'") {
				return false
			}
		case token.LParen:
			if !p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "unclosed '('") {
				return false
			}
		default:
			p.advance()
		}
	}
}
