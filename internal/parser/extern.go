package parser

import (
	"strings"

	"surgemin/internal/ast"
	"surgemin/internal/diag"
	"surgemin/internal/source"
	"surgemin/internal/token"
)

// parseExternItem — блоки реализации и внешних объявлений:
//
//	extern<Point> { fn length(self) -> float { ... } }
//	extern<Point> is Drawable { ... }
//	extern { fn native_log(msg: string); }
func (p *Parser) parseExternItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // extern

	item := ast.Item{
		Kind:      ast.ItemExtern,
		AttrCount: attrCount,
	}

	if p.at(token.Lt) {
		target, ok := p.parseExternTarget()
		if !ok {
			return ast.Item{}, false
		}
		item.Target = target
		item.HasTarget = true

		if p.at(token.KwIs) {
			p.advance()
			contractTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected contract name after 'is'")
			if !ok {
				return ast.Item{}, false
			}
			item.Contract = contractTok.Text
		}
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to start extern block"); !ok {
		return ast.Item{}, false
	}

	members, ok := p.parseExternMembers()
	if !ok {
		return ast.Item{}, false
	}
	item.Members = members

	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close extern block"); !ok {
		return ast.Item{}, false
	}

	item.Span = startSpan.Cover(p.lastSpan)
	return item, true
}

// parseExternTarget собирает текст целевого типа между '<' и '>'.
func (p *Parser) parseExternTarget() (string, bool) {
	openTok, ok := p.expect(token.Lt, diag.SynUnexpectedToken, "expected '<' after 'extern'")
	if !ok {
		return "", false
	}
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok := p.advance()
		switch tok.Kind {
		case token.Lt:
			depth++
		case token.Gt:
			depth--
			if depth == 0 {
				return sb.String(), true
			}
		case token.EOF:
			p.report(diag.SynUnexpectedToken, openTok.Span, "unclosed extern target type")
			return "", false
		}
		sb.WriteString(tok.Text)
	}
	return sb.String(), true
}

func (p *Parser) parseExternMembers() ([]ast.Member, bool) {
	members := make([]ast.Member, 0)

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		memberStart := p.lx.Peek().Span

		attrCount, attrSpan, ok := p.parseAttributes()
		if !ok {
			return nil, false
		}
		if attrCount > 0 {
			memberStart = attrSpan
		}

		for p.at(token.KwPub) || p.at(token.KwAsync) {
			p.advance()
		}

		if !p.at(token.KwFn) {
			p.report(
				diag.SynIllegalExternItem,
				p.lx.Peek().Span,
				"only function declarations are allowed inside extern blocks",
			)
			return nil, false
		}

		name, nameSpan, ok := p.parseFnHeaderAndBody()
		if !ok {
			return nil, false
		}
		members = append(members, ast.Member{
			Name:      name,
			NameSpan:  nameSpan,
			Span:      memberStart.Cover(p.lastSpan),
			AttrCount: attrCount,
		})
	}
	return members, true
}
