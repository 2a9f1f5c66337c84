package parser

import (
	"surgemin/internal/ast"
	"surgemin/internal/diag"
	"surgemin/internal/source"
	"surgemin/internal/token"
)

// parseItem выбирает по первому токену нужный распознаватель top-level
// конструкции. Span каждого item накрывает атрибуты и префикс видимости.
func (p *Parser) parseItem() (ast.Item, bool) {
	startSpan := p.lx.Peek().Span

	attrCount, attrSpan, ok := p.parseAttributes()
	if !ok {
		return ast.Item{}, false
	}
	if attrCount > 0 {
		startSpan = attrSpan
	}

	// pub / async перед fn и другими конструкциями
	for p.at(token.KwPub) || p.at(token.KwAsync) {
		p.advance()
	}

	switch p.lx.Peek().Kind {
	case token.KwImport:
		return p.parseStatementItem(ast.ItemImport, startSpan, attrCount)
	case token.KwPragma:
		return p.parseStatementItem(ast.ItemPragma, startSpan, attrCount)
	case token.KwLet:
		return p.parseLetItem(startSpan, attrCount)
	case token.KwConst:
		return p.parseConstItem(startSpan, attrCount)
	case token.KwFn:
		return p.parseFnItem(startSpan, attrCount)
	case token.KwType:
		return p.parseTypeItem(startSpan, attrCount)
	case token.KwEnum:
		return p.parseEnumItem(startSpan, attrCount)
	case token.KwTag:
		return p.parseTagItem(startSpan, attrCount)
	case token.KwMacro:
		return p.parseMacroItem(startSpan, attrCount)
	case token.KwExtern:
		return p.parseExternItem(startSpan, attrCount)
	case token.KwContract:
		return p.parseContractItem(startSpan, attrCount)
	default:
		p.report(diag.SynUnexpectedTopLevel, p.lx.Peek().Span, "unexpected top-level construct")
		return ast.Item{}, false
	}
}

// parseAttributes — последовательность `@name` или `@name(...)` перед item.
func (p *Parser) parseAttributes() (count int, span source.Span, ok bool) {
	for p.at(token.At) {
		atTok := p.advance()
		if count == 0 {
			span = atTok.Span
		}
		if _, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected attribute name after '@'"); !ok {
			return count, span, false
		}
		if p.at(token.LParen) {
			if !p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "unclosed attribute arguments") {
				return count, span, false
			}
		}
		span = span.Cover(p.lastSpan)
		count++
	}
	return count, span, true
}

func (p *Parser) parseStatementItem(kind ast.ItemKind, startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // keyword
	if !p.skipToSemicolon() {
		return ast.Item{}, false
	}
	return ast.Item{
		Kind:      kind,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
	}, true
}

func (p *Parser) parseLetItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // let
	if p.at(token.KwMut) {
		p.advance()
	}
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected binding name after 'let'")
	if !ok {
		return ast.Item{}, false
	}
	if !p.skipToSemicolon() {
		return ast.Item{}, false
	}
	return ast.Item{
		Kind:      ast.ItemLet,
		Name:      nameTok.Text,
		NameSpan:  nameTok.Span,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
	}, true
}

func (p *Parser) parseConstItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // const
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected constant name after 'const'")
	if !ok {
		return ast.Item{}, false
	}
	if !p.skipToSemicolon() {
		return ast.Item{}, false
	}
	return ast.Item{
		Kind:      ast.ItemConst,
		Name:      nameTok.Text,
		NameSpan:  nameTok.Span,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
	}, true
}

func (p *Parser) parseFnItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	name, nameSpan, ok := p.parseFnHeaderAndBody()
	if !ok {
		return ast.Item{}, false
	}
	return ast.Item{
		Kind:      ast.ItemFn,
		Name:      name,
		NameSpan:  nameSpan,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
	}, true
}

// parseFnHeaderAndBody съедает 'fn', имя, сигнатуру и тело либо ';' для
// прототипа. Содержимое сигнатуры пропускается по группам скобок.
func (p *Parser) parseFnHeaderAndBody() (name string, nameSpan source.Span, ok bool) {
	p.advance() // fn
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name after 'fn'")
	if !ok {
		return "", source.Span{}, false
	}
	for {
		switch p.lx.Peek().Kind {
		case token.Semicolon:
			p.advance()
			return nameTok.Text, nameTok.Span, true
		case token.LBrace:
			if !p.skipBalanced(token.LBrace, token.RBrace, diag.SynUnclosedBrace, "unclosed function body") {
				return "", source.Span{}, false
			}
			return nameTok.Text, nameTok.Span, true
		case token.LParen:
			if !p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "unclosed parameter list") {
				return "", source.Span{}, false
			}
		case token.LBracket:
			if !p.skipBalanced(token.LBracket, token.RBracket, diag.SynUnexpectedToken, "unclosed '['") {
				return "", source.Span{}, false
			}
		case token.EOF:
			p.report(diag.SynUnexpectedToken, p.lastSpan, "unterminated function definition")
			return "", source.Span{}, false
		default:
			p.advance()
		}
	}
}

func (p *Parser) parseTypeItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // type
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type name after 'type'")
	if !ok {
		return ast.Item{}, false
	}
	if p.at(token.Lt) {
		if !p.skipBalanced(token.Lt, token.Gt, diag.SynUnexpectedToken, "unclosed generic parameter list") {
			return ast.Item{}, false
		}
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after type name"); !ok {
		return ast.Item{}, false
	}

	decl := ast.TypeDeclAlias
	if p.at(token.Ident) {
		switch p.lx.Peek().Text {
		case "struct":
			decl = ast.TypeDeclStruct
		case "union":
			decl = ast.TypeDeclUnion
		}
	}
	if decl != ast.TypeDeclAlias {
		p.advance() // struct / union
		if !p.skipBalanced(token.LBrace, token.RBrace, diag.SynUnclosedBrace, "unclosed type body") {
			return ast.Item{}, false
		}
		if p.at(token.Semicolon) {
			p.advance()
		}
	} else if !p.skipToSemicolon() {
		return ast.Item{}, false
	}

	return ast.Item{
		Kind:      ast.ItemType,
		Name:      nameTok.Text,
		NameSpan:  nameTok.Span,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
		TypeDecl:  decl,
	}, true
}

// parseEnumItem parses enum declarations:
//
//	enum Color { Red, Green, Blue }
//	enum Status: uint8 { Unknown = 0, Started, Done }
func (p *Parser) parseEnumItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // enum
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum name after 'enum'")
	if !ok {
		return ast.Item{}, false
	}
	for !p.at(token.LBrace) {
		if p.at(token.EOF) {
			p.report(diag.SynUnexpectedToken, p.lastSpan, "expected '{' to start enum body")
			return ast.Item{}, false
		}
		p.advance()
	}
	if !p.skipBalanced(token.LBrace, token.RBrace, diag.SynUnclosedBrace, "unclosed enum body") {
		return ast.Item{}, false
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
	return ast.Item{
		Kind:      ast.ItemEnum,
		Name:      nameTok.Text,
		NameSpan:  nameTok.Span,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
	}, true
}

func (p *Parser) parseTagItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // tag
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected tag name after 'tag'")
	if !ok {
		return ast.Item{}, false
	}
	if p.at(token.Lt) {
		if !p.skipBalanced(token.Lt, token.Gt, diag.SynUnexpectedToken, "unclosed generic parameter list") {
			return ast.Item{}, false
		}
	}
	if !p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "expected '(' after tag name") {
		return ast.Item{}, false
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
	return ast.Item{
		Kind:      ast.ItemTag,
		Name:      nameTok.Text,
		NameSpan:  nameTok.Span,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
	}, true
}

func (p *Parser) parseMacroItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // macro
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected macro name after 'macro'")
	if !ok {
		return ast.Item{}, false
	}
	if p.at(token.LParen) {
		if !p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "unclosed macro parameter list") {
			return ast.Item{}, false
		}
	}
	if p.at(token.LBrace) {
		if !p.skipBalanced(token.LBrace, token.RBrace, diag.SynUnclosedBrace, "unclosed macro body") {
			return ast.Item{}, false
		}
	} else if !p.skipToSemicolon() {
		return ast.Item{}, false
	}
	return ast.Item{
		Kind:      ast.ItemMacro,
		Name:      nameTok.Text,
		NameSpan:  nameTok.Span,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
	}, true
}

func (p *Parser) parseContractItem(startSpan source.Span, attrCount int) (ast.Item, bool) {
	p.advance() // contract
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected contract name after 'contract'")
	if !ok {
		return ast.Item{}, false
	}
	if p.at(token.Lt) {
		if !p.skipBalanced(token.Lt, token.Gt, diag.SynUnexpectedToken, "unclosed generic parameter list") {
			return ast.Item{}, false
		}
	}
	if !p.skipBalanced(token.LParen, token.RParen, diag.SynUnclosedParen, "expected '(' to start contract body") {
		return ast.Item{}, false
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
	return ast.Item{
		Kind:      ast.ItemContract,
		Name:      nameTok.Text,
		NameSpan:  nameTok.Span,
		Span:      startSpan.Cover(p.lastSpan),
		AttrCount: attrCount,
	}, true
}
