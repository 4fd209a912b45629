package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

func (p *Parser) parsePrimary() ast.ExprID {
	switch p.lx.Peek().Kind {
	case token.IntLit:
		tok := p.advance()
		return p.arenas.Exprs.NewIntLit(tok.Span, tok.IntVal)

	case token.FloatLit:
		tok := p.advance()
		return p.arenas.Exprs.NewFloatLit(tok.Span, tok.FloatVal)

	case token.StringLit:
		tok := p.advance()
		return p.arenas.Exprs.NewStringLit(tok.Span, p.intern(tok.Text))

	case token.CharLit:
		tok := p.advance()
		return p.arenas.Exprs.NewCharLit(tok.Span, charLitValue(tok.Text))

	case token.KwTrue:
		tok := p.advance()
		return p.arenas.Exprs.NewBoolLit(tok.Span, true)

	case token.KwFalse:
		tok := p.advance()
		return p.arenas.Exprs.NewBoolLit(tok.Span, false)

	case token.Ident:
		return p.parseIdentExpr()

	case token.KwSelf:
		tok := p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.intern("self"))

	case token.LParen:
		return p.parseParenExpr()

	case token.LBrace:
		return p.parseBlockExpr()

	case token.KwIf:
		return p.parseIfExpr()

	case token.KwMatch:
		return p.parseMatchExpr()

	case token.Pipe:
		return p.parseClosureExpr()

	case token.Underscore:
		tok := p.advance()
		return p.arenas.Exprs.NewIdent(tok.Span, p.intern("_"))
	}

	p.err(diag.SynExpectExpression,
		"expected expression, got '"+p.lx.Peek().Text+"'")
	return ast.NoExprID
}

// parseIdentExpr covers a bare identifier, a `::` path, and the struct
// literal form `Name { field: value }`. The struct literal needs a probe
// past the '{' because blocks also start there.
func (p *Parser) parseIdentExpr() ast.ExprID {
	tok := p.advance()
	name := p.intern(tok.Text)

	if p.at(token.ColonColon) {
		segments := []source.StringID{name}
		for p.match(token.ColonColon) {
			segTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier,
				"expected identifier after '::'")
			segments = append(segments, p.intern(segTok.Text))
		}
		return p.arenas.Exprs.NewPath(tok.Span.Cover(p.lastSpan), segments)
	}

	if p.at(token.LBrace) && p.probeStructLiteral() {
		return p.parseStructLiteral(tok.Span, name)
	}

	return p.arenas.Exprs.NewIdent(tok.Span, name)
}

// probeStructLiteral looks past the '{' without consuming anything.
// `{ ident :` and `{ }` start a struct literal; everything else is a
// block and belongs to the surrounding statement.
func (p *Parser) probeStructLiteral() bool {
	save := p.lx.Save()
	last, prev := p.lastSpan, p.prev

	p.advance() // '{'
	isLiteral := false
	if p.at(token.Ident) {
		p.advance()
		isLiteral = p.at(token.Colon)
	} else if p.at(token.RBrace) {
		isLiteral = true
	}

	p.lx.Restore(save)
	p.lastSpan, p.prev = last, prev
	return isLiteral
}

func (p *Parser) parseStructLiteral(start source.Span, typeName source.StringID) ast.ExprID {
	p.advance() // '{'

	var fields []ast.FieldInit
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fieldTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
		p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name")
		value := p.parseExpr()
		fields = append(fields, ast.FieldInit{
			Name:  p.intern(fieldTok.Text),
			Value: value,
			Span:  fieldTok.Span.Cover(p.lastSpan),
		})
		if !p.match(token.Comma) {
			break
		}
	}

	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after struct literal")
	return p.arenas.Exprs.NewStructLit(start.Cover(p.lastSpan), typeName, fields)
}

// parseParenExpr handles `()`, a parenthesized expression, and tuples.
func (p *Parser) parseParenExpr() ast.ExprID {
	start := p.advance().Span // '('

	if p.at(token.RParen) {
		p.advance()
		return p.arenas.Exprs.NewTuple(start.Cover(p.lastSpan), nil)
	}

	first := p.parseExpr()

	if p.at(token.Comma) {
		elements := []ast.ExprID{first}
		for p.match(token.Comma) {
			if p.at(token.RParen) {
				break
			}
			elem := p.parseExpr()
			if !elem.IsValid() {
				break
			}
			elements = append(elements, elem)
		}
		p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after tuple")
		return p.arenas.Exprs.NewTuple(start.Cover(p.lastSpan), elements)
	}

	p.expect(token.RParen, diag.SynExpectRParen, "expected ')'")
	return first
}

// charLitValue extracts the rune of a character literal token. The
// lexer keeps the surrounding quotes in Text.
func charLitValue(text string) rune {
	runes := []rune(text)
	if len(runes) < 2 {
		return 0
	}
	return runes[1]
}
