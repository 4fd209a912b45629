package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

// parsePattern always returns a valid pattern; on error it reports and
// yields a wildcard so match arms keep their shape.
func (p *Parser) parsePattern() ast.PatternID {
	start := p.lx.Peek().Span

	switch p.lx.Peek().Kind {
	case token.Underscore:
		p.advance()
		return p.arenas.Patterns.NewWildcard(start)

	case token.IntLit:
		tok := p.advance()
		lit := p.arenas.Exprs.NewIntLit(tok.Span, tok.IntVal)
		return p.arenas.Patterns.NewLiteral(tok.Span, lit)

	case token.StringLit:
		tok := p.advance()
		lit := p.arenas.Exprs.NewStringLit(tok.Span, p.intern(tok.Text))
		return p.arenas.Patterns.NewLiteral(tok.Span, lit)

	case token.KwTrue, token.KwFalse:
		tok := p.advance()
		lit := p.arenas.Exprs.NewBoolLit(tok.Span, tok.Kind == token.KwTrue)
		return p.arenas.Patterns.NewLiteral(tok.Span, lit)

	case token.LParen:
		return p.parseTuplePattern()

	case token.Ident:
		return p.parseIdentPattern()
	}

	p.err(diag.SynExpectPattern, "expected pattern")
	return p.arenas.Patterns.NewWildcard(start)
}

func (p *Parser) parseTuplePattern() ast.PatternID {
	start := p.advance().Span // '('

	var elements []ast.PatternID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		elements = append(elements, p.parsePattern())
		if !p.match(token.Comma) {
			break
		}
	}

	p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after tuple pattern")
	return p.arenas.Patterns.NewTuple(start.Cover(p.lastSpan), elements)
}

// parseIdentPattern distinguishes a plain binding from a constructor
// pattern like `Option::Some(value)` or `Message::Move { x, y }`.
func (p *Parser) parseIdentPattern() ast.PatternID {
	tok := p.advance()
	name := p.intern(tok.Text)

	if !p.at(token.ColonColon) {
		return p.arenas.Patterns.NewIdent(tok.Span, name, false)
	}

	path := []source.StringID{name}
	for p.match(token.ColonColon) {
		segTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier")
		path = append(path, p.intern(segTok.Text))
	}

	var positional []ast.PatternID
	if p.match(token.LParen) {
		for !p.at(token.RParen) && !p.at(token.EOF) {
			positional = append(positional, p.parsePattern())
			if !p.match(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after constructor pattern")
	}

	var named []ast.PatNamedField
	if p.match(token.LBrace) {
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			fieldTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
			field := ast.PatNamedField{Name: p.intern(fieldTok.Text)}

			if p.match(token.Colon) {
				field.Pattern = p.parsePattern()
			} else {
				// Shorthand: { x } binds the field to a variable of the
				// same name.
				field.Pattern = p.arenas.Patterns.NewIdent(
					fieldTok.Span, field.Name, false)
			}
			named = append(named, field)
			if !p.match(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after struct pattern")
	}

	return p.arenas.Patterns.NewConstructor(
		tok.Span.Cover(p.lastSpan), path, positional, named)
}
