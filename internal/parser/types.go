package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

// parseType dispatches on the leading token. NoTypeID means the error
// was already reported.
func (p *Parser) parseType() ast.TypeID {
	start := p.lx.Peek().Span

	switch p.lx.Peek().Kind {
	case token.KwRef:
		return p.parseRefType()

	case token.Ampersand:
		p.advance()
		if p.match(token.KwMut) {
			inner := p.parseType()
			return p.arenas.Types.NewRef(ast.TypeMutRef,
				start.Cover(p.lastSpan), inner, source.NoStringID)
		}
		inner := p.parseType()
		return p.arenas.Types.NewRef(ast.TypeRef,
			start.Cover(p.lastSpan), inner, source.NoStringID)

	case token.KwMut:
		p.advance()
		if p.match(token.KwRef) {
			inner := p.parseType()
			return p.arenas.Types.NewRef(ast.TypeMutRef,
				start.Cover(p.lastSpan), inner, source.NoStringID)
		}
		p.err(diag.SynExpectType, "expected 'ref' after 'mut' in type")
		return ast.NoTypeID

	case token.LParen:
		return p.parseTupleType()
	}

	return p.parseNamedOrGenericType()
}

func (p *Parser) parseNamedOrGenericType() ast.TypeID {
	start := p.lx.Peek().Span

	// Void and Self are keywords but name types.
	switch p.lx.Peek().Kind {
	case token.KwVoid:
		p.advance()
		return p.arenas.Types.NewNamed(start, []source.StringID{p.intern("Void")})
	case token.KwSelfType:
		p.advance()
		return p.arenas.Types.NewNamed(start, []source.StringID{p.intern("Self")})
	}

	tok, _ := p.expect(token.Ident, diag.SynExpectType, "expected type name")
	path := []source.StringID{p.intern(tok.Text)}

	for p.match(token.ColonColon) {
		tok, _ = p.expect(token.Ident, diag.SynExpectType, "expected type name after '::'")
		path = append(path, p.intern(tok.Text))
	}

	if p.at(token.Less) {
		p.advance()
		var args []ast.TypeID
		for !p.at(token.Greater) && !p.at(token.EOF) {
			args = append(args, p.parseType())
			if !p.match(token.Comma) {
				break
			}
		}
		p.expect(token.Greater, diag.SynExpectType, "expected '>' after type arguments")

		base := p.arenas.Types.NewNamed(start.Cover(p.lastSpan), path)
		return p.arenas.Types.NewGeneric(start.Cover(p.lastSpan), base, args)
	}

	return p.arenas.Types.NewNamed(start.Cover(p.lastSpan), path)
}

// parseTupleType also covers function types, which reuse the tuple
// element list as the parameter list: (T1, T2) -> Ret.
func (p *Parser) parseTupleType() ast.TypeID {
	start := p.lx.Peek().Span
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")

	var elements []ast.TypeID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		elements = append(elements, p.parseType())
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after tuple type")

	if p.match(token.Arrow) {
		ret := p.parseType()
		return p.arenas.Types.NewFunc(start.Cover(p.lastSpan), elements, ret)
	}

	return p.arenas.Types.NewTuple(start.Cover(p.lastSpan), elements)
}

// parseRefType reads `ref T` and `ref 'a T`. The lexer folds the
// lifetime name into the apostrophe token.
func (p *Parser) parseRefType() ast.TypeID {
	start := p.lx.Peek().Span
	p.expect(token.KwRef, diag.SynUnexpectedToken, "expected 'ref'")

	lifetime := source.NoStringID
	if p.at(token.Apostrophe) {
		tok := p.advance()
		if len(tok.Text) > 1 {
			lifetime = p.intern(tok.Text[1:])
		} else {
			p.err(diag.SynExpectIdentifier, "expected lifetime name")
		}
	}

	inner := p.parseType()
	return p.arenas.Types.NewRef(ast.TypeRef, start.Cover(p.lastSpan), inner, lifetime)
}
