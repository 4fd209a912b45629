package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

func (p *Parser) parseFuncDecl(vis ast.Visibility, isAsync bool) ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwFunc, diag.SynUnexpectedToken, "expected 'func'")

	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected function name")
	name := p.intern(nameTok.Text)

	generics := p.parseGenericParams()

	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' in function declaration")
	params := p.parseFuncParams()
	p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after parameters")

	ret := ast.NoTypeID
	if p.match(token.Arrow) {
		ret = p.parseType()
	}

	// A missing body makes this a trait method requirement.
	body := ast.NoStmtID
	if p.at(token.LBrace) {
		body = p.parseBlock()
	} else {
		p.expectSemicolon()
	}

	return p.arenas.Decls.NewFunc(start.Cover(p.lastSpan), vis, ast.FuncDeclData{
		Name:     name,
		Generics: generics,
		Params:   params,
		Return:   ret,
		Body:     body,
		IsAsync:  isAsync,
	})
}

// parseGenericParams reads an optional <...> list of type parameters,
// trait bounds, and lifetimes.
func (p *Parser) parseGenericParams() []ast.GenericParam {
	if !p.match(token.Less) {
		return nil
	}

	var params []ast.GenericParam
	for !p.at(token.Greater) && !p.at(token.EOF) {
		param := ast.GenericParam{Span: p.lx.Peek().Span}

		if p.at(token.Apostrophe) {
			tok := p.advance()
			if len(tok.Text) > 1 {
				param.Lifetime = p.intern(tok.Text[1:])
			} else {
				p.err(diag.SynExpectIdentifier, "expected lifetime name, got '"+p.lx.Peek().Text+"'")
			}
		} else {
			nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type parameter name")
			param.Name = p.intern(nameTok.Text)

			if p.match(token.Colon) {
				boundTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected trait bound")
				param.Bounds = append(param.Bounds, p.intern(boundTok.Text))
				for p.match(token.Plus) {
					boundTok, _ = p.expect(token.Ident, diag.SynExpectIdentifier, "expected trait bound")
					param.Bounds = append(param.Bounds, p.intern(boundTok.Text))
				}
			}
		}

		param.Span = param.Span.Cover(p.lastSpan)
		params = append(params, param)
		if !p.match(token.Comma) {
			break
		}
	}

	p.expect(token.Greater, diag.SynUnexpectedToken, "expected '>' after generic parameters")
	return params
}

func (p *Parser) parseFuncParams() []ast.FuncParam {
	if p.at(token.RParen) {
		return nil
	}

	params := []ast.FuncParam{p.parseFuncParam()}
	for p.match(token.Comma) {
		if p.at(token.RParen) {
			break
		}
		params = append(params, p.parseFuncParam())
	}
	return params
}

func (p *Parser) parseFuncParam() ast.FuncParam {
	param := ast.FuncParam{Span: p.lx.Peek().Span}

	if p.match(token.KwMut) {
		param.Mutable = true
		if p.match(token.KwRef) {
			param.IsMutRef = true
		}
	}
	if !param.IsMutRef && p.match(token.KwRef) {
		param.IsRef = true
	}

	var name source.StringID
	if p.at(token.KwSelf) {
		tok := p.advance()
		param.IsSelf = true
		name = p.intern(tok.Text)
	} else {
		tok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		name = p.intern(tok.Text)
	}
	param.Name = name

	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name")
	param.Type = p.parseType()

	param.Span = param.Span.Cover(p.lastSpan)
	return param
}
