package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

func (p *Parser) parseTraitDecl(vis ast.Visibility) ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwTrait, diag.SynUnexpectedToken, "expected 'trait'")

	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected trait name")
	generics := p.parseGenericParams()

	var superTraits []source.StringID
	if p.match(token.Colon) {
		traitTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected super trait name")
		superTraits = append(superTraits, p.intern(traitTok.Text))
		for p.match(token.Plus) {
			traitTok, _ = p.expect(token.Ident, diag.SynExpectIdentifier, "expected trait name")
			superTraits = append(superTraits, p.intern(traitTok.Text))
		}
	}

	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' in trait declaration")
	methods := p.parseMethodList("expected method declaration in trait")
	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after trait methods")

	return p.arenas.Decls.NewTrait(start.Cover(p.lastSpan), vis, ast.TraitDeclData{
		Name:        p.intern(nameTok.Text),
		Generics:    generics,
		SuperTraits: superTraits,
		Methods:     methods,
	})
}

func (p *Parser) parseImplDecl() ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwImpl, diag.SynUnexpectedToken, "expected 'impl'")

	generics := p.parseGenericParams()

	// Either "impl Type" or "impl Trait for Type"; the distinction only
	// surfaces when 'for' follows the first type.
	firstType := p.parseType()

	trait := source.NoStringID
	target := firstType
	if p.match(token.KwFor) {
		if data, ok := p.arenas.Types.NamedType(firstType); ok {
			trait = data.Name()
		}
		target = p.parseType()
	}

	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' in impl block")
	methods := p.parseMethodList("expected method declaration in impl block")
	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after impl block")

	return p.arenas.Decls.NewImpl(start.Cover(p.lastSpan), ast.ImplDeclData{
		Target:   target,
		Trait:    trait,
		Generics: generics,
		Methods:  methods,
	})
}

// parseMethodList reads func declarations until the closing brace,
// skipping one token per stray non-method construct.
func (p *Parser) parseMethodList(errMsg string) []ast.DeclID {
	var methods []ast.DeclID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		isAsync := false
		if p.at(token.KwAsync) {
			isAsync = true
			p.advance()
		}
		if p.at(token.KwFunc) {
			methods = append(methods, p.parseFuncDecl(ast.VisPrivate, isAsync))
		} else {
			p.err(diag.SynUnexpectedToken, errMsg)
			p.advance()
		}
	}
	return methods
}
