package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

func (p *Parser) parseModuleDecl() ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwModule, diag.SynUnexpectedToken, "expected 'module'")
	path := p.parsePath()
	p.expectSemicolon()
	return p.arenas.Decls.NewModule(start.Cover(p.lastSpan), path)
}

func (p *Parser) parseImportDecl() ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwImport, diag.SynUnexpectedToken, "expected 'import'")
	path := p.parsePath()
	alias := source.NoStringID
	if p.match(token.KwAs) {
		tok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected alias name after 'as'")
		if ok {
			alias = p.intern(tok.Text)
		}
	}
	p.expectSemicolon()
	return p.arenas.Decls.NewImport(start.Cover(p.lastSpan), path, alias)
}
