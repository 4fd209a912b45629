package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/token"
)

func (p *Parser) parseStructDecl(vis ast.Visibility) ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwStruct, diag.SynUnexpectedToken, "expected 'struct'")

	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected struct name")
	generics := p.parseGenericParams()

	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' in struct declaration")
	fields := p.parseStructFields()
	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after struct fields")

	return p.arenas.Decls.NewStruct(start.Cover(p.lastSpan), vis, ast.StructDeclData{
		Name:     p.intern(nameTok.Text),
		Generics: generics,
		Fields:   fields,
	})
}

func (p *Parser) parseStructFields() []ast.FieldDecl {
	var fields []ast.FieldDecl
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		field := ast.FieldDecl{Span: p.lx.Peek().Span}

		nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
		field.Name = p.intern(nameTok.Text)

		p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name")
		field.Type = p.parseType()

		field.Span = field.Span.Cover(p.lastSpan)
		fields = append(fields, field)
		if !p.match(token.Comma) {
			break
		}
	}
	return fields
}

func (p *Parser) parseClassDecl(vis ast.Visibility) ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwClass, diag.SynUnexpectedToken, "expected 'class'")

	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected class name")
	generics := p.parseGenericParams()

	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' in class declaration")
	fields := p.parseClassFields()
	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after class fields")

	return p.arenas.Decls.NewClass(start.Cover(p.lastSpan), vis, ast.ClassDeclData{
		Name:     p.intern(nameTok.Text),
		Generics: generics,
		Fields:   fields,
	})
}

// parseClassFields: like struct fields, but every field may carry its
// own visibility modifier.
func (p *Parser) parseClassFields() []ast.FieldDecl {
	var fields []ast.FieldDecl
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		field := ast.FieldDecl{Span: p.lx.Peek().Span}

		if p.match(token.KwPublic) || p.match(token.KwPub) {
			field.Visibility = ast.VisPublic
		} else if p.match(token.KwPrivate) {
			field.Visibility = ast.VisPrivate
		}

		nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
		field.Name = p.intern(nameTok.Text)

		p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name")
		field.Type = p.parseType()

		field.Span = field.Span.Cover(p.lastSpan)
		fields = append(fields, field)
		if !p.match(token.Comma) {
			break
		}
	}
	return fields
}

func (p *Parser) parseTypeAliasDecl(vis ast.Visibility) ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwType, diag.SynUnexpectedToken, "expected 'type'")

	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected type alias name")
	generics := p.parseGenericParams()

	p.expect(token.Equal, diag.SynUnexpectedToken, "expected '=' in type alias")
	target := p.parseType()
	p.expectSemicolon()

	return p.arenas.Decls.NewTypeAlias(start.Cover(p.lastSpan), vis, ast.TypeAliasDeclData{
		Name:     p.intern(nameTok.Text),
		Generics: generics,
		Target:   target,
	})
}
