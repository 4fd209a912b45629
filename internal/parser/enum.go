package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/token"
)

func (p *Parser) parseEnumDecl(vis ast.Visibility) ast.DeclID {
	start := p.lx.Peek().Span
	p.expect(token.KwEnum, diag.SynUnexpectedToken, "expected 'enum'")

	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected enum name")
	generics := p.parseGenericParams()

	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' in enum declaration")
	variants := p.parseEnumVariants()
	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after enum variants")

	return p.arenas.Decls.NewEnum(start.Cover(p.lastSpan), vis, ast.EnumDeclData{
		Name:     p.intern(nameTok.Text),
		Generics: generics,
		Variants: variants,
	})
}

// parseEnumVariants reads unit, tuple, and struct shaped variants:
// Quit, Write(String), Move { x: Int32, y: Int32 }.
func (p *Parser) parseEnumVariants() []ast.EnumVariant {
	var variants []ast.EnumVariant
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		variant := ast.EnumVariant{Span: p.lx.Peek().Span}

		nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variant name")
		variant.Name = p.intern(nameTok.Text)

		switch {
		case p.match(token.LParen):
			variant.Kind = ast.VariantTuple
			for !p.at(token.RParen) && !p.at(token.EOF) {
				variant.TupleFields = append(variant.TupleFields, p.parseType())
				if !p.match(token.Comma) {
					break
				}
			}
			p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after tuple variant fields")

		case p.match(token.LBrace):
			variant.Kind = ast.VariantStruct
			for !p.at(token.RBrace) && !p.at(token.EOF) {
				field := ast.FieldDecl{Span: p.lx.Peek().Span}
				fieldTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
				field.Name = p.intern(fieldTok.Text)
				p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name")
				field.Type = p.parseType()
				field.Span = field.Span.Cover(p.lastSpan)
				variant.StructFields = append(variant.StructFields, field)
				if !p.match(token.Comma) {
					break
				}
			}
			p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after struct variant fields")

		default:
			variant.Kind = ast.VariantUnit
		}

		variant.Span = variant.Span.Cover(p.lastSpan)
		variants = append(variants, variant)
		if !p.match(token.Comma) {
			break
		}
	}
	return variants
}
