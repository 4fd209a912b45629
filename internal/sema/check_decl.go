package sema

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
)

func (c *Checker) checkDecl(id ast.DeclID) {
	decl := c.b.Decls.Get(id)
	if decl == nil {
		return
	}

	switch decl.Kind {
	case ast.DeclFunc:
		c.checkFunc(id)

	case ast.DeclStruct:
		if data, ok := c.b.Decls.Struct(id); ok {
			added := c.pushKnown(c.genericNames(data.Generics))
			structName := c.b.Interner.MustLookup(data.Name)
			for _, field := range data.Fields {
				text := typeText(c.b, field.Type)
				if !c.knownType(text) {
					c.errorAt(diag.SemaUnknownType, field.Span,
						"unknown field type '"+text+"' for field '"+
							c.b.Interner.MustLookup(field.Name)+"' in struct '"+structName+"'")
				}
			}
			c.popKnown(added)
		}

	case ast.DeclClass:
		if data, ok := c.b.Decls.Class(id); ok {
			added := c.pushKnown(append(c.genericNames(data.Generics), "Self"))
			className := c.b.Interner.MustLookup(data.Name)
			for _, field := range data.Fields {
				text := typeText(c.b, field.Type)
				if !c.knownType(text) {
					c.errorAt(diag.SemaUnknownType, field.Span,
						"unknown field type '"+text+"' for field '"+
							c.b.Interner.MustLookup(field.Name)+"' in class '"+className+"'")
				}
			}
			for _, method := range data.Methods {
				c.checkFunc(method)
			}
			c.popKnown(added)
		}

	case ast.DeclEnum:
		if data, ok := c.b.Decls.Enum(id); ok {
			added := c.pushKnown(c.genericNames(data.Generics))
			for _, variant := range data.Variants {
				variantName := c.b.Interner.MustLookup(variant.Name)
				for _, field := range variant.TupleFields {
					text := typeText(c.b, field)
					if !c.knownType(text) {
						c.errorAt(diag.SemaUnknownType, variant.Span,
							"unknown type '"+text+"' in enum variant '"+variantName+"'")
					}
				}
				for _, field := range variant.StructFields {
					text := typeText(c.b, field.Type)
					if !c.knownType(text) {
						c.errorAt(diag.SemaUnknownType, field.Span,
							"unknown type '"+text+"' in enum variant '"+variantName+"'")
					}
				}
			}
			c.popKnown(added)
		}

	case ast.DeclTrait:
		if data, ok := c.b.Decls.Trait(id); ok {
			added := c.pushKnown(append(c.genericNames(data.Generics), "Self"))
			for _, method := range data.Methods {
				c.checkFunc(method)
			}
			c.popKnown(added)
		}

	case ast.DeclImpl:
		if data, ok := c.b.Decls.Impl(id); ok {
			added := c.pushKnown(append(c.genericNames(data.Generics), "Self"))
			for _, method := range data.Methods {
				c.checkFunc(method)
			}
			c.popKnown(added)
		}

	case ast.DeclTypeAlias:
		if data, ok := c.b.Decls.TypeAlias(id); ok {
			added := c.pushKnown(c.genericNames(data.Generics))
			text := typeText(c.b, data.Target)
			if !c.knownType(text) {
				c.errorAt(diag.SemaUnknownType, decl.Span,
					"unknown type '"+text+"' in type alias '"+
						c.b.Interner.MustLookup(data.Name)+"'")
			}
			c.popKnown(added)
		}
	}
	// Modules and imports carry no types to validate.
}

// checkFunc validates the signature against the known-types set, then
// walks the body with currentReturn set so return statements can be
// matched against the declared result.
func (c *Checker) checkFunc(id ast.DeclID) {
	data, ok := c.b.Decls.Func(id)
	if !ok {
		return
	}
	decl := c.b.Decls.Get(id)
	fnName := c.b.Interner.MustLookup(data.Name)

	added := c.pushKnown(c.genericNames(data.Generics))

	c.currentReturn = "Void"
	if data.Return.IsValid() {
		text := typeText(c.b, data.Return)
		if !c.knownType(text) {
			c.errorAt(diag.SemaUnknownType, decl.Span,
				"unknown return type '"+text+"' in function '"+fnName+"'")
		}
		c.currentReturn = text
	}

	for _, param := range data.Params {
		if param.IsSelf {
			continue
		}
		paramName := "_"
		if param.Name != source.NoStringID {
			paramName = c.b.Interner.MustLookup(param.Name)
		}
		if !param.Type.IsValid() {
			c.errorAt(diag.SemaMissingAnnotation, param.Span,
				"parameter '"+paramName+"' must have an explicit type annotation")
			continue
		}
		text := typeText(c.b, param.Type)
		if !c.knownType(text) {
			c.errorAt(diag.SemaUnknownType, param.Span,
				"unknown parameter type '"+text+"' for parameter '"+paramName+"'")
		}
	}

	if data.Body.IsValid() {
		c.checkStmt(data.Body)
	}

	c.currentReturn = ""
	c.popKnown(added)
}
