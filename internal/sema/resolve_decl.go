package sema

import (
	"flux/internal/ast"
	"flux/internal/source"
	"flux/internal/symbols"
)

// hoistDecl installs a stub for every top-level declaration that names
// a type or function, so bodies can refer to later declarations.
// Modules, imports, and impl blocks bind no name at this level.
func (r *Resolver) hoistDecl(id ast.DeclID) {
	decl := r.b.Decls.Get(id)
	if decl == nil {
		return
	}
	flags := declFlags(decl.Visibility)
	origin := symbols.SymbolOrigin{Decl: id}

	switch decl.Kind {
	case ast.DeclFunc:
		if data, ok := r.b.Decls.Func(id); ok {
			r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolFunction,
				Span: decl.Span, Flags: flags, Origin: origin})
		}
	case ast.DeclStruct:
		if data, ok := r.b.Decls.Struct(id); ok {
			r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolStruct,
				Span: decl.Span, Flags: flags, Origin: origin})
		}
	case ast.DeclClass:
		if data, ok := r.b.Decls.Class(id); ok {
			r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolClass,
				Span: decl.Span, Flags: flags, Origin: origin})
		}
	case ast.DeclEnum:
		if data, ok := r.b.Decls.Enum(id); ok {
			r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolEnum,
				Span: decl.Span, Flags: flags, Origin: origin})
		}
	case ast.DeclTrait:
		if data, ok := r.b.Decls.Trait(id); ok {
			r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolTrait,
				Span: decl.Span, Flags: flags, Origin: origin})
		}
	case ast.DeclTypeAlias:
		if data, ok := r.b.Decls.TypeAlias(id); ok {
			r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolTypeAlias,
				Span: decl.Span, Flags: flags, Origin: origin})
		}
	}
}

func (r *Resolver) resolveDecl(id ast.DeclID) {
	decl := r.b.Decls.Get(id)
	if decl == nil {
		return
	}

	switch decl.Kind {
	case ast.DeclFunc:
		r.resolveFunc(id)

	case ast.DeclStruct:
		if data, ok := r.b.Decls.Struct(id); ok {
			r.enter(symbols.ScopeStruct, data.Name, decl.Span)
			r.declareGenerics(id, data.Generics)
			r.leave()
		}

	case ast.DeclClass:
		if data, ok := r.b.Decls.Class(id); ok {
			r.enter(symbols.ScopeClass, data.Name, decl.Span)
			r.declareGenerics(id, data.Generics)
			for _, method := range data.Methods {
				r.resolveFunc(method)
			}
			r.leave()
		}

	case ast.DeclEnum:
		if data, ok := r.b.Decls.Enum(id); ok {
			r.declareEnumVariants(id, data)
			r.enter(symbols.ScopeEnum, data.Name, decl.Span)
			r.declareGenerics(id, data.Generics)
			r.leave()
		}

	case ast.DeclTrait:
		if data, ok := r.b.Decls.Trait(id); ok {
			r.enter(symbols.ScopeTrait, data.Name, decl.Span)
			r.declareGenerics(id, data.Generics)
			for _, method := range data.Methods {
				if fn, ok := r.b.Decls.Func(method); ok {
					r.declare(&symbols.Symbol{Name: fn.Name, Kind: symbols.SymbolFunction,
						Span: r.b.Decls.Get(method).Span, Origin: symbols.SymbolOrigin{Decl: method}})
				}
				r.resolveFunc(method)
			}
			r.leave()
		}

	case ast.DeclImpl:
		if data, ok := r.b.Decls.Impl(id); ok {
			r.enter(symbols.ScopeImpl, source.NoStringID, decl.Span)
			r.declareGenerics(id, data.Generics)
			for _, method := range data.Methods {
				r.resolveFunc(method)
			}
			r.leave()
		}
	}
	// Modules, imports, and type aliases carry no body to resolve.
}

// resolveFunc binds generics and parameters in a fresh function scope
// and walks the body statements directly in that scope, so parameters
// and top-level lets share it. Trait method requirements have no body.
func (r *Resolver) resolveFunc(id ast.DeclID) {
	data, ok := r.b.Decls.Func(id)
	if !ok {
		return
	}
	decl := r.b.Decls.Get(id)

	r.enter(symbols.ScopeFunction, data.Name, decl.Span)
	r.declareGenerics(id, data.Generics)

	for _, param := range data.Params {
		if param.Name == source.NoStringID {
			continue
		}
		flags := symbols.SymbolFlags(0)
		if param.Mutable {
			flags |= symbols.SymbolFlagMutable
		}
		r.declare(&symbols.Symbol{Name: param.Name, Kind: symbols.SymbolVariable,
			Span: param.Span, Flags: flags, TypeName: r.typeNameID(param.Type),
			Origin: symbols.SymbolOrigin{Decl: id}})
	}

	if data.Body.IsValid() {
		if block, ok := r.b.Stmts.Block(data.Body); ok {
			for _, stmt := range block.Stmts {
				r.resolveStmt(stmt)
			}
		} else {
			r.resolveStmt(data.Body)
		}
	}
	r.leave()
}

// declareGenerics binds named type parameters. Bare lifetimes do not
// introduce value or type names.
func (r *Resolver) declareGenerics(owner ast.DeclID, generics []ast.GenericParam) {
	for _, g := range generics {
		if g.Name == source.NoStringID {
			continue
		}
		r.declare(&symbols.Symbol{Name: g.Name, Kind: symbols.SymbolGenericParam,
			Span: g.Span, Origin: symbols.SymbolOrigin{Decl: owner}})
	}
}

// declareEnumVariants installs one symbol per variant into the enum's
// enclosing scope, keyed by the bare variant name but displaying the
// qualified Enum::Variant form.
func (r *Resolver) declareEnumVariants(id ast.DeclID, data *ast.EnumDeclData) {
	enumName := r.name(data.Name)
	for _, variant := range data.Variants {
		qualified := r.b.Interner.Intern(enumName + "::" + r.name(variant.Name))
		r.declare(&symbols.Symbol{
			Name:      variant.Name,
			Qualified: qualified,
			Kind:      symbols.SymbolEnumVariant,
			Span:      variant.Span,
			Origin:    symbols.SymbolOrigin{Decl: id},
		})
	}
}
