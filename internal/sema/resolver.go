package sema

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/symbols"
)

// ResolverOptions configures resolver construction.
type ResolverOptions struct {
	Reporter diag.Reporter
}

// Resolver binds every identifier in a parsed file to a symbol. It
// runs two passes over the top-level declarations: first hoisting
// type and function names into the module scope, then walking bodies.
type Resolver struct {
	b        *ast.Builder
	table    *symbols.Table
	reporter diag.Reporter
	current  symbols.ScopeID
	uses     map[ast.ExprID]symbols.SymbolID
}

// NewResolver wires a resolver to the AST builder whose nodes it will
// walk. If table is nil a fresh one sharing the builder's interner is
// created.
func NewResolver(b *ast.Builder, table *symbols.Table, opts ResolverOptions) *Resolver {
	if table == nil {
		table = symbols.NewTable(symbols.Hints{}, b.Interner)
	}
	return &Resolver{
		b:        b,
		table:    table,
		reporter: opts.Reporter,
		uses:     make(map[ast.ExprID]symbols.SymbolID),
	}
}

// Table exposes the symbol table for later phases.
func (r *Resolver) Table() *symbols.Table { return r.table }

// Uses maps identifier expressions to the symbol each one resolved to.
func (r *Resolver) Uses() map[ast.ExprID]symbols.SymbolID { return r.uses }

// Resolve processes one file and returns its module scope.
func (r *Resolver) Resolve(fileID ast.FileID) symbols.ScopeID {
	file := r.b.Files.Get(fileID)
	if file == nil {
		return symbols.NoScopeID
	}

	label := source.NoStringID
	if n := len(file.ModulePath); n > 0 {
		label = file.ModulePath[n-1]
	}
	moduleScope := r.table.NewScope(symbols.ScopeModule, symbols.NoScopeID, label, file.Span)
	r.current = moduleScope

	for _, decl := range file.Decls {
		r.hoistDecl(decl)
	}
	for _, decl := range file.Decls {
		r.resolveDecl(decl)
	}

	r.current = symbols.NoScopeID
	return moduleScope
}

func (r *Resolver) enter(kind symbols.ScopeKind, label source.StringID, span source.Span) symbols.ScopeID {
	scope := r.table.NewScope(kind, r.current, label, span)
	r.current = scope
	return scope
}

func (r *Resolver) leave() {
	sc := r.table.Scopes.Get(r.current)
	if sc == nil {
		return
	}
	r.current = sc.Parent
}

func (r *Resolver) name(id source.StringID) string {
	return r.b.Interner.MustLookup(id)
}

// typeNameID renders a type annotation and interns the text, so value
// symbols remember their declared type for the checker.
func (r *Resolver) typeNameID(t ast.TypeID) source.StringID {
	text := typeText(r.b, t)
	if text == "" {
		return source.NoStringID
	}
	return r.b.Interner.Intern(text)
}

// declare inserts a symbol into the current scope. On a local
// collision it reports redefinition and returns the prior symbol.
// The redefinition message varies with what is being declared.
func (r *Resolver) declare(sym *symbols.Symbol) symbols.SymbolID {
	id, ok := r.table.Insert(r.current, sym)
	if ok {
		return id
	}
	prior := r.table.Symbols.Get(id)

	var msg string
	switch sym.Kind {
	case symbols.SymbolVariable:
		msg = "redefinition of variable '" + r.name(sym.Name) + "'"
	case symbols.SymbolConstant:
		msg = "redefinition of constant '" + r.name(sym.Name) + "'"
	default:
		msg = "redefinition of '" + r.name(sym.Name) + "'"
	}
	rb := diag.ReportError(r.reporter, diag.SemaRedefinition, sym.Span, msg)
	if prior != nil {
		rb.WithNote(prior.Span, "previous definition is here")
	}
	rb.Emit()
	return id
}

func (r *Resolver) errorAt(code diag.Code, span source.Span, msg string) {
	diag.ReportError(r.reporter, code, span, msg).Emit()
}

func declFlags(vis ast.Visibility) symbols.SymbolFlags {
	if vis == ast.VisPublic {
		return symbols.SymbolFlagPublic
	}
	return 0
}
