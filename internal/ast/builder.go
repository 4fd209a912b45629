package ast

import (
	"strings"

	"flux/internal/source"
)

// Hints sets initial arena capacities per node family.
type Hints struct{ Files, Decls, Stmts, Exprs, Patterns, Types uint }

// Builder owns every arena produced by parsing one or more files.
type Builder struct {
	Files    *Files
	Decls    *Decls
	Stmts    *Stmts
	Exprs    *Exprs
	Patterns *Patterns
	Types    *TypeNodes

	Interner *source.Interner
}

func NewBuilder(interner *source.Interner, hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 4
	}
	if hints.Decls == 0 {
		hints.Decls = 1 << 7
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Patterns == 0 {
		hints.Patterns = 1 << 6
	}
	if hints.Types == 0 {
		hints.Types = 1 << 7
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Files:    NewFiles(hints.Files),
		Decls:    NewDecls(hints.Decls),
		Stmts:    NewStmts(hints.Stmts),
		Exprs:    NewExprs(hints.Exprs),
		Patterns: NewPatterns(hints.Patterns),
		Types:    NewTypeNodes(hints.Types),
		Interner: interner,
	}
}

func (b *Builder) NewFile(span source.Span) FileID {
	return b.Files.New(span)
}

// PushDecl appends a top-level declaration to the file, keeping the
// module path and import list in sync.
func (b *Builder) PushDecl(file FileID, decl DeclID) {
	f := b.Files.Get(file)
	f.Decls = append(f.Decls, decl)
	switch b.Decls.Get(decl).Kind {
	case DeclModule:
		if data, ok := b.Decls.Module(decl); ok {
			f.ModulePath = data.Path
		}
	case DeclImport:
		f.Imports = append(f.Imports, decl)
	}
}

// ModuleName renders the file's module path as a :: joined string, or
// "" when no module declaration was seen.
func (b *Builder) ModuleName(file FileID) string {
	f := b.Files.Get(file)
	if f == nil || len(f.ModulePath) == 0 {
		return ""
	}
	segs := make([]string, len(f.ModulePath))
	for i, id := range f.ModulePath {
		segs[i] = b.Interner.MustLookup(id)
	}
	return strings.Join(segs, "::")
}

// PathString renders any interned path with :: separators.
func (b *Builder) PathString(path []source.StringID) string {
	segs := make([]string, len(path))
	for i, id := range path {
		segs[i] = b.Interner.MustLookup(id)
	}
	return strings.Join(segs, "::")
}
