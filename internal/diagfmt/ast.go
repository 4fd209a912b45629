package diagfmt

import (
	"fmt"
	"io"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"flux/internal/ast"
	"flux/internal/source"
)

var kindCaser = cases.Lower(language.English)

// FormatASTSummary prints the module header the compiler shows for
// --dump-ast: the module name, the declaration count, and one line per
// declaration with its lowercased kind and name.
func FormatASTSummary(w io.Writer, b *ast.Builder, fileID ast.FileID, fallbackName string) {
	file := b.Files.Get(fileID)
	if file == nil {
		return
	}

	name := b.ModuleName(fileID)
	if name == "" {
		name = fallbackName
	}
	fmt.Fprintf(w, "Module: %s\n", name)
	fmt.Fprintf(w, "  Declarations: %d\n", len(file.Decls))

	for _, id := range file.Decls {
		decl := b.Decls.Get(id)
		if decl == nil {
			continue
		}
		label := kindCaser.String(decl.Kind.String())
		if declName := declDisplayName(b, id); declName != "" {
			fmt.Fprintf(w, "    %s %s\n", label, declName)
		} else {
			fmt.Fprintf(w, "    %s\n", label)
		}
	}
}

func declDisplayName(b *ast.Builder, id ast.DeclID) string {
	lookup := func(sid source.StringID) string {
		if sid == source.NoStringID {
			return ""
		}
		return b.Interner.MustLookup(sid)
	}

	switch b.Decls.Get(id).Kind {
	case ast.DeclFunc:
		if data, ok := b.Decls.Func(id); ok {
			return lookup(data.Name)
		}
	case ast.DeclStruct:
		if data, ok := b.Decls.Struct(id); ok {
			return lookup(data.Name)
		}
	case ast.DeclClass:
		if data, ok := b.Decls.Class(id); ok {
			return lookup(data.Name)
		}
	case ast.DeclEnum:
		if data, ok := b.Decls.Enum(id); ok {
			return lookup(data.Name)
		}
	case ast.DeclTrait:
		if data, ok := b.Decls.Trait(id); ok {
			return lookup(data.Name)
		}
	case ast.DeclTypeAlias:
		if data, ok := b.Decls.TypeAlias(id); ok {
			return lookup(data.Name)
		}
	case ast.DeclModule:
		if data, ok := b.Decls.Module(id); ok {
			return b.PathString(data.Path)
		}
	case ast.DeclImport:
		if data, ok := b.Decls.Import(id); ok {
			return b.PathString(data.Path)
		}
	}
	return ""
}
