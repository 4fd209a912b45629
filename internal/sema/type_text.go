package sema

import (
	"strings"

	"flux/internal/ast"
)

// typeText renders a type annotation to the textual form the checker
// keys its known-types set on. Generic applications collapse to their
// base name; tuples and function types use fixed placeholders.
func typeText(b *ast.Builder, id ast.TypeID) string {
	if !id.IsValid() {
		return ""
	}
	node := b.Types.Get(id)
	if node == nil {
		return ""
	}

	switch node.Kind {
	case ast.TypeNamed:
		data, _ := b.Types.NamedType(id)
		parts := make([]string, len(data.Path))
		for i, seg := range data.Path {
			parts[i] = b.Interner.MustLookup(seg)
		}
		return strings.Join(parts, "::")

	case ast.TypeGeneric:
		data, _ := b.Types.Generic(id)
		return typeText(b, data.Base)

	case ast.TypeRef:
		data, _ := b.Types.Ref(id)
		return "&" + typeText(b, data.Inner)

	case ast.TypeMutRef:
		data, _ := b.Types.Ref(id)
		return "&mut " + typeText(b, data.Inner)

	case ast.TypeArray:
		data, _ := b.Types.Array(id)
		return "[" + typeText(b, data.Elem) + "]"

	case ast.TypeTuple:
		return "(tuple)"

	case ast.TypeFunc:
		return "(func)"
	}
	return "<unknown>"
}


// refTarget strips reference layers off a rendered type so known-type
// membership can be tested on the underlying name.
func refTarget(text string) string {
	for {
		switch {
		case strings.HasPrefix(text, "&mut "):
			text = text[len("&mut "):]
		case strings.HasPrefix(text, "&"):
			text = text[1:]
		case strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]"):
			text = text[1 : len(text)-1]
		default:
			return text
		}
	}
}
