package symbols

import (
	"flux/internal/ast"
	"flux/internal/source"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolFunction
	SymbolStruct
	SymbolClass
	SymbolEnum
	SymbolTrait
	SymbolTypeAlias
	SymbolVariable
	SymbolConstant
	SymbolGenericParam
	SymbolEnumVariant
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolStruct:
		return "struct"
	case SymbolClass:
		return "class"
	case SymbolEnum:
		return "enum"
	case SymbolTrait:
		return "trait"
	case SymbolTypeAlias:
		return "type alias"
	case SymbolVariable:
		return "variable"
	case SymbolConstant:
		return "constant"
	case SymbolGenericParam:
		return "generic parameter"
	case SymbolEnumVariant:
		return "enum variant"
	default:
		return "invalid"
	}
}

// IsType reports whether the symbol names a type.
func (k SymbolKind) IsType() bool {
	switch k {
	case SymbolStruct, SymbolClass, SymbolEnum, SymbolTrait, SymbolTypeAlias, SymbolGenericParam:
		return true
	}
	return false
}

// SymbolFlags encode misc attributes for quick checks.
type SymbolFlags uint16

const (
	SymbolFlagPublic SymbolFlags = 1 << iota
	SymbolFlagMutable
	SymbolFlagBuiltin
)

// Strings returns a slice of textual flag labels.
func (f SymbolFlags) Strings() []string {
	if f == 0 {
		return nil
	}
	labels := make([]string, 0, 3)
	if f&SymbolFlagPublic != 0 {
		labels = append(labels, "public")
	}
	if f&SymbolFlagMutable != 0 {
		labels = append(labels, "mutable")
	}
	if f&SymbolFlagBuiltin != 0 {
		labels = append(labels, "builtin")
	}
	return labels
}

// SymbolOrigin records the AST node that introduced the symbol, for
// diagnostics and later phases. At most one field is set.
type SymbolOrigin struct {
	Decl ast.DeclID
	Stmt ast.StmtID
	Expr ast.ExprID
}

// Symbol describes a named entity available in a scope. Qualified is
// the display name for symbols whose path differs from their lookup
// key (enum variants); it equals Name otherwise. TypeName is the
// declared type rendered as text for value symbols, NoStringID when
// no annotation was recorded.
type Symbol struct {
	Name      source.StringID
	Qualified source.StringID
	Kind      SymbolKind
	Scope     ScopeID
	Span      source.Span
	Flags     SymbolFlags
	TypeName  source.StringID
	Origin    SymbolOrigin
}

// Mutable reports whether the symbol may be assigned after binding.
func (s *Symbol) Mutable() bool { return s.Flags&SymbolFlagMutable != 0 }

// Public reports whether the symbol is exported from its module.
func (s *Symbol) Public() bool { return s.Flags&SymbolFlagPublic != 0 }
