package ir

import (
	"flux/internal/ast"
)

var builtinLower = map[string]Type{
	"Int8":    I8,
	"Int16":   I16,
	"Int32":   I32,
	"Int64":   I64,
	"UInt8":   I8,
	"UInt16":  I16,
	"UInt32":  I32,
	"UInt64":  I64,
	"Float32": Float,
	"Float64": Double,
	"Bool":    I1,
	"Char":    I32,
	"String":  Ptr,
	"Void":    Void,
}

// mapType lowers a type annotation. Builtins map to their machine
// shapes, generic applications substitute the base, references become
// pointers, and user-declared names stay opaque pointers until struct
// layout is consulted.
func mapType(b *ast.Builder, id ast.TypeID) Type {
	if !id.IsValid() {
		return Ptr
	}
	node := b.Types.Get(id)
	if node == nil {
		return Ptr
	}

	switch node.Kind {
	case ast.TypeNamed:
		data, _ := b.Types.NamedType(id)
		if len(data.Path) == 1 {
			if t, ok := builtinLower[b.Interner.MustLookup(data.Path[0])]; ok {
				return t
			}
		}
		return Ptr

	case ast.TypeGeneric:
		data, _ := b.Types.Generic(id)
		return mapType(b, data.Base)

	case ast.TypeRef, ast.TypeMutRef:
		return Ptr

	case ast.TypeTuple:
		data, _ := b.Types.Tuple(id)
		fields := make([]Type, len(data.Elements))
		for i, elem := range data.Elements {
			fields[i] = mapType(b, elem)
		}
		return StructOf(fields)

	case ast.TypeFunc:
		return Ptr

	case ast.TypeArray:
		data, _ := b.Types.Array(id)
		elem := mapType(b, data.Elem)
		if data.HasSize {
			return ArrayOf(data.Size, elem)
		}
		return Ptr
	}
	return Ptr
}
