package ast

import (
	"flux/internal/source"
)

// TypeNodeKind enumerates the syntactic type annotation forms.
type TypeNodeKind uint8

const (
	TypeNamed TypeNodeKind = iota
	TypeGeneric
	TypeRef
	TypeMutRef
	TypeTuple
	TypeFunc
	TypeArray
)

var typeNodeKindNames = [...]string{
	TypeNamed:   "Named",
	TypeGeneric: "Generic",
	TypeRef:     "Reference",
	TypeMutRef:  "MutRef",
	TypeTuple:   "Tuple",
	TypeFunc:    "Function",
	TypeArray:   "Array",
}

func (k TypeNodeKind) String() string {
	if int(k) < len(typeNodeKindNames) {
		return typeNodeKindNames[k]
	}
	return "Unknown"
}

// TypeNode is the uniform header for syntactic type annotations.
type TypeNode struct {
	Kind    TypeNodeKind
	Span    source.Span
	Payload PayloadID
}

type TypeNamedData struct {
	Path []source.StringID
}

// Name returns the final path segment.
func (d *TypeNamedData) Name() source.StringID {
	if len(d.Path) == 0 {
		return source.NoStringID
	}
	return d.Path[len(d.Path)-1]
}

// TypeGenericData: Base always refers to a TypeNamed node.
type TypeGenericData struct {
	Base TypeID
	Args []TypeID
}

// TypeRefData backs both ref and mut ref annotations. Lifetime is
// source.NoStringID when unspecified.
type TypeRefData struct {
	Inner    TypeID
	Lifetime source.StringID
}

type TypeTupleData struct {
	Elements []TypeID
}

type TypeFuncData struct {
	Params []TypeID
	Return TypeID
}

// TypeArrayData: HasSize distinguishes Array<T, N> from dynamically
// sized Array<T>.
type TypeArrayData struct {
	Elem    TypeID
	Size    uint64
	HasSize bool
}

// TypeNodes manages allocation of type annotations.
type TypeNodes struct {
	Arena    *Arena[TypeNode]
	Named    *Arena[TypeNamedData]
	Generics *Arena[TypeGenericData]
	Refs     *Arena[TypeRefData]
	Tuples   *Arena[TypeTupleData]
	Funcs    *Arena[TypeFuncData]
	Arrays   *Arena[TypeArrayData]
}

func NewTypeNodes(capHint uint) *TypeNodes {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &TypeNodes{
		Arena:    NewArena[TypeNode](capHint),
		Named:    NewArena[TypeNamedData](capHint),
		Generics: NewArena[TypeGenericData](capHint),
		Refs:     NewArena[TypeRefData](capHint),
		Tuples:   NewArena[TypeTupleData](capHint),
		Funcs:    NewArena[TypeFuncData](capHint),
		Arrays:   NewArena[TypeArrayData](capHint),
	}
}

func (t *TypeNodes) new(kind TypeNodeKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(TypeNode{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the type annotation with the given ID.
func (t *TypeNodes) Get(id TypeID) *TypeNode {
	return t.Arena.Get(uint32(id))
}

// NewNamed creates a named type annotation.
func (t *TypeNodes) NewNamed(span source.Span, path []source.StringID) TypeID {
	payload := t.Named.Allocate(TypeNamedData{
		Path: append([]source.StringID(nil), path...),
	})
	return t.new(TypeNamed, span, PayloadID(payload))
}

func (t *TypeNodes) NamedType(id TypeID) (*TypeNamedData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeNamed {
		return nil, false
	}
	return t.Named.Get(uint32(node.Payload)), true
}

// NewGeneric creates a generic application annotation.
func (t *TypeNodes) NewGeneric(span source.Span, base TypeID, args []TypeID) TypeID {
	payload := t.Generics.Allocate(TypeGenericData{
		Base: base,
		Args: append([]TypeID(nil), args...),
	})
	return t.new(TypeGeneric, span, PayloadID(payload))
}

func (t *TypeNodes) Generic(id TypeID) (*TypeGenericData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeGeneric {
		return nil, false
	}
	return t.Generics.Get(uint32(node.Payload)), true
}

// NewRef creates a ref or mut ref annotation; kind must be TypeRef or
// TypeMutRef.
func (t *TypeNodes) NewRef(kind TypeNodeKind, span source.Span, inner TypeID, lifetime source.StringID) TypeID {
	payload := t.Refs.Allocate(TypeRefData{Inner: inner, Lifetime: lifetime})
	return t.new(kind, span, PayloadID(payload))
}

func (t *TypeNodes) Ref(id TypeID) (*TypeRefData, bool) {
	node := t.Get(id)
	if node == nil || (node.Kind != TypeRef && node.Kind != TypeMutRef) {
		return nil, false
	}
	return t.Refs.Get(uint32(node.Payload)), true
}

// NewTuple creates a tuple type annotation.
func (t *TypeNodes) NewTuple(span source.Span, elements []TypeID) TypeID {
	payload := t.Tuples.Allocate(TypeTupleData{
		Elements: append([]TypeID(nil), elements...),
	})
	return t.new(TypeTuple, span, PayloadID(payload))
}

func (t *TypeNodes) Tuple(id TypeID) (*TypeTupleData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeTuple {
		return nil, false
	}
	return t.Tuples.Get(uint32(node.Payload)), true
}

// NewFunc creates a function type annotation.
func (t *TypeNodes) NewFunc(span source.Span, params []TypeID, ret TypeID) TypeID {
	payload := t.Funcs.Allocate(TypeFuncData{
		Params: append([]TypeID(nil), params...),
		Return: ret,
	})
	return t.new(TypeFunc, span, PayloadID(payload))
}

func (t *TypeNodes) Func(id TypeID) (*TypeFuncData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeFunc {
		return nil, false
	}
	return t.Funcs.Get(uint32(node.Payload)), true
}

// NewArray creates an array type annotation.
func (t *TypeNodes) NewArray(span source.Span, elem TypeID, size uint64, hasSize bool) TypeID {
	payload := t.Arrays.Allocate(TypeArrayData{
		Elem:    elem,
		Size:    size,
		HasSize: hasSize,
	})
	return t.new(TypeArray, span, PayloadID(payload))
}

func (t *TypeNodes) Array(id TypeID) (*TypeArrayData, bool) {
	node := t.Get(id)
	if node == nil || node.Kind != TypeArray {
		return nil, false
	}
	return t.Arrays.Get(uint32(node.Payload)), true
}
