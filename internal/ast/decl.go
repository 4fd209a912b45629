package ast

import (
	"flux/internal/source"
)

// DeclKind enumerates the different kinds of declarations.
type DeclKind uint8

const (
	DeclModule DeclKind = iota
	DeclImport
	DeclFunc
	DeclStruct
	DeclClass
	DeclEnum
	DeclTrait
	DeclImpl
	DeclTypeAlias
)

var declKindNames = [...]string{
	DeclModule:    "Module",
	DeclImport:    "Import",
	DeclFunc:      "Func",
	DeclStruct:    "Struct",
	DeclClass:     "Class",
	DeclEnum:      "Enum",
	DeclTrait:     "Trait",
	DeclImpl:      "Impl",
	DeclTypeAlias: "TypeAlias",
}

func (k DeclKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return "Unknown"
}

// Visibility of a declaration or field.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
)

func (v Visibility) String() string {
	if v == VisPublic {
		return "public"
	}
	return "private"
}

// Decl is the uniform declaration header.
type Decl struct {
	Kind       DeclKind
	Span       source.Span
	Visibility Visibility
	Payload    PayloadID
}

type ModuleDeclData struct {
	Path []source.StringID
}

// ImportDeclData: Alias is source.NoStringID when the import is not
// renamed.
type ImportDeclData struct {
	Path  []source.StringID
	Alias source.StringID
}

// GenericParam is a declared type parameter with optional trait bounds
// and lifetime.
type GenericParam struct {
	Name     source.StringID
	Bounds   []source.StringID
	Lifetime source.StringID
	Span     source.Span
}

// FuncParam is one declared function parameter. The self parameter is
// flagged rather than given a type path of its own.
type FuncParam struct {
	Name     source.StringID
	Type     TypeID
	Mutable  bool
	IsSelf   bool
	IsRef    bool
	IsMutRef bool
	Span     source.Span
}

// FuncDeclData: Return is NoTypeID for Void functions, Body is NoStmtID
// for trait method requirements.
type FuncDeclData struct {
	Name     source.StringID
	Generics []GenericParam
	Params   []FuncParam
	Return   TypeID
	Body     StmtID
	IsAsync  bool
	IsUnsafe bool
}

type FieldDecl struct {
	Name       source.StringID
	Type       TypeID
	Visibility Visibility
	Span       source.Span
}

type StructDeclData struct {
	Name     source.StringID
	Generics []GenericParam
	Fields   []FieldDecl
}

type ClassDeclData struct {
	Name     source.StringID
	Generics []GenericParam
	Fields   []FieldDecl
	Methods  []DeclID
}

// VariantKind distinguishes the three enum variant payload shapes.
type VariantKind uint8

const (
	VariantUnit VariantKind = iota
	VariantTuple
	VariantStruct
)

// EnumVariant: TupleFields is set for tuple variants, StructFields for
// struct variants, neither for unit variants.
type EnumVariant struct {
	Name         source.StringID
	Kind         VariantKind
	TupleFields  []TypeID
	StructFields []FieldDecl
	Span         source.Span
}

type EnumDeclData struct {
	Name     source.StringID
	Generics []GenericParam
	Variants []EnumVariant
}

type TraitDeclData struct {
	Name        source.StringID
	Generics    []GenericParam
	SuperTraits []source.StringID
	Methods     []DeclID
}

// ImplDeclData: Trait is source.NoStringID for inherent impl blocks.
type ImplDeclData struct {
	Target   TypeID
	Trait    source.StringID
	Generics []GenericParam
	Methods  []DeclID
}

type TypeAliasDeclData struct {
	Name     source.StringID
	Generics []GenericParam
	Target   TypeID
}
