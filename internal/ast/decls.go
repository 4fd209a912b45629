package ast

import (
	"flux/internal/source"
)

// Decls manages allocation of declarations.
type Decls struct {
	Arena       *Arena[Decl]
	Modules     *Arena[ModuleDeclData]
	Imports     *Arena[ImportDeclData]
	Funcs       *Arena[FuncDeclData]
	Structs     *Arena[StructDeclData]
	Classes     *Arena[ClassDeclData]
	Enums       *Arena[EnumDeclData]
	Traits      *Arena[TraitDeclData]
	Impls       *Arena[ImplDeclData]
	TypeAliases *Arena[TypeAliasDeclData]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Decls{
		Arena:       NewArena[Decl](capHint),
		Modules:     NewArena[ModuleDeclData](capHint),
		Imports:     NewArena[ImportDeclData](capHint),
		Funcs:       NewArena[FuncDeclData](capHint),
		Structs:     NewArena[StructDeclData](capHint),
		Classes:     NewArena[ClassDeclData](capHint),
		Enums:       NewArena[EnumDeclData](capHint),
		Traits:      NewArena[TraitDeclData](capHint),
		Impls:       NewArena[ImplDeclData](capHint),
		TypeAliases: NewArena[TypeAliasDeclData](capHint),
	}
}

func (d *Decls) new(kind DeclKind, span source.Span, vis Visibility, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{
		Kind:       kind,
		Span:       span,
		Visibility: vis,
		Payload:    payload,
	}))
}

// Get returns the declaration with the given ID.
func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

// NewModule creates a module declaration.
func (d *Decls) NewModule(span source.Span, path []source.StringID) DeclID {
	payload := d.Modules.Allocate(ModuleDeclData{
		Path: append([]source.StringID(nil), path...),
	})
	return d.new(DeclModule, span, VisPrivate, PayloadID(payload))
}

func (d *Decls) Module(id DeclID) (*ModuleDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclModule {
		return nil, false
	}
	return d.Modules.Get(uint32(decl.Payload)), true
}

// NewImport creates an import declaration.
func (d *Decls) NewImport(span source.Span, path []source.StringID, alias source.StringID) DeclID {
	payload := d.Imports.Allocate(ImportDeclData{
		Path:  append([]source.StringID(nil), path...),
		Alias: alias,
	})
	return d.new(DeclImport, span, VisPrivate, PayloadID(payload))
}

func (d *Decls) Import(id DeclID) (*ImportDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclImport {
		return nil, false
	}
	return d.Imports.Get(uint32(decl.Payload)), true
}

// NewFunc creates a function declaration.
func (d *Decls) NewFunc(span source.Span, vis Visibility, data FuncDeclData) DeclID {
	data.Generics = append([]GenericParam(nil), data.Generics...)
	data.Params = append([]FuncParam(nil), data.Params...)
	payload := d.Funcs.Allocate(data)
	return d.new(DeclFunc, span, vis, PayloadID(payload))
}

func (d *Decls) Func(id DeclID) (*FuncDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclFunc {
		return nil, false
	}
	return d.Funcs.Get(uint32(decl.Payload)), true
}

// NewStruct creates a struct declaration.
func (d *Decls) NewStruct(span source.Span, vis Visibility, data StructDeclData) DeclID {
	data.Generics = append([]GenericParam(nil), data.Generics...)
	data.Fields = append([]FieldDecl(nil), data.Fields...)
	payload := d.Structs.Allocate(data)
	return d.new(DeclStruct, span, vis, PayloadID(payload))
}

func (d *Decls) Struct(id DeclID) (*StructDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclStruct {
		return nil, false
	}
	return d.Structs.Get(uint32(decl.Payload)), true
}

// NewClass creates a class declaration.
func (d *Decls) NewClass(span source.Span, vis Visibility, data ClassDeclData) DeclID {
	data.Generics = append([]GenericParam(nil), data.Generics...)
	data.Fields = append([]FieldDecl(nil), data.Fields...)
	data.Methods = append([]DeclID(nil), data.Methods...)
	payload := d.Classes.Allocate(data)
	return d.new(DeclClass, span, vis, PayloadID(payload))
}

func (d *Decls) Class(id DeclID) (*ClassDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclClass {
		return nil, false
	}
	return d.Classes.Get(uint32(decl.Payload)), true
}

// NewEnum creates an enum declaration.
func (d *Decls) NewEnum(span source.Span, vis Visibility, data EnumDeclData) DeclID {
	data.Generics = append([]GenericParam(nil), data.Generics...)
	data.Variants = append([]EnumVariant(nil), data.Variants...)
	payload := d.Enums.Allocate(data)
	return d.new(DeclEnum, span, vis, PayloadID(payload))
}

func (d *Decls) Enum(id DeclID) (*EnumDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclEnum {
		return nil, false
	}
	return d.Enums.Get(uint32(decl.Payload)), true
}

// NewTrait creates a trait declaration.
func (d *Decls) NewTrait(span source.Span, vis Visibility, data TraitDeclData) DeclID {
	data.Generics = append([]GenericParam(nil), data.Generics...)
	data.SuperTraits = append([]source.StringID(nil), data.SuperTraits...)
	data.Methods = append([]DeclID(nil), data.Methods...)
	payload := d.Traits.Allocate(data)
	return d.new(DeclTrait, span, vis, PayloadID(payload))
}

func (d *Decls) Trait(id DeclID) (*TraitDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclTrait {
		return nil, false
	}
	return d.Traits.Get(uint32(decl.Payload)), true
}

// NewImpl creates an impl block declaration.
func (d *Decls) NewImpl(span source.Span, data ImplDeclData) DeclID {
	data.Generics = append([]GenericParam(nil), data.Generics...)
	data.Methods = append([]DeclID(nil), data.Methods...)
	payload := d.Impls.Allocate(data)
	return d.new(DeclImpl, span, VisPrivate, PayloadID(payload))
}

func (d *Decls) Impl(id DeclID) (*ImplDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclImpl {
		return nil, false
	}
	return d.Impls.Get(uint32(decl.Payload)), true
}

// NewTypeAlias creates a type alias declaration.
func (d *Decls) NewTypeAlias(span source.Span, vis Visibility, data TypeAliasDeclData) DeclID {
	data.Generics = append([]GenericParam(nil), data.Generics...)
	payload := d.TypeAliases.Allocate(data)
	return d.new(DeclTypeAlias, span, vis, PayloadID(payload))
}

func (d *Decls) TypeAlias(id DeclID) (*TypeAliasDeclData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclTypeAlias {
		return nil, false
	}
	return d.TypeAliases.Get(uint32(decl.Payload)), true
}

// Name returns the declared name for kinds that have one. Module,
// import, and impl declarations report false.
func (d *Decls) Name(id DeclID) (source.StringID, bool) {
	decl := d.Get(id)
	if decl == nil {
		return source.NoStringID, false
	}
	switch decl.Kind {
	case DeclFunc:
		return d.Funcs.Get(uint32(decl.Payload)).Name, true
	case DeclStruct:
		return d.Structs.Get(uint32(decl.Payload)).Name, true
	case DeclClass:
		return d.Classes.Get(uint32(decl.Payload)).Name, true
	case DeclEnum:
		return d.Enums.Get(uint32(decl.Payload)).Name, true
	case DeclTrait:
		return d.Traits.Get(uint32(decl.Payload)).Name, true
	case DeclTypeAlias:
		return d.TypeAliases.Get(uint32(decl.Payload)).Name, true
	}
	return source.NoStringID, false
}
