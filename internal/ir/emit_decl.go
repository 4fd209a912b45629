package ir

import (
	"flux/internal/ast"
	"flux/internal/diag"
)

func (em *Emitter) emitDecl(id ast.DeclID) {
	decl := em.b.Decls.Get(id)
	if decl == nil {
		return
	}

	switch decl.Kind {
	case ast.DeclFunc:
		em.emitFuncDecl(id)
	case ast.DeclStruct:
		em.emitStructDecl(id)
	}
	// Enums lower to i32 tags once variant payloads gain layouts;
	// traits, impls, imports, and modules are metadata only here.
}

func (em *Emitter) emitFuncDecl(id ast.DeclID) {
	data, ok := em.b.Decls.Func(id)
	if !ok {
		return
	}
	decl := em.b.Decls.Get(id)
	fnName := em.name(data.Name)

	retType := Void
	if data.Return.IsValid() {
		retType = mapType(em.b, data.Return)
	}

	params := make([]Param, 0, len(data.Params))
	for _, p := range data.Params {
		params = append(params, Param{
			Name: em.name(p.Name),
			Type: mapType(em.b, p.Type),
		})
	}

	linkage := LinkageInternal
	if decl.Visibility == ast.VisPublic || fnName == "main" {
		linkage = LinkageExternal
	}

	fn := NewFunc(fnName, linkage, retType, params)
	em.mod.AddFunc(fn)

	if !data.Body.IsValid() {
		return
	}

	em.bu = NewBuilder(fn)
	entry := fn.NewBlock("entry")
	em.bu.SetInsert(entry)

	saved := em.named
	em.named = make(map[string]slot)

	for i, p := range fn.Params {
		addr := em.bu.Alloca(p.Name, p.Type)
		em.bu.Store(fn.ParamValue(i), addr)
		em.named[p.Name] = slot{addr: addr, elem: p.Type}
	}

	if block, ok := em.b.Stmts.Block(data.Body); ok {
		for _, stmt := range block.Stmts {
			em.emitStmt(stmt)
		}
	} else {
		em.emitStmt(data.Body)
	}

	if !em.bu.Terminated() {
		if retType == Void {
			em.bu.RetVoid()
		} else {
			em.bu.Ret(ZeroValue(retType))
		}
	}

	if err := VerifyFunc(fn); err != nil {
		em.errorAt(diag.GenInvalidIR, decl.Span,
			"generated invalid IR for function '"+fnName+"'")
		em.mod.RemoveFunc(fnName)
	}

	em.named = saved
	em.bu = nil
}

func (em *Emitter) emitStructDecl(id ast.DeclID) {
	data, ok := em.b.Decls.Struct(id)
	if !ok {
		return
	}
	fields := make([]Type, 0, len(data.Fields))
	for _, field := range data.Fields {
		if field.Type.IsValid() {
			fields = append(fields, mapType(em.b, field.Type))
		}
	}
	em.mod.Types = append(em.mod.Types, TypeDef{
		Name:   em.name(data.Name),
		Fields: fields,
	})
}
