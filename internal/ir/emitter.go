package ir

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
)

// EmitOptions configures lowering.
type EmitOptions struct {
	ModuleName string
	Reporter   diag.Reporter
}

// slot is one named local: the pointer produced by its alloca plus the
// element type loads need.
type slot struct {
	addr Value
	elem Type
}

// loopFrame records where break and continue branch inside the
// innermost loop.
type loopFrame struct {
	breakBlock    BlockID
	continueBlock BlockID
}

// Emitter lowers a resolved, checked file to an IR module. Functions
// are emitted in declaration order; calls bind to functions the module
// already contains.
type Emitter struct {
	b        *ast.Builder
	mod      *Module
	reporter diag.Reporter

	bu      *Builder
	named   map[string]slot
	loops   []loopFrame
	retType Type
}

// NewEmitter wires an emitter to the AST it will lower.
func NewEmitter(b *ast.Builder, opts EmitOptions) *Emitter {
	name := opts.ModuleName
	if name == "" {
		name = "module"
	}
	return &Emitter{
		b:        b,
		mod:      NewModule(name),
		reporter: opts.Reporter,
		named:    make(map[string]slot),
	}
}

// Module returns the module built so far.
func (em *Emitter) Module() *Module { return em.mod }

// EmitFile lowers every declaration of one file.
func (em *Emitter) EmitFile(fileID ast.FileID) *Module {
	file := em.b.Files.Get(fileID)
	if file == nil {
		return em.mod
	}
	for _, decl := range file.Decls {
		em.emitDecl(decl)
	}
	return em.mod
}

func (em *Emitter) name(id source.StringID) string {
	if id == source.NoStringID {
		return ""
	}
	return em.b.Interner.MustLookup(id)
}

func (em *Emitter) errorAt(code diag.Code, span source.Span, msg string) {
	diag.ReportError(em.reporter, code, span, msg).Emit()
}
