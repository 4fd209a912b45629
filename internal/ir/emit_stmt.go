package ir

import (
	"flux/internal/ast"
)

func (em *Emitter) emitStmt(id ast.StmtID) {
	stmt := em.b.Stmts.Get(id)
	if stmt == nil {
		return
	}

	switch stmt.Kind {
	case ast.StmtLet:
		em.emitLetStmt(id)

	case ast.StmtConst:
		em.emitConstStmt(id)

	case ast.StmtReturn:
		data, _ := em.b.Stmts.Return(id)
		if data.Value.IsValid() {
			if val := em.emitExpr(data.Value); val.IsValid() {
				em.bu.Ret(val)
				return
			}
		}
		em.bu.RetVoid()

	case ast.StmtIf:
		em.emitIfStmt(id)

	case ast.StmtWhile:
		em.emitWhileStmt(id)

	case ast.StmtLoop:
		em.emitLoopStmt(id)

	case ast.StmtFor:
		em.emitForStmt(id)

	case ast.StmtBlock:
		data, _ := em.b.Stmts.Block(id)
		for _, inner := range data.Stmts {
			em.emitStmt(inner)
		}

	case ast.StmtExpr:
		data, _ := em.b.Stmts.Expr(id)
		em.emitExpr(data.Expr)

	case ast.StmtBreak:
		if n := len(em.loops); n > 0 {
			em.bu.Br(em.loops[n-1].breakBlock)
		}

	case ast.StmtContinue:
		if n := len(em.loops); n > 0 {
			em.bu.Br(em.loops[n-1].continueBlock)
		}
	}
	// Match statements wait on variant layouts.
}

func (em *Emitter) emitLetStmt(id ast.StmtID) {
	data, _ := em.b.Stmts.Let(id)
	varName := em.name(data.Name)

	varType := I64
	if data.Type.IsValid() {
		varType = mapType(em.b, data.Type)
	}

	addr := em.bu.Alloca(varName, varType)

	if data.Init.IsValid() {
		if initVal := em.emitExpr(data.Init); initVal.IsValid() {
			initVal = em.coerceInt(initVal, varType)
			em.bu.Store(initVal, addr)
		}
	}

	em.named[varName] = slot{addr: addr, elem: varType}
}

func (em *Emitter) emitConstStmt(id ast.StmtID) {
	data, _ := em.b.Stmts.Const(id)
	constName := em.name(data.Name)

	varType := I64
	if data.Type.IsValid() {
		varType = mapType(em.b, data.Type)
	}

	addr := em.bu.Alloca(constName, varType)
	if data.Value.IsValid() {
		if val := em.emitExpr(data.Value); val.IsValid() {
			val = em.coerceInt(val, varType)
			em.bu.Store(val, addr)
		}
	}
	em.named[constName] = slot{addr: addr, elem: varType}
}

// coerceInt adapts an integer value to the declared slot width with a
// sign-extend or truncate; other type pairs pass through unchanged.
func (em *Emitter) coerceInt(val Value, want Type) Value {
	valBits, valInt := IntBits(val.Type)
	wantBits, wantInt := IntBits(want)
	if !valInt || !wantInt || val.Type == want {
		return val
	}
	if wantBits < valBits {
		return em.bu.Trunc(val, want)
	}
	return em.bu.SExt(val, want)
}

func (em *Emitter) emitIfStmt(id ast.StmtID) {
	data, _ := em.b.Stmts.If(id)
	condVal := em.emitExpr(data.Cond)
	if !condVal.IsValid() {
		return
	}

	fn := em.bu.Func()
	thenBB := fn.NewBlock("then")
	var elseBB BlockID
	mergeBB := fn.NewBlock("ifcont")

	if data.Else.IsValid() {
		elseBB = fn.NewBlock("else")
		em.bu.CondBr(condVal, thenBB, elseBB)
	} else {
		em.bu.CondBr(condVal, thenBB, mergeBB)
	}

	em.bu.SetInsert(thenBB)
	em.emitStmt(data.Then)
	if !em.bu.Terminated() {
		em.bu.Br(mergeBB)
	}

	if data.Else.IsValid() {
		em.bu.SetInsert(elseBB)
		em.emitStmt(data.Else)
		if !em.bu.Terminated() {
			em.bu.Br(mergeBB)
		}
	}

	em.bu.SetInsert(mergeBB)
}

func (em *Emitter) emitWhileStmt(id ast.StmtID) {
	data, _ := em.b.Stmts.While(id)
	fn := em.bu.Func()

	condBB := fn.NewBlock("while.cond")
	bodyBB := fn.NewBlock("while.body")
	exitBB := fn.NewBlock("while.exit")

	em.bu.Br(condBB)

	em.bu.SetInsert(condBB)
	condVal := em.emitExpr(data.Cond)
	if condVal.IsValid() {
		em.bu.CondBr(condVal, bodyBB, exitBB)
	}

	em.bu.SetInsert(bodyBB)
	em.loops = append(em.loops, loopFrame{breakBlock: exitBB, continueBlock: condBB})
	em.emitStmt(data.Body)
	em.loops = em.loops[:len(em.loops)-1]
	if !em.bu.Terminated() {
		em.bu.Br(condBB)
	}

	em.bu.SetInsert(exitBB)
}

func (em *Emitter) emitLoopStmt(id ast.StmtID) {
	data, _ := em.b.Stmts.Loop(id)
	fn := em.bu.Func()

	bodyBB := fn.NewBlock("loop.body")
	exitBB := fn.NewBlock("loop.exit")

	em.bu.Br(bodyBB)
	em.bu.SetInsert(bodyBB)

	em.loops = append(em.loops, loopFrame{breakBlock: exitBB, continueBlock: bodyBB})
	em.emitStmt(data.Body)
	em.loops = em.loops[:len(em.loops)-1]

	if !em.bu.Terminated() {
		em.bu.Br(bodyBB)
	}

	em.bu.SetInsert(exitBB)
}

// emitForStmt lowers the placeholder shape: the condition block enters
// the body once and the body falls through to the exit. The iterator
// protocol needs runtime support before this can loop.
func (em *Emitter) emitForStmt(id ast.StmtID) {
	data, _ := em.b.Stmts.For(id)
	fn := em.bu.Func()

	condBB := fn.NewBlock("for.cond")
	bodyBB := fn.NewBlock("for.body")
	exitBB := fn.NewBlock("for.exit")

	em.bu.Br(condBB)
	em.bu.SetInsert(condBB)
	em.bu.Br(bodyBB)

	em.bu.SetInsert(bodyBB)
	varName := em.name(data.Var)
	varType := I64
	if data.VarType.IsValid() {
		varType = mapType(em.b, data.VarType)
	}
	addr := em.bu.Alloca(varName, varType)
	em.named[varName] = slot{addr: addr, elem: varType}

	em.loops = append(em.loops, loopFrame{breakBlock: exitBB, continueBlock: condBB})
	em.emitStmt(data.Body)
	em.loops = em.loops[:len(em.loops)-1]
	if !em.bu.Terminated() {
		em.bu.Br(exitBB)
	}

	em.bu.SetInsert(exitBB)
}
