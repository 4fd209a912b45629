package ir

import (
	"flux/internal/ast"
	"flux/internal/diag"
)

func (em *Emitter) emitExpr(id ast.ExprID) Value {
	expr := em.b.Exprs.Get(id)
	if expr == nil {
		return NoValue
	}

	switch expr.Kind {
	case ast.ExprIntLit:
		data, _ := em.b.Exprs.Literal(id)
		return ConstInt(I64, data.IntVal)

	case ast.ExprFloatLit:
		data, _ := em.b.Exprs.Literal(id)
		return ConstFloat(data.FloatVal)

	case ast.ExprStringLit:
		data, _ := em.b.Exprs.Literal(id)
		sc := em.mod.InternString(em.name(data.StringVal))
		return Value{Type: Ptr, Ref: sc.Name}

	case ast.ExprCharLit:
		data, _ := em.b.Exprs.Literal(id)
		return ConstInt(I32, int64(data.CharVal))

	case ast.ExprBoolLit:
		data, _ := em.b.Exprs.Literal(id)
		return ConstBool(data.BoolVal)

	case ast.ExprIdent:
		return em.emitIdentExpr(id)

	case ast.ExprBinary:
		return em.emitBinaryExpr(id)

	case ast.ExprUnary:
		return em.emitUnaryExpr(id)

	case ast.ExprCall:
		return em.emitCallExpr(id)

	case ast.ExprIf:
		return em.emitIfExpr(id)

	case ast.ExprBlock:
		data, _ := em.b.Exprs.Block(id)
		for _, stmt := range data.Stmts {
			em.emitStmt(stmt)
		}
		if data.Tail.IsValid() {
			return em.emitExpr(data.Tail)
		}
		return NoValue

	case ast.ExprAssign:
		return em.emitAssignExpr(id)
	}
	// Method calls, member access, indexing, casts, match, closures,
	// and aggregate literals need layout and runtime support.
	return NoValue
}

func (em *Emitter) emitIdentExpr(id ast.ExprID) Value {
	data, _ := em.b.Exprs.Ident(id)
	name := em.name(data.Name)

	if sl, ok := em.named[name]; ok {
		return em.bu.Load(sl.elem, sl.addr, name)
	}
	if em.mod.Func(name) != nil {
		return Value{Type: Ptr, Ref: "@" + name}
	}
	em.errorAt(diag.GenUnknownVariable, em.b.Exprs.Get(id).Span,
		"unknown variable '"+name+"'")
	return NoValue
}

// binOps pairs each operator with its integer and float mnemonics and
// the result name. Logical and/or reuse the bitwise forms on i1.
var binOps = map[ast.BinaryOp]struct {
	intOp   string
	floatOp string
	name    string
}{
	ast.BinAdd:          {"add", "fadd", "addtmp"},
	ast.BinSub:          {"sub", "fsub", "subtmp"},
	ast.BinMul:          {"mul", "fmul", "multmp"},
	ast.BinDiv:          {"sdiv", "fdiv", "divtmp"},
	ast.BinMod:          {"srem", "frem", "modtmp"},
	ast.BinEqual:        {"icmp eq", "fcmp oeq", "eqtmp"},
	ast.BinNotEqual:     {"icmp ne", "fcmp one", "netmp"},
	ast.BinLess:         {"icmp slt", "fcmp olt", "lttmp"},
	ast.BinLessEqual:    {"icmp sle", "fcmp ole", "letmp"},
	ast.BinGreater:      {"icmp sgt", "fcmp ogt", "gttmp"},
	ast.BinGreaterEqual: {"icmp sge", "fcmp oge", "getmp"},
	ast.BinAnd:          {"and", "and", "andtmp"},
	ast.BinOr:           {"or", "or", "ortmp"},
	ast.BinBitAnd:       {"and", "and", "bandtmp"},
	ast.BinBitOr:        {"or", "or", "bortmp"},
	ast.BinBitXor:       {"xor", "xor", "bxortmp"},
	ast.BinShiftLeft:    {"shl", "shl", "shltmp"},
	ast.BinShiftRight:   {"ashr", "ashr", "ashrtmp"},
}

func (em *Emitter) emitBinaryExpr(id ast.ExprID) Value {
	data, _ := em.b.Exprs.Binary(id)
	lhs := em.emitExpr(data.LHS)
	rhs := em.emitExpr(data.RHS)
	if !lhs.IsValid() || !rhs.IsValid() {
		return NoValue
	}

	// Mixed integer widths widen the narrower operand.
	lhsBits, lhsInt := IntBits(lhs.Type)
	rhsBits, rhsInt := IntBits(rhs.Type)
	if lhsInt && rhsInt && lhsBits != rhsBits {
		if lhsBits < rhsBits {
			lhs = em.bu.SExt(lhs, rhs.Type)
		} else {
			rhs = em.bu.SExt(rhs, lhs.Type)
		}
	}

	op, ok := binOps[data.Op]
	if !ok {
		return NoValue
	}
	mnemonic := op.intOp
	if IsFloat(lhs.Type) {
		mnemonic = op.floatOp
	}
	return em.bu.Binary(mnemonic, lhs, rhs, op.name)
}

func (em *Emitter) emitUnaryExpr(id ast.ExprID) Value {
	data, _ := em.b.Exprs.Unary(id)
	val := em.emitExpr(data.Operand)
	if !val.IsValid() {
		return NoValue
	}

	switch data.Op {
	case ast.UnaryNegate:
		if IsFloat(val.Type) {
			return em.bu.Binary("fsub", ZeroValue(val.Type), val, "negtmp")
		}
		return em.bu.Binary("sub", ConstInt(val.Type, 0), val, "negtmp")
	case ast.UnaryNot:
		return em.bu.Binary("xor", val, allOnes(val.Type), "nottmp")
	case ast.UnaryBitNot:
		return em.bu.Binary("xor", val, allOnes(val.Type), "bnotmp")
	}
	return NoValue
}

func allOnes(t Type) Value {
	if t == I1 {
		return ConstBool(true)
	}
	return ConstInt(t, -1)
}

func (em *Emitter) emitCallExpr(id ast.ExprID) Value {
	data, _ := em.b.Exprs.Call(id)
	span := em.b.Exprs.Get(id).Span

	calleeName := em.calleeName(data.Callee)
	if calleeName == "" {
		return NoValue
	}
	fn := em.mod.Func(calleeName)
	if fn == nil {
		em.errorAt(diag.GenUnknownFunction, span,
			"unknown function '"+calleeName+"'")
		return NoValue
	}

	args := make([]Value, 0, len(data.Args))
	for _, arg := range data.Args {
		val := em.emitExpr(arg)
		if !val.IsValid() {
			return NoValue
		}
		args = append(args, val)
	}
	return em.bu.Call(calleeName, fn.Ret, args)
}

func (em *Emitter) calleeName(id ast.ExprID) string {
	callee := em.b.Exprs.Get(id)
	if callee == nil {
		return ""
	}
	switch callee.Kind {
	case ast.ExprIdent:
		data, _ := em.b.Exprs.Ident(id)
		return em.name(data.Name)
	case ast.ExprPath:
		data, _ := em.b.Exprs.Path(id)
		joined := ""
		for i, seg := range data.Segments {
			if i > 0 {
				joined += "::"
			}
			joined += em.name(seg)
		}
		return joined
	}
	return ""
}

func (em *Emitter) emitIfExpr(id ast.ExprID) Value {
	data, _ := em.b.Exprs.If(id)
	condVal := em.emitExpr(data.Cond)
	if !condVal.IsValid() {
		return NoValue
	}

	fn := em.bu.Func()
	thenBB := fn.NewBlock("then")
	elseBB := fn.NewBlock("else")
	mergeBB := fn.NewBlock("ifcont")
	em.bu.CondBr(condVal, thenBB, elseBB)

	em.bu.SetInsert(thenBB)
	thenVal := em.emitExpr(data.Then)
	// The arm may have opened further blocks; the phi edge comes from
	// wherever emission finished.
	thenPred := em.bu.InsertBlock()
	if !em.bu.Terminated() {
		em.bu.Br(mergeBB)
	}

	em.bu.SetInsert(elseBB)
	var elseVal Value
	if data.Else.IsValid() {
		elseVal = em.emitExpr(data.Else)
	}
	elsePred := em.bu.InsertBlock()
	if !em.bu.Terminated() {
		em.bu.Br(mergeBB)
	}

	em.bu.SetInsert(mergeBB)
	if thenVal.IsValid() && elseVal.IsValid() && thenVal.Type == elseVal.Type {
		return em.bu.Phi(thenVal.Type, "iftmp", []PhiEdge{
			{Value: thenVal, Block: thenPred},
			{Value: elseVal, Block: elsePred},
		})
	}
	return thenVal
}

func (em *Emitter) emitAssignExpr(id ast.ExprID) Value {
	data, _ := em.b.Exprs.Assign(id)
	val := em.emitExpr(data.Value)
	if !val.IsValid() {
		return NoValue
	}

	target := em.b.Exprs.Get(data.Target)
	if target == nil || target.Kind != ast.ExprIdent {
		em.errorAt(diag.GenBadAssignTarget, em.b.Exprs.Get(id).Span,
			"invalid assignment target")
		return NoValue
	}
	identData, _ := em.b.Exprs.Ident(data.Target)
	name := em.name(identData.Name)
	sl, ok := em.named[name]
	if !ok {
		em.errorAt(diag.GenUnknownVariable, target.Span,
			"unknown variable '"+name+"'")
		return NoValue
	}
	em.bu.Store(val, sl.addr)
	return val
}
