package ir

// Builder appends instructions to a function at a movable insertion
// point, handing out uniquely named result values.
type Builder struct {
	fn  *Func
	cur BlockID
}

// NewBuilder positions a builder on the function with no insertion
// point; call SetInsert before emitting.
func NewBuilder(fn *Func) *Builder {
	return &Builder{fn: fn, cur: NoBlockID}
}

// Func returns the function under construction.
func (bu *Builder) Func() *Func { return bu.fn }

// SetInsert moves the insertion point to the end of a block.
func (bu *Builder) SetInsert(id BlockID) { bu.cur = id }

// InsertBlock returns the current insertion block ID.
func (bu *Builder) InsertBlock() BlockID { return bu.cur }

// Terminated reports whether the current block already ends in a
// terminator; emitting past one would produce unreachable code.
func (bu *Builder) Terminated() bool {
	return bu.fn.Block(bu.cur).Terminated()
}

func (bu *Builder) append(in Instr) {
	blk := bu.fn.Block(bu.cur)
	if blk == nil || blk.Terminated() {
		return
	}
	blk.Instrs = append(blk.Instrs, in)
}

func (bu *Builder) result(t Type, name string) Value {
	return Value{Type: t, Ref: "%" + bu.fn.unique(name)}
}

// Alloca reserves a slot in the entry block so every local lives for
// the whole function regardless of where its binding appears.
func (bu *Builder) Alloca(name string, elem Type) Value {
	res := bu.result(Ptr, name)
	in := Instr{Kind: InstrAlloca, Result: res, Alloca: AllocaInstr{Elem: elem}}
	entry := bu.fn.Block(bu.fn.Entry)
	if entry == nil {
		return NoValue
	}
	// Slots group at the top of the entry block, ahead of any code.
	at := 0
	for at < len(entry.Instrs) && entry.Instrs[at].Kind == InstrAlloca {
		at++
	}
	entry.Instrs = append(entry.Instrs, Instr{})
	copy(entry.Instrs[at+1:], entry.Instrs[at:])
	entry.Instrs[at] = in
	return res
}

// Load reads the element type out of a slot.
func (bu *Builder) Load(elem Type, addr Value, name string) Value {
	res := bu.result(elem, name)
	bu.append(Instr{Kind: InstrLoad, Result: res, Load: LoadInstr{Elem: elem, Addr: addr}})
	return res
}

// Store writes a value into a slot.
func (bu *Builder) Store(val, addr Value) {
	bu.append(Instr{Kind: InstrStore, Store: StoreInstr{Val: val, Addr: addr}})
}

// Binary emits an operation; comparison results are i1, everything
// else keeps the operand type.
func (bu *Builder) Binary(op string, lhs, rhs Value, name string) Value {
	t := lhs.Type
	if len(op) > 4 && (op[:4] == "icmp" || op[:4] == "fcmp") {
		t = I1
	}
	res := bu.result(t, name)
	bu.append(Instr{Kind: InstrBinary, Result: res, Binary: BinaryInstr{Op: op, LHS: lhs, RHS: rhs}})
	return res
}

// SExt sign-extends an integer value to a wider type.
func (bu *Builder) SExt(val Value, to Type) Value {
	res := bu.result(to, "sext")
	bu.append(Instr{Kind: InstrCast, Result: res, Cast: CastInstr{Op: "sext", Val: val, To: to}})
	return res
}

// Trunc truncates an integer value to a narrower type.
func (bu *Builder) Trunc(val Value, to Type) Value {
	res := bu.result(to, "trunc")
	bu.append(Instr{Kind: InstrCast, Result: res, Cast: CastInstr{Op: "trunc", Val: val, To: to}})
	return res
}

// Call invokes a function by symbol name; void calls produce NoValue.
func (bu *Builder) Call(callee string, ret Type, args []Value) Value {
	in := Instr{Kind: InstrCall, Call: CallInstr{Callee: callee, Ret: ret, Args: args}}
	if ret != Void {
		in.Result = bu.result(ret, "calltmp")
	}
	bu.append(in)
	return in.Result
}

// Phi merges incoming values at a join point.
func (bu *Builder) Phi(t Type, name string, incoming []PhiEdge) Value {
	res := bu.result(t, name)
	bu.append(Instr{Kind: InstrPhi, Result: res, Phi: PhiInstr{Incoming: incoming}})
	return res
}

func (bu *Builder) terminate(term Terminator) {
	blk := bu.fn.Block(bu.cur)
	if blk == nil || blk.Terminated() {
		return
	}
	blk.Term = term
}

// Br ends the current block with an unconditional branch.
func (bu *Builder) Br(target BlockID) {
	bu.terminate(Terminator{Kind: TermBr, Br: BrTerm{Target: target}})
}

// CondBr ends the current block with a two-way branch.
func (bu *Builder) CondBr(cond Value, then, els BlockID) {
	bu.terminate(Terminator{Kind: TermCondBr, CondBr: CondBrTerm{Cond: cond, Then: then, Else: els}})
}

// Ret ends the current block returning a value.
func (bu *Builder) Ret(v Value) {
	bu.terminate(Terminator{Kind: TermRet, Ret: RetTerm{HasValue: true, Value: v}})
}

// RetVoid ends the current block returning nothing.
func (bu *Builder) RetVoid() {
	bu.terminate(Terminator{Kind: TermRet})
}
