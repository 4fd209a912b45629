package ir

import "fmt"

// VerifyFunc checks the structural rules a backend relies on: an entry
// block, exactly one terminator per block, branch targets inside the
// function, non-empty operands, matching operand types on binary
// instructions, integer casts, and a return that carries a value exactly
// when the declared result is not void. The returned value's type is not
// compared with the declared result. It returns the first violation found.
func VerifyFunc(f *Func) error {
	if f == nil {
		return fmt.Errorf("nil function")
	}
	if f.IsDeclaration() {
		return nil
	}
	if f.Block(f.Entry) == nil {
		return fmt.Errorf("function %q has no entry block", f.Name)
	}

	for _, blk := range f.Blocks {
		if err := verifyBlock(f, blk); err != nil {
			return err
		}
	}
	return nil
}

func verifyBlock(f *Func, blk *Block) error {
	for i := range blk.Instrs {
		if err := verifyInstr(&blk.Instrs[i]); err != nil {
			return fmt.Errorf("block %q: %w", blk.Name, err)
		}
	}

	switch blk.Term.Kind {
	case TermNone:
		return fmt.Errorf("block %q is not terminated", blk.Name)
	case TermRet:
		ret := blk.Term.Ret
		if ret.HasValue {
			if f.Ret == Void {
				return fmt.Errorf("block %q returns a value from a void function", blk.Name)
			}
			if !ret.Value.IsValid() {
				return fmt.Errorf("block %q returns an empty value", blk.Name)
			}
		} else if f.Ret != Void {
			return fmt.Errorf("block %q returns void from a %s function", blk.Name, f.Ret)
		}
	case TermBr:
		if f.Block(blk.Term.Br.Target) == nil {
			return fmt.Errorf("block %q branches to a missing block", blk.Name)
		}
	case TermCondBr:
		cb := blk.Term.CondBr
		if !cb.Cond.IsValid() {
			return fmt.Errorf("block %q has an empty branch condition", blk.Name)
		}
		if f.Block(cb.Then) == nil || f.Block(cb.Else) == nil {
			return fmt.Errorf("block %q branches to a missing block", blk.Name)
		}
	}
	return nil
}

func verifyInstr(in *Instr) error {
	switch in.Kind {
	case InstrAlloca:
		if in.Alloca.Elem == "" || in.Alloca.Elem == Void {
			return fmt.Errorf("alloca %s of non-storable type", in.Result.Ref)
		}
	case InstrLoad:
		if !in.Load.Addr.IsValid() {
			return fmt.Errorf("load %s from an empty address", in.Result.Ref)
		}
	case InstrStore:
		if !in.Store.Val.IsValid() || !in.Store.Addr.IsValid() {
			return fmt.Errorf("store with an empty operand")
		}
	case InstrBinary:
		b := in.Binary
		if b.Op == "" || !b.LHS.IsValid() || !b.RHS.IsValid() {
			return fmt.Errorf("binary %s with an empty operand", in.Result.Ref)
		}
		if b.LHS.Type != b.RHS.Type {
			return fmt.Errorf("binary %s mixes %s and %s", in.Result.Ref, b.LHS.Type, b.RHS.Type)
		}
	case InstrCast:
		if !in.Cast.Val.IsValid() || !IsInt(in.Cast.To) || !IsInt(in.Cast.Val.Type) {
			return fmt.Errorf("cast %s with non-integer operand", in.Result.Ref)
		}
	case InstrCall:
		if in.Call.Callee == "" {
			return fmt.Errorf("call with an empty callee")
		}
		for _, arg := range in.Call.Args {
			if !arg.IsValid() {
				return fmt.Errorf("call to %s with an empty argument", in.Call.Callee)
			}
		}
	case InstrPhi:
		if len(in.Phi.Incoming) == 0 {
			return fmt.Errorf("phi %s with no incoming edges", in.Result.Ref)
		}
		for _, edge := range in.Phi.Incoming {
			if !edge.Value.IsValid() || !edge.Block.IsValid() {
				return fmt.Errorf("phi %s with an empty edge", in.Result.Ref)
			}
		}
	}
	return nil
}
