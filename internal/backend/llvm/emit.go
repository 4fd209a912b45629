package llvm

import (
	"fmt"
	"strings"

	"flux/internal/ir"
)

// Emitter renders an IR module as textual LLVM assembly. Everything the
// module carries is already shaped for printing, so emission is one
// linear pass with no name allocation of its own.
type Emitter struct {
	mod *ir.Module
	buf strings.Builder
}

// EmitModule renders a module to LLVM assembly text.
func EmitModule(mod *ir.Module) string {
	if mod == nil {
		return ""
	}
	e := &Emitter{mod: mod}
	e.emitPreamble()
	e.emitTypeDefs()
	e.emitStringConsts()
	e.emitFuncs()
	return e.buf.String()
}

func (e *Emitter) emitPreamble() {
	fmt.Fprintf(&e.buf, "; ModuleID = '%s'\n", e.mod.Name)
	e.buf.WriteString("target triple = \"x86_64-linux-gnu\"\n\n")
}

func (e *Emitter) emitTypeDefs() {
	for _, td := range e.mod.Types {
		fields := make([]string, len(td.Fields))
		for i, f := range td.Fields {
			fields[i] = string(f)
		}
		fmt.Fprintf(&e.buf, "%%%s = type { %s }\n", td.Name, strings.Join(fields, ", "))
	}
	if len(e.mod.Types) > 0 {
		e.buf.WriteString("\n")
	}
}

func (e *Emitter) emitStringConsts() {
	for _, sc := range e.mod.Strings {
		fmt.Fprintf(&e.buf, "%s = private unnamed_addr constant [%d x i8] c\"%s\"\n",
			sc.Name, len(sc.Data), escapeBytes(sc.Data))
	}
	if len(e.mod.Strings) > 0 {
		e.buf.WriteString("\n")
	}
}

// escapeBytes renders constant data with the \XX hex escapes LLVM
// assembly expects for anything outside plain printable ASCII.
func escapeBytes(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		if b >= 0x20 && b <= 0x7e && b != '"' && b != '\\' {
			sb.WriteByte(b)
			continue
		}
		fmt.Fprintf(&sb, "\\%02X", b)
	}
	return sb.String()
}

func (e *Emitter) emitFuncs() {
	for i, fn := range e.mod.Funcs {
		if i > 0 {
			e.buf.WriteString("\n")
		}
		e.emitFunc(fn)
	}
}

func (e *Emitter) emitFunc(fn *ir.Func) {
	if fn.IsDeclaration() {
		fmt.Fprintf(&e.buf, "declare %s @%s(%s)\n", fn.Ret, fn.Name, fn.Signature())
		return
	}

	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s %%%s", p.Type, p.Name)
	}
	linkage := ""
	if fn.Linkage == ir.LinkageInternal {
		linkage = "internal "
	}
	fmt.Fprintf(&e.buf, "define %s%s @%s(%s) {\n",
		linkage, fn.Ret, fn.Name, strings.Join(params, ", "))

	for i, blk := range fn.Blocks {
		if i > 0 {
			e.buf.WriteString("\n")
		}
		e.emitBlock(fn, blk)
	}
	e.buf.WriteString("}\n")
}

func (e *Emitter) emitBlock(fn *ir.Func, blk *ir.Block) {
	fmt.Fprintf(&e.buf, "%s:\n", blk.Name)
	for i := range blk.Instrs {
		e.emitInstr(fn, &blk.Instrs[i])
	}
	e.emitTerminator(fn, blk)
}

func (e *Emitter) emitInstr(fn *ir.Func, in *ir.Instr) {
	switch in.Kind {
	case ir.InstrAlloca:
		fmt.Fprintf(&e.buf, "  %s = alloca %s\n", in.Result.Ref, in.Alloca.Elem)
	case ir.InstrLoad:
		fmt.Fprintf(&e.buf, "  %s = load %s, ptr %s\n",
			in.Result.Ref, in.Load.Elem, in.Load.Addr.Ref)
	case ir.InstrStore:
		fmt.Fprintf(&e.buf, "  store %s %s, ptr %s\n",
			in.Store.Val.Type, in.Store.Val.Ref, in.Store.Addr.Ref)
	case ir.InstrBinary:
		b := in.Binary
		fmt.Fprintf(&e.buf, "  %s = %s %s %s, %s\n",
			in.Result.Ref, b.Op, b.LHS.Type, b.LHS.Ref, b.RHS.Ref)
	case ir.InstrCast:
		c := in.Cast
		fmt.Fprintf(&e.buf, "  %s = %s %s %s to %s\n",
			in.Result.Ref, c.Op, c.Val.Type, c.Val.Ref, c.To)
	case ir.InstrCall:
		c := in.Call
		args := make([]string, len(c.Args))
		for i, a := range c.Args {
			args[i] = fmt.Sprintf("%s %s", a.Type, a.Ref)
		}
		if c.Ret == ir.Void {
			fmt.Fprintf(&e.buf, "  call void @%s(%s)\n", c.Callee, strings.Join(args, ", "))
		} else {
			fmt.Fprintf(&e.buf, "  %s = call %s @%s(%s)\n",
				in.Result.Ref, c.Ret, c.Callee, strings.Join(args, ", "))
		}
	case ir.InstrPhi:
		edges := make([]string, len(in.Phi.Incoming))
		for i, edge := range in.Phi.Incoming {
			edges[i] = fmt.Sprintf("[ %s, %%%s ]", edge.Value.Ref, blockLabel(fn, edge.Block))
		}
		fmt.Fprintf(&e.buf, "  %s = phi %s %s\n",
			in.Result.Ref, in.Result.Type, strings.Join(edges, ", "))
	}
}

func (e *Emitter) emitTerminator(fn *ir.Func, blk *ir.Block) {
	switch blk.Term.Kind {
	case ir.TermRet:
		ret := blk.Term.Ret
		if ret.HasValue {
			fmt.Fprintf(&e.buf, "  ret %s %s\n", ret.Value.Type, ret.Value.Ref)
		} else {
			e.buf.WriteString("  ret void\n")
		}
	case ir.TermBr:
		fmt.Fprintf(&e.buf, "  br label %%%s\n", blockLabel(fn, blk.Term.Br.Target))
	case ir.TermCondBr:
		cb := blk.Term.CondBr
		fmt.Fprintf(&e.buf, "  br i1 %s, label %%%s, label %%%s\n",
			cb.Cond.Ref, blockLabel(fn, cb.Then), blockLabel(fn, cb.Else))
	case ir.TermNone:
		e.buf.WriteString("  unreachable\n")
	}
}

func blockLabel(fn *ir.Func, id ir.BlockID) string {
	if blk := fn.Block(id); blk != nil {
		return blk.Name
	}
	return "?"
}
