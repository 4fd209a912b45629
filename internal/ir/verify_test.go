package ir

import (
	"strings"
	"testing"
)

func buildFunc(ret Type) (*Func, *Builder) {
	fn := NewFunc("f", LinkageInternal, ret, nil)
	bu := NewBuilder(fn)
	bu.SetInsert(fn.NewBlock("entry"))
	return fn, bu
}

func TestVerifyAcceptsDeclaration(t *testing.T) {
	fn := NewFunc("extern", LinkageExternal, Void, nil)
	if err := VerifyFunc(fn); err != nil {
		t.Errorf("declaration should verify: %v", err)
	}
}

func TestVerifyRejectsUnterminatedBlock(t *testing.T) {
	fn, _ := buildFunc(Void)
	err := VerifyFunc(fn)
	if err == nil || !strings.Contains(err.Error(), "not terminated") {
		t.Errorf("unterminated block not caught: %v", err)
	}
}

func TestVerifyRejectsValueReturnFromVoid(t *testing.T) {
	fn, bu := buildFunc(Void)
	bu.Ret(ConstInt(I64, 1))
	err := VerifyFunc(fn)
	if err == nil || !strings.Contains(err.Error(), "void") {
		t.Errorf("value return from void not caught: %v", err)
	}
}

func TestVerifyRejectsVoidReturnFromTyped(t *testing.T) {
	fn, bu := buildFunc(I64)
	bu.RetVoid()
	err := VerifyFunc(fn)
	if err == nil || !strings.Contains(err.Error(), "returns void") {
		t.Errorf("void return from i64 function not caught: %v", err)
	}
}

func TestVerifyRejectsBranchToMissingBlock(t *testing.T) {
	fn, bu := buildFunc(Void)
	bu.Br(BlockID(99))
	err := VerifyFunc(fn)
	if err == nil || !strings.Contains(err.Error(), "missing block") {
		t.Errorf("dangling branch not caught: %v", err)
	}
}

func TestVerifyRejectsMixedOperandTypes(t *testing.T) {
	fn, bu := buildFunc(Void)
	bu.Binary("add", ConstInt(I32, 1), ConstInt(I64, 2), "addtmp")
	bu.RetVoid()
	err := VerifyFunc(fn)
	if err == nil || !strings.Contains(err.Error(), "mixes") {
		t.Errorf("mixed operand widths not caught: %v", err)
	}
}

func TestVerifyAcceptsStraightLineFunction(t *testing.T) {
	fn, bu := buildFunc(I64)
	addr := bu.Alloca("x", I64)
	bu.Store(ConstInt(I64, 7), addr)
	val := bu.Load(I64, addr, "x")
	bu.Ret(val)
	if err := VerifyFunc(fn); err != nil {
		t.Errorf("valid function rejected: %v", err)
	}
}

func TestBuilderDropsCodeAfterTerminator(t *testing.T) {
	fn, bu := buildFunc(Void)
	bu.RetVoid()
	bu.Binary("add", ConstInt(I64, 1), ConstInt(I64, 2), "addtmp")
	entry := fn.Block(fn.Entry)
	if len(entry.Instrs) != 0 {
		t.Errorf("instruction emitted into a terminated block: %+v", entry.Instrs)
	}
}

func TestBuilderRefusesSecondTerminator(t *testing.T) {
	fn, bu := buildFunc(Void)
	target := fn.NewBlock("next")
	bu.RetVoid()
	bu.Br(target)
	entry := fn.Block(fn.Entry)
	if entry.Term.Kind != TermRet {
		t.Errorf("terminator overwritten: %+v", entry.Term)
	}
}

func TestBlockLabelsUniqued(t *testing.T) {
	fn := NewFunc("f", LinkageInternal, Void, nil)
	a := fn.NewBlock("then")
	b := fn.NewBlock("then")
	if fn.Block(a).Name == fn.Block(b).Name {
		t.Errorf("duplicate block labels: %q", fn.Block(a).Name)
	}
}

func TestInternStringDeduplicates(t *testing.T) {
	mod := NewModule("m")
	a := mod.InternString("hi")
	b := mod.InternString("hi")
	c := mod.InternString("bye")
	if a.Name != b.Name {
		t.Errorf("identical text interned twice: %q vs %q", a.Name, b.Name)
	}
	if a.Name == c.Name {
		t.Errorf("distinct text shares a constant: %q", a.Name)
	}
	if len(mod.Strings) != 2 {
		t.Errorf("module holds %d string constants, want 2", len(mod.Strings))
	}
}
