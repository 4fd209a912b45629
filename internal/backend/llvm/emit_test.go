package llvm

import (
	"strings"
	"testing"

	"flux/internal/ir"
)

func TestEmitEmptyModule(t *testing.T) {
	out := EmitModule(ir.NewModule("empty"))
	if !strings.HasPrefix(out, "; ModuleID = 'empty'\n") {
		t.Errorf("missing module header:\n%s", out)
	}
	if !strings.Contains(out, `target triple = "x86_64-linux-gnu"`) {
		t.Errorf("missing target triple:\n%s", out)
	}
}

func TestEmitVoidFunction(t *testing.T) {
	mod := ir.NewModule("m")
	fn := ir.NewFunc("main", ir.LinkageExternal, ir.Void, nil)
	bu := ir.NewBuilder(fn)
	bu.SetInsert(fn.NewBlock("entry"))
	bu.RetVoid()
	mod.AddFunc(fn)

	out := EmitModule(mod)
	for _, want := range []string{
		"define void @main() {",
		"entry:",
		"  ret void",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "internal void @main") {
		t.Errorf("main emitted with internal linkage:\n%s", out)
	}
}

func TestEmitArithmeticFunction(t *testing.T) {
	mod := ir.NewModule("m")
	fn := ir.NewFunc("add", ir.LinkageInternal, ir.I64, []ir.Param{
		{Name: "a", Type: ir.I64},
		{Name: "b", Type: ir.I64},
	})
	bu := ir.NewBuilder(fn)
	bu.SetInsert(fn.NewBlock("entry"))
	sum := bu.Binary("add", fn.ParamValue(0), fn.ParamValue(1), "addtmp")
	bu.Ret(sum)
	mod.AddFunc(fn)

	out := EmitModule(mod)
	for _, want := range []string{
		"define internal i64 @add(i64 %a, i64 %b) {",
		"  %addtmp = add i64 %a, %b",
		"  ret i64 %addtmp",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEmitMemoryAndCast(t *testing.T) {
	mod := ir.NewModule("m")
	fn := ir.NewFunc("f", ir.LinkageInternal, ir.I8, nil)
	bu := ir.NewBuilder(fn)
	bu.SetInsert(fn.NewBlock("entry"))
	addr := bu.Alloca("x", ir.I64)
	bu.Store(ir.ConstInt(ir.I64, 40), addr)
	val := bu.Load(ir.I64, addr, "x")
	narrow := bu.Trunc(val, ir.I8)
	bu.Ret(narrow)
	mod.AddFunc(fn)

	out := EmitModule(mod)
	for _, want := range []string{
		"  %x = alloca i64",
		"  store i64 40, ptr %x",
		"  %x.1 = load i64, ptr %x",
		"  %trunc = trunc i64 %x.1 to i8",
		"  ret i8 %trunc",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEmitControlFlow(t *testing.T) {
	mod := ir.NewModule("m")
	fn := ir.NewFunc("pick", ir.LinkageInternal, ir.I64, []ir.Param{
		{Name: "flag", Type: ir.I1},
	})
	bu := ir.NewBuilder(fn)
	entry := fn.NewBlock("entry")
	then := fn.NewBlock("then")
	els := fn.NewBlock("else")
	bu.SetInsert(entry)
	bu.CondBr(fn.ParamValue(0), then, els)
	bu.SetInsert(then)
	bu.Ret(ir.ConstInt(ir.I64, 1))
	bu.SetInsert(els)
	bu.Ret(ir.ConstInt(ir.I64, 0))
	mod.AddFunc(fn)

	out := EmitModule(mod)
	for _, want := range []string{
		"  br i1 %flag, label %then, label %else",
		"then:",
		"  ret i64 1",
		"else:",
		"  ret i64 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEmitCallAndDeclaration(t *testing.T) {
	mod := ir.NewModule("m")
	ext := ir.NewFunc("putchar", ir.LinkageExternal, ir.I32, []ir.Param{
		{Name: "c", Type: ir.I32},
	})
	mod.AddFunc(ext)

	fn := ir.NewFunc("f", ir.LinkageInternal, ir.Void, nil)
	bu := ir.NewBuilder(fn)
	bu.SetInsert(fn.NewBlock("entry"))
	bu.Call("putchar", ir.I32, []ir.Value{ir.ConstInt(ir.I32, 65)})
	bu.RetVoid()
	mod.AddFunc(fn)

	out := EmitModule(mod)
	for _, want := range []string{
		"declare i32 @putchar(i32)",
		"  %calltmp = call i32 @putchar(i32 65)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEmitStringAndTypeDefs(t *testing.T) {
	mod := ir.NewModule("m")
	mod.InternString("hi\n")
	mod.Types = append(mod.Types, ir.TypeDef{
		Name:   "Point",
		Fields: []ir.Type{ir.I64, ir.I64},
	})

	out := EmitModule(mod)
	for _, want := range []string{
		"%Point = type { i64, i64 }",
		`@str = private unnamed_addr constant [4 x i8] c"hi\0A\00"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEmitPhi(t *testing.T) {
	mod := ir.NewModule("m")
	fn := ir.NewFunc("sel", ir.LinkageInternal, ir.I64, []ir.Param{
		{Name: "flag", Type: ir.I1},
	})
	bu := ir.NewBuilder(fn)
	entry := fn.NewBlock("entry")
	then := fn.NewBlock("then")
	els := fn.NewBlock("else")
	merge := fn.NewBlock("ifcont")
	bu.SetInsert(entry)
	bu.CondBr(fn.ParamValue(0), then, els)
	bu.SetInsert(then)
	bu.Br(merge)
	bu.SetInsert(els)
	bu.Br(merge)
	bu.SetInsert(merge)
	res := bu.Phi(ir.I64, "iftmp", []ir.PhiEdge{
		{Value: ir.ConstInt(ir.I64, 1), Block: then},
		{Value: ir.ConstInt(ir.I64, 2), Block: els},
	})
	bu.Ret(res)
	mod.AddFunc(fn)

	out := EmitModule(mod)
	want := "  %iftmp = phi i64 [ 1, %then ], [ 2, %else ]"
	if !strings.Contains(out, want) {
		t.Errorf("output missing %q:\n%s", want, out)
	}
}
