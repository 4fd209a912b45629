package ir

import (
	"strings"
	"testing"

	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/lexer"
	"flux/internal/parser"
	"flux/internal/source"
)

func emitSource(t *testing.T, src string) (*Module, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte(src))
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}

	b := ast.NewBuilder(nil, ast.Hints{})
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	pr := parser.ParseFile(fs, lx, b, parser.Options{MaxErrors: 64, Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("parse errors before lowering: %v", bag.Items())
	}

	em := NewEmitter(b, EmitOptions{ModuleName: "test", Reporter: rep})
	return em.EmitFile(pr.File), bag
}

func emitClean(t *testing.T, src string) *Module {
	t.Helper()
	mod, bag := emitSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected lowering errors: %v", bag.Items())
	}
	return mod
}

func mustFunc(t *testing.T, mod *Module, name string) *Func {
	t.Helper()
	fn := mod.Func(name)
	if fn == nil {
		t.Fatalf("function %q missing from module", name)
	}
	return fn
}

func blockNames(fn *Func) []string {
	names := make([]string, 0, len(fn.Blocks))
	for _, blk := range fn.Blocks {
		names = append(names, blk.Name)
	}
	return names
}

func hasBlock(fn *Func, name string) bool {
	for _, blk := range fn.Blocks {
		if blk.Name == name {
			return true
		}
	}
	return false
}

func countInstrs(fn *Func, kind InstrKind) int {
	n := 0
	for _, blk := range fn.Blocks {
		for i := range blk.Instrs {
			if blk.Instrs[i].Kind == kind {
				n++
			}
		}
	}
	return n
}

func findBinary(fn *Func, op string) *Instr {
	for _, blk := range fn.Blocks {
		for i := range blk.Instrs {
			in := &blk.Instrs[i]
			if in.Kind == InstrBinary && in.Binary.Op == op {
				return in
			}
		}
	}
	return nil
}

func TestEmitVoidMain(t *testing.T) {
	mod := emitClean(t, `func main() -> Void { }`)
	fn := mustFunc(t, mod, "main")

	if fn.Linkage != LinkageExternal {
		t.Errorf("main linkage = %v, want external", fn.Linkage)
	}
	if len(fn.Blocks) != 1 {
		t.Fatalf("main has %d blocks, want 1: %v", len(fn.Blocks), blockNames(fn))
	}
	entry := fn.Blocks[0]
	if entry.Name != "entry" {
		t.Errorf("entry block named %q", entry.Name)
	}
	if entry.Term.Kind != TermRet || entry.Term.Ret.HasValue {
		t.Errorf("main does not end in ret void: %+v", entry.Term)
	}
}

func TestPrivateFunctionLinkage(t *testing.T) {
	mod := emitClean(t, `
func helper() -> Int64 { return 1; }
pub func entry() -> Int64 { return 2; }
`)
	if fn := mustFunc(t, mod, "helper"); fn.Linkage != LinkageInternal {
		t.Errorf("helper linkage = %v, want internal", fn.Linkage)
	}
	if fn := mustFunc(t, mod, "entry"); fn.Linkage != LinkageExternal {
		t.Errorf("entry linkage = %v, want external", fn.Linkage)
	}
}

func TestParamsSpillToSlots(t *testing.T) {
	mod := emitClean(t, `
func add(a: Int64, b: Int64) -> Int64 {
    return a + b;
}
`)
	fn := mustFunc(t, mod, "add")
	if got := countInstrs(fn, InstrAlloca); got != 2 {
		t.Errorf("add has %d allocas, want 2", got)
	}
	if got := countInstrs(fn, InstrStore); got != 2 {
		t.Errorf("add has %d stores, want 2", got)
	}
	if got := countInstrs(fn, InstrLoad); got != 2 {
		t.Errorf("add has %d loads, want 2", got)
	}
	if findBinary(fn, "add") == nil {
		t.Error("add instruction missing")
	}
}

func TestAllocasLeadEntryBlock(t *testing.T) {
	mod := emitClean(t, `
func f(a: Int64) -> Int64 {
    let x: Int64 = a;
    let y: Int64 = x;
    return y;
}
`)
	fn := mustFunc(t, mod, "f")
	entry := fn.Block(fn.Entry)
	seenOther := false
	for i := range entry.Instrs {
		if entry.Instrs[i].Kind == InstrAlloca {
			if seenOther {
				t.Fatal("alloca appears after non-alloca code in entry block")
			}
		} else {
			seenOther = true
		}
	}
}

func TestLetNarrowingEmitsTrunc(t *testing.T) {
	mod := emitClean(t, `
func f() -> Void {
    let x: Int8 = 1;
}
`)
	fn := mustFunc(t, mod, "f")
	found := false
	for _, blk := range fn.Blocks {
		for i := range blk.Instrs {
			in := &blk.Instrs[i]
			if in.Kind == InstrCast && in.Cast.Op == "trunc" && in.Cast.To == I8 {
				found = true
			}
		}
	}
	if !found {
		t.Error("narrowing let did not emit a trunc to i8")
	}
}

func TestBinaryWidthMismatchExtends(t *testing.T) {
	mod := emitClean(t, `
func f(a: Int32, b: Int64) -> Int64 {
    return a + b;
}
`)
	fn := mustFunc(t, mod, "f")
	found := false
	for _, blk := range fn.Blocks {
		for i := range blk.Instrs {
			in := &blk.Instrs[i]
			if in.Kind == InstrCast && in.Cast.Op == "sext" && in.Cast.To == I64 {
				found = true
			}
		}
	}
	if !found {
		t.Error("mixed-width add did not sign-extend the narrow operand")
	}
}

func TestFloatArithmeticSelectsFloatOps(t *testing.T) {
	mod := emitClean(t, `
func f(a: Float64, b: Float64) -> Float64 {
    return a * b;
}
`)
	fn := mustFunc(t, mod, "f")
	if findBinary(fn, "fmul") == nil {
		t.Error("float multiply did not lower to fmul")
	}
}

func TestComparisonLowersToICmp(t *testing.T) {
	mod := emitClean(t, `
func f(a: Int64, b: Int64) -> Bool {
    return a < b;
}
`)
	fn := mustFunc(t, mod, "f")
	in := findBinary(fn, "icmp slt")
	if in == nil {
		t.Fatal("comparison did not lower to icmp slt")
	}
	if in.Result.Type != I1 {
		t.Errorf("comparison result type = %s, want i1", in.Result.Type)
	}
}

func TestIfStatementBlocks(t *testing.T) {
	mod := emitClean(t, `
func f(flag: Bool) -> Int64 {
    if flag {
        return 1;
    }
    return 0;
}
`)
	fn := mustFunc(t, mod, "f")
	for _, name := range []string{"entry", "then", "ifcont"} {
		if !hasBlock(fn, name) {
			t.Errorf("missing block %q, have %v", name, blockNames(fn))
		}
	}
	if hasBlock(fn, "else") {
		t.Errorf("if without else grew an else block: %v", blockNames(fn))
	}
}

func TestWhileLoopBlocks(t *testing.T) {
	mod := emitClean(t, `
func f(n: Int64) -> Void {
    while n > 0 {
        n = n - 1;
    }
}
`)
	fn := mustFunc(t, mod, "f")
	for _, name := range []string{"while.cond", "while.body", "while.exit"} {
		if !hasBlock(fn, name) {
			t.Errorf("missing block %q, have %v", name, blockNames(fn))
		}
	}
}

func TestBreakBranchesToLoopExit(t *testing.T) {
	mod := emitClean(t, `
func f() -> Void {
    loop {
        break;
    }
}
`)
	fn := mustFunc(t, mod, "f")
	var body, exit *Block
	for _, blk := range fn.Blocks {
		switch blk.Name {
		case "loop.body":
			body = blk
		case "loop.exit":
			exit = blk
		}
	}
	if body == nil || exit == nil {
		t.Fatalf("loop blocks missing: %v", blockNames(fn))
	}
	if body.Term.Kind != TermBr || body.Term.Br.Target != exit.ID {
		t.Errorf("break did not branch to loop.exit: %+v", body.Term)
	}
}

func TestCallBindsDeclaredFunction(t *testing.T) {
	mod := emitClean(t, `
func one() -> Int64 { return 1; }
func two() -> Int64 { return one() + one(); }
`)
	fn := mustFunc(t, mod, "two")
	if got := countInstrs(fn, InstrCall); got != 2 {
		t.Errorf("two has %d calls, want 2", got)
	}
	for _, blk := range fn.Blocks {
		for i := range blk.Instrs {
			in := &blk.Instrs[i]
			if in.Kind == InstrCall && in.Call.Callee != "one" {
				t.Errorf("call targets %q, want one", in.Call.Callee)
			}
		}
	}
}

func TestForwardCallReported(t *testing.T) {
	_, bag := emitSource(t, `
func caller() -> Int64 { return later(); }
func later() -> Int64 { return 1; }
`)
	found := false
	for _, d := range bag.Items() {
		if d.Message == "unknown function 'later'" {
			found = true
		}
	}
	if !found {
		t.Errorf("forward call not reported, got %v", bag.Items())
	}
}

func TestUnknownVariableReported(t *testing.T) {
	_, bag := emitSource(t, `
func f() -> Int64 { return missing; }
`)
	found := false
	for _, d := range bag.Items() {
		if d.Message == "unknown variable 'missing'" {
			found = true
		}
	}
	if !found {
		t.Errorf("unknown variable not reported, got %v", bag.Items())
	}
}

func TestStringLiteralInterned(t *testing.T) {
	mod := emitClean(t, `
func f() -> Void {
    let s: String = "hello";
}
`)
	if len(mod.Strings) != 1 {
		t.Fatalf("module has %d string constants, want 1", len(mod.Strings))
	}
	sc := mod.Strings[0]
	if !strings.HasPrefix(sc.Name, "@str") {
		t.Errorf("string constant named %q", sc.Name)
	}
	if string(sc.Data) != "hello\x00" {
		t.Errorf("string data = %q, want NUL-terminated hello", sc.Data)
	}
}

func TestStructDeclLowersToTypeDef(t *testing.T) {
	mod := emitClean(t, `
struct Point {
    x: Int64,
    y: Int64,
}
`)
	if len(mod.Types) != 1 {
		t.Fatalf("module has %d type defs, want 1", len(mod.Types))
	}
	td := mod.Types[0]
	if td.Name != "Point" || len(td.Fields) != 2 || td.Fields[0] != I64 {
		t.Errorf("unexpected type def %+v", td)
	}
}

func TestFallOffNonVoidReturnsZero(t *testing.T) {
	mod := emitClean(t, `func f() -> Int64 { }`)
	fn := mustFunc(t, mod, "f")
	entry := fn.Block(fn.Entry)
	if entry.Term.Kind != TermRet || !entry.Term.Ret.HasValue {
		t.Fatalf("missing value return: %+v", entry.Term)
	}
	if entry.Term.Ret.Value.Ref != "0" {
		t.Errorf("fall-off return value = %q, want 0", entry.Term.Ret.Value.Ref)
	}
}

func TestEmittedFunctionsVerify(t *testing.T) {
	mod := emitClean(t, `
func fib(n: Int64) -> Int64 {
    if n < 2 {
        return n;
    }
    return fib(n - 1) + fib(n - 2);
}

func main() -> Void {
    let x: Int64 = fib(10);
}
`)
	for _, fn := range mod.Funcs {
		if err := VerifyFunc(fn); err != nil {
			t.Errorf("function %q fails verification: %v", fn.Name, err)
		}
	}
}
