package sema

import (
	"strings"
	"testing"

	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/lexer"
	"flux/internal/parser"
	"flux/internal/source"
	"flux/internal/symbols"
)

type resolveResult struct {
	r      *Resolver
	bag    *diag.Bag
	module symbols.ScopeID
}

func resolveSource(t *testing.T, src string) resolveResult {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte(src))
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}

	b := ast.NewBuilder(nil, ast.Hints{})
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	pr := parser.ParseFile(fs, lx, b, parser.Options{MaxErrors: 64, Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("parse errors before resolution: %v", bag.Items())
	}

	r := NewResolver(b, nil, ResolverOptions{Reporter: rep})
	module := r.Resolve(pr.File)
	return resolveResult{r: r, bag: bag, module: module}
}

func resolveClean(t *testing.T, src string) resolveResult {
	t.Helper()
	rr := resolveSource(t, src)
	if rr.bag.HasErrors() {
		t.Fatalf("unexpected resolution errors: %v", rr.bag.Items())
	}
	return rr
}

func hasError(rr resolveResult, msg string) bool {
	for _, d := range rr.bag.Items() {
		if d.Message == msg {
			return true
		}
	}
	return false
}

func TestResolveSimpleFunction(t *testing.T) {
	resolveClean(t, `
func add(a: Int, b: Int) -> Int {
    return a + b;
}
`)
}

func TestForwardReferenceBetweenFunctions(t *testing.T) {
	resolveClean(t, `
func first() { second(); }
func second() { first(); }
`)
}

func TestUndeclaredIdentifier(t *testing.T) {
	rr := resolveSource(t, "func probe() { let x: Int = y; }")
	if !hasError(rr, "use of undeclared identifier 'y'") {
		t.Errorf("missing undeclared diagnostic, got %v", rr.bag.Items())
	}
}

func TestTopLevelRedefinition(t *testing.T) {
	rr := resolveSource(t, `
struct Point { x: Int }
func Point() {}
`)
	if !hasError(rr, "redefinition of 'Point'") {
		t.Errorf("missing redefinition diagnostic, got %v", rr.bag.Items())
	}
}

func TestVariableRedefinitionInSameScope(t *testing.T) {
	rr := resolveSource(t, `
func probe() {
    let x: Int = 1;
    let x: Int = 2;
}
`)
	if !hasError(rr, "redefinition of variable 'x'") {
		t.Errorf("missing variable redefinition, got %v", rr.bag.Items())
	}
}

func TestConstantRedefinition(t *testing.T) {
	rr := resolveSource(t, `
func probe() {
    const LIMIT: Int = 10;
    const LIMIT: Int = 20;
}
`)
	if !hasError(rr, "redefinition of constant 'LIMIT'") {
		t.Errorf("missing constant redefinition, got %v", rr.bag.Items())
	}
}

func TestLetInitializerSeesOuterBinding(t *testing.T) {
	resolveClean(t, `
func probe() {
    let x: Int = 1;
    {
        let x: Int = x + 1;
    }
}
`)
}

func TestLetInitializerCannotSeeItself(t *testing.T) {
	rr := resolveSource(t, "func probe() { let x: Int = x; }")
	if !hasError(rr, "use of undeclared identifier 'x'") {
		t.Errorf("self-referential let should fail, got %v", rr.bag.Items())
	}
}

func TestShadowingAcrossScopesAllowed(t *testing.T) {
	resolveClean(t, `
func probe(x: Int) {
    {
        let x: Int = 2;
        let y: Int = x;
    }
}
`)
}

func TestForLoopVariableScoped(t *testing.T) {
	rr := resolveSource(t, `
func probe(items: List<Int>) {
    for item: Int in items {
        let doubled: Int = item * 2;
    }
    let after: Int = item;
}
`)
	if !hasError(rr, "use of undeclared identifier 'item'") {
		t.Errorf("loop variable should not escape, got %v", rr.bag.Items())
	}
}

func TestClosureParameterBinding(t *testing.T) {
	resolveClean(t, `
func probe() {
    let double: (Int) -> Int = |n: Int| -> Int { return n * 2; };
}
`)
}

func TestMatchArmBindsPatternNames(t *testing.T) {
	resolveClean(t, `
enum Option { Some(Int), None }

func probe(opt: Option) -> Int {
    let out: Int = match opt {
        Option::Some(value) => value,
        Option::None => 0,
    };
    return out;
}
`)
}

func TestMatchArmBindingsDoNotLeak(t *testing.T) {
	rr := resolveSource(t, `
enum Option { Some(Int), None }

func probe(opt: Option) -> Int {
    let out: Int = match opt {
        Option::Some(value) => value,
        Option::None => value,
    };
    return out;
}
`)
	if !hasError(rr, "use of undeclared identifier 'value'") {
		t.Errorf("binding leaked across arms, got %v", rr.bag.Items())
	}
}

func TestEnumVariantsEnterEnclosingScope(t *testing.T) {
	rr := resolveClean(t, `
enum Command { Quit, Move, Write }

func probe() {
    let cmd: Command = Quit;
}
`)
	tbl := rr.r.Table()
	name := tbl.Strings.Intern("Quit")
	id, ok := tbl.LookupLocal(rr.module, name)
	if !ok {
		t.Fatal("variant should live in the module scope")
	}
	sym := tbl.Symbols.Get(id)
	if sym.Kind != symbols.SymbolEnumVariant {
		t.Errorf("kind = %v, want enum variant", sym.Kind)
	}
	if got := tbl.QualifiedName(id); got != "Command::Quit" {
		t.Errorf("qualified name = %q", got)
	}
}

func TestDuplicateEnumVariantReported(t *testing.T) {
	rr := resolveSource(t, "enum Flag { On, On }")
	if !hasError(rr, "redefinition of 'On'") {
		t.Errorf("missing duplicate variant diagnostic, got %v", rr.bag.Items())
	}
}

func TestMethodSelfResolves(t *testing.T) {
	resolveClean(t, `
struct Counter { value: Int }

impl Counter {
    func bump(mut self: Self) {
        let next: Int = self.value + 1;
    }
}
`)
}

func TestGenericParamVisibleInBody(t *testing.T) {
	resolveClean(t, `
func keep<T: Clone>(value: T) -> T {
    return value;
}
`)
}

func TestRedefinitionNotePointsAtFirst(t *testing.T) {
	rr := resolveSource(t, `
func twice() {}
func twice() {}
`)
	for _, d := range rr.bag.Items() {
		if strings.HasPrefix(d.Message, "redefinition of") {
			if len(d.Notes) == 0 || d.Notes[0].Msg != "previous definition is here" {
				t.Errorf("expected a note pointing at the first definition, got %+v", d.Notes)
			}
			return
		}
	}
	t.Fatal("no redefinition diagnostic recorded")
}

func TestUsesMapTracksResolvedIdents(t *testing.T) {
	rr := resolveClean(t, `
func probe(seed: Int) -> Int {
    return seed;
}
`)
	if len(rr.r.Uses()) == 0 {
		t.Fatal("identifier uses should be recorded")
	}
	tbl := rr.r.Table()
	for _, sym := range rr.r.Uses() {
		if tbl.SymbolName(sym) != "seed" {
			t.Errorf("resolved to %q, want seed", tbl.SymbolName(sym))
		}
	}
}
