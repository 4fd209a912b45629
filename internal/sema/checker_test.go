package sema

import (
	"testing"

	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/lexer"
	"flux/internal/parser"
	"flux/internal/source"
)

func checkSource(t *testing.T, src string) *diag.Bag {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte(src))
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}

	b := ast.NewBuilder(nil, ast.Hints{})
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	pr := parser.ParseFile(fs, lx, b, parser.Options{MaxErrors: 64, Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("parse errors before checking: %v", bag.Items())
	}

	r := NewResolver(b, nil, ResolverOptions{Reporter: rep})
	module := r.Resolve(pr.File)
	if bag.HasErrors() {
		t.Fatalf("resolution errors before checking: %v", bag.Items())
	}

	ck := NewChecker(b, r.Table(), r.Uses(), CheckerOptions{Reporter: rep})
	ck.Check(pr.File, module)
	return bag
}

func checkClean(t *testing.T, src string) {
	t.Helper()
	bag := checkSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected check errors: %v", bag.Items())
	}
}

func bagHasError(bag *diag.Bag, msg string) bool {
	for _, d := range bag.Items() {
		if d.Message == msg {
			return true
		}
	}
	return false
}

func expectError(t *testing.T, src, msg string) {
	t.Helper()
	bag := checkSource(t, src)
	if !bagHasError(bag, msg) {
		t.Errorf("missing diagnostic %q, got %v", msg, bag.Items())
	}
}

func TestCheckCleanFunction(t *testing.T) {
	checkClean(t, `
func add(a: Int32, b: Int32) -> Int32 {
    return a + b;
}
`)
}

func TestUnknownReturnType(t *testing.T) {
	expectError(t, `func make() -> Widget { }`,
		"unknown return type 'Widget' in function 'make'")
}

func TestUnknownParameterType(t *testing.T) {
	expectError(t, `func take(w: Widget) { }`,
		"unknown parameter type 'Widget' for parameter 'w'")
}

func TestLetUnknownType(t *testing.T) {
	expectError(t, `func probe() { let x: Widget = 1; }`,
		"unknown type 'Widget' in let binding")
}

func TestLetTypeMismatch(t *testing.T) {
	expectError(t, `func probe() { let flag: Bool = 1; }`,
		"type mismatch: expected 'Bool', got 'Int64'")
}

func TestIntLiteralNarrowsToSmallerInt(t *testing.T) {
	checkClean(t, `
func probe() {
    let a: Int8 = 1;
    let b: UInt32 = 200;
}
`)
}

func TestFloatLiteralNarrowsToFloat32(t *testing.T) {
	checkClean(t, `func probe() { let f: Float32 = 1.5; }`)
}

func TestLetWithoutAnnotationFromCall(t *testing.T) {
	expectError(t, `
func supply() -> Int32 { return 1; }
func probe() { let x = supply(); }
`,
		"variable 'x' must have an explicit type annotation")
}

func TestLetInfersFromLiteral(t *testing.T) {
	checkClean(t, `func probe() { let x = 1; }`)
}

func TestIdentTypeFlowsFromDeclaration(t *testing.T) {
	expectError(t, `
func probe() {
    let a: Int32 = 1;
    let flag: Bool = a;
}
`,
		"type mismatch: expected 'Bool', got 'Int32'")
}

func TestConditionMustBeBool(t *testing.T) {
	expectError(t, `func probe() { if 1 { } }`,
		"condition must be of type 'Bool', got 'Int64'")
}

func TestWhileConditionMustBeBool(t *testing.T) {
	expectError(t, `func probe() { while 1 { } }`,
		"condition must be of type 'Bool', got 'Int64'")
}

func TestComparisonConditionAccepted(t *testing.T) {
	checkClean(t, `
func probe(n: Int32) {
    while n < 10 { }
    if n == 0 { }
}
`)
}

func TestReturnTypeMismatch(t *testing.T) {
	expectError(t, `func answer() -> Bool { return 42; }`,
		"return type mismatch: expected 'Bool', got 'Int64'")
}

func TestNonVoidMustReturnValue(t *testing.T) {
	expectError(t, `func answer() -> Int32 { return; }`,
		"non-void function must return a value")
}

func TestVoidReturnWithValueRejected(t *testing.T) {
	expectError(t, `func run() { return 1; }`,
		"return type mismatch: expected 'Void', got 'Int64'")
}

func TestBinaryMismatch(t *testing.T) {
	expectError(t, `func probe() { let x: Int64 = 1 + true; }`,
		"binary expression type mismatch: 'Int64' vs 'Bool'")
}

func TestComparisonYieldsBool(t *testing.T) {
	checkClean(t, `func probe() { let ok: Bool = 1 < 2; }`)
}

func TestUnknownStructFieldType(t *testing.T) {
	expectError(t, `struct Point { x: Widget }`,
		"unknown field type 'Widget' for field 'x' in struct 'Point'")
}

func TestStructTypeUsableAfterDeclaration(t *testing.T) {
	checkClean(t, `
struct Point { x: Int32, y: Int32 }
func take(p: Point) { }
`)
}

func TestUserTypeVisibleBeforeDeclaration(t *testing.T) {
	checkClean(t, `
func take(p: Point) { }
struct Point { x: Int32 }
`)
}

func TestUnknownEnumVariantType(t *testing.T) {
	expectError(t, `enum Shape { Circle(Widget) }`,
		"unknown type 'Widget' in enum variant 'Circle'")
}

func TestUnknownTypeAliasTarget(t *testing.T) {
	expectError(t, `type Handle = Widget;`,
		"unknown type 'Widget' in type alias 'Handle'")
}

func TestGenericParamKnownInSignature(t *testing.T) {
	checkClean(t, `func keep<T>(value: T) -> T { return value; }`)
}

func TestSelfKnownInImplMethods(t *testing.T) {
	checkClean(t, `
struct Counter { value: Int32 }
impl Counter {
    func get(self: Self) -> Int32 { return 0; }
}
`)
}

func TestReferenceTypeResolvesToTarget(t *testing.T) {
	checkClean(t, `
struct Point { x: Int32 }
func read(p: &Point) { }
func write(p: &mut Point) { }
`)
}

func TestArrayTypeResolvesToElement(t *testing.T) {
	expectError(t, `func take(xs: [Widget]) { }`,
		"unknown parameter type '[Widget]' for parameter 'xs'")
}
