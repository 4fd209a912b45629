package parser

import (
	"testing"

	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/lexer"
	"flux/internal/source"
	"flux/internal/testkit"
)

func TestParsedSpansHoldInvariants(t *testing.T) {
	sources := []string{
		"module demo;\n\nfunc main() -> Void {\n    let x: Int64 = 1;\n}\n",
		"struct Point {\n    x: Float64,\n    y: Float64,\n}\n\nfunc origin() -> Point {\n    return Point { x: 0.0, y: 0.0 };\n}\n",
		"enum Color {\n    Red,\n    Green,\n    Blue,\n}\n",
	}
	for _, src := range sources {
		fs := source.NewFileSet()
		id := fs.AddVirtual("test.fl", []byte(src))
		bag := diag.NewBag(64)
		rep := diag.BagReporter{Bag: bag}
		b := ast.NewBuilder(nil, ast.Hints{})
		lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
		res := ParseFile(fs, lx, b, Options{MaxErrors: 64, Reporter: rep})
		if bag.HasErrors() {
			t.Fatalf("unexpected errors for %q: %v", src, bag.Items())
		}
		if err := testkit.CheckSpanInvariants(b, res.File, fs.Get(id)); err != nil {
			t.Errorf("span invariants violated for %q: %v", src, err)
		}
	}
}
