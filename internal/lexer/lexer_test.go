package lexer

import (
	"strings"
	"testing"

	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

func lexSource(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte(src))
	bag := diag.NewBag(64)
	lx := New(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx.LexAll(), bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestLexKeywordsAndIdents(t *testing.T) {
	toks, bag := lexSource(t, "func main self Self Void foo _bar _")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{
		token.KwFunc, token.Ident, token.KwSelf, token.KwSelfType,
		token.KwVoid, token.Ident, token.Ident, token.Underscore, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src      string
		kind     token.Kind
		intVal   int64
		floatVal float64
	}{
		{"42", token.IntLit, 42, 0},
		{"1_000_000", token.IntLit, 1000000, 0},
		{"0xFF", token.IntLit, 255, 0},
		{"0b1010", token.IntLit, 10, 0},
		{"0o77", token.IntLit, 63, 0},
		{"3.14", token.FloatLit, 0, 3.14},
		{"1.0e10", token.FloatLit, 0, 1.0e10},
		{"2e-3", token.FloatLit, 0, 2e-3},
	}
	for _, tt := range tests {
		toks, bag := lexSource(t, tt.src)
		if bag.HasErrors() {
			t.Errorf("%q: unexpected errors", tt.src)
			continue
		}
		tok := toks[0]
		if tok.Kind != tt.kind {
			t.Errorf("%q: kind = %v, want %v", tt.src, tok.Kind, tt.kind)
		}
		if tok.Kind == token.IntLit && tok.IntVal != tt.intVal {
			t.Errorf("%q: IntVal = %d, want %d", tt.src, tok.IntVal, tt.intVal)
		}
		if tok.Kind == token.FloatLit && tok.FloatVal != tt.floatVal {
			t.Errorf("%q: FloatVal = %g, want %g", tt.src, tok.FloatVal, tt.floatVal)
		}
	}
}

func TestLexNumberErrors(t *testing.T) {
	for _, src := range []string{"0x", "0xZZ", "0b2", "1e", "1e+"} {
		toks, bag := lexSource(t, src)
		if !bag.HasErrors() {
			t.Errorf("%q: expected an error", src)
		}
		if toks[0].Kind != token.Invalid {
			t.Errorf("%q: kind = %v, want Invalid", src, toks[0].Kind)
		}
	}
}

func TestLexStringLiteral(t *testing.T) {
	toks, bag := lexSource(t, `"hello \"quoted\" world"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	tok := toks[0]
	if tok.Kind != token.StringLit {
		t.Fatalf("kind = %v", tok.Kind)
	}
	if tok.Text != `hello \"quoted\" world` {
		t.Errorf("text = %q (quotes must be stripped, escapes kept raw)", tok.Text)
	}
}

func TestLexStringErrors(t *testing.T) {
	for _, src := range []string{`"open`, "\"line\nbreak\""} {
		_, bag := lexSource(t, src)
		if !bag.HasErrors() {
			t.Errorf("%q: expected an error", src)
		}
	}
}

func TestLexCharAndLifetime(t *testing.T) {
	toks, bag := lexSource(t, `'a' '\n' 'static x`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{token.CharLit, token.CharLit, token.Apostrophe, token.Ident, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
	if toks[2].Text != "'static" {
		t.Errorf("lifetime text = %q, want \"'static\"", toks[2].Text)
	}
}

func TestLexAnnotations(t *testing.T) {
	toks, bag := lexSource(t, "@doc @deprecated @test @custom")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{
		token.KwDoc, token.KwDeprecated, token.KwTest,
		token.At, token.Ident, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
	if toks[4].Text != "custom" {
		t.Errorf("re-lexed annotation name = %q", toks[4].Text)
	}
}

func TestLexOperatorsGreedy(t *testing.T) {
	toks, bag := lexSource(t, ":: .. ... -> => == != <= >= << >> #! += &= ^=")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{
		token.ColonColon, token.DotDot, token.DotDotDot, token.Arrow,
		token.FatArrow, token.EqualEqual, token.BangEqual, token.LessEqual,
		token.GreaterEqual, token.ShiftLeft, token.ShiftRight, token.HashBang,
		token.PlusEqual, token.AmpersandEqual, token.CaretEqual, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexLoneBangIsError(t *testing.T) {
	toks, bag := lexSource(t, "!x")
	if !bag.HasErrors() {
		t.Fatal("lone '!' must be an error")
	}
	if toks[0].Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", toks[0].Kind)
	}
}

func TestLexNestedBlockComment(t *testing.T) {
	toks, bag := lexSource(t, "a /* outer /* inner */ still */ b")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	want := []token.Kind{token.Ident, token.Ident, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("tokens = %v", got)
	}
}

func TestLexUnterminatedBlockComment(t *testing.T) {
	_, bag := lexSource(t, "a /* never closed")
	if !bag.HasErrors() {
		t.Fatal("unterminated block comment must be an error")
	}
}

func TestLexEndsWithEOF(t *testing.T) {
	for _, src := range []string{"", "x", "func main() {}", "\"bad", "/*"} {
		toks, _ := lexSource(t, src)
		if len(toks) == 0 || toks[len(toks)-1].Kind != token.EOF {
			t.Errorf("%q: stream must end with EOF", src)
		}
	}
}

func TestLexRoundTrip(t *testing.T) {
	srcs := []string{
		"func add(a: Int64, b: Int64) -> Int64 {\n\treturn a + b;\n}\n",
		"// comment\nlet x: Int64 = 1; /* block */ let y: Bool = true;",
		"match v { Some(x) => x, _ => 0 }",
	}
	for _, src := range srcs {
		toks, bag := lexSource(t, src)
		if bag.HasErrors() {
			t.Errorf("%q: unexpected errors", src)
			continue
		}
		var sb strings.Builder
		for _, tok := range toks {
			for _, tr := range tok.Leading {
				sb.WriteString(tr.Text)
			}
			sb.WriteString(src[tok.Span.Start:tok.Span.End])
		}
		if sb.String() != src {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", sb.String(), src)
		}
	}
}

func TestPeekIsIdempotent(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte("let x = 1;"))
	lx := New(fs.Get(id), Options{})

	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != p2.Kind || p1.Span != p2.Span {
		t.Errorf("Peek not idempotent: %v vs %v", p1, p2)
	}
	n := lx.Next()
	if n.Kind != p1.Kind || n.Span != p1.Span {
		t.Errorf("Next after Peek = %v, want %v", n, p1)
	}
}

func TestSaveRestore(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte("a b c d"))
	lx := New(fs.Get(id), Options{})

	lx.Next() // a
	st := lx.Save()
	b1 := lx.Next()
	c1 := lx.Next()

	lx.Restore(st)
	b2 := lx.Next()
	c2 := lx.Next()

	if b1.Text != b2.Text || c1.Text != c2.Text {
		t.Errorf("restore mismatch: (%q,%q) vs (%q,%q)", b1.Text, c1.Text, b2.Text, c2.Text)
	}

	// Save with a pending peek must restore the peeked token too.
	st = lx.Save()
	p := lx.Peek()
	st2 := lx.Save()
	lx.Restore(st2)
	if got := lx.Next(); got.Text != p.Text {
		t.Errorf("restore with lookahead = %q, want %q", got.Text, p.Text)
	}
	lx.Restore(st)
	if got := lx.Next(); got.Text != p.Text {
		t.Errorf("restore before lookahead = %q, want %q", got.Text, p.Text)
	}
}

func TestLexAfterEOFStaysEOF(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.fl", []byte("x"))
	lx := New(fs.Get(id), Options{})

	lx.Next()
	for i := 0; i < 3; i++ {
		if tok := lx.Next(); tok.Kind != token.EOF {
			t.Fatalf("call %d after EOF = %v", i, tok.Kind)
		}
	}
}
