package diagfmt

import (
	"strings"
	"testing"

	"flux/internal/diag"
	"flux/internal/source"
)

func testFileSet(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.fl", []byte(content))
	return fs, id
}

func TestPrettyGoldenError(t *testing.T) {
	fs, id := testFileSet(t, "func main() -> Void {\n    return x;\n}\n")
	bag := diag.NewBag(8)
	span := source.Span{File: id, Start: 33, End: 34}
	bag.Add(diag.NewError(diag.SemaUndeclared, span, "use of undeclared identifier 'x'"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})

	want := "error: use of undeclared identifier 'x'\n" +
		"  --> main.fl:2:12\n" +
		"   |\n" +
		"   |\n"
	if sb.String() != want {
		t.Errorf("rendered:\n%q\nwant:\n%q", sb.String(), want)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs, id := testFileSet(t, "let x = 1\n")
	bag := diag.NewBag(8)
	span := source.Span{File: id, Start: 4, End: 5}
	d := diag.NewError(diag.SynExpectSemicolon, span, "expected ';' after statement").
		WithNote(source.Span{File: id, Start: 9, End: 9}, "statement ends here").
		WithFix("insert a semicolon", ";")
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	out := sb.String()

	for _, want := range []string{
		"error: expected ';' after statement\n",
		"  note: statement ends here\n",
		"    --> main.fl:1:10\n",
		"  help: insert a semicolon\n",
		"    suggested: ;\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrettyFatalSeverityLabel(t *testing.T) {
	fs, id := testFileSet(t, "x\n")
	bag := diag.NewBag(8)
	bag.Add(diag.New(diag.SevFatal, diag.IOLoadFileError,
		source.Span{File: id, Start: 0, End: 1}, "could not open file 'missing.fl'"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{})
	if !strings.HasPrefix(sb.String(), "fatal error: could not open file 'missing.fl'\n") {
		t.Errorf("fatal label wrong:\n%s", sb.String())
	}
}

func TestPrettyPreviewCaret(t *testing.T) {
	fs, id := testFileSet(t, "let y: Bool = 12;\n")
	bag := diag.NewBag(8)
	span := source.Span{File: id, Start: 14, End: 16}
	bag.Add(diag.NewError(diag.SemaTypeMismatch, span,
		"type mismatch: expected 'Bool', got 'Int64'"))

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{ShowPreview: true})
	out := sb.String()

	if !strings.Contains(out, "  1 | let y: Bool = 12;\n") {
		t.Errorf("preview missing source line:\n%s", out)
	}
	if !strings.Contains(out, "    |               ^~\n") {
		t.Errorf("preview caret misplaced:\n%s", out)
	}
}

func TestPrettyMaxCapsOutput(t *testing.T) {
	fs, id := testFileSet(t, "a b c\n")
	bag := diag.NewBag(8)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewError(diag.LexUnknownChar,
			source.Span{File: id, Start: i, End: i + 1}, "unexpected character"))
	}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Max: 1})
	if got := strings.Count(sb.String(), "error:"); got != 1 {
		t.Errorf("rendered %d diagnostics, want 1", got)
	}
}

func TestErrorSummary(t *testing.T) {
	var sb strings.Builder
	ErrorSummary(&sb, 3)
	if sb.String() != "3 error(s) generated.\n" {
		t.Errorf("summary = %q", sb.String())
	}
	sb.Reset()
	ErrorSummary(&sb, 0)
	if sb.String() != "" {
		t.Errorf("summary for zero errors = %q", sb.String())
	}
}

func TestJSONOutput(t *testing.T) {
	fs, id := testFileSet(t, "let x = 1;\n")
	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SemaMissingAnnotation,
		source.Span{File: id, Start: 4, End: 5},
		"variable 'x' must have an explicit type annotation"))

	var sb strings.Builder
	if err := JSON(&sb, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := sb.String()
	for _, want := range []string{
		`"severity": "error"`,
		`"message": "variable 'x' must have an explicit type annotation"`,
		`"file": "main.fl"`,
		`"start_line": 1`,
		`"count": 1`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON missing %s:\n%s", want, out)
		}
	}
}
