package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"flux/internal/diag"
	"flux/internal/source"
)

// writePreview fills the diagnostic gutter with the source line the span
// starts on and a caret underline. Column math accounts for wide runes
// so the caret lands under the offending text.
func writePreview(w io.Writer, fs *source.FileSet, span source.Span) {
	f := fs.Get(span.File)
	if f == nil {
		fmt.Fprint(w, "   |\n   |\n")
		return
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" && start.Line == 0 {
		fmt.Fprint(w, "   |\n   |\n")
		return
	}

	gutter := fmt.Sprintf("%3d", start.Line)
	fmt.Fprintf(w, "%s | %s\n", gutter, line)

	pad := displayWidth(line, int(start.Col)-1)
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = displayWidth(line[min(len(line), int(start.Col)-1):], int(end.Col-start.Col))
	}
	marker := "^" + strings.Repeat("~", max(0, width-1))
	fmt.Fprintf(w, "%s | %s%s\n", strings.Repeat(" ", len(gutter)), strings.Repeat(" ", pad), marker)
}

// displayWidth measures the terminal width of the first n bytes of s.
func displayWidth(s string, n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(s) {
		n = len(s)
	}
	return runewidth.StringWidth(s[:n])
}

// FixPreview renders the replacement text a fix suggests for its first
// edit, or the fix title when it carries no edits.
func FixPreview(fix diag.Fix) string {
	if len(fix.Edits) > 0 {
		return fix.Edits[0].NewText
	}
	if fix.Replacement != "" {
		return fix.Replacement
	}
	return fix.Title
}
