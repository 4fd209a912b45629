package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"flux/internal/diag"
	"flux/internal/source"
)

var severityColors = map[diag.Severity]*color.Color{
	diag.SevNote:    color.New(color.FgCyan),
	diag.SevWarning: color.New(color.FgYellow, color.Bold),
	diag.SevError:   color.New(color.FgRed, color.Bold),
	diag.SevFatal:   color.New(color.FgRed, color.Bold),
}

// Pretty renders every diagnostic in the bag:
//
//	error: <message>
//	  --> <file>:<line>:<col>
//	   |
//	   |
//	  note: <message>
//	    --> <file>:<line>:<col>
//	  help: <description>
//	    suggested: <replacement>
//
// The gutter lines stay empty unless ShowPreview fills them with the
// source line and a caret underline.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	for i := range items {
		prettyOne(w, &items[i], fs, opts)
	}
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	label := d.Severity.String()
	if opts.Color {
		if c, ok := severityColors[d.Severity]; ok {
			label = c.Sprint(label)
		}
	}
	fmt.Fprintf(w, "%s: %s\n", label, d.Message)

	if loc := fs.Position(d.Primary); !loc.Unknown() {
		fmt.Fprintf(w, "  --> %s:%d:%d\n", loc.Path, loc.Line, loc.Col)
		if opts.ShowPreview {
			writePreview(w, fs, d.Primary)
		} else {
			fmt.Fprint(w, "   |\n   |\n")
		}
	}

	for _, note := range d.Notes {
		fmt.Fprintf(w, "  note: %s\n", note.Msg)
		if loc := fs.Position(note.Span); !loc.Unknown() {
			fmt.Fprintf(w, "    --> %s:%d:%d\n", loc.Path, loc.Line, loc.Col)
		}
	}

	for _, fix := range d.Fixes {
		fmt.Fprintf(w, "  help: %s\n", fix.Title)
		if fix.Replacement != "" {
			fmt.Fprintf(w, "    suggested: %s\n", fix.Replacement)
		}
	}
}

// ErrorSummary prints the trailing driver line when any errors exist.
func ErrorSummary(w io.Writer, errorCount int) {
	if errorCount > 0 {
		fmt.Fprintf(w, "%d error(s) generated.\n", errorCount)
	}
}
