package lexer

import (
	"flux/internal/diag"
	"flux/internal/source"
)

type Options struct {
	// Reporter receives lexical diagnostics. May be nil; errors are then
	// dropped but lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
