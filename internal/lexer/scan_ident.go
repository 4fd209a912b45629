package lexer

import (
	"flux/internal/token"
)

// scanIdentOrKeyword reads [A-Za-z_][A-Za-z0-9_]* and classifies it via
// the keyword table.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	tok := lx.makeToken(token.Ident, start)
	if kind, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = kind
	}
	return tok
}
