package lexer

import (
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

// Lexer produces tokens from a single source file on demand. Errors are
// reported through Options.Reporter and yield Invalid tokens; the lexer
// never stops before EOF.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	hold   []token.Trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its leading trivia
// attached. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		}
		tok.Leading = lx.hold
		lx.hold = nil
		return tok
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case ch == '_':
		// A bare underscore is the wildcard; "_foo" is an identifier.
		b0, b1, ok := lx.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			tok = lx.scanIdentOrKeyword()
		} else {
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			tok = lx.makeToken(token.Underscore, start)
		}

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '"':
		tok = lx.scanString()

	case ch == '\'':
		tok = lx.scanCharOrLifetime()

	case ch == '@':
		tok = lx.scanAnnotation()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek returns the next token without consuming it. Repeated calls
// return the same token.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		t := lx.Next()
		lx.look = &t
	}
	return *lx.look
}

// LexAll drains the lexer through EOF, inclusive.
func (lx *Lexer) LexAll() []token.Token {
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

// EOFReached reports whether the underlying buffer is exhausted.
func (lx *Lexer) EOFReached() bool {
	return lx.look == nil && lx.cursor.EOF()
}

// State captures the lexer position for bounded lookahead.
type State struct {
	off     uint32
	hasLook bool
	look    token.Token
}

// Save captures the current state.
func (lx *Lexer) Save() State {
	s := State{off: lx.cursor.Off}
	if lx.look != nil {
		s.hasLook = true
		s.look = *lx.look
	}
	return s
}

// Restore rewinds the lexer to a previously saved state.
func (lx *Lexer) Restore(s State) {
	lx.cursor.Off = s.off
	if s.hasLook {
		look := s.look
		lx.look = &look
	} else {
		lx.look = nil
	}
	lx.hold = nil
}

func (lx *Lexer) makeToken(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) invalidToken(code diag.Code, start Mark, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(code, sp, msg)
	return token.Token{
		Kind: token.Invalid,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}
