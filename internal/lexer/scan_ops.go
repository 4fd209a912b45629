package lexer

import (
	"fmt"

	"flux/internal/diag"
	"flux/internal/token"
)

// scanAnnotation reads '@' plus an identifier. The three annotation
// keywords get dedicated kinds; any other name re-lexes as '@' followed
// by a separate identifier token.
func (lx *Lexer) scanAnnotation() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // @

	if lx.cursor.EOF() || !isAlpha(lx.cursor.Peek()) {
		return lx.makeToken(token.At, start)
	}

	nameStart := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	name := string(lx.file.Content[uint32(nameStart):lx.cursor.Off])

	switch name {
	case "doc":
		return lx.makeToken(token.KwDoc, start)
	case "deprecated":
		return lx.makeToken(token.KwDeprecated, start)
	case "test":
		return lx.makeToken(token.KwTest, start)
	}

	// Unknown annotation name: emit '@' alone and rewind to the name.
	lx.cursor.Reset(nameStart)
	return lx.makeToken(token.At, start)
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	c := lx.cursor.Bump()

	switch c {
	case '(':
		return lx.makeToken(token.LParen, start)
	case ')':
		return lx.makeToken(token.RParen, start)
	case '[':
		return lx.makeToken(token.LBracket, start)
	case ']':
		return lx.makeToken(token.RBracket, start)
	case '{':
		return lx.makeToken(token.LBrace, start)
	case '}':
		return lx.makeToken(token.RBrace, start)
	case ',':
		return lx.makeToken(token.Comma, start)
	case ';':
		return lx.makeToken(token.Semicolon, start)
	case '~':
		return lx.makeToken(token.Tilde, start)
	case '?':
		return lx.makeToken(token.Question, start)

	case ':':
		if lx.cursor.Eat(':') {
			return lx.makeToken(token.ColonColon, start)
		}
		return lx.makeToken(token.Colon, start)

	case '.':
		if lx.cursor.Eat('.') {
			if lx.cursor.Eat('.') {
				return lx.makeToken(token.DotDotDot, start)
			}
			return lx.makeToken(token.DotDot, start)
		}
		return lx.makeToken(token.Dot, start)

	case '+':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.PlusEqual, start)
		}
		return lx.makeToken(token.Plus, start)

	case '-':
		if lx.cursor.Eat('>') {
			return lx.makeToken(token.Arrow, start)
		}
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.MinusEqual, start)
		}
		return lx.makeToken(token.Minus, start)

	case '*':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.StarEqual, start)
		}
		return lx.makeToken(token.Star, start)

	case '/':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.SlashEqual, start)
		}
		return lx.makeToken(token.Slash, start)

	case '%':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.PercentEqual, start)
		}
		return lx.makeToken(token.Percent, start)

	case '=':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.EqualEqual, start)
		}
		if lx.cursor.Eat('>') {
			return lx.makeToken(token.FatArrow, start)
		}
		return lx.makeToken(token.Equal, start)

	case '!':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.BangEqual, start)
		}
		return lx.invalidToken(diag.LexUnknownChar, start, "unexpected character '!'")

	case '<':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.LessEqual, start)
		}
		if lx.cursor.Eat('<') {
			return lx.makeToken(token.ShiftLeft, start)
		}
		return lx.makeToken(token.Less, start)

	case '>':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.GreaterEqual, start)
		}
		if lx.cursor.Eat('>') {
			return lx.makeToken(token.ShiftRight, start)
		}
		return lx.makeToken(token.Greater, start)

	case '&':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.AmpersandEqual, start)
		}
		return lx.makeToken(token.Ampersand, start)

	case '|':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.PipeEqual, start)
		}
		return lx.makeToken(token.Pipe, start)

	case '^':
		if lx.cursor.Eat('=') {
			return lx.makeToken(token.CaretEqual, start)
		}
		return lx.makeToken(token.Caret, start)

	case '#':
		if lx.cursor.Eat('!') {
			return lx.makeToken(token.HashBang, start)
		}
		return lx.makeToken(token.Hash, start)
	}

	return lx.invalidToken(diag.LexUnknownChar, start, fmt.Sprintf("unexpected character '%c'", c))
}
