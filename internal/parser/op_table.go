package parser

import (
	"flux/internal/ast"
	"flux/internal/token"
)

// Binary operator precedence levels, lowest first. Assignment is not
// in the table; it is right-associative and handled by parseAssign.
const (
	precOr = 1 + iota
	precAnd
	precEquality
	precComparison
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdditive
	precMultiplicative
)

// binaryPrec returns the precedence level for a binary operator token,
// or 0 when the token is not a binary operator.
func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.KwOr:
		return precOr
	case token.KwAnd:
		return precAnd
	case token.EqualEqual, token.BangEqual:
		return precEquality
	case token.Less, token.LessEqual, token.Greater, token.GreaterEqual:
		return precComparison
	case token.Pipe:
		return precBitOr
	case token.Caret:
		return precBitXor
	case token.Ampersand:
		return precBitAnd
	case token.ShiftLeft, token.ShiftRight:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	default:
		return 0
	}
}

func binaryOpFor(kind token.Kind) ast.BinaryOp {
	switch kind {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.Percent:
		return ast.BinMod
	case token.EqualEqual:
		return ast.BinEqual
	case token.BangEqual:
		return ast.BinNotEqual
	case token.Less:
		return ast.BinLess
	case token.LessEqual:
		return ast.BinLessEqual
	case token.Greater:
		return ast.BinGreater
	case token.GreaterEqual:
		return ast.BinGreaterEqual
	case token.KwAnd:
		return ast.BinAnd
	case token.KwOr:
		return ast.BinOr
	case token.Ampersand:
		return ast.BinBitAnd
	case token.Pipe:
		return ast.BinBitOr
	case token.Caret:
		return ast.BinBitXor
	case token.ShiftLeft:
		return ast.BinShiftLeft
	case token.ShiftRight:
		return ast.BinShiftRight
	default:
		return ast.BinAdd
	}
}

// compoundAssignOpFor maps a compound assignment token to its operator.
func compoundAssignOpFor(kind token.Kind) (ast.CompoundAssignOp, bool) {
	switch kind {
	case token.PlusEqual:
		return ast.AssignAdd, true
	case token.MinusEqual:
		return ast.AssignSub, true
	case token.StarEqual:
		return ast.AssignMul, true
	case token.SlashEqual:
		return ast.AssignDiv, true
	case token.PercentEqual:
		return ast.AssignMod, true
	case token.AmpersandEqual:
		return ast.AssignBitAnd, true
	case token.PipeEqual:
		return ast.AssignBitOr, true
	case token.CaretEqual:
		return ast.AssignBitXor, true
	default:
		return ast.AssignAdd, false
	}
}
