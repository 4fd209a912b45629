package parser

import (
	"flux/internal/ast"
	"flux/internal/source"
	"flux/internal/token"
)

// parseExpr is the expression entry point. A NoExprID result means the
// error was already reported; the caller decides how to recover.
func (p *Parser) parseExpr() ast.ExprID {
	return p.parseAssign()
}

// parseAssign handles `=` and the compound assignment operators, both
// right-associative and below every binary operator.
func (p *Parser) parseAssign() ast.ExprID {
	expr := p.parseBinary(precOr)
	if !expr.IsValid() {
		return expr
	}

	if p.at(token.Equal) {
		p.advance()
		value := p.parseAssign()
		if !value.IsValid() {
			return expr
		}
		span := p.exprSpan(expr).Cover(p.exprSpan(value))
		return p.arenas.Exprs.NewAssign(span, expr, value)
	}

	if op, ok := compoundAssignOpFor(p.lx.Peek().Kind); ok {
		p.advance()
		value := p.parseAssign()
		if !value.IsValid() {
			return expr
		}
		span := p.exprSpan(expr).Cover(p.exprSpan(value))
		return p.arenas.Exprs.NewCompoundAssign(span, op, expr, value)
	}

	return expr
}

// parseBinary climbs the operator precedence table. All levels in the
// table are left-associative.
func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	left := p.parseUnary()
	if !left.IsValid() {
		return left
	}

	for {
		kind := p.lx.Peek().Kind
		prec := binaryPrec(kind)
		if prec < minPrec || prec == 0 {
			break
		}
		p.advance()

		right := p.parseBinary(prec + 1)
		if !right.IsValid() {
			return left
		}

		span := p.exprSpan(left).Cover(p.exprSpan(right))
		left = p.arenas.Exprs.NewBinary(span, binaryOpFor(kind), left, right)
	}
	return left
}

// parseUnary handles the prefix operators, then hands the operand to
// the postfix loop. `mut ref` needs one extra token of lookahead; a
// bare `mut` falls through to parsePrimary and errors there.
func (p *Parser) parseUnary() ast.ExprID {
	start := p.lx.Peek().Span

	switch p.lx.Peek().Kind {
	case token.Minus:
		p.advance()
		return p.finishUnary(start, ast.UnaryNegate)
	case token.KwNot:
		p.advance()
		return p.finishUnary(start, ast.UnaryNot)
	case token.Tilde:
		p.advance()
		return p.finishUnary(start, ast.UnaryBitNot)
	case token.KwRef:
		p.advance()
		return p.finishPrefix(start, ast.ExprRef)
	case token.KwMove:
		p.advance()
		return p.finishPrefix(start, ast.ExprMove)
	case token.KwAwait:
		p.advance()
		return p.finishPrefix(start, ast.ExprAwait)
	case token.KwMut:
		save := p.lx.Save()
		last, prev := p.lastSpan, p.prev
		p.advance()
		if p.at(token.KwRef) {
			p.advance()
			return p.finishPrefix(start, ast.ExprMutRef)
		}
		p.lx.Restore(save)
		p.lastSpan, p.prev = last, prev
	}

	expr := p.parsePrimary()
	if !expr.IsValid() {
		return expr
	}

	for p.atOr(token.LParen, token.LBracket, token.Dot, token.ColonColon,
		token.Question, token.KwAs) {
		expr = p.parsePostfix(expr)
	}
	return expr
}

func (p *Parser) finishUnary(start source.Span, op ast.UnaryOp) ast.ExprID {
	operand := p.parseUnary()
	if !operand.IsValid() {
		return operand
	}
	return p.arenas.Exprs.NewUnary(start.Cover(p.exprSpan(operand)), op, operand)
}

func (p *Parser) finishPrefix(start source.Span, kind ast.ExprKind) ast.ExprID {
	operand := p.parseUnary()
	if !operand.IsValid() {
		return operand
	}
	return p.arenas.Exprs.NewPrefix(kind, start.Cover(p.exprSpan(operand)), operand)
}
