package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

// parsePostfix applies a single postfix operator to the expression.
// The caller loops while a postfix-starting token is next.
func (p *Parser) parsePostfix(left ast.ExprID) ast.ExprID {
	switch p.lx.Peek().Kind {
	case token.LParen:
		return p.parseCallArgs(left)
	case token.LBracket:
		return p.parseIndexExpr(left)
	case token.Dot:
		return p.parseMemberOrMethod(left)
	case token.ColonColon:
		return p.parsePathContinuation(left)
	case token.Question:
		p.advance()
		return p.arenas.Exprs.NewPrefix(ast.ExprTry,
			p.exprSpan(left).Cover(p.lastSpan), left)
	case token.KwAs:
		p.advance()
		target := p.parseType()
		return p.arenas.Exprs.NewCast(p.exprSpan(left).Cover(p.lastSpan), left, target)
	}
	return left
}

func (p *Parser) parseCallArgs(callee ast.ExprID) ast.ExprID {
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('")

	args := p.parseArgList()
	p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after arguments")

	return p.arenas.Exprs.NewCall(p.exprSpan(callee).Cover(p.lastSpan), callee, args)
}

func (p *Parser) parseIndexExpr(object ast.ExprID) ast.ExprID {
	p.expect(token.LBracket, diag.SynUnexpectedToken, "expected '['")
	index := p.parseExpr()
	p.expect(token.RBracket, diag.SynExpectRBracket, "expected ']'")

	return p.arenas.Exprs.NewIndex(p.exprSpan(object).Cover(p.lastSpan), object, index)
}

func (p *Parser) parseMemberOrMethod(object ast.ExprID) ast.ExprID {
	p.advance() // '.'

	memberTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected member name after '.'")
	member := p.intern(memberTok.Text)

	if p.at(token.LParen) {
		p.advance()
		args := p.parseArgList()
		p.expect(token.RParen, diag.SynExpectRParen, "expected ')' after method arguments")
		return p.arenas.Exprs.NewMethodCall(
			p.exprSpan(object).Cover(p.lastSpan), object, member, args)
	}

	return p.arenas.Exprs.NewMemberAccess(
		p.exprSpan(object).Cover(p.lastSpan), object, member)
}

// parsePathContinuation folds `::` segments onto an identifier or path
// expression. Any other base keeps only the new segments.
func (p *Parser) parsePathContinuation(left ast.ExprID) ast.ExprID {
	p.advance() // '::'

	var segments []source.StringID
	if data, ok := p.arenas.Exprs.Ident(left); ok {
		segments = append(segments, data.Name)
	} else if data, ok := p.arenas.Exprs.Path(left); ok {
		segments = append(segments, data.Segments...)
	}

	segTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier,
		"expected identifier after '::'")
	segments = append(segments, p.intern(segTok.Text))

	for p.match(token.ColonColon) {
		segTok, _ = p.expect(token.Ident, diag.SynExpectIdentifier,
			"expected identifier after '::'")
		segments = append(segments, p.intern(segTok.Text))
	}

	return p.arenas.Exprs.NewPath(p.exprSpan(left).Cover(p.lastSpan), segments)
}

func (p *Parser) parseArgList() []ast.ExprID {
	var args []ast.ExprID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg := p.parseExpr()
		if !arg.IsValid() {
			break
		}
		args = append(args, arg)
		if !p.match(token.Comma) {
			break
		}
	}
	return args
}
