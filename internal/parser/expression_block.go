package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/token"
)

// parseBlockExpr parses `{ stmts }` as an expression. Value position is
// recorded in the statement list; the tail slot stays empty for later
// stages to fill in.
func (p *Parser) parseBlockExpr() ast.ExprID {
	start := p.lx.Peek().Span
	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'")

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if stmt, ok := p.parseStatement(); ok {
			stmts = append(stmts, stmt)
		}
	}

	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}'")
	return p.arenas.Exprs.NewBlock(start.Cover(p.lastSpan), stmts, ast.NoExprID)
}

func (p *Parser) parseIfExpr() ast.ExprID {
	start := p.lx.Peek().Span
	p.expect(token.KwIf, diag.SynUnexpectedToken, "expected 'if'")

	cond := p.parseExpr()
	then := p.parseBlockExpr()

	els := ast.NoExprID
	if p.match(token.KwElse) {
		if p.at(token.KwIf) {
			els = p.parseIfExpr()
		} else {
			els = p.parseBlockExpr()
		}
	}

	return p.arenas.Exprs.NewIf(start.Cover(p.lastSpan), cond, then, els)
}

func (p *Parser) parseMatchExpr() ast.ExprID {
	start := p.lx.Peek().Span
	p.expect(token.KwMatch, diag.SynUnexpectedToken, "expected 'match'")

	scrutinee := p.parseExpr()
	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' in match expression")

	var arms []ast.MatchArm
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		arms = append(arms, p.parseMatchArm())
		p.match(token.Comma)
	}

	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after match arms")
	return p.arenas.Exprs.NewMatch(start.Cover(p.lastSpan), scrutinee, arms)
}

func (p *Parser) parseClosureExpr() ast.ExprID {
	start := p.lx.Peek().Span
	p.expect(token.Pipe, diag.SynUnexpectedToken, "expected '|' for closure")

	var params []ast.ClosureParam
	for !p.at(token.Pipe) && !p.at(token.EOF) {
		nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected parameter name")
		param := ast.ClosureParam{
			Name: p.intern(nameTok.Text),
			Span: nameTok.Span,
		}
		if p.match(token.Colon) {
			param.Type = p.parseType()
			param.Span = param.Span.Cover(p.lastSpan)
		}
		params = append(params, param)
		if !p.match(token.Comma) {
			break
		}
	}
	p.expect(token.Pipe, diag.SynUnexpectedToken, "expected '|' after closure parameters")

	ret := ast.NoTypeID
	if p.match(token.Arrow) {
		ret = p.parseType()
	}

	body := p.parseBlockExpr()

	return p.arenas.Exprs.NewClosure(start.Cover(p.lastSpan), params, ret, body, false)
}
