package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/token"
)

func (p *Parser) parseIfStmt() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.KwIf, diag.SynUnexpectedToken, "expected 'if'")

	cond := p.parseExpr()
	then := p.parseBlock()

	els := ast.NoStmtID
	if p.match(token.KwElse) {
		if p.at(token.KwIf) {
			els = p.parseIfStmt()
		} else {
			els = p.parseBlock()
		}
	}

	return p.arenas.Stmts.NewIf(start.Cover(p.lastSpan), cond, then, els)
}

func (p *Parser) parseMatchStmt() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.KwMatch, diag.SynUnexpectedToken, "expected 'match'")

	scrutinee := p.parseExpr()
	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{' in match statement")

	var arms []ast.MatchArm
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		arms = append(arms, p.parseMatchArm())
		// The comma between arms is optional.
		p.match(token.Comma)
	}

	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}' after match arms")
	return p.arenas.Stmts.NewMatch(start.Cover(p.lastSpan), scrutinee, arms)
}

func (p *Parser) parseMatchArm() ast.MatchArm {
	arm := ast.MatchArm{Span: p.lx.Peek().Span}
	arm.Pattern = p.parsePattern()

	if p.match(token.KwIf) {
		arm.Guard = p.parseExpr()
	}

	p.expect(token.FatArrow, diag.SynExpectMatchArm, "expected '=>' in match arm")

	if p.at(token.LBrace) {
		arm.Body = p.parseBlockExpr()
	} else {
		arm.Body = p.parseExpr()
	}

	arm.Span = arm.Span.Cover(p.lastSpan)
	return arm
}

func (p *Parser) parseForStmt() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.KwFor, diag.SynUnexpectedToken, "expected 'for'")

	varTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected loop variable name")
	name := p.intern(varTok.Text)

	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after loop variable name")
	varType := p.parseType()

	p.expect(token.KwIn, diag.SynForMissingIn, "expected 'in' in for loop")
	iterable := p.parseExpr()

	body := p.parseBlock()

	return p.arenas.Stmts.NewFor(start.Cover(p.lastSpan), name, varType, iterable, body)
}

func (p *Parser) parseWhileStmt() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.KwWhile, diag.SynUnexpectedToken, "expected 'while'")

	cond := p.parseExpr()
	body := p.parseBlock()

	return p.arenas.Stmts.NewWhile(start.Cover(p.lastSpan), cond, body)
}

func (p *Parser) parseLoopStmt() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.KwLoop, diag.SynUnexpectedToken, "expected 'loop'")

	body := p.parseBlock()

	return p.arenas.Stmts.NewLoop(start.Cover(p.lastSpan), body)
}
