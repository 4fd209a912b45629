package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/token"
)

// parseStatement dispatches on the leading token. A failed expression
// statement resynchronizes and reports false so blocks can skip it.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwLet:
		return p.parseLetStmt(), true
	case token.KwConst:
		return p.parseConstStmt(), true
	case token.KwReturn:
		return p.parseReturnStmt(), true
	case token.KwIf:
		return p.parseIfStmt(), true
	case token.KwMatch:
		return p.parseMatchStmt(), true
	case token.KwFor:
		return p.parseForStmt(), true
	case token.KwWhile:
		return p.parseWhileStmt(), true
	case token.KwLoop:
		return p.parseLoopStmt(), true
	case token.KwBreak:
		start := p.advance().Span
		p.expectSemicolon()
		return p.arenas.Stmts.NewBreak(start.Cover(p.lastSpan)), true
	case token.KwContinue:
		start := p.advance().Span
		p.expectSemicolon()
		return p.arenas.Stmts.NewContinue(start.Cover(p.lastSpan)), true
	case token.LBrace:
		return p.parseBlock(), true
	}

	start := p.lx.Peek().Span
	expr := p.parseExpr()
	if !expr.IsValid() {
		p.synchronize()
		return ast.NoStmtID, false
	}
	p.expectSemicolon()
	return p.arenas.Stmts.NewExpr(start.Cover(p.lastSpan), expr), true
}

func (p *Parser) parseLetStmt() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.KwLet, diag.SynUnexpectedToken, "expected 'let'")

	mutable := p.match(token.KwMut)

	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected variable name")
	name := p.intern(nameTok.Text)

	p.expect(token.Colon, diag.SynExpectColon,
		"expected ':' after variable name (Flux requires explicit types)")
	typ := p.parseType()

	init := ast.NoExprID
	if p.match(token.Equal) {
		init = p.parseExpr()
	}

	p.expectSemicolon()
	return p.arenas.Stmts.NewLet(start.Cover(p.lastSpan), name, typ, init, mutable)
}

func (p *Parser) parseConstStmt() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.KwConst, diag.SynUnexpectedToken, "expected 'const'")

	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected constant name")
	name := p.intern(nameTok.Text)

	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after constant name")
	typ := p.parseType()

	p.expect(token.Equal, diag.SynUnexpectedToken, "expected '=' in constant declaration")
	value := p.parseExpr()

	p.expectSemicolon()
	return p.arenas.Stmts.NewConst(start.Cover(p.lastSpan), name, typ, value)
}

func (p *Parser) parseReturnStmt() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.KwReturn, diag.SynUnexpectedToken, "expected 'return'")

	value := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) {
		value = p.parseExpr()
	}

	p.expectSemicolon()
	return p.arenas.Stmts.NewReturn(start.Cover(p.lastSpan), value)
}

func (p *Parser) parseBlock() ast.StmtID {
	start := p.lx.Peek().Span
	p.expect(token.LBrace, diag.SynExpectLBrace, "expected '{'")

	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if stmt, ok := p.parseStatement(); ok {
			stmts = append(stmts, stmt)
		}
	}

	p.expect(token.RBrace, diag.SynExpectRBrace, "expected '}'")
	return p.arenas.Stmts.NewBlock(start.Cover(p.lastSpan), stmts)
}
