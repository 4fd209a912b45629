package parser

import (
	"slices"

	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// advance consumes the next token and remembers its span and kind for
// diagnostics and recovery.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	p.prev = tok.Kind
	return tok
}

// match consumes the next token only when it has the given kind.
func (p *Parser) match(k token.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or reports an error built
// as `msg, got '<text>'`. On failure the offending token is left in
// the stream so the caller's recovery can see it.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.report(code, diag.SevError, p.diagnosticSpan(), msg+", got '"+p.lx.Peek().Text+"'")
	return p.lx.Peek(), false
}

func (p *Parser) expectSemicolon() (token.Token, bool) {
	return p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';'")
}

// err reports an error at the best current span.
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, diag.SevError, p.diagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if !p.opts.Enough() {
		p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
	}
}

// diagnosticSpan prefers the upcoming token's span; at EOF it points
// just past the last consumed token.
func (p *Parser) diagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if (peek.Kind == token.EOF || peek.Kind == token.Invalid) && peek.Span.Empty() {
		if p.lastSpan.End > 0 {
			return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
		}
	}
	return peek.Span
}

func (p *Parser) intern(text string) source.StringID {
	return p.arenas.Interner.Intern(text)
}

// parsePath reads a :: separated identifier path (module and import
// declarations).
func (p *Parser) parsePath() []source.StringID {
	var segments []source.StringID

	tok, _ := p.expect(token.Ident, diag.SynExpectModulePath, "expected identifier in path")
	segments = append(segments, p.intern(tok.Text))

	for p.match(token.ColonColon) {
		tok, _ = p.expect(token.Ident, diag.SynExpectModulePath, "expected identifier after '::'")
		segments = append(segments, p.intern(tok.Text))
	}
	return segments
}

// exprSpan returns the span of an expression node, or the last
// consumed span when the ID is invalid.
func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if node := p.arenas.Exprs.Get(id); node != nil {
		return node.Span
	}
	return p.lastSpan
}
