package parser

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/lexer"
	"flux/internal/source"
	"flux/internal/token"
)

// Options controls error limits and reporting for one parse.
type Options struct {
	Trace         bool
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result carries the parsed file root and, when the reporter writes
// into a bag, that bag.
type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser consumes one token stream and builds arena nodes. It never
// stops at the first error; failed constructs are skipped and parsing
// resumes at the next statement or declaration boundary.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span
	prev     token.Kind
}

// ParseFile parses one file top to bottom. The lexer must be fresh,
// positioned at the first token of the file.
func ParseFile(fs *source.FileSet, lx *lexer.Lexer, arenas *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		fs:       fs,
		opts:     opts,
		lastSpan: lx.Peek().Span,
	}
	p.file = arenas.NewFile(lx.Peek().Span)

	p.parseFileBody()

	var bag *diag.Bag
	switch r := opts.Reporter.(type) {
	case diag.BagReporter:
		bag = r.Bag
	case *diag.BagReporter:
		bag = r.Bag
	}
	return Result{File: p.file, Bag: bag}
}

// parseFileBody: optional module declaration, then imports, then
// declarations until EOF. A declaration that fails to parse skips one
// token so the loop always makes progress.
func (p *Parser) parseFileBody() {
	start := p.lx.Peek().Span

	if p.at(token.KwModule) {
		p.arenas.PushDecl(p.file, p.parseModuleDecl())
	}
	for p.at(token.KwImport) {
		p.arenas.PushDecl(p.file, p.parseImportDecl())
	}

	for !p.at(token.EOF) {
		decl, ok := p.parseDeclaration(ast.VisPrivate)
		if ok {
			p.arenas.PushDecl(p.file, decl)
		} else if !p.at(token.EOF) {
			p.advance()
		}
	}

	p.arenas.Files.Get(p.file).Span = start.Cover(p.lastSpan)
}

// parseDeclaration dispatches on the leading token. Visibility
// modifiers recurse with the adjusted visibility.
func (p *Parser) parseDeclaration(vis ast.Visibility) (ast.DeclID, bool) {
	p.skipAnnotations()

	switch p.lx.Peek().Kind {
	case token.KwFunc:
		return p.parseFuncDecl(vis, false), true
	case token.KwAsync:
		p.advance()
		return p.parseFuncDecl(vis, true), true
	case token.KwStruct:
		return p.parseStructDecl(vis), true
	case token.KwClass:
		return p.parseClassDecl(vis), true
	case token.KwEnum:
		return p.parseEnumDecl(vis), true
	case token.KwTrait:
		return p.parseTraitDecl(vis), true
	case token.KwImpl:
		return p.parseImplDecl(), true
	case token.KwType:
		return p.parseTypeAliasDecl(vis), true
	case token.KwPub, token.KwPublic:
		p.advance()
		return p.parseDeclaration(ast.VisPublic)
	case token.KwPrivate:
		p.advance()
		return p.parseDeclaration(ast.VisPrivate)
	case token.KwLet, token.KwConst:
		p.err(diag.SynUnexpectedTopLevel,
			"top-level let/const statements are not yet supported outside functions")
		p.synchronize()
		return ast.NoDeclID, false
	default:
		p.err(diag.SynUnexpectedTopLevel,
			"expected declaration (func, struct, class, enum, trait, impl, type)")
		p.synchronize()
		return ast.NoDeclID, false
	}
}

// skipAnnotations consumes annotation markers and their parenthesized
// arguments. Annotations are not attached to declarations yet.
func (p *Parser) skipAnnotations() {
	for p.atOr(token.At, token.KwDoc, token.KwDeprecated, token.KwTest, token.Hash, token.HashBang) {
		p.advance()
		if p.at(token.LParen) {
			p.advance()
			depth := 1
			for depth > 0 && !p.at(token.EOF) {
				switch p.lx.Peek().Kind {
				case token.LParen:
					depth++
				case token.RParen:
					depth--
				}
				p.advance()
			}
		}
	}
}

// synchronize skips tokens until a statement or declaration boundary:
// just past a semicolon, or right before a keyword that starts one.
func (p *Parser) synchronize() {
	for !p.at(token.EOF) {
		if p.prev == token.Semicolon {
			return
		}
		switch p.lx.Peek().Kind {
		case token.KwFunc, token.KwLet, token.KwConst, token.KwStruct,
			token.KwClass, token.KwEnum, token.KwTrait, token.KwImpl,
			token.KwReturn, token.KwIf, token.KwFor, token.KwWhile,
			token.KwLoop, token.KwModule, token.KwImport:
			return
		default:
			p.advance()
		}
	}
}
