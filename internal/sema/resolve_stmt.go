package sema

import (
	"flux/internal/ast"
	"flux/internal/source"
	"flux/internal/symbols"
)

func (r *Resolver) resolveStmt(id ast.StmtID) {
	stmt := r.b.Stmts.Get(id)
	if stmt == nil {
		return
	}

	switch stmt.Kind {
	case ast.StmtLet:
		data, _ := r.b.Stmts.Let(id)
		// The initializer is resolved before the name is bound, so
		// `let x = x + 1;` refers to the outer x.
		r.resolveExpr(data.Init)
		flags := symbols.SymbolFlags(0)
		if data.Mutable {
			flags |= symbols.SymbolFlagMutable
		}
		r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolVariable,
			Span: stmt.Span, Flags: flags, TypeName: r.typeNameID(data.Type),
			Origin: symbols.SymbolOrigin{Stmt: id}})

	case ast.StmtConst:
		data, _ := r.b.Stmts.Const(id)
		r.resolveExpr(data.Value)
		r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolConstant,
			Span: stmt.Span, TypeName: r.typeNameID(data.Type),
			Origin: symbols.SymbolOrigin{Stmt: id}})

	case ast.StmtReturn:
		data, _ := r.b.Stmts.Return(id)
		r.resolveExpr(data.Value)

	case ast.StmtIf:
		data, _ := r.b.Stmts.If(id)
		r.resolveExpr(data.Cond)
		r.resolveStmt(data.Then)
		r.resolveStmt(data.Else)

	case ast.StmtMatch:
		data, _ := r.b.Stmts.Match(id)
		r.resolveExpr(data.Scrutinee)
		for _, arm := range data.Arms {
			r.resolveMatchArm(arm)
		}

	case ast.StmtFor:
		data, _ := r.b.Stmts.For(id)
		r.resolveExpr(data.Iterable)
		r.enter(symbols.ScopeFor, data.Var, stmt.Span)
		r.declare(&symbols.Symbol{Name: data.Var, Kind: symbols.SymbolVariable,
			Span: stmt.Span, TypeName: r.typeNameID(data.VarType),
			Origin: symbols.SymbolOrigin{Stmt: id}})
		r.resolveStmt(data.Body)
		r.leave()

	case ast.StmtWhile:
		data, _ := r.b.Stmts.While(id)
		r.resolveExpr(data.Cond)
		r.resolveStmt(data.Body)

	case ast.StmtLoop:
		data, _ := r.b.Stmts.Loop(id)
		r.resolveStmt(data.Body)

	case ast.StmtBlock:
		data, _ := r.b.Stmts.Block(id)
		r.enter(symbols.ScopeBlock, source.NoStringID, stmt.Span)
		for _, inner := range data.Stmts {
			r.resolveStmt(inner)
		}
		r.leave()

	case ast.StmtExpr:
		data, _ := r.b.Stmts.Expr(id)
		r.resolveExpr(data.Expr)
	}
	// Break and continue reference no names.
}
