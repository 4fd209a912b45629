package sema

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/symbols"
)

func (r *Resolver) resolveExpr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	expr := r.b.Exprs.Get(id)
	if expr == nil {
		return
	}

	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := r.b.Exprs.Ident(id)
		name := r.name(data.Name)
		if name == "_" {
			return
		}
		sym, ok := r.table.Lookup(r.current, data.Name)
		if !ok {
			r.errorAt(diag.SemaUndeclared, expr.Span,
				"use of undeclared identifier '"+name+"'")
			return
		}
		r.uses[id] = sym

	case ast.ExprPath:
		// Cross-module and constructor paths bind in later phases.

	case ast.ExprBinary:
		data, _ := r.b.Exprs.Binary(id)
		r.resolveExpr(data.LHS)
		r.resolveExpr(data.RHS)

	case ast.ExprUnary:
		data, _ := r.b.Exprs.Unary(id)
		r.resolveExpr(data.Operand)

	case ast.ExprCall:
		data, _ := r.b.Exprs.Call(id)
		r.resolveExpr(data.Callee)
		for _, arg := range data.Args {
			r.resolveExpr(arg)
		}

	case ast.ExprMethodCall:
		data, _ := r.b.Exprs.MethodCall(id)
		r.resolveExpr(data.Object)
		for _, arg := range data.Args {
			r.resolveExpr(arg)
		}

	case ast.ExprMemberAccess:
		data, _ := r.b.Exprs.MemberAccess(id)
		r.resolveExpr(data.Object)

	case ast.ExprIndex:
		data, _ := r.b.Exprs.Index(id)
		r.resolveExpr(data.Object)
		r.resolveExpr(data.Index)

	case ast.ExprCast:
		data, _ := r.b.Exprs.Cast(id)
		r.resolveExpr(data.Value)

	case ast.ExprBlock:
		data, _ := r.b.Exprs.Block(id)
		r.enter(symbols.ScopeBlockExpr, source.NoStringID, expr.Span)
		for _, stmt := range data.Stmts {
			r.resolveStmt(stmt)
		}
		r.resolveExpr(data.Tail)
		r.leave()

	case ast.ExprIf:
		data, _ := r.b.Exprs.If(id)
		r.resolveExpr(data.Cond)
		r.resolveExpr(data.Then)
		r.resolveExpr(data.Else)

	case ast.ExprMatch:
		data, _ := r.b.Exprs.Match(id)
		r.resolveExpr(data.Scrutinee)
		for _, arm := range data.Arms {
			r.resolveMatchArm(arm)
		}

	case ast.ExprClosure:
		data, _ := r.b.Exprs.Closure(id)
		r.enter(symbols.ScopeClosure, source.NoStringID, expr.Span)
		for _, param := range data.Params {
			r.declare(&symbols.Symbol{Name: param.Name, Kind: symbols.SymbolVariable,
				Span: param.Span, TypeName: r.typeNameID(param.Type),
				Origin: symbols.SymbolOrigin{Expr: id}})
		}
		r.resolveExpr(data.Body)
		r.leave()

	case ast.ExprConstruct:
		data, _ := r.b.Exprs.Construct(id)
		for _, field := range data.Fields {
			r.resolveExpr(field.Value)
		}

	case ast.ExprStructLit:
		data, _ := r.b.Exprs.StructLit(id)
		for _, field := range data.Fields {
			r.resolveExpr(field.Value)
		}

	case ast.ExprTuple:
		data, _ := r.b.Exprs.Tuple(id)
		for _, elem := range data.Elements {
			r.resolveExpr(elem)
		}

	case ast.ExprArray:
		data, _ := r.b.Exprs.Array(id)
		for _, elem := range data.Elements {
			r.resolveExpr(elem)
		}

	case ast.ExprRange:
		data, _ := r.b.Exprs.Range(id)
		r.resolveExpr(data.Start)
		r.resolveExpr(data.End)

	case ast.ExprRef, ast.ExprMutRef, ast.ExprMove, ast.ExprAwait, ast.ExprTry:
		data, _ := r.b.Exprs.Prefix(id)
		r.resolveExpr(data.Operand)

	case ast.ExprAssign:
		data, _ := r.b.Exprs.Assign(id)
		r.resolveExpr(data.Target)
		r.resolveExpr(data.Value)

	case ast.ExprCompoundAssign:
		data, _ := r.b.Exprs.CompoundAssign(id)
		r.resolveExpr(data.Target)
		r.resolveExpr(data.Value)
	}
	// Literals reference no names.
}

// resolveMatchArm opens one scope per arm, binds the names the pattern
// introduces, then walks the guard and the body.
func (r *Resolver) resolveMatchArm(arm ast.MatchArm) {
	r.enter(symbols.ScopeMatchArm, source.NoStringID, arm.Span)
	r.bindPattern(arm.Pattern)
	r.resolveExpr(arm.Guard)
	r.resolveExpr(arm.Body)
	r.leave()
}

// bindPattern declares every identifier the pattern binds in the
// current scope. Wildcards and literals bind nothing; constructor
// paths name variants, not bindings.
func (r *Resolver) bindPattern(id ast.PatternID) {
	pat := r.b.Patterns.Get(id)
	if pat == nil {
		return
	}

	switch pat.Kind {
	case ast.PatIdent:
		data, _ := r.b.Patterns.Ident(id)
		if r.name(data.Name) == "_" {
			return
		}
		flags := symbols.SymbolFlags(0)
		if data.Mutable {
			flags |= symbols.SymbolFlagMutable
		}
		r.declare(&symbols.Symbol{Name: data.Name, Kind: symbols.SymbolVariable,
			Span: pat.Span, Flags: flags})

	case ast.PatTuple:
		data, _ := r.b.Patterns.Tuple(id)
		for _, elem := range data.Elements {
			r.bindPattern(elem)
		}

	case ast.PatConstructor:
		data, _ := r.b.Patterns.Constructor(id)
		for _, elem := range data.Positional {
			r.bindPattern(elem)
		}
		for _, field := range data.Named {
			r.bindPattern(field.Pattern)
		}

	case ast.PatOr:
		// Alternatives bind the same names; the first is representative.
		data, _ := r.b.Patterns.Or(id)
		if len(data.Alternatives) > 0 {
			r.bindPattern(data.Alternatives[0])
		}
	}
}
