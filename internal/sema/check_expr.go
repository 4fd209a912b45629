package sema

import (
	"flux/internal/ast"
	"flux/internal/diag"
)

// checkExpr returns the rendered type of the expression, or "" when it
// cannot be determined. An empty result suppresses downstream checks
// rather than cascading errors.
func (c *Checker) checkExpr(id ast.ExprID) string {
	if !id.IsValid() {
		return ""
	}
	expr := c.b.Exprs.Get(id)
	if expr == nil {
		return ""
	}

	switch expr.Kind {
	case ast.ExprIntLit:
		return "Int64"
	case ast.ExprFloatLit:
		return "Float64"
	case ast.ExprStringLit:
		return "String"
	case ast.ExprCharLit:
		return "Char"
	case ast.ExprBoolLit:
		return "Bool"

	case ast.ExprIdent:
		sym, ok := c.uses[id]
		if !ok {
			return ""
		}
		return c.symbolTypeText(sym)

	case ast.ExprBinary:
		data, _ := c.b.Exprs.Binary(id)
		lhs := c.checkExpr(data.LHS)
		rhs := c.checkExpr(data.RHS)
		if data.Op.IsComparison() || data.Op.IsLogical() {
			return "Bool"
		}
		if lhs != "" && rhs != "" &&
			!typesCompatible(lhs, rhs) && !typesCompatible(rhs, lhs) {
			c.errorAt(diag.SemaBinaryMismatch, expr.Span,
				"binary expression type mismatch: '"+lhs+"' vs '"+rhs+"'")
		}
		if lhs != "" {
			return lhs
		}
		return rhs

	case ast.ExprUnary:
		data, _ := c.b.Exprs.Unary(id)
		operand := c.checkExpr(data.Operand)
		if data.Op == ast.UnaryNot {
			return "Bool"
		}
		return operand

	case ast.ExprCall:
		data, _ := c.b.Exprs.Call(id)
		c.checkExpr(data.Callee)
		for _, arg := range data.Args {
			c.checkExpr(arg)
		}
		return ""

	case ast.ExprMethodCall:
		data, _ := c.b.Exprs.MethodCall(id)
		c.checkExpr(data.Object)
		for _, arg := range data.Args {
			c.checkExpr(arg)
		}
		return ""

	case ast.ExprMemberAccess:
		data, _ := c.b.Exprs.MemberAccess(id)
		c.checkExpr(data.Object)
		return ""

	case ast.ExprIndex:
		data, _ := c.b.Exprs.Index(id)
		c.checkExpr(data.Object)
		c.checkExpr(data.Index)
		return ""

	case ast.ExprCast:
		data, _ := c.b.Exprs.Cast(id)
		c.checkExpr(data.Value)
		return ""

	case ast.ExprBlock:
		data, _ := c.b.Exprs.Block(id)
		for _, stmt := range data.Stmts {
			c.checkStmt(stmt)
		}
		return c.checkExpr(data.Tail)

	case ast.ExprIf:
		data, _ := c.b.Exprs.If(id)
		c.checkCondition(data.Cond)
		c.checkExpr(data.Then)
		c.checkExpr(data.Else)
		return ""

	case ast.ExprMatch:
		data, _ := c.b.Exprs.Match(id)
		c.checkExpr(data.Scrutinee)
		for _, arm := range data.Arms {
			c.checkCondition(arm.Guard)
			c.checkExpr(arm.Body)
		}
		return ""

	case ast.ExprClosure:
		data, _ := c.b.Exprs.Closure(id)
		c.checkExpr(data.Body)
		return "(func)"

	case ast.ExprConstruct:
		data, _ := c.b.Exprs.Construct(id)
		for _, field := range data.Fields {
			c.checkExpr(field.Value)
		}
		return ""

	case ast.ExprStructLit:
		data, _ := c.b.Exprs.StructLit(id)
		for _, field := range data.Fields {
			c.checkExpr(field.Value)
		}
		return ""

	case ast.ExprTuple:
		data, _ := c.b.Exprs.Tuple(id)
		for _, elem := range data.Elements {
			c.checkExpr(elem)
		}
		return "(tuple)"

	case ast.ExprArray:
		data, _ := c.b.Exprs.Array(id)
		for _, elem := range data.Elements {
			c.checkExpr(elem)
		}
		return ""

	case ast.ExprRange:
		data, _ := c.b.Exprs.Range(id)
		c.checkExpr(data.Start)
		c.checkExpr(data.End)
		return ""

	case ast.ExprRef, ast.ExprMutRef, ast.ExprMove, ast.ExprAwait, ast.ExprTry:
		data, _ := c.b.Exprs.Prefix(id)
		c.checkExpr(data.Operand)
		return ""

	case ast.ExprAssign:
		data, _ := c.b.Exprs.Assign(id)
		target := c.checkExpr(data.Target)
		value := c.checkExpr(data.Value)
		if target != "" && value != "" && !typesCompatible(target, value) {
			c.errorAt(diag.SemaTypeMismatch, expr.Span,
				"type mismatch: expected '"+target+"', got '"+value+"'")
		}
		return ""

	case ast.ExprCompoundAssign:
		data, _ := c.b.Exprs.CompoundAssign(id)
		c.checkExpr(data.Target)
		c.checkExpr(data.Value)
		return ""
	}
	return ""
}
