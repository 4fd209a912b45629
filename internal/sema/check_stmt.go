package sema

import (
	"flux/internal/ast"
	"flux/internal/diag"
)

func (c *Checker) checkStmt(id ast.StmtID) {
	stmt := c.b.Stmts.Get(id)
	if stmt == nil {
		return
	}

	switch stmt.Kind {
	case ast.StmtLet:
		data, _ := c.b.Stmts.Let(id)
		initType := c.checkExpr(data.Init)
		if data.Type.IsValid() {
			text := typeText(c.b, data.Type)
			if !c.knownType(text) {
				c.errorAt(diag.SemaUnknownType, stmt.Span,
					"unknown type '"+text+"' in let binding")
			}
			if initType != "" && !typesCompatible(text, initType) {
				c.errorAt(diag.SemaTypeMismatch, stmt.Span,
					"type mismatch: expected '"+text+"', got '"+initType+"'")
			}
		} else {
			c.errorAt(diag.SemaMissingAnnotation, stmt.Span,
				"variable '"+c.b.Interner.MustLookup(data.Name)+
					"' must have an explicit type annotation")
		}

	case ast.StmtConst:
		data, _ := c.b.Stmts.Const(id)
		valueType := c.checkExpr(data.Value)
		if data.Type.IsValid() {
			text := typeText(c.b, data.Type)
			if !c.knownType(text) {
				c.errorAt(diag.SemaUnknownType, stmt.Span,
					"unknown type '"+text+"' in const binding")
			}
			if valueType != "" && !typesCompatible(text, valueType) {
				c.errorAt(diag.SemaTypeMismatch, stmt.Span,
					"type mismatch: expected '"+text+"', got '"+valueType+"'")
			}
		} else {
			c.errorAt(diag.SemaMissingAnnotation, stmt.Span,
				"constant '"+c.b.Interner.MustLookup(data.Name)+
					"' must have an explicit type annotation")
		}

	case ast.StmtReturn:
		data, _ := c.b.Stmts.Return(id)
		if !data.Value.IsValid() {
			if c.currentReturn != "" && c.currentReturn != "Void" {
				c.errorAt(diag.SemaMissingReturn, stmt.Span,
					"non-void function must return a value")
			}
			return
		}
		valueType := c.checkExpr(data.Value)
		if valueType != "" && c.currentReturn != "" &&
			!typesCompatible(c.currentReturn, valueType) {
			c.errorAt(diag.SemaReturnMismatch, stmt.Span,
				"return type mismatch: expected '"+c.currentReturn+
					"', got '"+valueType+"'")
		}

	case ast.StmtIf:
		data, _ := c.b.Stmts.If(id)
		c.checkCondition(data.Cond)
		c.checkStmt(data.Then)
		c.checkStmt(data.Else)

	case ast.StmtMatch:
		data, _ := c.b.Stmts.Match(id)
		c.checkExpr(data.Scrutinee)
		for _, arm := range data.Arms {
			c.checkCondition(arm.Guard)
			c.checkExpr(arm.Body)
		}

	case ast.StmtFor:
		data, _ := c.b.Stmts.For(id)
		c.checkExpr(data.Iterable)
		c.checkStmt(data.Body)

	case ast.StmtWhile:
		data, _ := c.b.Stmts.While(id)
		c.checkCondition(data.Cond)
		c.checkStmt(data.Body)

	case ast.StmtLoop:
		data, _ := c.b.Stmts.Loop(id)
		c.checkStmt(data.Body)

	case ast.StmtBlock:
		data, _ := c.b.Stmts.Block(id)
		for _, inner := range data.Stmts {
			c.checkStmt(inner)
		}

	case ast.StmtExpr:
		data, _ := c.b.Stmts.Expr(id)
		c.checkExpr(data.Expr)
	}
	// Break and continue carry no types.
}

// checkCondition types the expression and requires Bool unless the
// type could not be determined.
func (c *Checker) checkCondition(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	condType := c.checkExpr(id)
	if condType != "" && condType != "Bool" {
		expr := c.b.Exprs.Get(id)
		c.errorAt(diag.SemaConditionNotBool, expr.Span,
			"condition must be of type 'Bool', got '"+condType+"'")
	}
}
