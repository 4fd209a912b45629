package ast

import (
	"flux/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Lets    *Arena[StmtLetData]
	Consts  *Arena[StmtConstData]
	Returns *Arena[StmtReturnData]
	Ifs     *Arena[StmtIfData]
	Matches *Arena[StmtMatchData]
	Fors    *Arena[StmtForData]
	Whiles  *Arena[StmtWhileData]
	Loops   *Arena[StmtLoopData]
	Blocks  *Arena[StmtBlockData]
	Exprs   *Arena[StmtExprData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Lets:    NewArena[StmtLetData](capHint),
		Consts:  NewArena[StmtConstData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Ifs:     NewArena[StmtIfData](capHint),
		Matches: NewArena[StmtMatchData](capHint),
		Fors:    NewArena[StmtForData](capHint),
		Whiles:  NewArena[StmtWhileData](capHint),
		Loops:   NewArena[StmtLoopData](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewLet creates a let statement.
func (s *Stmts) NewLet(span source.Span, name source.StringID, typ TypeID, init ExprID, mutable bool) StmtID {
	payload := s.Lets.Allocate(StmtLetData{
		Name:    name,
		Type:    typ,
		Init:    init,
		Mutable: mutable,
	})
	return s.new(StmtLet, span, PayloadID(payload))
}

func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

// NewConst creates a const statement.
func (s *Stmts) NewConst(span source.Span, name source.StringID, typ TypeID, value ExprID) StmtID {
	payload := s.Consts.Allocate(StmtConstData{Name: name, Type: typ, Value: value})
	return s.new(StmtConst, span, PayloadID(payload))
}

func (s *Stmts) Const(id StmtID) (*StmtConstData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtConst {
		return nil, false
	}
	return s.Consts.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a return statement; value is NoExprID for bare
// returns.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewIf creates an if statement.
func (s *Stmts) NewIf(span source.Span, cond ExprID, then, els StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: els})
	return s.new(StmtIf, span, PayloadID(payload))
}

func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewMatch creates a match statement.
func (s *Stmts) NewMatch(span source.Span, scrutinee ExprID, arms []MatchArm) StmtID {
	payload := s.Matches.Allocate(StmtMatchData{
		Scrutinee: scrutinee,
		Arms:      append([]MatchArm(nil), arms...),
	})
	return s.new(StmtMatch, span, PayloadID(payload))
}

func (s *Stmts) Match(id StmtID) (*StmtMatchData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtMatch {
		return nil, false
	}
	return s.Matches.Get(uint32(stmt.Payload)), true
}

// NewFor creates a for-in statement.
func (s *Stmts) NewFor(span source.Span, name source.StringID, varType TypeID, iterable ExprID, body StmtID) StmtID {
	payload := s.Fors.Allocate(StmtForData{
		Var:      name,
		VarType:  varType,
		Iterable: iterable,
		Body:     body,
	})
	return s.new(StmtFor, span, PayloadID(payload))
}

func (s *Stmts) For(id StmtID) (*StmtForData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFor {
		return nil, false
	}
	return s.Fors.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a while statement.
func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewLoop creates an infinite loop statement.
func (s *Stmts) NewLoop(span source.Span, body StmtID) StmtID {
	payload := s.Loops.Allocate(StmtLoopData{Body: body})
	return s.new(StmtLoop, span, PayloadID(payload))
}

func (s *Stmts) Loop(id StmtID) (*StmtLoopData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLoop {
		return nil, false
	}
	return s.Loops.Get(uint32(stmt.Payload)), true
}

// NewBreak creates a break statement.
func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

// NewContinue creates a continue statement.
func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.new(StmtContinue, span, NoPayloadID)
}

// NewBlock creates a block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{
		Stmts: append([]StmtID(nil), stmts...),
	})
	return s.new(StmtBlock, span, PayloadID(payload))
}

func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}
