package ast

import (
	"flux/internal/source"
)

// StmtKind enumerates the different kinds of statements.
type StmtKind uint8

const (
	StmtLet StmtKind = iota
	StmtConst
	StmtReturn
	StmtIf
	StmtMatch
	StmtFor
	StmtWhile
	StmtLoop
	StmtBreak
	StmtContinue
	StmtBlock
	StmtExpr
)

var stmtKindNames = [...]string{
	StmtLet:      "Let",
	StmtConst:    "Const",
	StmtReturn:   "Return",
	StmtIf:       "If",
	StmtMatch:    "Match",
	StmtFor:      "For",
	StmtWhile:    "While",
	StmtLoop:     "Loop",
	StmtBreak:    "Break",
	StmtContinue: "Continue",
	StmtBlock:    "Block",
	StmtExpr:     "Expr",
}

func (k StmtKind) String() string {
	if int(k) < len(stmtKindNames) {
		return stmtKindNames[k]
	}
	return "Unknown"
}

// Stmt is the uniform statement header. Break and continue carry no
// payload.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtLetData: the type annotation is required in the language, so Type
// is always valid for parser-produced nodes. Init may be NoExprID.
type StmtLetData struct {
	Name    source.StringID
	Type    TypeID
	Init    ExprID
	Mutable bool
}

type StmtConstData struct {
	Name  source.StringID
	Type  TypeID
	Value ExprID
}

type StmtReturnData struct {
	Value ExprID
}

// StmtIfData: Else is NoStmtID when absent, another If for else-if
// chains, or a Block.
type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

type StmtMatchData struct {
	Scrutinee ExprID
	Arms      []MatchArm
}

type StmtForData struct {
	Var      source.StringID
	VarType  TypeID
	Iterable ExprID
	Body     StmtID
}

type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

type StmtLoopData struct {
	Body StmtID
}

type StmtBlockData struct {
	Stmts []StmtID
}

type StmtExprData struct {
	Expr ExprID
}
