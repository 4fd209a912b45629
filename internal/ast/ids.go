package ast

// PayloadID indexes a per-kind payload arena. Which arena it refers to
// depends on the node kind that carries it.
type PayloadID uint32

// NoPayloadID marks nodes whose kind has no payload (break, continue,
// wildcard patterns).
const NoPayloadID PayloadID = 0

func (id PayloadID) IsValid() bool { return id != NoPayloadID }

// FileID identifies a parsed source file root.
type FileID uint32

const NoFileID FileID = 0

func (id FileID) IsValid() bool { return id != NoFileID }

// DeclID identifies a top-level or nested declaration.
type DeclID uint32

const NoDeclID DeclID = 0

func (id DeclID) IsValid() bool { return id != NoDeclID }

// StmtID identifies a statement.
type StmtID uint32

const NoStmtID StmtID = 0

func (id StmtID) IsValid() bool { return id != NoStmtID }

// ExprID identifies an expression.
type ExprID uint32

const NoExprID ExprID = 0

func (id ExprID) IsValid() bool { return id != NoExprID }

// PatternID identifies a match pattern.
type PatternID uint32

const NoPatternID PatternID = 0

func (id PatternID) IsValid() bool { return id != NoPatternID }

// TypeID identifies a syntactic type annotation.
type TypeID uint32

const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }
