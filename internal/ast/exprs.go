package ast

import (
	"flux/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena           *Arena[Expr]
	Literals        *Arena[ExprLiteralData]
	Idents          *Arena[ExprIdentData]
	Paths           *Arena[ExprPathData]
	Binaries        *Arena[ExprBinaryData]
	Unaries         *Arena[ExprUnaryData]
	Calls           *Arena[ExprCallData]
	MethodCalls     *Arena[ExprMethodCallData]
	Members         *Arena[ExprMemberData]
	Indices         *Arena[ExprIndexData]
	Casts           *Arena[ExprCastData]
	Blocks          *Arena[ExprBlockData]
	Ifs             *Arena[ExprIfData]
	Matches         *Arena[ExprMatchData]
	Closures        *Arena[ExprClosureData]
	Constructs      *Arena[ExprConstructData]
	StructLits      *Arena[ExprStructLitData]
	Tuples          *Arena[ExprTupleData]
	Arrays          *Arena[ExprArrayData]
	Ranges          *Arena[ExprRangeData]
	Prefixes        *Arena[ExprPrefixData]
	Assigns         *Arena[ExprAssignData]
	CompoundAssigns *Arena[ExprCompoundAssignData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:           NewArena[Expr](capHint),
		Literals:        NewArena[ExprLiteralData](capHint),
		Idents:          NewArena[ExprIdentData](capHint),
		Paths:           NewArena[ExprPathData](capHint),
		Binaries:        NewArena[ExprBinaryData](capHint),
		Unaries:         NewArena[ExprUnaryData](capHint),
		Calls:           NewArena[ExprCallData](capHint),
		MethodCalls:     NewArena[ExprMethodCallData](capHint),
		Members:         NewArena[ExprMemberData](capHint),
		Indices:         NewArena[ExprIndexData](capHint),
		Casts:           NewArena[ExprCastData](capHint),
		Blocks:          NewArena[ExprBlockData](capHint),
		Ifs:             NewArena[ExprIfData](capHint),
		Matches:         NewArena[ExprMatchData](capHint),
		Closures:        NewArena[ExprClosureData](capHint),
		Constructs:      NewArena[ExprConstructData](capHint),
		StructLits:      NewArena[ExprStructLitData](capHint),
		Tuples:          NewArena[ExprTupleData](capHint),
		Arrays:          NewArena[ExprArrayData](capHint),
		Ranges:          NewArena[ExprRangeData](capHint),
		Prefixes:        NewArena[ExprPrefixData](capHint),
		Assigns:         NewArena[ExprAssignData](capHint),
		CompoundAssigns: NewArena[ExprCompoundAssignData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIntLit creates an integer literal expression.
func (e *Exprs) NewIntLit(span source.Span, value int64) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{IntVal: value})
	return e.new(ExprIntLit, span, PayloadID(payload))
}

// NewFloatLit creates a floating point literal expression.
func (e *Exprs) NewFloatLit(span source.Span, value float64) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{FloatVal: value})
	return e.new(ExprFloatLit, span, PayloadID(payload))
}

// NewStringLit creates a string literal expression.
func (e *Exprs) NewStringLit(span source.Span, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{StringVal: value})
	return e.new(ExprStringLit, span, PayloadID(payload))
}

// NewCharLit creates a character literal expression.
func (e *Exprs) NewCharLit(span source.Span, value rune) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{CharVal: value})
	return e.new(ExprCharLit, span, PayloadID(payload))
}

// NewBoolLit creates a boolean literal expression.
func (e *Exprs) NewBoolLit(span source.Span, value bool) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{BoolVal: value})
	return e.new(ExprBoolLit, span, PayloadID(payload))
}

// Literal returns the literal payload for any of the five literal
// kinds.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind > ExprBoolLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewIdent creates an identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewPath creates a qualified path expression.
func (e *Exprs) NewPath(span source.Span, segments []source.StringID) ExprID {
	payload := e.Paths.Allocate(ExprPathData{
		Segments: append([]source.StringID(nil), segments...),
	})
	return e.new(ExprPath, span, PayloadID(payload))
}

func (e *Exprs) Path(id ExprID) (*ExprPathData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprPath {
		return nil, false
	}
	return e.Paths.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, lhs, rhs ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, LHS: lhs, RHS: rhs})
	return e.new(ExprBinary, span, PayloadID(payload))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewUnary creates a unary expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewCall creates a function call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{
		Callee: callee,
		Args:   append([]ExprID(nil), args...),
	})
	return e.new(ExprCall, span, PayloadID(payload))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewMethodCall creates a method call expression.
func (e *Exprs) NewMethodCall(span source.Span, object ExprID, method source.StringID, args []ExprID) ExprID {
	payload := e.MethodCalls.Allocate(ExprMethodCallData{
		Object: object,
		Method: method,
		Args:   append([]ExprID(nil), args...),
	})
	return e.new(ExprMethodCall, span, PayloadID(payload))
}

func (e *Exprs) MethodCall(id ExprID) (*ExprMethodCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMethodCall {
		return nil, false
	}
	return e.MethodCalls.Get(uint32(expr.Payload)), true
}

// NewMemberAccess creates a member access expression.
func (e *Exprs) NewMemberAccess(span source.Span, object ExprID, member source.StringID) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Object: object, Member: member})
	return e.new(ExprMemberAccess, span, PayloadID(payload))
}

func (e *Exprs) MemberAccess(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMemberAccess {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

// NewIndex creates an index expression.
func (e *Exprs) NewIndex(span source.Span, object, index ExprID) ExprID {
	payload := e.Indices.Allocate(ExprIndexData{Object: object, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indices.Get(uint32(expr.Payload)), true
}

// NewCast creates a cast expression.
func (e *Exprs) NewCast(span source.Span, value ExprID, target TypeID) ExprID {
	payload := e.Casts.Allocate(ExprCastData{Value: value, Target: target})
	return e.new(ExprCast, span, PayloadID(payload))
}

func (e *Exprs) Cast(id ExprID) (*ExprCastData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCast {
		return nil, false
	}
	return e.Casts.Get(uint32(expr.Payload)), true
}

// NewBlock creates a block expression.
func (e *Exprs) NewBlock(span source.Span, stmts []StmtID, tail ExprID) ExprID {
	payload := e.Blocks.Allocate(ExprBlockData{
		Stmts: append([]StmtID(nil), stmts...),
		Tail:  tail,
	})
	return e.new(ExprBlock, span, PayloadID(payload))
}

func (e *Exprs) Block(id ExprID) (*ExprBlockData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBlock {
		return nil, false
	}
	return e.Blocks.Get(uint32(expr.Payload)), true
}

// NewIf creates an if expression.
func (e *Exprs) NewIf(span source.Span, cond, then, els ExprID) ExprID {
	payload := e.Ifs.Allocate(ExprIfData{Cond: cond, Then: then, Else: els})
	return e.new(ExprIf, span, PayloadID(payload))
}

func (e *Exprs) If(id ExprID) (*ExprIfData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIf {
		return nil, false
	}
	return e.Ifs.Get(uint32(expr.Payload)), true
}

// NewMatch creates a match expression.
func (e *Exprs) NewMatch(span source.Span, scrutinee ExprID, arms []MatchArm) ExprID {
	payload := e.Matches.Allocate(ExprMatchData{
		Scrutinee: scrutinee,
		Arms:      append([]MatchArm(nil), arms...),
	})
	return e.new(ExprMatch, span, PayloadID(payload))
}

func (e *Exprs) Match(id ExprID) (*ExprMatchData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMatch {
		return nil, false
	}
	return e.Matches.Get(uint32(expr.Payload)), true
}

// NewClosure creates a closure expression.
func (e *Exprs) NewClosure(span source.Span, params []ClosureParam, ret TypeID, body ExprID, moveCapture bool) ExprID {
	payload := e.Closures.Allocate(ExprClosureData{
		Params:      append([]ClosureParam(nil), params...),
		Return:      ret,
		Body:        body,
		MoveCapture: moveCapture,
	})
	return e.new(ExprClosure, span, PayloadID(payload))
}

func (e *Exprs) Closure(id ExprID) (*ExprClosureData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprClosure {
		return nil, false
	}
	return e.Closures.Get(uint32(expr.Payload)), true
}

// NewConstruct creates a construction expression with a path callee.
func (e *Exprs) NewConstruct(span source.Span, typePath ExprID, fields []FieldInit) ExprID {
	payload := e.Constructs.Allocate(ExprConstructData{
		TypePath: typePath,
		Fields:   append([]FieldInit(nil), fields...),
	})
	return e.new(ExprConstruct, span, PayloadID(payload))
}

func (e *Exprs) Construct(id ExprID) (*ExprConstructData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprConstruct {
		return nil, false
	}
	return e.Constructs.Get(uint32(expr.Payload)), true
}

// NewStructLit creates a struct literal built from a bare type name.
func (e *Exprs) NewStructLit(span source.Span, typeName source.StringID, fields []FieldInit) ExprID {
	payload := e.StructLits.Allocate(ExprStructLitData{
		TypeName: typeName,
		Fields:   append([]FieldInit(nil), fields...),
	})
	return e.new(ExprStructLit, span, PayloadID(payload))
}

func (e *Exprs) StructLit(id ExprID) (*ExprStructLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprStructLit {
		return nil, false
	}
	return e.StructLits.Get(uint32(expr.Payload)), true
}

// NewTuple creates a tuple literal expression.
func (e *Exprs) NewTuple(span source.Span, elements []ExprID) ExprID {
	payload := e.Tuples.Allocate(ExprTupleData{
		Elements: append([]ExprID(nil), elements...),
	})
	return e.new(ExprTuple, span, PayloadID(payload))
}

func (e *Exprs) Tuple(id ExprID) (*ExprTupleData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTuple {
		return nil, false
	}
	return e.Tuples.Get(uint32(expr.Payload)), true
}

// NewArray creates an array literal expression.
func (e *Exprs) NewArray(span source.Span, elements []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{
		Elements: append([]ExprID(nil), elements...),
	})
	return e.new(ExprArray, span, PayloadID(payload))
}

func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewRange creates a range expression.
func (e *Exprs) NewRange(span source.Span, start, end ExprID, inclusive bool) ExprID {
	payload := e.Ranges.Allocate(ExprRangeData{
		Start:     start,
		End:       end,
		Inclusive: inclusive,
	})
	return e.new(ExprRange, span, PayloadID(payload))
}

func (e *Exprs) Range(id ExprID) (*ExprRangeData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprRange {
		return nil, false
	}
	return e.Ranges.Get(uint32(expr.Payload)), true
}

// NewPrefix creates one of the single-operand wrapper expressions:
// ExprRef, ExprMutRef, ExprMove, ExprAwait, or ExprTry.
func (e *Exprs) NewPrefix(kind ExprKind, span source.Span, operand ExprID) ExprID {
	payload := e.Prefixes.Allocate(ExprPrefixData{Operand: operand})
	return e.new(kind, span, PayloadID(payload))
}

// Prefix returns the payload of a wrapper expression.
func (e *Exprs) Prefix(id ExprID) (*ExprPrefixData, bool) {
	expr := e.Get(id)
	if expr == nil {
		return nil, false
	}
	switch expr.Kind {
	case ExprRef, ExprMutRef, ExprMove, ExprAwait, ExprTry:
		return e.Prefixes.Get(uint32(expr.Payload)), true
	}
	return nil, false
}

// NewAssign creates an assignment expression.
func (e *Exprs) NewAssign(span source.Span, target, value ExprID) ExprID {
	payload := e.Assigns.Allocate(ExprAssignData{Target: target, Value: value})
	return e.new(ExprAssign, span, PayloadID(payload))
}

func (e *Exprs) Assign(id ExprID) (*ExprAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAssign {
		return nil, false
	}
	return e.Assigns.Get(uint32(expr.Payload)), true
}

// NewCompoundAssign creates a compound assignment expression.
func (e *Exprs) NewCompoundAssign(span source.Span, op CompoundAssignOp, target, value ExprID) ExprID {
	payload := e.CompoundAssigns.Allocate(ExprCompoundAssignData{
		Op:     op,
		Target: target,
		Value:  value,
	})
	return e.new(ExprCompoundAssign, span, PayloadID(payload))
}

func (e *Exprs) CompoundAssign(id ExprID) (*ExprCompoundAssignData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCompoundAssign {
		return nil, false
	}
	return e.CompoundAssigns.Get(uint32(expr.Payload)), true
}
