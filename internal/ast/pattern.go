package ast

import (
	"flux/internal/source"
)

// PatternKind enumerates the pattern forms accepted in match arms.
type PatternKind uint8

const (
	PatWildcard PatternKind = iota
	PatIdent
	PatLiteral
	PatTuple
	PatConstructor
	PatOr
)

var patternKindNames = [...]string{
	PatWildcard:    "Wildcard",
	PatIdent:       "Identifier",
	PatLiteral:     "Literal",
	PatTuple:       "Tuple",
	PatConstructor: "Constructor",
	PatOr:          "Or",
}

func (k PatternKind) String() string {
	if int(k) < len(patternKindNames) {
		return patternKindNames[k]
	}
	return "Unknown"
}

// Pattern is the uniform pattern header. Wildcards carry no payload.
type Pattern struct {
	Kind    PatternKind
	Span    source.Span
	Payload PayloadID
}

type PatIdentData struct {
	Name    source.StringID
	Mutable bool
}

// PatLiteralData points at a literal expression node.
type PatLiteralData struct {
	Literal ExprID
}

type PatTupleData struct {
	Elements []PatternID
}

// PatNamedField is one `name: pattern` entry of a struct-shaped
// constructor pattern.
type PatNamedField struct {
	Name    source.StringID
	Pattern PatternID
}

// PatConstructorData: a constructor pattern has either positional or
// named fields, never both.
type PatConstructorData struct {
	Path       []source.StringID
	Positional []PatternID
	Named      []PatNamedField
}

type PatOrData struct {
	Alternatives []PatternID
}

// Patterns manages allocation of match patterns.
type Patterns struct {
	Arena        *Arena[Pattern]
	Idents       *Arena[PatIdentData]
	Literals     *Arena[PatLiteralData]
	Tuples       *Arena[PatTupleData]
	Constructors *Arena[PatConstructorData]
	Ors          *Arena[PatOrData]
}

func NewPatterns(capHint uint) *Patterns {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Patterns{
		Arena:        NewArena[Pattern](capHint),
		Idents:       NewArena[PatIdentData](capHint),
		Literals:     NewArena[PatLiteralData](capHint),
		Tuples:       NewArena[PatTupleData](capHint),
		Constructors: NewArena[PatConstructorData](capHint),
		Ors:          NewArena[PatOrData](capHint),
	}
}

func (p *Patterns) new(kind PatternKind, span source.Span, payload PayloadID) PatternID {
	return PatternID(p.Arena.Allocate(Pattern{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the pattern with the given ID.
func (p *Patterns) Get(id PatternID) *Pattern {
	return p.Arena.Get(uint32(id))
}

// NewWildcard creates a wildcard pattern.
func (p *Patterns) NewWildcard(span source.Span) PatternID {
	return p.new(PatWildcard, span, NoPayloadID)
}

// NewIdent creates a binding pattern.
func (p *Patterns) NewIdent(span source.Span, name source.StringID, mutable bool) PatternID {
	payload := p.Idents.Allocate(PatIdentData{Name: name, Mutable: mutable})
	return p.new(PatIdent, span, PayloadID(payload))
}

func (p *Patterns) Ident(id PatternID) (*PatIdentData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatIdent {
		return nil, false
	}
	return p.Idents.Get(uint32(pat.Payload)), true
}

// NewLiteral creates a literal pattern.
func (p *Patterns) NewLiteral(span source.Span, literal ExprID) PatternID {
	payload := p.Literals.Allocate(PatLiteralData{Literal: literal})
	return p.new(PatLiteral, span, PayloadID(payload))
}

func (p *Patterns) Literal(id PatternID) (*PatLiteralData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatLiteral {
		return nil, false
	}
	return p.Literals.Get(uint32(pat.Payload)), true
}

// NewTuple creates a tuple pattern.
func (p *Patterns) NewTuple(span source.Span, elements []PatternID) PatternID {
	payload := p.Tuples.Allocate(PatTupleData{
		Elements: append([]PatternID(nil), elements...),
	})
	return p.new(PatTuple, span, PayloadID(payload))
}

func (p *Patterns) Tuple(id PatternID) (*PatTupleData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatTuple {
		return nil, false
	}
	return p.Tuples.Get(uint32(pat.Payload)), true
}

// NewConstructor creates a constructor pattern.
func (p *Patterns) NewConstructor(span source.Span, path []source.StringID, positional []PatternID, named []PatNamedField) PatternID {
	payload := p.Constructors.Allocate(PatConstructorData{
		Path:       append([]source.StringID(nil), path...),
		Positional: append([]PatternID(nil), positional...),
		Named:      append([]PatNamedField(nil), named...),
	})
	return p.new(PatConstructor, span, PayloadID(payload))
}

func (p *Patterns) Constructor(id PatternID) (*PatConstructorData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatConstructor {
		return nil, false
	}
	return p.Constructors.Get(uint32(pat.Payload)), true
}

// NewOr creates an or pattern.
func (p *Patterns) NewOr(span source.Span, alternatives []PatternID) PatternID {
	payload := p.Ors.Allocate(PatOrData{
		Alternatives: append([]PatternID(nil), alternatives...),
	})
	return p.new(PatOr, span, PayloadID(payload))
}

func (p *Patterns) Or(id PatternID) (*PatOrData, bool) {
	pat := p.Get(id)
	if pat == nil || pat.Kind != PatOr {
		return nil, false
	}
	return p.Ors.Get(uint32(pat.Payload)), true
}

// Bindings appends every name bound by the pattern to dst and returns
// the extended slice, in source order.
func (p *Patterns) Bindings(id PatternID, dst []source.StringID) []source.StringID {
	pat := p.Get(id)
	if pat == nil {
		return dst
	}
	switch pat.Kind {
	case PatIdent:
		dst = append(dst, p.Idents.Get(uint32(pat.Payload)).Name)
	case PatTuple:
		for _, el := range p.Tuples.Get(uint32(pat.Payload)).Elements {
			dst = p.Bindings(el, dst)
		}
	case PatConstructor:
		data := p.Constructors.Get(uint32(pat.Payload))
		for _, el := range data.Positional {
			dst = p.Bindings(el, dst)
		}
		for _, field := range data.Named {
			dst = p.Bindings(field.Pattern, dst)
		}
	case PatOr:
		// Alternatives must bind the same names; the first one is
		// representative.
		alts := p.Ors.Get(uint32(pat.Payload)).Alternatives
		if len(alts) > 0 {
			dst = p.Bindings(alts[0], dst)
		}
	}
	return dst
}
