package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"flux/internal/source"
)

// Hints provide optional capacity suggestions for the symbol table
// arenas.
type Hints struct{ Scopes, Symbols uint }

// Table owns the scope tree and every symbol declared in it. AST nodes
// never point into the table; phases carry ScopeIDs and SymbolIDs.
type Table struct {
	Scopes  *Scopes
	Symbols *Symbols
	Strings *source.Interner
}

// NewTable builds a fresh table with optional capacity hints. If
// strings is nil, a fresh interner is allocated.
func NewTable(h Hints, strings *source.Interner) *Table {
	scopeCap, err := safecast.Conv[uint32](h.Scopes)
	if err != nil {
		panic(fmt.Errorf("scope capacity overflow: %w", err))
	}
	symCap, err := safecast.Conv[uint32](h.Symbols)
	if err != nil {
		panic(fmt.Errorf("symbol capacity overflow: %w", err))
	}
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{
		Scopes:  NewScopes(scopeCap),
		Symbols: NewSymbols(symCap),
		Strings: strings,
	}
}

// NewScope allocates a child of parent. Pass NoScopeID for a root.
func (t *Table) NewScope(kind ScopeKind, parent ScopeID, label source.StringID, span source.Span) ScopeID {
	return t.Scopes.New(kind, parent, label, span)
}

// Insert installs sym into the given scope. When the name is already
// bound in that same scope it returns the existing symbol and false;
// outer-scope bindings do not conflict.
func (t *Table) Insert(scope ScopeID, sym *Symbol) (SymbolID, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil || sym == nil {
		return NoSymbolID, false
	}
	if existing, ok := sc.NameIndex[sym.Name]; ok {
		return existing, false
	}
	sym.Scope = scope
	if sym.Qualified == source.NoStringID {
		sym.Qualified = sym.Name
	}
	id := t.Symbols.New(sym)
	sc.Symbols = append(sc.Symbols, id)
	sc.NameIndex[sym.Name] = id
	return id, true
}

// Lookup searches for name starting at from and walking parent links
// up to the root.
func (t *Table) Lookup(from ScopeID, name source.StringID) (SymbolID, bool) {
	for from.IsValid() {
		sc := t.Scopes.Get(from)
		if sc == nil {
			break
		}
		if id, ok := sc.NameIndex[name]; ok {
			return id, true
		}
		from = sc.Parent
	}
	return NoSymbolID, false
}

// LookupLocal checks only the given scope, without walking parents.
func (t *Table) LookupLocal(scope ScopeID, name source.StringID) (SymbolID, bool) {
	sc := t.Scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, false
	}
	id, ok := sc.NameIndex[name]
	return id, ok
}

// SymbolName renders the symbol's lookup name.
func (t *Table) SymbolName(id SymbolID) string {
	sym := t.Symbols.Get(id)
	if sym == nil {
		return ""
	}
	return t.Strings.MustLookup(sym.Name)
}

// QualifiedName renders the symbol's display name, which differs from
// the lookup name for enum variants.
func (t *Table) QualifiedName(id SymbolID) string {
	sym := t.Symbols.Get(id)
	if sym == nil {
		return ""
	}
	return t.Strings.MustLookup(sym.Qualified)
}
