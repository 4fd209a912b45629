package sema

import (
	"flux/internal/ast"
	"flux/internal/diag"
	"flux/internal/source"
	"flux/internal/symbols"
)

// CheckerOptions configures checker construction.
type CheckerOptions struct {
	Reporter diag.Reporter
}

// builtinTypes is the closed set of type names every module can use
// without declaring them.
var builtinTypes = []string{
	"Int8", "Int16", "Int32", "Int64",
	"UInt8", "UInt16", "UInt32", "UInt64",
	"Float32", "Float64",
	"Bool", "Char", "String", "Void",
	"Option", "Result",
	"Vec", "Map", "Set",
	"Box", "Rc", "Arc",
	"Mutex", "Channel", "Future",
}

// Checker validates type annotations and expression types after name
// resolution. It keys everything on rendered type text: builtins plus
// the module's own type declarations form the known set, and every
// annotation is tested against it.
type Checker struct {
	b        *ast.Builder
	table    *symbols.Table
	uses     map[ast.ExprID]symbols.SymbolID
	reporter diag.Reporter

	known         map[string]struct{}
	currentReturn string
}

// NewChecker wires a checker to the resolver's outputs. The uses map
// lets identifier expressions recover the declared type of the symbol
// they bound to.
func NewChecker(b *ast.Builder, table *symbols.Table, uses map[ast.ExprID]symbols.SymbolID, opts CheckerOptions) *Checker {
	known := make(map[string]struct{}, len(builtinTypes)+16)
	for _, name := range builtinTypes {
		known[name] = struct{}{}
	}
	return &Checker{
		b:        b,
		table:    table,
		uses:     uses,
		reporter: opts.Reporter,
		known:    known,
	}
}

// Check processes one resolved file. User-declared types from the
// module scope join the known set before any body is examined, so
// declaration order never matters.
func (c *Checker) Check(fileID ast.FileID, module symbols.ScopeID) {
	file := c.b.Files.Get(fileID)
	if file == nil {
		return
	}

	if sc := c.table.Scopes.Get(module); sc != nil {
		for _, symID := range sc.Symbols {
			sym := c.table.Symbols.Get(symID)
			if sym == nil || !sym.Kind.IsType() {
				continue
			}
			c.known[c.table.Strings.MustLookup(sym.Name)] = struct{}{}
		}
	}

	for _, decl := range file.Decls {
		c.checkDecl(decl)
	}
}

// knownType reports whether rendered type text names a known type.
// Reference and array layers are stripped first; tuple and function
// placeholders pass because their structure is not tracked here.
func (c *Checker) knownType(text string) bool {
	text = refTarget(text)
	switch text {
	case "", "(tuple)", "(func)", "<unknown>":
		return true
	}
	_, ok := c.known[text]
	return ok
}

// pushKnown temporarily admits names (generic parameters, Self) into
// the known set and returns the ones actually added, so popKnown can
// remove exactly those without disturbing outer entries.
func (c *Checker) pushKnown(names []string) []string {
	var added []string
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := c.known[name]; ok {
			continue
		}
		c.known[name] = struct{}{}
		added = append(added, name)
	}
	return added
}

func (c *Checker) popKnown(added []string) {
	for _, name := range added {
		delete(c.known, name)
	}
}

func (c *Checker) genericNames(generics []ast.GenericParam) []string {
	if len(generics) == 0 {
		return nil
	}
	names := make([]string, 0, len(generics))
	for _, g := range generics {
		if g.Name == source.NoStringID {
			continue
		}
		names = append(names, c.b.Interner.MustLookup(g.Name))
	}
	return names
}

// symbolTypeText renders the declared type recorded on a value symbol,
// or "" when it carried no annotation.
func (c *Checker) symbolTypeText(id symbols.SymbolID) string {
	sym := c.table.Symbols.Get(id)
	if sym == nil || sym.TypeName == source.NoStringID {
		return ""
	}
	return c.table.Strings.MustLookup(sym.TypeName)
}

// typesCompatible reports whether a value of the actual type can
// initialize the expected one. Integer literals carry Int64 and may
// narrow to any other integer type; float literals carry Float64 and
// may narrow to Float32.
func typesCompatible(expected, actual string) bool {
	if expected == actual {
		return true
	}
	if actual == "Int64" {
		switch expected {
		case "Int8", "Int16", "Int32", "UInt8", "UInt16", "UInt32", "UInt64":
			return true
		}
	}
	if actual == "Float64" && expected == "Float32" {
		return true
	}
	return false
}

func (c *Checker) errorAt(code diag.Code, span source.Span, msg string) {
	diag.ReportError(c.reporter, code, span, msg).Emit()
}
