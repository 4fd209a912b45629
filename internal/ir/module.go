package ir

import "fmt"

// StringConst is a module-level null-terminated byte array backing a
// string literal.
type StringConst struct {
	Name string
	Data []byte
}

// TypeDef names a struct layout at module scope.
type TypeDef struct {
	Name   string
	Fields []Type
}

// Module aggregates everything one compilation emits.
type Module struct {
	Name    string
	Types   []TypeDef
	Strings []StringConst
	Funcs   []*Func

	byName map[string]*Func
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name, byName: make(map[string]*Func)}
}

// AddFunc registers a function under its symbol name.
func (m *Module) AddFunc(f *Func) {
	m.Funcs = append(m.Funcs, f)
	if m.byName == nil {
		m.byName = make(map[string]*Func)
	}
	m.byName[f.Name] = f
}

// RemoveFunc drops a function whose body failed verification.
func (m *Module) RemoveFunc(name string) {
	delete(m.byName, name)
	for i, f := range m.Funcs {
		if f.Name == name {
			m.Funcs = append(m.Funcs[:i], m.Funcs[i+1:]...)
			return
		}
	}
}

// Func looks a function up by name.
func (m *Module) Func(name string) *Func {
	return m.byName[name]
}

// InternString returns a global backing the bytes of a string literal,
// reusing an existing one for repeated text. The stored data gains a
// trailing NUL.
func (m *Module) InternString(text string) StringConst {
	for _, sc := range m.Strings {
		if string(sc.Data) == text+"\x00" {
			return sc
		}
	}
	name := "@str"
	if n := len(m.Strings); n > 0 {
		name = fmt.Sprintf("@str.%d", n)
	}
	sc := StringConst{Name: name, Data: append([]byte(text), 0)}
	m.Strings = append(m.Strings, sc)
	return sc
}
