package ir

import (
	"fmt"
	"strings"
)

// Linkage controls symbol visibility in the emitted module.
type Linkage uint8

const (
	LinkageInternal Linkage = iota
	LinkageExternal
)

func (l Linkage) String() string {
	if l == LinkageExternal {
		return "external"
	}
	return "internal"
}

// Param is one function parameter; its value is addressed as "%name".
type Param struct {
	Name string
	Type Type
}

// Func is one function. A function without blocks is an external
// declaration.
type Func struct {
	Name    string
	Linkage Linkage
	Ret     Type
	Params  []Param
	Blocks  []*Block
	Entry   BlockID

	names map[string]int
}

// NewFunc creates a function shell with no blocks.
func NewFunc(name string, linkage Linkage, ret Type, params []Param) *Func {
	f := &Func{
		Name:    name,
		Linkage: linkage,
		Ret:     ret,
		Params:  params,
		Entry:   NoBlockID,
		names:   make(map[string]int),
	}
	// Parameter names are taken; slots spilled for them rename.
	for _, p := range params {
		f.names[p.Name] = 1
	}
	return f
}

// IsDeclaration reports whether the function has no body.
func (f *Func) IsDeclaration() bool { return len(f.Blocks) == 0 }

// Block returns the block with the given ID, or nil.
func (f *Func) Block(id BlockID) *Block {
	if !id.IsValid() || int(id) >= len(f.Blocks) {
		return nil
	}
	return f.Blocks[int(id)]
}

// NewBlock appends a block, uniquing the label against earlier ones.
// The first block becomes the entry.
func (f *Func) NewBlock(name string) BlockID {
	id := BlockID(len(f.Blocks))
	f.Blocks = append(f.Blocks, &Block{ID: id, Name: f.unique(name)})
	if f.Entry == NoBlockID {
		f.Entry = id
	}
	return id
}

// unique returns name, or name.N when the base is already taken,
// mirroring how LLVM renames colliding value and label names.
func (f *Func) unique(name string) string {
	if f.names == nil {
		f.names = make(map[string]int)
	}
	n, taken := f.names[name]
	f.names[name] = n + 1
	if !taken {
		return name
	}
	return fmt.Sprintf("%s.%d", name, n)
}

// ParamValue returns the SSA value of the parameter at index i.
func (f *Func) ParamValue(i int) Value {
	p := f.Params[i]
	return Value{Type: p.Type, Ref: "%" + p.Name}
}

// Signature renders the parameter type list for declarations.
func (f *Func) Signature() string {
	parts := make([]string, len(f.Params))
	for i, p := range f.Params {
		parts[i] = string(p.Type)
	}
	return strings.Join(parts, ", ")
}
