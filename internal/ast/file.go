package ast

import (
	"flux/internal/source"
)

// File is the root node of one parsed source file. ModulePath and
// Imports mirror the module and import declarations for quick access;
// the declarations themselves also appear in Decls.
type File struct {
	Span       source.Span
	ModulePath []source.StringID
	Imports    []DeclID
	Decls      []DeclID
}

// Files manages allocation of file roots.
type Files struct {
	Arena *Arena[File]
}

func NewFiles(capHint uint) *Files {
	return &Files{
		Arena: NewArena[File](capHint),
	}
}

func (f *Files) New(span source.Span) FileID {
	return FileID(f.Arena.Allocate(File{
		Span:  span,
		Decls: make([]DeclID, 0),
	}))
}

func (f *Files) Get(id FileID) *File {
	return f.Arena.Get(uint32(id))
}
