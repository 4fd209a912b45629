package lexer

import (
	"testing"

	"flux/internal/source"
)

func TestCursorBasics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.fl", []byte("ab"))
	c := NewCursor(fs.Get(id))

	if c.EOF() {
		t.Fatal("fresh cursor must not be at EOF")
	}
	if c.Peek() != 'a' {
		t.Errorf("Peek = %c", c.Peek())
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 = %c %c %v", b0, b1, ok)
	}
	if _, _, _, ok := c.Peek3(); ok {
		t.Error("Peek3 past the end must report !ok")
	}

	m := c.Mark()
	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Error("Bump must return consumed bytes in order")
	}
	if !c.EOF() || c.Bump() != 0 {
		t.Error("Bump at EOF must return 0")
	}

	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 || sp.File != id {
		t.Errorf("SpanFrom = %v", sp)
	}

	c.Reset(m)
	if !c.Eat('a') || c.Eat('x') {
		t.Error("Eat must consume only on match")
	}
}
