package source

import (
	"testing"
)

func TestFileSetResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.fl", []byte("abc\ndef\nghi"))

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"start of file", 0, LineCol{Line: 1, Col: 1}},
		{"middle of first line", 2, LineCol{Line: 1, Col: 3}},
		{"newline belongs to its line", 3, LineCol{Line: 1, Col: 4}},
		{"start of second line", 4, LineCol{Line: 2, Col: 1}},
		{"middle of second line", 6, LineCol{Line: 2, Col: 3}},
		{"start of third line", 8, LineCol{Line: 3, Col: 1}},
		{"last byte", 10, LineCol{Line: 3, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
			if start != tt.want {
				t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
			}
		})
	}
}

func TestFileSetPositionUnknown(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.fl", []byte("x"))

	if loc := fs.Position(Span{File: id + 99}); !loc.Unknown() {
		t.Errorf("invalid file ID should resolve to the unknown location, got %+v", loc)
	}
	if loc := fs.Position(Span{File: id, Start: 100, End: 100}); !loc.Unknown() {
		t.Errorf("out-of-range offset should resolve to the unknown location, got %+v", loc)
	}
	if loc := fs.Position(Span{File: id, Start: 0, End: 1}); loc.Unknown() {
		t.Errorf("valid span should not be unknown")
	}
}

func TestFileSetGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("main.fl", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if string(out) != "a\nb\rc" || !changed {
		t.Errorf("normalizeCRLF = %q changed=%v", out, changed)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if string(out) != "plain" || changed {
		t.Errorf("normalizeCRLF on clean input = %q changed=%v", out, changed)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x'})
	if string(out) != "x" || !had {
		t.Errorf("removeBOM = %q had=%v", out, had)
	}
	out, had = removeBOM([]byte("xy"))
	if string(out) != "xy" || had {
		t.Errorf("removeBOM on short input = %q had=%v", out, had)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Errorf("Cover = %v", got)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must not change the span, got %v", got)
	}
}

func TestInterner(t *testing.T) {
	in := NewInterner()

	a := in.Intern("foo")
	b := in.Intern("bar")
	c := in.Intern("foo")

	if a == NoStringID || b == NoStringID {
		t.Fatal("interned strings must not get the zero ID")
	}
	if a != c {
		t.Errorf("same string interned twice: %d != %d", a, c)
	}
	if a == b {
		t.Errorf("distinct strings share ID %d", a)
	}
	if s := in.MustLookup(a); s != "foo" {
		t.Errorf("MustLookup = %q", s)
	}
	if s, ok := in.Lookup(StringID(1000)); ok || s != "" {
		t.Errorf("lookup of invalid ID = %q, %v", s, ok)
	}
	if in.Len() != 3 {
		t.Errorf("Len = %d, want 3 (incl. empty string)", in.Len())
	}
}
