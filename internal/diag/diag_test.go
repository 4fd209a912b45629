package diag

import (
	"testing"

	"flux/internal/source"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		sev  Severity
		want string
	}{
		{SevNote, "note"},
		{SevWarning, "warning"},
		{SevError, "error"},
		{SevFatal, "fatal error"},
	}
	for _, tt := range tests {
		if got := tt.sev.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.sev, got, tt.want)
		}
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{SemaRedefinition, "SEM3001"},
		{GenInvalidIR, "GEN4001"},
		{IOLoadFileError, "IO5001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("Code(%d).ID() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestBagLimitAndCounters(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{File: 1, Start: 0, End: 1}

	if !b.Add(NewError(SemaTypeMismatch, sp, "type mismatch: expected 'Int64', got 'Bool'")) {
		t.Fatal("first add must succeed")
	}
	if !b.Add(New(SevWarning, SemaDeprecatedUsage, sp, "deprecated")) {
		t.Fatal("second add must succeed")
	}
	if b.Add(NewError(SemaUndeclared, sp, "dropped")) {
		t.Error("add past the limit must fail")
	}

	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
	if b.ErrorCount() != 1 || b.WarningCount() != 1 {
		t.Errorf("counts = %d errors, %d warnings", b.ErrorCount(), b.WarningCount())
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Error("HasErrors/HasWarnings must both report true")
	}
}

func TestBagSortOrder(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(SynUnexpectedToken, source.Span{File: 2, Start: 5, End: 6}, "late"))
	b.Add(New(SevWarning, SemaDeprecatedUsage, source.Span{File: 1, Start: 10, End: 11}, "warn"))
	b.Add(NewError(SemaUndeclared, source.Span{File: 1, Start: 10, End: 11}, "err"))
	b.Add(NewError(LexUnknownChar, source.Span{File: 1, Start: 0, End: 1}, "first"))

	b.Sort()
	items := b.Items()

	if items[0].Message != "first" {
		t.Errorf("items[0] = %q", items[0].Message)
	}
	// Same span: error sorts before warning.
	if items[1].Message != "err" || items[2].Message != "warn" {
		t.Errorf("items[1..2] = %q, %q", items[1].Message, items[2].Message)
	}
	if items[3].Message != "late" {
		t.Errorf("items[3] = %q", items[3].Message)
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(10)
	sp := source.Span{File: 1, Start: 3, End: 7}
	b.Add(NewError(SemaUndeclared, sp, "use of undeclared identifier 'x'"))
	b.Add(NewError(SemaUndeclared, sp, "use of undeclared identifier 'x'"))
	b.Add(NewError(SemaUndeclared, source.Span{File: 1, Start: 8, End: 9}, "use of undeclared identifier 'y'"))

	b.Dedup()
	if b.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", b.Len())
	}
	if b.ErrorCount() != 2 {
		t.Errorf("ErrorCount after Dedup = %d, want 2", b.ErrorCount())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(LexUnknownChar, source.Span{}, "a"))

	other := NewBag(2)
	other.Add(NewError(SynUnexpectedToken, source.Span{}, "b"))
	other.Add(New(SevWarning, SemaDeprecatedUsage, source.Span{}, "c"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Errorf("Len after Merge = %d, want 3", a.Len())
	}
	if a.ErrorCount() != 2 || a.WarningCount() != 1 {
		t.Errorf("counts after Merge = %d errors, %d warnings", a.ErrorCount(), a.WarningCount())
	}
}

func TestReportBuilderEmit(t *testing.T) {
	bag := NewBag(10)
	r := BagReporter{Bag: bag}
	sp := source.Span{File: 1, Start: 0, End: 3}

	b := ReportError(r, SemaUnknownType, sp, "unknown type 'Foo' in let binding").
		WithNote(sp, "declared here").
		WithFix("did you mean 'Food'?", "Food")
	b.Emit()
	b.Emit() // second emit must be a no-op

	if bag.Len() != 1 {
		t.Fatalf("Len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != SemaUnknownType || d.Severity != SevError {
		t.Errorf("emitted %v/%v", d.Code, d.Severity)
	}
	if len(d.Notes) != 1 || len(d.Fixes) != 1 {
		t.Errorf("notes=%d fixes=%d", len(d.Notes), len(d.Fixes))
	}
	if d.Fixes[0].Replacement != "Food" {
		t.Errorf("fix replacement = %q", d.Fixes[0].Replacement)
	}
}

func TestMultiReporterFanOut(t *testing.T) {
	a, b := NewBag(5), NewBag(5)
	m := MultiReporter{BagReporter{Bag: a}, NopReporter{}, BagReporter{Bag: b}}

	m.Report(LexUnknownChar, SevError, source.Span{}, "msg", nil, nil)
	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("fan-out missed a sink: a=%d b=%d", a.Len(), b.Len())
	}
}
