package driver

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEmitKind(t *testing.T) {
	cases := []struct {
		value string
		kind  EmitKind
		ok    bool
	}{
		{"llvm-ir", EmitLLVMIR, true},
		{"bitcode", EmitBitcode, true},
		{"asm", EmitAsm, true},
		{"obj", EmitObj, true},
		{"exe", EmitExe, true},
		{"", EmitExe, true},
		{"EXE", EmitExe, true},
		{"wasm", EmitExe, false},
	}
	for _, tc := range cases {
		kind, err := ParseEmitKind(tc.value)
		if tc.ok != (err == nil) {
			t.Errorf("ParseEmitKind(%q) err = %v", tc.value, err)
			continue
		}
		if err == nil && kind != tc.kind {
			t.Errorf("ParseEmitKind(%q) = %d, want %d", tc.value, kind, tc.kind)
		}
	}
}

func TestDerivedOutputName(t *testing.T) {
	cases := []struct {
		input string
		kind  EmitKind
		want  string
	}{
		{"src/main.fl", EmitLLVMIR, "main.ll"},
		{"src/main.fl", EmitBitcode, "main.bc"},
		{"src/main.fl", EmitAsm, "main.s"},
		{"src/main.fl", EmitObj, "main.o"},
		{"src/main.fl", EmitExe, "main"},
		{"app", EmitLLVMIR, "app.ll"},
	}
	for _, tc := range cases {
		if got := DerivedOutputName(tc.input, tc.kind); got != tc.want {
			t.Errorf("DerivedOutputName(%q, %d) = %q, want %q", tc.input, tc.kind, got, tc.want)
		}
	}
}

func TestWriteOutputLLVMIR(t *testing.T) {
	out := filepath.Join(t.TempDir(), "main.ll")
	text := "define void @main() {\nentry:\n  ret void\n}\n"
	if err := WriteOutput(text, EmitLLVMIR, out, 0, ""); err != nil {
		t.Fatalf("WriteOutput: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(got) != text {
		t.Errorf("output = %q", got)
	}
}
