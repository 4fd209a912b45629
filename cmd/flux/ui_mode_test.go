package main

import "testing"

func TestReadUIMode(t *testing.T) {
	cases := []struct {
		value string
		want  uiMode
		ok    bool
	}{
		{"auto", uiModeAuto, true},
		{"", uiModeAuto, true},
		{"on", uiModeOn, true},
		{"OFF", uiModeOff, true},
		{" on ", uiModeOn, true},
		{"maybe", "", false},
	}
	for _, tc := range cases {
		got, err := readUIMode(tc.value)
		if tc.ok != (err == nil) {
			t.Errorf("readUIMode(%q) err = %v", tc.value, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("readUIMode(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestShouldUseTUIExplicitModes(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Error("on should force the TUI")
	}
	if shouldUseTUI(uiModeOff) {
		t.Error("off should disable the TUI")
	}
}
