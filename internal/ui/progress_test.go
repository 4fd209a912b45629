package ui

import "testing"

func TestChannelSinkDropsWhenFull(t *testing.T) {
	sink := NewChannelSink(1)
	sink.OnEvent(Event{File: "a.fl"})
	sink.OnEvent(Event{File: "b.fl"})
	sink.Close()

	var got []Event
	for ev := range sink.C {
		got = append(got, ev)
	}
	if len(got) != 1 || got[0].File != "a.fl" {
		t.Errorf("events = %+v", got)
	}
}

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		stage  Stage
		status Status
		want   string
	}{
		{StageParse, StatusQueued, "queued"},
		{StageParse, StatusWorking, "parsing"},
		{StageCheck, StatusWorking, "checking"},
		{StageEmit, StatusDone, "done"},
		{StageEmit, StatusError, "error"},
		{StageNone, StatusWorking, ""},
	}
	for _, tc := range cases {
		if got := statusLabel(tc.stage, tc.status); got != tc.want {
			t.Errorf("statusLabel(%s, %d) = %q, want %q", tc.stage, tc.status, got, tc.want)
		}
	}
}

func TestProgressFromStageIsMonotonic(t *testing.T) {
	order := []Stage{StageNone, StageLex, StageParse, StageResolve, StageCheck, StageEmit, StageWrite}
	prev := -1.0
	for _, stage := range order {
		p := progressFromStage(stage)
		if p <= prev {
			t.Errorf("progress for %s (%v) not above previous (%v)", stage, p, prev)
		}
		prev = p
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short.fl", 20); got != "short.fl" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a/very/long/path/to/some/file.fl", 10); len(got) > 10 {
		t.Errorf("truncate long = %q (len %d)", got, len(got))
	}
}
