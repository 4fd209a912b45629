package ui

// Stage identifies a compilation phase for progress reporting.
type Stage int

const (
	StageNone Stage = iota
	StageLex
	StageParse
	StageResolve
	StageCheck
	StageEmit
	StageWrite
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	case StageResolve:
		return "resolve"
	case StageCheck:
		return "check"
	case StageEmit:
		return "emit"
	case StageWrite:
		return "write"
	default:
		return "none"
	}
}

// Status captures progress state within a stage.
type Status int

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports progress for one file, or for the pipeline as a whole
// when File is empty.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

// Sink receives pipeline events.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events to a channel, dropping them once the
// receiver stops listening.
type ChannelSink struct {
	C chan Event
}

// NewChannelSink returns a sink with a buffered event channel.
func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{C: make(chan Event, buffer)}
}

func (s *ChannelSink) OnEvent(ev Event) {
	select {
	case s.C <- ev:
	default:
	}
}

// Close signals the consumer that no more events follow.
func (s *ChannelSink) Close() { close(s.C) }

// NopSink discards every event.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
