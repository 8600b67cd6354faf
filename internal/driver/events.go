package driver

import "time"

// Stage identifies a step of tokenizing one file.
type Stage string

const (
	// StageLoad reads and normalises the file.
	StageLoad Stage = "load"
	// StageScan runs the lexer (or reads the cache).
	StageScan Stage = "scan"
)

// Status describes the progress state of a file.
type Status string

const (
	// StatusQueued indicates the file is waiting for a worker.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being processed.
	StatusWorking Status = "working"
	// StatusDone indicates the file was tokenized (lexical errors included).
	StatusDone Status = "done"
	// StatusError indicates the file could not be tokenized at all.
	StatusError Status = "error"
)

// Event reports progress for a file.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
	Tokens  int
	Errors  int // lexical errors in a finished file
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use: batch workers call OnEvent from several goroutines.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// SinkFunc adapts a function to ProgressSink.
type SinkFunc func(Event)

func (f SinkFunc) OnEvent(evt Event) { f(evt) }

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
