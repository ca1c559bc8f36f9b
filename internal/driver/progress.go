package driver

import "time"

// Stage describes a step of solving one day.
type Stage string

const (
	// StageRead is loading and normalising the input file.
	StageRead Stage = "read"
	// StageCache is the answer cache lookup.
	StageCache Stage = "cache"
	// StageSolve is parsing and folding.
	StageSolve Stage = "solve"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the day is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking indicates the day is currently in Stage.
	StatusWorking Status = "working"
	// StatusDone indicates the day has answers.
	StatusDone Status = "done"
	// StatusCached indicates the answers came from the cache.
	StatusCached Status = "cached"
	// StatusError indicates the day failed.
	StatusError Status = "error"
)

// Event reports progress for one day (or for the whole run when Day is 0).
type Event struct {
	Day     int
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use.
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

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
