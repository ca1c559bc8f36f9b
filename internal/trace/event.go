package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1 // span start
	KindSpanEnd                   // span end
	KindPoint                     // instant event
	KindError                     // failure, kept at every level except off
)

var kindNames = [...]string{
	KindSpanBegin: "begin",
	KindSpanEnd:   "end",
	KindPoint:     "point",
	KindError:     "error",
}

func (k Kind) String() string { return nameOf(kindNames[:], k) }

// Scope is the granularity of an event. Lower values are coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // one CLI command
	ScopeDay                     // one puzzle day
	ScopePhase                   // read, cache or solve within a day
	ScopeRecord                  // single input line
)

var scopeNames = [...]string{
	ScopeDriver: "driver",
	ScopeDay:    "day",
	ScopePhase:  "phase",
	ScopeRecord: "record",
}

func (s Scope) String() string { return nameOf(scopeNames[:], s) }

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // reassigned by the tracer that stores the event
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 for a root span
	Day      int    // puzzle day, 0 outside a day
	Name     string // "run", "read", "cache", "solve", ...
	Detail   string
	Extra    map[string]string
}
