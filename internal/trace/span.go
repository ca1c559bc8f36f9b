package trace

import (
	"sync/atomic"
	"time"
)

var (
	seq     atomic.Uint64
	spanIDs atomic.Uint64
)

// NextSeq returns a monotonically increasing sequence number.
func NextSeq() uint64 { return seq.Add(1) }

// NextSpanID returns a unique span ID.
func NextSpanID() uint64 { return spanIDs.Add(1) }

// Span is an open operation. A span filtered out by the level is inert: it
// emits nothing on End but still forwards errors and children to its tracer.
type Span struct {
	tracer  Tracer
	live    bool
	id      uint64
	parent  uint64
	day     int
	scope   Scope
	name    string
	started time.Time
	extra   map[string]string
}

// Begin starts a span outside any day. parent is 0 for a root span.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	return start(t, scope, name, 0, parent)
}

// BeginDay starts a day-scoped span. Children inherit the day.
func BeginDay(t Tracer, name string, day int, parent uint64) *Span {
	return start(t, ScopeDay, name, day, parent)
}

func start(t Tracer, scope Scope, name string, day int, parent uint64) *Span {
	if t == nil {
		t = Nop
	}
	s := &Span{tracer: t, parent: parent, day: day, scope: scope, name: name}
	if !t.Enabled() || !t.Level().ShouldEmit(scope) {
		return s
	}
	s.live = true
	s.id = NextSpanID()
	s.started = time.Now()
	t.Emit(s.event(KindSpanBegin, s.started, ""))
	return s
}

func (s *Span) event(kind Kind, at time.Time, detail string) *Event {
	return &Event{
		Time:     at,
		Seq:      NextSeq(),
		Kind:     kind,
		Scope:    s.scope,
		SpanID:   s.id,
		ParentID: s.parent,
		Day:      s.day,
		Name:     s.name,
		Detail:   detail,
	}
}

// Child starts a nested span with the same day.
func (s *Span) Child(scope Scope, name string) *Span {
	if s == nil {
		return start(Nop, scope, name, 0, 0)
	}
	return start(s.tracer, scope, name, s.day, s.id)
}

// Point records an instant event under the span.
func (s *Span) Point(scope Scope, name, detail string) {
	if s == nil {
		return
	}
	emitAt(s.tracer, KindPoint, scope, name, detail, s.day, s.id)
}

// Fail records err against the span.
func (s *Span) Fail(err error) {
	if s == nil || err == nil {
		return
	}
	emitAt(s.tracer, KindError, s.scope, s.name, err.Error(), s.day, s.id)
}

// End emits SpanEnd and returns the span duration. Only the first call
// counts.
func (s *Span) End(detail string) time.Duration {
	if s == nil || !s.live {
		return 0
	}
	s.live = false
	now := time.Now()
	ev := s.event(KindSpanEnd, now, detail)
	ev.Extra = s.extra
	s.tracer.Emit(ev)
	return now.Sub(s.started)
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || !s.live {
		return s
	}
	if s.extra == nil {
		s.extra = make(map[string]string, 2)
	}
	s.extra[key] = value
	return s
}

// ID returns the span ID, 0 for inert spans.
func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.id
}
