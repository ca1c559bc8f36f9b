package trace

import "time"

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	emitAt(t, KindPoint, scope, name, detail, 0, parent)
}

// Error records a failure. It is kept at every level except LevelOff.
func Error(t Tracer, scope Scope, name string, err error, parent uint64) {
	if err == nil {
		return
	}
	emitAt(t, KindError, scope, name, err.Error(), 0, parent)
}

func emitAt(t Tracer, kind Kind, scope Scope, name, detail string, day int, parent uint64) {
	if t == nil || !t.Enabled() {
		return
	}
	if kind != KindError && !t.Level().ShouldEmit(scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Seq:      NextSeq(),
		Kind:     kind,
		Scope:    scope,
		ParentID: parent,
		Day:      day,
		Name:     name,
		Detail:   detail,
	})
}
