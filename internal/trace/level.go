package trace

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only failures
	LevelPhase               // driver + day boundaries
	LevelDetail              // read/cache/solve per day
	LevelDebug               // everything including single records
)

var levelNames = [...]string{
	LevelOff:    "off",
	LevelError:  "error",
	LevelPhase:  "phase",
	LevelDetail: "detail",
	LevelDebug:  "debug",
}

// самый подробный scope, который пропускает уровень; ошибки идут отдельно
var levelDepth = [...]Scope{
	LevelOff:    0,
	LevelError:  0,
	LevelPhase:  ScopeDay,
	LevelDetail: ScopePhase,
	LevelDebug:  ScopeRecord,
}

func (l Level) String() string { return nameOf(levelNames[:], l) }

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	return parseName[Level]("level", s, levelNames[:], nil)
}

// ShouldEmit reports whether spans and points at scope pass this level.
func (l Level) ShouldEmit(scope Scope) bool {
	if int(l) >= len(levelDepth) || scope == 0 {
		return false
	}
	return scope <= levelDepth[l]
}

// accepts reports whether a tracer at level l keeps ev.
func (l Level) accepts(ev *Event) bool {
	if ev.Kind == KindError {
		return l > LevelOff
	}
	return l.ShouldEmit(ev.Scope)
}
