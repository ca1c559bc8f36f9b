package observ

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Phase is one timed step of one day ("read", "solve").
type Phase struct {
	Day   int
	Step  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Label renders the phase as "day N step"; day 0 is the run itself.
func (p Phase) Label() string {
	if p.Day == 0 {
		return p.Step
	}
	return fmt.Sprintf("day %d %s", p.Day, p.Step)
}

// Timer collects phases from concurrently solved days.
type Timer struct {
	mu     sync.Mutex
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{} }

// Begin opens a phase and returns a handle for End. A nil Timer returns -1.
func (t *Timer) Begin(day int, step string) int {
	if t == nil {
		return -1
	}
	now := time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.phases = append(t.phases, Phase{Day: day, Step: step, Start: now})
	return len(t.phases) - 1
}

// End closes the phase behind handle. Unknown handles are ignored.
func (t *Timer) End(handle int, note string) {
	if t == nil {
		return
	}
	now := time.Now()
	t.mu.Lock()
	defer t.mu.Unlock()
	if handle < 0 || handle >= len(t.phases) {
		return
	}
	p := &t.phases[handle]
	p.Dur = now.Sub(p.Start)
	p.Note = note
}

// Phases returns a copy of the recorded phases in start order.
func (t *Timer) Phases() []Phase {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Phase(nil), t.phases...)
}

// PhaseReport is one phase in milliseconds.
type PhaseReport struct {
	Day        int     `json:"day,omitempty"`
	Step       string  `json:"step"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report summarises a run. Days overlap when solved in parallel, so TotalMS
// (the sum of all phases) can exceed WallMS.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	WallMS  float64       `json:"wall_ms"`
	Phases  []PhaseReport `json:"phases"`
}

func (t *Timer) Report() Report {
	phases := t.Phases()
	if len(phases) == 0 {
		return Report{}
	}
	var (
		rep        = Report{Phases: make([]PhaseReport, 0, len(phases))}
		sum        time.Duration
		first, end time.Time
	)
	for i, p := range phases {
		sum += p.Dur
		if i == 0 || p.Start.Before(first) {
			first = p.Start
		}
		if stop := p.Start.Add(p.Dur); stop.After(end) {
			end = stop
		}
		rep.Phases = append(rep.Phases, PhaseReport{Day: p.Day, Step: p.Step, DurationMS: millis(p.Dur), Note: p.Note})
	}
	rep.TotalMS = millis(sum)
	rep.WallMS = millis(end.Sub(first))
	return rep
}

// Summary renders Report as an aligned table.
func (t *Timer) Summary() string {
	rep := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range rep.Phases {
		label := Phase{Day: p.Day, Step: p.Step}.Label()
		fmt.Fprintf(&b, "  %-16s %8.3f ms", label, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-16s %8.3f ms\n", "sum", rep.TotalMS)
	fmt.Fprintf(&b, "  %-16s %8.3f ms\n", "wall", rep.WallMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
