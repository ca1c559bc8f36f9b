// Package puzzle defines what a daily puzzle looks like to the driver: a
// numbered day with a default input path and one or more answer parts.
package puzzle

import (
	"errors"
	"fmt"
	"slices"

	"advent/internal/report"
)

var (
	// ErrUnknownDay is returned when a day is not registered.
	ErrUnknownDay = errors.New("unknown day")
	// ErrUnsolvable is wrapped by day errors for inputs that parse but
	// admit no answer.
	ErrUnsolvable = errors.New("input has no solution")
)

// Part computes one answer from the input lines.
type Part struct {
	Label string
	Solve func(lines []string) (uint64, error)
}

// Day describes one puzzle.
type Day struct {
	Number int
	Title  string
	Input  string // default input path, relative to the working directory
	Parts  []Part

	// Check, when set, validates every line without stopping at the first
	// failure. Days without structured records leave it nil.
	Check func(lines []string) []error
}

// Solve runs every part in order. It fails on the first part error and
// returns no answers for the day in that case.
func (d Day) Solve(lines []string) ([]report.Answer, error) {
	answers := make([]report.Answer, 0, len(d.Parts))
	for i, p := range d.Parts {
		v, err := p.Solve(lines)
		if err != nil {
			return nil, fmt.Errorf("day %d part %d: %w", d.Number, i+1, err)
		}
		answers = append(answers, report.Answer{
			Day:   d.Number,
			Part:  i + 1,
			Label: p.Label,
			Value: v,
		})
	}
	return answers, nil
}

// Registry holds the known days.
type Registry struct {
	days map[int]Day
}

// NewRegistry returns a registry populated with days.
func NewRegistry(days ...Day) (*Registry, error) {
	r := &Registry{days: make(map[int]Day, len(days))}
	for _, d := range days {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds d. Registering the same day number twice is an error.
func (r *Registry) Register(d Day) error {
	if d.Number <= 0 {
		return fmt.Errorf("invalid day number %d", d.Number)
	}
	if len(d.Parts) == 0 {
		return fmt.Errorf("day %d has no parts", d.Number)
	}
	if _, dup := r.days[d.Number]; dup {
		return fmt.Errorf("day %d registered twice", d.Number)
	}
	r.days[d.Number] = d
	return nil
}

// Get looks up a day by number.
func (r *Registry) Get(n int) (Day, error) {
	d, ok := r.days[n]
	if !ok {
		return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
	}
	return d, nil
}

// All returns every registered day ordered by number.
func (r *Registry) All() []Day {
	out := make([]Day, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Day) int { return a.Number - b.Number })
	return out
}

// Latest returns the highest registered day.
func (r *Registry) Latest() (Day, bool) {
	all := r.All()
	if len(all) == 0 {
		return Day{}, false
	}
	return all[len(all)-1], true
}
