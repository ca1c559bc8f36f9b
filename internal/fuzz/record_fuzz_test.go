package fuzztests

import (
	"errors"
	"testing"

	"advent/internal/days/day02"
	"advent/internal/days/day04"
	"advent/internal/record"
)

// FuzzParseErrorsNameText checks that a rejected line is always reported as
// a ParseError carrying the structure name and the untouched text.
func FuzzParseErrorsNameText(f *testing.F) {
	for _, s := range []string{"2-4,6-8", "abc-def", "1-2", "A X", "C Z ", "A", ""} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		checks := []struct {
			typ   string
			parse func(string) error
		}{
			{"Pair", errOf(day04.ParsePair)},
			{"Round", errOf(day02.ParseGuessRound)},
			{"Round", errOf(day02.ParseStrategyRound)},
		}
		for _, c := range checks {
			err := c.parse(s)
			if err == nil {
				continue
			}
			var pe *record.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("%s: %q failed with %T, want *record.ParseError", c.typ, s, err)
			}
			if pe.Type != c.typ || pe.Text != s {
				t.Fatalf("%s: got ParseError{Type: %q, Text: %q} for %q", c.typ, pe.Type, pe.Text, s)
			}
		}
	})
}

// FuzzGroupByKeepsValues checks that grouping never loses a parsed value.
func FuzzGroupByKeepsValues(f *testing.F) {
	f.Add([]byte("1\n2\n\n3\nx\n4\n"))
	f.Fuzz(func(t *testing.T, input []byte) {
		lines := splitLines(clampInput(input))
		groups := record.GroupBy(lines, record.Uint)
		if len(groups) == 0 {
			t.Fatal("GroupBy must return at least one group")
		}
		parsed, total := 0, 0
		for _, l := range lines {
			if _, ok := record.Uint(l); ok {
				parsed++
			}
		}
		for _, g := range groups {
			total += len(g)
		}
		if parsed != total {
			t.Fatalf("%d values parsed, %d grouped", parsed, total)
		}
		if len(groups) != len(lines)-parsed+1 {
			t.Fatalf("%d separators, %d groups", len(lines)-parsed, len(groups))
		}
	})
}

func errOf[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}

func splitLines(b []byte) []string {
	var out []string
	start := 0
	for i, c := range b {
		if c == '\n' {
			out = append(out, string(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		out = append(out, string(b[start:]))
	}
	return out
}
