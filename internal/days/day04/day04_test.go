package day04

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"pgregory.net/rapid"

	"advent/internal/record"
)

var sample = []string{
	"2-4,6-8",
	"2-3,4-5",
	"5-7,7-9",
	"2-8,3-7",
	"6-6,4-6",
	"2-6,4-8",
}

func TestSample(t *testing.T) {
	answers, err := Puzzle().Solve(sample)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if answers[0].Value != 2 {
		t.Errorf("part 1 = %d, want 2", answers[0].Value)
	}
	if answers[1].Value != 4 {
		t.Errorf("part 2 = %d, want 4", answers[1].Value)
	}
}

func TestOverlapPredicates(t *testing.T) {
	tests := []struct {
		line    string
		full    bool
		partial bool
	}{
		{"2-4,6-8", false, false},
		{"5-7,7-9", false, true},
		{"6-6,4-6", true, true},
		{"2-8,3-7", true, true},
		{"3-7,2-8", true, true},
		{"1-1,1-1", true, true},
	}
	for _, tt := range tests {
		p, err := ParsePair(tt.line)
		if err != nil {
			t.Fatalf("ParsePair(%q): %v", tt.line, err)
		}
		if got := p.FullyOverlaps(); got != tt.full {
			t.Errorf("%s: FullyOverlaps = %v, want %v", tt.line, got, tt.full)
		}
		if got := p.Overlaps(); got != tt.partial {
			t.Errorf("%s: Overlaps = %v, want %v", tt.line, got, tt.partial)
		}
	}
}

func TestParsePair(t *testing.T) {
	got, err := ParsePair("12-34,5-600")
	if err != nil {
		t.Fatal(err)
	}
	want := Pair{First: SectionRange{12, 34}, Second: SectionRange{5, 600}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParsePair mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		typ string
	}{
		{"abc-def", "SectionRange"},
		{"5", "SectionRange"},
		{"1-2-3", "SectionRange"},
		{"-1-2", "SectionRange"},
	}
	for _, tt := range tests {
		_, err := ParseSectionRange(tt.in)
		pe, ok := record.AsParseError(err)
		if !ok {
			t.Fatalf("ParseSectionRange(%q): expected ParseError, got %v", tt.in, err)
		}
		if pe.Type != tt.typ || pe.Text != tt.in {
			t.Errorf("ParseSectionRange(%q) error = %+v", tt.in, pe)
		}
	}

	p, err := ParsePair("1-2,x-4")
	if err == nil {
		t.Fatalf("expected error, got %+v", p)
	}
	if p != (Pair{}) {
		t.Errorf("partial pair leaked: %+v", p)
	}
	pe, _ := record.AsParseError(err)
	if pe == nil || pe.Type != "Pair" || pe.Text != "1-2,x-4" {
		t.Errorf("outer error = %v", err)
	}
}

// A range is two numbers and a pair is two ranges; extra separators are not
// folded into the last field.
func TestExtraSeparatorsRejected(t *testing.T) {
	tests := []struct {
		in  string
		typ string
	}{
		{"1-2-3", "SectionRange"},
		{"1-2,3-4,5-6", "Pair"},
		{"1-2-3,4-5", "Pair"},
	}
	for _, tt := range tests {
		var err error
		if tt.typ == "Pair" {
			_, err = ParsePair(tt.in)
		} else {
			_, err = ParseSectionRange(tt.in)
		}
		pe, ok := record.AsParseError(err)
		if !ok {
			t.Fatalf("%q: expected ParseError, got %v", tt.in, err)
		}
		if pe.Type != tt.typ || pe.Text != tt.in {
			t.Errorf("%q: error = %+v, want type %s", tt.in, pe, tt.typ)
		}
	}

	_, err := Puzzle().Solve([]string{"2-4,6-8", "1-2,3-4,5-6"})
	if pe, ok := record.AsParseError(err); !ok || pe.Line != 2 {
		t.Errorf("expected ParseError at line 2, got %v", err)
	}
}

func TestSolveReportsLine(t *testing.T) {
	_, err := Puzzle().Solve([]string{"1-2,3-4", "", "1-2,3-4"})
	pe, ok := record.AsParseError(err)
	if !ok || pe.Line != 2 {
		t.Fatalf("expected ParseError at line 2, got %v", err)
	}
}

func TestOverlapSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r := func(label string) SectionRange {
			a := rapid.Uint32Range(0, 100).Draw(t, label+"a")
			b := rapid.Uint32Range(a, 100).Draw(t, label+"b")
			return SectionRange{a, b}
		}
		p := Pair{First: r("x"), Second: r("y")}
		q := Pair{First: p.Second, Second: p.First}
		if p.FullyOverlaps() != q.FullyOverlaps() || p.Overlaps() != q.Overlaps() {
			t.Fatalf("asymmetric result for %+v", p)
		}
		if p.FullyOverlaps() && !p.Overlaps() {
			t.Fatalf("full overlap without overlap for %+v", p)
		}
	})
}
