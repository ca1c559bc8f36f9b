package day02

import (
	"errors"
	"testing"

	"advent/internal/record"
)

var sample = []string{"A Y", "B X", "C Z"}

func TestSample(t *testing.T) {
	answers, err := Puzzle().Solve(sample)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if answers[0].Value != 15 {
		t.Errorf("part 1 = %d, want 15", answers[0].Value)
	}
	if answers[1].Value != 12 {
		t.Errorf("part 2 = %d, want 12", answers[1].Value)
	}
}

func TestCompareTable(t *testing.T) {
	shapes := []Shape{Rock, Paper, Scissors}
	for _, a := range shapes {
		if a.Compare(a) != Draw {
			t.Errorf("%v vs itself = %v, want Draw", a, a.Compare(a))
		}
		for _, b := range shapes {
			ab, ba := a.Compare(b), b.Compare(a)
			switch ab {
			case Win:
				if ba != Loss {
					t.Errorf("%v beats %v but reverse is %v", a, b, ba)
				}
			case Loss:
				if ba != Win {
					t.Errorf("%v loses to %v but reverse is %v", a, b, ba)
				}
			}
		}
	}
	if Rock.Compare(Scissors) != Win || Scissors.Compare(Paper) != Win || Paper.Compare(Rock) != Win {
		t.Error("winning cycle is broken")
	}
}

func TestRespondReachesOutcome(t *testing.T) {
	for _, opp := range []Shape{Rock, Paper, Scissors} {
		for _, want := range []Outcome{Loss, Draw, Win} {
			me := opp.Respond(want)
			if got := me.Compare(opp); got != want {
				t.Errorf("Respond(%v, %v) = %v which gives %v", opp, want, me, got)
			}
		}
	}
}

func TestRoundScore(t *testing.T) {
	tests := []struct {
		r    Round
		want uint64
	}{
		{Round{Me: Paper, Opp: Rock}, 8},
		{Round{Me: Rock, Opp: Paper}, 1},
		{Round{Me: Scissors, Opp: Scissors}, 6},
	}
	for _, tt := range tests {
		if got := tt.r.Score(); got != tt.want {
			t.Errorf("%+v.Score() = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestParseRoundErrors(t *testing.T) {
	tests := []struct {
		name  string
		parse record.Parser[Round]
		in    string
	}{
		{"guess empty", ParseGuessRound, ""},
		{"guess bad opponent", ParseGuessRound, "D X"},
		{"guess bad me", ParseGuessRound, "A W"},
		{"guess extra column", ParseGuessRound, "A X Y"},
		{"strategy outcome from opponent alphabet", ParseStrategyRound, "A B"},
		{"strategy single column", ParseStrategyRound, "A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.parse(tt.in)
			if err == nil {
				t.Fatalf("expected error, got %+v", r)
			}
			if r != (Round{}) {
				t.Errorf("partial round leaked: %+v", r)
			}
			pe, ok := record.AsParseError(err)
			if !ok || pe.Type != "Round" || pe.Text != tt.in {
				t.Errorf("got %v, want ParseError{Round, %q}", err, tt.in)
			}
		})
	}
}

func TestInnerErrorKept(t *testing.T) {
	_, err := ParseStrategyRound("A Q")
	var pe *record.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	inner, ok := record.AsParseError(pe.Unwrap())
	if !ok || inner.Type != "Outcome" || inner.Text != "Q" {
		t.Errorf("inner error = %v", pe.Unwrap())
	}
}

func TestSolveStopsOnBadLine(t *testing.T) {
	_, err := Puzzle().Solve([]string{"A Y", "nonsense"})
	pe, ok := record.AsParseError(err)
	if !ok {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if pe.Line != 2 {
		t.Errorf("Line = %d, want 2", pe.Line)
	}
}

func TestCheck(t *testing.T) {
	errs := Puzzle().Check([]string{"A Y", "A B", "", "C Z"})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
}
