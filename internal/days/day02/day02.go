// Package day02 solves Rock Paper Scissors: score a strategy guide of
// "A X" rounds under two readings of the second column.
package day02

import (
	"fmt"
	"strings"

	"advent/internal/fold"
	"advent/internal/puzzle"
	"advent/internal/record"
)

// Round is one hand of the tournament.
type Round struct {
	Me  Shape
	Opp Shape
}

// Score is the shape value plus the outcome value for Me.
func (r Round) Score() uint64 {
	return r.Me.Value() + r.Me.Compare(r.Opp).Value()
}

func columns(s string) (string, string, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("expected 2 columns, got %d", len(fields))
	}
	return fields[0], fields[1], nil
}

// ParseGuessRound reads the second column as my shape.
func ParseGuessRound(s string) (Round, error) {
	oppCol, meCol, err := columns(s)
	if err != nil {
		return Round{}, record.NewParseError("Round", s, err)
	}
	opp, err := ParseShape(oppCol)
	if err != nil {
		return Round{}, record.NewParseError("Round", s, err)
	}
	me, err := ParseShape(meCol)
	if err != nil {
		return Round{}, record.NewParseError("Round", s, err)
	}
	return Round{Me: me, Opp: opp}, nil
}

// ParseStrategyRound reads the second column as the outcome I need and
// picks the shape that reaches it.
func ParseStrategyRound(s string) (Round, error) {
	oppCol, wantCol, err := columns(s)
	if err != nil {
		return Round{}, record.NewParseError("Round", s, err)
	}
	opp, err := ParseShape(oppCol)
	if err != nil {
		return Round{}, record.NewParseError("Round", s, err)
	}
	want, err := ParseOutcome(wantCol)
	if err != nil {
		return Round{}, record.NewParseError("Round", s, err)
	}
	return Round{Me: opp.Respond(want), Opp: opp}, nil
}

func totalScore(parse record.Parser[Round]) func([]string) (uint64, error) {
	return func(lines []string) (uint64, error) {
		rounds, err := record.ParseAll(lines, parse)
		if err != nil {
			return 0, err
		}
		return fold.SumBy(rounds, Round.Score), nil
	}
}

// Puzzle returns the day 2 description.
func Puzzle() puzzle.Day {
	return puzzle.Day{
		Number: 2,
		Title:  "Rock Paper Scissors",
		Input:  "data/day2.txt",
		Parts: []puzzle.Part{
			{Label: "Imperfect strategy guide total score", Solve: totalScore(ParseGuessRound)},
			{Label: "Strategy guide total score", Solve: totalScore(ParseStrategyRound)},
		},
		// every line ParseGuessRound rejects, ParseStrategyRound rejects too
		Check: func(lines []string) []error {
			return record.CheckAll(lines, ParseStrategyRound)
		},
	}
}
