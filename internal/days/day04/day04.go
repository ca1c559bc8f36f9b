// Package day04 solves Camp Cleanup: pairs of section ranges written as
// "a-b,c-d".
package day04

import (
	"advent/internal/fold"
	"advent/internal/puzzle"
	"advent/internal/record"
)

// SectionRange is an inclusive range of section IDs. Start <= End is not
// checked.
type SectionRange struct {
	Start uint32
	End   uint32
}

// ParseSectionRange reads "a-b".
func ParseSectionRange(s string) (SectionRange, error) {
	start, end, err := record.Cut(s, "-", "SectionRange", record.ParseUint("uint32"), record.ParseUint("uint32"))
	if err != nil {
		return SectionRange{}, err
	}
	return SectionRange{Start: start, End: end}, nil
}

// ContainedBy reports whether r lies entirely inside o.
func (r SectionRange) ContainedBy(o SectionRange) bool {
	return r.Start >= o.Start && r.End <= o.End
}

// PartiallyOverlapping reports whether either end of r falls inside o.
func (r SectionRange) PartiallyOverlapping(o SectionRange) bool {
	return (r.Start >= o.Start && r.Start <= o.End) ||
		(r.End >= o.Start && r.End <= o.End)
}

// Pair is the two assignments of one line.
type Pair struct {
	First  SectionRange
	Second SectionRange
}

// ParsePair reads "a-b,c-d".
func ParsePair(s string) (Pair, error) {
	first, second, err := record.Cut(s, ",", "Pair", ParseSectionRange, ParseSectionRange)
	if err != nil {
		return Pair{}, err
	}
	return Pair{First: first, Second: second}, nil
}

// FullyOverlaps reports whether one range contains the other.
func (p Pair) FullyOverlaps() bool {
	return p.First.ContainedBy(p.Second) || p.Second.ContainedBy(p.First)
}

// Overlaps reports whether the ranges share at least one section.
func (p Pair) Overlaps() bool {
	return p.First.PartiallyOverlapping(p.Second) || p.Second.PartiallyOverlapping(p.First)
}

func countPairs(pred func(Pair) bool) func([]string) (uint64, error) {
	return func(lines []string) (uint64, error) {
		pairs, err := record.ParseAll(lines, ParsePair)
		if err != nil {
			return 0, err
		}
		return uint64(fold.CountIf(pairs, pred)), nil
	}
}

// Puzzle returns the day 4 description.
func Puzzle() puzzle.Day {
	return puzzle.Day{
		Number: 4,
		Title:  "Camp Cleanup",
		Input:  "data/day04.txt",
		Parts: []puzzle.Part{
			{Label: "Number of fully overlapping pairs is", Solve: countPairs(Pair.FullyOverlaps)},
			{Label: "Number of partially overlapping pairs is", Solve: countPairs(Pair.Overlaps)},
		},
		Check: func(lines []string) []error {
			return record.CheckAll(lines, ParsePair)
		},
	}
}
