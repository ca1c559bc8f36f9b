// Package days lists every puzzle the binary knows about.
package days

import (
	"advent/internal/days/day01"
	"advent/internal/days/day02"
	"advent/internal/days/day03"
	"advent/internal/days/day04"
	"advent/internal/puzzle"
)

// All returns a fresh copy of every puzzle, in day order.
func All() []puzzle.Day {
	return []puzzle.Day{
		day01.Puzzle(),
		day02.Puzzle(),
		day03.Puzzle(),
		day04.Puzzle(),
	}
}

// Registry builds a registry with every puzzle registered.
func Registry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(All()...)
}
