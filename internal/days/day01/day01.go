// Package day01 solves Calorie Counting: blank-line separated groups of
// integers, one group per elf.
package day01

import (
	"advent/internal/fold"
	"advent/internal/puzzle"
	"advent/internal/record"
)

const topElves = 3

// Puzzle returns the day 1 description.
func Puzzle() puzzle.Day {
	return puzzle.Day{
		Number: 1,
		Title:  "Calorie Counting",
		Input:  "data/day1.txt",
		Parts: []puzzle.Part{
			{Label: "Most calories carried by one elf", Solve: MostCalories},
			{Label: "Calories carried by the top three elves", Solve: TopThreeCalories},
		},
	}
}

// GroupSums returns the calorie total of every elf in input order. Any line
// that is not a number starts the next elf.
func GroupSums(lines []string) []uint64 {
	groups := record.GroupBy(lines, record.Uint)
	return fold.Map(groups, func(g []uint32) uint64 {
		return fold.SumBy(g, func(v uint32) uint64 { return uint64(v) })
	})
}

// MostCalories is the largest per-elf total.
func MostCalories(lines []string) (uint64, error) {
	return fold.Max(GroupSums(lines)), nil
}

// TopThreeCalories is the sum of the three largest per-elf totals.
func TopThreeCalories(lines []string) (uint64, error) {
	return fold.TopKSum(GroupSums(lines), topElves), nil
}
