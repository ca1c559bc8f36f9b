// Package day03 solves Rucksack Reorganization: score items shared between
// the two compartments of a pack and badges shared by groups of three.
package day03

import (
	"fmt"

	"advent/internal/fold"
	"advent/internal/puzzle"
	"advent/internal/record"
)

const groupSize = 3

// ErrNoBadge is returned when a group of packs has no item in common.
var ErrNoBadge = fmt.Errorf("no common badge in group: %w", puzzle.ErrUnsolvable)

// Compartments splits a pack into its two halves. An odd item count puts
// the extra item in the second half.
func Compartments(pack string) ([]rune, []rune) {
	items := []rune(pack)
	mid := len(items) / 2
	return items[:mid], items[mid:]
}

// DuplicatePriority sums the priorities of every item type found in both
// compartments of pack.
func DuplicatePriority(pack string) uint64 {
	left, right := Compartments(pack)
	return (setOf(left) & setOf(right)).sum()
}

// BadgePriority returns the priority of the first alphabet symbol carried by
// every pack in group.
func BadgePriority(group []string) (uint32, error) {
	common := ^itemSet(0)
	for _, pack := range group {
		common &= setOf([]rune(pack))
	}
	if len(group) == 0 {
		common = 0
	}
	p, ok := common.first()
	if !ok {
		return 0, ErrNoBadge
	}
	return p, nil
}

// DuplicateItems is the part 1 answer.
func DuplicateItems(lines []string) (uint64, error) {
	return fold.SumBy(lines, DuplicatePriority), nil
}

// Badges is the part 2 answer. Lines past the last complete group are
// ignored.
func Badges(lines []string) (uint64, error) {
	var total uint64
	for i, group := range fold.Windows(lines, groupSize) {
		p, err := BadgePriority(group)
		if err != nil {
			return 0, fmt.Errorf("group %d (lines %d-%d): %w", i+1, i*groupSize+1, (i+1)*groupSize, err)
		}
		total += uint64(p)
	}
	return total, nil
}

// Puzzle returns the day 3 description.
func Puzzle() puzzle.Day {
	return puzzle.Day{
		Number: 3,
		Title:  "Rucksack Reorganization",
		Input:  "data/day03.txt",
		Parts: []puzzle.Part{
			{Label: "Total cost of duplicate items", Solve: DuplicateItems},
			{Label: "Total cost of badges", Solve: Badges},
		},
		Check: checkGroups,
	}
}

func checkGroups(lines []string) []error {
	var errs []error
	for i, group := range fold.Windows(lines, groupSize) {
		if _, err := BadgePriority(group); err != nil {
			errs = append(errs, record.AtLine(err, i*groupSize+1))
		}
	}
	return errs
}
