// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"advent/internal/source"
)

// CheckLineInvariants runs the line-index invariants on a loaded file:
// 1) LineIdx is strictly increasing and every entry points at a '\n'
// 2) LineIdx has one entry per '\n' in Content
// 3) LineCount agrees with Lines, and GetLine(n) == Lines()[n-1]
// 4) a line past the end reads as ""
func CheckLineInvariants(f *source.File) error {
	if f == nil {
		return fmt.Errorf("nil file")
	}

	// 1) index sanity
	prev := -1
	for i, off := range f.LineIdx {
		pos := int(off)
		if pos <= prev {
			return fmt.Errorf("line index not increasing at %d: %d after %d", i, pos, prev)
		}
		if pos >= len(f.Content) || f.Content[pos] != '\n' {
			return fmt.Errorf("line index %d = %d does not point at a newline", i, pos)
		}
		prev = pos
	}

	// 2) one entry per terminator
	newlines := 0
	for _, b := range f.Content {
		if b == '\n' {
			newlines++
		}
	}
	if newlines != len(f.LineIdx) {
		return fmt.Errorf("line index has %d entries for %d newlines", len(f.LineIdx), newlines)
	}

	// 3) index and split agree
	lines := f.Lines()
	count, err := safecast.Conv[uint32](len(lines))
	if err != nil {
		return fmt.Errorf("line count overflow: %w", err)
	}
	if got := f.LineCount(); got != count {
		return fmt.Errorf("LineCount = %d, Lines has %d", got, count)
	}
	for i, want := range lines {
		n := uint32(i) + 1
		if got := f.GetLine(n); got != want {
			return fmt.Errorf("GetLine(%d) = %q, Lines()[%d] = %q", n, got, i, want)
		}
	}

	// 4) past the end
	if got := f.GetLine(count + 1); got != "" {
		return fmt.Errorf("GetLine(%d) past the end = %q", count+1, got)
	}
	return nil
}
