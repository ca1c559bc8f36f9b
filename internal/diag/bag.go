package diag

import (
	"cmp"
	"slices"

	"advent/internal/source"
)

// Bag collects diagnostics up to a limit. Anything past the limit is only
// counted.
type Bag struct {
	items   []Diagnostic
	limit   int
	dropped int
}

// NewBag returns a bag holding at most limit diagnostics; limit <= 0 means
// no limit.
func NewBag(limit int) *Bag {
	return &Bag{limit: max(limit, 0)}
}

func (b *Bag) full() bool {
	return b.limit > 0 && len(b.items) >= b.limit
}

// Add stores d and reports whether it fit under the limit.
func (b *Bag) Add(d Diagnostic) bool {
	if b.full() {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Cap is the limit, 0 when unlimited.
func (b *Bag) Cap() int { return b.limit }

// Dropped is how many diagnostics were refused because of the limit.
func (b *Bag) Dropped() int { return b.dropped }

// Len is the number of kept diagnostics.
func (b *Bag) Len() int { return len(b.items) }

// Items returns the kept diagnostics. The slice aliases the bag.
func (b *Bag) Items() []Diagnostic { return b.items }

// HasErrors reports an error-level diagnostic. A dropped diagnostic counts
// as one, since the bag no longer knows its severity.
func (b *Bag) HasErrors() bool {
	return b.dropped > 0 || slices.ContainsFunc(b.items, func(d Diagnostic) bool {
		return d.Severity.FailsCheck()
	})
}

// Merge moves other's diagnostics into b under b's limit. Diagnostics
// other had already dropped stay dropped.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	for _, d := range other.items {
		b.Add(d)
	}
	b.dropped += other.dropped
}

// Sort orders by file, then line, then severity (errors first), then code.
func (b *Bag) Sort() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return cmp.Or(
			cmp.Compare(x.Primary.File, y.Primary.File),
			cmp.Compare(x.Primary.Line, y.Primary.Line),
			cmp.Compare(y.Severity, x.Severity),
			cmp.Compare(x.Code, y.Code),
		)
	})
}

// Dedup drops repeats of the same code and message at the same position,
// keeping the first.
func (b *Bag) Dedup() {
	type key struct {
		code Code
		pos  source.Pos
		msg  string
	}
	seen := make(map[key]struct{}, len(b.items))
	b.items = slices.DeleteFunc(b.items, func(d Diagnostic) bool {
		k := key{d.Code, d.Primary, d.Message}
		if _, dup := seen[k]; dup {
			return true
		}
		seen[k] = struct{}{}
		return false
	})
}
