package day03

import "math/bits"

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// priorities[c] is the 1-based alphabet position of ASCII byte c, 0 when c
// is not in the alphabet.
var priorities = func() (t [128]uint8) {
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = uint8(i + 1)
	}
	return t
}()

// Priority maps a-z to 1..26 and A-Z to 27..52.
func Priority(r rune) (uint32, bool) {
	if r < 0 || int(r) >= len(priorities) {
		return 0, false
	}
	p := priorities[r]
	return uint32(p), p != 0
}

// itemSet has bit p set when the item with priority p is present.
type itemSet uint64

func setOf(items []rune) itemSet {
	var s itemSet
	for _, r := range items {
		if p, ok := Priority(r); ok {
			s |= 1 << p
		}
	}
	return s
}

func (s itemSet) sum() uint64 {
	var total uint64
	for s != 0 {
		total += uint64(bits.TrailingZeros64(uint64(s)))
		s &= s - 1
	}
	return total
}

// first returns the lowest priority in s, i.e. the earliest alphabet symbol.
func (s itemSet) first() (uint32, bool) {
	if s == 0 {
		return 0, false
	}
	return uint32(bits.TrailingZeros64(uint64(s))), true
}
