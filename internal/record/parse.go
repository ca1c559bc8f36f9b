package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parser converts one line into a value of type T.
type Parser[T any] func(line string) (T, error)

var errMissingDelimiter = errors.New("missing delimiter")

// Uint try-parses a single non-negative decimal integer. Surrounding
// whitespace is not accepted.
func Uint(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// ParseUint is Uint as a Parser: a failure is a ParseError naming typ.
func ParseUint(typ string) Parser[uint32] {
	return func(s string) (uint32, error) {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return 0, NewParseError(typ, s, err)
		}
		return uint32(v), nil
	}
}

// Cut splits s around the first sep and parses both halves. Any failure,
// including a missing sep, yields one *ParseError for typ with the full s;
// no partially built value is returned.
func Cut[A, B any](s, sep, typ string, left Parser[A], right Parser[B]) (A, B, error) {
	var zeroA A
	var zeroB B

	l, r, ok := strings.Cut(s, sep)
	if !ok {
		return zeroA, zeroB, NewParseError(typ, s, fmt.Errorf("%w %q", errMissingDelimiter, sep))
	}
	a, err := left(l)
	if err != nil {
		return zeroA, zeroB, NewParseError(typ, s, err)
	}
	b, err := right(r)
	if err != nil {
		return zeroA, zeroB, NewParseError(typ, s, err)
	}
	return a, b, nil
}

// ParseAll parses every line and stops at the first failure. The returned
// error carries the 1-based line number.
func ParseAll[T any](lines []string, parse Parser[T]) ([]T, error) {
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := parse(line)
		if err != nil {
			return nil, AtLine(err, i+1)
		}
		out = append(out, v)
	}
	return out, nil
}

// CheckAll parses every line and returns one error per line that failed,
// in input order. It never stops early.
func CheckAll[T any](lines []string, parse Parser[T]) []error {
	var errs []error
	for i, line := range lines {
		if _, err := parse(line); err != nil {
			errs = append(errs, AtLine(err, i+1))
		}
	}
	return errs
}
