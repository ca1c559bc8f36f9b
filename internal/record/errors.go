package record

import (
	"errors"
	"fmt"
)

// ParseError reports a line that could not be turned into a domain value.
type ParseError struct {
	Type string // target structure, e.g. "Pair"
	Text string // original offending text
	Line int    // 1-based input line, 0 if unknown
	Err  error  // inner cause, may be nil
}

// NewParseError builds a ParseError for text that failed to parse into typ.
func NewParseError(typ, text string, cause error) *ParseError {
	return &ParseError{Type: typ, Text: text, Err: cause}
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("failed to parse %q into %s", e.Text, e.Type)
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AsParseError extracts the first *ParseError in err's chain.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// LineError ties a non-ParseError failure to an input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// AtLine attaches a 1-based input line number to err. A bare *ParseError
// is copied with Line set; anything else is wrapped in a *LineError.
func AtLine(err error, line int) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ParseError); ok {
		if pe.Line != 0 {
			return pe
		}
		cp := *pe
		cp.Line = line
		return &cp
	}
	return &LineError{Line: line, Err: err}
}

// LineOf returns the input line recorded anywhere in err's chain, or 0.
func LineOf(err error) int {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Line > 0 {
		return pe.Line
	}
	var le *LineError
	if errors.As(err, &le) {
		return le.Line
	}
	return 0
}
