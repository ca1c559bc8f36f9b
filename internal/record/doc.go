// Package record turns raw input lines into typed puzzle values.
//
// Two disciplines are supported:
//
//   - try-parse grouping (GroupBy): a line that does not parse is a group
//     separator, never an error;
//   - structured parsing (Cut, ParseAll): every sub-field must parse or the
//     whole line fails with a single *ParseError naming the target type and
//     carrying the original text.
//
// Package record does no IO; callers hand it lines produced by
// internal/source.
package record
