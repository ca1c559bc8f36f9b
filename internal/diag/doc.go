// Package diag defines the diagnostic model used by `advent check`.
//
// A Diagnostic points at one line of one input file (source.Pos) and carries
// a Severity, a stable Code and a short message. Producers emit through a
// Reporter; BagReporter collects into a Bag, which supports a size limit,
// sorting and deduplication.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; turning record errors into diagnostics is done by the
// driver.
package diag
