// Package trace records what the driver does while solving puzzles.
//
// The tool has no leveled logger; spans and point events are its log.
//
// # Usage
//
//	advent run --all --trace=- --trace-level=detail
//
// # Tracers
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer, dumped when a run fails
//   - MultiTracer: fans out to several tracers
//
// # Levels and scopes
//
// LevelPhase keeps driver and per-day spans, LevelDetail adds the
// load/parse/solve phases of each day, LevelDebug keeps everything.
// Error events pass at any level other than LevelOff.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	day := trace.BeginDay(t, "day:4", 4, trace.CurrentSpan(ctx).SpanID)
//	read := day.Child(trace.ScopePhase, "read")
//	read.End("")
//	day.Point(trace.ScopePhase, "cache", "hit")
//	day.End("ok")
package trace
