package trace

// nopTracer backs runs without --trace: spans begun on it are inert and the
// driver pays only for the Enabled check.
type nopTracer struct{}

func (nopTracer) Emit(*Event) {}

func (nopTracer) Flush() error { return nil }

func (nopTracer) Close() error { return nil }

func (nopTracer) Level() Level { return LevelOff }

func (nopTracer) Enabled() bool { return false }

// Nop is what FromContext hands out when a command set no tracer.
var Nop Tracer = nopTracer{}
