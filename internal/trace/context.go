package trace

import "context"

// Commands put their tracer and root span on cmd.Context(); driver.Run and
// driver.Check read both back so day spans hang under the command span.

type ctxKey struct{}

// FromContext returns the command's tracer, or Nop when tracing is off.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

// WithTracer stores t for the rest of the command; nil stores Nop.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

// SpanContext names the span new day spans should use as parent.
type SpanContext struct {
	SpanID uint64
}

type spanCtxKey struct{}

// CurrentSpan is the parent for the next span; zero means a new root.
func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	if sc, ok := ctx.Value(spanCtxKey{}).(SpanContext); ok {
		return sc
	}
	return SpanContext{}
}

// WithSpanContext makes sc the parent of spans begun under ctx.
func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	if ctx == nil {
		return nil
	}
	return context.WithValue(ctx, spanCtxKey{}, sc)
}
