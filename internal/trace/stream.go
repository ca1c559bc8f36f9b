package trace

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sync"
)

// StreamTracer writes events as they arrive. Files and other writers are
// buffered until Flush; stdout and stderr get every line at once.
type StreamTracer struct {
	mu     sync.Mutex
	out    *bufio.Writer
	closer io.Closer // nil for stdout/stderr and writers that cannot close
	eager  bool
	level  Level
	format Format
}

// NewStreamTracer creates a new StreamTracer.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	if format == FormatAuto {
		format = FormatText
	}
	t := &StreamTracer{out: bufio.NewWriter(w), level: level, format: format}
	switch w {
	case os.Stdout, os.Stderr:
		t.eager = true
	default:
		if c, ok := w.(io.Closer); ok {
			t.closer = c
		}
	}
	return t
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.accepts(ev) {
		return
	}
	ev.Seq = NextSeq()
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	// трассировка не должна ронять решение
	_, _ = t.out.Write(data) //nolint:errcheck
	if t.eager {
		_ = t.out.Flush()
	}
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.out.Flush()
}

// Close flushes and closes the underlying writer once.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	err := t.out.Flush()
	if t.closer != nil {
		err = errors.Join(err, t.closer.Close())
		t.closer = nil
	}
	return err
}

func (t *StreamTracer) Level() Level { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
