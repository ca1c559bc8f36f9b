package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseNames(t *testing.T) {
	for _, l := range []Level{LevelOff, LevelError, LevelPhase, LevelDetail, LevelDebug} {
		got, err := ParseLevel(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLevel(%q) = %v, %v", l.String(), got, err)
		}
	}
	if got, err := ParseLevel(" DETAIL "); err != nil || got != LevelDetail {
		t.Errorf("ParseLevel should ignore case and spaces, got %v, %v", got, err)
	}
	_, err := ParseLevel("loud")
	if err == nil || !strings.Contains(err.Error(), "off|error|phase|detail|debug") {
		t.Errorf("Expected error listing levels, got %v", err)
	}

	for in, want := range map[string]Format{"": FormatAuto, "text": FormatText, "json": FormatNDJSON, "NDJSON": FormatNDJSON} {
		if got, err := ParseFormat(in); err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if m, err := ParseMode("both"); err != nil || m != ModeBoth {
		t.Errorf("ParseMode(both) = %v, %v", m, err)
	}
	if _, err := ParseMode("disk"); err == nil {
		t.Error("Expected error for unknown mode")
	}
	if Kind(42).String() != "unknown" || Scope(0).String() != "unknown" {
		t.Error("Expected unknown for values outside the tables")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopeDay, true},
		{LevelPhase, ScopePhase, false},
		{LevelDetail, ScopePhase, true},
		{LevelDetail, ScopeRecord, false},
		{LevelDebug, ScopeRecord, true},
		{LevelDebug, 0, false},
		{Level(9), ScopeDriver, false},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTextSpans(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	day := BeginDay(tr, "day:4", 4, 0)
	read := day.Child(ScopePhase, "read")
	read.WithExtra("lines", "6").WithExtra("bad", "0").End("")
	day.Child(ScopeRecord, "line:1").End("") // слишком подробно для detail
	day.Point(ScopePhase, "cache", "miss")
	day.End("ok")
	day.End("twice")

	if buf.Len() != 0 {
		t.Fatalf("Expected buffered output before Flush, got %q", buf.String())
	}
	if err := tr.Flush(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "\u2192 day:4") {
		t.Errorf("Expected begin arrow, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "\u2190 day 4/read {bad=0, lines=6}") {
		t.Errorf("Expected day prefix and sorted extras, got %q", lines[2])
	}
	if !strings.Contains(lines[3], "\u2022 day 4/cache (miss)") {
		t.Errorf("Expected cache point, got %q", lines[3])
	}
	if !strings.Contains(lines[4], "\u2190 day:4 (ok)") {
		t.Errorf("Expected end with detail, got %q", lines[4])
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	BeginDay(tr, "day:2", 2, 0).Point(ScopePhase, "cache", "hit")
	if err := tr.Close(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &ev); err != nil {
		t.Fatalf("invalid NDJSON %q: %v", buf.String(), err)
	}
	if ev["kind"] != "point" || ev["name"] != "cache" || ev["detail"] != "hit" || ev["day"] != float64(2) {
		t.Errorf("unexpected event: %v", ev)
	}
}

func TestFailPassesAtErrorLevel(t *testing.T) {
	ring := NewRingTracer(4, LevelError)
	day := BeginDay(ring, "day:2", 2, 0)
	day.Child(ScopePhase, "solve").End("")
	day.Fail(errors.New("bad round"))
	day.End("failed")
	Error(ring, ScopeDriver, "run", nil, 0)

	events := ring.Snapshot()
	if len(events) != 1 {
		t.Fatalf("Expected only the error event, got %d", len(events))
	}
	if events[0].Kind != KindError || events[0].Detail != "bad round" || events[0].Day != 2 {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestRingWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelDebug)
	if len(ring.Snapshot()) != 0 {
		t.Fatal("Expected empty snapshot")
	}
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopeRecord, name, "", 0)
	}
	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	if strings.Join(names, ",") != "c,d,e" {
		t.Errorf("Expected c,d,e, got %v", names)
	}

	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("Expected 3 dumped lines, got:\n%s", buf.String())
	}
}

func TestMultiFansOut(t *testing.T) {
	a := NewRingTracer(8, LevelPhase)
	b := NewRingTracer(8, LevelDebug)
	m := NewMultiTracer(LevelDebug, a, b)
	Point(m, ScopeRecord, "line:3", "", 0)
	Point(m, ScopeDriver, "start", "", 0)

	if n := len(a.Snapshot()); n != 1 {
		t.Errorf("phase ring: expected 1 event, got %d", n)
	}
	if n := len(b.Snapshot()); n != 2 {
		t.Errorf("debug ring: expected 2 events, got %d", n)
	}
	if ring, ok := FindRing(m); !ok || ring != a {
		t.Error("FindRing should return the first ring behind a multi tracer")
	}
}

func TestNewModes(t *testing.T) {
	tr, err := New(Config{Level: LevelOff, Mode: ModeStream})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Error("Expected disabled tracer")
	}
	if d := Begin(tr, ScopeDriver, "run", 0).End(""); d != 0 {
		t.Errorf("Expected zero duration from nop span, got %v", d)
	}

	var buf bytes.Buffer
	both, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := FindRing(both); !ok {
		t.Error("Expected a ring in both mode")
	}
	if _, ok := FindRing(Nop); ok {
		t.Error("Nop has no ring")
	}
	if _, err := New(Config{Level: LevelPhase}); err == nil {
		t.Error("Expected error without a storage mode")
	}
	if got := (Config{OutputPath: "run.ndjson"}).format(); got != FormatNDJSON {
		t.Errorf("Expected NDJSON from extension, got %v", got)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("Expected Nop from empty context")
	}
	ring := NewRingTracer(1, LevelPhase)
	ctx := WithTracer(context.Background(), ring)
	if FromContext(ctx) != Tracer(ring) {
		t.Error("Expected tracer from context")
	}
	ctx = WithSpanContext(ctx, SpanContext{SpanID: 7})
	if CurrentSpan(ctx).SpanID != 7 {
		t.Error("Expected span context to round through context")
	}
}
