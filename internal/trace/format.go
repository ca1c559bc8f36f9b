package trace

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Format represents the output format for trace events.
type Format uint8

const (
	FormatAuto   Format = iota // pick from the output path
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

var formatNames = [...]string{
	FormatAuto:   "auto",
	FormatText:   "text",
	FormatNDJSON: "ndjson",
}

var formatAliases = map[string]Format{
	"":      FormatAuto,
	"json":  FormatNDJSON,
	"jsonl": FormatNDJSON,
}

func (f Format) String() string { return nameOf(formatNames[:], f) }

// ParseFormat converts a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	return parseName("format", s, formatNames[:], formatAliases)
}

// FormatEvent renders one event, newline included.
func FormatEvent(ev *Event, format Format) []byte {
	if format == FormatNDJSON {
		return formatNDJSON(ev)
	}
	return formatText(ev)
}

type jsonEvent struct {
	Time     string            `json:"time"`
	Seq      uint64            `json:"seq"`
	Kind     string            `json:"kind"`
	Scope    string            `json:"scope"`
	SpanID   uint64            `json:"span_id,omitempty"`
	ParentID uint64            `json:"parent_id,omitempty"`
	Day      int               `json:"day,omitempty"`
	Name     string            `json:"name"`
	Detail   string            `json:"detail,omitempty"`
	Extra    map[string]string `json:"extra,omitempty"`
}

func formatNDJSON(ev *Event) []byte {
	data, _ := json.Marshal(jsonEvent{ //nolint:errchkjson // только строки и числа
		Time:     ev.Time.Format("2006-01-02T15:04:05.000000Z07:00"),
		Seq:      ev.Seq,
		Kind:     ev.Kind.String(),
		Scope:    ev.Scope.String(),
		SpanID:   ev.SpanID,
		ParentID: ev.ParentID,
		Day:      ev.Day,
		Name:     ev.Name,
		Detail:   ev.Detail,
		Extra:    ev.Extra,
	})
	return append(data, '\n')
}

var kindMarks = [...]string{
	KindSpanBegin: "\u2192 ", // →
	KindSpanEnd:   "\u2190 ", // ←
	KindPoint:     "\u2022 ", // •
	KindError:     "\u2717 ", // ✗
}

// formatText renders
//
//	[hh:mm:ss.mmm] <indent><mark> [day N/]name (detail) {k=v, ...}
//
// Events inside a day but below day scope carry the "day N/" prefix.
func formatText(ev *Event) []byte {
	var sb strings.Builder
	sb.WriteString(ev.Time.Format("[15:04:05.000] "))
	if ev.Scope > ScopeDriver {
		sb.WriteString(strings.Repeat("  ", int(ev.Scope-ScopeDriver)))
	}
	if int(ev.Kind) < len(kindMarks) {
		sb.WriteString(kindMarks[ev.Kind])
	}
	if ev.Day > 0 && ev.Scope != ScopeDay {
		sb.WriteString("day " + strconv.Itoa(ev.Day) + "/")
	}
	sb.WriteString(ev.Name)
	if ev.Detail != "" {
		sb.WriteString(" (" + ev.Detail + ")")
	}
	if len(ev.Extra) > 0 {
		sb.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(ev.Extra)) {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k + "=" + ev.Extra[k])
		}
		sb.WriteString("}")
	}
	sb.WriteByte('\n')
	return []byte(sb.String())
}
