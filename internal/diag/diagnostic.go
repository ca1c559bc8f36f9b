package diag

import (
	"advent/internal/source"
)

type Note struct {
	Pos source.Pos
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Pos
	Notes    []Note
}

// New builds a diagnostic without notes.
func New(sev Severity, code Code, primary source.Pos, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: msg, Primary: primary}
}

// WithNote returns a copy of d with one more note.
func (d Diagnostic) WithNote(pos source.Pos, msg string) Diagnostic {
	d.Notes = append(append([]Note(nil), d.Notes...), Note{Pos: pos, Msg: msg})
	return d
}
