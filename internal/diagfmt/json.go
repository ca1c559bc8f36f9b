package diagfmt

import (
	"encoding/json"
	"io"

	"advent/internal/diag"
	"advent/internal/source"
)

// Location is a file position in JSON output. Line is omitted for
// diagnostics about the whole file.
type Location struct {
	File string `json:"file"`
	Line uint32 `json:"line,omitempty"`
	Text string `json:"text,omitempty"` // строка входа, если IncludeText
}

type Note struct {
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

// Problem is one diagnostic in JSON output.
type Problem struct {
	Severity string   `json:"severity"`
	Code     string   `json:"code"`
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Location Location `json:"location"`
	Notes    []Note   `json:"notes,omitempty"`
}

// Output is the document written by JSON. Dropped counts diagnostics cut
// by the bag limit or by JSONOpts.Max.
type Output struct {
	Diagnostics []Problem `json:"diagnostics"`
	Count       int       `json:"count"`
	Dropped     int       `json:"dropped,omitempty"`
}

type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) location(pos source.Pos) Location {
	loc := Location{File: formatPath(b.fs, pos.File, b.opts.PathMode), Line: pos.Line}
	if b.opts.IncludeText {
		loc.Text, _ = lineText(b.fs, pos)
	}
	return loc
}

func (b jsonBuilder) problem(d diag.Diagnostic) Problem {
	p := Problem{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Title:    d.Code.Title(),
		Message:  d.Message,
		Location: b.location(d.Primary),
	}
	if b.opts.IncludeNotes {
		for _, n := range d.Notes {
			p.Notes = append(p.Notes, Note{Message: n.Msg, Location: b.location(n.Pos)})
		}
	}
	return p
}

// BuildOutput converts bag without serializing it.
func BuildOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) Output {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	b := jsonBuilder{fs: fs, opts: opts}
	out := Output{
		Diagnostics: make([]Problem, 0, len(items)),
		Count:       len(items),
		Dropped:     bag.Dropped() + bag.Len() - len(items),
	}
	for _, d := range items {
		out.Diagnostics = append(out.Diagnostics, b.problem(d))
	}
	return out
}

// JSON writes bag as one indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildOutput(bag, fs, opts))
}
