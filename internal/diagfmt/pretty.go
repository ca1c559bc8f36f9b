package diagfmt

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"advent/internal/diag"
	"advent/internal/source"
)

type palette struct {
	path, err, warn, info, code, gutter func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c.SprintFunc()
	}
	return palette{
		path:   mk(color.Bold),
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan),
		code:   mk(color.Faint),
		gutter: mk(color.FgBlue),
	}
}

func (p palette) severity(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return p.err(s.String())
	case diag.SevWarning:
		return p.warn(s.String())
	}
	return p.info(s.String())
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>: <SEV> <CODE>: <Message>
//
// затем, если включён Context, строку входа с номером, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path(location(fs, d.Primary, opts.PathMode)),
			p.severity(d.Severity),
			p.code(d.Code.ID()),
			d.Message,
		)
		if opts.Context {
			if text, ok := lineText(fs, d.Primary); ok {
				if opts.Width > 0 {
					text = runewidth.Truncate(text, opts.Width, "...")
				}
				num := uitoa(d.Primary.Line)
				fmt.Fprintf(w, " %s %s %s\n", p.gutter(num), p.gutter("|"), text)
			}
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "  note: %s: %s\n", location(fs, n.Pos, opts.PathMode), n.Msg)
			}
		}
	}
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(w, "... %d more diagnostic(s) not shown\n", n)
	}
}

func uitoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
