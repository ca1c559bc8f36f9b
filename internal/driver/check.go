package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"advent/internal/diag"
	"advent/internal/puzzle"
	"advent/internal/record"
	"advent/internal/source"
	"advent/internal/trace"
)

// Check validates the inputs of days without stopping at the first bad
// line. Unreadable inputs become diagnostics too; the returned error is
// reserved for cancellation and bad options.
func Check(ctx context.Context, days []puzzle.Day, opts Options, maxDiagnostics int) (*source.FileSet, *diag.Bag, error) {
	if opts.Input != "" && len(days) != 1 {
		return nil, nil, ErrInputWithManyDays
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "check", trace.CurrentSpan(ctx).SpanID)
	defer span.End("")

	fs := newFileSet(opts)
	bag := diag.NewBag(maxDiagnostics)

	for _, d := range days {
		if err := ctx.Err(); err != nil {
			return fs, bag, err
		}
		daySpan := trace.BeginDay(tracer, dayName(d), d.Number, span.ID())
		// свой мешок на день, общий лимит применяет Merge
		dayBag := diag.NewBag(0)
		checkDay(fs, d, ResolveInput(d, opts), diag.BagReporter{Bag: dayBag})
		daySpan.WithExtra("problems", strconv.Itoa(dayBag.Len())).End("")
		bag.Merge(dayBag)
	}

	bag.Sort()
	bag.Dedup()
	return fs, bag, nil
}

func checkDay(fs *source.FileSet, d puzzle.Day, path string, r diag.Reporter) {
	id, err := loadOnce(fs, path)
	if err != nil {
		// файла нет - заводим пустой виртуальный, чтобы было куда указать
		id = fs.AddVirtual(path, nil)
		diag.ReportError(r, diag.IOLoadFileError, source.Pos{File: id}, fmt.Sprintf("day %d: %v", d.Number, err))
		return
	}
	lines := fs.Get(id).Lines()

	var errs []error
	if d.Check != nil {
		errs = d.Check(lines)
	} else if _, err := d.Solve(lines); err != nil {
		errs = []error{err}
	}

	for _, err := range errs {
		code, sev := classify(err)
		pos := source.Pos{File: id, Line: lineOf(err)}
		r.Report(code, sev, pos, messageOf(err, pos.Line), nil)
	}
}

func classify(err error) (diag.Code, diag.Severity) {
	switch {
	case errors.Is(err, puzzle.ErrUnsolvable):
		return diag.RecUnsolvable, diag.SevError
	case errors.As(err, new(*record.ParseError)):
		return diag.RecMalformed, diag.SevError
	}
	return diag.RecInvalid, diag.SevError
}

func lineOf(err error) uint32 {
	line, convErr := safecast.Conv[uint32](record.LineOf(err))
	if convErr != nil {
		return 0
	}
	return line
}

// messageOf drops the "line N: " prefix that the position already carries.
func messageOf(err error, line uint32) string {
	msg := err.Error()
	if line == 0 {
		return msg
	}
	return strings.TrimPrefix(msg, "line "+strconv.FormatUint(uint64(line), 10)+": ")
}
