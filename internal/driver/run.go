// Package driver wires the pipeline together. It resolves input paths, loads
// files, consults the answer cache when one is given and solves days one
// after another unless Jobs asks for more.
package driver

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"advent/internal/cache"
	"advent/internal/observ"
	"advent/internal/project"
	"advent/internal/puzzle"
	"advent/internal/report"
	"advent/internal/source"
	"advent/internal/trace"
)

// ErrInputWithManyDays is returned when an explicit input path is given for
// more than one day.
var ErrInputWithManyDays = errors.New("--input needs exactly one day")

// Options control one run.
type Options struct {
	Manifest *project.Manifest // may be nil
	Input    string            // explicit input, wins over manifest and default
	Jobs     int               // days solved at once; <= 1 is sequential
	Cache    *cache.Disk       // nil disables caching
	Timer    *observ.Timer     // nil disables timings
	Progress ProgressSink      // nil disables progress events
}

// DayResult is the outcome for one solved day.
type DayResult struct {
	Day     puzzle.Day
	Path    string
	File    source.FileID
	Answers []report.Answer
	Cached  bool
	Elapsed time.Duration
}

// ResolveInput applies flag > advent.toml > per-day default.
func ResolveInput(d puzzle.Day, opts Options) string {
	if opts.Input != "" {
		return opts.Input
	}
	return opts.Manifest.InputFor(d.Number, d.Input)
}

type loaded struct {
	day  puzzle.Day
	path string
	file *source.File
	span *trace.Span
}

// load reads every input up front; FileSet is not safe for concurrent Add.
func load(ctx context.Context, fs *source.FileSet, days []puzzle.Day, spans []*trace.Span, opts Options) ([]loaded, error) {
	if opts.Input != "" && len(days) != 1 {
		return nil, ErrInputWithManyDays
	}
	out := make([]loaded, 0, len(days))
	for i, d := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := ResolveInput(d, opts)
		emit(opts.Progress, Event{Day: d.Number, Stage: StageRead, Status: StatusWorking})

		span := spans[i].Child(trace.ScopePhase, "read").WithExtra("path", path)
		phase := opts.Timer.Begin(d.Number, "read")
		id, err := loadOnce(fs, path)
		if err != nil {
			opts.Timer.End(phase, "failed")
			span.End("failed")
			err = fmt.Errorf("day %d: %w", d.Number, err)
			spans[i].Fail(err)
			emit(opts.Progress, Event{Day: d.Number, Stage: StageRead, Status: StatusError, Err: err})
			return nil, err
		}
		f := fs.Get(id)
		note := strconv.FormatUint(uint64(f.LineCount()), 10) + " lines"
		opts.Timer.End(phase, note)
		span.End(note)

		out = append(out, loaded{day: d, path: path, file: f, span: spans[i]})
	}
	return out, nil
}

// newFileSet prints relative paths against the advent.toml directory when
// there is one, so they read like the [inputs] entries.
func newFileSet(opts Options) *source.FileSet {
	if opts.Manifest != nil {
		return source.NewFileSetWithBase(opts.Manifest.Root)
	}
	return source.NewFileSet()
}

// loadOnce reads path unless an earlier day already did. Placeholders for
// unreadable files are not reused, the read is retried.
func loadOnce(fs *source.FileSet, path string) (source.FileID, error) {
	if id, ok := fs.Lookup(path); ok && fs.Get(id).Flags&source.FileVirtual == 0 {
		return id, nil
	}
	return fs.Load(path)
}

// Run solves days and returns their results in the order given. Any failure
// aborts the whole run and no results are returned.
func Run(ctx context.Context, days []puzzle.Day, opts Options) (*source.FileSet, []DayResult, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "run", trace.CurrentSpan(ctx).SpanID).
		WithExtra("days", strconv.Itoa(len(days)))
	defer span.End("")

	// span дня открыт с момента постановки в очередь
	daySpans := make([]*trace.Span, len(days))
	for i, d := range days {
		daySpans[i] = trace.BeginDay(tracer, dayName(d), d.Number, span.ID())
		emit(opts.Progress, Event{Day: d.Number, Status: StatusQueued})
	}
	defer func() {
		for _, s := range daySpans {
			s.End("aborted")
		}
	}()

	fs := newFileSet(opts)
	inputs, err := load(ctx, fs, days, daySpans, opts)
	if err != nil {
		return fs, nil, err
	}

	jobs := max(1, opts.Jobs)

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]DayResult, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(inputs))))
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := solveOne(in, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fs, nil, err
	}
	return fs, results, nil
}

func solveOne(in loaded, opts Options) (DayResult, error) {
	d := in.day
	span := in.span
	started := time.Now()

	res := DayResult{Day: d, Path: in.path, File: in.file.ID}

	if opts.Cache != nil {
		emit(opts.Progress, Event{Day: d.Number, Stage: StageCache, Status: StatusWorking})
		answers, ok, err := opts.Cache.Get(d.Number, in.file.Hash)
		switch {
		case err != nil:
			// испорченная запись - просто промах
			span.Point(trace.ScopePhase, "cache", "unreadable: "+err.Error())
		case ok:
			span.Point(trace.ScopePhase, "cache", "hit")
			res.Answers = answers
			res.Cached = true
			res.Elapsed = time.Since(started)
			span.End("cached")
			emit(opts.Progress, Event{Day: d.Number, Stage: StageCache, Status: StatusCached, Elapsed: res.Elapsed})
			return res, nil
		default:
			span.Point(trace.ScopePhase, "cache", "miss")
		}
	}

	emit(opts.Progress, Event{Day: d.Number, Stage: StageSolve, Status: StatusWorking})
	solveSpan := span.Child(trace.ScopePhase, "solve")
	phase := opts.Timer.Begin(d.Number, "solve")
	answers, err := d.Solve(in.file.Lines())
	if err != nil {
		opts.Timer.End(phase, "failed")
		solveSpan.End("failed")
		span.Fail(err)
		span.End("failed")
		emit(opts.Progress, Event{Day: d.Number, Stage: StageSolve, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return DayResult{}, fmt.Errorf("%s: %w", in.path, err)
	}
	opts.Timer.End(phase, "")
	solveSpan.WithExtra("answers", strconv.Itoa(len(answers))).End("")

	if err := opts.Cache.Put(d.Number, in.file.Hash, answers); err != nil {
		span.Point(trace.ScopePhase, "cache", "store failed: "+err.Error())
	}

	res.Answers = answers
	res.Elapsed = time.Since(started)
	span.End("ok")
	emit(opts.Progress, Event{Day: d.Number, Stage: StageSolve, Status: StatusDone, Elapsed: res.Elapsed})
	return res, nil
}

// Answers flattens results in day order.
func Answers(results []DayResult) []report.Answer {
	n := 0
	for _, r := range results {
		n += len(r.Answers)
	}
	out := make([]report.Answer, 0, n)
	for _, r := range results {
		out = append(out, r.Answers...)
	}
	return out
}

// CachedCount reports how many days were served from the cache.
func CachedCount(results []DayResult) int {
	n := 0
	for _, r := range results {
		if r.Cached {
			n++
		}
	}
	return n
}

func dayName(d puzzle.Day) string {
	return "day:" + strconv.Itoa(d.Number)
}
