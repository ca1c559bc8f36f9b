package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"advent/internal/days"
	"advent/internal/driver"
	"advent/internal/observ"
	"advent/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Solve puzzle days and print their answers",
	Long: `Solve one day (--day N), every registered day (--all) or, without
either flag, the latest day. Any I/O or parse failure aborts the run and no
answers are printed.`,
	Args: cobra.NoArgs,
	RunE: instrumented(runSolve),
}

func init() {
	runCmd.Flags().Int("day", 0, "day to solve")
	runCmd.Flags().Bool("all", false, "solve every registered day")
	runCmd.Flags().String("input", "", "input file (only with a single day)")
	runCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	runCmd.Flags().Int("jobs", 1, "max days solved in parallel (0=GOMAXPROCS)")
	runCmd.Flags().Bool("cache", false, "reuse answers stored by an earlier run of this build")
	runCmd.Flags().Bool("no-cache", false, "do not read or write the answer cache")
	runCmd.Flags().Bool("clear-cache", false, "drop every cached answer before solving (with --cache)")
	runCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
}

type runFlags struct {
	day        int
	all        bool
	input      string
	format     string
	jobs       int
	cache      bool
	noCache    bool
	clearCache bool
	ui         uiMode
}

func readRunFlags(cmd *cobra.Command) (runFlags, error) {
	var f runFlags
	var err error
	flags := cmd.Flags()
	if f.day, err = flags.GetInt("day"); err != nil {
		return f, fmt.Errorf("failed to get day flag: %w", err)
	}
	if f.all, err = flags.GetBool("all"); err != nil {
		return f, fmt.Errorf("failed to get all flag: %w", err)
	}
	if f.input, err = flags.GetString("input"); err != nil {
		return f, fmt.Errorf("failed to get input flag: %w", err)
	}
	if f.format, err = flags.GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	f.format = strings.ToLower(strings.TrimSpace(f.format))
	switch f.format {
	case "pretty", "json":
	default:
		return f, fmt.Errorf("unsupported format %q (must be pretty or json)", f.format)
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if f.cache, err = flags.GetBool("cache"); err != nil {
		return f, fmt.Errorf("failed to get cache flag: %w", err)
	}
	if f.noCache, err = flags.GetBool("no-cache"); err != nil {
		return f, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if f.clearCache, err = flags.GetBool("clear-cache"); err != nil {
		return f, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiStr, err := flags.GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiStr); err != nil {
		return f, err
	}
	return f, nil
}

func runSolve(cmd *cobra.Command, _ []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	f, err := readRunFlags(cmd)
	if err != nil {
		return err
	}

	manifest, err := loadManifest(g.config)
	if err != nil {
		return err
	}
	reg, err := days.Registry()
	if err != nil {
		return err
	}
	selected, err := selectDays(reg, f.day, f.all)
	if err != nil {
		return err
	}

	store, err := openCache(manifest, f.cache, f.noCache)
	if err != nil {
		return err
	}
	if f.clearCache {
		if err := store.DropAll(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	var timer *observ.Timer
	if g.timings {
		timer = observ.NewTimer()
	}
	if f.jobs == 0 {
		f.jobs = runtime.GOMAXPROCS(0)
	}
	opts := driver.Options{
		Manifest: manifest,
		Input:    f.input,
		Jobs:     f.jobs,
		Cache:    store,
		Timer:    timer,
	}

	var results []driver.DayResult
	if f.format == "pretty" && shouldUseTUI(f.ui, len(selected), g.quiet, isTerminal(os.Stderr)) {
		results, err = runWithUI(cmd.Context(), "advent run", selected, opts)
	} else {
		_, results, err = driver.Run(cmd.Context(), selected, opts)
	}
	if g.timings {
		printTimings(cmd.ErrOrStderr(), timer, results)
	}
	if err != nil {
		return err
	}

	answers := driver.Answers(results)
	out := cmd.OutOrStdout()
	if f.format == "json" {
		return report.JSON(out, answers)
	}
	return report.Pretty(out, answers, report.PrettyOpts{
		Color:   g.color,
		Headers: len(selected) > 1 && !g.quiet,
	})
}
