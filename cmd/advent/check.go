package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"advent/internal/days"
	"advent/internal/diagfmt"
	"advent/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate puzzle inputs and report every malformed line",
	Long: `Parse the inputs of the selected days without stopping at the first bad
line. Every problem is reported as a diagnostic; the exit status is 1 when
any error was found.`,
	Args: cobra.NoArgs,
	RunE: instrumented(runCheck),
}

func init() {
	checkCmd.Flags().Int("day", 0, "day to check")
	checkCmd.Flags().Bool("all", false, "check every registered day")
	checkCmd.Flags().String("input", "", "input file (only with a single day)")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	checkCmd.Flags().Bool("no-context", false, "do not echo the offending input line")
	checkCmd.Flags().Int("width", 120, "truncate echoed input lines to this width (0=no limit)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	day, err := flags.GetInt("day")
	if err != nil {
		return fmt.Errorf("failed to get day flag: %w", err)
	}
	all, err := flags.GetBool("all")
	if err != nil {
		return fmt.Errorf("failed to get all flag: %w", err)
	}
	input, err := flags.GetString("input")
	if err != nil {
		return fmt.Errorf("failed to get input flag: %w", err)
	}
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
	pathModeStr, err := flags.GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	pathMode, ok := diagfmt.ParsePathMode(pathModeStr)
	if !ok {
		return fmt.Errorf("invalid --path-mode %q", pathModeStr)
	}
	noContext, err := flags.GetBool("no-context")
	if err != nil {
		return fmt.Errorf("failed to get no-context flag: %w", err)
	}
	width, err := flags.GetInt("width")
	if err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	manifest, err := loadManifest(g.config)
	if err != nil {
		return err
	}
	reg, err := days.Registry()
	if err != nil {
		return err
	}
	selected, err := selectDays(reg, day, all)
	if err != nil {
		return err
	}

	opts := driver.Options{Manifest: manifest, Input: input}
	fs, bag, err := driver.Check(cmd.Context(), selected, opts, g.maxDiagnostics)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := diagfmt.JSON(out, bag, fs, diagfmt.JSONOpts{
			PathMode:     pathMode,
			IncludeText:  true,
			IncludeNotes: true,
		}); err != nil {
			return err
		}
	default:
		diagfmt.Pretty(out, bag, fs, diagfmt.PrettyOpts{
			Color:     g.color,
			Context:   !noContext,
			PathMode:  pathMode,
			Width:     width,
			ShowNotes: true,
		})
		if !g.quiet && bag.Len() == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d day(s) checked, no problems found\n", len(selected))
		}
	}

	if bag.HasErrors() {
		return fmt.Errorf("%d problem(s) found: %w", bag.Len()+bag.Dropped(), errReported)
	}
	return nil
}
