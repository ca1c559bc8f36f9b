package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"advent/internal/days"
	"advent/internal/driver"
	"advent/internal/project"
	"advent/internal/puzzle"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "List registered days with their resolved input paths",
	Args:  cobra.NoArgs,
	RunE:  listDays,
}

func init() {
	daysCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type dayRow struct {
	Day     int    `json:"day"`
	Title   string `json:"title"`
	Parts   int    `json:"parts"`
	Input   string `json:"input"`
	Source  string `json:"source"` // default | advent.toml
	Present bool   `json:"present"`
}

func listDays(cmd *cobra.Command, _ []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	manifest, err := loadManifest(g.config)
	if err != nil {
		return err
	}
	reg, err := days.Registry()
	if err != nil {
		return err
	}
	rows := collectDayRows(reg.All(), manifest)

	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "pretty":
		renderDayRows(cmd.OutOrStdout(), rows)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func collectDayRows(list []puzzle.Day, m *project.Manifest) []dayRow {
	pinned := m.Days()
	rows := make([]dayRow, 0, len(list))
	for _, d := range list {
		path := driver.ResolveInput(d, driver.Options{Manifest: m})
		src := "default"
		if slices.Contains(pinned, d.Number) {
			src = project.ManifestName
		}
		_, statErr := os.Stat(path)
		rows = append(rows, dayRow{
			Day:     d.Number,
			Title:   d.Title,
			Parts:   len(d.Parts),
			Input:   path,
			Source:  src,
			Present: statErr == nil,
		})
	}
	return rows
}

var missingColor = color.New(color.FgRed)

func renderDayRows(out io.Writer, rows []dayRow) {
	titleWidth := len("title")
	for _, r := range rows {
		titleWidth = max(titleWidth, runewidth.StringWidth(r.Title))
	}
	fmt.Fprintf(out, "day  %s  input\n", runewidth.FillRight("title", titleWidth))
	for _, r := range rows {
		input := r.Input
		if !r.Present {
			input += " " + missingColor.Sprint("(missing)")
		}
		if r.Source != "default" {
			input += " [" + r.Source + "]"
		}
		fmt.Fprintf(out, "%3d  %s  %s\n", r.Day, runewidth.FillRight(r.Title, titleWidth), input)
	}
}
