// Package report prints computed puzzle answers.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
)

// Answer is one labelled scalar produced by a puzzle part.
type Answer struct {
	Day   int    `json:"day"`
	Part  int    `json:"part"`
	Label string `json:"label"`
	Value uint64 `json:"value"`
}

// Line renders the answer as "<Label>: <value>".
func (a Answer) Line() string {
	return a.Label + ": " + strconv.FormatUint(a.Value, 10)
}

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color   bool
	Headers bool // print "day N" before each day's answers
}

var (
	labelColor  = color.New(color.FgCyan)
	valueColor  = color.New(color.FgYellow, color.Bold)
	headerColor = color.New(color.FgGreen, color.Bold)
)

// Pretty writes exactly one line per answer.
func Pretty(w io.Writer, answers []Answer, opts PrettyOpts) error {
	lastDay := -1
	for _, a := range answers {
		if opts.Headers && a.Day != lastDay {
			header := fmt.Sprintf("day %d", a.Day)
			if opts.Color {
				header = headerColor.Sprint(header)
			}
			if _, err := fmt.Fprintln(w, header); err != nil {
				return err
			}
			lastDay = a.Day
		}
		line := a.Line()
		if opts.Color {
			line = labelColor.Sprint(a.Label) + ": " + valueColor.Sprint(strconv.FormatUint(a.Value, 10))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Output is the JSON document written by JSON.
type Output struct {
	Answers []Answer `json:"answers"`
	Count   int      `json:"count"`
}

// JSON writes the answers as an indented JSON document.
func JSON(w io.Writer, answers []Answer) error {
	if answers == nil {
		answers = []Answer{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Output{Answers: answers, Count: len(answers)})
}
