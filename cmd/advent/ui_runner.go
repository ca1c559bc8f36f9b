package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"advent/internal/driver"
	"advent/internal/puzzle"
	"advent/internal/ui"
)

type runOutcome struct {
	results []driver.DayResult
	err     error
}

// runWithUI solves days on a goroutine and renders its progress events
// to stderr until the run finishes. Answers are printed by the caller.
func runWithUI(ctx context.Context, title string, days []puzzle.Day, opts driver.Options) ([]driver.DayResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan runOutcome, 1)

	go func() {
		o := opts
		o.Progress = driver.ChannelSink{Ch: events}
		_, results, err := driver.Run(ctx, days, o)
		outcomeCh <- runOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, progressItems(days), events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// дренируем канал, чтобы горутина не зависла на отправке
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

func progressItems(days []puzzle.Day) []ui.Item {
	items := make([]ui.Item, 0, len(days))
	for _, d := range days {
		items = append(items, ui.Item{
			Day:   d.Number,
			Label: fmt.Sprintf("day %02d  %s", d.Number, d.Title),
		})
	}
	return items
}
