package main

import (
	"fmt"
	"strings"
)

// uiMode is --ui on `advent run`: the per-day progress table on stderr.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

// readUIMode takes the same spellings as --color.
func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on", "always":
		return uiModeOn, nil
	case "off", "never":
		return uiModeOff, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// shouldUseTUI decides whether to draw the progress table. One day finishes
// too fast to be worth a table, so auto needs several days, a terminal on
// stderr and no --quiet.
func shouldUseTUI(mode uiMode, days int, quiet, tty bool) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return days > 1 && !quiet && tty
}
