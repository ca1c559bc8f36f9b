package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"advent/internal/cache"
	"advent/internal/project"
	"advent/internal/puzzle"
	"advent/internal/version"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(value string) (colorMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

func (m colorMode) enabled(tty bool) bool {
	switch m {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return tty
	}
}

// applyColorFlag выставляет глобальный color.NoColor до запуска подкоманды.
func applyColorFlag(cmd *cobra.Command, _ []string) error {
	g, err := readGlobals(cmd)
	if err != nil {
		return err
	}
	color.NoColor = !g.color
	return nil
}

// globals are the persistent flags every subcommand reads.
type globals struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	config         string
}

func readGlobals(cmd *cobra.Command) (globals, error) {
	pf := cmd.Root().PersistentFlags()

	colorStr, err := pf.GetString("color")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	mode, err := readColorMode(colorStr)
	if err != nil {
		return globals{}, err
	}
	quiet, err := pf.GetBool("quiet")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := pf.GetBool("timings")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get timings flag: %w", err)
	}
	maxDiagnostics, err := pf.GetInt("max-diagnostics")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	config, err := pf.GetString("config")
	if err != nil {
		return globals{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	return globals{
		color:          mode.enabled(isTerminal(os.Stdout)),
		quiet:          quiet,
		timings:        timings,
		maxDiagnostics: maxDiagnostics,
		config:         config,
	}, nil
}

// loadManifest reads --config when given, otherwise looks for advent.toml
// from the working directory upwards. No manifest is not an error.
func loadManifest(configPath string) (*project.Manifest, error) {
	if configPath != "" {
		return project.LoadFile(configPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	m, ok, err := project.Load(cwd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return m, nil
}

// openCache returns nil unless --cache or [cache].enabled asks for it.
// --no-cache wins over both. A build without an identity never caches:
// its answers could outlive the code that produced them.
func openCache(m *project.Manifest, enable, noCache bool) (*cache.Disk, error) {
	if noCache || !(enable || m.CacheEnabled()) {
		return nil, nil
	}
	if version.BuildID() == "" {
		return nil, nil
	}
	dir := m.CacheDir()
	if dir == "" {
		var err error
		dir, err = cache.DefaultDir("advent")
		if err != nil {
			return nil, err
		}
	}
	return cache.Open(dir, version.Fingerprint())
}

// selectDays resolves --day/--all. Without either flag the latest day runs.
func selectDays(reg *puzzle.Registry, day int, all bool) ([]puzzle.Day, error) {
	switch {
	case all && day != 0:
		return nil, fmt.Errorf("--day and --all are mutually exclusive")
	case all:
		return reg.All(), nil
	case day < 0:
		return nil, fmt.Errorf("invalid --day %d", day)
	case day > 0:
		d, err := reg.Get(day)
		if err != nil {
			return nil, err
		}
		return []puzzle.Day{d}, nil
	}
	d, ok := reg.Latest()
	if !ok {
		return nil, fmt.Errorf("no days registered")
	}
	return []puzzle.Day{d}, nil
}
