// Package project reads the optional advent.toml that points days at their
// inputs and configures the answer cache.
package project

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// firstYear is the earliest puzzle year accepted in [advent].year.
const firstYear = 2015

// Manifest is a loaded advent.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

type Config struct {
	Advent AdventConfig      `toml:"advent"`
	Inputs map[string]string `toml:"inputs"`
	Cache  CacheConfig       `toml:"cache"`
}

type AdventConfig struct {
	Year    int    `toml:"year"`
	DataDir string `toml:"data_dir"`
}

type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Load finds advent.toml above startDir and reads it. ok is false when no
// manifest exists; that is not an error.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// LoadFile reads the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	cfg, err := loadConfig(abs)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("advent", "year") && cfg.Advent.Year < firstYear {
		return Config{}, fmt.Errorf("%s: [advent].year must be %d or later, got %d", path, firstYear, cfg.Advent.Year)
	}
	for key, input := range cfg.Inputs {
		day, err := strconv.Atoi(key)
		if err != nil || day <= 0 {
			return Config{}, fmt.Errorf("%s: [inputs] key %q is not a day number", path, key)
		}
		if strings.TrimSpace(input) == "" {
			return Config{}, fmt.Errorf("%s: [inputs].%q is empty", path, key)
		}
	}
	return cfg, nil
}

// InputFor resolves the input path for day. An [inputs] entry wins, then
// data_dir joined with the base name of fallback, then fallback itself.
// Relative results are anchored at the manifest directory. A nil manifest
// returns fallback unchanged.
func (m *Manifest) InputFor(day int, fallback string) string {
	if m == nil {
		return fallback
	}
	if p, ok := m.Config.Inputs[strconv.Itoa(day)]; ok {
		return m.anchor(p)
	}
	if m.Config.Advent.DataDir != "" {
		return m.anchor(filepath.Join(m.Config.Advent.DataDir, filepath.Base(fallback)))
	}
	return m.anchor(fallback)
}

func (m *Manifest) anchor(p string) string {
	p = filepath.FromSlash(p)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Root, p)
}

// CacheEnabled reports the [cache].enabled setting; off unless asked for.
func (m *Manifest) CacheEnabled() bool {
	return m != nil && m.Config.Cache.Enabled
}

// CacheDir returns [cache].dir anchored at the manifest directory, or "".
func (m *Manifest) CacheDir() string {
	if m == nil || m.Config.Cache.Dir == "" {
		return ""
	}
	return m.anchor(m.Config.Cache.Dir)
}

// Days lists the day numbers that have an explicit [inputs] entry.
func (m *Manifest) Days() []int {
	if m == nil {
		return nil
	}
	out := make([]int, 0, len(m.Config.Inputs))
	for key := range m.Config.Inputs {
		if d, err := strconv.Atoi(key); err == nil {
			out = append(out, d)
		}
	}
	sort.Ints(out)
	return out
}
