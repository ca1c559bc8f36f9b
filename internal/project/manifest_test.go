package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[advent]
year = 2022
data_dir = "inputs"

[inputs]
"2" = "custom/rps.txt"
"3" = "/abs/day3.txt"

[cache]
enabled = false
dir = ".cache"
`)
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := Load(sub)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	rootAbs, _ := filepath.Abs(root)
	if m.Root != rootAbs {
		t.Errorf("Root = %q, want %q", m.Root, rootAbs)
	}
	if m.Config.Advent.Year != 2022 {
		t.Errorf("Year = %d", m.Config.Advent.Year)
	}

	tests := []struct {
		day      int
		fallback string
		want     string
	}{
		{1, "data/day1.txt", filepath.Join(rootAbs, "inputs", "day1.txt")},
		{2, "data/day2.txt", filepath.Join(rootAbs, "custom", "rps.txt")},
		{3, "data/day03.txt", "/abs/day3.txt"},
	}
	for _, tt := range tests {
		if got := m.InputFor(tt.day, tt.fallback); got != tt.want {
			t.Errorf("InputFor(%d) = %q, want %q", tt.day, got, tt.want)
		}
	}

	if m.CacheEnabled() {
		t.Error("Expected cache disabled")
	}
	if got := m.CacheDir(); got != filepath.Join(rootAbs, ".cache") {
		t.Errorf("CacheDir = %q", got)
	}
	if diff := cmp.Diff([]int{2, 3}, m.Days()); diff != "" {
		t.Errorf("Days mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	m, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok || m != nil {
		// a real advent.toml above the temp dir would make this flaky
		t.Skip("advent.toml found above temp dir")
	}
	if m.InputFor(4, "data/day04.txt") != "data/day04.txt" {
		t.Error("nil manifest should keep the default path")
	}
	if m.CacheEnabled() {
		t.Error("nil manifest should leave the cache off")
	}
}

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[advent]\nyear = 2022\n")
	m, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.CacheEnabled() {
		t.Error("Expected cache disabled by default")
	}
	want := filepath.Join(m.Root, "data", "day1.txt")
	if got := m.InputFor(1, "data/day1.txt"); got != want {
		t.Errorf("InputFor = %q, want %q", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[advent\n", "failed to parse TOML"},
		{"unknown key", "[advent]\nyaer = 2022\n", "unknown keys: advent.yaer"},
		{"old year", "[advent]\nyear = 1999\n", "must be 2015 or later"},
		{"bad day key", "[inputs]\nfirst = \"a.txt\"\n", "is not a day number"},
		{"zero day", "[inputs]\n\"0\" = \"a.txt\"\n", "is not a day number"},
		{"empty input", "[inputs]\n\"1\" = \" \"\n", "is empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) || !strings.Contains(err.Error(), ManifestName) {
				t.Errorf("error %q should mention %q and the file", err, tt.wantErr)
			}
		})
	}
}
