package cache

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"advent/internal/report"
)

func TestPutGet(t *testing.T) {
	c, err := Open(t.TempDir(), "v1")
	if err != nil {
		t.Fatal(err)
	}
	input := sha256.Sum256([]byte("A Y\nB X\nC Z\n"))
	answers := []report.Answer{
		{Day: 2, Part: 1, Label: "Imperfect strategy guide total score", Value: 15},
		{Day: 2, Part: 2, Label: "Strategy guide total score", Value: 12},
	}

	if _, ok, err := c.Get(2, input); ok || err != nil {
		t.Fatalf("Expected miss on empty cache, got ok=%v err=%v", ok, err)
	}
	if err := c.Put(2, input, answers); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok, err := c.Get(2, input)
	if err != nil || !ok {
		t.Fatalf("Expected hit, got ok=%v err=%v", ok, err)
	}
	if diff := cmp.Diff(answers, got); diff != "" {
		t.Errorf("answers mismatch (-want +got):\n%s", diff)
	}

	if _, ok, _ := c.Get(3, input); ok {
		t.Error("Expected miss for another day")
	}
	other := sha256.Sum256([]byte("A X\n"))
	if _, ok, _ := c.Get(2, other); ok {
		t.Error("Expected miss for another input")
	}
}

func TestSaltSeparatesBuilds(t *testing.T) {
	dir := t.TempDir()
	input := sha256.Sum256([]byte("1\n"))
	old, _ := Open(dir, "v1")
	if err := old.Put(1, input, []report.Answer{{Day: 1, Part: 1, Value: 1}}); err != nil {
		t.Fatal(err)
	}
	cur, _ := Open(dir, "v2")
	if _, ok, _ := cur.Get(1, input); ok {
		t.Error("Expected miss across salts")
	}
}

func TestCorruptEntry(t *testing.T) {
	c, _ := Open(t.TempDir(), "")
	input := sha256.Sum256(nil)
	p := c.pathFor(c.Key(4, input))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte{0xc1}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := c.Get(4, input); ok || err == nil {
		t.Errorf("Expected decode error, got ok=%v err=%v", ok, err)
	}
}

func TestDropAll(t *testing.T) {
	c, _ := Open(filepath.Join(t.TempDir(), "advent"), "")
	input := sha256.Sum256([]byte("x"))
	if err := c.Put(3, input, nil); err != nil {
		t.Fatal(err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(3, input); ok {
		t.Error("Expected miss after DropAll")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("Expected cache dir to be recreated: %v", err)
	}
}

func TestNilDisk(t *testing.T) {
	var c *Disk
	if err := c.Put(1, [32]byte{}, nil); err != nil {
		t.Error(err)
	}
	if _, ok, err := c.Get(1, [32]byte{}); ok || err != nil {
		t.Errorf("Expected silent miss, got ok=%v err=%v", ok, err)
	}
}

func TestDefaultDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultDir("advent")
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg", "advent") {
		t.Errorf("DefaultDir = %q", dir)
	}
}
