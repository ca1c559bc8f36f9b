package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRelativePathOutsideBaseFallsBackToAbsolute(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	otherDir := filepath.Join(tmp, "other")

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatalf("failed to create base dir: %v", err)
	}
	if err := os.MkdirAll(otherDir, 0o755); err != nil {
		t.Fatalf("failed to create other dir: %v", err)
	}

	target := filepath.Join(otherDir, "day1.txt")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(target)
	if got != want {
		t.Fatalf("expected absolute fallback %q, got %q", want, got)
	}
}

func TestRelativePathInsideBaseStaysRelative(t *testing.T) {
	tmp := t.TempDir()

	baseDir := filepath.Join(tmp, "base")
	target := filepath.Join(baseDir, "data", "day1.txt")

	got, err := RelativePath(target, baseDir)
	if err != nil {
		t.Fatalf("RelativePath returned error: %v", err)
	}

	want := normalizePath(filepath.Join("data", "day1.txt"))
	if got != want {
		t.Fatalf("expected relative path %q, got %q", want, got)
	}
}

func TestBuildLineIndexEdgeCases(t *testing.T) {
	if idx := buildLineIndex(nil); len(idx) != 0 {
		t.Errorf("Expected empty index for empty content, got %v", idx)
	}
	if idx := buildLineIndex([]byte("hello")); len(idx) != 0 {
		t.Errorf("Expected empty index without newlines, got %v", idx)
	}
	if idx := buildLineIndex([]byte("\n")); len(idx) != 1 || idx[0] != 0 {
		t.Errorf("Expected [0] for a lone newline, got %v", idx)
	}
}
