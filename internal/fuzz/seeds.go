package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB
	maxFuzzInput = 16 << 10
)

// addSampleSeeds adds every *.txt under testdata plus a few hand-picked
// edge cases.
func addSampleSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err == nil {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".txt" {
				return nil
			}
			// #nosec G304 -- path comes from repository testdata walk
			src, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			f.Add(clampSeed(src))
			return nil
		})
	}
	f.Add([]byte{})
	f.Add([]byte("\n\n\n"))
	f.Add([]byte("\xef\xbb\xbf1-2,3-4\r\n"))
	f.Add([]byte("A Y\nB\n"))
	f.Add([]byte("5\n1-2-3\n"))
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
