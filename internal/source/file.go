package source

import (
	"fmt"
	"path/filepath"

	"fortio.org/safecast"
)

// Lines returns the records of the file in order. Line terminators are
// stripped, blank lines are kept and one trailing '\n' does not open an
// extra record.
func (f *File) Lines() []string {
	return splitLines(f.Content)
}

// LineCount is len(f.Lines()) without allocating.
func (f *File) LineCount() uint32 {
	n := len(f.LineIdx)
	if last := len(f.Content) - 1; last >= 0 && f.Content[last] != '\n' {
		n++ // хвост без перевода строки
	}
	count, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return count
}

// lineBounds returns the byte range of 1-based line n, without its '\n'.
func (f *File) lineBounds(n uint32) (start, end int, ok bool) {
	if n == 0 || n > f.LineCount() {
		return 0, 0, false
	}
	i := int(n) - 1
	if i > 0 {
		start = int(f.LineIdx[i-1]) + 1
	}
	end = len(f.Content)
	if i < len(f.LineIdx) {
		end = int(f.LineIdx[i])
	}
	return start, end, true
}

// GetLine returns line n (1-based). Lines outside the file read as "".
func (f *File) GetLine(n uint32) string {
	start, end, ok := f.lineBounds(n)
	if !ok {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the path for output. mode is one of "absolute",
// "relative", "basename" or "auto"; anything else prints the stored path.
// baseDir only matters for "relative" and defaults to the working directory.
func (f *File) FormatPath(mode, baseDir string) string {
	var (
		out string
		err error
	)
	switch mode {
	case "absolute":
		out, err = AbsolutePath(f.Path)
	case "relative":
		if baseDir == "" {
			baseDir = NewFileSet().BaseDir()
		}
		out, err = RelativePath(f.Path, baseDir)
	case "basename":
		return BaseName(f.Path)
	case "auto":
		// длинные абсолютные пути сокращаем до имени файла
		if filepath.IsAbs(f.Path) && len(f.Path) >= 40 {
			return BaseName(f.Path)
		}
		return f.Path
	default:
		return f.Path
	}
	if err != nil {
		return f.Path
	}
	return out
}
