package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

var (
	utf8BOM = []byte{0xEF, 0xBB, 0xBF}
	crlf    = []byte("\r\n")
)

// normalizeCRLF folds every "\r\n" to "\n". A lone '\r' is data and stays.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !bytes.Contains(content, crlf) {
		return content, false
	}
	return bytes.ReplaceAll(content, crlf, []byte{'\n'}), true
}

func removeBOM(content []byte) ([]byte, bool) {
	return bytes.CutPrefix(content, utf8BOM)
}

// normalizeNFC приводит текст к NFC, чтобы "é" из двух рун совпадало с одной.
func normalizeNFC(content []byte) ([]byte, bool) {
	if norm.NFC.IsNormal(content) {
		return content, false
	}
	return norm.NFC.Bytes(content), true
}

// buildLineIndex records the offset of every '\n'.
func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return idx
		}
		off += i
		at, err := safecast.Conv[uint32](off)
		if err != nil {
			panic(fmt.Errorf("input too large to index: %w", err))
		}
		idx = append(idx, at)
		off++
	}
}

// splitLines режет по '\n' и отбрасывает одну пустую запись после
// завершающего перевода строки. Пустые строки в середине сохраняются.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{}
	}
	text := strings.TrimSuffix(string(content), "\n")
	return strings.Split(text, "\n")
}

// пути храним со слешами, чтобы вывод совпадал на всех ОС
func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns the cleaned absolute form of p.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return normalizePath(abs), nil
}

// RelativePath returns p relative to baseDir. Paths that escape baseDir
// fall back to their absolute form.
func RelativePath(p, baseDir string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(base, abs)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return normalizePath(abs), nil
	}
	return normalizePath(rel), nil
}

// BaseName returns the last element of p.
func BaseName(p string) string {
	return filepath.Base(p)
}
