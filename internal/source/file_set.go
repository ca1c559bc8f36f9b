package source

import (
	"crypto/sha256"
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every input file read during one command. IDs are dense and
// never reused, so diagnostics can hold a Pos after the file is replaced.
type FileSet struct {
	files   []File
	byPath  map[string]FileID // последняя версия по пути
	baseDir string
}

// NewFileSet creates an empty FileSet resolving relative paths against the
// working directory.
func NewFileSet() *FileSet {
	return &FileSet{byPath: map[string]FileID{}}
}

// NewFileSetWithBase is NewFileSet with a fixed base directory, used when
// printing relative paths.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// BaseDir returns the directory relative paths are printed against.
func (fs *FileSet) BaseDir() string {
	if fs.baseDir != "" {
		return fs.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add registers already-normalized content under path. Adding the same path
// twice keeps both versions; Lookup returns the newer one.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	id, err := safecast.Conv[FileID](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many input files: %w", err))
	}
	path = normalizePath(path)
	fs.files = append(fs.files, File{
		ID:      id,
		Path:    path,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fs.byPath[path] = id
	return id
}

// AddVirtual registers in-memory content (tests, stdin) with FileVirtual set.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

// шаги нормализации при чтении с диска, в этом порядке
var loadSteps = [...]struct {
	flag FileFlags
	fn   func([]byte) ([]byte, bool)
}{
	{FileHadBOM, removeBOM},
	{FileNormalizedCRLF, normalizeCRLF},
	{FileNormalizedNFC, normalizeNFC},
}

// Load reads path, strips a UTF-8 BOM, folds CRLF to LF, applies NFC and
// registers the result. A failed read adds nothing.
func (fs *FileSet) Load(path string) (FileID, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- input path comes from the user
	if err != nil {
		return 0, err
	}
	var flags FileFlags
	for _, step := range loadSteps {
		var changed bool
		if content, changed = step.fn(content); changed {
			flags |= step.flag
		}
	}
	return fs.Add(path, content, flags), nil
}

// Get returns the file for id, or nil for an unknown id.
func (fs *FileSet) Get(id FileID) *File {
	if int(id) >= len(fs.files) {
		return nil
	}
	return &fs.files[id]
}

// Lookup returns the newest FileID registered under path.
func (fs *FileSet) Lookup(path string) (FileID, bool) {
	id, ok := fs.byPath[normalizePath(path)]
	return id, ok
}

// Len returns the number of registered files, old versions included.
func (fs *FileSet) Len() int { return len(fs.files) }

// ReadLines loads path into a throwaway FileSet and returns its records.
func ReadLines(path string) ([]string, error) {
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return fs.Get(id).Lines(), nil
}
