package source

type (
	// FileID uniquely identifies an input file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about an input file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single input file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Pos points at one line of a loaded file.
type Pos struct {
	File FileID
	Line uint32 // 1-based, 0 means the file as a whole
}

// IsFile reports whether the position refers to the whole file rather than a line.
func (p Pos) IsFile() bool {
	return p.Line == 0
}
