package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
	// FileKind selects the tokenizer variant for a file.
	FileKind uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

const (
	// KindSource is plain host-language source (.ts).
	KindSource FileKind = iota
	// KindMarkup is markup-bearing source (.tsx); the lexer scans balanced
	// markup elements into single opaque tokens.
	KindMarkup
)

// KindForPath picks the file kind from the path extension.
func KindForPath(path string) FileKind {
	if len(path) >= 4 && path[len(path)-4:] == ".tsx" {
		return KindMarkup
	}
	return KindSource
}

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Kind    FileKind
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
