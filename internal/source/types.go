package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32 // просто ID источника
	// FileFlags encodes metadata about a source file.
	FileFlags uint8 // метаданные
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota // добавлен не с диска (тест, stdin)
	// FileHadBOM marks input that started with a byte order mark.
	FileHadBOM
	// FileDecodedUTF16 marks input that was transcoded from UTF-16.
	FileDecodedUTF16
)

// File captures metadata and decoded content for a single source file.
type File struct {
	ID    FileID
	Path  string
	Text  *Text
	Hash  [32]byte
	Flags FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
