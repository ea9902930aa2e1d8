package subtitle

import (
	"os"

	"github.com/FanLemon/Subtitle/internal/fsutil"
)

const DefaultFileMode os.FileMode = 0o644

// Writer saves documents as SubRip text.
type Writer struct {
	Mode os.FileMode
}

func NewWriter(mode os.FileMode) *Writer {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &Writer{Mode: mode}
}

// Write replaces the file at path atomically, creating parent directories.
func (w *Writer) Write(doc *Document, path string) error {
	return fsutil.WriteFileAtomic(path, doc.Bytes(), w.Mode)
}
