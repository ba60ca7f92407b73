package agent

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// FileRef describes an attached knowledge file. Only metadata is kept;
// contents are never read.
type FileRef struct {
	Name     string
	Size     int64
	MimeType string
	Path     string // where it was picked from, display only
}

// Badge returns the short type label shown next to the file: the
// upper-cased MIME subtype, or "FILE" when there is none.
func (f FileRef) Badge() string {
	parts := strings.Split(f.MimeType, "/")
	if len(parts) < 2 || parts[1] == "" {
		return "FILE"
	}
	return strings.ToUpper(parts[1])
}

// Oversize reports whether the file exceeds the advisory limit.
// A non-positive limit disables the check.
func (f FileRef) Oversize(limit int64) bool {
	return limit > 0 && f.Size > limit
}

// FileRefFromPath stats path and builds a FileRef from its name, size and
// extension-derived MIME type.
func FileRefFromPath(path string) (FileRef, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileRef{}, fmt.Errorf("reading file info: %w", err)
	}
	if info.IsDir() {
		return FileRef{}, fmt.Errorf("%s is a directory", path)
	}

	return FileRef{
		Name:     info.Name(),
		Size:     info.Size(),
		MimeType: mimeType(info.Name()),
		Path:     path,
	}, nil
}

// Extensions whose MIME type is not always in the platform table.
var knownTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
	".csv":  "text/csv",
	".md":   "text/markdown",
}

func mimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if t, ok := knownTypes[ext]; ok {
		return t
	}
	t := mime.TypeByExtension(ext)
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	return t
}
