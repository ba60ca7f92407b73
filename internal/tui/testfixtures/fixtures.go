package testfixtures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/agentforge/internal/agent"
)

// SampleFiles returns one file of each suggested type plus one without a
// MIME type.
func SampleFiles() []agent.FileRef {
	return []agent.FileRef{
		{Name: "sales-playbook.pdf", Size: 2 * 1024 * 1024, MimeType: "application/pdf"},
		{Name: "objections.txt", Size: 1536, MimeType: "text/plain"},
		{Name: "pricing.csv", Size: 512, MimeType: "text/csv"},
		{Name: "notes", Size: 0},
	}
}

// KnowledgeDir writes small files into a temp directory and returns it.
//
//	archive/
//	playbook.pdf  faq.txt  pricing.csv  readme.md
func KnowledgeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "archive"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	files := map[string]int{
		"playbook.pdf": 3000,
		"faq.txt":      1024,
		"pricing.csv":  10,
		"readme.md":    5,
	}
	for name, size := range files {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}
