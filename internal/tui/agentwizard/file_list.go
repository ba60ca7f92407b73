package agentwizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/mark3labs/agentforge/internal/agent"
	"github.com/mark3labs/agentforge/internal/humanize"
	"github.com/mark3labs/agentforge/internal/logger"
	"github.com/mark3labs/agentforge/internal/tui/theme"
)

// SupportedHint builds the advisory text shown above the file list, e.g.
// "Supported formats: PDF, DOCX, TXT, CSV (Max 10MB per file)".
func SupportedHint(extensions []string, limit string) string {
	names := make([]string, len(extensions))
	for i, e := range extensions {
		names[i] = strings.ToUpper(strings.TrimPrefix(e, "."))
	}
	return fmt.Sprintf("Supported formats: %s (Max %s per file)", strings.Join(names, ", "), limit)
}

// FileRow is one display row derived from a FileRef.
type FileRow struct {
	Badge    string
	Name     string
	Size     string
	Oversize bool
}

// FileListEditor shows the draft's files and lets the user add or remove
// them. It keeps only a cursor; the files live in the FormStore.
type FileListEditor struct {
	store   *agent.FormStore
	maxSize int64
	hint    string
	cursor  int
	focused bool
	keys    KeyMap
}

// NewFileListEditor creates an editor over store. maxSize flags large files
// and hint is the advisory line shown under the heading.
func NewFileListEditor(store *agent.FormStore, maxSize int64, hint string) *FileListEditor {
	return &FileListEditor{
		store:   store,
		maxSize: maxSize,
		hint:    hint,
		keys:    DefaultKeyMap,
	}
}

// Rows derives the display rows from the store.
func (l *FileListEditor) Rows() []FileRow {
	files := l.store.Files()
	rows := make([]FileRow, len(files))
	for i, f := range files {
		rows[i] = FileRow{
			Badge:    f.Badge(),
			Name:     f.Name,
			Size:     humanize.FormatFileSize(f.Size),
			Oversize: f.Oversize(l.maxSize),
		}
	}
	return rows
}

// Cursor returns the highlighted row index.
func (l *FileListEditor) Cursor() int {
	return l.cursor
}

// Focus gives the list keyboard focus.
func (l *FileListEditor) Focus() {
	l.focused = true
	l.clamp()
}

// Blur removes keyboard focus.
func (l *FileListEditor) Blur() {
	l.focused = false
}

func (l *FileListEditor) clamp() {
	n := l.store.FileCount()
	if l.cursor >= n {
		l.cursor = n - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
}

// Update handles keys while the list has focus.
func (l *FileListEditor) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !l.focused {
		return nil
	}

	switch {
	case key.Matches(keyMsg, l.keys.Up):
		if l.cursor > 0 {
			l.cursor--
		}
	case key.Matches(keyMsg, l.keys.Down):
		if l.cursor < l.store.FileCount()-1 {
			l.cursor++
		}
	case key.Matches(keyMsg, l.keys.RemoveFile):
		if !l.store.RemoveFile(l.cursor) {
			logger.Debug("remove ignored: no file at index %d", l.cursor)
		}
		l.clamp()
	case key.Matches(keyMsg, l.keys.AddFiles):
		return func() tea.Msg {
			return OpenFilePickerMsg{}
		}
	}
	return nil
}

// View renders the upload section and the file rows.
func (l *FileListEditor) View() string {
	s := theme.Current().S()
	var b strings.Builder

	b.WriteString(s.Label.Render("Upload Knowledge Base"))
	b.WriteString("\n")
	b.WriteString(s.Muted.Render(l.hint))
	b.WriteString("\n")

	choose := "[ Choose Files ]"
	if l.focused {
		b.WriteString(s.HeaderTitle.Render("▸ " + choose))
	} else {
		b.WriteString(s.Text.Render("  " + choose))
	}
	b.WriteString("\n")

	rows := l.Rows()
	if len(rows) == 0 {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(s.Label.Render("Uploaded Files:"))
	b.WriteString("\n")
	for i, r := range rows {
		prefix := "  "
		if l.focused && i == l.cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s  %s", prefix, s.Badge.Render(r.Badge), s.Text.Render(r.Name), s.Muted.Render(r.Size))
		if r.Oversize {
			line += " " + s.Warning.Render("(over " + humanize.FormatFileSize(l.maxSize) + ")")
		}
		line += "  " + s.Error.Render("✕")
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
