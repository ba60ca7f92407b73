package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/agentforge/internal/humanize"
	"github.com/mark3labs/agentforge/internal/tui/theme"
)

// FileItem represents a file or directory in the file picker.
type FileItem struct {
	name  string
	path  string
	isDir bool
	size  int64
}

// Render returns the item label, truncated to width.
func (f *FileItem) Render(width int) string {
	icon := "📄"
	if f.isDir {
		icon = "📁"
	}

	display := icon + " " + f.name
	if !f.isDir {
		display += "  " + humanize.FormatFileSize(f.size)
	}

	if width > 5 && lipgloss.Width(display) > width-2 {
		runes := []rune(display)
		if len(runes) > width-5 {
			display = string(runes[:width-5]) + "..."
		}
	}

	return display
}

// FilePickerStep browses the filesystem and lets the user mark several
// files. Directories are always listed; files are filtered to the suggested
// extensions unless the filter is toggled off.
type FilePickerStep struct {
	currentPath string
	items       []*FileItem
	selectedIdx int
	offset      int
	marked      map[string]bool
	markOrder   []string
	extensions  []string
	showAll     bool
	maxSize     int64
	err         string
	width       int
	height      int
}

// NewFilePickerStep creates a file picker rooted at dir (cwd when empty).
// extensions are the suggested types, e.g. ".pdf"; maxSize is the advisory
// per-file limit used to flag large files.
func NewFilePickerStep(dir string, extensions []string, maxSize int64) *FilePickerStep {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			cwd = "."
		}
		dir = cwd
	}

	fp := &FilePickerStep{
		marked:     make(map[string]bool),
		extensions: extensions,
		maxSize:    maxSize,
		width:      60,
		height:     10,
	}

	if err := fp.loadDirectory(dir); err != nil {
		fp.err = err.Error()
		fp.currentPath = dir
	}

	return fp
}

func (f *FilePickerStep) matches(name string) bool {
	if f.showAll || len(f.extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range f.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// loadDirectory loads files and directories from the given path.
func (f *FilePickerStep) loadDirectory(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return err
	}

	f.items = make([]*FileItem, 0, len(entries)+1)

	absPath, err := filepath.Abs(path)
	if err == nil && absPath != filepath.Dir(absPath) {
		f.items = append(f.items, &FileItem{
			name:  "..",
			path:  filepath.Dir(absPath),
			isDir: true,
		})
	}

	var dirs []*FileItem
	var files []*FileItem

	for _, entry := range entries {
		fullPath := filepath.Join(path, entry.Name())

		if entry.IsDir() {
			dirs = append(dirs, &FileItem{
				name:  entry.Name(),
				path:  fullPath,
				isDir: true,
			})
			continue
		}
		if !f.matches(entry.Name()) {
			continue
		}
		var size int64
		if info, err := entry.Info(); err == nil {
			size = info.Size()
		}
		files = append(files, &FileItem{
			name: entry.Name(),
			path: fullPath,
			size: size,
		})
	}

	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].name) < strings.ToLower(dirs[j].name)
	})
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].name) < strings.ToLower(files[j].name)
	})

	f.items = append(f.items, dirs...)
	f.items = append(f.items, files...)
	f.currentPath = path
	f.selectedIdx = 0
	f.offset = 0
	f.err = ""

	return nil
}

func (f *FilePickerStep) navigate(path string) {
	if err := f.loadDirectory(path); err != nil {
		f.err = err.Error()
	}
}

// SetSize updates the dimensions for the file picker.
func (f *FilePickerStep) SetSize(width, height int) {
	f.width = width
	f.height = height
	f.clampOffset()
}

// visibleRows is the number of list rows that fit, leaving room for the
// path header and the hint bar.
func (f *FilePickerStep) visibleRows() int {
	rows := f.height - 5
	if rows < 3 {
		rows = 3
	}
	return rows
}

func (f *FilePickerStep) clampOffset() {
	rows := f.visibleRows()
	if f.selectedIdx < f.offset {
		f.offset = f.selectedIdx
	}
	if f.selectedIdx >= f.offset+rows {
		f.offset = f.selectedIdx - rows + 1
	}
	if f.offset < 0 {
		f.offset = 0
	}
}

func (f *FilePickerStep) toggleMark(item *FileItem) {
	if f.marked[item.path] {
		delete(f.marked, item.path)
		for i, p := range f.markOrder {
			if p == item.path {
				f.markOrder = append(f.markOrder[:i], f.markOrder[i+1:]...)
				break
			}
		}
		return
	}
	f.marked[item.path] = true
	f.markOrder = append(f.markOrder, item.path)
}

func (f *FilePickerStep) current() *FileItem {
	if f.selectedIdx >= 0 && f.selectedIdx < len(f.items) {
		return f.items[f.selectedIdx]
	}
	return nil
}

// Update handles messages for the file picker step.
func (f *FilePickerStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if f.selectedIdx > 0 {
			f.selectedIdx--
			f.clampOffset()
		}
	case "down", "j":
		if f.selectedIdx < len(f.items)-1 {
			f.selectedIdx++
			f.clampOffset()
		}
	case "space", " ":
		if item := f.current(); item != nil && !item.isDir {
			f.toggleMark(item)
		}
	case "enter":
		item := f.current()
		if item == nil {
			return nil
		}
		if item.isDir {
			f.navigate(item.path)
			return nil
		}
		paths := f.SelectedPaths()
		if len(paths) == 0 {
			paths = []string{item.path}
		}
		return func() tea.Msg {
			return FilesSelectedMsg{Paths: paths}
		}
	case "backspace":
		parentPath := filepath.Dir(f.currentPath)
		if parentPath != f.currentPath {
			f.navigate(parentPath)
		}
	case ".":
		f.showAll = !f.showAll
		f.navigate(f.currentPath)
	case "esc":
		return func() tea.Msg {
			return FilePickerCancelledMsg{}
		}
	}

	return nil
}

// View renders the file picker step.
func (f *FilePickerStep) View() string {
	t := theme.Current()
	s := t.S()
	var b strings.Builder

	b.WriteString(s.Muted.Render(f.currentPath))
	b.WriteString("\n")
	filter := "showing " + strings.ToUpper(strings.Join(trimDots(f.extensions), ", "))
	if f.showAll || len(f.extensions) == 0 {
		filter = "showing all files"
	}
	b.WriteString(s.Muted.Render(fmt.Sprintf("%s • %d marked", filter, len(f.marked))))
	b.WriteString("\n\n")

	if f.err != "" {
		b.WriteString(s.Error.Render("✗ " + f.err))
		b.WriteString("\n")
	}

	hasFiles := false
	for _, item := range f.items {
		if item.name != ".." {
			hasFiles = true
			break
		}
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Primary)).
		Background(lipgloss.Color(t.BgSurface0)).
		Bold(true)
	emptyStyle := s.Muted.Italic(true)

	if !hasFiles {
		b.WriteString(emptyStyle.Render("No matching files in this directory"))
		b.WriteString("\n")
	}

	end := f.offset + f.visibleRows()
	if end > len(f.items) {
		end = len(f.items)
	}
	for i := f.offset; i < end; i++ {
		item := f.items[i]
		mark := "  "
		if f.marked[item.path] {
			mark = "✓ "
		}
		line := mark + item.Render(f.width-2)
		if !item.isDir && f.maxSize > 0 && item.size > f.maxSize {
			line += " " + s.Warning.Render("(over limit)")
		}

		if i == f.selectedIdx {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHintBar(
		"↑↓", "navigate",
		"space", "mark",
		"enter", "open/add",
		".", "filter",
		"esc", "cancel",
	))

	return b.String()
}

// CurrentPath returns the directory being browsed.
func (f *FilePickerStep) CurrentPath() string {
	return f.currentPath
}

// SelectedPaths returns the marked files in the order they were marked.
func (f *FilePickerStep) SelectedPaths() []string {
	return append([]string(nil), f.markOrder...)
}

func trimDots(exts []string) []string {
	out := make([]string, len(exts))
	for i, e := range exts {
		out[i] = strings.TrimPrefix(e, ".")
	}
	return out
}

// FilesSelectedMsg is sent when the user confirms one or more files.
type FilesSelectedMsg struct {
	Paths []string
}

// FilePickerCancelledMsg is sent when the picker is dismissed.
type FilePickerCancelledMsg struct{}
