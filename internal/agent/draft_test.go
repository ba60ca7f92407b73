package agent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func files(names ...string) []FileRef {
	refs := make([]FileRef, len(names))
	for i, n := range names {
		refs[i] = FileRef{Name: n, Size: int64(i + 1), MimeType: "text/plain"}
	}
	return refs
}

func names(refs []FileRef) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.Name
	}
	return out
}

func TestFormStore_SetField(t *testing.T) {
	s := NewFormStore()

	s.SetField(FieldName, "Sales Coach")
	s.SetField(FieldDescription, "Helps reps")
	s.SetField(FieldInstructions, "Be supportive")
	s.SetField(Field(99), "ignored")

	d := s.Draft()
	assert.Equal(t, "Sales Coach", d.Name)
	assert.Equal(t, "Helps reps", d.Description)
	assert.Equal(t, "Be supportive", d.Instructions)
	assert.Equal(t, "Sales Coach", s.Field(FieldName))
	assert.Equal(t, "", s.Field(Field(99)))

	s.SetField(FieldName, "")
	assert.Equal(t, "", s.Draft().Name, "empty values are stored as-is")
}

func TestFormStore_AddFilesKeepsOrderAndDuplicates(t *testing.T) {
	s := NewFormStore()
	s.AddFiles(files("a.pdf", "b.txt")...)
	s.AddFiles(files("a.pdf")...)
	s.AddFiles()

	assert.Equal(t, []string{"a.pdf", "b.txt", "a.pdf"}, names(s.Files()))
	assert.Equal(t, 3, s.FileCount())
}

func TestFormStore_RemoveFile(t *testing.T) {
	all := []string{"a", "b", "c", "d"}

	for i := range all {
		t.Run(fmt.Sprintf("index %d", i), func(t *testing.T) {
			s := NewFormStore()
			s.AddFiles(files(all...)...)

			require.True(t, s.RemoveFile(i))

			want := append(append([]string{}, all[:i]...), all[i+1:]...)
			assert.Equal(t, want, names(s.Files()))
		})
	}
}

func TestFormStore_RemoveFileOutOfRange(t *testing.T) {
	s := NewFormStore()
	s.AddFiles(files("a", "b")...)

	for _, idx := range []int{-1, 2, 100} {
		assert.False(t, s.RemoveFile(idx))
	}
	assert.Equal(t, []string{"a", "b"}, names(s.Files()))

	empty := NewFormStore()
	assert.False(t, empty.RemoveFile(0))
}

func TestFormStore_SnapshotsAreIndependent(t *testing.T) {
	s := NewFormStore()
	s.AddFiles(files("a", "b", "c")...)

	snap := s.Files()
	s.RemoveFile(0)

	assert.Equal(t, []string{"a", "b", "c"}, names(snap))
	assert.Equal(t, []string{"b", "c"}, names(s.Files()))
}

func TestFormStore_Reset(t *testing.T) {
	s := NewFormStore()
	s.SetField(FieldName, "x")
	s.SetField(FieldInstructions, "y")
	s.AddFiles(files("a")...)
	require.False(t, s.IsEmpty())

	s.Reset()

	assert.True(t, s.IsEmpty())
	assert.Equal(t, AgentDraft{}, s.Draft())
}

func TestFormStore_CanCreate(t *testing.T) {
	tests := []struct {
		name         string
		agentName    string
		instructions string
		want         bool
	}{
		{"both set", "Coach", "Help", true},
		{"missing name", "", "Help", false},
		{"missing instructions", "Coach", "", false},
		{"both missing", "", "", false},
		{"whitespace counts as content", " ", " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewFormStore()
			s.SetField(FieldName, tt.agentName)
			s.SetField(FieldInstructions, tt.instructions)
			assert.Equal(t, tt.want, s.CanCreate())
		})
	}
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "Agent Name", FieldName.String())
	assert.Equal(t, "Agent Description", FieldDescription.String())
	assert.Equal(t, "Knowledge & Instructions", FieldInstructions.String())
	assert.Equal(t, "unknown", Field(7).String())
}
