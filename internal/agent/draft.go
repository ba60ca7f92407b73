// Package agent holds the agent draft being authored and the wizard stage
// machine that drives it.
package agent

// Field identifies an editable text field of the draft.
type Field int

const (
	FieldName Field = iota
	FieldDescription
	FieldInstructions
)

// String returns the field's form label.
func (f Field) String() string {
	switch f {
	case FieldName:
		return "Agent Name"
	case FieldDescription:
		return "Agent Description"
	case FieldInstructions:
		return "Knowledge & Instructions"
	default:
		return "unknown"
	}
}

// AgentDraft is the in-progress agent profile.
type AgentDraft struct {
	Name         string
	Description  string
	Instructions string
	Files        []FileRef
}

// FormStore owns the draft. All mutation goes through it.
type FormStore struct {
	draft AgentDraft
}

// NewFormStore returns a store with an empty draft.
func NewFormStore() *FormStore {
	return &FormStore{}
}

// SetField replaces the value of a field. Unknown fields are ignored.
func (s *FormStore) SetField(field Field, value string) {
	switch field {
	case FieldName:
		s.draft.Name = value
	case FieldDescription:
		s.draft.Description = value
	case FieldInstructions:
		s.draft.Instructions = value
	}
}

// Field returns the current value of a field.
func (s *FormStore) Field(field Field) string {
	switch field {
	case FieldName:
		return s.draft.Name
	case FieldDescription:
		return s.draft.Description
	case FieldInstructions:
		return s.draft.Instructions
	}
	return ""
}

// AddFiles appends files in order. Duplicates and oversize files are kept.
func (s *FormStore) AddFiles(files ...FileRef) {
	s.draft.Files = append(s.draft.Files, files...)
}

// RemoveFile removes the file at index, keeping the order of the rest.
// An out-of-range index is a no-op and reports false.
func (s *FormStore) RemoveFile(index int) bool {
	if index < 0 || index >= len(s.draft.Files) {
		return false
	}
	s.draft.Files = append(s.draft.Files[:index:index], s.draft.Files[index+1:]...)
	return true
}

// Files returns a copy of the file list.
func (s *FormStore) Files() []FileRef {
	return append([]FileRef(nil), s.draft.Files...)
}

// FileCount returns the number of attached files.
func (s *FormStore) FileCount() int {
	return len(s.draft.Files)
}

// Reset clears every field and the file list.
func (s *FormStore) Reset() {
	s.draft = AgentDraft{}
}

// Draft returns a snapshot of the draft.
func (s *FormStore) Draft() AgentDraft {
	d := s.draft
	d.Files = s.Files()
	return d
}

// CanCreate reports whether the required fields are filled in.
func (s *FormStore) CanCreate() bool {
	return s.draft.Name != "" && s.draft.Instructions != ""
}

// IsEmpty reports whether nothing has been entered yet.
func (s *FormStore) IsEmpty() bool {
	return s.draft.Name == "" && s.draft.Description == "" &&
		s.draft.Instructions == "" && len(s.draft.Files) == 0
}
