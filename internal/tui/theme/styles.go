package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles shared by the wizard views.
type Styles struct {
	HeaderTitle  lipgloss.Style
	Label        lipgloss.Style
	Text         lipgloss.Style
	Muted        lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
	Link         lipgloss.Style
	Badge        lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Modal        lipgloss.Style
}
