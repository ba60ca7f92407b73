package agentwizard

import (
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/agentforge/internal/tui/theme"
)

// ConfirmationModal is a yes/no prompt drawn over the current step.
type ConfirmationModal struct {
	title   string
	message string
	visible bool
}

// NewConfirmationModal creates a hidden modal.
func NewConfirmationModal(title, message string) *ConfirmationModal {
	return &ConfirmationModal{
		title:   title,
		message: message,
	}
}

// Show makes the modal visible.
func (m *ConfirmationModal) Show() {
	m.visible = true
}

// Hide hides the modal.
func (m *ConfirmationModal) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is currently visible.
func (m *ConfirmationModal) IsVisible() bool {
	return m.visible
}

// Render renders the modal.
func (m *ConfirmationModal) Render() string {
	return RenderConfirmationModal(m.title, m.message)
}

// RenderConfirmationModal renders a warning box with the given title and
// message and the y/n prompt.
func RenderConfirmationModal(title, message string) string {
	t := theme.Current()

	titleText := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Warning)).
		MarginBottom(1).
		Render("⚠ " + title)

	messageText := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgBase)).
		MarginBottom(1).
		Render(message)

	prompt := lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.FgMuted)).
		Render("Press Y to confirm, N or ESC to cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, titleText, messageText, "", prompt)

	return lipgloss.NewStyle().
		Width(50).
		Padding(2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Warning)).
		Render(content)
}
