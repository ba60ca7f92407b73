package agentwizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/agentforge/internal/agent"
	"github.com/mark3labs/agentforge/internal/tui"
	"github.com/mark3labs/agentforge/internal/tui/theme"
	"github.com/mark3labs/agentforge/internal/tui/wizard"
)

// Agent created buttons.
const (
	buttonGenerate wizard.ButtonID = iota
	buttonCreateAnother
)

const (
	labelGenerate   = "Generate Meeting Link"
	labelGenerating = "Generating..."

	previewLines = 6
)

// AgentCreatedStep confirms creation and offers to generate a meeting link.
type AgentCreatedStep struct {
	session   *agent.Session
	draft     agent.AgentDraft
	buttonBar *wizard.ButtonBar
	spinner   spinner.Model
	keys      KeyMap
	width     int
	height    int
}

// NewAgentCreatedStep snapshots the draft for display.
func NewAgentCreatedStep(session *agent.Session) *AgentCreatedStep {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Current().Primary))

	return &AgentCreatedStep{
		session: session,
		draft:   session.Store().Draft(),
		buttonBar: wizard.NewButtonBar([]wizard.Button{
			{Label: labelGenerate, State: wizard.ButtonNormal},
			{Label: "Create Another Agent", State: wizard.ButtonNormal},
		}),
		spinner: s,
		keys:    DefaultKeyMap,
		width:   64,
	}
}

// Init focuses the generate button.
func (s *AgentCreatedStep) Init() tea.Cmd {
	s.buttonBar.FocusFirst()
	return nil
}

// SetSize updates the layout width.
func (s *AgentCreatedStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.buttonBar.SetWidth(width)
}

// StartGenerating disables the generate button and starts the spinner.
func (s *AgentCreatedStep) StartGenerating() tea.Cmd {
	s.refreshButtons()
	return s.spinner.Tick
}

func (s *AgentCreatedStep) refreshButtons() {
	if s.session.Generating() {
		s.buttonBar.SetLabel(buttonGenerate, labelGenerating)
		s.buttonBar.SetEnabled(buttonGenerate, false)
		return
	}
	s.buttonBar.SetLabel(buttonGenerate, labelGenerate)
	s.buttonBar.SetEnabled(buttonGenerate, true)
}

// Update handles messages for the step.
func (s *AgentCreatedStep) Update(msg tea.Msg) tea.Cmd {
	defer s.refreshButtons()

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !s.session.Generating() {
			return nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, s.keys.Generate):
			return s.activate(buttonGenerate)
		case key.Matches(msg, s.keys.Restart):
			return s.activate(buttonCreateAnother)
		case key.Matches(msg, s.keys.Next), key.Matches(msg, s.keys.Right):
			if !s.buttonBar.FocusNext() {
				s.buttonBar.FocusFirst()
			}
		case key.Matches(msg, s.keys.Prev), key.Matches(msg, s.keys.Left):
			if !s.buttonBar.FocusPrev() {
				s.buttonBar.FocusLast()
			}
		case key.Matches(msg, s.keys.Activate):
			return s.activate(s.buttonBar.FocusedButton())
		}
	}
	return nil
}

func (s *AgentCreatedStep) activate(id wizard.ButtonID) tea.Cmd {
	switch id {
	case buttonGenerate:
		if s.session.Generating() {
			return nil
		}
		return func() tea.Msg { return GenerateRequestedMsg{} }
	case buttonCreateAnother:
		return func() tea.Msg { return RestartRequestedMsg{} }
	}
	return nil
}

// View renders the success screen and the agent summary.
func (s *AgentCreatedStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(st.Success.Render("✓ AI Agent Created Successfully!"))
	b.WriteString("\n\n")
	b.WriteString(st.Text.Render(fmt.Sprintf("Your AI training agent %q is ready to use.", s.draft.Name)))
	b.WriteString("\n\n")

	b.WriteString(st.Label.Render("Name: "))
	b.WriteString(st.Text.Render(s.draft.Name))
	b.WriteString("\n")
	if s.draft.Description != "" {
		b.WriteString(st.Label.Render("Description: "))
		b.WriteString(st.Text.Render(s.draft.Description))
		b.WriteString("\n")
	}
	b.WriteString(st.Label.Render("Knowledge Files: "))
	b.WriteString(st.Text.Render(filesUploaded(len(s.draft.Files))))
	b.WriteString("\n\n")

	b.WriteString(st.Label.Render("Instructions"))
	b.WriteString("\n")
	b.WriteString(tui.TruncateLines(tui.RenderMarkdown(s.draft.Instructions, s.width), previewLines))
	b.WriteString("\n\n")

	buttons := s.buttonBar.Render()
	if s.session.Generating() {
		buttons = lipgloss.JoinHorizontal(lipgloss.Center, buttons, " ", s.spinner.View())
	}
	b.WriteString(buttons)
	b.WriteString("\n")
	b.WriteString(wizard.RenderHintBar(hint(s.keys.Generate, s.keys.Restart, s.keys.Activate, s.keys.Cancel)...))

	return b.String()
}

func filesUploaded(n int) string {
	if n == 1 {
		return "1 file uploaded"
	}
	return fmt.Sprintf("%d files uploaded", n)
}
