package agentwizard

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/agentforge/internal/agent"
	"github.com/mark3labs/agentforge/internal/tui/theme"
	"github.com/mark3labs/agentforge/internal/tui/wizard"
)

// Meeting generated buttons.
const (
	buttonCopy wizard.ButtonID = iota
	buttonOpen
	buttonRestart
)

// MeetingGeneratedStep shows the meeting link with copy and open actions.
type MeetingGeneratedStep struct {
	agentName string
	link      string
	buttonBar *wizard.ButtonBar
	keys      KeyMap
	width     int
	height    int
}

// NewMeetingGeneratedStep reads the agent name and link from the session.
func NewMeetingGeneratedStep(session *agent.Session) *MeetingGeneratedStep {
	return &MeetingGeneratedStep{
		agentName: session.Store().Field(agent.FieldName),
		link:      session.MeetingLink(),
		buttonBar: wizard.NewButtonBar([]wizard.Button{
			{Label: "Copy Meeting Link", State: wizard.ButtonNormal},
			{Label: "Open Meeting", State: wizard.ButtonNormal},
			{Label: "Create Another Agent", State: wizard.ButtonNormal},
		}),
		keys:  DefaultKeyMap,
		width: 64,
	}
}

// Init focuses the copy button.
func (s *MeetingGeneratedStep) Init() tea.Cmd {
	s.buttonBar.FocusFirst()
	return nil
}

// SetSize updates the layout width.
func (s *MeetingGeneratedStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.buttonBar.SetWidth(width)
}

// Link returns the displayed meeting link.
func (s *MeetingGeneratedStep) Link() string {
	return s.link
}

// Update handles messages for the step.
func (s *MeetingGeneratedStep) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, s.keys.Copy):
		return s.activate(buttonCopy)
	case key.Matches(keyMsg, s.keys.Open):
		return s.activate(buttonOpen)
	case key.Matches(keyMsg, s.keys.Restart):
		return s.activate(buttonRestart)
	case key.Matches(keyMsg, s.keys.Next), key.Matches(keyMsg, s.keys.Right):
		if !s.buttonBar.FocusNext() {
			s.buttonBar.FocusFirst()
		}
	case key.Matches(keyMsg, s.keys.Prev), key.Matches(keyMsg, s.keys.Left):
		if !s.buttonBar.FocusPrev() {
			s.buttonBar.FocusLast()
		}
	case key.Matches(keyMsg, s.keys.Activate):
		return s.activate(s.buttonBar.FocusedButton())
	}
	return nil
}

func (s *MeetingGeneratedStep) activate(id wizard.ButtonID) tea.Cmd {
	switch id {
	case buttonCopy:
		return func() tea.Msg { return CopyLinkMsg{} }
	case buttonOpen:
		return func() tea.Msg { return OpenLinkMsg{} }
	case buttonRestart:
		return func() tea.Msg { return RestartRequestedMsg{} }
	}
	return nil
}

// View renders the link screen.
func (s *MeetingGeneratedStep) View() string {
	st := theme.Current().S()
	var b strings.Builder

	b.WriteString(st.Success.Render("✓ Meeting Link Generated!"))
	b.WriteString("\n\n")
	b.WriteString(st.Text.Render("Your AI training session is ready to begin."))
	b.WriteString("\n\n")

	b.WriteString(st.Label.Render("Agent: "))
	b.WriteString(st.Text.Render(s.agentName))
	b.WriteString("\n\n")

	b.WriteString(st.Label.Render("Meeting Link"))
	b.WriteString("\n")
	b.WriteString(st.Input.Render(st.Link.Render(s.link)))
	b.WriteString("\n\n")

	b.WriteString(s.buttonBar.Render())
	b.WriteString("\n")
	b.WriteString(wizard.RenderHintBar(hint(s.keys.Copy, s.keys.Open, s.keys.Restart, s.keys.Cancel)...))

	return b.String()
}
