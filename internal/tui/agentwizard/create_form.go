package agentwizard

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/agentforge/internal/agent"
	"github.com/mark3labs/agentforge/internal/logger"
	"github.com/mark3labs/agentforge/internal/tui"
	"github.com/mark3labs/agentforge/internal/tui/theme"
	"github.com/mark3labs/agentforge/internal/tui/wizard"
)

const instructionsPlaceholder = `Enter detailed instructions for your AI agent. Example:

You are an experienced sales training coach for TechCorp Solutions. Your role is to:
- Help employees practice sales conversations
- Provide feedback on objection handling techniques
- Share best practices for closing deals
- Answer questions about our product portfolio
- Guide employees through role-play scenarios

Use a supportive and encouraging tone. Draw from the uploaded knowledge base to provide accurate, company-specific information.`

// Focus targets on the create form, in tab order.
const (
	focusName = iota
	focusDescription
	focusInstructions
	focusFiles
	focusButtons
	focusCount
)

// Create form buttons.
const (
	buttonCancel wizard.ButtonID = iota
	buttonCreate
)

const (
	labelCreate   = "Create AI Agent"
	labelCreating = "Creating Agent..."
)

// CreateFormStep is the drafting view: text fields, file upload area and
// the Cancel / Create buttons. Every edit is written through to the
// session's FormStore.
type CreateFormStep struct {
	session      *agent.Session
	name         textinput.Model
	description  textarea.Model
	instructions textarea.Model
	files        *FileListEditor
	buttonBar    *wizard.ButtonBar
	spinner      spinner.Model
	focus        int
	keys         KeyMap
	width        int
	height       int
}

// NewCreateFormStep builds the form from the current draft, so a kept
// draft reappears after restarting.
func NewCreateFormStep(session *agent.Session, maxSize int64, hint string) *CreateFormStep {
	draft := session.Store().Draft()
	t := theme.Current()

	name := textinput.New()
	name.Placeholder = "Agent Name (e.g., Sales Training Coach)"
	name.Prompt = ""
	name.SetStyles(inputStyles(t))
	name.SetWidth(60)
	name.SetValue(draft.Name)

	description := newTextarea(t, "Brief description of your AI agent's purpose", 3)
	description.SetValue(draft.Description)

	instructions := newTextarea(t, instructionsPlaceholder, 8)
	instructions.SetValue(draft.Instructions)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary))

	f := &CreateFormStep{
		session:      session,
		name:         name,
		description:  description,
		instructions: instructions,
		files:        NewFileListEditor(session.Store(), maxSize, hint),
		buttonBar: wizard.NewButtonBar([]wizard.Button{
			{Label: "Cancel", State: wizard.ButtonNormal},
			{Label: labelCreate, State: wizard.ButtonDisabled},
		}),
		spinner: s,
		keys:    DefaultKeyMap,
		width:   64,
	}
	f.refreshButtons()
	return f
}

func inputStyles(t *theme.Theme) textinput.Styles {
	return textinput.Styles{
		Focused: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgBase)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.BorderFocused)),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgSubtle)),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		},
		Cursor: textinput.CursorStyle{
			Color: lipgloss.Color(t.Primary),
			Shape: tea.CursorBar,
			Blink: true,
		},
	}
}

func newTextarea(t *theme.Theme, placeholder string, height int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.SetWidth(60)
	ta.SetHeight(height)

	styles := textarea.DefaultDarkStyles()
	styles.Cursor.Color = lipgloss.Color(t.Secondary)
	styles.Cursor.Shape = tea.CursorBlock
	styles.Cursor.Blink = true
	ta.SetStyles(styles)
	ta.Blur()
	return ta
}

// Init focuses the name field.
func (f *CreateFormStep) Init() tea.Cmd {
	return f.setFocus(focusName)
}

// SetSize updates input widths to fit the modal.
func (f *CreateFormStep) SetSize(width, height int) {
	f.width = width
	f.height = height
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	f.name.SetWidth(inner)
	f.description.SetWidth(inner)
	f.instructions.SetWidth(inner)
	f.buttonBar.SetWidth(width)
}

// Focused returns the focus target index.
func (f *CreateFormStep) Focused() int {
	return f.focus
}

func (f *CreateFormStep) setFocus(target int) tea.Cmd {
	f.name.Blur()
	f.description.Blur()
	f.instructions.Blur()
	f.files.Blur()
	f.buttonBar.Blur()

	f.focus = (target + focusCount) % focusCount

	switch f.focus {
	case focusName:
		return f.name.Focus()
	case focusDescription:
		return f.description.Focus()
	case focusInstructions:
		return f.instructions.Focus()
	case focusFiles:
		f.files.Focus()
	case focusButtons:
		f.refreshButtons()
		if f.buttonBar.Enabled(buttonCreate) {
			f.buttonBar.FocusLast()
		} else {
			f.buttonBar.FocusFirst()
		}
	}
	return nil
}

// refreshButtons syncs the Create button with the session guard.
func (f *CreateFormStep) refreshButtons() {
	if f.session.Busy() {
		f.buttonBar.SetLabel(buttonCreate, labelCreating)
	} else {
		f.buttonBar.SetLabel(buttonCreate, labelCreate)
	}
	f.buttonBar.SetEnabled(buttonCreate, f.session.CanCreate())
}

// StartBusy switches the Create button to its busy label and starts the
// spinner.
func (f *CreateFormStep) StartBusy() tea.Cmd {
	f.refreshButtons()
	return f.spinner.Tick
}

// Update handles messages for the form.
func (f *CreateFormStep) Update(msg tea.Msg) tea.Cmd {
	defer f.refreshButtons()

	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !f.session.Busy() {
			return nil
		}
		var cmd tea.Cmd
		f.spinner, cmd = f.spinner.Update(msg)
		return cmd

	case tea.PasteMsg:
		if f.focus == focusName {
			msg.Content = tui.CollapseNewlines(msg.Content)
		}
		return f.updateFocused(msg)

	case InstructionsEditedMsg:
		content := strings.TrimSuffix(msg.Content, "\n")
		f.instructions.SetValue(content)
		f.session.Store().SetField(agent.FieldInstructions, content)
		return nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, f.keys.Next):
			return f.setFocus(f.focus + 1)
		case key.Matches(msg, f.keys.Prev):
			return f.setFocus(f.focus - 1)
		case key.Matches(msg, f.keys.Submit):
			return f.submit()
		case key.Matches(msg, f.keys.Editor):
			logger.Debug("opening external editor for instructions")
			return editInstructions(f.instructions.Value())
		}
		return f.updateFocused(msg)
	}

	return f.updateFocused(msg)
}

func (f *CreateFormStep) updateFocused(msg tea.Msg) tea.Cmd {
	store := f.session.Store()
	var cmd tea.Cmd

	switch f.focus {
	case focusName:
		if k, ok := msg.(tea.KeyPressMsg); ok && k.String() == "enter" {
			return f.setFocus(focusDescription)
		}
		f.name, cmd = f.name.Update(msg)
		store.SetField(agent.FieldName, f.name.Value())
	case focusDescription:
		f.description, cmd = f.description.Update(msg)
		store.SetField(agent.FieldDescription, f.description.Value())
	case focusInstructions:
		f.instructions, cmd = f.instructions.Update(msg)
		store.SetField(agent.FieldInstructions, f.instructions.Value())
	case focusFiles:
		cmd = f.files.Update(msg)
	case focusButtons:
		cmd = f.updateButtons(msg)
	}
	return cmd
}

func (f *CreateFormStep) updateButtons(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(k, f.keys.Left):
		f.buttonBar.FocusPrev()
	case key.Matches(k, f.keys.Right):
		f.buttonBar.FocusNext()
	case key.Matches(k, f.keys.Activate):
		switch f.buttonBar.FocusedButton() {
		case buttonCancel:
			return func() tea.Msg { return CancelRequestedMsg{} }
		case buttonCreate:
			return f.submit()
		}
	}
	return nil
}

// submit requests creation when the guard allows it. A disabled Create
// button swallows the request silently.
func (f *CreateFormStep) submit() tea.Cmd {
	if !f.session.CanCreate() {
		logger.Debug("create ignored: busy=%v ready=%v", f.session.Busy(), f.session.Store().CanCreate())
		return nil
	}
	return func() tea.Msg { return CreateRequestedMsg{} }
}

// View renders the form.
func (f *CreateFormStep) View() string {
	t := theme.Current()
	s := t.S()

	field := func(label string, view string, focused bool) string {
		box := s.Input
		if focused {
			box = s.InputFocused
		}
		return lipgloss.JoinVertical(lipgloss.Left, s.Label.Render(label), box.Render(view))
	}

	parts := []string{
		field(agent.FieldName.String(), f.name.View(), f.focus == focusName),
		field(agent.FieldDescription.String(), f.description.View(), f.focus == focusDescription),
		field(agent.FieldInstructions.String(), f.instructions.View(), f.focus == focusInstructions),
		"",
		f.files.View(),
	}

	buttons := f.buttonBar.Render()
	if f.session.Busy() {
		buttons = lipgloss.JoinHorizontal(lipgloss.Center, buttons, " ", f.spinner.View())
	}
	parts = append(parts, buttons, "", wizard.RenderHintBar(f.hints()...))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (f *CreateFormStep) hints() []string {
	switch f.focus {
	case focusFiles:
		return hint(f.keys.AddFiles, f.keys.RemoveFile, f.keys.Next, f.keys.Cancel)
	case focusButtons:
		return hint(f.keys.Left, f.keys.Right, f.keys.Activate, f.keys.Cancel)
	default:
		return hint(f.keys.Next, f.keys.Submit, f.keys.Editor, f.keys.Cancel)
	}
}
