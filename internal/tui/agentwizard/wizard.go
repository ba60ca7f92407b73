// Package agentwizard is the three-stage agent creation TUI: draft the
// agent, create it, then generate and share a meeting link.
package agentwizard

import (
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/agentforge/internal/agent"
	"github.com/mark3labs/agentforge/internal/config"
	"github.com/mark3labs/agentforge/internal/desktop"
	"github.com/mark3labs/agentforge/internal/humanize"
	"github.com/mark3labs/agentforge/internal/logger"
	"github.com/mark3labs/agentforge/internal/meeting"
	"github.com/mark3labs/agentforge/internal/tui"
	"github.com/mark3labs/agentforge/internal/tui/theme"
	"github.com/mark3labs/agentforge/internal/tui/wizard"
)

// Modal layout constants
const (
	modalWidth        = 70
	modalPadding      = 2
	modalBorderWidth  = 1
	modalContentWidth = modalWidth - (modalPadding * 2) - (modalBorderWidth * 2) // 64
)

const (
	actionCopy = "copy"
	actionOpen = "open"
)

// ErrCancelled is returned by Run when the user abandons the draft.
var ErrCancelled = errors.New("wizard cancelled by user")

// Deps are the host integrations used by the wizard.
type Deps struct {
	Clipboard desktop.Clipboard
	Opener    desktop.Opener
	Generator *meeting.Generator
}

// Prefill seeds the draft before the form is shown.
type Prefill struct {
	Name         string
	Description  string
	Instructions string
}

// Result summarises where the user left the wizard.
type Result struct {
	Stage       agent.Stage
	AgentName   string
	MeetingLink string
	Files       int
}

// WizardModel is the bubbletea model for the agent wizard. All wizard state
// lives in the Session; the mounted step is derived from its stage.
type WizardModel struct {
	session *agent.Session
	deps    Deps
	keys    KeyMap

	createDelay  time.Duration
	meetingDelay time.Duration
	maxSize      int64
	extensions   []string
	hint         string

	// Only the step for the current stage is non-nil.
	createForm       *CreateFormStep
	agentCreated     *AgentCreatedStep
	meetingGenerated *MeetingGeneratedStep

	picker  *wizard.FilePickerStep
	confirm *ConfirmationModal
	toast   *tui.Toast

	width     int
	height    int
	cancelled bool
	quitting  bool
}

// New builds a wizard from configuration. Missing deps fall back to the
// system clipboard, the platform opener and a generator on the configured
// base URL.
func New(cfg *config.Config, deps Deps, prefill Prefill) (*WizardModel, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	createDelay, err := cfg.CreateDelayDuration()
	if err != nil {
		return nil, err
	}
	meetingDelay, err := cfg.MeetingDelayDuration()
	if err != nil {
		return nil, err
	}
	maxSize, err := cfg.MaxFileSizeBytes()
	if err != nil {
		return nil, err
	}

	if deps.Clipboard == nil {
		deps.Clipboard = desktop.SystemClipboard{}
	}
	if deps.Opener == nil {
		deps.Opener = desktop.NewSystemOpener()
	}
	if deps.Generator == nil {
		deps.Generator = meeting.NewGenerator(cfg.MeetingBaseURL)
	}

	session := agent.NewSession(agent.WithKeepDraftOnRestart(cfg.KeepDraftOnRestart))
	store := session.Store()
	store.SetField(agent.FieldName, prefill.Name)
	store.SetField(agent.FieldDescription, prefill.Description)
	store.SetField(agent.FieldInstructions, prefill.Instructions)

	extensions := cfg.Extensions()
	m := &WizardModel{
		session:      session,
		deps:         deps,
		keys:         DefaultKeyMap,
		createDelay:  createDelay,
		meetingDelay: meetingDelay,
		maxSize:      maxSize,
		extensions:   extensions,
		hint:         SupportedHint(extensions, humanize.FormatFileSize(maxSize)),
		confirm:      NewConfirmationModal("Discard Agent?", "Your agent draft will be lost."),
		toast:        tui.NewToast(),
	}
	m.mountStep()
	return m, nil
}

// Run starts the wizard program and returns where the user left it.
func Run(cfg *config.Config, prefill Prefill) (*Result, error) {
	m, err := New(cfg, Deps{}, prefill)
	if err != nil {
		return nil, err
	}

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	wizModel, ok := finalModel.(*WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if wizModel.cancelled {
		return nil, ErrCancelled
	}
	res := wizModel.Result()
	return &res, nil
}

// Session exposes the wizard state.
func (m *WizardModel) Session() *agent.Session {
	return m.session
}

// Cancelled reports whether the user abandoned the wizard.
func (m *WizardModel) Cancelled() bool {
	return m.cancelled
}

// Result snapshots the session for the caller.
func (m *WizardModel) Result() Result {
	draft := m.session.Store().Draft()
	return Result{
		Stage:       m.session.Stage(),
		AgentName:   draft.Name,
		MeetingLink: m.session.MeetingLink(),
		Files:       len(draft.Files),
	}
}

// Init initializes the mounted step.
func (m *WizardModel) Init() tea.Cmd {
	return m.initCurrentStep()
}

// Update handles messages for the wizard.
func (m *WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateCurrentStepSize()
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.PasteMsg:
		// Only the create form has text inputs.
		if m.confirm.IsVisible() || m.picker != nil || m.createForm == nil {
			return m, nil
		}
		return m, m.createForm.Update(tea.PasteMsg{Content: tui.SanitizePaste(msg.Content)})

	case CancelRequestedMsg:
		if m.session.Store().IsEmpty() {
			return m.quit(true)
		}
		m.confirm.Show()
		return m, nil

	case CreateRequestedMsg:
		if err := m.session.BeginCreate(); err != nil {
			logger.Debug("create rejected: %v", err)
			return m, nil
		}
		logger.Info("creating agent %q", m.session.Store().Field(agent.FieldName))
		epoch := m.session.Epoch()
		return m, tea.Batch(
			m.createForm.StartBusy(),
			tea.Tick(m.createDelay, func(time.Time) tea.Msg {
				return AgentCreatedMsg{Epoch: epoch}
			}),
		)

	case AgentCreatedMsg:
		if msg.Epoch != m.session.Epoch() {
			logger.Debug("dropping stale create completion (epoch %d, now %d)", msg.Epoch, m.session.Epoch())
			return m, nil
		}
		if err := m.session.CompleteCreate(); err != nil {
			logger.Debug("create completion rejected: %v", err)
			return m, nil
		}
		logger.Info("agent %q created", m.session.Store().Field(agent.FieldName))
		m.mountStep()
		return m, m.initCurrentStep()

	case GenerateRequestedMsg:
		if err := m.session.BeginMeeting(); err != nil {
			logger.Debug("generate rejected: %v", err)
			return m, nil
		}
		epoch := m.session.Epoch()
		name := m.session.Store().Field(agent.FieldName)
		gen := m.deps.Generator
		cmds := []tea.Cmd{tea.Tick(m.meetingDelay, func(time.Time) tea.Msg {
			return MeetingGeneratedMsg{Epoch: epoch, Link: gen.Link(name)}
		})}
		if m.agentCreated != nil {
			cmds = append(cmds, m.agentCreated.StartGenerating())
		}
		return m, tea.Batch(cmds...)

	case MeetingGeneratedMsg:
		if msg.Epoch != m.session.Epoch() {
			logger.Debug("dropping stale meeting completion (epoch %d, now %d)", msg.Epoch, m.session.Epoch())
			return m, nil
		}
		if err := m.session.CompleteMeeting(msg.Link); err != nil {
			logger.Warn("meeting completion rejected: %v", err)
			return m, nil
		}
		logger.Info("meeting link generated: %s", msg.Link)
		m.mountStep()
		return m, m.initCurrentStep()

	case RestartRequestedMsg:
		if err := m.session.Restart(); err != nil {
			logger.Debug("restart rejected: %v", err)
			return m, nil
		}
		m.mountStep()
		return m, m.initCurrentStep()

	case OpenFilePickerMsg:
		m.picker = wizard.NewFilePickerStep("", m.extensions, m.maxSize)
		m.updateCurrentStepSize()
		return m, nil

	case wizard.FilesSelectedMsg:
		m.picker = nil
		return m, m.addFiles(msg.Paths)

	case wizard.FilePickerCancelledMsg:
		m.picker = nil
		return m, nil

	case CopyLinkMsg:
		link := m.session.MeetingLink()
		if link == "" {
			return m, nil
		}
		clip := m.deps.Clipboard
		return m, tea.Batch(
			tea.SetClipboard(link),
			func() tea.Msg {
				return linkActionDoneMsg{action: actionCopy, err: clip.WriteAll(link)}
			},
		)

	case OpenLinkMsg:
		link := m.session.MeetingLink()
		if link == "" {
			return m, nil
		}
		opener := m.deps.Opener
		return m, func() tea.Msg {
			return linkActionDoneMsg{action: actionOpen, err: opener.Open(link)}
		}

	case linkActionDoneMsg:
		return m, m.linkActionDone(msg)

	case EditorFailedMsg:
		logger.Warn("external editor failed: %v", msg.Err)
		return m, m.toast.ShowError("Editor failed: " + msg.Err.Error())

	case tui.ToastDismissMsg:
		return m, m.toast.Update(msg)
	}

	return m, m.updateCurrentStep(msg)
}

func (m *WizardModel) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit(true)
	}

	if m.confirm.IsVisible() {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.confirm.Hide()
			return m.quit(true)
		case key.Matches(msg, m.keys.Deny):
			m.confirm.Hide()
		}
		return m, nil
	}

	if m.picker != nil {
		return m, m.picker.Update(msg)
	}

	if key.Matches(msg, m.keys.Cancel) {
		if m.session.Stage() == agent.StageDrafting {
			return m, func() tea.Msg { return CancelRequestedMsg{} }
		}
		return m.quit(false)
	}

	return m, m.updateCurrentStep(msg)
}

func (m *WizardModel) quit(cancelled bool) (tea.Model, tea.Cmd) {
	m.cancelled = cancelled
	m.quitting = true
	return m, tea.Quit
}

func (m *WizardModel) addFiles(paths []string) tea.Cmd {
	refs := make([]agent.FileRef, 0, len(paths))
	var failed []string
	for _, p := range paths {
		ref, err := agent.FileRefFromPath(p)
		if err != nil {
			logger.Warn("skipping %s: %v", p, err)
			failed = append(failed, p)
			continue
		}
		if ref.Oversize(m.maxSize) {
			logger.Debug("%s is over the advisory limit (%s)", ref.Name, humanize.FormatFileSize(ref.Size))
		}
		refs = append(refs, ref)
	}
	m.session.Store().AddFiles(refs...)
	logger.Debug("added %d file(s), %d total", len(refs), m.session.Store().FileCount())

	if len(failed) > 0 {
		return m.toast.ShowError(fmt.Sprintf("Could not add %d file(s)", len(failed)))
	}
	return nil
}

func (m *WizardModel) linkActionDone(msg linkActionDoneMsg) tea.Cmd {
	if msg.err != nil {
		logger.Warn("%s meeting link: %v", msg.action, msg.err)
		if msg.action == actionCopy {
			return m.toast.ShowError("Could not copy link")
		}
		return m.toast.ShowError("Could not open link")
	}
	if msg.action == actionCopy {
		return m.toast.Show("Meeting link copied to clipboard!")
	}
	return m.toast.Show("Opening meeting...")
}

// mountStep creates the step for the current stage and drops the others.
func (m *WizardModel) mountStep() {
	m.createForm = nil
	m.agentCreated = nil
	m.meetingGenerated = nil

	switch m.session.Stage() {
	case agent.StageDrafting:
		m.createForm = NewCreateFormStep(m.session, m.maxSize, m.hint)
	case agent.StageCreated:
		m.agentCreated = NewAgentCreatedStep(m.session)
	case agent.StageMeetingReady:
		m.meetingGenerated = NewMeetingGeneratedStep(m.session)
	}
	m.updateCurrentStepSize()
}

func (m *WizardModel) initCurrentStep() tea.Cmd {
	switch {
	case m.createForm != nil:
		return m.createForm.Init()
	case m.agentCreated != nil:
		return m.agentCreated.Init()
	case m.meetingGenerated != nil:
		return m.meetingGenerated.Init()
	}
	return nil
}

func (m *WizardModel) updateCurrentStep(msg tea.Msg) tea.Cmd {
	switch {
	case m.createForm != nil:
		return m.createForm.Update(msg)
	case m.agentCreated != nil:
		return m.agentCreated.Update(msg)
	case m.meetingGenerated != nil:
		return m.meetingGenerated.Update(msg)
	}
	return nil
}

// getModalContentSize returns the internal content dimensions for the modal.
func (m *WizardModel) getModalContentSize() (width, height int) {
	width = modalContentWidth
	height = m.height - 4
	if height < 20 {
		height = 20
	}
	if height > 50 {
		height = 50
	}
	height -= 6
	return width, height
}

func (m *WizardModel) updateCurrentStepSize() {
	w, h := m.getModalContentSize()
	switch {
	case m.createForm != nil:
		m.createForm.SetSize(w, h)
	case m.agentCreated != nil:
		m.agentCreated.SetSize(w, h)
	case m.meetingGenerated != nil:
		m.meetingGenerated.SetSize(w, h)
	}
	if m.picker != nil {
		m.picker.SetSize(w, h)
	}
}

// stepTitle maps a stage to its modal title.
func stepTitle(stage agent.Stage) string {
	switch stage {
	case agent.StageCreated:
		return "Agent Ready"
	case agent.StageMeetingReady:
		return "Start Your Training Session"
	default:
		return "Create Your AI Training Agent"
	}
}

// renderCurrentStep renders the modal for the mounted step, or an overlay
// when the picker or the confirmation is open.
func (m *WizardModel) renderCurrentStep() string {
	if m.confirm.IsVisible() {
		return m.confirm.Render()
	}

	st := theme.Current().S()
	title := stepTitle(m.session.Stage())

	var content string
	switch {
	case m.picker != nil:
		title = "Choose Files"
		content = m.picker.View()
	case m.createForm != nil:
		content = m.createForm.View()
	case m.agentCreated != nil:
		content = m.agentCreated.View()
	case m.meetingGenerated != nil:
		content = m.meetingGenerated.View()
	}

	modal := st.Modal.
		Width(modalWidth).
		Padding(1, modalPadding).
		BorderForeground(lipgloss.Color(theme.Current().BorderFocused)).
		Render(lipgloss.JoinVertical(lipgloss.Left, st.HeaderTitle.MarginBottom(1).Render(title), content))

	if toast := m.toast.View(); toast != "" {
		modal = lipgloss.JoinVertical(lipgloss.Center, modal, "", toast)
	}
	return modal
}

// View renders the wizard.
func (m *WizardModel) View() tea.View {
	var view tea.View
	view.AltScreen = true

	if m.width == 0 || m.height == 0 || m.quitting {
		view.Content = lipgloss.NewLayer("")
		return view
	}

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.renderCurrentStep(),
	)

	canvas := uv.NewScreenBuffer(m.width, m.height)
	uv.NewStyledString(centered).Draw(canvas, uv.Rectangle{
		Min: uv.Position{X: 0, Y: 0},
		Max: uv.Position{X: m.width, Y: m.height},
	})

	view.Content = lipgloss.NewLayer(canvas.Render())
	return view
}
