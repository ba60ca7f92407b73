package agentwizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/agentforge/internal/agent"
	"github.com/mark3labs/agentforge/internal/config"
	"github.com/mark3labs/agentforge/internal/meeting"
	"github.com/mark3labs/agentforge/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func special(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func shiftTab() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func char(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// typeText sends one key press per rune.
func typeText(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		update(char(r))
	}
}

// msgOf runs cmd and returns its message. Batches are not expanded.
func msgOf(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// runBatch runs every command of a batch (or the single command) and
// returns the messages.
func runBatch(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		out = append(out, c())
	}
	return out
}

// readySession returns a session whose draft passes the create guard.
func readySession(opts ...agent.SessionOption) *agent.Session {
	s := agent.NewSession(opts...)
	s.Store().SetField(agent.FieldName, "Sales Coach")
	s.Store().SetField(agent.FieldDescription, "Practice partner")
	s.Store().SetField(agent.FieldInstructions, "Help reps **practice** objection handling.")
	return s
}

// createdSession returns a session in the Created stage.
func createdSession(t *testing.T) *agent.Session {
	t.Helper()
	s := readySession()
	s.Store().AddFiles(testfixtures.SampleFiles()[:2]...)
	require.NoError(t, s.BeginCreate())
	require.NoError(t, s.CompleteCreate())
	return s
}

type testWizard struct {
	*WizardModel
	clip   *testfixtures.MockClipboard
	opener *testfixtures.MockOpener
}

func newTestWizard(t *testing.T, prefill Prefill, mutate ...func(*config.Config)) *testWizard {
	t.Helper()
	cfg := config.Default()
	cfg.CreateDelay = "0s"
	cfg.MeetingDelay = "0s"
	for _, fn := range mutate {
		fn(cfg)
	}

	clip := testfixtures.NewMockClipboard()
	opener := testfixtures.NewMockOpener()
	m, err := New(cfg, Deps{
		Clipboard: clip,
		Opener:    opener,
		Generator: meeting.NewGenerator("https://meet.zemo.com", meeting.WithIDFunc(func() string { return "abc123" })),
	}, prefill)
	require.NoError(t, err)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	return &testWizard{WizardModel: m, clip: clip, opener: opener}
}

func (w *testWizard) send(msg tea.Msg) tea.Cmd {
	_, cmd := w.Update(msg)
	return cmd
}

// advanceTo drives the wizard through the real transitions up to stage.
func (w *testWizard) advanceTo(t *testing.T, stage agent.Stage) {
	t.Helper()
	if stage == agent.StageDrafting {
		return
	}
	w.send(CreateRequestedMsg{})
	w.send(AgentCreatedMsg{Epoch: w.Session().Epoch()})
	require.Equal(t, agent.StageCreated, w.Session().Stage())
	if stage == agent.StageCreated {
		return
	}
	w.send(GenerateRequestedMsg{})
	w.send(MeetingGeneratedMsg{Epoch: w.Session().Epoch(), Link: "https://meet.zemo.com/sales-coach-abc123"})
	require.Equal(t, agent.StageMeetingReady, w.Session().Stage())
}

func (w *testWizard) screen() string {
	return testfixtures.Squash(w.renderCurrentStep())
}

var readyPrefill = Prefill{
	Name:         "Sales Coach",
	Instructions: "Help reps practice.",
}
