package agent

import "errors"

// Stage is the wizard's current step.
type Stage int

const (
	StageDrafting Stage = iota
	StageCreated
	StageMeetingReady
)

func (s Stage) String() string {
	switch s {
	case StageDrafting:
		return "drafting"
	case StageCreated:
		return "created"
	case StageMeetingReady:
		return "meeting-ready"
	default:
		return "unknown"
	}
}

var (
	// ErrIncompleteDraft is returned when name or instructions are empty.
	ErrIncompleteDraft = errors.New("agent name and instructions are required")
	// ErrBusy is returned while a simulated operation is still running.
	ErrBusy = errors.New("operation already in progress")
	// ErrInvalidTransition is returned when an action is not valid for the current stage.
	ErrInvalidTransition = errors.New("action not allowed in current stage")
	// ErrEmptyLink is returned when a meeting completes without a link.
	ErrEmptyLink = errors.New("meeting link is empty")
)

// Session is the wizard state: the draft plus the stage machine
// Drafting -> Created -> MeetingReady, with restart back to Drafting.
//
// Simulated operations are split into Begin/Complete pairs so the caller
// decides how the delay between them is scheduled. Each restart bumps the
// epoch; completions from an earlier epoch should be discarded by the caller.
type Session struct {
	store      *FormStore
	stage      Stage
	busy       bool
	generating bool
	link       string
	epoch      int
	keepDraft  bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithKeepDraftOnRestart controls whether restarting keeps the draft fields.
// Sessions keep them by default; pass false to reset the draft on restart.
func WithKeepDraftOnRestart(keep bool) SessionOption {
	return func(s *Session) {
		s.keepDraft = keep
	}
}

// NewSession starts a session in the Drafting stage with an empty draft.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		store:     NewFormStore(),
		stage:     StageDrafting,
		keepDraft: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the form store backing the draft.
func (s *Session) Store() *FormStore { return s.store }

// Stage returns the active stage.
func (s *Session) Stage() Stage { return s.stage }

// Busy reports whether agent creation is in flight.
func (s *Session) Busy() bool { return s.busy }

// Generating reports whether meeting generation is in flight.
func (s *Session) Generating() bool { return s.generating }

// MeetingLink returns the generated link. Empty until MeetingReady.
func (s *Session) MeetingLink() string { return s.link }

// Epoch identifies the current run of the wizard.
func (s *Session) Epoch() int { return s.epoch }

// CanCreate reports whether the create action is enabled.
func (s *Session) CanCreate() bool {
	return s.stage == StageDrafting && !s.busy && s.store.CanCreate()
}

// BeginCreate starts the simulated creation and marks the session busy.
func (s *Session) BeginCreate() error {
	if s.stage != StageDrafting {
		return ErrInvalidTransition
	}
	if s.busy {
		return ErrBusy
	}
	if !s.store.CanCreate() {
		return ErrIncompleteDraft
	}
	s.busy = true
	return nil
}

// CompleteCreate finishes creation and moves to Created.
func (s *Session) CompleteCreate() error {
	if s.stage != StageDrafting || !s.busy {
		return ErrInvalidTransition
	}
	s.busy = false
	s.stage = StageCreated
	return nil
}

// BeginMeeting starts the simulated meeting generation.
func (s *Session) BeginMeeting() error {
	if s.stage != StageCreated {
		return ErrInvalidTransition
	}
	if s.generating {
		return ErrBusy
	}
	s.generating = true
	return nil
}

// CompleteMeeting stores the link and moves to MeetingReady.
func (s *Session) CompleteMeeting(link string) error {
	if s.stage != StageCreated || !s.generating {
		return ErrInvalidTransition
	}
	if link == "" {
		return ErrEmptyLink
	}
	s.generating = false
	s.link = link
	s.stage = StageMeetingReady
	return nil
}

// Restart returns to Drafting from Created or MeetingReady. The meeting link
// is cleared; the draft is kept unless the session was built with
// WithKeepDraftOnRestart(false).
func (s *Session) Restart() error {
	if s.stage == StageDrafting {
		return ErrInvalidTransition
	}
	s.stage = StageDrafting
	s.link = ""
	s.busy = false
	s.generating = false
	s.epoch++
	if !s.keepDraft {
		s.store.Reset()
	}
	return nil
}
