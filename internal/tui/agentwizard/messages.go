package agentwizard

// CreateRequestedMsg is sent when the user activates "Create AI Agent".
type CreateRequestedMsg struct{}

// AgentCreatedMsg is sent when the simulated creation delay elapses.
type AgentCreatedMsg struct {
	Epoch int
}

// GenerateRequestedMsg is sent when the user activates "Generate Meeting Link".
type GenerateRequestedMsg struct{}

// MeetingGeneratedMsg is sent when the simulated meeting delay elapses.
type MeetingGeneratedMsg struct {
	Epoch int
	Link  string
}

// RestartRequestedMsg is sent by "Create Another Agent".
type RestartRequestedMsg struct{}

// CancelRequestedMsg is sent by the Cancel button or esc on the form.
type CancelRequestedMsg struct{}

// OpenFilePickerMsg is sent by "Choose Files".
type OpenFilePickerMsg struct{}

// CopyLinkMsg asks the wizard to copy the meeting link.
type CopyLinkMsg struct{}

// OpenLinkMsg asks the wizard to open the meeting link.
type OpenLinkMsg struct{}

// InstructionsEditedMsg carries instructions returned from $EDITOR.
type InstructionsEditedMsg struct {
	Content string
}

// EditorFailedMsg is sent when the external editor could not be used.
type EditorFailedMsg struct {
	Err error
}

// linkActionDoneMsg reports the outcome of a copy or open action.
type linkActionDoneMsg struct {
	action string
	err    error
}
