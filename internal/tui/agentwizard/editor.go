package agentwizard

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/editor"
)

// editInstructions opens $EDITOR on a temp copy of the instructions and
// reports the edited text back as InstructionsEditedMsg.
func editInstructions(content string) tea.Cmd {
	tmpfile, err := os.CreateTemp("", "agentforge_instructions_*.md")
	if err != nil {
		return editorFailed(fmt.Errorf("creating temp file: %w", err))
	}

	if _, err := tmpfile.WriteString(content); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return editorFailed(fmt.Errorf("writing temp file: %w", err))
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("agentforge", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return editorFailed(err)
	}

	path := tmpfile.Name()
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(path) }()
		if err != nil {
			return EditorFailedMsg{Err: err}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return EditorFailedMsg{Err: err}
		}
		return InstructionsEditedMsg{Content: string(data)}
	})
}

func editorFailed(err error) tea.Cmd {
	return func() tea.Msg {
		return EditorFailedMsg{Err: err}
	}
}
