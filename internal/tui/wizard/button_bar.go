package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/agentforge/internal/tui/theme"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// ButtonID identifies a button by its position in the bar.
type ButtonID int

// NoButton is returned by FocusedButton when the bar has no focus.
const NoButton ButtonID = -1

// Button represents a single button in the button bar.
type Button struct {
	Label string
	State ButtonState
}

// ButtonBar manages a set of buttons with consistent styling and a single
// focus cursor. Disabled buttons are skipped when moving focus.
type ButtonBar struct {
	buttons []Button
	focus   int
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Len returns the number of buttons.
func (b *ButtonBar) Len() int {
	return len(b.buttons)
}

// Button returns the button at id.
func (b *ButtonBar) Button(id ButtonID) (Button, bool) {
	if id < 0 || int(id) >= len(b.buttons) {
		return Button{}, false
	}
	return b.buttons[id], true
}

// SetLabel changes a button's label.
func (b *ButtonBar) SetLabel(id ButtonID, label string) {
	if id >= 0 && int(id) < len(b.buttons) {
		b.buttons[id].Label = label
	}
}

// SetEnabled enables or disables a button. Disabling the focused button
// moves focus to the next enabled one, or clears it.
func (b *ButtonBar) SetEnabled(id ButtonID, enabled bool) {
	if id < 0 || int(id) >= len(b.buttons) {
		return
	}
	if enabled {
		b.buttons[id].State = ButtonNormal
		return
	}
	b.buttons[id].State = ButtonDisabled
	if b.focus == int(id) {
		if !b.FocusNext() && !b.FocusPrev() {
			b.focus = -1
		}
	}
}

// Enabled reports whether the button can be activated.
func (b *ButtonBar) Enabled(id ButtonID) bool {
	btn, ok := b.Button(id)
	return ok && btn.State != ButtonDisabled
}

// IsFocused reports whether any button has focus.
func (b *ButtonBar) IsFocused() bool {
	return b.focus >= 0
}

// FocusedButton returns the focused button, or NoButton.
func (b *ButtonBar) FocusedButton() ButtonID {
	if b.focus < 0 {
		return NoButton
	}
	return ButtonID(b.focus)
}

// FocusFirst focuses the first enabled button.
func (b *ButtonBar) FocusFirst() bool {
	for i := range b.buttons {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	b.focus = -1
	return false
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	for i := len(b.buttons) - 1; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	b.focus = -1
	return false
}

// FocusNext moves focus right. It returns false when there is no enabled
// button to the right; focus is left unchanged in that case.
func (b *ButtonBar) FocusNext() bool {
	for i := b.focus + 1; i < len(b.buttons); i++ {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	return false
}

// FocusPrev moves focus left. It returns false when there is no enabled
// button to the left.
func (b *ButtonBar) FocusPrev() bool {
	start := b.focus - 1
	if b.focus < 0 {
		start = len(b.buttons) - 1
	}
	for i := start; i >= 0; i-- {
		if b.buttons[i].State != ButtonDisabled {
			b.focus = i
			return true
		}
	}
	return false
}

// Blur removes focus from all buttons.
func (b *ButtonBar) Blur() {
	b.focus = -1
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	t := theme.Current()

	base := lipgloss.NewStyle().
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	normalStyle := base.
		Foreground(lipgloss.Color(t.FgBase)).
		Background(lipgloss.Color(t.BgSurface0))

	disabledStyle := base.
		Foreground(lipgloss.Color(t.FgMuted)).
		Background(lipgloss.Color(t.BgMantle))

	focusedStyle := base.
		Foreground(lipgloss.Color(t.BgBase)).
		Background(lipgloss.Color(t.BorderFocused)).
		Bold(true)

	var renderedButtons []string
	for i, btn := range b.buttons {
		state := btn.State
		if i == b.focus && state != ButtonDisabled {
			state = ButtonFocused
		}

		var rendered string
		switch state {
		case ButtonDisabled:
			rendered = disabledStyle.Render(btn.Label)
		case ButtonFocused:
			rendered = focusedStyle.Render(btn.Label)
		default: // ButtonNormal
			rendered = normalStyle.Render(btn.Label)
		}
		renderedButtons = append(renderedButtons, rendered)
	}

	result := strings.Join(renderedButtons, "")

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, result)
}
