package agentwizard

import "charm.land/bubbles/v2/key"

// KeyMap defines the key bindings for the agent wizard.
type KeyMap struct {
	// Focus movement between fields and buttons.
	Next key.Binding
	Prev key.Binding

	// Button bar navigation.
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding

	// File list.
	Up         key.Binding
	Down       key.Binding
	AddFiles   key.Binding
	RemoveFile key.Binding

	// Create form.
	Submit key.Binding
	Editor key.Binding

	// Later stages.
	Generate key.Binding
	Copy     key.Binding
	Open     key.Binding
	Restart  key.Binding

	// Confirmation modal.
	Confirm key.Binding
	Deny    key.Binding

	Cancel    key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "right"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter", "space", " "),
		key.WithHelp("enter", "select"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	AddFiles: key.NewBinding(
		key.WithKeys("enter", "a"),
		key.WithHelp("a", "choose files"),
	),
	RemoveFile: key.NewBinding(
		key.WithKeys("x", "d", "delete", "backspace"),
		key.WithHelp("x", "remove"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "create"),
	),
	Editor: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "edit in $EDITOR"),
	),
	Generate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "generate link"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c", "y"),
		key.WithHelp("c", "copy"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Restart: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new agent"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	Deny: key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("n", "no"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// hint returns the key/description pairs of bindings for a hint bar.
func hint(bindings ...key.Binding) []string {
	pairs := make([]string, 0, len(bindings)*2)
	for _, b := range bindings {
		h := b.Help()
		pairs = append(pairs, h.Key, h.Desc)
	}
	return pairs
}
