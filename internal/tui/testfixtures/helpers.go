package testfixtures

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/x/ansi"
)

// Initialize test environment
func init() {
	// Ascii profile keeps rendered output free of color across platforms
	lipgloss.Writer.Profile = colorprofile.Ascii
}

// Canonical terminal size for all tests
const (
	TestTermWidth  = 120
	TestTermHeight = 48
)

// Plain strips ANSI sequences so views can be matched as text.
func Plain(s string) string {
	return ansi.Strip(s)
}

// Squash strips ANSI sequences and collapses runs of whitespace, so phrases
// split across styled or wrapped segments still match.
func Squash(s string) string {
	return strings.Join(strings.Fields(ansi.Strip(s)), " ")
}
