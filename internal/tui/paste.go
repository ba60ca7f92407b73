package tui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SanitizePaste cleans up pasted content:
//   - ANSI escape sequences are stripped
//   - control characters other than \n, \t and \r are dropped
//   - CRLF becomes LF
//   - trailing whitespace is trimmed
func SanitizePaste(content string) string {
	content = ansi.Strip(content)

	var b strings.Builder
	b.Grow(len(content))
	for _, r := range content {
		if r == '\n' || r == '\t' || r == '\r' {
			b.WriteRune(r)
			continue
		}
		if r < 32 || r == 127 {
			continue
		}
		b.WriteRune(r)
	}

	content = strings.ReplaceAll(b.String(), "\r\n", "\n")
	return strings.TrimRight(content, " \t\n\r")
}

var newlinePattern = regexp.MustCompile(`[\r\n]+`)

// CollapseNewlines replaces each run of line breaks with a single space, for
// pasting into single-line inputs.
func CollapseNewlines(content string) string {
	return newlinePattern.ReplaceAllString(content, " ")
}
