package wizard

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderHintBar_PlainText(t *testing.T) {
	assert.Equal(t, "tab next • esc quit", ansi.Strip(RenderHintBar("tab", "next", "esc", "quit")))
	assert.Equal(t, "", RenderHintBar())
	assert.Equal(t, "", RenderHintBar("odd"))
}
