// Package meeting produces the (simulated) meeting links handed out for a
// created agent.
package meeting

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// DefaultRoom is used when the agent name has no sluggable characters.
const DefaultRoom = "ai-agent-session"

// Generator builds meeting links of the form
// <base>/<agent-slug>-<session id>.
type Generator struct {
	baseURL string
	newID   func() string
}

// Option configures a Generator.
type Option func(*Generator)

// WithIDFunc overrides how session ids are produced.
func WithIDFunc(fn func() string) Option {
	return func(g *Generator) {
		g.newID = fn
	}
}

// NewGenerator returns a generator rooted at baseURL.
func NewGenerator(baseURL string, opts ...Option) *Generator {
	g := &Generator{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		newID:   shortID,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Link returns a fresh link for the named agent. It is never empty.
func (g *Generator) Link(agentName string) string {
	room := slug.Make(agentName)
	if room == "" {
		room = DefaultRoom
	}
	return fmt.Sprintf("%s/%s-%s", g.baseURL, room, g.newID())
}

// shortID is the first block of a random UUID.
func shortID() string {
	id := uuid.NewString()
	return id[:strings.IndexByte(id, '-')]
}
