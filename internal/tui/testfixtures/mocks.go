// Package testfixtures provides fakes and helpers for TUI tests.
//
//   - MockClipboard records copied text and can be made to fail.
//   - MockOpener records opened URLs and can be made to fail.
//
// Both are safe for use from tea.Cmd goroutines.
package testfixtures

import (
	"sync"
)

// MockClipboard implements desktop.Clipboard.
type MockClipboard struct {
	mu sync.Mutex

	// Err is returned from WriteAll when set.
	Err error

	writes []string
}

// NewMockClipboard creates an empty clipboard.
func NewMockClipboard() *MockClipboard {
	return &MockClipboard{}
}

// WriteAll records text.
func (m *MockClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, text)
	return m.Err
}

// Text returns the last copied text.
func (m *MockClipboard) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.writes) == 0 {
		return ""
	}
	return m.writes[len(m.writes)-1]
}

// Calls returns the number of WriteAll calls.
func (m *MockClipboard) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}

// MockOpener implements desktop.Opener.
type MockOpener struct {
	mu sync.Mutex

	// Err is returned from Open when set.
	Err error

	urls []string
}

// NewMockOpener creates an opener with no recorded calls.
func NewMockOpener() *MockOpener {
	return &MockOpener{}
}

// Open records url.
func (m *MockOpener) Open(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.urls = append(m.urls, url)
	return m.Err
}

// URLs returns every opened URL in order.
func (m *MockOpener) URLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.urls...)
}
