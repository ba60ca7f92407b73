package testfixtures

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClipboard_RecordsLastWrite(t *testing.T) {
	clip := NewMockClipboard()
	assert.Equal(t, "", clip.Text())

	require.NoError(t, clip.WriteAll("first"))
	require.NoError(t, clip.WriteAll("second"))

	assert.Equal(t, "second", clip.Text())
	assert.Equal(t, 2, clip.Calls())
}

func TestMockClipboard_Error(t *testing.T) {
	clip := NewMockClipboard()
	clip.Err = errors.New("no clipboard")

	assert.EqualError(t, clip.WriteAll("x"), "no clipboard")
	assert.Equal(t, 1, clip.Calls())
}

func TestMockOpener_RecordsURLs(t *testing.T) {
	op := NewMockOpener()
	require.NoError(t, op.Open("https://a"))
	require.NoError(t, op.Open("https://b"))

	urls := op.URLs()
	assert.Equal(t, []string{"https://a", "https://b"}, urls)

	urls[0] = "mutated"
	assert.Equal(t, "https://a", op.URLs()[0], "URLs should return a copy")
}

func TestMockOpener_ThreadSafety(t *testing.T) {
	op := NewMockOpener()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = op.Open("https://meet")
		}()
	}
	wg.Wait()
	assert.Len(t, op.URLs(), 20)
}

func TestKnowledgeDir(t *testing.T) {
	dir := KnowledgeDir(t)
	assert.FileExists(t, dir+"/playbook.pdf")
	assert.DirExists(t, dir+"/archive")
}

func TestSquash(t *testing.T) {
	assert.Equal(t, "a b c", Squash("  a\n\tb   c "))
	assert.Equal(t, "hi", Plain("\x1b[1mhi\x1b[0m"))
}
