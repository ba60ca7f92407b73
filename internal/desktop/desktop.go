// Package desktop wraps the two host integrations the wizard needs:
// writing to the system clipboard and opening a URL in the browser.
package desktop

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Opener opens a URL with the platform handler.
type Opener interface {
	Open(url string) error
}

// SystemClipboard uses the platform clipboard utilities.
type SystemClipboard struct{}

// WriteAll copies text verbatim.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Runner starts a command without waiting for it.
type Runner func(name string, args ...string) error

// SystemOpener opens URLs with xdg-open, open or start.
type SystemOpener struct {
	GOOS string
	Run  Runner
}

// NewSystemOpener returns an opener for the running platform.
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{
		GOOS: runtime.GOOS,
		Run: func(name string, args ...string) error {
			return exec.Command(name, args...).Start()
		},
	}
}

// Open launches the URL in a new browser context.
func (o *SystemOpener) Open(url string) error {
	name, args := openCommand(o.GOOS, url)
	if err := o.Run(name, args...); err != nil {
		return fmt.Errorf("opening %s: %w", url, err)
	}
	return nil
}

func openCommand(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "cmd", []string{"/c", "start", "", url}
	case "darwin":
		return "open", []string{url}
	default: // linux, freebsd, openbsd, netbsd
		return "xdg-open", []string{url}
	}
}
