// Package browser opens documentation URLs with the platform's default
// handler.
package browser

import (
	"fmt"
	"os/exec"
	"runtime"

	scaladoc "github.com/alopatindev/vim-scaladoc"
)

// Ensure Opener implements scaladoc.Opener at compile time.
var _ scaladoc.Opener = (*Opener)(nil)

// Opener starts the system URL handler without waiting for it to exit.
type Opener struct {
	// Command overrides the platform handler. Used by tests.
	Command func(url string) *exec.Cmd
}

// NewOpener creates an Opener for the current platform.
func NewOpener() *Opener {
	return &Opener{}
}

// Open hands url to the platform handler.
func (o *Opener) Open(url string) error {
	cmd, err := o.command(url)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	// Reap the handler in the background; its exit status is not reported.
	go func() { _ = cmd.Wait() }()
	return nil
}

func (o *Opener) command(url string) (*exec.Cmd, error) {
	if o.Command != nil {
		return o.Command(url), nil
	}
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url), nil
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url), nil
	default:
		return nil, scaladoc.Errorf(scaladoc.EINVALID, "unsupported platform: %s", runtime.GOOS)
	}
}
