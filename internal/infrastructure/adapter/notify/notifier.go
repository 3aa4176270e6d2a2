// Package notify delivers task-completion notifications to the operator's
// desktop, falling back to a terminal bell where no notification daemon is
// available. Delivery is best-effort; a failed notification never fails the
// hook.
package notify

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// Notifier sends desktop notifications for the current platform.
type Notifier struct {
	goos string
	bell io.Writer

	// injectable for tests
	lookPath func(string) (string, error)
	run      func(name string, args ...string) error
}

// New returns a Notifier for the running platform.
func New() *Notifier {
	return &Notifier{
		goos:     runtime.GOOS,
		bell:     os.Stderr,
		lookPath: exec.LookPath,
		run:      runCommand,
	}
}

// Send delivers a notification with the given title and message. Unknown
// platforms and missing notifier binaries fall back to ringing the terminal
// bell.
func (n *Notifier) Send(title, message string) error {
	name, args, ok := commandFor(n.goos, title, message)
	if ok {
		if _, err := n.lookPath(name); err == nil {
			return n.run(name, args...)
		}
	}
	_, err := fmt.Fprint(n.bell, "\a")
	return err
}

// commandFor builds the platform notification command. ok is false when the
// platform has no notifier and only the bell fallback applies.
func commandFor(goos, title, message string) (name string, args []string, ok bool) {
	switch goos {
	case "linux":
		return "notify-send", []string{title, message}, true
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		return "osascript", []string{"-e", script}, true
	default:
		return "", nil, false
	}
}

func runCommand(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}
