package notifier

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// CommandRunner starts an external program.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// OSOpener opens each report with the platform's default application.
type OSOpener struct {
	GOOS string
	Run  CommandRunner
}

// NewOSOpener creates an opener for the running platform.
func NewOSOpener() *OSOpener {
	return &OSOpener{GOOS: runtime.GOOS, Run: startDetached}
}

func (o *OSOpener) Notify(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	name, args, err := openCommand(o.GOOS, abs)
	if err != nil {
		return err
	}
	if err := o.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("open %s: %w", abs, err)
	}
	return nil
}

func openCommand(goos, path string) (string, []string, error) {
	switch goos {
	case "windows":
		// The empty argument is the window title expected by start.
		return "cmd", []string{"/c", "start", "", path}, nil
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf("opening files is not supported on %s", goos)
	}
}

// startDetached launches the viewer without waiting for it to exit.
func startDetached(_ context.Context, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return err
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go cmd.Wait()
	return nil
}
