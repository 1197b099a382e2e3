package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"
	"sync"
)

var ErrUnavailable = errors.New("url opener command unavailable")

// Opener hands a URL to something outside the process.
type Opener interface {
	OpenURL(ctx context.Context, url string) error
}

type runFunc func(ctx context.Context, name string, args ...string) (stderr string, err error)

// CommandOpener runs the platform URL opener (xdg-open, open, rundll32).
type CommandOpener struct {
	command string
	args    []string
	run     runFunc
}

var _ Opener = (*CommandOpener)(nil)

// NewCommandOpener builds an opener around command. An empty command picks
// the platform default.
func NewCommandOpener(command string, args ...string) *CommandOpener {
	if strings.TrimSpace(command) == "" {
		command, args = platformOpener(runtime.GOOS)
	}

	return &CommandOpener{command: command, args: args, run: runOpenCommand}
}

func (o *CommandOpener) OpenURL(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	args := append(append([]string{}, o.args...), url)
	stderr, err := o.run(ctx, o.command, args...)
	if err != nil {
		if stderr == "" {
			return fmt.Errorf("%s %q: %w", o.command, url, err)
		}
		return fmt.Errorf("%s %q: %w: %s", o.command, url, err, stderr)
	}

	return nil
}

func platformOpener(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

func runOpenCommand(ctx context.Context, name string, args ...string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", ErrUnavailable
		}
		return "", fmt.Errorf("locate %s command: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err = cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}

// PrintOpener writes the URL instead of opening it.
type PrintOpener struct {
	mu  sync.Mutex
	out io.Writer
}

var _ Opener = (*PrintOpener)(nil)

func NewPrintOpener(out io.Writer) *PrintOpener {
	return &PrintOpener{out: out}
}

func (o *PrintOpener) OpenURL(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := fmt.Fprintf(o.out, "open %s\n", url); err != nil {
		return fmt.Errorf("print url: %w", err)
	}
	return nil
}
