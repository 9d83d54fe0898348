// Package editor shells out to the user's text editor to author content.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultEditor is used when neither VISUAL, EDITOR, nor the configured
// fallback names an editor.
const DefaultEditor = "vi"

// ErrNoEditor is returned when the resolved editor command cannot be found.
var ErrNoEditor = errors.New("no usable editor found")

// Editor launches an external editor as a blocking foreground process.
type Editor struct {
	// Fallback is consulted after VISUAL and EDITOR, before DefaultEditor.
	Fallback string
}

// New returns an editor with the given configured fallback command.
func New(fallback string) *Editor {
	return &Editor{Fallback: fallback}
}

// Resolve returns the editor command line, split into argv form. Priority:
// VISUAL, EDITOR, the configured fallback, then vi.
func (e *Editor) Resolve() []string {
	for _, candidate := range []string{os.Getenv("VISUAL"), os.Getenv("EDITOR"), e.Fallback} {
		if fields := strings.Fields(candidate); len(fields) > 0 {
			return fields
		}
	}
	return []string{DefaultEditor}
}

// Command builds the blocking editor invocation for a file, wired to the
// controlling terminal.
func (e *Editor) Command(path string) (*exec.Cmd, error) {
	argv := e.Resolve()
	bin, err := exec.LookPath(argv[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNoEditor, argv[0])
	}

	cmd := exec.Command(bin, append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// Compose writes initial content to a temporary file, opens the editor on
// it, waits for exit, and returns the edited text. The temporary file is
// removed on every path. An empty or unchanged result returns "" with a nil
// error: the caller treats that as a cancelled composition.
func (e *Editor) Compose(initial string) (string, error) {
	tmp, err := os.CreateTemp("", "snip-*.md")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	if err := e.Edit(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading edited file: %w", err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" || strings.TrimSpace(text) == strings.TrimSpace(initial) {
		return "", nil
	}
	return text, nil
}

// Edit opens the editor on an existing file and blocks until it exits.
// A launch failure or non-zero exit status is an error.
func (e *Editor) Edit(path string) error {
	cmd, err := e.Command(path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor %s: %w", cmd.Path, err)
	}
	return nil
}
