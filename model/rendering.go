package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	separator = "-------------"

	macosClearCmd = "clear"
)

// TerminalRenderer writes grid snapshots as text
type TerminalRenderer struct {
	Out         io.Writer
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer that writes to standard output
func NewTerminalRenderer(clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, ClearScreen: clearScreen}
}

// Display writes one rendered grid state. Every state after the first is
// preceded by a separator, or by a screen clear when ClearScreen is set.
func (r *TerminalRenderer) Display(state string, first bool) error {
	if !first {
		if r.ClearScreen {
			r.Clear()
		} else if _, err := fmt.Fprintf(r.Out, "\n%s\n\n", separator); err != nil {
			return errors.Wrap(err, "[Display] failed to write separator")
		}
	}
	if _, err := io.WriteString(r.Out, state); err != nil {
		return errors.Wrap(err, "[Display] failed to write grid")
	}
	return nil
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error clearing terminal:", err)
	}
}
