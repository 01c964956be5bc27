//go:build !windows

package console

import (
	"fmt"

	"github.com/pkg/term"
)

// HotkeyName is the name of the key that enters command mode.
const HotkeyName = "F1"

// Terminal is the controlling terminal. It is held in cbreak mode while the
// emulator runs so that single key presses can be read without waiting for
// a newline.
type Terminal struct {
	t *term.Term
}

// OpenTerminal opens the controlling terminal and puts it into cbreak mode.
func OpenTerminal() (*Terminal, error) {
	t, err := term.Open("/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	tm := &Terminal{t: t}
	if err := tm.CBreakMode(); err != nil {
		_ = t.Close()
		return nil, err
	}
	return tm, nil
}

// Read implements the io.Reader interface.
func (tm *Terminal) Read(p []byte) (int, error) {
	return tm.t.Read(p)
}

// CBreakMode delivers key presses immediately and without echo.
func (tm *Terminal) CBreakMode() error {
	if err := tm.t.SetCbreak(); err != nil {
		return fmt.Errorf("failed to set cbreak mode: %w", err)
	}
	return nil
}

// CanonicalMode puts the terminal back into normal, line-buffered mode.
func (tm *Terminal) CanonicalMode() error {
	if err := tm.t.Restore(); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	return nil
}

// Close restores the terminal and closes it.
func (tm *Terminal) Close() error {
	_ = tm.t.Restore()
	return tm.t.Close()
}
