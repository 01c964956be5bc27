//go:build windows

package console

import "os"

// HotkeyName is the name of the key that enters command mode. The windows
// console is line-buffered and never delivers F1, so the hotkey is a colon
// followed by enter. The command can also follow the colon on the same line.
const HotkeyName = `":" and Enter`

// Terminal is the console's standard input.
type Terminal struct{}

// OpenTerminal returns the console.
func OpenTerminal() (*Terminal, error) {
	return &Terminal{}, nil
}

// Read implements the io.Reader interface.
func (tm *Terminal) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

// CBreakMode is not available on windows.
func (tm *Terminal) CBreakMode() error {
	return nil
}

// CanonicalMode is not available on windows.
func (tm *Terminal) CanonicalMode() error {
	return nil
}

// Close does nothing on windows.
func (tm *Terminal) Close() error {
	return nil
}
