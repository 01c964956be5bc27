// Package console implements the command mode of the emulator.
//
// The console is idle until the hotkey is pressed. It then waits for a single
// command line, runs the command and returns to idle, whatever the command.
// The exit command is the only one that does not return to idle.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nealhardesty/controllerx/internal/config"
	"github.com/nealhardesty/controllerx/internal/translate"
)

// ErrExit is returned by Process for the exit command.
var ErrExit = errors.New("exit command")

// State of the console.
type State int

// List of valid State values.
const (
	Idle State = iota
	AwaitingCommand
)

func (s State) String() string {
	if s == AwaitingCommand {
		return "awaiting command"
	}
	return "idle"
}

// Command is a parsed command line.
type Command int

// List of valid Command values.
const (
	Unknown Command = iota
	Help
	PrintKeymap
	PrintSpec
	ExitCommand
	Exit
)

// commands in the order they are listed by help.
var commands = []struct {
	cmd  Command
	name string
	help string
}{
	{ExitCommand, "exit_command", "Exit command mode."},
	{PrintKeymap, "print_keymap", "Print current controller to mouse/keyboard map."},
	{PrintSpec, "print_spec", "Print current controller specification."},
	{Exit, "exit", "Exit ControllerX."},
	{Help, "help", "Print this list."},
}

func (c Command) String() string {
	for _, cm := range commands {
		if cm.cmd == c {
			return cm.name
		}
	}
	return "unknown"
}

// Parse returns the command named by the first token of the line.
func Parse(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Unknown
	}
	for _, cm := range commands {
		if cm.name == fields[0] {
			return cm.cmd
		}
	}
	return Unknown
}

// Console prints to the terminal and tracks the command mode state.
type Console struct {
	out   io.Writer
	cfg   config.Sensitivity
	state State
	keys  hotkey
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(out io.Writer, cfg config.Sensitivity) *Console {
	return &Console{
		out: out,
		cfg: cfg,
	}
}

func (c *Console) print(pen string, format string, a ...interface{}) {
	fmt.Fprintf(c.out, pen+format+PenNormal, a...)
}

// Banner prints the startup message.
func (c *Console) Banner() {
	c.print(PenGreen, "\n  ControllerX up and running...  \n")
	c.print(PenNormal, "  Press %s to enter command mode.  \n\n", HotkeyName)
}

// Feed passes a key press to the console. It returns true if the key
// completes the hotkey. Keys are ignored unless the console is idle.
func (c *Console) Feed(b byte) bool {
	if c.state != Idle {
		return false
	}
	return c.keys.feed(b)
}

// Activate moves the console into the awaiting-command state and prints the
// prompt.
func (c *Console) Activate() {
	fmt.Fprint(c.out, clearScreen)
	c.print(PenNormal, "\n  Waiting for command...\n")
	c.print(PenNormal, "  Type \"help\" for the list of available commands.  \n\n")
	fmt.Fprint(c.out, "> ")
	c.state = AwaitingCommand
}

// Process runs the command line and returns the console to idle. ErrExit is
// returned for the exit command, in which case the console stays where it
// is. Lines are ignored unless the console is awaiting a command.
func (c *Console) Process(line string) error {
	if c.state != AwaitingCommand {
		return nil
	}

	fmt.Fprint(c.out, clearScreen)
	fmt.Fprintln(c.out)

	switch Parse(line) {
	case Help:
		c.help()
	case PrintKeymap:
		translate.PrintKeymap(c.out)
	case PrintSpec:
		c.cfg.Print(c.out)
	case ExitCommand:
	case Exit:
		return ErrExit
	default:
		c.print(PenRed, "  Command not found: %q  \n", strings.TrimSpace(line))
	}

	fmt.Fprintln(c.out)
	c.print(PenRed, "  Command mode exited.  \n")
	c.print(PenNormal, "  Press %s to enter command mode again.  \n\n", HotkeyName)
	c.state = Idle

	return nil
}

func (c *Console) help() {
	fmt.Fprintln(c.out, "  Available commands:")
	for _, cm := range commands {
		fmt.Fprintf(c.out, "> %s: %s  \n", cm.name, cm.help)
	}
}

// Disconnected reports the loss of the controller.
func (c *Console) Disconnected(err error) {
	c.print(PenRed, "\n  Error: %v  \n", err)
	c.print(PenNormal, "  Press any key to quit.  \n\n")
}
