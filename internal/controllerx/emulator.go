// Package controllerx runs the emulator: it polls the controller, passes each
// snapshot to the translators and switches to command mode when the hotkey is
// pressed.
package controllerx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"time"

	"github.com/nealhardesty/controllerx/internal/config"
	"github.com/nealhardesty/controllerx/internal/console"
	"github.com/nealhardesty/controllerx/internal/gamepad"
	"github.com/nealhardesty/controllerx/internal/translate"
)

// Terminal switches the console between key-at-a-time input and line input.
type Terminal interface {
	CBreakMode() error
	CanonicalMode() error
}

// ControllerX translates the state of a controller into keyboard and mouse
// input.
type ControllerX struct {
	cfg        config.Sensitivity
	poller     gamepad.Poller
	translator *translate.Translator
	console    *console.Console
	input      *console.Input
	term       Terminal

	// delay after each translated poll
	interval time.Duration

	running bool

	// Stop() can be called from the signal handler while the translator is
	// in use by Run()
	mu sync.Mutex
}

// NewControllerX is the preferred method of initialisation for the
// ControllerX type. Key presses are read from in and the console is written
// to out.
func NewControllerX(cfg config.Sensitivity, poller gamepad.Poller, sink translate.Sink,
	in io.Reader, out io.Writer, term Terminal) (*ControllerX, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &ControllerX{
		cfg:        cfg,
		poller:     poller,
		translator: translate.NewTranslator(cfg, sink),
		console:    console.NewConsole(out, cfg),
		input:      console.NewInput(in),
		term:       term,
		interval:   time.Millisecond,
		running:    true,
	}, nil
}

// Run is the main loop. It returns nil when the emulator ends normally: on
// the exit command, on the escape button and when the controller is lost.
func (c *ControllerX) Run() error {
	c.console.Banner()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-sigChan:
			fmt.Println("\nStopping on interrupt...")
			c.Stop()
			_ = c.term.CanonicalMode()
			os.Exit(0)
		case <-done:
		}
	}()

	for c.isRunning() {
		for b, ok := c.input.TryKey(); ok; b, ok = c.input.TryKey() {
			if !c.console.Feed(b) {
				continue
			}
			if err := c.command(); err != nil {
				if errors.Is(err, console.ErrExit) {
					c.Stop()
					return nil
				}
				return err
			}
			break
		}

		state, err := c.poller.Poll()
		if err != nil {
			if errors.Is(err, gamepad.ErrDisconnected) {
				c.Stop()
				c.console.Disconnected(err)
				c.input.Flush()
				_ = c.input.WaitKey()
				return nil
			}
			return fmt.Errorf("error polling controller: %w", err)
		}

		if err := c.frame(state); err != nil {
			// the escape button leaves without releasing anything
			if errors.Is(err, translate.ErrQuit) {
				return nil
			}
			return err
		}

		time.Sleep(c.interval)
	}

	return nil
}

// command runs one command. Controller input is not read until the command
// has been entered.
func (c *ControllerX) command() error {
	c.console.Activate()

	if err := c.term.CanonicalMode(); err != nil {
		return err
	}
	line, err := c.readCommand()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading command: %w", err)
	}
	if err := c.term.CBreakMode(); err != nil {
		return err
	}

	return c.console.Process(line)
}

// readCommand returns the next line that is not blank. The rest of the
// hotkey's own line is blank when the terminal is line-buffered.
func (c *ControllerX) readCommand() (string, error) {
	for {
		line, err := c.input.ReadLine()
		if err != nil || strings.TrimSpace(line) != "" {
			return line, err
		}
	}
}

func (c *ControllerX) frame(state gamepad.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return nil
	}
	return c.translator.Frame(state)
}

func (c *ControllerX) isRunning() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Stop ends the main loop and releases every key and mouse button still held
// down.
func (c *ControllerX) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.running = false

	if err := c.translator.Release(); err != nil {
		fmt.Printf("Error releasing keys: %v\n", err)
	}
}
