package gamepad

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/karalabe/hid"
)

// Microsoft Xbox 360 wired controller
const (
	VendorID  = 0x045E
	ProductID = 0x028E
)

// ErrDisconnected is wrapped by every error that means the controller can no
// longer be polled.
var ErrDisconnected = errors.New("controller not connected")

// HIDPoller polls an Xbox 360 controller through hidapi.
//
// Reading a HID report blocks until the controller sends one, which it only
// does when its state changes. A reader goroutine keeps the most recent
// snapshot so that Poll never blocks.
type HIDPoller struct {
	device io.ReadCloser

	mu      sync.RWMutex
	state   Snapshot
	err     error
	closing bool
}

// OpenHID opens the first Xbox 360 controller found. An error wrapping
// ErrDisconnected is returned when there is none.
func OpenHID() (*HIDPoller, error) {
	if !hid.Supported() {
		return nil, fmt.Errorf("%w: hid not supported on this platform", ErrDisconnected)
	}

	devices := hid.Enumerate(VendorID, ProductID)
	if len(devices) == 0 {
		return nil, fmt.Errorf("%w: no compatible controller found", ErrDisconnected)
	}

	device, err := devices[0].Open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open controller: %v", ErrDisconnected, err)
	}
	log.Printf("opened %s %s (%04X:%04X)", devices[0].Manufacturer, devices[0].Product,
		devices[0].VendorID, devices[0].ProductID)

	return newPoller(device), nil
}

func newPoller(device io.ReadCloser) *HIDPoller {
	p := &HIDPoller{
		device: device,
	}
	go p.read()
	return p
}

// read is the only caller of device.Close(). hidapi cannot interrupt a
// pending read and the device must not be closed underneath it.
func (p *HIDPoller) read() {
	buffer := make([]byte, 64)
	for {
		n, err := p.device.Read(buffer)

		p.mu.Lock()
		if err != nil && p.err == nil {
			p.err = fmt.Errorf("%w: %v", ErrDisconnected, err)
		}
		stop := err != nil || p.closing
		p.mu.Unlock()

		if stop {
			if err := p.device.Close(); err != nil {
				log.Printf("error closing controller: %v", err)
			}
			return
		}

		state, err := ParseReport(buffer[:n])
		if err != nil {
			if errors.Is(err, ErrShortReport) {
				log.Printf("%v: %s", err, dumpReport(buffer[:n]))
			}
			continue
		}

		p.mu.Lock()
		p.state = state
		p.mu.Unlock()
	}
}

// Poll implements the Poller interface.
func (p *HIDPoller) Poll() (Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.err != nil {
		return Snapshot{}, p.err
	}
	return p.state, nil
}

// Close stops the poller. Every later Poll fails with ErrDisconnected. The
// device itself is closed by the reader goroutine when its pending read
// returns, which is on the next report from the controller. A controller
// that sends nothing more stays open until the process exits.
func (p *HIDPoller) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closing = true
	if p.err == nil {
		p.err = fmt.Errorf("%w: poller closed", ErrDisconnected)
	}
	return nil
}

type unavailable struct {
	err error
}

// Unavailable returns a Poller whose every poll fails with err. It stands in
// for a controller that could not be opened.
func Unavailable(err error) Poller {
	return unavailable{err: err}
}

func (u unavailable) Poll() (Snapshot, error) {
	return Snapshot{}, u.err
}
