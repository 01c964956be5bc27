package console

import (
	"io"
	"strings"
)

// Input reads a terminal in the background so that the emulator can check
// for key presses without blocking.
type Input struct {
	bytes chan byte

	// closed when the reader fails. err is set before closing
	done chan struct{}
	err  error
}

// NewInput starts reading r.
func NewInput(r io.Reader) *Input {
	in := &Input{
		bytes: make(chan byte, 256),
		done:  make(chan struct{}),
	}
	go in.read(r)
	return in
}

func (in *Input) read(r io.Reader) {
	defer close(in.done)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			in.bytes <- b
		}
		if err != nil {
			in.err = err
			return
		}
	}
}

// TryKey returns the next byte read, if there is one. It never blocks.
func (in *Input) TryKey() (byte, bool) {
	select {
	case b := <-in.bytes:
		return b, true
	default:
		return 0, false
	}
}

// Flush discards the bytes read so far.
func (in *Input) Flush() {
	for {
		if _, ok := in.TryKey(); !ok {
			return
		}
	}
}

// next blocks until a byte is available or the reader fails.
func (in *Input) next() (byte, error) {
	select {
	case b := <-in.bytes:
		return b, nil
	case <-in.done:
		// bytes read before the failure are still delivered
		select {
		case b := <-in.bytes:
			return b, nil
		default:
			return 0, in.err
		}
	}
}

// ReadLine blocks until a complete line has been read. The line is returned
// without the line ending. A partial line is returned with the reader's error.
func (in *Input) ReadLine() (string, error) {
	var s strings.Builder
	for {
		b, err := in.next()
		if err != nil {
			return s.String(), err
		}
		if b == '\n' {
			return strings.TrimSuffix(s.String(), "\r"), nil
		}
		s.WriteByte(b)
	}
}

// WaitKey blocks until one key has been pressed.
func (in *Input) WaitKey() error {
	_, err := in.next()
	return err
}
