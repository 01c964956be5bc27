package console

import "bytes"

// ASCII codes used by the key sequences.
const (
	keyEsc    = 27
	escCursor = '['
	escSS3    = 'O'
)

// key sequences for the F1 key. the last entry is a plain key for terminals
// that never deliver function keys. on a line-buffered console it arrives
// with the rest of its line, which the caller skips when it is blank
var hotkeySequences = [][]byte{
	{keyEsc, escSS3, 'P'},               // xterm
	{keyEsc, escCursor, '1', '1', '~'},  // vt220
	{keyEsc, escCursor, escCursor, 'A'}, // linux console
	{':'},
}

// hotkey matches bytes read from the terminal against hotkeySequences.
type hotkey struct {
	seq []byte
}

// feed adds a byte to the sequence and returns true if the sequence is now a
// complete hotkey.
func (h *hotkey) feed(b byte) bool {
	h.seq = append(h.seq, b)

	partial := false
	for _, s := range hotkeySequences {
		if bytes.Equal(h.seq, s) {
			h.seq = h.seq[:0]
			return true
		}
		if bytes.HasPrefix(s, h.seq) {
			partial = true
		}
	}
	if partial {
		return false
	}

	// an escape byte can be the start of the next sequence
	h.seq = h.seq[:0]
	if b == keyEsc {
		h.seq = append(h.seq, b)
	}
	return false
}
