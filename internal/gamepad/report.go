package gamepad

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// Xbox 360 wired controller input report
//
//	byte  0     message type (0x00 for input)
//	byte  1     message length (0x14)
//	bytes 2-3   buttons, little endian
//	byte  4     left trigger
//	byte  5     right trigger
//	bytes 6-13  left x, left y, right x, right y, little endian int16
const (
	reportInput  = 0x00
	reportLength = 0x14

	// shortest report that carries every field of the snapshot
	minReportSize = 14
)

var (
	// ErrShortReport is returned by ParseReport for reports that are too short
	// to contain a snapshot.
	ErrShortReport = errors.New("short controller report")

	// ErrNotInput is returned by ParseReport for reports that are not input
	// reports (LED and rumble status messages share the same pipe).
	ErrNotInput = errors.New("not an input report")
)

// ParseReport decodes an input report into a Snapshot.
func ParseReport(report []byte) (Snapshot, error) {
	if len(report) < 2 {
		return Snapshot{}, fmt.Errorf("%w: %d bytes", ErrShortReport, len(report))
	}
	if report[0] != reportInput {
		return Snapshot{}, fmt.Errorf("%w: type %#02x", ErrNotInput, report[0])
	}
	if len(report) < minReportSize || int(report[1]) < minReportSize {
		return Snapshot{}, fmt.Errorf("%w: %d bytes", ErrShortReport, len(report))
	}

	return Snapshot{
		Buttons: Button(binary.LittleEndian.Uint16(report[2:4])),
		TrigL:   report[4],
		TrigR:   report[5],
		LeftX:   int16(binary.LittleEndian.Uint16(report[6:8])),
		LeftY:   int16(binary.LittleEndian.Uint16(report[8:10])),
		RightX:  int16(binary.LittleEndian.Uint16(report[10:12])),
		RightY:  int16(binary.LittleEndian.Uint16(report[12:14])),
	}, nil
}

// encodeReport is the inverse of ParseReport.
func encodeReport(s Snapshot) []byte {
	report := make([]byte, reportLength)
	report[0] = reportInput
	report[1] = reportLength
	binary.LittleEndian.PutUint16(report[2:4], uint16(s.Buttons))
	report[4] = s.TrigL
	report[5] = s.TrigR
	binary.LittleEndian.PutUint16(report[6:8], uint16(s.LeftX))
	binary.LittleEndian.PutUint16(report[8:10], uint16(s.LeftY))
	binary.LittleEndian.PutUint16(report[10:12], uint16(s.RightX))
	binary.LittleEndian.PutUint16(report[12:14], uint16(s.RightY))
	return report
}

// dumpReport formats a report as a line of hex bytes with a ':' separator
// every ten bytes.
func dumpReport(report []byte) string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("(%db)", len(report)))
	for i, b := range report {
		sep := " "
		if i%10 == 0 {
			sep = ":"
		}
		s.WriteString(sep)
		s.WriteString(fmt.Sprintf("%02X", b))
	}
	return s.String()
}
