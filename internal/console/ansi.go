package console

// ANSI control sequences.
const (
	csi = "\033["

	PenNormal = csi + "0m"
	PenRed    = csi + "31m"
	PenGreen  = csi + "32m"

	clearScreen = csi + "H" + csi + "2J"
)
