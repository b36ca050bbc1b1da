package core

// Color is a foreground or background color for a screen cell. The terminal
// layer maps each value to an ANSI 256-color code.
type Color uint8

// ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorDarkGray
	ColorBlack
)
