package core

import "strconv"

// Color is an ANSI 256-color code for a cell's foreground.
// ColorDefault leaves the terminal's own color in place.
type Color uint8

const (
	ColorDefault Color = 0
	ColorGray    Color = 245
	ColorWhite   Color = 15
	ColorYellow  Color = 11
	ColorRed     Color = 9
)

// Code returns the color as the decimal string terminals and lipgloss expect.
func (c Color) Code() string {
	return strconv.Itoa(int(c))
}
