package core

// Color is an ANSI 256-color code for a screen cell.
// Zero means the terminal's default foreground; use ColorBlack for black.
type Color uint8

// Named colors from the 256-color palette.
const (
	ColorDefault       Color = 0
	ColorRed           Color = 1
	ColorGreen         Color = 2
	ColorYellow        Color = 3
	ColorBlue          Color = 4
	ColorMagenta       Color = 5
	ColorCyan          Color = 6
	ColorWhite         Color = 7
	ColorGray          Color = 8
	ColorBrightRed     Color = 9
	ColorBrightGreen   Color = 10
	ColorBrightYellow  Color = 11
	ColorBrightBlue    Color = 12
	ColorBrightMagenta Color = 13
	ColorBrightCyan    Color = 14
	ColorBrightWhite   Color = 15
	ColorBlack         Color = 16
	ColorPurple        Color = 129
	ColorOrange        Color = 208
	ColorDarkGray      Color = 238
)
