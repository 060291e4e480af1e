package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = [...]string{
	ColorDefault:      "default",
	ColorRed:          "red",
	ColorGreen:        "green",
	ColorYellow:       "yellow",
	ColorBlue:         "blue",
	ColorMagenta:      "magenta",
	ColorCyan:         "cyan",
	ColorWhite:        "white",
	ColorBrightRed:    "bright-red",
	ColorBrightYellow: "bright-yellow",
	ColorBrightCyan:   "bright-cyan",
	ColorBrightWhite:  "bright-white",
	ColorOrange:       "orange",
	ColorGray:         "gray",
}

// String returns the color name.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
