package core

// Color is a foreground color for a screen cell.
// The front end maps it to a terminal color.
type Color uint8

// Palette used by the board and the HUD.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Attr is a set of text attributes for a screen cell.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
	AttrFaint
)

// Has reports whether every attribute in o is set.
func (a Attr) Has(o Attr) bool {
	return a&o == o
}
