package crest

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in a buffer. Wide characters
// (CJK, emoji) occupy two cells; the first holds the rune, the second is
// marked as a continuation.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Style Style // Visual styling
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(RuneWidth(r)),
	}
}

// continuationCell returns the trailing cell placed after a wide rune.
func continuationCell(style Style) Cell {
	return Cell{Style: style, Width: 0}
}

// IsContinuation returns true if this cell is the trailing half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Rune == 0 && c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// RuneWidth returns the display width of a rune in terminal cells.
// Control characters report 1 so they still occupy a cell if written.
func RuneWidth(r rune) int {
	if r < 32 {
		return 1
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		return 1
	}
	return w
}

// StringWidth returns the display width of a string in terminal cells,
// ignoring any inline SGR escape tokens (which occupy no cells).
func StringWidth(s string) int {
	width := 0
	scanText(s, func(r rune) {
		width += RuneWidth(r)
	}, nil)
	return width
}
