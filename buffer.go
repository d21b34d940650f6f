package crest

import (
	"strings"

	"github.com/spindleworks/crest/internal/geom"
)

// Buffer is a 2D grid of cells representing a drawable surface. It is the
// render target shared by every viewport in a pass; the screen driver blits
// it to the terminal once the pass completes.
type Buffer struct {
	cells []Cell
	size  geom.Size
}

// NewBuffer creates a buffer of the given size filled with blank cells.
func NewBuffer(size geom.Size) *Buffer {
	b := &Buffer{}
	b.Resize(size)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() geom.Size {
	return b.size
}

// Resize reallocates the buffer for a new size and clears it.
// A no-op when the size is unchanged.
func (b *Buffer) Resize(size geom.Size) {
	if b.cells != nil && size == b.size {
		return
	}
	b.size = size
	b.cells = make([]Cell, size.Width*size.Height)
	b.Clear()
}

// InBounds returns true if the given point is within the buffer.
func (b *Buffer) InBounds(p geom.Point) bool {
	return p.X >= 0 && p.X < b.size.Width && p.Y >= 0 && p.Y < b.size.Height
}

func (b *Buffer) index(p geom.Point) int {
	return p.Y*b.size.Width + p.X
}

// Get returns the cell at the given point, or a blank cell if out of bounds.
func (b *Buffer) Get(p geom.Point) Cell {
	if !b.InBounds(p) {
		return NewCell(' ', Style{})
	}
	return b.cells[b.index(p)]
}

// Set writes the cell at the given point. Out-of-bounds writes are dropped.
// Overwriting either half of a wide character blanks the orphaned half so
// no dangling continuation cells remain.
func (b *Buffer) Set(p geom.Point, c Cell) {
	if !b.InBounds(p) {
		return
	}
	idx := b.index(p)
	old := b.cells[idx]
	if old.Width == 2 {
		// Overwriting the head of a wide rune orphans its continuation.
		right := p.Offset(1, 0)
		if b.InBounds(right) && b.cells[b.index(right)].IsContinuation() {
			b.cells[b.index(right)] = NewCell(' ', old.Style)
		}
	}
	if old.IsContinuation() {
		// Overwriting the tail of a wide rune orphans its head.
		left := p.Offset(-1, 0)
		if b.InBounds(left) && b.cells[b.index(left)].Width == 2 {
			head := b.cells[b.index(left)]
			b.cells[b.index(left)] = NewCell(' ', head.Style)
		}
	}
	b.cells[idx] = c
}

// Fill fills the entire buffer with the given cell.
func (b *Buffer) Fill(c Cell) {
	for i := range b.cells {
		b.cells[i] = c
	}
}

// Clear resets the buffer to blank cells with default styling.
func (b *Buffer) Clear() {
	b.Fill(NewCell(' ', Style{}))
}

// FillRect fills a rectangular region with the given cell. Regions outside
// the buffer are silently clipped.
func (b *Buffer) FillRect(r geom.Rect, c Cell) {
	r.Intersect(geom.RectOf(b.size)).ForEach(func(p geom.Point) {
		b.Set(p, c)
	})
}

// Line returns the runes of row y as a string, without styling.
// Continuation cells contribute nothing; wide runes appear once.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.size.Height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.size.Width; x++ {
		c := b.cells[b.index(geom.Point{X: x, Y: y})]
		if c.IsContinuation() {
			continue
		}
		if c.Rune == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the full buffer as newline-separated rows, without styling.
// Intended for tests and debug logging.
func (b *Buffer) String() string {
	lines := make([]string, b.size.Height)
	for y := 0; y < b.size.Height; y++ {
		lines[y] = b.Line(y)
	}
	return strings.Join(lines, "\n")
}
