package crest

import "strings"

// Text is a leaf view that paints styled text. Content may span multiple
// lines and carry inline SGR escape tokens (as produced by lipgloss); the
// tokens style cells without occupying them, so styled strings measure and
// paint correctly.
type Text struct {
	Base
	content string
	lines   []string
	style   Style
}

var _ View = (*Text)(nil)

// NewText creates a text view.
func NewText(content string, props ...Prop) *Text {
	t := &Text{}
	t.setContent(content)
	t.Update(props...)
	return t
}

// Content returns the current text.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the text, invalidating sizing when it changed.
func (t *Text) SetContent(content string) {
	if content == t.content {
		return
	}
	t.setContent(content)
	t.InvalidateSize()
}

func (t *Text) setContent(content string) {
	t.content = content
	t.lines = strings.Split(content, "\n")
}

// SetStyle sets a style merged over the theme's text style.
func (t *Text) SetStyle(s Style) {
	t.style = s
}

// NaturalSize is the widest line by the line count. Text does not wrap.
func (t *Text) NaturalSize(Size) Size {
	width := 0
	for _, line := range t.lines {
		if w := StringWidth(line); w > width {
			width = w
		}
	}
	return NewSize(width, len(t.lines))
}

// Render implements View.
func (t *Text) Render(vp *Viewport) {
	if vp.IsEmpty() {
		return
	}
	style := t.Theme().Text.Merge(t.style)
	for i, line := range t.lines {
		vp.Write(line, Point{Y: i}, style)
	}
}
