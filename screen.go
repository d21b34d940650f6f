package crest

import (
	"github.com/gdamore/tcell/v2"
)

// tcellColor converts a Color to its tcell representation.
func tcellColor(c Color) tcell.Color {
	switch c.Type() {
	case ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

// tcellStyle converts a Style to its tcell representation.
func tcellStyle(s Style) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(tcellColor(s.Fg)).
		Background(tcellColor(s.Bg))
	if s.HasAttr(AttrBold) {
		st = st.Bold(true)
	}
	if s.HasAttr(AttrDim) {
		st = st.Dim(true)
	}
	if s.HasAttr(AttrItalic) {
		st = st.Italic(true)
	}
	if s.HasAttr(AttrUnderline) {
		st = st.Underline(true)
	}
	if s.HasAttr(AttrBlink) {
		st = st.Blink(true)
	}
	if s.HasAttr(AttrReverse) {
		st = st.Reverse(true)
	}
	if s.HasAttr(AttrStrikethrough) {
		st = st.StrikeThrough(true)
	}
	return st
}

// tcellKeyNames maps tcell special keys to ours.
var tcellKeyNames = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
}

// keyEventFrom translates a tcell key event. Unrecognized special keys come
// back as KeyNone so callers can drop them.
func keyEventFrom(ev *tcell.EventKey) KeyEvent {
	var mod Modifier
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if ev.Key() == tcell.KeyRune {
		return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod}
	}
	if k, ok := tcellKeyNames[ev.Key()]; ok {
		return KeyEvent{Key: k, Mod: mod}
	}
	// Ctrl-letter combinations arrive as dedicated tcell keys.
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		r := rune('a' + (ev.Key() - tcell.KeyCtrlA))
		return KeyEvent{Key: KeyRune, Rune: r, Mod: mod | ModCtrl}
	}
	return KeyEvent{Key: KeyNone, Mod: mod}
}

// buttonOrder fixes which synthesized press/release fires first when a
// single tcell event flips several buttons at once.
var buttonOrder = []struct {
	mask tcell.ButtonMask
	btn  MouseButton
}{
	// tcell numbers buttons by convention, not position: Button2 is the
	// secondary (right) button and Button3 the middle one.
	{tcell.Button1, MouseLeft},
	{tcell.Button2, MouseRight},
	{tcell.Button3, MouseMiddle},
}

// blit copies the buffer to the tcell screen. Continuation cells are
// skipped; tcell handles wide rune trailing columns itself.
func blit(buf *Buffer, screen tcell.Screen) {
	size := buf.Size()
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			cell := buf.Get(Point{X: x, Y: y})
			if cell.IsContinuation() {
				continue
			}
			screen.SetContent(x, y, cell.Rune, nil, tcellStyle(cell.Style))
		}
	}
	screen.Show()
}
