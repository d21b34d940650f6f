package crest

import (
	"strconv"
	"strings"
)

// Pen is the stateful style handle passed to UsingPen bodies. ReplacePen
// swaps the active style mid-stream; the viewport restores the previous
// style when the body returns.
type Pen struct {
	vp    *Viewport
	saved Style
}

// ReplacePen replaces the active pen style. The new style is merged over
// the style that was active when UsingPen began, so unset colors inherit.
func (p *Pen) ReplacePen(style Style) {
	p.vp.base = p.saved.Merge(style)
}

// Style returns the currently active pen style.
func (p *Pen) Style() Style {
	return p.vp.base
}

// scanText iterates s, calling visible for every paintable rune and escape
// for every inline SGR token ("\x1b[...m"). Escape tokens consume no cells.
// Non-SGR CSI sequences and lone escape bytes are dropped entirely; they
// have no sensible cell representation.
func scanText(s string, visible func(rune), escape func(params string)) {
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != 0x1b {
			if visible != nil {
				visible(r)
			}
			continue
		}
		if i+1 >= len(runes) || runes[i+1] != '[' {
			continue // lone ESC
		}
		// CSI sequence: parameters end at the first final byte (0x40-0x7e).
		j := i + 2
		for j < len(runes) && (runes[j] < 0x40 || runes[j] > 0x7e) {
			j++
		}
		if j < len(runes) && runes[j] == 'm' && escape != nil {
			escape(string(runes[i+2 : j]))
		}
		i = j
	}
}

// applySGR interprets an SGR parameter string against the current pen
// style. A reset (0 or empty) returns to base rather than the zero style,
// so inline tokens cannot escape the style the surrounding code installed.
func applySGR(params string, current, base Style) Style {
	if params == "" {
		return base
	}
	fields := strings.Split(params, ";")
	codes := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return current // malformed; leave the pen alone
		}
		codes = append(codes, n)
	}

	out := current
	for i := 0; i < len(codes); i++ {
		c := codes[i]
		switch {
		case c == 0:
			out = base
		case c == 1:
			out.Attrs |= AttrBold
		case c == 2:
			out.Attrs |= AttrDim
		case c == 3:
			out.Attrs |= AttrItalic
		case c == 4:
			out.Attrs |= AttrUnderline
		case c == 5:
			out.Attrs |= AttrBlink
		case c == 7:
			out.Attrs |= AttrReverse
		case c == 9:
			out.Attrs |= AttrStrikethrough
		case c == 22:
			out.Attrs &^= AttrBold | AttrDim
		case c == 23:
			out.Attrs &^= AttrItalic
		case c == 24:
			out.Attrs &^= AttrUnderline
		case c == 25:
			out.Attrs &^= AttrBlink
		case c == 27:
			out.Attrs &^= AttrReverse
		case c == 29:
			out.Attrs &^= AttrStrikethrough
		case c >= 30 && c <= 37:
			out.Fg = ANSIColor(uint8(c - 30))
		case c >= 90 && c <= 97:
			out.Fg = ANSIColor(uint8(c - 90 + 8))
		case c == 39:
			out.Fg = base.Fg
		case c >= 40 && c <= 47:
			out.Bg = ANSIColor(uint8(c - 40))
		case c >= 100 && c <= 107:
			out.Bg = ANSIColor(uint8(c - 100 + 8))
		case c == 49:
			out.Bg = base.Bg
		case c == 38 || c == 48:
			color, consumed, ok := extendedColor(codes[i+1:])
			if !ok {
				return out
			}
			if c == 38 {
				out.Fg = color
			} else {
				out.Bg = color
			}
			i += consumed
		}
	}
	return out
}

// extendedColor decodes the argument tail of a 38/48 SGR code:
// "5;n" for the 256 palette, "2;r;g;b" for true color.
func extendedColor(args []int) (Color, int, bool) {
	if len(args) >= 2 && args[0] == 5 {
		return ANSIColor(clampByte(args[1])), 2, true
	}
	if len(args) >= 4 && args[0] == 2 {
		return RGBColor(clampByte(args[1]), clampByte(args[2]), clampByte(args[3])), 4, true
	}
	return Color{}, 0, false
}

func clampByte(n int) uint8 {
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}
