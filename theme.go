package crest

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Theme provides the named styles widgets draw with. A view resolves its
// theme through Base.Theme: its own override if set, otherwise the nearest
// ancestor override, otherwise PlainTheme.
type Theme struct {
	Text      Style // default text
	Muted     Style // de-emphasized text
	Accent    Style // highlighted/important text
	Danger    Style // errors and destructive actions
	Border    Style // borders and dividers
	Highlight Style // hover/selection background
}

// PlainTheme is the process-wide default: terminal default colors, no
// attributes, except a reversed highlight so selection is visible anywhere.
var PlainTheme = &Theme{
	Highlight: NewStyle().Reverse(),
}

// DarkTheme is a dark theme with light text on a dark background.
var DarkTheme = &Theme{
	Text:      NewStyle().Foreground(White),
	Muted:     NewStyle().Foreground(BrightBlack),
	Accent:    NewStyle().Foreground(BrightCyan).Bold(),
	Danger:    NewStyle().Foreground(BrightRed),
	Border:    NewStyle().Foreground(BrightBlack),
	Highlight: NewStyle().Background(ANSIColor(238)).Foreground(BrightWhite),
}

// LightTheme is a light theme with dark text on a light background.
var LightTheme = &Theme{
	Text:      NewStyle().Foreground(Black),
	Muted:     NewStyle().Foreground(BrightBlack),
	Accent:    NewStyle().Foreground(Blue).Bold(),
	Danger:    NewStyle().Foreground(Red),
	Border:    NewStyle().Foreground(White),
	Highlight: NewStyle().Background(ANSIColor(252)).Foreground(Black),
}

// themeFile is the TOML shape of a theme on disk.
type themeFile struct {
	Text      styleSpec `toml:"text"`
	Muted     styleSpec `toml:"muted"`
	Accent    styleSpec `toml:"accent"`
	Danger    styleSpec `toml:"danger"`
	Border    styleSpec `toml:"border"`
	Highlight styleSpec `toml:"highlight"`
}

// styleSpec is one style entry in a theme file. Colors are named ANSI
// colors ("red", "bright-cyan"), palette indices ("ansi:208"), or hex
// ("#rrggbb").
type styleSpec struct {
	FG        string `toml:"fg"`
	BG        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Dim       bool   `toml:"dim"`
	Italic    bool   `toml:"italic"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

// LoadTheme reads a theme from a TOML file. Missing entries fall back to
// the default (plain) style.
func LoadTheme(path string) (*Theme, error) {
	var file themeFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("loading theme %s: %w", path, err)
	}
	return file.theme()
}

// ParseTheme reads a theme from TOML source text.
func ParseTheme(src string) (*Theme, error) {
	var file themeFile
	if _, err := toml.Decode(src, &file); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}
	return file.theme()
}

func (f themeFile) theme() (*Theme, error) {
	t := &Theme{}
	for _, entry := range []struct {
		name string
		spec styleSpec
		dst  *Style
	}{
		{"text", f.Text, &t.Text},
		{"muted", f.Muted, &t.Muted},
		{"accent", f.Accent, &t.Accent},
		{"danger", f.Danger, &t.Danger},
		{"border", f.Border, &t.Border},
		{"highlight", f.Highlight, &t.Highlight},
	} {
		style, err := entry.spec.style()
		if err != nil {
			return nil, fmt.Errorf("theme entry %q: %w", entry.name, err)
		}
		*entry.dst = style
	}
	return t, nil
}

func (s styleSpec) style() (Style, error) {
	out := Style{}
	if s.FG != "" {
		c, err := parseColorName(s.FG)
		if err != nil {
			return Style{}, err
		}
		out.Fg = c
	}
	if s.BG != "" {
		c, err := parseColorName(s.BG)
		if err != nil {
			return Style{}, err
		}
		out.Bg = c
	}
	if s.Bold {
		out.Attrs |= AttrBold
	}
	if s.Dim {
		out.Attrs |= AttrDim
	}
	if s.Italic {
		out.Attrs |= AttrItalic
	}
	if s.Underline {
		out.Attrs |= AttrUnderline
	}
	if s.Reverse {
		out.Attrs |= AttrReverse
	}
	return out, nil
}

var namedColors = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// parseColorName resolves a color from a theme file.
func parseColorName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "ansi:") {
		var idx int
		if _, err := fmt.Sscanf(name, "ansi:%d", &idx); err != nil || idx < 0 || idx > 255 {
			return Color{}, fmt.Errorf("invalid palette color %q", name)
		}
		return ANSIColor(uint8(idx)), nil
	}
	if strings.HasPrefix(name, "#") {
		return HexColor(name)
	}
	return Color{}, fmt.Errorf("unknown color %q", name)
}
