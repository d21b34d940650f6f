package crest

import "testing"

func TestViewport_WriteClipsPerCell(t *testing.T) {
	buf := NewBuffer(NewSize(10, 2))
	vp := NewViewport(buf, NewFrame())

	vp.Write("hello world", Point{X: 6}, Style{})
	if got := buf.Line(0); got != "      hell" {
		t.Errorf("line = %q, want %q", got, "      hell")
	}
}

func TestViewport_NewlineReturnsToStartColumn(t *testing.T) {
	buf := NewBuffer(NewSize(10, 3))
	vp := NewViewport(buf, NewFrame())

	vp.Write("ab\ncd", Point{X: 2, Y: 0}, Style{})
	if got := buf.Line(0); got != "  ab      " {
		t.Errorf("row 0 = %q", got)
	}
	if got := buf.Line(1); got != "  cd      " {
		t.Errorf("row 1 = %q", got)
	}
}

func TestViewport_EscapeTokensStyleWithoutCells(t *testing.T) {
	type tc struct {
		text   string
		line   string
		checks map[int]Style // column -> expected style
	}

	tests := map[string]tc{
		"basic color": {
			text: "a\x1b[31mb\x1b[0mc",
			line: "abc",
			checks: map[int]Style{
				0: {},
				1: NewStyle().Foreground(Red),
				2: {},
			},
		},
		"palette color": {
			text: "\x1b[38;5;208mX",
			line: "X",
			checks: map[int]Style{
				0: NewStyle().Foreground(ANSIColor(208)),
			},
		},
		"truecolor background": {
			text: "\x1b[48;2;1;2;3mY",
			line: "Y",
			checks: map[int]Style{
				0: NewStyle().Background(RGBColor(1, 2, 3)),
			},
		},
		"attributes set and clear": {
			text: "\x1b[1mA\x1b[22mB",
			line: "AB",
			checks: map[int]Style{
				0: NewStyle().Bold(),
				1: {},
			},
		},
		"lone escape dropped": {
			text: "a\x1bb",
			line: "ab",
			checks: map[int]Style{
				0: {},
				1: {},
			},
		},
		"non-sgr csi dropped": {
			text: "a\x1b[2Jb",
			line: "ab",
			checks: map[int]Style{
				1: {},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			buf := NewBuffer(NewSize(10, 1))
			vp := NewViewport(buf, NewFrame())
			vp.Write(tt.text, PointZero, Style{})

			if got := buf.Line(0)[:len(tt.line)]; got != tt.line {
				t.Errorf("line = %q, want %q", got, tt.line)
			}
			for col, want := range tt.checks {
				if got := buf.Get(Point{X: col}).Style; got != want {
					t.Errorf("style at col %d = %+v, want %+v", col, got, want)
				}
			}
		})
	}
}

func TestViewport_ResetReturnsToWriteStyle(t *testing.T) {
	buf := NewBuffer(NewSize(10, 1))
	vp := NewViewport(buf, NewFrame())

	// Reset inside the text must return to the style Write was called with,
	// not to a fully blank style.
	vp.Write("\x1b[32mX\x1b[0mY", PointZero, NewStyle().Foreground(Red))

	if got := buf.Get(PointZero).Style.Fg; got != Green {
		t.Errorf("X fg = %v, want green", got)
	}
	if got := buf.Get(Point{X: 1}).Style.Fg; got != Red {
		t.Errorf("Y fg = %v, want red", got)
	}
}

func TestViewport_WideRunes(t *testing.T) {
	buf := NewBuffer(NewSize(4, 1))
	vp := NewViewport(buf, NewFrame())

	vp.Write("世x", PointZero, Style{})
	if got := buf.Get(PointZero).Rune; got != '世' {
		t.Fatalf("head rune = %q", got)
	}
	if !buf.Get(Point{X: 1}).IsContinuation() {
		t.Fatal("expected continuation cell after wide rune")
	}
	if got := buf.Get(Point{X: 2}).Rune; got != 'x' {
		t.Errorf("rune after wide = %q, want 'x'", got)
	}
}

func TestViewport_WideRuneTailClipped(t *testing.T) {
	buf := NewBuffer(NewSize(4, 1))
	vp := NewViewport(buf, NewFrame())

	// Head lands on the last visible column; the tail is clipped but the
	// head still paints.
	vp.Write("世", Point{X: 3}, Style{})
	if got := buf.Get(Point{X: 3}).Rune; got != '世' {
		t.Errorf("head rune = %q, want wide rune", got)
	}
}

func TestViewport_ClippedNesting(t *testing.T) {
	buf := NewBuffer(NewSize(10, 6))
	vp := NewViewport(buf, NewFrame())

	vp.Clipped(NewRect(2, 1, 6, 4), func(sub *Viewport) {
		if got := sub.ContentSize(); got != NewSize(6, 4) {
			t.Errorf("content size = %v, want 6x4", got)
		}
		sub.Clipped(NewRect(1, 1, 3, 2), func(inner *Viewport) {
			inner.Write("x", PointZero, Style{})
		})
	})
	if got := buf.Get(Point{X: 3, Y: 2}).Rune; got != 'x' {
		t.Errorf("nested write landed wrong: %q at (3,2)", got)
	}
}

func TestViewport_ClipIntersectsWithParent(t *testing.T) {
	buf := NewBuffer(NewSize(10, 4))
	vp := NewViewport(buf, NewFrame())

	// The child rect extends past the parent; writes beyond the
	// intersection are dropped.
	vp.Clipped(NewRect(0, 0, 4, 2), func(outer *Viewport) {
		outer.Clipped(NewRect(2, 0, 6, 2), func(inner *Viewport) {
			inner.Write("abcdef", PointZero, Style{})
		})
	})
	if got := buf.Line(0); got != "  ab      " {
		t.Errorf("line = %q, want %q", got, "  ab      ")
	}
}

func TestViewport_EmptyClipStillRunsBody(t *testing.T) {
	buf := NewBuffer(NewSize(5, 5))
	vp := NewViewport(buf, NewFrame())

	ran := false
	vp.Clipped(NewRect(20, 20, 3, 3), func(sub *Viewport) {
		ran = true
		if !sub.IsEmpty() {
			t.Error("expected empty viewport")
		}
		sub.Write("x", PointZero, Style{})
		sub.Fill(NewStyle().Background(Blue))
	})
	if !ran {
		t.Fatal("body did not run for empty clip")
	}
	if got := buf.String(); got != "     \n     \n     \n     \n     " {
		t.Errorf("buffer modified by empty-clip writes:\n%s", got)
	}
}

func TestViewport_UsingPenRestores(t *testing.T) {
	buf := NewBuffer(NewSize(10, 1))
	vp := NewViewport(buf, NewFrame())

	vp.UsingPen(NewStyle().Foreground(Red), func(p *Pen) {
		vp.Write("a", PointZero, Style{})
		p.ReplacePen(NewStyle().Foreground(Green))
		vp.Write("b", Point{X: 1}, Style{})
	})
	vp.Write("c", Point{X: 2}, Style{})

	if got := buf.Get(PointZero).Style.Fg; got != Red {
		t.Errorf("a fg = %v, want red", got)
	}
	if got := buf.Get(Point{X: 1}).Style.Fg; got != Green {
		t.Errorf("b fg = %v, want green", got)
	}
	if got := buf.Get(Point{X: 2}).Style.Fg; !got.IsDefault() {
		t.Errorf("c fg = %v, want default after restore", got)
	}
}

func TestViewport_ClippedStyledMergesPen(t *testing.T) {
	buf := NewBuffer(NewSize(5, 1))
	vp := NewViewport(buf, NewFrame())

	vp.ClippedStyled(NewRect(0, 0, 5, 1), NewStyle().Background(Blue), func(sub *Viewport) {
		sub.Write("x", PointZero, NewStyle().Foreground(Red))
	})
	got := buf.Get(PointZero).Style
	if got.Bg != Blue || got.Fg != Red {
		t.Errorf("style = %+v, want blue bg merged under red fg", got)
	}
}
