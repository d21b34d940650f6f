package crest

import "time"

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

const (
	spinnerStep  = 80 * time.Millisecond
	spinnerPulse = 1200 * time.Millisecond
)

// Spinner is an animated activity indicator. While running it re-registers
// for ticks every render; stopping it lets the tick scheduler idle once no
// other view wants ticks.
type Spinner struct {
	Base
	label   string
	elapsed time.Duration
	running bool
}

var (
	_ View        = (*Spinner)(nil)
	_ TickHandler = (*Spinner)(nil)
)

// NewSpinner creates a running spinner with an optional label.
func NewSpinner(label string, props ...Prop) *Spinner {
	s := &Spinner{label: label, running: true}
	s.Update(props...)
	return s
}

// Start resumes the animation.
func (s *Spinner) Start() {
	s.running = true
}

// Stop freezes the animation on its current frame.
func (s *Spinner) Stop() {
	s.running = false
}

// Running reports whether the spinner is animating.
func (s *Spinner) Running() bool {
	return s.running
}

// NaturalSize is the glyph plus the label on one row.
func (s *Spinner) NaturalSize(Size) Size {
	width := 1
	if s.label != "" {
		width += 1 + StringWidth(s.label)
	}
	return NewSize(width, 1)
}

// Render implements View.
func (s *Spinner) Render(vp *Viewport) {
	if s.running {
		vp.RegisterTick()
	}
	if vp.IsEmpty() {
		return
	}
	theme := s.Theme()
	frame := int(s.elapsed/spinnerStep) % len(spinnerFrames)

	// Breathe between muted and accent over the pulse period.
	phase := float64(s.elapsed%spinnerPulse) / float64(spinnerPulse)
	t := 2 * phase
	if t > 1 {
		t = 2 - t
	}
	glyph := theme.Muted.Lerp(theme.Accent, t)

	vp.Write(string(spinnerFrames[frame]), PointZero, glyph)
	if s.label != "" {
		vp.Write(s.label, Point{X: 2}, theme.Text)
	}
}

// ReceiveTick implements TickHandler.
func (s *Spinner) ReceiveTick(dt time.Duration) bool {
	if !s.running {
		return false
	}
	s.elapsed += dt
	return true
}
