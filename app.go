package crest

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

const defaultTickInterval = 50 * time.Millisecond

// App owns the terminal, drives the render loop, and routes input into the
// view tree. Create one with NewApp and start it with Run; Run blocks until
// Stop is called or the event stream closes.
//
// All view mutation must happen on the loop goroutine: either inside event
// and tick handlers, or through QueueUpdate from other goroutines.
type App struct {
	root   View
	screen tcell.Screen
	router *Router
	buf    *Buffer

	tickEvery time.Duration
	mouse     bool
	debug     *log.Logger

	// Active overlay state, carried between render passes so input routing
	// and dismissal can consult it.
	modal     *ModalRequest
	modalRect Rect

	// buttons is the previously reported button mask, used to synthesize
	// press and release events from tcell's stateful reports.
	buttons tcell.ButtonMask

	// ticker exists only while the last render pass registered tick
	// views; otherwise the loop idles on input.
	ticker   *time.Ticker
	tickC    <-chan time.Time
	lastTick time.Time

	dirty bool
	queue chan func()

	quit     chan struct{}
	quitOnce sync.Once
}

// AppOption configures an App.
type AppOption func(*App)

// WithScreen supplies the tcell screen to drive instead of opening the
// process terminal. Used with tcell's simulation screen in tests.
func WithScreen(s tcell.Screen) AppOption {
	return func(a *App) { a.screen = s }
}

// WithMouse enables or disables terminal mouse reporting. Enabled by
// default.
func WithMouse(enabled bool) AppOption {
	return func(a *App) { a.mouse = enabled }
}

// WithTickInterval sets the animation tick cadence.
func WithTickInterval(d time.Duration) AppOption {
	return func(a *App) {
		if d > 0 {
			a.tickEvery = d
		}
	}
}

// WithDebugLog writes a line-oriented event trace to w. Useful with a file
// since stderr is occupied by the terminal.
func WithDebugLog(w io.Writer) AppOption {
	return func(a *App) {
		a.debug = log.New(w, "crest ", log.Ltime|log.Lmicroseconds)
	}
}

// NewApp creates an app rooted at the given view.
func NewApp(root View, opts ...AppOption) *App {
	a := &App{
		root:      root,
		router:    NewRouter(),
		buf:       NewBuffer(SizeZero),
		tickEvery: defaultTickInterval,
		mouse:     true,
		queue:     make(chan func(), 64),
		quit:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run initializes the terminal and blocks driving the render and event loop
// until Stop is called. The terminal is restored before Run returns.
func (a *App) Run() error {
	if a.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("opening terminal: %w", err)
		}
		a.screen = s
	}
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer a.screen.Fini()
	if a.mouse {
		a.screen.EnableMouse()
	}

	events := make(chan tcell.Event, 16)
	go a.screen.ChannelEvents(events, a.quit)

	a.renderPass()
	a.updateTicker()
	defer a.stopTicker()

	for {
		select {
		case <-a.quit:
			return nil
		case fn := <-a.queue:
			fn()
			a.dirty = true
		case now := <-a.tickC:
			dt := now.Sub(a.lastTick)
			a.lastTick = now
			a.router.RouteTicks(dt)
			a.dirty = true
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			a.handleEvent(ev)
		}
		if a.dirty {
			a.renderPass()
			a.updateTicker()
		}
	}
}

// updateTicker starts or stops the tick timer to match the most recent
// pass's registrations. With no tick views the tick channel is nil and the
// loop sleeps until input arrives.
func (a *App) updateTicker() {
	needs := a.router.frame != nil && a.router.frame.NeedsTicks()
	switch {
	case needs && a.ticker == nil:
		a.ticker = time.NewTicker(a.tickEvery)
		a.tickC = a.ticker.C
		a.lastTick = time.Now()
	case !needs && a.ticker != nil:
		a.stopTicker()
	}
}

func (a *App) stopTicker() {
	if a.ticker == nil {
		return
	}
	a.ticker.Stop()
	a.ticker = nil
	a.tickC = nil
}

// Stop ends the event loop. Safe to call from any goroutine, more than
// once.
func (a *App) Stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// QueueUpdate schedules fn on the loop goroutine and re-renders after it
// runs. This is the only safe way to mutate views from other goroutines.
func (a *App) QueueUpdate(fn func()) {
	select {
	case a.queue <- fn:
	case <-a.quit:
	}
}

// MarkDirty forces a render after the current event. Only valid on the loop
// goroutine; use QueueUpdate elsewhere.
func (a *App) MarkDirty() {
	a.dirty = true
}

func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		a.debugf("resize %dx%d", w, h)
		a.screen.Sync()
		a.dirty = true
	case *tcell.EventKey:
		kev := keyEventFrom(ev)
		if kev.Key == KeyNone {
			return
		}
		a.handleKey(kev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

func (a *App) handleKey(ev KeyEvent) {
	a.debugf("key %v rune %q mod %v", ev.Key, ev.Rune, ev.Mod)
	if a.modal != nil {
		if ev.Is(KeyEscape) {
			a.dismissModal()
			a.dirty = true
			return
		}
		// The overlay sees keys first while it is up.
		if a.router.RouteKey(a.modal.View, ev) {
			a.dirty = true
			return
		}
	}
	if a.router.RouteKey(a.root, ev) {
		a.dirty = true
		return
	}
	if ev.Is(KeyRune, ModCtrl) && ev.Rune == 'c' {
		a.Stop()
	}
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	p := Point{X: x, Y: y}
	buttons := ev.Buttons()

	if buttons&tcell.WheelUp != 0 {
		a.router.RouteWheel(-1, p)
		a.dirty = true
	}
	if buttons&tcell.WheelDown != 0 {
		a.router.RouteWheel(1, p)
		a.dirty = true
	}

	held := buttons &^ wheelMask
	pressed := held &^ a.buttons
	released := a.buttons &^ held
	a.buttons = held

	if pressed == 0 && released == 0 {
		a.router.RouteMove(p)
		a.dirty = true
		return
	}
	for _, b := range buttonOrder {
		if pressed&b.mask != 0 {
			if a.modal != nil && !a.modalRect.Contains(p) {
				// A press outside the overlay dismisses it and is not
				// delivered to the content underneath.
				a.dismissModal()
				a.dirty = true
				continue
			}
			a.debugf("press %v at %v", b.btn, p)
			a.router.RoutePress(b.btn, p)
			a.dirty = true
		}
		if released&b.mask != 0 {
			a.debugf("release %v at %v", b.btn, p)
			a.router.RouteRelease(b.btn, p)
			a.dirty = true
		}
	}
}

// renderPass lays out and paints the whole tree into the buffer, installs
// the pass's event registrations, and pushes the buffer to the terminal.
func (a *App) renderPass() {
	a.dirty = false
	w, h := a.screen.Size()
	a.buf.Resize(NewSize(w, h))
	a.buf.Clear()

	frame := NewFrame()
	vp := NewViewport(a.buf, frame)
	RenderInto(a.root, vp)

	if req := frame.Modal(); req != nil {
		a.renderModal(frame, req)
	} else {
		a.modal = nil
		a.modalRect = Rect{}
	}

	a.router.SetFrame(frame)
	blit(a.buf, a.screen)
}

// renderModal composites the requested overlay above the already-painted
// content. Rendering after the main tree also places the overlay's mouse
// registrations on top for hit testing.
func (a *App) renderModal(frame *Frame, req *ModalRequest) {
	natural := Measure(req.View, a.buf.Size())
	rect := PlaceOverlay(req.Anchor, natural, a.buf.Size())
	a.modal = req
	a.modalRect = rect
	a.debugf("modal anchored %v placed %v", req.Anchor, rect)

	vp := NewViewport(a.buf, frame)
	vp.Clipped(rect, func(sub *Viewport) {
		RenderInto(req.View, sub)
	})
}

// dismissModal clears the overlay and fires its dismiss callback. The
// overlay stays gone only if its owner stops requesting it; OnDismiss is
// where that state flips.
func (a *App) dismissModal() {
	req := a.modal
	a.modal = nil
	a.modalRect = Rect{}
	if req != nil && req.OnDismiss != nil {
		req.OnDismiss()
	}
}

func (a *App) debugf(format string, args ...any) {
	if a.debug != nil {
		a.debug.Printf(format, args...)
	}
}
