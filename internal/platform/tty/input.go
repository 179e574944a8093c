package tty

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"bullet-bunny/internal/interfaces"
)

// Terminals report key presses and auto-repeats but never releases, so a
// direction counts as held for holdWindow after its last key event.
const holdWindow = 150 * time.Millisecond

// Input translates tcell events into game actions. Events arrive from the
// polling goroutine through Feed and are applied on Update.
type Input struct {
	events   chan tcell.Event
	size     func() (int, int)
	fieldW   float64
	fieldH   float64
	now      func() time.Time
	lastHeld map[interfaces.Action]time.Time
	pressed  map[interfaces.Action]bool
	clicked  bool
	clickX   float64
	clickY   float64
	mouseDn  bool
	closing  bool
}

// NewInput maps terminal cells onto a fieldW x fieldH field. size reports
// the current terminal size in cells.
func NewInput(size func() (int, int), fieldW, fieldH float64) *Input {
	return &Input{
		events:   make(chan tcell.Event, 128),
		size:     size,
		fieldW:   fieldW,
		fieldH:   fieldH,
		now:      time.Now,
		lastHeld: make(map[interfaces.Action]time.Time),
		pressed:  make(map[interfaces.Action]bool),
	}
}

// Poll feeds events from screen until it is finalized. Run it in its own
// goroutine.
func (in *Input) Poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		in.Feed(ev)
	}
}

// Feed queues ev for the next Update. Events beyond the queue capacity are
// dropped rather than blocking the poller.
func (in *Input) Feed(ev tcell.Event) {
	select {
	case in.events <- ev:
	default:
	}
}

func (in *Input) Update() {
	clear(in.pressed)
	in.clicked = false
	for {
		select {
		case ev := <-in.events:
			in.handle(ev)
		default:
			return
		}
	}
}

func (in *Input) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	}
}

func (in *Input) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		in.closing = true
	case tcell.KeyLeft:
		in.hold(interfaces.ActionLeft)
	case tcell.KeyRight:
		in.hold(interfaces.ActionRight)
	case tcell.KeyEscape:
		in.pressed[interfaces.ActionPause] = true
		in.pressed[interfaces.ActionCancel] = true
	case tcell.KeyEnter:
		in.pressed[interfaces.ActionConfirm] = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			in.pressed[interfaces.ActionFire] = true
		case 'a', 'A':
			in.hold(interfaces.ActionLeft)
		case 'd', 'D':
			in.hold(interfaces.ActionRight)
		}
	}
}

// hold marks a direction active and cancels the opposite one, since the
// terminal never tells us the other key went up.
func (in *Input) hold(a interfaces.Action) {
	in.pressed[a] = true
	in.lastHeld[a] = in.now()
	switch a {
	case interfaces.ActionLeft:
		delete(in.lastHeld, interfaces.ActionRight)
	case interfaces.ActionRight:
		delete(in.lastHeld, interfaces.ActionLeft)
	}
}

func (in *Input) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !in.mouseDn {
		cx, cy := ev.Position()
		in.clicked = true
		in.clickX, in.clickY = in.toField(cx, cy)
	}
	in.mouseDn = down
}

// toField returns the field coordinates of the centre of cell (cx, cy).
func (in *Input) toField(cx, cy int) (float64, float64) {
	cols, rows := in.size()
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	x := (float64(cx) + 0.5) * in.fieldW / float64(cols)
	y := (float64(cy) + 0.5) * in.fieldH / float64(rows)
	return x, y
}

func (in *Input) JustPressed(a interfaces.Action) bool {
	return in.pressed[a]
}

func (in *Input) Held(a interfaces.Action) bool {
	t, ok := in.lastHeld[a]
	if !ok {
		return false
	}
	if in.now().Sub(t) > holdWindow {
		delete(in.lastHeld, a)
		return false
	}
	return true
}

func (in *Input) Clicked() (float64, float64, bool) {
	return in.clickX, in.clickY, in.clicked
}

func (in *Input) CloseRequested() bool {
	return in.closing
}
