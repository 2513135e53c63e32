package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/engine"
)

// Handler decodes tcell events into intents and tracks held movement keys
// Terminals report key repeats but no key-up, so a movement key counts as
// held until no repeat arrives within the hold window
type Handler struct {
	keys       *KeyTable
	holdWindow time.Duration
	now        func() time.Time

	leftUntil  time.Time
	rightUntil time.Time
	mouseDown  bool
}

// NewHandler creates a handler with default bindings
func NewHandler() *Handler {
	return &Handler{
		keys:       DefaultKeyTable(),
		holdWindow: constants.KeyHoldWindow,
		now:        time.Now,
	}
}

// SetClock replaces the time source
func (h *Handler) SetClock(now func() time.Time) {
	h.now = now
}

// HandleEvent decodes one event; movement keys also refresh the held state
func (h *Handler) HandleEvent(ev tcell.Event) Intent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(e)
	case *tcell.EventMouse:
		return h.handleMouse(e)
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}

func (h *Handler) handleKey(ev *tcell.EventKey) Intent {
	it := h.keys.Lookup(ev)
	now := h.now()

	switch it {
	case IntentMoveLeft:
		h.leftUntil = now.Add(h.holdWindow)
		h.rightUntil = time.Time{}
	case IntentMoveRight:
		h.rightUntil = now.Add(h.holdWindow)
		h.leftUntil = time.Time{}
	case IntentBegin:
		return Intent{Type: it, Key: ' '}
	case IntentRestart:
		return Intent{Type: it, Key: 'r'}
	case IntentTogglePause:
		return Intent{Type: it, Key: 'p'}
	}
	return Intent{Type: it}
}

// handleMouse reports a press only on the button-down edge
func (h *Handler) handleMouse(ev *tcell.EventMouse) Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !h.mouseDown
	h.mouseDown = down
	if !pressed {
		return Intent{}
	}
	x, y := ev.Position()
	return Intent{Type: IntentPointer, X: x, Y: y}
}

// Direction returns the held movement direction: -1, 0 or 1
func (h *Handler) Direction() int {
	now := h.now()
	switch {
	case now.Before(h.leftUntil):
		return -1
	case now.Before(h.rightUntil):
		return 1
	}
	return 0
}

// FrameInput returns the engine input for the current frame
func (h *Handler) FrameInput() engine.Input {
	return engine.Input{Direction: h.Direction()}
}
