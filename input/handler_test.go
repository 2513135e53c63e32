package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestHandler() (*Handler, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	h := NewHandler()
	h.SetClock(clock.now)
	return h, clock
}

func TestKeyIntents(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want IntentType
		key  rune
	}{
		{"space begins", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), IntentBegin, ' '},
		{"r restarts", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), IntentRestart, 'r'},
		{"R restarts", tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModShift), IntentRestart, 'r'},
		{"p pauses", tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), IntentTogglePause, 'p'},
		{"m mutes", tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), IntentToggleMute, 0},
		{"escape quits", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit, 0},
		{"ctrl-c quits", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit, 0},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), IntentMoveLeft, 0},
		{"l moves right", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), IntentMoveRight, 0},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), IntentNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler()
			got := h.HandleEvent(tt.ev)
			if got.Type != tt.want {
				t.Errorf("Expected intent %d, got %d", tt.want, got.Type)
			}
			if got.Key != tt.key {
				t.Errorf("Expected key %q, got %q", tt.key, got.Key)
			}
		})
	}
}

func TestHeldDirectionExpires(t *testing.T) {
	h, clock := newTestHandler()

	if h.Direction() != 0 {
		t.Fatalf("Expected idle direction, got %d", h.Direction())
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if h.Direction() != -1 {
		t.Errorf("Expected -1 while held, got %d", h.Direction())
	}

	// A repeat inside the window keeps it held
	clock.t = clock.t.Add(100 * time.Millisecond)
	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	clock.t = clock.t.Add(100 * time.Millisecond)
	if h.FrameInput().Direction != -1 {
		t.Errorf("Expected -1 after repeat, got %d", h.FrameInput().Direction)
	}

	clock.t = clock.t.Add(200 * time.Millisecond)
	if h.Direction() != 0 {
		t.Errorf("Expected release after window, got %d", h.Direction())
	}
}

func TestOppositeKeyReplacesDirection(t *testing.T) {
	h, _ := newTestHandler()
	h.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if h.Direction() != 1 {
		t.Errorf("Expected latest key to win, got %d", h.Direction())
	}
}

func TestMousePressEdge(t *testing.T) {
	h, _ := newTestHandler()

	got := h.HandleEvent(tcell.NewEventMouse(12, 7, tcell.Button1, tcell.ModNone))
	if got.Type != IntentPointer || got.X != 12 || got.Y != 7 {
		t.Fatalf("Expected pointer at (12,7), got %+v", got)
	}

	// Drag reports with the button still down are not new presses
	if got := h.HandleEvent(tcell.NewEventMouse(13, 7, tcell.Button1, tcell.ModNone)); got.Type != IntentNone {
		t.Errorf("Expected no intent while held, got %d", got.Type)
	}

	h.HandleEvent(tcell.NewEventMouse(13, 7, tcell.ButtonNone, tcell.ModNone))
	if got := h.HandleEvent(tcell.NewEventMouse(20, 3, tcell.Button1, tcell.ModNone)); got.Type != IntentPointer {
		t.Errorf("Expected second press after release, got %d", got.Type)
	}
}

func TestResizeIntent(t *testing.T) {
	h, _ := newTestHandler()
	if got := h.HandleEvent(tcell.NewEventResize(80, 24)); got.Type != IntentResize {
		t.Errorf("Expected resize intent, got %d", got.Type)
	}
}
