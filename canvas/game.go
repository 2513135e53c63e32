package canvas

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/penalty-shootout/engine"
)

// ErrQuit ends RunGame on Escape
var ErrQuit = errors.New("quit")

// EventSink consumes game events after each frame
type EventSink interface {
	HandleEvents(events []engine.Event)
}

// Game adapts engine.Game to ebiten.Game; field units map 1:1 to pixels
type Game struct {
	game     *engine.Game
	driver   *engine.Driver
	controls Controls
	sink     EventSink
	muted    bool
}

// NewGame wraps g; sink may be nil
func NewGame(g *engine.Game, sink EventSink) *Game {
	return &Game{
		game:     g,
		driver:   engine.NewDriver(g),
		controls: ebitenControls{},
		sink:     sink,
	}
}

// Run opens the window and blocks until it closes
func (c *Game) Run(title string) error {
	st := c.game.Settings()
	ebiten.SetWindowSize(int(st.Width), int(st.Height))
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(c); err != nil && !errors.Is(err, ErrQuit) {
		return err
	}
	return nil
}

// Update applies this frame's commands, then advances the simulation
func (c *Game) Update() error {
	if c.controls.Quit() {
		return ErrQuit
	}

	for _, r := range c.controls.Pressed() {
		if r == 'm' {
			c.muted = !c.muted
			log.Printf("mute=%t", c.muted)
			continue
		}
		c.game.KeyPress(r)
	}
	if x, y, ok := c.controls.Pointer(); ok {
		c.game.PointerPress(float64(x), float64(y))
	}

	c.driver.Sync()
	c.driver.Tick(engine.Input{Direction: c.controls.Direction()})

	events := c.game.DrainEvents()
	for _, ev := range events {
		log.Printf("event=%s frame=%d score=%d lives=%d", ev.Type, ev.Frame, ev.Score, ev.Lives)
	}
	if c.sink != nil && !c.muted {
		c.sink.HandleEvents(events)
	}
	return nil
}

// Layout fixes the logical screen to the field size
func (c *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	st := c.game.Settings()
	return int(st.Width), int(st.Height)
}
