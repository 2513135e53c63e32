package engine

// Driver gates per-tick updates the way a render loop's start/stop does
// It halts when the game leaves Playing and is restarted with Sync after Begin, Resume or Restart
type Driver struct {
	game    *Game
	running bool
	ticks   uint64
}

// NewDriver creates a driver synced to the game's current state
func NewDriver(g *Game) *Driver {
	d := &Driver{game: g}
	d.Sync()
	return d
}

func (d *Driver) Start() { d.running = true }
func (d *Driver) Stop() { d.running = false }
func (d *Driver) Running() bool { return d.running }
func (d *Driver) Ticks() uint64 { return d.ticks }

// Sync runs the driver exactly when the game is Playing
func (d *Driver) Sync() {
	d.running = d.game.State() == StatePlaying
}

// Tick updates the game once if running; returns whether an update happened
func (d *Driver) Tick(in Input) bool {
	if !d.running {
		return false
	}
	d.game.Update(in)
	d.ticks++
	if d.game.State() != StatePlaying {
		d.Stop()
	}
	return true
}
