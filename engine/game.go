package engine

import (
	"log"
	"math/rand"
	"time"
	"unicode"

	"github.com/lixenwraith/penalty-shootout/components"
	"github.com/lixenwraith/penalty-shootout/vmath"
)

// Input is the per-frame continuous input
type Input struct {
	Direction int // -1 left, 0 none, +1 right
}

// Game owns all entities, score, lives and the state machine
// Not safe for concurrent use; the frame loop is the only caller
type Game struct {
	settings Settings
	rng      *rand.Rand

	state State
	lives int
	score int

	ball      *components.Ball
	keeper    *components.Goalkeeper
	shooter   *components.Shooter
	obstacles []components.Obstacle

	events       []Event
	frame        uint64
	pendingPause bool
}

// NewGame creates a game on the start screen
// A nil rng seeds from the clock
func NewGame(settings Settings, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	g := &Game{
		settings: settings,
		rng:      rng,
		state:    StateStart,
	}
	g.reset()
	return g
}

// reset rebuilds every entity and counter for a fresh round
func (g *Game) reset() {
	s := g.settings

	g.lives = s.Lives
	g.score = 0
	g.pendingPause = false

	g.shooter = components.NewShooter(
		s.Width/2, s.Height-s.ShooterYOffset,
		s.ShooterWidth, s.ShooterHeight, s.ShooterSpeed, s.KickFrames,
	)
	g.keeper = components.NewGoalkeeper(
		s.Width/2, s.KeeperY,
		s.KeeperSpeed, s.KeeperRadius, s.KeeperMinX, s.KeeperMaxX,
	)
	g.ball = components.NewBall(g.shooter.Position.X, g.shooter.Position.Y-s.FollowOffset, s.BallRadius)
	g.resetBall()

	obstacles, complete := GenerateObstacles(s.Obstacles, g.rng)
	if !complete {
		log.Printf("obstacle spawn: placed %d of %d within %d attempts", len(obstacles), s.Obstacles.Count, s.Obstacles.MaxAttempts)
	}
	g.obstacles = obstacles
}

// resetBall returns the ball to the shooter per the reset policy
func (g *Game) resetBall() {
	x := g.shooter.Position.X
	y := g.shooter.Position.Y - g.settings.FollowOffset

	switch g.settings.Policy.ResetVelocity {
	case ResetRandomUpward:
		vx := (g.rng.Float64()*2 - 1) * g.settings.ServeSpreadX
		g.ball.Serve(x, y, vmath.V(vx, g.settings.ServeSpeedY))
	default:
		g.ball.Reset(x, y)
	}
}

// ===== ACCESSORS =====

func (g *Game) State() State { return g.state }
func (g *Game) Lives() int { return g.lives }
func (g *Game) Score() int { return g.score }
func (g *Game) Frame() uint64 { return g.frame }
func (g *Game) Settings() Settings { return g.settings }
func (g *Game) Ball() *components.Ball { return g.ball }
func (g *Game) Goalkeeper() *components.Goalkeeper { return g.keeper }
func (g *Game) Shooter() *components.Shooter { return g.shooter }

// Obstacles returns the live obstacle set; callers must not modify it
func (g *Game) Obstacles() []components.Obstacle { return g.obstacles }

// ===== COMMANDS =====
// Each returns false and changes nothing when invalid for the current state

// Begin leaves the start screen
func (g *Game) Begin() bool {
	if g.state != StateStart || !g.transition(StatePlaying) {
		return false
	}
	g.emit(EventBegin)
	return true
}

// Launch kicks the armed ball toward (x, y)
func (g *Game) Launch(x, y float64) bool {
	if g.state != StatePlaying {
		return false
	}
	if !g.ball.Launch(x, y, g.settings.LaunchSpeed) {
		return false
	}
	g.shooter.KickBall()
	g.emit(EventLaunch)
	return true
}

// Pause suspends play
func (g *Game) Pause() bool {
	if g.state != StatePlaying || !g.transition(StatePaused) {
		return false
	}
	g.emit(EventPaused)
	return true
}

// Resume continues a paused game
func (g *Game) Resume() bool {
	if g.state != StatePaused || !g.transition(StatePlaying) {
		return false
	}
	g.emit(EventResumed)
	return true
}

// Restart starts a new round from the game over screen
func (g *Game) Restart() bool {
	if g.state != StateGameOver {
		return false
	}
	g.reset()
	g.transition(StatePlaying)
	g.emit(EventRestart)
	return true
}

// KeyPress handles discrete key presses, case-insensitive
// SPACE begins, R restarts, P toggles pause
func (g *Game) KeyPress(r rune) bool {
	switch unicode.ToLower(r) {
	case ' ':
		return g.Begin()
	case 'r':
		return g.Restart()
	case 'p':
		if g.state == StatePaused {
			return g.Resume()
		}
		return g.Pause()
	}
	return false
}

// PointerPress resumes a paused game, otherwise aims and launches at (x, y)
func (g *Game) PointerPress(x, y float64) bool {
	if g.state == StatePaused {
		return g.Resume()
	}
	return g.Launch(x, y)
}
