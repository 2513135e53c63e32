package engine

import "github.com/lixenwraith/penalty-shootout/physics"

// Update advances one frame; no-op outside Playing
func (g *Game) Update(in Input) {
	if g.state != StatePlaying {
		return
	}
	g.frame++

	g.shooter.Tick()
	g.applyInput(in)
	g.followShooter()
	g.keeper.Move()
	g.moveBall()
	g.resolveCollisions()
	g.checkGoal()
	g.handleOutOfBounds()
	g.updateGameState()
}

func (g *Game) applyInput(in Input) {
	switch {
	case in.Direction < 0:
		g.shooter.Move(-1, g.settings.Width)
	case in.Direction > 0:
		g.shooter.Move(1, g.settings.Width)
	}
}

// followShooter keeps an armed ball on the shooter's foot
func (g *Game) followShooter() {
	if !g.ball.Armed() {
		return
	}
	g.ball.Reset(g.shooter.Position.X, g.shooter.Position.Y-g.settings.FollowOffset)
}

func (g *Game) moveBall() {
	if g.ball.Armed() {
		return
	}
	if g.ball.Move(g.settings.Width, g.settings.Height, g.settings.Policy.WallBounceHorizontal) {
		g.emit(EventWallBounce)
	}
}

// resolveCollisions checks shooter, then obstacles, then keeper
// At most one obstacle is destroyed per frame, scanning from the newest
func (g *Game) resolveCollisions() {
	if g.ball.Armed() {
		return
	}

	if physics.BallHitsShooter(g.ball, g.shooter) {
		physics.BounceOffShooter(g.ball, g.shooter)
		g.shooter.KickBall()
		g.emit(EventShooterBounce)
	}

	for i := len(g.obstacles) - 1; i >= 0; i-- {
		if physics.BallHitsObstacle(g.ball, g.obstacles[i]) {
			physics.BounceOffObstacle(g.ball)
			g.obstacles = append(g.obstacles[:i], g.obstacles[i+1:]...)
			g.emit(EventObstacleHit)
			break
		}
	}

	if physics.BallHitsGoalkeeper(g.ball, g.keeper) && physics.BounceOffGoalkeeper(g.ball) {
		g.emit(EventSave)
	}
}

// checkGoal scores a ball in flight past the goal line inside the mouth
func (g *Game) checkGoal() bool {
	if g.ball.Armed() {
		return false
	}
	p := g.ball.Position
	s := g.settings
	if p.Y >= s.GoalLineY || p.X <= s.GoalLeft || p.X >= s.GoalRight {
		return false
	}

	g.score++
	g.resetBall()
	g.emit(EventGoal)
	if s.Policy.PausesOnScore {
		g.pendingPause = true
	}
	return true
}

// handleOutOfBounds costs a life when a ball in flight leaves the field
func (g *Game) handleOutOfBounds() bool {
	if g.ball.Armed() {
		return false
	}
	s := g.settings
	if !g.ball.OutOfBounds(s.Width, s.Height, !s.Policy.WallBounceHorizontal) {
		return false
	}

	if g.lives > 0 {
		g.lives--
	}
	g.resetBall()
	g.emit(EventMiss)
	if s.Policy.PausesOnScore {
		g.pendingPause = true
	}
	return true
}

// updateGameState applies the terminal check, then any pause requested this frame
func (g *Game) updateGameState() {
	pause := g.pendingPause
	g.pendingPause = false

	if g.lives <= 0 {
		if g.transition(StateGameOver) {
			g.emit(EventGameOver)
		}
		return
	}
	if pause && g.transition(StatePaused) {
		g.emit(EventPaused)
	}
}
