package engine

// EventType identifies a game event
type EventType int

const (
	EventBegin EventType = iota
	EventLaunch
	EventShooterBounce
	EventObstacleHit
	EventSave
	EventWallBounce
	EventGoal
	EventMiss
	EventPaused
	EventResumed
	EventGameOver
	EventRestart
)

var eventNames = [...]string{
	EventBegin:         "begin",
	EventLaunch:        "launch",
	EventShooterBounce: "shooter_bounce",
	EventObstacleHit:   "obstacle_hit",
	EventSave:          "save",
	EventWallBounce:    "wall_bounce",
	EventGoal:          "goal",
	EventMiss:          "miss",
	EventPaused:        "paused",
	EventResumed:       "resumed",
	EventGameOver:      "game_over",
	EventRestart:       "restart",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Event records a state change with the score and lives after it
type Event struct {
	Type  EventType
	Frame uint64
	Score int
	Lives int
}

func (g *Game) emit(t EventType) {
	g.events = append(g.events, Event{Type: t, Frame: g.frame, Score: g.score, Lives: g.lives})
}

// DrainEvents returns events queued since the last drain and clears the queue
func (g *Game) DrainEvents() []Event {
	events := g.events
	g.events = nil
	return events
}
