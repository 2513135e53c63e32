package engine

// State is the game-level mode
type State int

const (
	StateStart State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

var stateNames = [...]string{
	StateStart:    "start",
	StatePlaying:  "playing",
	StatePaused:   "paused",
	StateGameOver: "gameOver",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

var validTransitions = map[State][]State{
	StateStart:    {StatePlaying},
	StatePlaying:  {StatePaused, StateGameOver},
	StatePaused:   {StatePlaying},
	StateGameOver: {StatePlaying},
}

// CanTransition checks if a state transition is valid
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// transition moves to the target state if the table allows it
func (g *Game) transition(to State) bool {
	if !CanTransition(g.state, to) {
		return false
	}
	g.state = to
	return true
}
