package audio

import "github.com/lixenwraith/penalty-shootout/engine"

// SoundType represents different sound effects
type SoundType int

const (
	SoundError    SoundType = iota // Miss buzz
	SoundBell                      // Obstacle destroyed
	SoundWhoosh                    // Kick
	SoundCoin                      // Goal
	SoundThud                      // Keeper save, wall bounce
	SoundGameOver                  // Falling sweep
	soundTypeCount
)

var soundNames = [...]string{
	SoundError:    "error",
	SoundBell:     "bell",
	SoundWhoosh:   "whoosh",
	SoundCoin:     "coin",
	SoundThud:     "thud",
	SoundGameOver: "game_over",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType resolves a sound name as used in config files
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// SoundForEvent maps a game event to its effect; false for silent events
func SoundForEvent(t engine.EventType) (SoundType, bool) {
	switch t {
	case engine.EventLaunch, engine.EventShooterBounce:
		return SoundWhoosh, true
	case engine.EventObstacleHit:
		return SoundBell, true
	case engine.EventSave, engine.EventWallBounce:
		return SoundThud, true
	case engine.EventGoal:
		return SoundCoin, true
	case engine.EventMiss:
		return SoundError, true
	case engine.EventGameOver:
		return SoundGameOver, true
	}
	return 0, false
}
