package engine

import (
	"math/rand"

	"github.com/lixenwraith/penalty-shootout/components"
	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/vmath"
)

// GenerateObstacles scatters obstacles by rejection sampling
// Stops after MaxAttempts draws; complete is false if fewer than Count were placed
func GenerateObstacles(cfg SpawnSettings, rng *rand.Rand) (obstacles []components.Obstacle, complete bool) {
	if cfg.Count <= 0 {
		return nil, true
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = constants.ObstacleMaxAttempts
	}

	obstacles = make([]components.Obstacle, 0, cfg.Count)
	for attempt := 0; attempt < maxAttempts && len(obstacles) < cfg.Count; attempt++ {
		p := vmath.V(
			cfg.MinX+rng.Float64()*(cfg.MaxX-cfg.MinX),
			cfg.MinY+rng.Float64()*(cfg.MaxY-cfg.MinY),
		)
		if clearOf(obstacles, p, cfg.MinSeparation) {
			obstacles = append(obstacles, components.NewObstacle(p.X, p.Y, cfg.Radius))
		}
	}
	return obstacles, len(obstacles) == cfg.Count
}

func clearOf(obstacles []components.Obstacle, p vmath.Vec2, minSep float64) bool {
	for _, o := range obstacles {
		if vmath.Dist(o.Position, p) < minSep {
			return false
		}
	}
	return true
}
