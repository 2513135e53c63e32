package engine

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/penalty-shootout/vmath"
)

// TestGenerateObstaclesDefaults verifies count, band and separation
func TestGenerateObstaclesDefaults(t *testing.T) {
	cfg := DefaultSettings().Obstacles

	for seed := int64(0); seed < 20; seed++ {
		obstacles, complete := GenerateObstacles(cfg, rand.New(rand.NewSource(seed)))
		if !complete || len(obstacles) != cfg.Count {
			t.Fatalf("Seed %d: expected %d obstacles, got %d", seed, cfg.Count, len(obstacles))
		}

		for i, o := range obstacles {
			if o.Position.X < cfg.MinX || o.Position.X > cfg.MaxX || o.Position.Y < cfg.MinY || o.Position.Y > cfg.MaxY {
				t.Errorf("Seed %d: obstacle %d outside band: %v", seed, i, o.Position)
			}
			if o.Radius != cfg.Radius {
				t.Errorf("Seed %d: expected radius %f, got %f", seed, cfg.Radius, o.Radius)
			}
			for j := i + 1; j < len(obstacles); j++ {
				if d := vmath.Dist(o.Position, obstacles[j].Position); d < cfg.MinSeparation {
					t.Errorf("Seed %d: obstacles %d and %d only %f apart", seed, i, j, d)
				}
			}
		}
	}
}

// TestGenerateObstaclesDeterministic verifies the same seed yields the same layout
func TestGenerateObstaclesDeterministic(t *testing.T) {
	cfg := DefaultSettings().Obstacles
	a, _ := GenerateObstacles(cfg, rand.New(rand.NewSource(99)))
	b, _ := GenerateObstacles(cfg, rand.New(rand.NewSource(99)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical layouts, differ at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestGenerateObstaclesInfeasible verifies an impossible density terminates
func TestGenerateObstaclesInfeasible(t *testing.T) {
	cfg := SpawnSettings{
		Count:         50,
		Radius:        13,
		MinSeparation: 18,
		MinX:          0,
		MaxX:          10,
		MinY:          0,
		MaxY:          10,
		MaxAttempts:   500,
	}

	obstacles, complete := GenerateObstacles(cfg, rand.New(rand.NewSource(1)))

	if complete {
		t.Error("Expected incomplete placement")
	}
	// A 10x10 square fits only one centre with 18 separation
	if len(obstacles) != 1 {
		t.Errorf("Expected 1 obstacle, got %d", len(obstacles))
	}
}

// TestGenerateObstaclesZeroAttemptsUsesDefault verifies unset budgets fall back
func TestGenerateObstaclesZeroAttemptsUsesDefault(t *testing.T) {
	cfg := DefaultSettings().Obstacles
	cfg.MaxAttempts = 0

	obstacles, complete := GenerateObstacles(cfg, rand.New(rand.NewSource(3)))
	if !complete || len(obstacles) != cfg.Count {
		t.Errorf("Expected %d obstacles, got %d", cfg.Count, len(obstacles))
	}

	cfg.Count = 0
	obstacles, complete = GenerateObstacles(cfg, rand.New(rand.NewSource(3)))
	if !complete || len(obstacles) != 0 {
		t.Errorf("Expected empty complete set, got %d", len(obstacles))
	}
}
