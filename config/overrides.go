package config

import (
	"math/rand"
	"time"
)

// Overrides carries command-line values; zero values leave the config unchanged
type Overrides struct {
	Policy string
	Seed   int64
	Lives  int
	Mute   bool
}

// ApplyOverrides applies command-line values last, above file and environment
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Policy != "" {
		c.Rules.Policy = o.Policy
	}
	if o.Seed != 0 {
		c.Rules.Seed = o.Seed
	}
	if o.Lives > 0 {
		c.Rules.Lives = o.Lives
	}
	if o.Mute {
		c.Audio.Enabled = false
	}
}

// Resolve loads path, then applies environment and command-line overrides
func Resolve(path string, getenv func(string) string, o Overrides) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(getenv)
	cfg.ApplyOverrides(o)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Rand returns the game's random source; a zero seed uses the clock
func (c *Config) Rand() *rand.Rand {
	seed := c.Rules.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
