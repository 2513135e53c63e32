package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/penalty-shootout/audio"
	"github.com/lixenwraith/penalty-shootout/engine"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Field sizes the playing area and goal mouth
type Field struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	GoalLineY     float64 `yaml:"goal_line_y"`
	GoalMouthFrac float64 `yaml:"goal_mouth_fraction"`
}

// Ball tunes the ball
type Ball struct {
	Radius       float64 `yaml:"radius"`
	LaunchSpeed  float64 `yaml:"launch_speed"`
	FollowOffset float64 `yaml:"follow_offset"`
	ServeSpreadX float64 `yaml:"serve_spread_x"`
	ServeSpeedY  float64 `yaml:"serve_speed_y"`
}

// Goalkeeper tunes the keeper
type Goalkeeper struct {
	Y      float64 `yaml:"y"`
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// Shooter tunes the paddle
type Shooter struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Speed      float64 `yaml:"speed"`
	YOffset    float64 `yaml:"y_offset"`
	KickFrames int     `yaml:"kick_frames"`
}

// Obstacles tunes the scattered defenders
type Obstacles struct {
	Count         int     `yaml:"count"`
	Radius        float64 `yaml:"radius"`
	MinSeparation float64 `yaml:"min_separation"`
	MarginX       float64 `yaml:"margin_x"`
	MinY          float64 `yaml:"min_y"`
	MaxY          float64 `yaml:"max_y"`
	MaxAttempts   int     `yaml:"max_attempts"`
}

// Rules selects policy and match length
type Rules struct {
	Policy string `yaml:"policy"`
	Lives  int    `yaml:"lives"`
	Seed   int64  `yaml:"seed"`
}

// Config is the on-disk game configuration
type Config struct {
	Field      Field             `yaml:"field"`
	Ball       Ball              `yaml:"ball"`
	Goalkeeper Goalkeeper        `yaml:"goalkeeper"`
	Shooter    Shooter           `yaml:"shooter"`
	Obstacles  Obstacles         `yaml:"obstacles"`
	Rules      Rules             `yaml:"rules"`
	Audio      audio.AudioConfig `yaml:"audio"`
}

// Default mirrors engine.DefaultSettings and audio.DefaultAudioConfig
func Default() *Config {
	s := engine.DefaultSettings()
	return &Config{
		Field: Field{
			Width:         s.Width,
			Height:        s.Height,
			GoalLineY:     s.GoalLineY,
			GoalMouthFrac: (s.GoalRight - s.GoalLeft) / s.Width,
		},
		Ball: Ball{
			Radius:       s.BallRadius,
			LaunchSpeed:  s.LaunchSpeed,
			FollowOffset: s.FollowOffset,
			ServeSpreadX: s.ServeSpreadX,
			ServeSpeedY:  s.ServeSpeedY,
		},
		Goalkeeper: Goalkeeper{
			Y:      s.KeeperY,
			Speed:  s.KeeperSpeed,
			Radius: s.KeeperRadius,
		},
		Shooter: Shooter{
			Width:      s.ShooterWidth,
			Height:     s.ShooterHeight,
			Speed:      s.ShooterSpeed,
			YOffset:    s.ShooterYOffset,
			KickFrames: s.KickFrames,
		},
		Obstacles: Obstacles{
			Count:         s.Obstacles.Count,
			Radius:        s.Obstacles.Radius,
			MinSeparation: s.Obstacles.MinSeparation,
			MarginX:       s.Obstacles.MinX,
			MinY:          s.Obstacles.MinY,
			MaxY:          s.Obstacles.MaxY,
			MaxAttempts:   s.Obstacles.MaxAttempts,
		},
		Rules: Rules{
			Policy: s.Policy.String(),
			Lives:  s.Lives,
		},
		Audio: *audio.DefaultAudioConfig(),
	}
}

// Load reads path over the defaults; an empty path returns defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Decode(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode overlays YAML from r onto c, rejecting unknown keys
// Keys absent from the document keep their current values
func (c *Config) Decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	c.Audio.ApplyEffects()
	return nil
}

// ApplyEnv overrides rules and audio from environment variables
// Unparseable values are ignored
func (c *Config) ApplyEnv(getenv func(string) string) {
	if policy := getenv("PENALTY_POLICY"); policy != "" {
		c.Rules.Policy = policy
	}
	if lives := getenv("PENALTY_LIVES"); lives != "" {
		if val, err := strconv.Atoi(lives); err == nil {
			c.Rules.Lives = val
		}
	}
	if seed := getenv("PENALTY_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			c.Rules.Seed = val
		}
	}
	c.Audio.ApplyEnv(getenv)
}

// Validate checks geometry and rules
func (c *Config) Validate() error {
	f := c.Field
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return fmt.Errorf("%w: field size %gx%g", ErrInvalidConfig, f.Width, f.Height)
	case f.GoalMouthFrac <= 0 || f.GoalMouthFrac > 1:
		return fmt.Errorf("%w: goal mouth fraction %g outside (0,1]", ErrInvalidConfig, f.GoalMouthFrac)
	case f.GoalLineY <= 0 || f.GoalLineY >= f.Height:
		return fmt.Errorf("%w: goal line %g outside field", ErrInvalidConfig, f.GoalLineY)
	}

	if c.Ball.Radius <= 0 || c.Ball.LaunchSpeed <= 0 {
		return fmt.Errorf("%w: ball radius and launch speed must be positive", ErrInvalidConfig)
	}

	mouth := f.Width * f.GoalMouthFrac
	if 2*c.Goalkeeper.Radius >= mouth {
		return fmt.Errorf("%w: keeper radius %g does not fit goal mouth %g", ErrInvalidConfig, c.Goalkeeper.Radius, mouth)
	}
	if c.Goalkeeper.Speed < 0 || c.Goalkeeper.Radius <= 0 {
		return fmt.Errorf("%w: keeper speed and radius", ErrInvalidConfig)
	}

	s := c.Shooter
	if s.Width <= 0 || s.Width > f.Width || s.Height <= 0 || s.Speed < 0 || s.KickFrames < 0 {
		return fmt.Errorf("%w: shooter geometry", ErrInvalidConfig)
	}
	if s.YOffset <= 0 || s.YOffset >= f.Height {
		return fmt.Errorf("%w: shooter offset %g outside field", ErrInvalidConfig, s.YOffset)
	}
	if rest := f.Height - s.YOffset - c.Ball.FollowOffset; rest <= f.GoalLineY+c.Ball.Radius || rest >= f.Height {
		return fmt.Errorf("%w: armed ball y %g outside (%g,%g)", ErrInvalidConfig, rest, f.GoalLineY+c.Ball.Radius, f.Height)
	}

	o := c.Obstacles
	if o.Count < 0 || o.Radius < 0 || o.MinSeparation < 0 {
		return fmt.Errorf("%w: negative obstacle parameters", ErrInvalidConfig)
	}
	if o.Count > 0 {
		if o.MarginX < 0 || 2*o.MarginX >= f.Width {
			return fmt.Errorf("%w: obstacle margin %g leaves no room", ErrInvalidConfig, o.MarginX)
		}
		if o.MinY < 0 || o.MinY > o.MaxY || o.MaxY > f.Height {
			return fmt.Errorf("%w: obstacle band [%g,%g] outside field", ErrInvalidConfig, o.MinY, o.MaxY)
		}
	}

	if c.Rules.Lives <= 0 {
		return fmt.Errorf("%w: lives %d", ErrInvalidConfig, c.Rules.Lives)
	}
	if _, err := engine.ParsePolicy(c.Rules.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	a := c.Audio
	if a.MasterVolume < 0 || a.MasterVolume > 1 || a.SampleRate <= 0 {
		return fmt.Errorf("%w: audio volume %g rate %d", ErrInvalidConfig, a.MasterVolume, a.SampleRate)
	}
	return nil
}

// Settings validates c and converts it to engine settings
func (c *Config) Settings() (engine.Settings, error) {
	if err := c.Validate(); err != nil {
		return engine.Settings{}, err
	}
	policy, _ := engine.ParsePolicy(c.Rules.Policy)

	f := c.Field
	mouth := f.Width * f.GoalMouthFrac
	goalLeft := (f.Width - mouth) / 2

	return engine.Settings{
		Width:  f.Width,
		Height: f.Height,
		Lives:  c.Rules.Lives,

		GoalLineY: f.GoalLineY,
		GoalLeft:  goalLeft,
		GoalRight: goalLeft + mouth,

		BallRadius:   c.Ball.Radius,
		LaunchSpeed:  c.Ball.LaunchSpeed,
		FollowOffset: c.Ball.FollowOffset,
		ServeSpreadX: c.Ball.ServeSpreadX,
		ServeSpeedY:  c.Ball.ServeSpeedY,

		KeeperY:      c.Goalkeeper.Y,
		KeeperSpeed:  c.Goalkeeper.Speed,
		KeeperRadius: c.Goalkeeper.Radius,
		KeeperMinX:   goalLeft + c.Goalkeeper.Radius,
		KeeperMaxX:   goalLeft + mouth - c.Goalkeeper.Radius,

		ShooterWidth:   c.Shooter.Width,
		ShooterHeight:  c.Shooter.Height,
		ShooterSpeed:   c.Shooter.Speed,
		ShooterYOffset: c.Shooter.YOffset,
		KickFrames:     c.Shooter.KickFrames,

		Obstacles: engine.SpawnSettings{
			Count:         c.Obstacles.Count,
			Radius:        c.Obstacles.Radius,
			MinSeparation: c.Obstacles.MinSeparation,
			MinX:          c.Obstacles.MarginX,
			MaxX:          f.Width - c.Obstacles.MarginX,
			MinY:          c.Obstacles.MinY,
			MaxY:          c.Obstacles.MaxY,
			MaxAttempts:   c.Obstacles.MaxAttempts,
		},
		Policy: policy,
	}, nil
}
