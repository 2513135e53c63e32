package audio

import (
	"encoding/json"
	"strconv"

	"github.com/lixenwraith/penalty-shootout/constants"
)

// AudioConfig holds volume and output settings
type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// MasterVolume is 0.0-1.0 in config files; PENALTY_MASTER_VOLUME takes 0-100
	MasterVolume  float64               `yaml:"master_volume"`
	SampleRate    int                   `yaml:"sample_rate"`
	EffectVolumes map[SoundType]float64 `yaml:"-"`
	// Effects carries per-effect volumes by name from config files
	Effects map[string]float64 `yaml:"effects"`
}

// DefaultAudioConfig returns enabled audio at half volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundError:    0.8,
			SoundBell:     1.0,
			SoundWhoosh:   0.6,
			SoundCoin:     0.5,
			SoundThud:     0.9,
			SoundGameOver: 0.7,
		},
	}
}

// ApplyEffects copies named volumes from Effects into EffectVolumes, ignoring unknown names
func (c *AudioConfig) ApplyEffects() {
	if c.EffectVolumes == nil {
		c.EffectVolumes = make(map[SoundType]float64)
	}
	for name, v := range c.Effects {
		if st, ok := ParseSoundType(name); ok {
			c.EffectVolumes[st] = v
		}
	}
}

// ApplyEnv overrides settings from environment variables
// Unparseable values are ignored
func (c *AudioConfig) ApplyEnv(getenv func(string) string) {
	if enabled := getenv("PENALTY_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := getenv("PENALTY_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Effect volumes as a JSON object keyed by sound name
	if effectVols := getenv("PENALTY_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			if c.Effects == nil {
				c.Effects = make(map[string]float64)
			}
			for name, v := range volumes {
				c.Effects[name] = v
			}
			c.ApplyEffects()
		}
	}

	if sampleRate := getenv("PENALTY_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			c.SampleRate = val
		}
	}
}

// Volume returns the effective volume of one effect
func (c *AudioConfig) Volume(st SoundType) float64 {
	v, ok := c.EffectVolumes[st]
	if !ok {
		v = 1.0
	}
	return clampUnit(v * c.MasterVolume)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
