package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/engine"
)

// ErrAudioDisabled is returned by Initialize when config disables audio
var ErrAudioDisabled = errors.New("audio disabled")

// SoundManager plays one-shot effects through a shared mixer
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences the mixer; beep has no speaker close, so clearing is sufficient
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Play queues one effect; no-op before Initialize
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := GetSoundEffect(st, sm.cfg)
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays the effect for each event that has one
func (sm *SoundManager) HandleEvents(events []engine.Event) {
	for _, ev := range events {
		if st, ok := SoundForEvent(ev.Type); ok {
			sm.Play(st)
		}
	}
}
