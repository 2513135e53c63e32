package audio

import (
	"testing"

	"github.com/lixenwraith/penalty-shootout/engine"
)

// TestSoundTypeValues verifies sound type constants
func TestSoundTypeValues(t *testing.T) {
	if SoundError != 0 {
		t.Errorf("Expected SoundError=0, got %d", SoundError)
	}
	if SoundGameOver != 5 {
		t.Errorf("Expected SoundGameOver=5, got %d", SoundGameOver)
	}
}

// TestSoundTypeNames verifies names round-trip through ParseSoundType
func TestSoundTypeNames(t *testing.T) {
	for st := SoundError; st < soundTypeCount; st++ {
		got, ok := ParseSoundType(st.String())
		if !ok || got != st {
			t.Errorf("Expected %s to parse back to %d, got %d (ok=%v)", st, st, got, ok)
		}
	}
	if _, ok := ParseSoundType("trumpet"); ok {
		t.Error("Expected unknown name to fail")
	}
	if SoundType(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", SoundType(99))
	}
}

// TestSoundForEvent verifies every audible event maps and silent ones do not
func TestSoundForEvent(t *testing.T) {
	tests := []struct {
		event engine.EventType
		want  SoundType
		ok    bool
	}{
		{engine.EventLaunch, SoundWhoosh, true},
		{engine.EventShooterBounce, SoundWhoosh, true},
		{engine.EventObstacleHit, SoundBell, true},
		{engine.EventSave, SoundThud, true},
		{engine.EventWallBounce, SoundThud, true},
		{engine.EventGoal, SoundCoin, true},
		{engine.EventMiss, SoundError, true},
		{engine.EventGameOver, SoundGameOver, true},
		{engine.EventBegin, 0, false},
		{engine.EventPaused, 0, false},
		{engine.EventRestart, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			got, ok := SoundForEvent(tt.event)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if ok && got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
