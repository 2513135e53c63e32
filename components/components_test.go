package components

import (
	"math"
	"testing"

	"github.com/lixenwraith/penalty-shootout/vmath"
)

const (
	fieldW = 600.0
	fieldH = 700.0
)

func TestBallLaunchSpeed(t *testing.T) {
	tests := []struct {
		name             string
		targetX, targetY float64
	}{
		{"Straight up", 300, 0},
		{"Left corner", 0, 0},
		{"Right low", 599, 650},
		{"Behind", 300, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(300, 655, 10)
			if !b.Launch(tt.targetX, tt.targetY, 6) {
				t.Fatal("Expected armed ball to launch")
			}
			if mag := b.Velocity.Magnitude(); math.Abs(mag-6) > 1e-9 {
				t.Errorf("Expected speed 6, got %f", mag)
			}
			if b.Phase != PhaseInFlight {
				t.Errorf("Expected PhaseInFlight, got %d", b.Phase)
			}
		})
	}
}

func TestBallLaunchAtSelf(t *testing.T) {
	b := NewBall(300, 655, 10)
	if !b.Launch(300, 655, 6) {
		t.Fatal("Expected launch to succeed")
	}
	if math.IsNaN(b.Velocity.X) || math.IsNaN(b.Velocity.Y) {
		t.Fatalf("Expected finite velocity, got %v", b.Velocity)
	}
	if b.Velocity != vmath.V(0, -6) {
		t.Errorf("Expected fallback velocity (0,-6), got %v", b.Velocity)
	}
}

func TestBallLaunchTwice(t *testing.T) {
	b := NewBall(300, 655, 10)
	b.Launch(0, 0, 6)
	first := b.Velocity

	if b.Launch(600, 0, 6) {
		t.Error("Expected second launch to be rejected")
	}
	if b.Velocity != first {
		t.Errorf("Expected velocity unchanged %v, got %v", first, b.Velocity)
	}
}

func TestBallWallBounce(t *testing.T) {
	tests := []struct {
		name   string
		x, vx  float64
		wantX  float64
		wantVX float64
	}{
		{"Left wall", 2, -5, 0, 5},
		{"Right wall", 598, 5, fieldW, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBall(tt.x, 300, 10)
			b.Serve(tt.x, 300, vmath.V(tt.vx, -6))

			if !b.Move(fieldW, fieldH, true) {
				t.Fatal("Expected bounce")
			}
			if b.Position.X != tt.wantX {
				t.Errorf("Expected x clamped to %f, got %f", tt.wantX, b.Position.X)
			}
			if b.Velocity.X != tt.wantVX {
				t.Errorf("Expected vx %f, got %f", tt.wantVX, b.Velocity.X)
			}
			if b.OutOfBounds(fieldW, fieldH, false) {
				t.Error("Expected bounced ball to stay in bounds")
			}
		})
	}
}

func TestBallSideExitWithoutBounce(t *testing.T) {
	b := NewBall(2, 300, 10)
	b.Serve(2, 300, vmath.V(-5, 0))

	if b.Move(fieldW, fieldH, false) {
		t.Error("Expected no bounce under penalty policy")
	}
	if b.Velocity.X != -5 {
		t.Errorf("Expected vx unchanged, got %f", b.Velocity.X)
	}
	if !b.OutOfBounds(fieldW, fieldH, true) {
		t.Error("Expected horizontal exit to count as out of bounds")
	}
	if b.OutOfBounds(fieldW, fieldH, false) {
		t.Error("Expected vertical-only check to ignore horizontal exit")
	}
}

func TestBallReset(t *testing.T) {
	b := NewBall(300, 655, 10)
	b.Launch(0, 0, 6)
	b.Reset(120, 640)

	if b.Position != vmath.V(120, 640) {
		t.Errorf("Expected position (120,640), got %v", b.Position)
	}
	if !b.Velocity.IsZero() {
		t.Errorf("Expected zero velocity, got %v", b.Velocity)
	}
	if !b.Armed() {
		t.Error("Expected ball re-armed")
	}
}

func TestGoalkeeperOscillation(t *testing.T) {
	k := NewGoalkeeper(300, 60, 2, 15, 165, 435)

	// Run two full sweeps and record every direction flip
	var flips []float64
	dir := k.Direction
	for i := 0; i < 600; i++ {
		k.Move()
		if k.Direction != dir {
			flips = append(flips, k.Position.X)
			dir = k.Direction
		}
		if k.Position.X < 165 || k.Position.X > 435 {
			t.Fatalf("Keeper escaped bounds at tick %d: x=%f", i, k.Position.X)
		}
	}

	if len(flips) < 2 {
		t.Fatalf("Expected at least two flips, got %d", len(flips))
	}
	if flips[0] != 435 {
		t.Errorf("Expected first flip clamped to right bound 435, got %f", flips[0])
	}

	// Same inputs reproduce the same path
	k2 := NewGoalkeeper(300, 60, 2, 15, 165, 435)
	for i := 0; i < 600; i++ {
		k2.Move()
	}
	if k2.Position != k.Position || k2.Direction != k.Direction {
		t.Errorf("Expected deterministic motion, got %v/%d vs %v/%d", k2.Position, k2.Direction, k.Position, k.Direction)
	}
}

func TestGoalkeeperFastStaysInRange(t *testing.T) {
	k := NewGoalkeeper(300, 60, 400, 15, 165, 435)

	for i := 0; i < 20; i++ {
		k.Move()
		if k.Position.X < k.MinX || k.Position.X > k.MaxX {
			t.Fatalf("Expected keeper within [%f,%f] at tick %d, got %f", k.MinX, k.MaxX, i, k.Position.X)
		}
	}
}

func TestShooterMoveClamp(t *testing.T) {
	s := NewShooter(300, 670, 80, 10, 5, 10)

	for i := 0; i < 200; i++ {
		s.Move(-1, fieldW)
	}
	if s.Position.X != 40 {
		t.Errorf("Expected x clamped to 40, got %f", s.Position.X)
	}

	for i := 0; i < 200; i++ {
		s.Move(1, fieldW)
	}
	if s.Position.X != 560 {
		t.Errorf("Expected x clamped to 560, got %f", s.Position.X)
	}
}

func TestShooterKickLastsTenTicks(t *testing.T) {
	s := NewShooter(300, 670, 80, 10, 5, 10)
	s.KickBall()

	for i := 0; i < 9; i++ {
		s.Tick()
		if !s.Kicking() {
			t.Fatalf("Expected kick active after %d ticks", i+1)
		}
	}
	s.Tick()
	if s.Kicking() {
		t.Error("Expected kick idle after 10 ticks")
	}
	if s.Kick.Frame != 0 {
		t.Errorf("Expected frame reset to 0, got %d", s.Kick.Frame)
	}

	// Ticking while idle does nothing
	s.Tick()
	if s.Kicking() {
		t.Error("Expected idle shooter to stay idle")
	}
}

func TestShooterKickRestart(t *testing.T) {
	s := NewShooter(300, 670, 80, 10, 5, 10)
	s.KickBall()
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	s.KickBall()
	if s.Kick.Frame != 0 || !s.Kick.Active {
		t.Errorf("Expected restarted kick at frame 0, got %+v", s.Kick)
	}
}
