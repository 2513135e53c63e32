package render

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/engine"
	"github.com/lixenwraith/penalty-shootout/vmath"
)

type fakeCell struct {
	ch    rune
	style tcell.Style
}

// fakeSurface records cells for assertions
type fakeSurface struct {
	w, h  int
	cells map[[2]int]fakeCell
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, cells: make(map[[2]int]fakeCell)}
}

func (f *fakeSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return
	}
	f.cells[[2]int{x, y}] = fakeCell{ch: primary, style: style}
}

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }

func (f *fakeSurface) row(y int) string {
	var sb strings.Builder
	for x := 0; x < f.w; x++ {
		c, ok := f.cells[[2]int{x, y}]
		if !ok || c.ch == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.ch)
	}
	return sb.String()
}

func (f *fakeSurface) contains(text string) bool {
	for y := 0; y < f.h; y++ {
		if strings.Contains(f.row(y), text) {
			return true
		}
	}
	return false
}

func (f *fakeSurface) count(ch rune) int {
	n := 0
	for _, c := range f.cells {
		if c.ch == ch {
			n++
		}
	}
	return n
}

func newGame() *engine.Game {
	return engine.NewGame(engine.DefaultSettings(), rand.New(rand.NewSource(7)))
}

func TestViewportFitsScreen(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"wide", 200, 40},
		{"tall", 60, 120},
		{"standard", 80, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(tt.w, tt.h, constants.FieldWidth, constants.FieldHeight)
			if v.OffsetX < 0 || v.OffsetX+v.Cols > tt.w {
				t.Errorf("Expected columns within screen, got offset %d cols %d", v.OffsetX, v.Cols)
			}
			if v.OffsetY < 0 || v.OffsetY+v.Rows > tt.h-constants.HUDRows {
				t.Errorf("Expected rows above HUD, got offset %d rows %d", v.OffsetY, v.Rows)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(80, 24, constants.FieldWidth, constants.FieldHeight)

	p := vmath.V(300, 350)
	x, y := v.ToCell(p)
	back, ok := v.ToWorld(x, y)
	if !ok {
		t.Fatalf("Expected cell (%d,%d) on field", x, y)
	}
	if vmath.Dist(back, p) > v.ScaleX+v.ScaleY {
		t.Errorf("Expected %v near %v", back, p)
	}

	if _, ok := v.ToWorld(v.OffsetX-1, v.OffsetY); ok {
		t.Error("Expected cell left of field to miss")
	}
	if _, ok := v.ToWorld(v.OffsetX, v.OffsetY+v.Rows); ok {
		t.Error("Expected cell below field to miss")
	}
}

func TestViewportDegenerateScreen(t *testing.T) {
	v := NewViewport(0, 0, constants.FieldWidth, constants.FieldHeight)
	if v.Cols != 0 || v.Rows != 0 {
		t.Errorf("Expected empty viewport, got %dx%d", v.Cols, v.Rows)
	}
	if v.Contains(0, 0) {
		t.Error("Expected empty viewport to contain nothing")
	}
}

func TestStartScreen(t *testing.T) {
	s := newFakeSurface(100, 40)
	NewTerminalRenderer(s).RenderFrame(newGame())

	if !s.contains(constants.TitleText) {
		t.Error("Expected title on start screen")
	}
	if !s.contains(constants.StartPromptText) {
		t.Error("Expected start prompt")
	}
	if s.contains("Score:") {
		t.Error("Expected no HUD on start screen")
	}
}

func TestPlayingFrame(t *testing.T) {
	g := newGame()
	g.Begin()
	s := newFakeSurface(100, 40)
	NewTerminalRenderer(s).RenderFrame(g)

	hud := s.row(39)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Lives: 3") {
		t.Errorf("Expected score and lives in HUD, got %q", hud)
	}
	if !strings.Contains(hud, "penalty") {
		t.Errorf("Expected policy name in HUD, got %q", hud)
	}
	if s.count('●') == 0 {
		t.Error("Expected ball drawn")
	}
	if s.count('█') == 0 {
		t.Error("Expected obstacles and keeper drawn")
	}
	if s.count('┃') != 2 {
		t.Errorf("Expected two idle legs, got %d", s.count('┃'))
	}
}

func TestKickLegLifts(t *testing.T) {
	g := newGame()
	g.Begin()
	g.Launch(300, 0)
	s := newFakeSurface(100, 40)
	NewTerminalRenderer(s).RenderFrame(g)

	if s.count('╱') != 1 {
		t.Errorf("Expected kicking leg, got %d", s.count('╱'))
	}
}

func TestOverlays(t *testing.T) {
	g := newGame()
	g.Begin()
	g.Pause()
	s := newFakeSurface(100, 40)
	r := NewTerminalRenderer(s)
	r.RenderFrame(g)
	if !s.contains(constants.PausedText) {
		t.Error("Expected paused overlay")
	}

	for g.State() != engine.StateGameOver {
		g.Resume()
		g.Ball().Serve(100, 695, vmath.V(0, 6))
		g.Update(engine.Input{})
	}
	s = newFakeSurface(100, 40)
	r = NewTerminalRenderer(s)
	r.RenderFrame(g)
	if !s.contains(constants.GameOverText) || !s.contains(constants.RestartPrompt) {
		t.Error("Expected game over overlay")
	}
}

func TestKickColorEndsOnShirt(t *testing.T) {
	if KickColor(1) != RgbShooter {
		t.Errorf("Expected shirt colour at kick end, got %v", KickColor(1))
	}
	if KickColor(0) == RgbShooter {
		t.Error("Expected flash colour at kick start")
	}
}

func TestStripesAlternate(t *testing.T) {
	if StripeColor(10, 80) == StripeColor(90, 80) {
		t.Error("Expected adjacent bands to differ")
	}
	if StripeColor(10, 80) != StripeColor(170, 80) {
		t.Error("Expected alternate bands to match")
	}
}

func TestSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	g := newGame()
	g.Begin()
	r := NewTerminalRenderer(screen)
	r.RenderFrame(g)
	screen.Show()

	cells, w, h := screen.GetContents()
	if w != 80 || h != 24 || len(cells) != 80*24 {
		t.Fatalf("Expected 80x24 contents, got %dx%d (%d cells)", w, h, len(cells))
	}
	if r.Viewport().Cols == 0 {
		t.Error("Expected non-empty viewport")
	}
}
