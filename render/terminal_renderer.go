package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/engine"
	"github.com/lixenwraith/penalty-shootout/vmath"
)

// TerminalRenderer draws a game onto a cell surface
type TerminalRenderer struct {
	surface  Surface
	viewport Viewport
}

// NewTerminalRenderer creates a renderer for surface
func NewTerminalRenderer(surface Surface) *TerminalRenderer {
	return &TerminalRenderer{surface: surface}
}

// Viewport returns the mapping used by the last frame
func (r *TerminalRenderer) Viewport() Viewport {
	return r.viewport
}

// RenderFrame draws the whole frame; the caller shows the screen
func (r *TerminalRenderer) RenderFrame(g *engine.Game) {
	st := g.Settings()
	w, h := r.surface.Size()
	r.viewport = NewViewport(w, h, st.Width, st.Height)

	r.clear(w, h)
	r.drawField(st)

	switch g.State() {
	case engine.StateStart:
		r.drawStartScreen()
	default:
		r.drawEntities(g)
		r.drawHUD(g, w, h)
		switch g.State() {
		case engine.StatePaused:
			r.drawOverlay(constants.PausedText, RgbOverlayTitle, constants.ResumePromptText)
		case engine.StateGameOver:
			r.drawOverlay(constants.GameOverText, RgbGameOver, fmt.Sprintf("Score: %d", g.Score()), constants.RestartPrompt)
		}
	}
}

func (r *TerminalRenderer) clear(w, h int) {
	style := tcell.StyleDefault.Background(RgbHUDBg)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.surface.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawField paints grass stripes and markings cell by cell
func (r *TerminalRenderer) drawField(st engine.Settings) {
	v := r.viewport
	centre := vmath.V(st.Width/2, st.Height/2)
	spots := []vmath.Vec2{
		vmath.V(st.Width/2, constants.PenaltyBoxDepth-40),
		centre,
		vmath.V(st.Width/2, st.Height-constants.PenaltyBoxDepth+40),
	}
	halfX, halfY := v.ScaleX/2, v.ScaleY/2
	lineTol := math.Max(halfX, halfY)

	for y := v.OffsetY; y < v.OffsetY+v.Rows; y++ {
		for x := v.OffsetX; x < v.OffsetX+v.Cols; x++ {
			p := v.CellCenter(x, y)
			style := tcell.StyleDefault.Background(StripeColor(p.Y, constants.StripeHeight)).Foreground(RgbLine)
			ch := ' '

			inMouth := p.X >= st.GoalLeft-halfX && p.X <= st.GoalRight+halfX
			topBox := p.Y <= constants.PenaltyBoxDepth+halfY
			bottomBox := p.Y >= st.Height-constants.PenaltyBoxDepth-halfY

			switch {
			case inMouth && (p.Y < constants.GoalDepth || p.Y > st.Height-constants.GoalDepth):
				style = style.Background(RgbGoal)
			case math.Abs(p.Y-st.Height/2) < halfY:
				ch = '─'
			case inMouth && (math.Abs(p.Y-constants.PenaltyBoxDepth) < halfY || math.Abs(p.Y-(st.Height-constants.PenaltyBoxDepth)) < halfY):
				ch = '─'
			case (topBox || bottomBox) && (math.Abs(p.X-st.GoalLeft) < halfX || math.Abs(p.X-st.GoalRight) < halfX):
				ch = '│'
			case math.Abs(vmath.Dist(p, centre)-constants.CenterCircleRadius) < lineTol:
				ch = '·'
			}

			for _, s := range spots {
				if math.Abs(p.X-s.X) < halfX && math.Abs(p.Y-s.Y) < halfY {
					ch = '•'
				}
			}

			r.surface.SetContent(x, y, ch, nil, style)
		}
	}
}

// fillDisc paints every cell whose centre lies inside the circle
// Circles smaller than a cell still paint the cell holding their centre
func (r *TerminalRenderer) fillDisc(centre vmath.Vec2, radius float64, glyph rune, style tcell.Style) {
	v := r.viewport
	x0, y0 := v.ToCell(vmath.V(centre.X-radius, centre.Y-radius))
	x1, y1 := v.ToCell(vmath.V(centre.X+radius, centre.Y+radius))

	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !v.Contains(x, y) {
				continue
			}
			if vmath.Dist(v.CellCenter(x, y), centre) <= radius {
				r.surface.SetContent(x, y, glyph, nil, style)
				painted = true
			}
		}
	}
	if !painted {
		if x, y := v.ToCell(centre); v.Contains(x, y) {
			r.surface.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawEntities(g *engine.Game) {
	for _, o := range g.Obstacles() {
		r.fillDisc(o.Position, o.Radius, '█', tcell.StyleDefault.Foreground(RgbObstacle).Background(RgbObstacle))
	}

	k := g.Goalkeeper()
	r.fillDisc(k.Position, k.Radius, '█', tcell.StyleDefault.Foreground(RgbKeeper).Background(RgbKeeper))

	r.drawShooter(g)

	b := g.Ball()
	bg := StripeColor(b.Position.Y, constants.StripeHeight)
	r.fillDisc(b.Position, b.Radius, '●', tcell.StyleDefault.Foreground(RgbBall).Background(bg))
}

// drawShooter draws the body row and a legs row; the right leg lifts while kicking
func (r *TerminalRenderer) drawShooter(g *engine.Game) {
	s := g.Shooter()
	v := r.viewport

	shirt := RgbShooter
	if s.Kicking() && s.KickFrames > 0 {
		shirt = KickColor(float64(s.Kick.Frame) / float64(s.KickFrames))
	}

	x0, y := v.ToCell(vmath.V(s.Left(), s.Position.Y))
	x1, _ := v.ToCell(vmath.V(s.Right(), s.Position.Y))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	body := tcell.StyleDefault.Background(shirt).Foreground(RgbLine)
	for x := x0; x < x1; x++ {
		if v.Contains(x, y) {
			r.surface.SetContent(x, y, ' ', nil, body)
		}
	}

	legY := y + 1
	if !v.Contains(x0, legY) {
		return
	}
	bg := StripeColor(s.Position.Y+s.Height, constants.StripeHeight)
	legs := tcell.StyleDefault.Background(bg).Foreground(RgbShooterLegs)
	span := x1 - x0
	left, right := x0+span/4, x1-1-span/4
	r.surface.SetContent(left, legY, '┃', nil, legs)
	if s.Kicking() {
		r.surface.SetContent(right, legY, '╱', nil, legs)
	} else {
		r.surface.SetContent(right, legY, '┃', nil, legs)
	}
}

func (r *TerminalRenderer) drawHUD(g *engine.Game, w, h int) {
	y := h - constants.HUDRows
	if y < 0 {
		return
	}
	style := tcell.StyleDefault.Background(RgbHUDBg).Foreground(RgbHUDText)

	score := fmt.Sprintf(" Score: %d", g.Score())
	lives := fmt.Sprintf("Lives: %d ", g.Lives())
	drawText(r.surface, 0, y, score, style)
	drawCentered(r.surface, w/2, y, g.Settings().Policy.String(), style.Dim(true))
	drawText(r.surface, w-len(lives), y, lives, style)
}

func (r *TerminalRenderer) drawStartScreen() {
	v := r.viewport
	cx := v.OffsetX + v.Cols/2
	cy := v.OffsetY + v.Rows/2
	style := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayTitle)

	drawCentered(r.surface, cx, cy-2, constants.TitleText, style.Bold(true))
	drawCentered(r.surface, cx, cy+1, constants.StartPromptText, style)
}

// drawOverlay centres a title and prompt lines over the field
func (r *TerminalRenderer) drawOverlay(title string, color tcell.Color, lines ...string) {
	v := r.viewport
	cx := v.OffsetX + v.Cols/2
	cy := v.OffsetY + v.Rows/2
	style := tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayTitle)

	drawCentered(r.surface, cx, cy-1, title, style.Foreground(color).Bold(true))
	for i, line := range lines {
		drawCentered(r.surface, cx, cy+1+i, line, style)
	}
}
