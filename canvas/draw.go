package canvas

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/engine"
)

var (
	colGrass    = color.RGBA{0, 120, 60, 255}
	colStripe   = color.RGBA{0, 100, 50, 255}
	colLine     = color.White
	colGoal     = color.RGBA{201, 147, 121, 255}
	colBall     = color.RGBA{255, 255, 0, 255}
	colObstacle = color.RGBA{5, 255, 0, 255}
	colKeeper   = color.Black
	colShirt    = color.RGBA{255, 0, 0, 255}
	colGameOver = color.RGBA{255, 100, 0, 255}
)

// glyph width of basicfont.Face7x13
const glyphW = 7

// Draw renders the current frame
func (c *Game) Draw(screen *ebiten.Image) {
	st := c.game.Settings()
	drawField(screen, st)

	switch c.game.State() {
	case engine.StateStart:
		drawCentered(screen, constants.TitleText, int(st.Width)/2, int(st.Height)/2-40, colLine)
		drawCentered(screen, constants.StartPromptText, int(st.Width)/2, int(st.Height)/2+20, colLine)
		return
	case engine.StateGameOver:
		drawCentered(screen, constants.GameOverText, int(st.Width)/2, int(st.Height)/2, colGameOver)
		drawCentered(screen, constants.RestartPrompt, int(st.Width)/2, int(st.Height)/2+50, colLine)
		return
	}

	drawEntities(screen, c.game)
	drawHUD(screen, c.game)

	if c.game.State() == engine.StatePaused {
		drawCentered(screen, constants.PausedText, int(st.Width)/2, int(st.Height)/2, colLine)
		drawCentered(screen, constants.ResumePromptText, int(st.Width)/2, int(st.Height)/2+30, colLine)
	}
}

func drawField(screen *ebiten.Image, st engine.Settings) {
	screen.Fill(colGrass)
	w, h := float32(st.Width), float32(st.Height)

	stripe := float32(constants.StripeHeight)
	for y := float32(0); y < h; y += 2 * stripe {
		vector.DrawFilledRect(screen, 0, y, w, stripe, colStripe, false)
	}

	vector.StrokeCircle(screen, w/2, h/2, constants.CenterCircleRadius, 5, colLine, true)
	vector.StrokeLine(screen, 0, h/2, w, h/2, 2, colLine, false)

	left, right := float32(st.GoalLeft), float32(st.GoalRight)
	box := float32(constants.PenaltyBoxDepth)
	vector.StrokeRect(screen, left, 0, right-left, box, 2, colLine, false)
	vector.StrokeRect(screen, left, h-box, right-left, box, 2, colLine, false)

	for _, y := range []float32{box - 40, h / 2, h - box + 40} {
		vector.DrawFilledCircle(screen, w/2, y, 2.5, colLine, true)
	}

	depth := float32(constants.GoalDepth)
	vector.DrawFilledRect(screen, left, 0, right-left, depth, colGoal, false)
	vector.DrawFilledRect(screen, left, h-depth, right-left, depth, colGoal, false)
}

func drawEntities(screen *ebiten.Image, g *engine.Game) {
	for _, o := range g.Obstacles() {
		vector.DrawFilledCircle(screen, float32(o.Position.X), float32(o.Position.Y), float32(o.Radius), colObstacle, true)
	}

	k := g.Goalkeeper()
	vector.DrawFilledCircle(screen, float32(k.Position.X), float32(k.Position.Y), float32(k.Radius), colKeeper, true)

	drawShooter(screen, g)

	b := g.Ball()
	vector.DrawFilledCircle(screen, float32(b.Position.X), float32(b.Position.Y), float32(b.Radius), colBall, true)
}

// drawShooter draws the striped body and legs; the right leg rises with the kick frame
func drawShooter(screen *ebiten.Image, g *engine.Game) {
	s := g.Shooter()
	x, y := float32(s.Position.X), float32(s.Top())
	w, h := float32(s.Width), float32(s.Height)

	for i := float32(0); i < w; i += 10 {
		c := color.Color(colShirt)
		if int(i/10)%2 == 1 {
			c = color.White
		}
		vector.DrawFilledRect(screen, x-w/2+i, y, 10, h, c, false)
	}

	legY := y + h
	vector.DrawFilledRect(screen, x-15, legY, 10, 20, color.Black, false)
	lift := float32(0)
	if s.Kicking() {
		lift = float32(10 - s.Kick.Frame)
	}
	vector.DrawFilledRect(screen, x+5, legY-lift, 10, 20, color.Black, false)
}

func drawHUD(screen *ebiten.Image, g *engine.Game) {
	st := g.Settings()
	text.Draw(screen, fmt.Sprintf("Score: %d", g.Score()), basicfont.Face7x13, int(st.Width)/4-50, 30, colLine)
	text.Draw(screen, fmt.Sprintf("Lives: %d", g.Lives()), basicfont.Face7x13, 3*int(st.Width)/4+20, 30, colLine)
}

func drawCentered(screen *ebiten.Image, s string, cx, y int, clr color.Color) {
	text.Draw(screen, s, basicfont.Face7x13, cx-len(s)*glyphW/2, y, clr)
}
