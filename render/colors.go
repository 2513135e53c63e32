package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Base palette as colorful values so shades can be blended in Lab space
var (
	grassBase    = colorful.Color{R: 0, G: 120.0 / 255, B: 60.0 / 255}
	grassStripe  = colorful.Color{R: 0, G: 100.0 / 255, B: 50.0 / 255}
	goalWood     = colorful.Color{R: 201.0 / 255, G: 147.0 / 255, B: 121.0 / 255}
	kickFlash    = colorful.Color{R: 1, G: 1, B: 200.0 / 255}
	shooterShirt = colorful.Color{R: 1, G: 0, B: 0}
)

// Resolved tcell colors
var (
	RgbGrass        = toTcell(grassBase)
	RgbGrassStripe  = toTcell(grassStripe)
	RgbLine         = tcell.NewRGBColor(255, 255, 255)
	RgbGoal         = toTcell(goalWood)
	RgbBall         = tcell.NewRGBColor(255, 255, 0)
	RgbObstacle     = tcell.NewRGBColor(5, 255, 0)
	RgbKeeper       = tcell.NewRGBColor(0, 0, 0)
	RgbShooter      = toTcell(shooterShirt)
	RgbShooterLegs  = tcell.NewRGBColor(0, 0, 0)
	RgbHUDText      = tcell.NewRGBColor(255, 255, 255)
	RgbHUDBg        = tcell.NewRGBColor(26, 27, 38)
	RgbOverlayTitle = tcell.NewRGBColor(255, 255, 255)
	RgbGameOver     = tcell.NewRGBColor(255, 100, 0)
	RgbOverlayBg    = tcell.NewRGBColor(0, 60, 30)
)

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// StripeColor returns the grass shade for a field row; bands alternate every stripe
func StripeColor(worldY, stripe float64) tcell.Color {
	if stripe <= 0 {
		return RgbGrass
	}
	if int(worldY/stripe)%2 == 0 {
		return RgbGrassStripe
	}
	return RgbGrass
}

// KickColor fades the shooter from flash back to shirt colour over a kick
// progress is 0 at kick start and 1 when the kick ends
func KickColor(progress float64) tcell.Color {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	return toTcell(kickFlash.BlendLab(shooterShirt, progress))
}
