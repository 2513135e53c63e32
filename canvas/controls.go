package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Controls is the per-frame input the canvas game polls
type Controls interface {
	// Direction is -1, 0 or 1 from held movement keys
	Direction() int
	// Pressed returns command keys pressed this frame as lower-case runes
	Pressed() []rune
	// Pointer returns the cursor position if the left button went down this frame
	Pointer() (x, y int, ok bool)
	// Quit reports whether Escape was pressed this frame
	Quit() bool
}

var commandKeys = map[ebiten.Key]rune{
	ebiten.KeySpace: ' ',
	ebiten.KeyR:     'r',
	ebiten.KeyP:     'p',
	ebiten.KeyM:     'm',
}

// ebitenControls reads keyboard and mouse state from ebiten
type ebitenControls struct{}

func (ebitenControls) Direction() int {
	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	switch {
	case left && !right:
		return -1
	case right && !left:
		return 1
	}
	return 0
}

func (ebitenControls) Pressed() []rune {
	var out []rune
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if r, ok := commandKeys[k]; ok {
			out = append(out, r)
		}
	}
	return out
}

func (ebitenControls) Pointer() (int, int, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := ebiten.CursorPosition()
	return x, y, true
}

func (ebitenControls) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
