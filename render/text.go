package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s from (x, y), advancing by display width; returns the end column
func drawText(s Surface, x, y int, text string, style tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return x
	}
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x >= 0 && x+rw <= w {
			s.SetContent(x, y, r, nil, style)
		}
		x += rw
	}
	return x
}

// drawCentered writes text centred on column cx
func drawCentered(s Surface, cx, y int, text string, style tcell.Style) {
	drawText(s, cx-runewidth.StringWidth(text)/2, y, text, style)
}
