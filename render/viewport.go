package render

import (
	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/vmath"
)

// Viewport maps field coordinates onto a grid of terminal cells
type Viewport struct {
	OffsetX, OffsetY int
	Cols, Rows       int
	// Field units per cell
	ScaleX, ScaleY float64
}

// NewViewport fits a field into a screen, leaving HUD rows free at the bottom
// Terminal cells are roughly twice as tall as wide, so rows are scaled by half
func NewViewport(screenW, screenH int, fieldW, fieldH float64) Viewport {
	availRows := screenH - constants.HUDRows
	if screenW < 1 || availRows < 1 {
		return Viewport{Cols: 0, Rows: 0, ScaleX: 1, ScaleY: 1}
	}

	// Keep aspect with cell height ~2x width
	cols := screenW
	rows := int(float64(cols) * fieldH / fieldW / 2)
	if rows > availRows {
		rows = availRows
		cols = int(float64(rows) * 2 * fieldW / fieldH)
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return Viewport{
		OffsetX: (screenW - cols) / 2,
		OffsetY: (availRows - rows) / 2,
		Cols:    cols,
		Rows:    rows,
		ScaleX:  fieldW / float64(cols),
		ScaleY:  fieldH / float64(rows),
	}
}

// ToCell returns the screen cell containing field point p
func (v Viewport) ToCell(p vmath.Vec2) (x, y int) {
	return v.OffsetX + int(p.X/v.ScaleX), v.OffsetY + int(p.Y/v.ScaleY)
}

// CellCenter returns the field point at the centre of screen cell (x, y)
func (v Viewport) CellCenter(x, y int) vmath.Vec2 {
	return vmath.V(
		(float64(x-v.OffsetX)+0.5)*v.ScaleX,
		(float64(y-v.OffsetY)+0.5)*v.ScaleY,
	)
}

// ToWorld converts a screen cell to a field point; false outside the field
func (v Viewport) ToWorld(x, y int) (vmath.Vec2, bool) {
	if !v.Contains(x, y) {
		return vmath.Vec2{}, false
	}
	return v.CellCenter(x, y), true
}

// Contains reports whether screen cell (x, y) lies on the field
func (v Viewport) Contains(x, y int) bool {
	return x >= v.OffsetX && x < v.OffsetX+v.Cols && y >= v.OffsetY && y < v.OffsetY+v.Rows
}
