package core

import (
	"math"

	"github.com/lixenwraith/gravitor/vmath"
)

// Viewport maps a grid of terminal cells onto a view-space rectangle
// View space is simulation space shifted by the pan offset
type Viewport struct {
	Cols, Rows    int
	Width, Height float64
}

// Valid reports whether the viewport has a usable area
func (v Viewport) Valid() bool {
	return v.Cols > 0 && v.Rows > 0 && v.Width > 0 && v.Height > 0
}

// CellSize returns the view units covered by one cell on each axis
func (v Viewport) CellSize() (float64, float64) {
	return v.Width / float64(v.Cols), v.Height / float64(v.Rows)
}

// CellToView returns the view point at the center of a cell
func (v Viewport) CellToView(col, row int) vmath.Point {
	sx, sy := v.CellSize()
	return vmath.NewPoint((float64(col)+0.5)*sx, (float64(row)+0.5)*sy)
}

// ViewToCell returns the cell containing p; the result may lie outside the grid
func (v Viewport) ViewToCell(p vmath.Point) (int, int) {
	sx, sy := v.CellSize()
	return int(math.Floor(p.X / sx)), int(math.Floor(p.Y / sy))
}

// Contains reports whether a cell lies inside the grid
func (v Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}
