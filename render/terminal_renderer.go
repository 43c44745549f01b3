package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/engine"
	"github.com/lixenwraith/gravitor/parameter"
	"github.com/lixenwraith/gravitor/vmath"
)

const (
	planetRune   = '●'
	fieldRune    = '·'
	wellRune     = '░'
	asteroidRune = '◆'
)

// TerminalRenderer draws snapshots onto a tcell screen
// The whole simulation area is stretched across the screen; cells are not square
type TerminalRenderer struct {
	screen    tcell.Screen
	palette   *Palette
	simWidth  float64
	simHeight float64
	maxSpeed  float64
	status    string
}

// NewTerminalRenderer creates a renderer for a simWidth x simHeight simulation
func NewTerminalRenderer(screen tcell.Screen, palette *Palette, simWidth, simHeight, maxSpeed float64) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		palette:   palette,
		simWidth:  simWidth,
		simHeight: simHeight,
		maxSpeed:  maxSpeed,
	}
}

// Viewport maps the current screen size onto view space
func (r *TerminalRenderer) Viewport() core.Viewport {
	cols, rows := r.screen.Size()
	return core.Viewport{Cols: cols, Rows: rows, Width: r.simWidth, Height: r.simHeight}
}

// SetStatus sets the text shown after the score; empty clears it
func (r *TerminalRenderer) SetStatus(status string) {
	r.status = status
}

// RenderFrame renders the entire frame
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot) {
	defaultStyle := r.palette.Style(RgbScore)
	r.screen.Fill(' ', defaultStyle)

	vp := r.Viewport()
	if !vp.Valid() {
		r.screen.Show()
		return
	}

	// Back to front: field ring, planet, wells, asteroids, text
	planet := snap.Planet
	r.drawRing(vp, planet.FieldLocation.Add(snap.Pan), planet.FieldRadius, fieldRune, r.palette.Style(RgbPlanetField))
	r.drawDisk(vp, planet.Location.Add(snap.Pan), planet.Radius, planetRune, r.palette.Style(RgbPlanet).Bold(true))

	for _, w := range snap.Wells {
		r.drawDisk(vp, w.Location.Add(snap.Pan), w.Radius, wellRune, r.palette.Well(w.Open, w.LifeFraction))
	}

	for _, a := range snap.Asteroids {
		style := r.palette.Asteroid(a.Velocity.Length(), r.maxSpeed)
		r.drawDisk(vp, a.Location.Add(snap.Pan), a.Radius, asteroidRune, style)
	}

	r.drawStatusLine(snap.Score, defaultStyle)
	r.screen.Show()
}

// drawDisk fills every cell whose center lies inside the circle
// The cell holding the center is always drawn so small bodies stay visible
func (r *TerminalRenderer) drawDisk(vp core.Viewport, center vmath.Point, radius float64, ch rune, style tcell.Style) {
	minCol, minRow, maxCol, maxRow := r.cellBounds(vp, center, radius)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if vp.CellToView(col, row).DistanceTo(center) <= radius {
				r.setCell(vp, col, row, ch, style)
			}
		}
	}
	col, row := vp.ViewToCell(center)
	r.setCell(vp, col, row, ch, style)
}

// drawRing marks cells whose center lies within half a cell of the circle edge
func (r *TerminalRenderer) drawRing(vp core.Viewport, center vmath.Point, radius float64, ch rune, style tcell.Style) {
	sx, sy := vp.CellSize()
	tolerance := math.Max(sx, sy) / 2
	minCol, minRow, maxCol, maxRow := r.cellBounds(vp, center, radius+tolerance)
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			d := vp.CellToView(col, row).DistanceTo(center)
			if math.Abs(d-radius) <= tolerance {
				r.setCell(vp, col, row, ch, style)
			}
		}
	}
}

// cellBounds returns the on-screen cell range covering a circle's bounding box
func (r *TerminalRenderer) cellBounds(vp core.Viewport, center vmath.Point, radius float64) (minCol, minRow, maxCol, maxRow int) {
	minCol, minRow = vp.ViewToCell(vmath.NewPoint(center.X-radius, center.Y-radius))
	maxCol, maxRow = vp.ViewToCell(vmath.NewPoint(center.X+radius, center.Y+radius))
	return max(minCol, 0), max(minRow, 0), min(maxCol, vp.Cols-1), min(maxRow, vp.Rows-1)
}

func (r *TerminalRenderer) setCell(vp core.Viewport, col, row int, ch rune, style tcell.Style) {
	if vp.Contains(col, row) {
		r.screen.SetContent(col, row, ch, nil, style)
	}
}

// drawStatusLine writes the score and the optional status text
func (r *TerminalRenderer) drawStatusLine(score uint64, style tcell.Style) {
	text := fmt.Sprintf("Score: %d", score)
	x := r.drawText(parameter.ScoreOffsetX, parameter.ScoreOffsetY, text, style.Bold(true))
	if r.status != "" {
		r.drawText(x+2, parameter.ScoreOffsetY, r.status, r.palette.Style(RgbStatus))
	}
}

// drawText writes s left to right and returns the column after it
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	cols, rows := r.screen.Size()
	if y < 0 || y >= rows {
		return x
	}
	for _, ch := range s {
		if x >= 0 && x < cols {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x++
	}
	return x
}
