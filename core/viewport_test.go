package core

import (
	"testing"

	"github.com/lixenwraith/gravitor/vmath"
)

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 24, Width: 800, Height: 600}
	if !v.Valid() {
		t.Fatal("viewport should be valid")
	}

	for _, cell := range [][2]int{{0, 0}, {79, 23}, {40, 12}} {
		p := v.CellToView(cell[0], cell[1])
		col, row := v.ViewToCell(p)
		if col != cell[0] || row != cell[1] {
			t.Errorf("cell %v -> %v -> (%d, %d)", cell, p, col, row)
		}
	}
}

func TestViewportCellCenter(t *testing.T) {
	v := Viewport{Cols: 80, Rows: 24, Width: 800, Height: 600}
	if p := v.CellToView(0, 0); p != vmath.NewPoint(5, 12.5) {
		t.Errorf("CellToView(0, 0) = %v, want (5, 12.5)", p)
	}
}

func TestViewportOutside(t *testing.T) {
	v := Viewport{Cols: 10, Rows: 10, Width: 100, Height: 100}
	col, row := v.ViewToCell(vmath.NewPoint(-0.1, 100))
	if col != -1 || row != 10 {
		t.Errorf("ViewToCell = (%d, %d), want (-1, 10)", col, row)
	}
	if v.Contains(col, row) {
		t.Error("outside cell reported as contained")
	}
	if (Viewport{Cols: 0, Rows: 5, Width: 1, Height: 1}).Valid() {
		t.Error("zero-column viewport reported valid")
	}
}
