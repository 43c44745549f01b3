package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/engine"
	"github.com/lixenwraith/gravitor/vmath"
)

// MockTarget records calls and keeps a pan offset without clamping
type MockTarget struct {
	begins []vmath.Point
	drags  []vmath.Vector
	ends   int
	pan    vmath.Vector
	open   bool
}

func (m *MockTarget) BeginPlacement(p vmath.Point) bool {
	m.begins = append(m.begins, p)
	if m.open {
		return false
	}
	m.open = true
	return true
}

func (m *MockTarget) Drag(d vmath.Vector) vmath.Vector {
	m.drags = append(m.drags, d)
	m.pan = m.pan.Add(d)
	return d
}

func (m *MockTarget) EndPlacement() bool {
	m.ends++
	was := m.open
	m.open = false
	return was
}

func (m *MockTarget) Pan() vmath.Vector { return m.pan }

func TestGestureSequence(t *testing.T) {
	m := &MockTarget{}
	g := NewGestures(m)

	if !g.Press(vmath.NewPoint(100, 100)) {
		t.Fatal("Press did not open")
	}
	g.Move(vmath.NewPoint(103, 104))
	g.Move(vmath.NewPoint(103, 104))
	if !g.Release() {
		t.Error("Release did not close")
	}

	if len(m.drags) != 1 || m.drags[0] != vmath.NewVector(3, 4) {
		t.Errorf("drags = %v, want [(3, 4)]", m.drags)
	}
	if m.ends != 1 {
		t.Errorf("EndPlacement called %d times", m.ends)
	}
}

func TestGestureTranslatesPan(t *testing.T) {
	m := &MockTarget{pan: vmath.NewVector(20, -10)}
	g := NewGestures(m)

	g.Press(vmath.NewPoint(100, 100))
	if want := vmath.NewPoint(80, 110); m.begins[0] != want {
		t.Errorf("placement at %v, want %v", m.begins[0], want)
	}
}

func TestGestureIgnoresMoveWhileUp(t *testing.T) {
	m := &MockTarget{}
	g := NewGestures(m)

	g.Move(vmath.NewPoint(50, 50))
	if g.Release() {
		t.Error("Release without Press returned true")
	}
	if len(m.drags) != 0 || m.ends != 0 {
		t.Errorf("idle pointer reached target: %d drags, %d ends", len(m.drags), m.ends)
	}
}

func TestGesturesDriveGame(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Spawn.IntervalTicks = 0
	game := engine.MustNewGame(cfg, nil)
	g := NewGestures(game)

	g.Press(vmath.NewPoint(200, 200))
	// A swipe past the force-close distance pans and finalizes the well
	g.Move(vmath.NewPoint(230, 240))
	g.Press(vmath.NewPoint(300, 300))
	g.Release()

	s := game.Snapshot()
	if len(s.Wells) != 2 {
		t.Fatalf("%d wells, want 2", len(s.Wells))
	}
	if s.Wells[0].Location != vmath.NewPoint(200, 200) {
		t.Errorf("first well at %v", s.Wells[0].Location)
	}
	// Second press happened after a (30, 40) pan
	if s.Wells[1].Location != vmath.NewPoint(270, 260) {
		t.Errorf("second well at %v, want (270, 260)", s.Wells[1].Location)
	}
	if s.Wells[0].Open || s.Wells[1].Open {
		t.Error("wells left open after release")
	}
}

func TestTerminalGestures(t *testing.T) {
	m := &MockTarget{}
	vp := core.Viewport{Cols: 80, Rows: 24, Width: 800, Height: 600}
	tg := NewTerminalGestures(m, func() core.Viewport { return vp })

	tg.HandleMouse(tcell.NewEventMouse(10, 4, tcell.Button1, tcell.ModNone))
	tg.HandleMouse(tcell.NewEventMouse(12, 4, tcell.Button1, tcell.ModNone))
	tg.HandleMouse(tcell.NewEventMouse(12, 4, tcell.ButtonNone, tcell.ModNone))

	if len(m.begins) != 1 || m.begins[0] != vp.CellToView(10, 4) {
		t.Errorf("begins = %v", m.begins)
	}
	if len(m.drags) != 1 || m.drags[0] != vmath.NewVector(20, 0) {
		t.Errorf("drags = %v, want [(20, 0)]", m.drags)
	}
	if m.ends != 1 {
		t.Errorf("ends = %d, want 1", m.ends)
	}

	// Motion with no button held is ignored
	tg.HandleMouse(tcell.NewEventMouse(30, 10, tcell.ButtonNone, tcell.ModNone))
	if len(m.begins) != 1 || len(m.drags) != 1 || m.ends != 1 {
		t.Error("hover reached target")
	}
}

func TestTerminalGesturesZeroViewport(t *testing.T) {
	m := &MockTarget{}
	tg := NewTerminalGestures(m, func() core.Viewport { return core.Viewport{} })
	tg.HandleMouse(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	if len(m.begins) != 0 {
		t.Error("event applied with an empty viewport")
	}
}
