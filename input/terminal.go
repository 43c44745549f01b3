package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravitor/core"
)

// TerminalGestures feeds tcell mouse events into Gestures
// The primary button acts as the finger: press, drag with it held, release
type TerminalGestures struct {
	*Gestures
	viewport func() core.Viewport
}

// NewTerminalGestures maps cells to view space through the viewport returned by viewport,
// queried per event so resizes apply immediately
func NewTerminalGestures(target Target, viewport func() core.Viewport) *TerminalGestures {
	return &TerminalGestures{
		Gestures: NewGestures(target),
		viewport: viewport,
	}
}

// MouseMask is the tcell mouse reporting the terminal front end needs
const MouseMask = tcell.MouseButtonEvents | tcell.MouseDragEvents

// HandleMouse applies one mouse event
func (t *TerminalGestures) HandleMouse(ev *tcell.EventMouse) {
	vp := t.viewport()
	if !vp.Valid() {
		return
	}
	col, row := ev.Position()
	at := vp.CellToView(col, row)

	primary := ev.Buttons()&tcell.Button1 != 0
	switch {
	case primary && !t.Down():
		t.Press(at)
	case primary:
		t.Move(at)
	case t.Down():
		t.Move(at)
		t.Release()
	}
}
