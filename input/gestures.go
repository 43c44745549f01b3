// Package input turns pointer gestures from a front end into Game placement and pan calls
package input

import "github.com/lixenwraith/gravitor/vmath"

// Target is the part of the Game a pointer drives
type Target interface {
	BeginPlacement(p vmath.Point) bool
	Drag(delta vmath.Vector) vmath.Vector
	EndPlacement() bool
	Pan() vmath.Vector
}

// Gestures tracks one pointer in view coordinates
// Press opens a well under the pointer, moves pan the view, release closes the well
// Not safe for concurrent use; each front end drives it from its input loop
type Gestures struct {
	target Target
	down   bool
	last   vmath.Point
}

func NewGestures(target Target) *Gestures {
	return &Gestures{target: target}
}

// Down reports whether the pointer is pressed
func (g *Gestures) Down() bool {
	return g.down
}

// Press starts a gesture at a view point and returns whether a well opened
func (g *Gestures) Press(view vmath.Point) bool {
	g.down = true
	g.last = view
	return g.target.BeginPlacement(g.ToSim(view))
}

// Move drags by the pointer displacement since the last event; ignored while released
func (g *Gestures) Move(view vmath.Point) {
	if !g.down {
		return
	}
	delta := vmath.Between(g.last, view)
	g.last = view
	if delta.IsZero() {
		return
	}
	g.target.Drag(delta)
}

// Release ends the gesture and returns whether a well was closed
func (g *Gestures) Release() bool {
	if !g.down {
		return false
	}
	g.down = false
	return g.target.EndPlacement()
}

// ToSim removes the current pan offset from a view point
func (g *Gestures) ToSim(view vmath.Point) vmath.Point {
	return view.Sub(g.target.Pan())
}
