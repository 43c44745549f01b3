// Package asteroid spawns, tracks and retires the bodies falling through the field
package asteroid

import (
	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/physics"
	"github.com/lixenwraith/gravitor/vmath"
)

// Fate records why an asteroid left the simulation
type Fate uint8

const (
	FateAlive Fate = iota
	// FateCaptured hit the planet
	FateCaptured
	// FateWellCaptured was eaten by a gravity well (optional rule)
	FateWellCaptured
	// FateEscaped left the bounded area and kept going
	FateEscaped
)

func (f Fate) String() string {
	switch f {
	case FateAlive:
		return "Alive"
	case FateCaptured:
		return "Captured"
	case FateWellCaptured:
		return "WellCaptured"
	case FateEscaped:
		return "Escaped"
	default:
		return "Unknown"
	}
}

// Asteroid is a moving body pulled by every active source
type Asteroid struct {
	ID      uint64
	Kinetic core.Kinetic
	Radius  float64
	Fate    Fate
}

// New creates a live asteroid
func New(id uint64, at vmath.Point, velocity vmath.Vector, radius float64) *Asteroid {
	core.Assert(radius >= 0, "asteroid radius %v negative", radius)
	core.Assert(at.Finite(), "asteroid location %v not finite", at)
	return &Asteroid{
		ID: id,
		Kinetic: core.Kinetic{
			Position: at,
			Velocity: velocity,
		},
		Radius: radius,
	}
}

func (a *Asteroid) Location() vmath.Point  { return a.Kinetic.Position }
func (a *Asteroid) Velocity() vmath.Vector { return a.Kinetic.Velocity }
func (a *Asteroid) Speed() float64         { return a.Kinetic.Velocity.Length() }
func (a *Asteroid) Alive() bool            { return a.Fate == FateAlive }

// Touches reports whether the asteroid overlaps a circle, boundary contact included
func (a *Asteroid) Touches(center vmath.Point, radius float64) bool {
	return a.Kinetic.Position.DistanceTo(center) <= radius+a.Radius
}

// Bounds is the simulation rectangle [0, Width] x [0, Height] with an escape tolerance
type Bounds struct {
	Width, Height float64
	// Margin is how far past an edge a body may drift before it can escape
	Margin float64
}

// Escaped reports whether the asteroid is more than Margin outside the bounds on
// some axis and still moving away on that axis
func (b Bounds) Escaped(a *Asteroid) bool {
	p := a.Kinetic.Position
	v := a.Kinetic.Velocity

	switch {
	case p.X < -b.Margin && physics.Receding(v.X, -1):
		return true
	case p.X > b.Width+b.Margin && physics.Receding(v.X, 1):
		return true
	case p.Y < -b.Margin && physics.Receding(v.Y, -1):
		return true
	case p.Y > b.Height+b.Margin && physics.Receding(v.Y, 1):
		return true
	}
	return false
}

// Contains reports whether p lies inside the bounds, edges included
func (b Bounds) Contains(p vmath.Point) bool {
	return p.X >= 0 && p.X <= b.Width && p.Y >= 0 && p.Y <= b.Height
}
