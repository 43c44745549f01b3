package core

import "github.com/lixenwraith/gravitor/vmath"

// Kinetic is the integrable motion state of a body
type Kinetic struct {
	// Position in simulation units
	Position vmath.Point
	// Velocity in units per second
	Velocity vmath.Vector
	// Accel is the acceleration accumulated for the current tick, units per second squared
	Accel vmath.Vector
}
