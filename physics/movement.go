package physics

import "github.com/lixenwraith/gravitor/vmath"

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vector, maxSpeed float64) bool {
	clamped, ok := vel.ClampLength(maxSpeed)
	if ok {
		*vel = clamped
	}
	return ok
}

// Receding reports whether motion along one axis carries a body further past a boundary
// side is -1 for the low boundary (0) and +1 for the high boundary
func Receding(velocityComponent float64, side int) bool {
	return velocityComponent*float64(side) > 0
}
