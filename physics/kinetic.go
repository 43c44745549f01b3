// Package physics integrates asteroid motion under the combined gravity field
package physics

import "github.com/lixenwraith/gravitor/core"

// Integrate performs a semi-implicit Euler step: v = v + a*dt; clamp |v|; p = p + v*dt
// The position update uses the new velocity, which keeps orbits from gaining energy
// Returns true if the speed cap was applied
func Integrate(k *core.Kinetic, dt, maxSpeed float64) bool {
	k.Velocity = k.Velocity.Add(k.Accel.Scale(dt))
	capped := CapSpeed(&k.Velocity, maxSpeed)
	k.Position = k.Position.Add(k.Velocity.Scale(dt))
	return capped
}
