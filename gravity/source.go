// Package gravity holds the attractors of the simulation: the fixed planet and
// the transient wells the player draws
package gravity

import "github.com/lixenwraith/gravitor/vmath"

// Source is anything that pulls asteroids toward itself
type Source interface {
	Location() vmath.Point
	// Radius is both the drawn size and the minimum distance used by the force law
	Radius() float64
	// Strength is the acceleration produced at unit distance
	Strength() float64
	Active() bool
}

// Planet is the permanent attractor at a fixed location
type Planet struct {
	location    vmath.Point
	radius      float64
	fieldRadius float64
	strength    float64
}

// NewPlanet creates a planet; fieldRadius is the drawn extent of its gravity field
func NewPlanet(location vmath.Point, radius, fieldRadius, strength float64) *Planet {
	return &Planet{
		location:    location,
		radius:      radius,
		fieldRadius: fieldRadius,
		strength:    strength,
	}
}

func (p *Planet) Location() vmath.Point { return p.location }
func (p *Planet) Radius() float64       { return p.radius }
func (p *Planet) Strength() float64     { return p.strength }

// Active is always true for a planet
func (p *Planet) Active() bool { return true }

// FieldRadius is the render-only radius of the planet's gravity field ring
func (p *Planet) FieldRadius() float64 { return p.fieldRadius }
