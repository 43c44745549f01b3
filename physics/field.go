package physics

import (
	"gonum.org/v1/gonum/spatial/barneshut"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/gravitor/gravity"
	"github.com/lixenwraith/gravitor/vmath"
)

// exactTheta disables the Barnes-Hut approximation: with a handful of sources the
// plane iterates its particles directly, in load order, which keeps runs reproducible
const exactTheta = 0

// Field is the combined gravity of the planet and the wells for one tick
// Reused across ticks to avoid reallocating the particle set
type Field struct {
	plane       barneshut.Plane
	attractors  []attractor
	particles   []barneshut.Particle2
	minDistance float64
}

// attractor is a source frozen for the duration of a tick
type attractor struct {
	at       r2.Vec
	strength float64
	clamp    float64
}

func (a *attractor) Coord2() r2.Vec { return a.at }
func (a *attractor) Mass() float64  { return a.strength }

// probe is a unit-mass test body, so the returned force is an acceleration
type probe struct {
	at r2.Vec
}

func (p probe) Coord2() r2.Vec { return p.at }
func (p probe) Mass() float64  { return 1 }

// NewField creates an empty field
// minDistance floors the clamp distance for sources whose radius is still 0
func NewField(minDistance float64) *Field {
	return &Field{minDistance: minDistance}
}

// Load replaces the attracting set with the active sources, preserving their order
func (f *Field) Load(sources []gravity.Source) {
	f.attractors = f.attractors[:0]
	for _, s := range sources {
		if !s.Active() {
			continue
		}
		f.attractors = append(f.attractors, attractor{
			at:       s.Location().Coord2(),
			strength: s.Strength(),
			clamp:    max(s.Radius(), f.minDistance),
		})
	}

	// Pointers are taken only after the backing array stops growing
	f.particles = f.particles[:0]
	for i := range f.attractors {
		f.particles = append(f.particles, &f.attractors[i])
	}
	f.plane.Particles = f.particles
}

// Len returns the number of attracting sources loaded
func (f *Field) Len() int {
	return len(f.attractors)
}

// AccelerationAt sums the pull of every loaded source on a body at p
func (f *Field) AccelerationAt(p vmath.Point) vmath.Vector {
	if len(f.particles) == 0 {
		return vmath.Vector{}
	}
	a := f.plane.ForceOn(probe{at: p.Coord2()}, exactTheta, f.pull)
	return vmath.NewVector(a.X, a.Y)
}

// pull is an inverse-square attraction toward p2 with the distance clamped to the
// source's radius so a body passing through a source never sees an unbounded force
func (f *Field) pull(_, p2 barneshut.Particle2, m1, m2 float64, v r2.Vec) r2.Vec {
	d := r2.Norm(v)
	if d == 0 {
		return r2.Vec{}
	}

	clamp := f.minDistance
	if a, ok := p2.(*attractor); ok {
		clamp = a.clamp
	}
	dc := max(d, clamp)

	magnitude := m1 * m2 / (dc * dc)
	return r2.Scale(magnitude/d, v)
}
