package engine

import "github.com/lixenwraith/gravitor/vmath"

// Snapshot is a consistent copy of the Game between two ticks
// Holds no references into the Game; safe to keep and read from any goroutine
type Snapshot struct {
	Tick          uint64
	Width, Height float64

	Planet    PlanetView
	Wells     []WellView
	Asteroids []AsteroidView

	Score uint64
	Pan   vmath.Vector
}

type PlanetView struct {
	Location      vmath.Point
	Radius        float64
	FieldLocation vmath.Point
	FieldRadius   float64
}

type WellView struct {
	ID       uint64
	Location vmath.Point
	Radius   float64
	Open     bool
	// LifeFraction is 1 while open, then falls to 0 at expiry
	LifeFraction float64
}

type AsteroidView struct {
	ID       uint64
	Location vmath.Point
	Velocity vmath.Vector
	Radius   float64
}

// Snapshot copies the current state under the read lock
func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snapshotLocked(Snapshot{})
}

// SnapshotInto fills dst, reusing its slices, and returns it
// Render loops call this once per frame to avoid reallocating
func (g *Game) SnapshotInto(dst *Snapshot) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	*dst = g.snapshotLocked(*dst)
}

func (g *Game) snapshotLocked(s Snapshot) Snapshot {
	s.Tick = g.tick
	s.Width, s.Height = g.cfg.Width, g.cfg.Height
	s.Score = g.score
	s.Pan = g.pan

	s.Planet = PlanetView{
		Location:      g.planet.Location(),
		Radius:        g.planet.Radius(),
		FieldLocation: g.planet.Location(),
		FieldRadius:   g.planet.FieldRadius(),
	}

	s.Wells = s.Wells[:0]
	for _, w := range g.wells.All() {
		if !w.Active() {
			continue
		}
		s.Wells = append(s.Wells, WellView{
			ID:           w.ID(),
			Location:     w.Location(),
			Radius:       w.Radius(),
			Open:         w.IsOpen(),
			LifeFraction: w.LifeFraction(),
		})
	}

	s.Asteroids = s.Asteroids[:0]
	for _, a := range g.asteroids.Live() {
		s.Asteroids = append(s.Asteroids, AsteroidView{
			ID:       a.ID,
			Location: a.Location(),
			Velocity: a.Velocity(),
			Radius:   a.Radius,
		})
	}
	return s
}
