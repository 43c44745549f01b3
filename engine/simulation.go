package engine

import (
	"github.com/lixenwraith/gravitor/asteroid"
	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/gravity"
	"github.com/lixenwraith/gravitor/physics"
)

// advance runs one tick, requires the write lock
// Order: forces, integration, retirement, well maintenance, spawning
func (g *Game) advance() {
	g.tick++

	g.accumulateForces()
	g.integrate()
	g.retire()
	g.maintainWells()
	g.spawn()

	if core.AssertionsEnabled {
		g.checkInvariants()
	}
}

// accumulateForces freezes the planet and the active wells, in creation order,
// and samples the combined field at every asteroid
func (g *Game) accumulateForces() {
	g.sources = append(g.sources[:0], g.planet)
	g.sources = g.wells.AppendSources(g.sources)
	g.field.Load(g.sources)

	for _, a := range g.asteroids.Live() {
		a.Kinetic.Accel = g.field.AccelerationAt(a.Location())
	}
}

func (g *Game) integrate() {
	for _, a := range g.asteroids.Live() {
		physics.Integrate(&a.Kinetic, g.cfg.TimeStep, g.cfg.MaxSpeed)
	}
}

// retire marks captured and escaped asteroids, scores them, then sweeps them out
// Planet capture takes precedence over well capture, which takes precedence over escape
func (g *Game) retire() {
	for _, a := range g.asteroids.Live() {
		if a.Touches(g.planet.Location(), g.planet.Radius()) {
			a.Fate = asteroid.FateCaptured
			g.score += g.cfg.CaptureReward
			g.logger.Debug("asteroid captured", "asteroid", a.ID, "score", g.score)
			g.emit(Event{
				Type:       EventAsteroidCaptured,
				AsteroidID: a.ID,
				Location:   a.Location(),
				Reward:     g.cfg.CaptureReward,
			})
			continue
		}

		if g.cfg.WellCaptureEnabled {
			if w := g.capturingWell(a); w != nil {
				a.Fate = asteroid.FateWellCaptured
				g.score += g.cfg.WellCaptureReward
				g.logger.Debug("asteroid captured by well", "asteroid", a.ID, "well", w.ID(), "score", g.score)
				g.emit(Event{
					Type:       EventAsteroidWellCaptured,
					AsteroidID: a.ID,
					WellID:     w.ID(),
					Location:   a.Location(),
					Reward:     g.cfg.WellCaptureReward,
				})
				continue
			}
		}

		if g.bounds.Escaped(a) {
			a.Fate = asteroid.FateEscaped
			g.emit(Event{Type: EventAsteroidEscaped, AsteroidID: a.ID, Location: a.Location()})
		}
	}
	g.asteroids.Sweep()
}

// capturingWell returns the first active well, in creation order, touching a
func (g *Game) capturingWell(a *asteroid.Asteroid) *gravity.Well {
	for _, w := range g.wells.All() {
		if w.Active() && a.Touches(w.Location(), w.Radius()) {
			return w
		}
	}
	return nil
}

func (g *Game) maintainWells() {
	for _, w := range g.wells.Advance() {
		g.logger.Debug("well expired", "well", w.ID())
		g.emit(Event{Type: EventWellExpired, WellID: w.ID(), Location: w.Location()})
	}
	g.wells.Prune()
}

func (g *Game) spawn() {
	if a, ok := g.asteroids.Tick(); ok {
		g.emit(Event{Type: EventAsteroidSpawned, AsteroidID: a.ID, Location: a.Location()})
	}
}

func (g *Game) checkInvariants() {
	core.Assert(g.wells.OpenCount() <= 1, "tick %d: %d open wells", g.tick, g.wells.OpenCount())
	for _, a := range g.asteroids.Live() {
		core.Assert(a.Alive(), "tick %d: retired asteroid %d still live", g.tick, a.ID)
		core.Assert(a.Speed() <= g.cfg.MaxSpeed, "tick %d: asteroid %d speed %v over cap", g.tick, a.ID, a.Speed())
		core.Assert(a.Location().Finite(), "tick %d: asteroid %d at %v", g.tick, a.ID, a.Location())
	}
}
