package engine

import (
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/lixenwraith/gravitor/asteroid"
	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/gravity"
	"github.com/lixenwraith/gravitor/physics"
	"github.com/lixenwraith/gravitor/vmath"
)

// Game is the aggregate root of one simulation: planet, wells, asteroids, score and pan
// Every mutation takes the write lock; Snapshot and the accessors take the read lock
// Events produced under the lock are dispatched to handlers after it is released
type Game struct {
	mu     sync.RWMutex
	cfg    Config
	logger *slog.Logger

	planet    *gravity.Planet
	wells     *gravity.Wells
	asteroids *asteroid.Field
	field     *physics.Field
	bounds    asteroid.Bounds
	rng       *vmath.FastRand

	tick  uint64
	score uint64
	pan   vmath.Vector

	// Reused per tick
	sources []gravity.Source

	pending  []Event
	handlers []Handler
}

// NewGame validates cfg and builds a Game with the planet at the center of the area
// A nil logger discards output
func NewGame(cfg Config, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	center := vmath.NewPoint(cfg.Width/2, cfg.Height/2)
	bounds := asteroid.Bounds{Width: cfg.Width, Height: cfg.Height, Margin: cfg.EscapeMargin}
	rng := vmath.NewFastRand(cfg.Seed)

	g := &Game{
		cfg:       cfg,
		logger:    logger.With("component", "engine"),
		planet:    gravity.NewPlanet(center, cfg.PlanetRadius, cfg.PlanetFieldRadius, cfg.PlanetStrength),
		wells:     gravity.NewWells(cfg.Wells),
		asteroids: asteroid.NewField(cfg.Spawn, bounds, center, rng),
		field:     physics.NewField(cfg.MinClampDistance),
		bounds:    bounds,
		rng:       rng,
		sources:   make([]gravity.Source, 0, 1+cfg.Wells.MaxWells),
	}
	return g, nil
}

// MustNewGame panics on an invalid config
func MustNewGame(cfg Config, logger *slog.Logger) *Game {
	g, err := NewGame(cfg, logger)
	if err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	return g
}

// AddHandler registers h for every subsequent event
func (g *Game) AddHandler(h Handler) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handlers = append(g.handlers, h)
}

// Step advances the simulation by one tick
func (g *Game) Step() {
	g.dispatch(g.step())
}

func (g *Game) step() ([]Handler, []Event) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.advance()
	return g.drain()
}

// BeginPlacement opens a well at p, given in simulation coordinates
// No-op returning false while another well is open or the well cap is reached
func (g *Game) BeginPlacement(p vmath.Point) bool {
	core.Assert(p.Finite(), "placement at non-finite point %v", p)
	opened, hs, evs := g.begin(p)
	g.dispatch(hs, evs)
	return opened
}

func (g *Game) begin(p vmath.Point) (bool, []Handler, []Event) {
	g.mu.Lock()
	defer g.mu.Unlock()

	w, ok := g.wells.OpenAt(p)
	if !ok {
		return false, nil, nil
	}
	g.logger.Debug("well opened", "well", w.ID(), "x", p.X, "y", p.Y)
	g.emit(Event{Type: EventWellOpened, WellID: w.ID(), Location: p})
	hs, evs := g.drain()
	return true, hs, evs
}

// EndPlacement closes the open well; no-op returning false if none is open
func (g *Game) EndPlacement() bool {
	closed, hs, evs := g.end()
	g.dispatch(hs, evs)
	return closed
}

func (g *Game) end() (bool, []Handler, []Event) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.closeOpenWell() {
		return false, nil, nil
	}
	hs, evs := g.drain()
	return true, hs, evs
}

// Drag applies a view pan of delta
// An axis whose accumulated pan would leave [-PanRange, PanRange] is zeroed, and a
// remaining displacement longer than ForceCloseDistance closes the open well
// Returns the displacement actually added to the pan offset
func (g *Game) Drag(delta vmath.Vector) vmath.Vector {
	applied, hs, evs := g.drag(delta)
	g.dispatch(hs, evs)
	return applied
}

func (g *Game) drag(delta vmath.Vector) (vmath.Vector, []Handler, []Event) {
	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.pan.Add(delta)
	if math.Abs(next.X) > g.cfg.PanRange {
		delta = delta.WithX(0)
	}
	if math.Abs(next.Y) > g.cfg.PanRange {
		delta = delta.WithY(0)
	}

	if delta.Length() > g.cfg.ForceCloseDistance {
		g.closeOpenWell()
	}
	g.pan = g.pan.Add(delta)

	hs, evs := g.drain()
	return delta, hs, evs
}

// closeOpenWell requires the write lock
func (g *Game) closeOpenWell() bool {
	w, ok := g.wells.CloseOpen()
	if !ok {
		return false
	}
	g.logger.Debug("well closed", "well", w.ID(), "radius", w.Radius())
	g.emit(Event{Type: EventWellClosed, WellID: w.ID(), Location: w.Location()})
	return true
}

// AddAsteroid places an asteroid directly, bypassing the spawner, and returns its ID
func (g *Game) AddAsteroid(at vmath.Point, velocity vmath.Vector, radius float64) uint64 {
	id, hs, evs := g.addAsteroid(at, velocity, radius)
	g.dispatch(hs, evs)
	return id
}

func (g *Game) addAsteroid(at vmath.Point, velocity vmath.Vector, radius float64) (uint64, []Handler, []Event) {
	g.mu.Lock()
	defer g.mu.Unlock()

	velocity, _ = velocity.ClampLength(g.cfg.MaxSpeed)
	a := g.asteroids.Add(at, velocity, radius)
	g.emit(Event{Type: EventAsteroidSpawned, AsteroidID: a.ID, Location: at})
	hs, evs := g.drain()
	return a.ID, hs, evs
}

// Reset starts a new game: entities, score, pan and tick return to their initial
// state and the spawner is reseeded, so a reset game replays like a fresh one
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.wells.Reset()
	g.rng.Seed(g.cfg.Seed)
	g.asteroids.Reset()
	g.tick = 0
	g.score = 0
	g.pan = vmath.Vector{}
	g.pending = g.pending[:0]
	g.logger.Info("game reset")
}

func (g *Game) Score() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.score
}

func (g *Game) Tick() uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.tick
}

func (g *Game) Pan() vmath.Vector {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.pan
}

// Config returns the configuration the Game was built with
func (g *Game) Config() Config {
	return g.cfg
}

// emit requires the write lock
func (g *Game) emit(ev Event) {
	ev.Tick = g.tick
	ev.Score = g.score
	g.pending = append(g.pending, ev)
}

// drain hands the buffered events and a copy of the handler list to the caller,
// requires the write lock
func (g *Game) drain() ([]Handler, []Event) {
	if len(g.pending) == 0 {
		return nil, nil
	}
	evs := g.pending
	g.pending = nil
	if len(g.handlers) == 0 {
		return nil, nil
	}
	hs := make([]Handler, len(g.handlers))
	copy(hs, g.handlers)
	return hs, evs
}

// dispatch runs without the lock so handlers may read the Game
func (g *Game) dispatch(hs []Handler, evs []Event) {
	for _, ev := range evs {
		for _, h := range hs {
			h.HandleEvent(ev)
		}
	}
}
