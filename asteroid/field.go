package asteroid

import (
	"math"

	"github.com/lixenwraith/gravitor/vmath"
)

// SpawnConfig controls how the field is populated
type SpawnConfig struct {
	IntervalTicks int     // Ticks between spawns, <= 0 disables spawning
	JitterTicks   int     // Extra random delay in [0, JitterTicks] added per spawn
	MaxAsteroids  int     // Live cap, 0 = unlimited
	Radius        float64 // Radius of every spawned asteroid
	SpeedMin      float64
	SpeedMax      float64
	AimSpread     float64 // Aim point is a random point this close to the target
}

// Field owns the live asteroid set in spawn order
// Not safe for concurrent use, the owning Game serializes access
type Field struct {
	cfg       SpawnConfig
	bounds    Bounds
	target    vmath.Point
	rng       *vmath.FastRand
	list      []*Asteroid
	nextID    uint64
	countdown int
}

// NewField creates an empty field whose spawns aim at target
func NewField(cfg SpawnConfig, bounds Bounds, target vmath.Point, rng *vmath.FastRand) *Field {
	return &Field{
		cfg:       cfg,
		bounds:    bounds,
		target:    target,
		rng:       rng,
		list:      make([]*Asteroid, 0, max(cfg.MaxAsteroids, 16)),
		nextID:    1,
		countdown: cfg.IntervalTicks,
	}
}

// Tick advances the spawn timer and spawns when it elapses
// A spawn due while the field is full waits for room
func (f *Field) Tick() (*Asteroid, bool) {
	if f.cfg.IntervalTicks <= 0 {
		return nil, false
	}
	if f.countdown > 0 {
		f.countdown--
	}
	if f.countdown > 0 {
		return nil, false
	}
	if f.cfg.MaxAsteroids > 0 && len(f.list) >= f.cfg.MaxAsteroids {
		return nil, false
	}

	a := f.Spawn()
	f.countdown = f.cfg.IntervalTicks
	if f.cfg.JitterTicks > 0 {
		f.countdown += f.rng.Intn(f.cfg.JitterTicks + 1)
	}
	return a, true
}

// Spawn places a new asteroid on a random edge heading inward
func (f *Field) Spawn() *Asteroid {
	at := f.edgePoint()
	aim := f.aimPoint()

	dir := vmath.Between(at, aim)
	speed := f.rng.Range(f.cfg.SpeedMin, f.cfg.SpeedMax)
	var vel vmath.Vector
	if l := dir.Length(); l > 0 {
		vel = dir.Scale(speed / l)
	}

	a := New(f.nextID, at, vel, f.cfg.Radius)
	f.nextID++
	f.list = append(f.list, a)
	return a
}

// Add inserts an externally built asteroid, assigning it the next ID
func (f *Field) Add(at vmath.Point, velocity vmath.Vector, radius float64) *Asteroid {
	a := New(f.nextID, at, velocity, radius)
	f.nextID++
	f.list = append(f.list, a)
	return a
}

// Live returns the live asteroids in spawn order
// The slice is owned by the field and valid until the next mutation
func (f *Field) Live() []*Asteroid {
	return f.list
}

// Len returns the live count
func (f *Field) Len() int {
	return len(f.list)
}

// Sweep drops retired asteroids, preserving order, and returns how many were dropped
func (f *Field) Sweep() int {
	kept := f.list[:0]
	for _, a := range f.list {
		if a.Alive() {
			kept = append(kept, a)
		}
	}
	dropped := len(f.list) - len(kept)
	clear(f.list[len(kept):])
	f.list = kept
	return dropped
}

// Reset drops every asteroid and restarts the spawn timer
func (f *Field) Reset() {
	clear(f.list)
	f.list = f.list[:0]
	f.nextID = 1
	f.countdown = f.cfg.IntervalTicks
}

// edgePoint picks a point on one of the four edges
func (f *Field) edgePoint() vmath.Point {
	w, h := f.bounds.Width, f.bounds.Height
	switch f.rng.Intn(4) {
	case 0:
		return vmath.NewPoint(f.rng.Range(0, w), 0)
	case 1:
		return vmath.NewPoint(w, f.rng.Range(0, h))
	case 2:
		return vmath.NewPoint(f.rng.Range(0, w), h)
	default:
		return vmath.NewPoint(0, f.rng.Range(0, h))
	}
}

// aimPoint is strictly inside the bounds, so the heading from any edge point
// has an inward component across that edge
func (f *Field) aimPoint() vmath.Point {
	angle := f.rng.Angle()
	r := f.cfg.AimSpread * math.Sqrt(f.rng.Float64())
	p := f.target.Add(vmath.NewVector(r*math.Cos(angle), r*math.Sin(angle)))

	const inset = 1.0
	return vmath.NewPoint(
		vmath.Clamp(p.X, inset, f.bounds.Width-inset),
		vmath.Clamp(p.Y, inset, f.bounds.Height-inset),
	)
}
