package gravity

import (
	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/vmath"
)

// WellStatus is the lifecycle stage of a well: Open -> Closed -> Removed
type WellStatus uint8

const (
	// WellOpen is being drawn: the finger is still down and the well grows
	WellOpen WellStatus = iota
	// WellClosed is finalized and counting down its lifetime
	WellClosed
	// WellRemoved has expired and no longer pulls
	WellRemoved
)

func (s WellStatus) String() string {
	switch s {
	case WellOpen:
		return "Open"
	case WellClosed:
		return "Closed"
	case WellRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// WellConfig holds the tunables shared by every well of a Game
type WellConfig struct {
	GrowthPerTick     float64 // Radius gained per tick while open
	MaxRadius         float64 // Radius cap while open
	StrengthPerRadius float64 // Strength = StrengthPerRadius * radius
	LifetimeTicks     int     // Ticks a closed well lives before removal
	MaxWells          int     // Cap on non-removed wells, 0 = unlimited
}

// Well is a transient player-drawn gravity source
type Well struct {
	id                uint64
	location          vmath.Point
	radius            float64
	closeRadius       float64
	strengthPerRadius float64
	status            WellStatus
	age               int
	remaining         int
	lifetime          int
}

func newWell(id uint64, location vmath.Point, strengthPerRadius float64) *Well {
	core.Assert(location.Finite(), "well location %v not finite", location)
	return &Well{
		id:                id,
		location:          location,
		strengthPerRadius: strengthPerRadius,
		status:            WellOpen,
	}
}

func (w *Well) ID() uint64             { return w.id }
func (w *Well) Location() vmath.Point  { return w.location }
func (w *Well) Radius() float64        { return w.radius }
func (w *Well) Status() WellStatus     { return w.status }
func (w *Well) Age() int               { return w.age }
func (w *Well) RemainingLifetime() int { return w.remaining }
func (w *Well) Strength() float64      { return w.strengthPerRadius * w.radius }
func (w *Well) Active() bool           { return w.status != WellRemoved }
func (w *Well) IsOpen() bool           { return w.status == WellOpen }

// LifeFraction is 1 while open and falls toward 0 as a closed well expires
func (w *Well) LifeFraction() float64 {
	switch w.status {
	case WellOpen:
		return 1
	case WellClosed:
		if w.lifetime <= 0 {
			return 0
		}
		return float64(w.remaining) / float64(w.lifetime)
	default:
		return 0
	}
}

// close finalizes an open well, returns false for any other status
func (w *Well) close(lifetime int) bool {
	if w.status != WellOpen {
		return false
	}
	w.status = WellClosed
	w.lifetime = lifetime
	w.remaining = lifetime
	w.closeRadius = w.radius
	return true
}

// advance ages the well by one tick, returns true when it expired on this tick
func (w *Well) advance(cfg *WellConfig) bool {
	switch w.status {
	case WellOpen:
		w.age++
		w.radius += cfg.GrowthPerTick
		if w.radius > cfg.MaxRadius {
			w.radius = cfg.MaxRadius
		}
	case WellClosed:
		w.age++
		w.remaining--
		if w.remaining <= 0 {
			w.remaining = 0
			w.radius = 0
			w.status = WellRemoved
			return true
		}
		w.radius = w.closeRadius * float64(w.remaining) / float64(w.lifetime)
	}
	return false
}
