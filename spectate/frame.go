package spectate

import "github.com/lixenwraith/gravitor/engine"

// Frame is the JSON wire form of one snapshot
type Frame struct {
	Tick      uint64     `json:"tick"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	Score     uint64     `json:"score"`
	PanX      float64    `json:"panX"`
	PanY      float64    `json:"panY"`
	Planet    PlanetJSON `json:"planet"`
	Wells     []WellJSON `json:"wells"`
	Asteroids []BodyJSON `json:"asteroids"`
}

type PlanetJSON struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Radius      float64 `json:"r"`
	FieldRadius float64 `json:"fieldR"`
}

type WellJSON struct {
	ID     uint64  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	Open   bool    `json:"open"`
	Life   float64 `json:"life"`
}

type BodyJSON struct {
	ID     uint64  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Vx     float64 `json:"vx"`
	Vy     float64 `json:"vy"`
	Radius float64 `json:"r"`
}

// NewFrame converts a snapshot; slices are never nil so clients always see arrays
func NewFrame(snap *engine.Snapshot) Frame {
	f := Frame{
		Tick:   snap.Tick,
		Width:  snap.Width,
		Height: snap.Height,
		Score:  snap.Score,
		PanX:   snap.Pan.X,
		PanY:   snap.Pan.Y,
		Planet: PlanetJSON{
			X:           snap.Planet.Location.X,
			Y:           snap.Planet.Location.Y,
			Radius:      snap.Planet.Radius,
			FieldRadius: snap.Planet.FieldRadius,
		},
		Wells:     make([]WellJSON, 0, len(snap.Wells)),
		Asteroids: make([]BodyJSON, 0, len(snap.Asteroids)),
	}
	for _, w := range snap.Wells {
		f.Wells = append(f.Wells, WellJSON{
			ID: w.ID, X: w.Location.X, Y: w.Location.Y,
			Radius: w.Radius, Open: w.Open, Life: w.LifeFraction,
		})
	}
	for _, a := range snap.Asteroids {
		f.Asteroids = append(f.Asteroids, BodyJSON{
			ID: a.ID, X: a.Location.X, Y: a.Location.Y,
			Vx: a.Velocity.X, Vy: a.Velocity.Y, Radius: a.Radius,
		})
	}
	return f
}
