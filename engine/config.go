package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/gravitor/asteroid"
	"github.com/lixenwraith/gravitor/gravity"
	"github.com/lixenwraith/gravitor/parameter"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds every tunable of a Game and its scheduler
type Config struct {
	// Simulation area, fixed for the lifetime of a Game
	Width, Height float64

	// TickInterval is the wall-clock period of the scheduler
	TickInterval time.Duration
	// TimeStep is the simulated seconds per tick, independent of wall time
	TimeStep float64
	// Seed drives spawn positions and headings
	Seed uint64

	PlanetRadius      float64
	PlanetFieldRadius float64
	PlanetStrength    float64

	MinClampDistance float64
	MaxSpeed         float64

	Wells        gravity.WellConfig
	Spawn        asteroid.SpawnConfig
	EscapeMargin float64

	CaptureReward uint64
	// WellCaptureEnabled lets wells eat asteroids for WellCaptureReward
	WellCaptureEnabled bool
	WellCaptureReward  uint64

	PanRange           float64
	ForceCloseDistance float64
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Width:             parameter.WorldWidth,
		Height:            parameter.WorldHeight,
		TickInterval:      parameter.GameUpdateInterval,
		TimeStep:          parameter.TimeStep,
		Seed:              parameter.DefaultSeed,
		PlanetRadius:      parameter.PlanetRadius,
		PlanetFieldRadius: parameter.PlanetFieldRadius,
		PlanetStrength:    parameter.PlanetStrength,
		MinClampDistance:  parameter.MinClampDistance,
		MaxSpeed:          parameter.MaxSpeed,
		Wells: gravity.WellConfig{
			GrowthPerTick:     parameter.WellGrowthPerTick,
			MaxRadius:         parameter.WellMaxRadius,
			StrengthPerRadius: parameter.WellStrengthPerRadius,
			LifetimeTicks:     parameter.WellLifetimeTicks,
			MaxWells:          parameter.MaxWells,
		},
		Spawn: asteroid.SpawnConfig{
			IntervalTicks: parameter.SpawnIntervalTicks,
			JitterTicks:   parameter.SpawnJitterTicks,
			MaxAsteroids:  parameter.MaxAsteroids,
			Radius:        parameter.AsteroidRadius,
			SpeedMin:      parameter.SpawnSpeedMin,
			SpeedMax:      parameter.SpawnSpeedMax,
			AimSpread:     parameter.SpawnAimSpread,
		},
		EscapeMargin:       parameter.EscapeMargin,
		CaptureReward:      parameter.CaptureReward,
		WellCaptureEnabled: false,
		WellCaptureReward:  parameter.WellCaptureReward,
		PanRange:           parameter.PanRange,
		ForceCloseDistance: parameter.ForceCloseDistance,
	}
}

// Validate reports the first inconsistent setting
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions %vx%v must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfig, c.TickInterval)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: time step %v must be positive", ErrInvalidConfig, c.TimeStep)
	case c.PlanetRadius < 0 || c.PlanetFieldRadius < 0:
		return fmt.Errorf("%w: planet radii must be non-negative", ErrInvalidConfig)
	case c.PlanetStrength < 0:
		return fmt.Errorf("%w: planet strength %v must be non-negative", ErrInvalidConfig, c.PlanetStrength)
	case c.MinClampDistance <= 0:
		return fmt.Errorf("%w: min clamp distance %v must be positive", ErrInvalidConfig, c.MinClampDistance)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed %v must be positive", ErrInvalidConfig, c.MaxSpeed)
	case c.Wells.GrowthPerTick < 0 || c.Wells.MaxRadius < 0 || c.Wells.StrengthPerRadius < 0:
		return fmt.Errorf("%w: well growth, radius and strength must be non-negative", ErrInvalidConfig)
	case c.Wells.LifetimeTicks < 0 || c.Wells.MaxWells < 0:
		return fmt.Errorf("%w: well lifetime and cap must be non-negative", ErrInvalidConfig)
	case c.Spawn.Radius < 0:
		return fmt.Errorf("%w: asteroid radius %v must be non-negative", ErrInvalidConfig, c.Spawn.Radius)
	case c.Spawn.SpeedMin < 0 || c.Spawn.SpeedMax < c.Spawn.SpeedMin:
		return fmt.Errorf("%w: spawn speed range [%v, %v] invalid", ErrInvalidConfig, c.Spawn.SpeedMin, c.Spawn.SpeedMax)
	case c.Spawn.SpeedMax > c.MaxSpeed:
		return fmt.Errorf("%w: spawn speed %v exceeds max speed %v", ErrInvalidConfig, c.Spawn.SpeedMax, c.MaxSpeed)
	case c.Spawn.JitterTicks < 0 || c.Spawn.MaxAsteroids < 0 || c.Spawn.AimSpread < 0:
		return fmt.Errorf("%w: spawn jitter, cap and spread must be non-negative", ErrInvalidConfig)
	case c.EscapeMargin < 0:
		return fmt.Errorf("%w: escape margin %v must be non-negative", ErrInvalidConfig, c.EscapeMargin)
	case c.PanRange < 0 || c.ForceCloseDistance < 0:
		return fmt.Errorf("%w: pan range and force-close distance must be non-negative", ErrInvalidConfig)
	}
	return nil
}
