package parameter

// Planet
const (
	PlanetRadius      = 40.0
	PlanetFieldRadius = 120.0
	// PlanetStrength is the acceleration at unit distance (units^3/s^2)
	PlanetStrength = 120000.0
)

// Force law and integration
const (
	// MinClampDistance floors the force-law clamp for sources with radius 0
	MinClampDistance = 8.0

	// MaxSpeed bounds asteroid speed (units/s) so a close pass cannot fling a body across the field in one tick
	MaxSpeed = 400.0
)

// Gravity wells
const (
	WellGrowthPerTick     = 1.5
	WellMaxRadius         = 60.0
	WellStrengthPerRadius = 2500.0
	// WellLifetimeTicks is how long a closed well lingers (5s at 30 ticks/s)
	WellLifetimeTicks = 150
	MaxWells          = 8
)
