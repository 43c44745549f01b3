package parameter

// Asteroids
const (
	AsteroidRadius = 6.0

	SpawnIntervalTicks = 45
	SpawnJitterTicks   = 30
	MaxAsteroids       = 24

	SpawnSpeedMin = 40.0
	SpawnSpeedMax = 90.0

	// SpawnAimSpread is the radius around the planet that spawns aim at
	SpawnAimSpread = 150.0

	// EscapeMargin is how far past an edge an asteroid may drift and still come back
	EscapeMargin = 40.0
)

// Scoring
const (
	CaptureReward     = 10
	WellCaptureReward = 2
)
