package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickRate is the number of simulation ticks per second
	TickRate = 30

	// GameUpdateInterval is the game logic update interval (clock tick)
	GameUpdateInterval = time.Second / TickRate

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TimeStep is the simulated seconds advanced by one tick, decoupled from wall time
	TimeStep = 1.0 / TickRate

	// OverrunLogsPerSecond throttles tick overrun warnings
	OverrunLogsPerSecond = 1.0

	// OverrunLogBurst is the number of overrun warnings allowed back to back
	OverrunLogBurst = 3

	// DefaultSeed drives asteroid spawning when none is configured
	DefaultSeed = 0x9E3779B97F4A7C15
)

// World dimensions in simulation units
const (
	WorldWidth  = 800.0
	WorldHeight = 600.0
)
