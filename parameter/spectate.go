package parameter

import "time"

// Spectator feed
const (
	// SpectatePath is the websocket endpoint serving snapshot frames
	SpectatePath = "/ws"

	// SpectateFPS caps frames per second sent to each spectator
	SpectateFPS = 15

	// SpectateWriteTimeout drops a spectator whose socket stops draining
	SpectateWriteTimeout = 2 * time.Second

	// SpectateReadHeaderTimeout bounds how long a connecting client may take to send its request headers
	SpectateReadHeaderTimeout = 5 * time.Second

	// SpectateShutdownTimeout bounds the graceful HTTP shutdown after cancellation
	SpectateShutdownTimeout = 3 * time.Second

	// SpectateBuffer is the per-spectator frame queue; older frames are dropped when full
	SpectateBuffer = 4
)
