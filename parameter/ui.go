package parameter

// View panning
const (
	// PanRange bounds the pan offset on each axis to [-PanRange, PanRange]
	PanRange = 500.0

	// ForceCloseDistance is the single-drag displacement that finalizes the open well
	ForceCloseDistance = 10.0
)

// Terminal layout
const (
	// ScoreOffsetX and ScoreOffsetY place the score relative to the view origin, in cells
	ScoreOffsetX = 2
	ScoreOffsetY = 1
)
