package parameter

// Log file
const (
	LogDir      = "logs"
	LogFileName = "gravitor.log"

	// MaxLogSize triggers rotation of the existing log file at startup
	MaxLogSize = 10 * 1024 * 1024
)
