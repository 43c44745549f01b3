package engine

import (
	"log/slog"

	"github.com/lixenwraith/gravitor/vmath"
)

// EventType identifies an outcome reported by the Game
type EventType uint8

const (
	EventAsteroidSpawned EventType = iota
	EventAsteroidCaptured
	EventAsteroidWellCaptured
	EventAsteroidEscaped
	EventWellOpened
	EventWellClosed
	EventWellExpired
)

func (t EventType) String() string {
	switch t {
	case EventAsteroidSpawned:
		return "AsteroidSpawned"
	case EventAsteroidCaptured:
		return "AsteroidCaptured"
	case EventAsteroidWellCaptured:
		return "AsteroidWellCaptured"
	case EventAsteroidEscaped:
		return "AsteroidEscaped"
	case EventWellOpened:
		return "WellOpened"
	case EventWellClosed:
		return "WellClosed"
	case EventWellExpired:
		return "WellExpired"
	default:
		return "Unknown"
	}
}

// Event is a value copy of something that happened inside the Game
// Zero IDs mean the field does not apply to the event type
type Event struct {
	Type       EventType
	Tick       uint64
	AsteroidID uint64
	WellID     uint64
	Location   vmath.Point
	Reward     uint64
	Score      uint64
}

// LogValue renders the event as a structured group
func (e Event) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", e.Type.String()),
		slog.Uint64("tick", e.Tick),
	}
	if e.AsteroidID != 0 {
		attrs = append(attrs, slog.Uint64("asteroid", e.AsteroidID))
	}
	if e.WellID != 0 {
		attrs = append(attrs, slog.Uint64("well", e.WellID))
	}
	if e.Reward != 0 {
		attrs = append(attrs, slog.Uint64("reward", e.Reward), slog.Uint64("score", e.Score))
	}
	return slog.GroupValue(attrs...)
}

// Handler receives Game events
// Called synchronously after the Game lock is released, in production order;
// handlers may read the Game but must return quickly. A handler dispatched from Step runs on
// the scheduler goroutine and must use ClockScheduler.RequestStop, never Stop
type Handler interface {
	HandleEvent(ev Event)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ev Event)

func (f HandlerFunc) HandleEvent(ev Event) { f(ev) }
