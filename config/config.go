// Package config loads game settings from a TOML file, a .env file and GRAVITOR_* environment variables
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/gravitor/engine"
	"github.com/lixenwraith/gravitor/parameter"
)

// ErrInvalid is wrapped by every validation failure outside the engine's own checks
var ErrInvalid = errors.New("invalid configuration")

// Settings is the full configuration of a gravitor process
// Every key is optional; a missing key keeps its default
type Settings struct {
	Simulation SimulationSection `toml:"simulation"`
	Planet     PlanetSection     `toml:"planet"`
	Wells      WellsSection      `toml:"wells"`
	Asteroids  AsteroidsSection  `toml:"asteroids"`
	Spawn      SpawnSection      `toml:"spawn"`
	Scoring    ScoringSection    `toml:"scoring"`
	View       ViewSection       `toml:"view"`
	Loop       LoopSection       `toml:"loop"`
	Audio      AudioSection      `toml:"audio"`
	Log        LogSection        `toml:"log"`
	Spectate   SpectateSection   `toml:"spectate"`
}

type SimulationSection struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Seed   uint64  `toml:"seed"`
}

type PlanetSection struct {
	Radius      float64 `toml:"radius"`
	FieldRadius float64 `toml:"field_radius"`
	Strength    float64 `toml:"strength"`
}

type WellsSection struct {
	GrowthPerTick     float64 `toml:"growth_per_tick"`
	MaxRadius         float64 `toml:"max_radius"`
	StrengthPerRadius float64 `toml:"strength_per_radius"`
	LifetimeTicks     int     `toml:"lifetime_ticks"`
	MaxWells          int     `toml:"max_wells"`
}

type AsteroidsSection struct {
	Radius           float64 `toml:"radius"`
	MaxSpeed         float64 `toml:"max_speed"`
	MinClampDistance float64 `toml:"min_clamp_distance"`
	EscapeMargin     float64 `toml:"escape_margin"`
}

type SpawnSection struct {
	IntervalTicks int     `toml:"interval_ticks"`
	JitterTicks   int     `toml:"jitter_ticks"`
	MaxAsteroids  int     `toml:"max_asteroids"`
	SpeedMin      float64 `toml:"speed_min"`
	SpeedMax      float64 `toml:"speed_max"`
	AimSpread     float64 `toml:"aim_spread"`
}

type ScoringSection struct {
	CaptureReward      uint64 `toml:"capture_reward"`
	WellCaptureEnabled bool   `toml:"well_capture"`
	WellCaptureReward  uint64 `toml:"well_capture_reward"`
}

type ViewSection struct {
	PanRange           float64 `toml:"pan_range"`
	ForceCloseDistance float64 `toml:"force_close_distance"`
	// Color selects the truecolor palette; false falls back to the 256-color approximation
	Color bool `toml:"color"`
}

type LoopSection struct {
	// TickRate is ticks per wall-clock second
	TickRate int `toml:"tick_rate"`
	// TimeStep is simulated seconds per tick, 0 derives it from TickRate
	TimeStep float64 `toml:"time_step"`
}

type AudioSection struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogSection struct {
	// Level is debug, info, warn or error
	Level string `toml:"level"`
	// Format is text or json
	Format string `toml:"format"`
}

type SpectateSection struct {
	// Addr enables the spectator feed when non-empty, e.g. "127.0.0.1:8090"
	Addr           string   `toml:"addr"`
	AllowedOrigins []string `toml:"allowed_origins"`
	FPS            float64  `toml:"fps"`
}

// Default returns the stock settings
func Default() *Settings {
	ec := engine.DefaultConfig()
	return &Settings{
		Simulation: SimulationSection{
			Width:  ec.Width,
			Height: ec.Height,
			Seed:   ec.Seed,
		},
		Planet: PlanetSection{
			Radius:      ec.PlanetRadius,
			FieldRadius: ec.PlanetFieldRadius,
			Strength:    ec.PlanetStrength,
		},
		Wells: WellsSection{
			GrowthPerTick:     ec.Wells.GrowthPerTick,
			MaxRadius:         ec.Wells.MaxRadius,
			StrengthPerRadius: ec.Wells.StrengthPerRadius,
			LifetimeTicks:     ec.Wells.LifetimeTicks,
			MaxWells:          ec.Wells.MaxWells,
		},
		Asteroids: AsteroidsSection{
			Radius:           ec.Spawn.Radius,
			MaxSpeed:         ec.MaxSpeed,
			MinClampDistance: ec.MinClampDistance,
			EscapeMargin:     ec.EscapeMargin,
		},
		Spawn: SpawnSection{
			IntervalTicks: ec.Spawn.IntervalTicks,
			JitterTicks:   ec.Spawn.JitterTicks,
			MaxAsteroids:  ec.Spawn.MaxAsteroids,
			SpeedMin:      ec.Spawn.SpeedMin,
			SpeedMax:      ec.Spawn.SpeedMax,
			AimSpread:     ec.Spawn.AimSpread,
		},
		Scoring: ScoringSection{
			CaptureReward:      ec.CaptureReward,
			WellCaptureEnabled: ec.WellCaptureEnabled,
			WellCaptureReward:  ec.WellCaptureReward,
		},
		View: ViewSection{
			PanRange:           ec.PanRange,
			ForceCloseDistance: ec.ForceCloseDistance,
			Color:              true,
		},
		Loop: LoopSection{
			TickRate: parameter.TickRate,
		},
		Audio: AudioSection{
			Enabled: true,
			Volume:  parameter.AudioVolume,
		},
		Log: LogSection{
			Level:  "info",
			Format: "text",
		},
		Spectate: SpectateSection{
			FPS: parameter.SpectateFPS,
		},
	}
}

// Load builds settings from defaults, then the TOML file at path (skipped when empty),
// then the environment; the result is validated
func Load(path string) (*Settings, error) {
	s := Default()

	if path != "" {
		if err := s.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := s.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// decodeFile overlays the file onto s, rejecting keys that map to no setting
func (s *Settings) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	return nil
}

// LoadDotEnv reads .env from the working directory into the process environment
// A missing file is not an error; variables already set are not overridden
func LoadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// Environment overrides
const (
	EnvSeed        = "GRAVITOR_SEED"
	EnvTickRate    = "GRAVITOR_TICK_RATE"
	EnvWellCapture = "GRAVITOR_WELL_CAPTURE"
	EnvLogLevel    = "GRAVITOR_LOG_LEVEL"
	EnvAudio       = "GRAVITOR_AUDIO"
	EnvSpectate    = "GRAVITOR_SPECTATE"
)

// ApplyEnv overlays GRAVITOR_* variables found through lookup
func (s *Settings) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		s.Simulation.Seed = seed
	}
	if v, ok := lookup(EnvTickRate); ok {
		rate, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTickRate, err)
		}
		s.Loop.TickRate = rate
	}
	if v, ok := lookup(EnvWellCapture); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvWellCapture, err)
		}
		s.Scoring.WellCaptureEnabled = on
	}
	if v, ok := lookup(EnvLogLevel); ok {
		s.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvAudio); ok {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudio, err)
		}
		s.Audio.Enabled = on
	}
	if v, ok := lookup(EnvSpectate); ok {
		s.Spectate.Addr = v
	}
	return nil
}

// Validate checks the process settings and the engine config they produce
func (s *Settings) Validate() error {
	if s.Loop.TickRate <= 0 {
		return fmt.Errorf("%w: tick rate %d must be positive", ErrInvalid, s.Loop.TickRate)
	}
	if _, ok := parseLevel(s.Log.Level); !ok {
		return fmt.Errorf("%w: log level %q", ErrInvalid, s.Log.Level)
	}
	if s.Log.Format != "text" && s.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q", ErrInvalid, s.Log.Format)
	}
	if s.Spectate.Addr != "" && s.Spectate.FPS <= 0 {
		return fmt.Errorf("%w: spectate fps %v must be positive", ErrInvalid, s.Spectate.FPS)
	}
	if err := s.Engine().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Engine converts the settings into an engine configuration
func (s *Settings) Engine() engine.Config {
	cfg := engine.DefaultConfig()

	cfg.Width = s.Simulation.Width
	cfg.Height = s.Simulation.Height
	cfg.Seed = s.Simulation.Seed

	cfg.TickInterval = s.TickInterval()
	cfg.TimeStep = s.Loop.TimeStep
	if cfg.TimeStep == 0 && s.Loop.TickRate > 0 {
		cfg.TimeStep = 1 / float64(s.Loop.TickRate)
	}

	cfg.PlanetRadius = s.Planet.Radius
	cfg.PlanetFieldRadius = s.Planet.FieldRadius
	cfg.PlanetStrength = s.Planet.Strength

	cfg.MinClampDistance = s.Asteroids.MinClampDistance
	cfg.MaxSpeed = s.Asteroids.MaxSpeed
	cfg.EscapeMargin = s.Asteroids.EscapeMargin

	cfg.Wells.GrowthPerTick = s.Wells.GrowthPerTick
	cfg.Wells.MaxRadius = s.Wells.MaxRadius
	cfg.Wells.StrengthPerRadius = s.Wells.StrengthPerRadius
	cfg.Wells.LifetimeTicks = s.Wells.LifetimeTicks
	cfg.Wells.MaxWells = s.Wells.MaxWells

	cfg.Spawn.IntervalTicks = s.Spawn.IntervalTicks
	cfg.Spawn.JitterTicks = s.Spawn.JitterTicks
	cfg.Spawn.MaxAsteroids = s.Spawn.MaxAsteroids
	cfg.Spawn.Radius = s.Asteroids.Radius
	cfg.Spawn.SpeedMin = s.Spawn.SpeedMin
	cfg.Spawn.SpeedMax = s.Spawn.SpeedMax
	cfg.Spawn.AimSpread = s.Spawn.AimSpread

	cfg.CaptureReward = s.Scoring.CaptureReward
	cfg.WellCaptureEnabled = s.Scoring.WellCaptureEnabled
	cfg.WellCaptureReward = s.Scoring.WellCaptureReward

	cfg.PanRange = s.View.PanRange
	cfg.ForceCloseDistance = s.View.ForceCloseDistance
	return cfg
}

// TickInterval is the wall-clock tick period, 0 when the tick rate is unset
func (s *Settings) TickInterval() time.Duration {
	if s.Loop.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(s.Loop.TickRate)
}

// LogLevel maps the configured level name to slog; unknown names give Info
func (s *Settings) LogLevel() slog.Level {
	level, _ := parseLevel(s.Log.Level)
	return level
}

func parseLevel(name string) (slog.Level, bool) {
	switch name {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
