package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/gravitor/engine"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultMatchesEngine(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}

	got := s.Engine()
	want := engine.DefaultConfig()
	if got != want {
		t.Errorf("Default().Engine() = %+v\nwant %+v", got, want)
	}
}

func TestLoadNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if s.Engine() != engine.DefaultConfig() {
		t.Error("Load without file or env differs from defaults")
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "gravitor.toml", `
[simulation]
width = 1024.0
seed = 7

[scoring]
well_capture = true
well_capture_reward = 5

[loop]
tick_rate = 60

[log]
level = "debug"
format = "json"
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	cfg := s.Engine()
	if cfg.Width != 1024 || cfg.Height != engine.DefaultConfig().Height {
		t.Errorf("dimensions = %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if !cfg.WellCaptureEnabled || cfg.WellCaptureReward != 5 {
		t.Errorf("well capture = %v/%d", cfg.WellCaptureEnabled, cfg.WellCaptureReward)
	}
	if cfg.TickInterval != time.Second/60 {
		t.Errorf("TickInterval = %v", cfg.TickInterval)
	}
	if cfg.TimeStep != 1.0/60 {
		t.Errorf("TimeStep = %v, want derived 1/60", cfg.TimeStep)
	}
	if s.LogLevel() != slog.LevelDebug || s.Log.Format != "json" {
		t.Errorf("log = %v/%s", s.LogLevel(), s.Log.Format)
	}
	if cfg.PlanetStrength != engine.DefaultConfig().PlanetStrength {
		t.Error("unset key lost its default")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"syntax", "[simulation\nwidth = 1", false},
		{"wrong type", "[simulation]\nwidth = \"wide\"", false},
		{"unknown key", "[planet]\nmass = 3.0", true},
		{"bad level", "[log]\nlevel = \"loud\"", true},
		{"bad format", "[log]\nformat = \"xml\"", true},
		{"zero tick rate", "[loop]\ntick_rate = 0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			path := writeFile(t, dir, "bad.toml", tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() = nil, want error")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadEngineValidation(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "fast.toml", "[spawn]\nspeed_max = 1000.0\n")

	_, err := Load(path)
	if !errors.Is(err, engine.ErrInvalidConfig) {
		t.Fatalf("Load() = %v, want engine.ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load("does-not-exist.toml"); err == nil {
		t.Fatal("Load() of missing file succeeded")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSeed:        "0x2a",
		EnvTickRate:    "20",
		EnvWellCapture: "true",
		EnvLogLevel:    "WARN",
		EnvAudio:       "0",
		EnvSpectate:    "127.0.0.1:9000",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	s := Default()
	if err := s.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() = %v", err)
	}
	if s.Simulation.Seed != 42 {
		t.Errorf("Seed = %d, want 42", s.Simulation.Seed)
	}
	if s.TickInterval() != 50*time.Millisecond {
		t.Errorf("TickInterval() = %v", s.TickInterval())
	}
	if !s.Scoring.WellCaptureEnabled {
		t.Error("well capture not enabled")
	}
	if s.LogLevel() != slog.LevelWarn {
		t.Errorf("LogLevel() = %v", s.LogLevel())
	}
	if s.Audio.Enabled {
		t.Error("audio still enabled")
	}
	if s.Spectate.Addr != "127.0.0.1:9000" {
		t.Errorf("Spectate.Addr = %q", s.Spectate.Addr)
	}
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	for _, key := range []string{EnvSeed, EnvTickRate, EnvWellCapture, EnvAudio} {
		t.Run(key, func(t *testing.T) {
			lookup := func(k string) (string, bool) {
				if k == key {
					return "not-a-value", true
				}
				return "", false
			}
			if err := Default().ApplyEnv(lookup); err == nil {
				t.Errorf("ApplyEnv accepted %s=not-a-value", key)
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, dir, ".env", EnvSeed+"=99\n")

	// godotenv never overrides, so the variable must start unset; Setenv restores it afterwards
	t.Setenv(EnvSeed, "")
	os.Unsetenv(EnvSeed)

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if s.Simulation.Seed != 99 {
		t.Errorf("Seed = %d, want 99 from .env", s.Simulation.Seed)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := writeFile(t, dir, "g.toml", "[simulation]\nseed = 1\n")
	t.Setenv(EnvSeed, "2")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if s.Simulation.Seed != 2 {
		t.Errorf("Seed = %d, want env value 2", s.Simulation.Seed)
	}
}
