package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/gravitor/audio"
	"github.com/lixenwraith/gravitor/config"
	"github.com/lixenwraith/gravitor/engine"
	"github.com/lixenwraith/gravitor/input"
	"github.com/lixenwraith/gravitor/render"
	"github.com/lixenwraith/gravitor/vmath"
)

var (
	configFlag = flag.String("config", "", "TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Simulation seed, overrides config")
)

// gui adapts the game to ebiten; the scheduler ticks the game, ebiten only draws and reads input
type gui struct {
	game      *engine.Game
	scheduler *engine.ClockScheduler
	gestures  *input.Gestures
	sound     *audio.SoundManager
	maxSpeed  float64
	width     int
	height    int

	snap    engine.Snapshot
	touchID ebiten.TouchID
	touched bool
}

func main() {
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gravitor-gui: %v\n", err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			settings.Simulation.Seed = *seedFlag
		}
	})

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.LogLevel()})
	logger := slog.New(handler)

	cfg := settings.Engine()
	game, err := engine.NewGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gravitor-gui: %v\n", err)
		os.Exit(2)
	}

	g := &gui{
		game:     game,
		gestures: input.NewGestures(game),
		maxSpeed: cfg.MaxSpeed,
		width:    int(cfg.Width),
		height:   int(cfg.Height),
	}

	if settings.Audio.Enabled {
		sound := audio.NewSoundManager(settings.Audio.Volume, logger)
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without", "error", err)
		} else {
			defer sound.Cleanup()
			game.AddHandler(sound)
			g.sound = sound
		}
	}

	g.scheduler, _ = engine.NewClockScheduler(game, settings.TickInterval(), logger)
	g.scheduler.Start()
	defer g.scheduler.Stop()

	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("Gravitor")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("run failed", "error", err)
	}
}

func (g *gui) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.scheduler.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		if g.sound != nil {
			g.sound.ToggleMute()
		}
	}

	g.updatePointer()
	return nil
}

// updatePointer feeds the first touch, or the left mouse button, into the gesture tracker
// Layout maps the window onto the simulation area, so cursor positions are already view space
func (g *gui) updatePointer() {
	if !g.touched {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			g.touchID, g.touched = ids[0], true
			x, y := ebiten.TouchPosition(g.touchID)
			g.gestures.Press(viewPoint(x, y))
			return
		}
	} else {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.gestures.Release()
			g.touched = false
			return
		}
		x, y := ebiten.TouchPosition(g.touchID)
		g.gestures.Move(viewPoint(x, y))
		return
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.gestures.Press(viewPoint(x, y))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.gestures.Move(viewPoint(x, y))
		g.gestures.Release()
	case g.gestures.Down():
		g.gestures.Move(viewPoint(x, y))
	}
}

func viewPoint(x, y int) vmath.Point {
	return vmath.NewPoint(float64(x), float64(y))
}

func (g *gui) Draw(screen *ebiten.Image) {
	g.game.SnapshotInto(&g.snap)
	s := &g.snap
	pan := s.Pan

	screen.Fill(render.RgbBackground)

	field := s.Planet.FieldLocation.Add(pan)
	vector.StrokeCircle(screen, float32(field.X), float32(field.Y), float32(s.Planet.FieldRadius), 1, render.RgbPlanetField, true)
	planet := s.Planet.Location.Add(pan)
	vector.DrawFilledCircle(screen, float32(planet.X), float32(planet.Y), float32(s.Planet.Radius), render.RgbPlanet, true)

	for _, w := range s.Wells {
		p := w.Location.Add(pan)
		c := wellColor(w)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(w.Radius), c, true)
		if w.Open {
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(w.Radius), 2, render.RgbWellOpen, true)
		}
	}

	for _, a := range s.Asteroids {
		p := a.Location.Add(pan)
		t := vmath.Clamp(a.Velocity.Length()/g.maxSpeed, 0, 1)
		c := render.RgbAsteroidSlow.BlendHcl(render.RgbAsteroidFast, t).Clamped()
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(a.Radius), c, true)
	}

	status := fmt.Sprintf("Score: %d  Tick: %d", s.Score, s.Tick)
	if g.scheduler.IsPaused() {
		status += "  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, 10)
}

// wellColor fades a closed well's fill with its remaining lifetime
func wellColor(w engine.WellView) color.Color {
	c := render.RgbWellFading.BlendLab(render.RgbWellOpen, vmath.Clamp(w.LifeFraction, 0, 1)).Clamped()
	r, gr, b := c.RGB255()
	alpha := uint8(90)
	if !w.Open {
		alpha = uint8(30 + 60*vmath.Clamp(w.LifeFraction, 0, 1))
	}
	return color.NRGBA{R: r, G: gr, B: b, A: alpha}
}

// Layout keeps a fixed logical size equal to the simulation area
func (g *gui) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
