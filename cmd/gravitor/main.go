package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gravitor/audio"
	"github.com/lixenwraith/gravitor/config"
	"github.com/lixenwraith/gravitor/core"
	"github.com/lixenwraith/gravitor/engine"
	"github.com/lixenwraith/gravitor/input"
	"github.com/lixenwraith/gravitor/parameter"
	"github.com/lixenwraith/gravitor/render"
	"github.com/lixenwraith/gravitor/spectate"
)

var (
	configFlag   = flag.String("config", "", "TOML config file")
	debugFlag    = flag.Bool("debug", false, "Write logs to "+parameter.LogDir+"/"+parameter.LogFileName)
	seedFlag     = flag.Uint64("seed", 0, "Simulation seed, overrides config")
	colorFlag    = flag.String("color", "auto", "Color mode: auto, truecolor, 256")
	spectateFlag = flag.String("spectate", "", "Serve the spectator feed on this address, overrides config")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gravitor: %v\n", err)
		return 2
	}
	applyFlags(settings)
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "gravitor: %v\n", err)
		return 2
	}

	logger, logFile := setupLogging(*debugFlag, settings.LogLevel(), settings.Log.Format)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := settings.Engine()
	game, err := engine.NewGame(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gravitor: %v\n", err)
		return 2
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Restore the terminal before reporting a panic from any core.Go goroutine
	core.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGRAVITOR CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse(input.MouseMask)
	screen.HideCursor()

	palette := render.NewPalette(trueColor(settings.View.Color, screen))
	renderer := render.NewTerminalRenderer(screen, palette, cfg.Width, cfg.Height, cfg.MaxSpeed)
	gestures := input.NewTerminalGestures(game, renderer.Viewport)
	keys := input.DefaultKeyTable()

	game.AddHandler(engine.HandlerFunc(func(ev engine.Event) {
		logger.Debug("game event", "event", ev)
	}))

	var sound *audio.SoundManager
	if settings.Audio.Enabled {
		sound = audio.NewSoundManager(settings.Audio.Volume, logger)
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without", "error", err)
			sound = nil
		} else {
			defer sound.Cleanup()
			game.AddHandler(sound)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var spectators *spectate.Server
	if settings.Spectate.Addr != "" {
		spectators = spectate.NewServer(settings.Spectate.AllowedOrigins, settings.Spectate.FPS, logger)
		addr := settings.Spectate.Addr
		core.Go(func() {
			if err := spectators.ListenAndServe(ctx, addr); err != nil {
				logger.Error("spectate server failed", "addr", addr, "error", err)
			}
		})
	}

	scheduler, updateDone := engine.NewClockScheduler(game, settings.TickInterval(), logger)
	scheduler.Start()
	defer scheduler.Stop()

	logger.Info("gravitor started",
		"seed", cfg.Seed,
		"tick", settings.TickInterval(),
		"audio", sound != nil,
		"spectate", settings.Spectate.Addr,
	)

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.FrameUpdateInterval)
	defer frameTicker.Stop()

	var snap engine.Snapshot
	dirty := true

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.Lookup(ev) {
				case input.IntentQuit:
					logger.Info("quit", "tick", game.Tick(), "score", game.Score())
					return 0
				case input.IntentPause:
					scheduler.TogglePause()
				case input.IntentReset:
					game.Reset()
				case input.IntentToggleMute:
					if sound != nil {
						sound.ToggleMute()
					}
				}
			case *tcell.EventMouse:
				gestures.HandleMouse(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
			dirty = true

		case <-updateDone:
			dirty = true

		case <-frameTicker.C:
			if !dirty {
				continue
			}
			game.SnapshotInto(&snap)
			renderer.SetStatus(statusText(scheduler.IsPaused(), sound))
			renderer.RenderFrame(&snap)
			if spectators != nil {
				spectators.Publish(&snap)
			}
			dirty = false
		}
	}
}

// applyFlags overlays explicitly set flags onto the loaded settings
func applyFlags(s *config.Settings) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			s.Simulation.Seed = *seedFlag
		case "spectate":
			s.Spectate.Addr = *spectateFlag
		case "color":
			switch *colorFlag {
			case "256":
				s.View.Color = false
			case "truecolor", "true", "24bit":
				s.View.Color = true
			}
		}
	})
}

// trueColor reports whether blended colors go out as RGB; auto mode defers to the terminal
func trueColor(enabled bool, screen tcell.Screen) bool {
	if !enabled {
		return false
	}
	if *colorFlag == "auto" {
		return screen.Colors() > 256
	}
	return true
}

func statusText(paused bool, sound *audio.SoundManager) string {
	switch {
	case paused:
		return "PAUSED"
	case sound != nil && sound.IsMuted():
		return "MUTED"
	default:
		return ""
	}
}
