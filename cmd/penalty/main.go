package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/penalty-shootout/audio"
	"github.com/lixenwraith/penalty-shootout/config"
	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/engine"
	"github.com/lixenwraith/penalty-shootout/input"
	"github.com/lixenwraith/penalty-shootout/render"
)

var (
	configFlag = flag.String("config", "", "Path to YAML config file")
	policyFlag = flag.String("policy", "", "Rule preset: penalty, arcade, turn-based")
	seedFlag   = flag.Int64("seed", 0, "Obstacle layout seed (0 = random)")
	livesFlag  = flag.Int("lives", 0, "Starting lives (0 = config)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/penalty.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	fpsFlag    = flag.Int("fps", 0, "Frame rate (0 = ~60)")
)

// app owns the screen and the single loop that touches the game
type app struct {
	screen   tcell.Screen
	game     *engine.Game
	driver   *engine.Driver
	renderer *render.TerminalRenderer
	input    *input.Handler
	sounds   *audio.SoundManager
	muted    bool
	interval time.Duration
}

func newApp(cfg *config.Config, settings engine.Settings) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	game := engine.NewGame(settings, cfg.Rand())
	a := &app{
		screen:   screen,
		game:     game,
		driver:   engine.NewDriver(game),
		renderer: render.NewTerminalRenderer(screen),
		input:    input.NewHandler(),
		sounds:   audio.NewSoundManager(&cfg.Audio),
		interval: constants.FrameUpdateInterval,
	}
	if *fpsFlag > 0 {
		a.interval = time.Second / time.Duration(*fpsFlag)
	}

	// Non-fatal, game runs silent without a device
	if err := a.sounds.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	}
	return a, nil
}

// handleEvent applies one terminal event; returns false to quit
func (a *app) handleEvent(ev tcell.Event) bool {
	it := a.input.HandleEvent(ev)
	switch it.Type {
	case input.IntentQuit:
		return false
	case input.IntentResize:
		a.screen.Sync()
	case input.IntentToggleMute:
		a.muted = !a.muted
		log.Printf("mute=%t", a.muted)
	case input.IntentBegin, input.IntentRestart, input.IntentTogglePause:
		a.game.KeyPress(it.Key)
	case input.IntentPointer:
		if p, ok := a.renderer.Viewport().ToWorld(it.X, it.Y); ok {
			a.game.PointerPress(p.X, p.Y)
		}
	}
	a.driver.Sync()
	return true
}

// frame advances the simulation, dispatches events and redraws
func (a *app) frame() {
	a.driver.Tick(a.input.FrameInput())

	events := a.game.DrainEvents()
	for _, ev := range events {
		log.Printf("event=%s frame=%d score=%d lives=%d", ev.Type, ev.Frame, ev.Score, ev.Lives)
	}
	if !a.muted {
		a.sounds.HandleEvents(events)
	}

	a.renderer.RenderFrame(a.game)
	a.screen.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.frame()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			a.frame()
		}
	}
}

func (a *app) cleanup() {
	a.sounds.Cleanup()
	a.screen.Fini()
}

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Resolve(*configFlag, os.Getenv, config.Overrides{
		Policy: *policyFlag,
		Seed:   *seedFlag,
		Lives:  *livesFlag,
		Mute:   *muteFlag,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	settings, err := cfg.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("Starting policy=%s lives=%d seed=%d", settings.Policy, settings.Lives, cfg.Rules.Seed)

	a, err := newApp(cfg, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			fmt.Fprintf(os.Stderr, "\nPENALTY CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer a.cleanup()

	a.run()
	log.Printf("Exit score=%d lives=%d frames=%d", a.game.Score(), a.game.Lives(), a.game.Frame())
}
