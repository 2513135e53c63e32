package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/penalty-shootout/audio"
	"github.com/lixenwraith/penalty-shootout/canvas"
	"github.com/lixenwraith/penalty-shootout/config"
	"github.com/lixenwraith/penalty-shootout/constants"
	"github.com/lixenwraith/penalty-shootout/engine"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	policy := flag.String("policy", "", "Rule preset: penalty, arcade, turn-based")
	seed := flag.Int64("seed", 0, "Obstacle layout seed (0 = random)")
	mute := flag.Bool("mute", false, "Disable audio")
	verbose := flag.Bool("v", false, "Log game events to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Resolve(*configPath, os.Getenv, config.Overrides{Policy: *policy, Seed: *seed, Mute: *mute})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	settings, err := cfg.Settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	sounds := audio.NewSoundManager(&cfg.Audio)
	if err := sounds.Initialize(); err != nil {
		log.Printf("Audio unavailable: %v (continuing without audio)", err)
	}
	defer sounds.Cleanup()

	g := canvas.NewGame(engine.NewGame(settings, cfg.Rand()), sounds)
	if err := g.Run(constants.TitleText); err != nil {
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}
