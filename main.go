package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"

	"fishcatch/internal/config"
	"fishcatch/internal/record"
)

func main() {
	configPath := flag.String("config", "fishcatch.ini", "path to the settings file")
	flag.Parse()

	// 1. Settings
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Spawn.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var store record.Store = record.NewMemoryStore(0)
	if cfg.Record.File != "" {
		store = record.NewFileStore(cfg.Record.File)
	}

	// 2. Window Setup
	ebiten.SetWindowSize(cfg.Field.Width*cfg.Window.Scale, cfg.Field.Height*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.Round.FPS)

	// 3. Initialize Game
	game := NewGame(cfg, store, rand.New(rand.NewSource(seed)))

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	color.Yellow("Best record: %d", game.Record())
	if cfg.Record.File != "" {
		color.Cyan("Saved in %s", cfg.Record.File)
	}
}
