package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"bossfight/internal/config"
	"bossfight/internal/logging"
)

var (
	configFlag = flag.String("config", "bossfight.toml", "Path to the TOML config; missing file means defaults")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/bossfight.log")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
)

func main() {
	flag.Parse()

	logFile, err := logging.Setup(*debugFlag, os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// 1. Window Setup
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 2. Initialize Game
	game := NewGame(cfg, rand.New(rand.NewSource(seed)))

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
