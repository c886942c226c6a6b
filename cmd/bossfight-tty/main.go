package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"bossfight/internal/audio"
	"bossfight/internal/config"
	"bossfight/internal/logging"
	"bossfight/internal/session"
	"bossfight/internal/tty"
)

var (
	configFlag = flag.String("config", "bossfight.toml", "Path to the TOML config; missing file means defaults")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/bossfight.log")
	seedFlag   = flag.Int64("seed", 0, "Random seed (0 picks one from the clock)")
)

func main() {
	flag.Parse()

	// The screen owns stdout, so logs only go to the debug file
	logFile, err := logging.Setup(*debugFlag, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	// Panic Recovery: put the terminal back before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nBOSS FIGHT CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	dev := audio.NewDevice(cfg.Audio.SampleRate, cfg.Audio.Volume, tty.OpenSpeaker)
	defer tty.CloseSpeaker(dev)

	s := session.New(session.OptionsFromConfig(cfg), 0, 0, rand.New(rand.NewSource(seed)), dev)
	app := tty.New(screen, s, dev, cfg.Terminal)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = app.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
