package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/vmath"
)

var (
	configFlag = flag.String("config", "", "Path to TOML config (default: ./"+config.DefaultPath+" if present)")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/")
	seedFlag   = flag.Uint64("seed", 0, "Food RNG seed (0: time based)")
	fpsFlag    = flag.Int("fps", 0, "Frame rate override")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfgPath, required := config.DefaultPath, false
	if *configFlag != "" {
		cfgPath, required = *configFlag, true
	}
	cfg, err := config.Load(cfgPath, required)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *fpsFlag != 0 {
		cfg.FrameRate = *fpsFlag
	}
	settings, err := cfg.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
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
	core.RegisterCrashScreen(screen)

	w, h := screen.Size()
	window := core.Point{X: w, Y: h}
	if !game.ValidDimension(engine.GridDimension(window)) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Terminal too small: %dx%d\n", w, h)
		os.Exit(1)
	}
	defer screen.Fini()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := vmath.NewFastRand(seed)
	log.Printf("config: fps=%d hold=%v food=%s seed=%d", settings.FrameRate, settings.HoldTimeout, settings.FoodPolicy, seed)

	clock := engine.NewMonotonicTimeProvider()
	loop := engine.NewLoop(engine.LoopConfig{
		Window:   window,
		Bindings: settings.Bindings,
		NewState: func(d game.Position) *game.GameState {
			return game.New(d, game.WithRand(rng), game.WithFoodPolicy(settings.FoodPolicy))
		},
		Renderer: render.NewGameRenderer(window, settings.Glyphs),
		Clock:    clock,
	})

	keyboard := input.NewKeyboard(clock, settings.HoldTimeout)
	host := engine.NewHost(screen, loop, keyboard, settings.FrameRate)
	host.Run()

	log.Printf("exit: frames=%d fps=%d score=%d", loop.Frames(), loop.FPS(), loop.State().Score())
}
