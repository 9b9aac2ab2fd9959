package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/lixenwraith/ski-rush/audio"
	"github.com/lixenwraith/ski-rush/config"
	"github.com/lixenwraith/ski-rush/constants"
	"github.com/lixenwraith/ski-rush/game"
	"github.com/lixenwraith/ski-rush/render"
	"github.com/lixenwraith/ski-rush/sprite"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ski-rush.log")
	seedFlag   = flag.String("seed", "", "Obstacle placement seed (overrides config)")
	muteFlag   = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != "" {
		cfg.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			log.Printf("Sentry initialization failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		// The deferred Fini below has already restored the terminal
		if r := recover(); r != nil {
			crashed("SKI-RUSH CRASHED", r)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	run(screen, cfg)
}

// run drives the session until the quit key or terminal closure
func run(screen tcell.Screen, cfg *config.Config) {
	sounds := audio.NewSoundManager(cfg.Audio.Enabled, cfg.Audio.MasterVolume)
	var player game.SoundPlayer
	if sounds.Enabled() {
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			player = sounds
			defer sounds.Cleanup()
		}
	}

	catalog := sprite.DefaultCatalog()
	canvas := render.NewCanvas(screen, catalog)
	width, height := canvas.ViewportSize()
	g := game.New(cfg, catalog, player, width, height)
	log.Printf("Game started: seed %q, tick %s, viewport %.0fx%.0f", cfg.Seed, cfg.TickInterval, width, height)

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				crashed("EVENT POLLER CRASHED", r)
			}
		}()
		defer close(eventChan)

		for {
			ev := screen.PollEvent()
			// Clean exit on terminal closure
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	// Game logic and rendering run on separate clocks
	gameTicker := time.NewTicker(cfg.TickInterval)
	defer gameTicker.Stop()
	frameTicker := time.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	draw(canvas, g)

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if _, quit := g.HandleKey(game.KeyName(ev)); quit {
					return
				}
			case *tcell.EventResize:
				canvas.Sync()
				g.Resize(canvas.ViewportSize())
			}

		case now := <-gameTicker.C:
			g.Tick(now)

		case <-frameTicker.C:
			draw(canvas, g)
		}
	}
}

func draw(canvas *render.Canvas, g *game.Game) {
	canvas.Clear()
	g.Draw(canvas)
	canvas.Show()
}

// crashed reports a recovered panic to Sentry and stderr, then exits
func crashed(label string, r any) {
	hub := sentry.CurrentHub().Clone()
	hub.Recover(r)
	hub.Flush(5 * time.Second)

	// Print error and stack trace to stderr so it's visible after reset
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31m%s: %v\x1b[0m\r\n", label, r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}
