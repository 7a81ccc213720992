package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/salvo/audio"
	"github.com/lixenwraith/salvo/console"
	"github.com/lixenwraith/salvo/game"
	"github.com/lixenwraith/salvo/scenario"
)

var (
	mapsFlag    = flag.String("maps", "", "Scenario JSON file (default: built-in maps)")
	missionFlag = flag.Int("mission", scenario.Random, "Scenario index for the first mission, -1 for random")
	seedFlag    = flag.Int64("seed", 0, "Random seed for mission selection, 0 for time-based")
	muteFlag    = flag.Bool("mute", false, "Disable sound cues")
	debugFlag   = flag.Bool("debug", false, "Write a debug log to logs/salvo.log")
	clipFlag    = flag.Bool("clip", false, "Copy each mission report to the clipboard")
	localeFlag  = flag.String("locale", "locales", "Directory holding message translations")
	langFlag    = flag.String("lang", "en_US", "Language of player-facing messages")
	delayFlag   = flag.Duration("delay", game.DefaultStartDelay, "Pause between accepting a mission and the first shot")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

// run owns every deferred cleanup so that main can exit with its code afterwards
func run() (code int) {
	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	maps, err := loadMaps(*mapsFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scenarios: %v\n", err)
		return 1
	}

	cfg := game.Config{
		Mission:    *missionFlag,
		StartDelay: *delayFlag,
		Seed:       *seedFlag,
	}
	if err := cfg.Validate(maps); err != nil {
		fmt.Fprintf(os.Stderr, "salvo: %v\n", err)
		return 1
	}

	console.ConfigureLocale(*localeFlag, *langFlag)

	ui, err := console.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			ui.Close()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSALVO CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()

	opts := []game.Option{}
	if !*muteFlag {
		sounds := audio.NewSoundManager()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer sounds.Cleanup()
			opts = append(opts, game.WithSounds(sounds))
		}
	}
	if *clipFlag {
		opts = append(opts, game.WithDebrief(copyDebrief))
	}

	runner := game.NewRunner(cfg, maps, ui, opts...)
	log.Printf("salvo starting: %d scenarios, mission %d, seed %d", maps.Len(), cfg.Mission, runner.Seed())

	err = runner.Run()
	ui.Close()

	if err != nil && !errors.Is(err, console.ErrInterrupted) {
		fmt.Fprintf(os.Stderr, "salvo: %v\n", err)
		return 1
	}
	return 0
}

func loadMaps(path string) (*scenario.Set, error) {
	if path == "" {
		return scenario.Default()
	}
	return scenario.Load(path)
}
