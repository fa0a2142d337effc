package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/lixenwraith/halflife/audio"
	"github.com/lixenwraith/halflife/config"
	"github.com/lixenwraith/halflife/engine"
	"github.com/lixenwraith/halflife/terminal"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "halflife: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "halflife: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("stdin and stdout must be a terminal")
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	// Validated by config.Parse
	mode, _ := cfg.FidelityMode()
	palette, _ := cfg.PaletteIndex()
	log.Printf("starting: fidelity=%s palette=%s tick=%v poll=%v seed=%d sound=%v",
		mode, palette, cfg.Tick, cfg.PollTimeout, cfg.Seed, cfg.Sound)

	screen, err := terminal.New()
	if err != nil {
		return err
	}

	// Panic Recovery: the loop's deferred Fini has already run while unwinding,
	// Fini again is a no-op and keeps this safe if the panic came earlier
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mHALFLIFE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	game := engine.NewGame(screen, engine.Options{
		Mode:        mode,
		Palette:     palette,
		Tick:        cfg.Tick,
		PollTimeout: cfg.PollTimeout,
		Seed:        cfg.Seed,
	})

	if cfg.Sound {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			// Non-fatal, the board runs without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			game.SetCue(player)
			defer player.Close()
		}
	}

	return game.Run()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
