// Command slideshow plays a deck file in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/zoobzio/capitan"
	"github.com/zoobzio/slidez"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: slideshow [flags]\n\nPlay a slide deck (yaml or json) in the terminal.\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment:\n  SLIDESHOW_DECK, SLIDESHOW_ASSETS, SLIDESHOW_LOG provide defaults for unset flags.\n")
	}

	deckPath := flag.String("deck", "", "path to deck file (default: $SLIDESHOW_DECK or deck.yaml)")
	assets := flag.String("assets", "", "directory local media paths resolve against (default: $SLIDESHOW_ASSETS or .)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	logPath := flag.String("log", "", "write logs to this file (default: $SLIDESHOW_LOG, else discarded)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	opts := runOptions{
		deck:   firstNonEmpty(*deckPath, os.Getenv("SLIDESHOW_DECK"), "deck.yaml"),
		assets: firstNonEmpty(*assets, os.Getenv("SLIDESHOW_ASSETS"), "."),
		log:    firstNonEmpty(*logPath, os.Getenv("SLIDESHOW_LOG")),
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type runOptions struct {
	deck   string
	assets string
	log    string
}

func run(opts runOptions) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger, closeLog, err := openLogger(opts.log)
	if err != nil {
		return err
	}
	defer closeLog()
	hookLogging(logger)
	defer capitan.Shutdown()

	deck, err := slidez.LoadDeck(opts.deck)
	if err != nil {
		return err
	}
	decks, err := slidez.WatchDeck(ctx, opts.deck)
	if err != nil {
		return err
	}

	cache := slidez.NewImageCache(
		slidez.DefaultLoader(opts.assets),
		slidez.WithRateLimit(8, 4),
		slidez.WithBackoff(3, 250*time.Millisecond),
		slidez.WithTimeout(30*time.Second),
		slidez.WithCircuitBreaker(5, time.Minute),
	).FailureHistory(16)

	m, err := newModel(ctx, deck, cache, decks)
	if err != nil {
		return err
	}
	logger.Info("slideshow started", "deck", opts.deck, "slides", len(deck.Slides))

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

// loadDotEnv loads environment variables from path. A missing file is not
// an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
