// Package main is the entry point for Mazeband.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mazeband/internal/collision"
	"github.com/samdwyer/mazeband/internal/game"
	"github.com/samdwyer/mazeband/internal/gamedata"
	"github.com/samdwyer/mazeband/internal/telemetry"
	"github.com/samdwyer/mazeband/internal/world"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run starts the game and returns once every resource it opened is released.
func run() error {
	// Load .env file for local development
	// This makes HONEYCOMB_MAZEBAND_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	seed := flag.Int64("seed", cfg.Seed, "maze seed (0 for random)")
	difficulty := flag.String("difficulty", cfg.Difficulty, "difficulty preselected in the menu (easy, medium, hard)")
	policy := flag.String("policy", cfg.Policy.String(), "wall correction policy (last, nearest)")
	printOnly := flag.Bool("print", false, "print a maze for -difficulty and -seed, then exit")
	flag.Parse()

	cfg.Seed = *seed
	cfg.Difficulty = *difficulty
	if cfg.Policy, err = collision.ParsePolicy(*policy); err != nil {
		return fmt.Errorf("invalid -policy: %w", err)
	}

	if *printOnly {
		return printMaze(cfg)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	// tcell owns the terminal, so logs go to a file
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Warn("telemetry setup failed, running without observability", "error", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}()
	}

	// Create and run game
	g, err := game.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	defer g.Close()

	if err := g.Run(ctx); err != nil {
		logger.Error("game stopped", "error", err)
		return err
	}
	return nil
}

// printMaze writes an ASCII maze to stdout.
func printMaze(cfg game.Config) error {
	registry, err := gamedata.LoadDifficultyRegistry()
	if err != nil {
		return fmt.Errorf("load difficulties: %w", err)
	}
	d, err := registry.GetByID(cfg.Difficulty)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := world.NewGenerator(rand.New(rand.NewSource(seed)))
	gen.MaxCoins = cfg.MaxCoins
	grid := gen.Generate(context.Background(), d.Size, d.Coins)

	fmt.Printf("%s maze, seed %d, %d coins\n", d.Name, seed, grid.CoinCount())
	fmt.Print(grid.String())
	return nil
}
