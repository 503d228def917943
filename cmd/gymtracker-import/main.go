package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/meltforce/gymtracker/internal/config"
	"github.com/meltforce/gymtracker/internal/importer"
	"github.com/meltforce/gymtracker/internal/storage"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("file", "", "path to the exported progress JSON (required)")
	dryRun := flag.Bool("dry-run", false, "validate the export without writing it")
	force := flag.Bool("force", false, "replace existing progress")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *exportPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: gymtracker-import -config config.yaml -file export.json [-dry-run] [-force]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if *dryRun {
		log.Info("DRY RUN mode: no data will be written")
	}

	// Open storage
	store, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.SQLitePath, cfg.Database.DSN(), cfg.Storage.MigrationsPath)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Run import
	imp := importer.New(store, log, *dryRun, *force)
	stats, err := imp.ImportFile(ctx, *exportPath)
	if errors.Is(err, importer.ErrExists) {
		log.Error("progress already stored; rerun with -force to replace it")
		os.Exit(1)
	}
	if err != nil {
		log.Error("import failed", "error", err)
		os.Exit(1)
	}

	log.Info("import complete",
		"total_workouts", stats.TotalWorkouts,
		"streak", stats.Streak,
		"last_workout", stats.LastWorkout,
		"replaced", stats.Replaced,
		"written", stats.Written,
	)
}
