package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/gymtracker/internal/catalog"
	"github.com/meltforce/gymtracker/internal/coach"
	"github.com/meltforce/gymtracker/internal/config"
	"github.com/meltforce/gymtracker/internal/mcp"
	"github.com/meltforce/gymtracker/internal/metrics"
	"github.com/meltforce/gymtracker/internal/progress"
	"github.com/meltforce/gymtracker/internal/rank"
	"github.com/meltforce/gymtracker/internal/server"
	"github.com/meltforce/gymtracker/internal/storage"
	"github.com/meltforce/gymtracker/internal/tracker"
	"github.com/meltforce/gymtracker/internal/view"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	migrateOnly := flag.Bool("migrate-only", false, "run migrations and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("GymTracker starting", "version", Version)

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	loc, err := cfg.Progress.Location()
	if err != nil {
		log.Error("invalid timezone", "error", err)
		os.Exit(1)
	}

	if *migrateOnly {
		if cfg.Storage.Driver != "postgres" {
			log.Info("migrate-only: nothing to do for driver", "driver", cfg.Storage.Driver)
			return
		}
		if err := storage.RunMigrations(cfg.Database.DSN(), cfg.Storage.MigrationsPath); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		log.Info("migrations applied; exiting")
		return
	}

	// Open storage and load progress
	ctx := context.Background()
	store, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.SQLitePath, cfg.Database.DSN(), cfg.Storage.MigrationsPath)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	log.Info("storage ready", "driver", cfg.Storage.Driver)

	// Metrics
	var collectors []prometheus.Collector
	if db, ok := store.(*storage.DB); ok {
		collectors = append(collectors, db.Collector())
	}
	promRegistry := metrics.NewRegistry(collectors...)
	m := metrics.New(promRegistry)

	ledger := progress.New(store, loc, log)
	if err := ledger.Load(ctx); err != nil {
		log.Error("failed to load progress", "error", err)
		os.Exit(1)
	}

	// AI collaborators; without a key both degrade to fallback messages
	var gen coach.Generator
	if cfg.AI.APIKey != "" {
		g, err := coach.NewGemini(ctx, cfg.AI.APIKey)
		if err != nil {
			log.Error("failed to create Gemini client", "error", err)
			os.Exit(1)
		}
		gen = g
	} else {
		log.Warn("ai.api_key not set; coach and body simulator disabled")
	}
	advisor := coach.NewAdvisor(gen, cfg.AI.TextModel, log)
	simulator := coach.NewSimulator(gen, cfg.AI.ImageModel, log)

	cat := catalog.Default()
	ctrl := view.New(view.Options{
		Catalog:          cat,
		Ledger:           ledger,
		Advisor:          advisor,
		Simulator:        simulator,
		CelebrationDelay: cfg.Progress.CelebrationDelay,
		Metrics:          m,
		Log:              log,
	})
	svc := tracker.New(cat, ledger, rank.DefaultTable(), advisor, nil)

	// Create server
	srv := server.New(svc, ctrl, cfg.Auth.APIKey, m, log)
	srv.SetMetricsHandler(promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	srv.SetMCP(mcpserver.NewStreamableHTTPServer(mcp.New(svc, Version, log)))

	// Start server: tsnet or plain HTTP
	var listener net.Listener
	var tsServer *tsnet.Server

	if cfg.Tailscale.Enabled {
		tsServer = &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr, "mode", "dev (no tailscale)")
	}

	httpSrv := &http.Server{Handler: srv}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	ctrl.Wait()
	log.Info("server stopped")
}
