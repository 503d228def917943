// Command gymtracker-mcp serves the GymTracker MCP tools over stdio, reading
// data from a remote GymTracker server through its REST API.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/meltforce/gymtracker/internal/mcp"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	baseURL := flag.String("url", os.Getenv("GYMTRACKER_URL"), "GymTracker server base URL (e.g. http://gymtracker.tailnet.ts.net)")
	apiKey := flag.String("api-key", os.Getenv("GYMTRACKER_AUTH_API_KEY"), "API key for coach requests")
	flag.Parse()

	// stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *baseURL == "" {
		fmt.Fprintf(os.Stderr, "Usage: gymtracker-mcp -url http://host [-api-key key]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	client := mcp.NewHTTPClient(*baseURL, *apiKey)
	s := mcp.New(client, Version, log)

	log.Info("gymtracker-mcp serving stdio", "url", *baseURL, "version", Version)
	if err := server.ServeStdio(s); err != nil {
		log.Error("stdio server stopped", "error", err)
		os.Exit(1)
	}
}
