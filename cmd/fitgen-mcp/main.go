package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/fitgen/internal/catalog"
	fitgenmcp "github.com/claude/fitgen/internal/mcp"
	"github.com/claude/fitgen/internal/routine"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("fitgen-mcp", Version)
		return
	}

	// Log to stderr — stdout carries the MCP stdio transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cat, err := catalog.Load()
	if err != nil {
		log.Error("failed to load exercise catalog", "error", err)
		os.Exit(1)
	}

	gen := routine.NewGenerator(cat, routine.Options{})
	s := fitgenmcp.New(gen, cat, Version, log)

	log.Info("fitgen-mcp serving on stdio", "version", Version)
	if err := server.ServeStdio(s); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
