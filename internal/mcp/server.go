// Package mcp exposes routine generation and exercise substitution as
// MCP tools so assistants can build workouts over stdio.
package mcp

import (
	"log/slog"

	"github.com/claude/fitgen/internal/catalog"
	"github.com/claude/fitgen/internal/routine"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(gen *routine.Generator, cat *catalog.Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FitGen", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FitGen workout routine generator. Generate personalized routines from session duration, fitness level, available equipment, and target muscle groups; swap any single exercise for an alternative from the same muscle group; browse the exercise catalog."),
	)

	h := &handlers{gen: gen, cat: cat, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolGenerateRoutine, Handler: h.generateRoutine},
		server.ServerTool{Tool: toolSwapExercise, Handler: h.swapExercise},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
	)

	s.AddResources(
		server.ServerResource{Resource: resOptions, Handler: h.options},
		server.ServerResource{Resource: resAlternatives, Handler: h.alternatives},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	gen *routine.Generator
	cat *catalog.Catalog
	log *slog.Logger
}

// --- Resource definitions ---

var resOptions = mcp.NewResource(
	"fitgen://options",
	"Preference Options",
	mcp.WithResourceDescription("Selectable durations, fitness levels, equipment types, and muscle groups"),
	mcp.WithMIMEType("application/json"),
)

var resAlternatives = mcp.NewResource(
	"fitgen://alternatives",
	"Alternative Exercises",
	mcp.WithResourceDescription("Substitute candidates per muscle group, including the default fallback bucket"),
	mcp.WithMIMEType("application/json"),
)
