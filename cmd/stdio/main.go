package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rxtech-lab/workspace-mcp/internal/api"
	"github.com/rxtech-lab/workspace-mcp/internal/mcp"
	"github.com/rxtech-lab/workspace-mcp/internal/services"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

// Build information (set via ldflags)
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildTime  = "unknown"
)

func main() {
	// Command line flags
	var showVersion = flag.Bool("version", false, "Show version information")
	var showHelp = flag.Bool("help", false, "Show help information")
	var enableLog = flag.Bool("log", false, "Enable logging output")
	flag.Parse()

	// Disable logging by default; stdio is the MCP transport
	if !*enableLog {
		log.SetOutput(io.Discard)
	}

	if *showVersion {
		log.Printf("AI Workspace MCP Server\n")
		log.Printf("Version: %s\n", Version)
		log.Printf("Commit: %s\n", CommitHash)
		log.Printf("Built: %s\n", BuildTime)
		return
	}

	if *showHelp {
		log.Printf("AI Workspace MCP Server\n\n")
		log.Printf("Usage: %s [options]\n\n", os.Args[0])
		log.Printf("Options:\n")
		log.Printf("  --version    Show version information\n")
		log.Printf("  --help       Show this help message\n")
		log.Printf("  --log        Enable logging output\n\n")
		log.Printf("Description:\n")
		log.Printf("  Project-based AI component workspace over MCP: generation,\n")
		log.Printf("  version history, line diffs and a simulated deployment pipeline.\n\n")
		log.Printf("Database: ~/workspace.db (SQLite, override with WORKSPACE_DB_PATH)\n")
		log.Printf("Actor: WORKSPACE_ACTOR env var (default 'local')\n")
		return
	}

	dbPath := os.Getenv("WORKSPACE_DB_PATH")
	if dbPath == "" {
		homePath, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Failed to get home directory:", err)
		}
		dbPath = homePath + "/workspace.db"
	}

	dbService, err := services.NewSqliteDBService(dbPath)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer dbService.Close()

	actor := os.Getenv("WORKSPACE_ACTOR")
	if actor == "" {
		actor = "local"
	}

	mcpServer := mcp.NewMCPServer(dbService.GetDB(), workspace.StaticActorResolver(actor), nil)

	// HTTP surface for previews and deployment history, random port
	apiServer := api.NewAPIServer(dbService.GetDB())
	port, err := apiServer.Start(0)
	if err != nil {
		log.Fatal("Failed to start API server:", err)
	}
	log.Printf("API server started on port %d\n", port)

	go func() {
		if err := mcpServer.Start(); err != nil {
			log.SetOutput(os.Stderr)
			log.SetFlags(0)
			log.Fatal("Failed to start MCP server:", err)
		}
	}()

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("\nShutting down servers...")

	if err := apiServer.Shutdown(); err != nil {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
		log.Printf("Error shutting down API server: %v", err)
	}

	log.Println("Servers shut down successfully")
}
