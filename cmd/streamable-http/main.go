package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload" // Automatically load .env file if present

	"github.com/rxtech-lab/workspace-mcp/internal/api"
	"github.com/rxtech-lab/workspace-mcp/internal/api/middleware"
	"github.com/rxtech-lab/workspace-mcp/internal/mcp"
	"github.com/rxtech-lab/workspace-mcp/internal/services"
	"github.com/rxtech-lab/workspace-mcp/internal/utils"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

func main() {
	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	parsedPort, err := strconv.Atoi(port)
	if err != nil {
		log.Fatal("Invalid port number:", err)
	}

	postgresUrl := os.Getenv("POSTGRES_URL")
	dbService, err := services.NewPostgresDBService(postgresUrl)
	if err != nil {
		log.Fatal("Failed to initialize database service:", err)
	}
	defer dbService.Close()

	// Tool calls act as the user named by the validated Bearer token
	var authenticator *utils.JwtAuthenticator
	var middlewares []fiber.Handler
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		authenticator = utils.NewJwtAuthenticator(secret)
		middlewares = append(middlewares, middleware.AuthMiddleware(middleware.AuthConfig{
			Authenticator: authenticator,
			PublicPaths:   []string{"/health", "/mcp"},
		}))
	} else {
		log.Println("JWT_SECRET not set, running without authentication")
	}

	mcpServer := mcp.NewMCPServer(dbService.GetDB(), workspace.ContextActorResolver, nil)

	apiServer := api.NewAPIServer(dbService.GetDB(), middlewares...)
	apiServer.EnableStreamableHttp(mcpServer.ServerInstance(), authenticator)

	startedPort, err := apiServer.Start(parsedPort)
	if err != nil {
		log.Fatal("Failed to start API server:", err)
	}

	log.Printf("API server started on port %d\n", startedPort)

	// Set up graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	log.Println("\nShutting down server...")

	if err := apiServer.Shutdown(); err != nil {
		log.Printf("Error shutting down API server: %v", err)
	}

	log.Println("Server shut down successfully")
}
