package api

import (
	"fmt"
	"log"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/rxtech-lab/workspace-mcp/internal/services"
)

// APIServer exposes the read-only HTTP surface of the workspace: health,
// component code, preview pages and deployment history.
type APIServer struct {
	app               *fiber.App
	projectService    services.ProjectService
	componentService  services.ComponentService
	deploymentService services.DeploymentService
	port              int
}

func NewAPIServer(db *gorm.DB, middlewares ...fiber.Handler) *APIServer {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// Add middleware
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	for _, m := range middlewares {
		app.Use(m)
	}

	server := &APIServer{
		app:               app,
		projectService:    services.NewProjectService(db),
		componentService:  services.NewComponentService(db),
		deploymentService: services.NewDeploymentService(db),
	}
	server.setupRoutes()
	return server
}

func (s *APIServer) setupRoutes() {
	// Component code and preview
	s.app.Get("/api/components/:component_id", s.handleComponentCode)
	s.app.Get("/preview/:component_id", s.handleComponentPreview)

	// Deployment history
	s.app.Get("/api/deployments/:deployment_id/logs", s.handleDeploymentLogs)
	s.app.Get("/api/projects/:project_id/deployments", s.handleProjectDeployments)

	// Health check
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]string{"status": "ok"})
	})
}

// Start starts the server on the given port; port 0 picks a free one.
func (s *APIServer) Start(port int) (int, error) {
	if port == 0 {
		listener, err := net.Listen("tcp", ":0")
		if err != nil {
			return 0, fmt.Errorf("failed to find available port: %w", err)
		}
		port = listener.Addr().(*net.TCPAddr).Port
		listener.Close()
	}
	s.port = port

	go func() {
		if err := s.app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			log.Printf("Error starting API server: %v\n", err)
		}
	}()

	return port, nil
}

func (s *APIServer) Shutdown() error {
	return s.app.Shutdown()
}

func (s *APIServer) GetPort() int {
	return s.port
}

// App exposes the fiber app for in-process request tests.
func (s *APIServer) App() *fiber.App {
	return s.app
}
