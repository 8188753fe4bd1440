package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rxtech-lab/workspace-mcp/internal/utils"
)

// EnableStreamableHttp mounts the MCP server at /mcp over the streamable
// HTTP transport. When an authenticator is given, a valid Bearer token
// resolves the actor for every tool call; without one, calls run
// unauthenticated and actor-requiring writes fail.
func (s *APIServer) EnableStreamableHttp(mcpServer *server.MCPServer, authenticator *utils.JwtAuthenticator) {
	streamable := server.NewStreamableHTTPServer(mcpServer,
		server.WithHTTPContextFunc(func(ctx context.Context, r *http.Request) context.Context {
			if authenticator == nil {
				return ctx
			}
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return ctx
			}
			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			user, err := authenticator.ValidateToken(token)
			if err != nil {
				return ctx
			}
			return utils.WithAuthenticatedUser(ctx, user)
		}),
	)

	s.app.All("/mcp", adaptor.HTTPHandler(streamable))
	s.app.All("/mcp/*", adaptor.HTTPHandler(streamable))
}
