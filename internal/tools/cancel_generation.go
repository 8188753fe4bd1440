package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/generation"
)

func NewCancelGenerationTool(generator *generation.Generator) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("cancel_generation",
		mcp.WithDescription("Cancel the in-flight component generation. The lifecycle returns to idle and no messages are appended. Safe to call when nothing is running."),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		generator.Cancel()
		return mcp.NewToolResultText("Generation cancelled"), nil
	}

	return tool, handler
}
