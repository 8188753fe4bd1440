package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

type DeleteProjectArguments struct {
	ProjectID string `json:"project_id" validate:"required"`
}

func NewDeleteProjectTool(store *workspace.Store) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("delete_project",
		mcp.WithDescription("Delete a project together with its messages, components, versions and deployments. Deleting the active project clears the workspace panes."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("ID of the project to delete"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args DeleteProjectArguments
		if err := request.BindArguments(&args); err != nil {
			return nil, fmt.Errorf("failed to bind arguments: %w", err)
		}

		if err := validator.New().Struct(args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		if err := store.DeleteProject(ctx, args.ProjectID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error deleting project: %v", err)), nil
		}

		result := map[string]any{
			"id":      args.ProjectID,
			"message": "Project deleted",
		}

		resultJSON, _ := json.Marshal(result)
		return mcp.NewToolResultText(fmt.Sprintf("Project deleted successfully: %s", string(resultJSON))), nil
	}

	return tool, handler
}
