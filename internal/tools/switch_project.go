package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

type SwitchProjectArguments struct {
	ProjectID string `json:"project_id" validate:"required"`
}

func NewSwitchProjectTool(store *workspace.Store) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("switch_project",
		mcp.WithDescription("Make another project the active one. Loads its conversation and generated components; the workspace only shows the new project's data once both loads succeed."),
		mcp.WithString("project_id",
			mcp.Required(),
			mcp.Description("ID of the project to activate"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SwitchProjectArguments
		if err := request.BindArguments(&args); err != nil {
			return nil, fmt.Errorf("failed to bind arguments: %w", err)
		}

		if err := validator.New().Struct(args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		if err := store.SwitchProject(ctx, args.ProjectID); err != nil {
			if errors.Is(err, workspace.ErrNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("Project not found: %s", args.ProjectID)), nil
			}
			return mcp.NewToolResultError(fmt.Sprintf("Error switching project: %v", err)), nil
		}

		state := store.State()
		project, _ := state.ActiveProject()
		result := map[string]any{
			"id":         project.ID,
			"name":       project.Name,
			"framework":  project.Framework,
			"messages":   len(state.Messages),
			"components": len(state.GeneratedComponents),
			"message":    "Project activated",
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Project switched successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
