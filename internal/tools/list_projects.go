package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

func NewListProjectsTool(store *workspace.Store) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("list_projects",
		mcp.WithDescription("List the caller's projects, most recently updated first. The active project is marked so follow-up calls know which one the workspace is operating on."),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := store.LoadProjects(ctx); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing projects: %v", err)), nil
		}

		state := store.State()
		if len(state.Projects) == 0 {
			result := map[string]any{
				"projects": []interface{}{},
				"count":    0,
				"message":  "No projects yet. Use create_project to start one.",
			}
			resultJSON, _ := json.Marshal(result)
			return mcp.NewToolResultText(fmt.Sprintf("Projects listed: %s", string(resultJSON))), nil
		}

		projectList := make([]map[string]any, len(state.Projects))
		for i, project := range state.Projects {
			projectList[i] = map[string]any{
				"id":          project.ID,
				"name":        project.Name,
				"framework":   project.Framework,
				"description": project.Description,
				"updated_at":  project.UpdatedAt,
				"active":      project.ID == state.ActiveProjectID,
			}
		}

		result := map[string]any{
			"projects":          projectList,
			"count":             len(state.Projects),
			"active_project_id": state.ActiveProjectID,
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Projects listed successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
