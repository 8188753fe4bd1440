package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/services"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

func NewListVersionsTool(store *workspace.Store, versionService services.VersionService) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("list_versions",
		mcp.WithDescription("List a component's saved versions, newest first. Each entry carries its sequential version number and optional label."),
		mcp.WithString("component_id",
			mcp.Description("Component whose history to list (default: the current component)"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		componentID := request.GetString("component_id", "")
		if componentID == "" {
			component, ok := store.CurrentComponent()
			if !ok {
				return mcp.NewToolResultError("No component selected. Pass component_id or generate one first."), nil
			}
			componentID = component.ID
		}

		versions, err := versionService.ListVersionsByComponent(componentID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error listing versions: %v", err)), nil
		}

		versionList := make([]map[string]any, len(versions))
		for i, version := range versions {
			versionList[i] = map[string]any{
				"id":             version.ID,
				"version_number": version.VersionNumber,
				"label":          version.Label,
				"created_at":     version.CreatedAt,
			}
		}

		result := map[string]any{
			"component_id": componentID,
			"versions":     versionList,
			"count":        len(versionList),
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Versions listed successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
