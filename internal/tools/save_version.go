package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rxtech-lab/workspace-mcp/internal/workspace"
)

func NewSaveVersionTool(store *workspace.Store) (mcp.Tool, server.ToolHandlerFunc) {
	tool := mcp.NewTool("save_version",
		mcp.WithDescription("Snapshot a component's current code as a new version. Version numbers are assigned by the storage layer, so concurrent saves never collide."),
		mcp.WithString("component_id",
			mcp.Description("Component to snapshot (default: the current component)"),
		),
		mcp.WithString("label",
			mcp.Description("Optional label for the snapshot (e.g. 'Before redesign')"),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		componentID := request.GetString("component_id", "")
		label := request.GetString("label", "")

		if componentID == "" {
			component, ok := store.CurrentComponent()
			if !ok {
				return mcp.NewToolResultError("No component selected. Pass component_id or generate one first."), nil
			}
			componentID = component.ID
		}

		version, err := store.SaveVersion(ctx, componentID, label)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Error saving version: %v", err)), nil
		}

		result := map[string]any{
			"version_id":     version.ID,
			"component_id":   version.ComponentID,
			"version_number": version.VersionNumber,
			"label":          version.Label,
			"message":        "Version saved",
		}

		resultJSON, _ := json.Marshal(result)
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				mcp.NewTextContent("Version saved successfully: "),
				mcp.NewTextContent(string(resultJSON)),
			},
		}, nil
	}

	return tool, handler
}
